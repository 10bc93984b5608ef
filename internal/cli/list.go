package cli

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/shenikar/city_incidents/internal/filter"
	"github.com/shenikar/city_incidents/internal/render"
	"github.com/shenikar/city_incidents/internal/service"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Форматы вывода
const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

type listFlags struct {
	categories []string
	severity   string
	dateFrom   string
	dateTo     string
	search     string
	sortBy     string
	desc       bool
	limit      int
	page       int
	output     string
}

func newListCommand(opts *options) *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List incidents matching the filters, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, opts, flags)
		},
	}

	f := cmd.Flags()
	f.StringSliceVarP(&flags.categories, "category", "c", nil, "category to include (repeatable)")
	f.StringVarP(&flags.severity, "severity", "s", "", "exact severity 1..5")
	f.StringVar(&flags.dateFrom, "from", "", "lower date bound, inclusive")
	f.StringVar(&flags.dateTo, "to", "", "upper date bound, whole day inclusive")
	f.StringVarP(&flags.search, "search", "q", "", "case-insensitive title search")
	f.StringVar(&flags.sortBy, "sort", "", "sort field: id, title, category, severity, createdAt")
	f.BoolVar(&flags.desc, "desc", false, "sort descending by --sort field")
	f.IntVarP(&flags.limit, "limit", "n", defaultLimit, "max incidents to print")
	f.IntVar(&flags.page, "page", 1, "page number")
	f.StringVarP(&flags.output, "output", "o", outputTable, "output format: table, json, yaml")
	return cmd
}

func runList(cmd *cobra.Command, opts *options, flags listFlags) error {
	if !slices.Contains([]string{outputTable, outputJSON, outputYAML}, flags.output) {
		return fmt.Errorf("unknown output format %q", flags.output)
	}
	if flags.sortBy != "" && !slices.Contains(service.SortFields, flags.sortBy) {
		return fmt.Errorf("unknown sort field %q", flags.sortBy)
	}
	if flags.limit < 1 || flags.limit > maxLimit {
		return fmt.Errorf("limit must be between 1 and %d", maxLimit)
	}
	if flags.page < 1 {
		return fmt.Errorf("page must be positive")
	}

	criteria, err := filter.NewCriteria(filter.RawCriteria{
		Categories: flags.categories,
		Severity:   flags.severity,
		DateFrom:   flags.dateFrom,
		DateTo:     flags.dateTo,
		Search:     flags.search,
	})
	if err != nil {
		return err
	}

	svc, err := opts.service(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	page, err := svc.ListIncidents(cmd.Context(), service.ListQuery{
		Criteria: criteria,
		Sort:     service.SortOrder{Field: flags.sortBy, Desc: flags.desc},
		Page:     flags.page,
		PageSize: flags.limit,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch flags.output {
	case outputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(page.Items)
	case outputYAML:
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(page.Items)
	}

	if page.Total == 0 {
		fmt.Fprintln(out, "No incidents match the current filters.")
		return nil
	}
	fmt.Fprintln(out, render.Table(page.Items, opts.now()))
	fmt.Fprintf(out, "Showing %d of %d incidents (page %d)\n", len(page.Items), page.Total, page.Page)
	return nil
}

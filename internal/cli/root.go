// Package cli - офлайн-клиент для просмотра инцидентов из файла набора данных
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/shenikar/city_incidents/internal/config"
	"github.com/shenikar/city_incidents/internal/notify"
	"github.com/shenikar/city_incidents/internal/repository"
	"github.com/shenikar/city_incidents/internal/service"
	"github.com/shenikar/city_incidents/pkg/logger"
	"github.com/spf13/cobra"
)

const (
	defaultLimit = 20
	maxLimit     = 1000
)

type options struct {
	file     string
	logLevel string
	now      func() time.Time
}

// NewRootCommand собирает дерево команд incidentctl
func NewRootCommand() *cobra.Command {
	return newRootCommand(time.Now)
}

func newRootCommand(now func() time.Time) *cobra.Command {
	opts := &options{now: now}

	root := &cobra.Command{
		Use:           "incidentctl",
		Short:         "Browse and filter city incidents from a dataset file",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.file, "file", "f", "assets/incidents.json", "incidents dataset (.json, .jsonc, .yaml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (written to stderr)")

	root.AddCommand(
		newListCommand(opts),
		newShowCommand(opts),
		newCategoriesCommand(),
	)
	return root
}

// service поднимает тот же сервис, что и HTTP API, поверх файла
func (o *options) service(ctx context.Context, stderr io.Writer) (service.IncidentService, error) {
	log := logger.NewWithOutput(o.logLevel, stderr)

	repo, err := repository.NewFileIncidentRepository(ctx, o.file)
	if err != nil {
		return nil, fmt.Errorf("failed to load incidents: %w", err)
	}

	cfg := &config.Config{
		DefaultPageSize: defaultLimit,
		MaxPageSize:     maxLimit,
	}
	return service.NewIncidentService(repo, log, cfg, notify.NewLogPublisher(log)), nil
}

package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/shenikar/city_incidents/internal/models"
	"github.com/shenikar/city_incidents/internal/render"
	"github.com/spf13/cobra"
)

func newShowCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single incident",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid incident ID %q", args[0])
			}

			svc, err := opts.service(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			incident, err := svc.GetIncident(cmd.Context(), id)
			if errors.Is(err, models.ErrIncidentNotFound) {
				return fmt.Errorf("incident %d not found", id)
			}
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), render.Details(incident, opts.now()))
			return nil
		},
	}
}

package cli

import (
	"fmt"

	"github.com/shenikar/city_incidents/internal/render"
	"github.com/spf13/cobra"
)

func newCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List known incident categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), render.Categories())
			return err
		},
	}
}

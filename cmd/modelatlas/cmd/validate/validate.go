// Package validate provides the catalog validation command.
package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modelatlas/modelatlas"
	"github.com/modelatlas/modelatlas/cmd/application"
)

// NewCommand creates the validate command with app dependencies.
// Validation loads the catalog, which re-checks every record for
// well-formed fields, duplicate IDs, unknown collection references, and
// referential symmetry between collections and their members.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "validate [catalog-dir]",
		GroupID: "management",
		Short:   "Validate catalog structure and referential integrity",
		Args:    cobra.MaximumNArgs(1),
		Example: `  modelatlas validate            # Validate the configured catalog
  modelatlas validate ./catalog  # Validate a catalog directory`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var atlas *modelatlas.Atlas
			var err error

			if len(args) == 1 {
				atlas, err = modelatlas.New(modelatlas.WithPath(args[0]))
			} else {
				atlas, err = app.Atlas()
			}
			if err != nil {
				cmd.SilenceUsage = true
				return err
			}

			reg := atlas.Registry()
			fmt.Fprintf(cmd.OutOrStdout(), "Catalog is valid: %d models, %d collections\n",
				reg.Len(), len(reg.Collections()))
			return nil
		},
	}

	return cmd
}

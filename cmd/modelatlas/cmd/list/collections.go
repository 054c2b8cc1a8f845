package list

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/modelatlas/modelatlas/cmd/application"
	"github.com/modelatlas/modelatlas/internal/cmd/globals"
	"github.com/modelatlas/modelatlas/internal/cmd/output"
)

// NewCollectionsCommand creates the list collections subcommand.
func NewCollectionsCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "collections [name]",
		Short:   "List collections from the registry",
		Aliases: []string{"collection"},
		Args:    cobra.MaximumNArgs(1),
		Example: `  modelatlas list collections        # List all collections
  modelatlas list collections VGG    # Show one collection`,
		RunE: func(cmd *cobra.Command, args []string) error {
			atlas, err := app.Atlas()
			if err != nil {
				return err
			}

			globalFlags, err := globals.Parse(cmd)
			if err != nil {
				return err
			}

			// Single collection view
			if len(args) == 1 {
				coll, err := atlas.Registry().Collection(args[0])
				if err != nil {
					cmd.SilenceUsage = true
					return err
				}
				return output.FormatAny(coll, globalFlags)
			}

			collections := atlas.Collections()
			if !globalFlags.Quiet {
				fmt.Fprintf(os.Stderr, "Found %d collections\n", len(collections))
			}

			return output.FormatCollections(collections, globalFlags)
		},
	}
}

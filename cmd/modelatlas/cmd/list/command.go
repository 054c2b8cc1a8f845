// Package list provides commands for listing registry resources.
package list

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modelatlas/modelatlas/cmd/application"
)

// NewCommand creates the list command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list [resource]",
		GroupID: "core",
		Short:   "List resources from the registry",
		Long: `List displays resources from the model metadata registry.

Available subcommands:
  models       - Model variants and their metadata
  collections  - Architecture collections and their papers`,
		Example: `  modelatlas list models                   # List all models
  modelatlas list models --collection VGG  # List one collection's models
  modelatlas list models --search 'vgg*'   # Glob match model IDs
  modelatlas list collections              # List all collections`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to help if no subcommand
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown resource: %s", args[0])
		},
	}

	cmd.AddCommand(NewModelsCommand(app))
	cmd.AddCommand(NewCollectionsCommand(app))

	return cmd
}

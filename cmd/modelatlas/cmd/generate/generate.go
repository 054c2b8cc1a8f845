// Package generate provides the documentation generation command.
package generate

import (
	"github.com/spf13/cobra"

	"github.com/modelatlas/modelatlas/cmd/application"
	"github.com/modelatlas/modelatlas/internal/docgen"
)

// NewCommand creates the generate command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	var outputDir string
	var verbose bool

	cmd := &cobra.Command{
		Use:     "generate",
		GroupID: "management",
		Short:   "Generate markdown documentation for the registry",
		Long: `Generate writes markdown documentation for the registry: an index
page listing every collection and model, and a page per collection with
its paper reference and member table.`,
		Example: `  modelatlas generate                # Write docs to ./docs
  modelatlas generate --docs ./site  # Write docs to a custom directory`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			atlas, err := app.Atlas()
			if err != nil {
				return err
			}

			gen := docgen.New(
				docgen.WithOutputDir(outputDir),
				docgen.WithVerbose(verbose),
			)

			return gen.Generate(cmd.Context(), atlas.Registry())
		},
	}

	cmd.Flags().StringVar(&outputDir, "docs", "./docs", "output directory for generated documentation")
	cmd.Flags().BoolVar(&verbose, "progress", false, "print progress while generating")

	return cmd
}

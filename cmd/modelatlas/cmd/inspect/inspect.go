// Package inspect provides the resolve inspection command.
package inspect

import (
	"github.com/spf13/cobra"

	"github.com/modelatlas/modelatlas/cmd/application"
	"github.com/modelatlas/modelatlas/internal/cmd/globals"
	"github.com/modelatlas/modelatlas/internal/cmd/output"
)

// NewCommand creates the inspect command with app dependencies.
// Inspect resolves a model name the way a loader would, applying
// pretrained-tag fallback, and prints the resulting loader config.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "inspect <model-name>",
		GroupID: "core",
		Short:   "Resolve a model name to its loader configuration",
		Long: `Inspect resolves a model name to the configuration a loader needs:
the weights URI and the record's hyperparameters.

Names may carry a pretrained tag after a dot (e.g. "vgg11.tv_in1k").
If the tagged record is absent, resolution falls back to the bare variant.`,
		Args: cobra.ExactArgs(1),
		Example: `  modelatlas inspect vgg11            # Resolve a bare variant
  modelatlas inspect vgg11.tv_in1k    # Resolve with tag fallback
  modelatlas inspect vgg11 -o json    # Machine-readable output`,
		RunE: func(cmd *cobra.Command, args []string) error {
			atlas, err := app.Atlas()
			if err != nil {
				return err
			}

			cfg, err := atlas.Resolve(args[0])
			if err != nil {
				cmd.SilenceUsage = true
				return err
			}

			globalFlags, err := globals.Parse(cmd)
			if err != nil {
				return err
			}

			return output.FormatAny(cfg, globalFlags)
		},
	}
}

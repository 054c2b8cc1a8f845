package list

import (
	"fmt"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modelatlas/modelatlas/cmd/application"
	"github.com/modelatlas/modelatlas/internal/cmd/globals"
	"github.com/modelatlas/modelatlas/internal/cmd/output"
	"github.com/modelatlas/modelatlas/internal/cmd/table"
	"github.com/modelatlas/modelatlas/pkg/registry"
)

// NewModelsCommand creates the list models subcommand.
func NewModelsCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "models [model-id]",
		Short:   "List models from the registry",
		Aliases: []string{"model"},
		Args:    cobra.MaximumNArgs(1),
		Example: `  modelatlas list models                    # List all models
  modelatlas list models densenet121        # Show one model's metadata
  modelatlas list models --collection VGG   # List VGG models only
  modelatlas list models --search 'vgg1*'   # Glob match model IDs`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Single model detail view
			if len(args) == 1 {
				return showModel(cmd, app, args[0])
			}

			resourceFlags := globals.ParseResources(cmd)
			return listModels(cmd, app, resourceFlags)
		},
	}

	globals.AddResourceFlags(cmd)

	return cmd
}

// listModels lists records matching the resource flags, in registration order.
func listModels(cmd *cobra.Command, app application.Application, flags *globals.ResourceFlags) error {
	atlas, err := app.Atlas()
	if err != nil {
		return err
	}

	pattern := strings.ToLower(flags.Search)
	if _, err := path.Match(pattern, ""); err != nil {
		return fmt.Errorf("invalid --search pattern %q: %w", flags.Search, err)
	}

	var records []registry.Record
	for rec := range atlas.Registry().Filter(func(rec registry.Record) bool {
		if flags.Collection != "" && !strings.EqualFold(rec.Collection, flags.Collection) {
			return false
		}
		if pattern != "" {
			ok, _ := path.Match(pattern, strings.ToLower(rec.ID))
			return ok
		}
		return true
	}) {
		records = append(records, rec)
		if flags.Limit > 0 && len(records) >= flags.Limit {
			break
		}
	}

	globalFlags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}

	if !globalFlags.Quiet {
		fmt.Fprintf(os.Stderr, "Found %d models\n", len(records))
	}

	return output.FormatRecords(records, globalFlags)
}

// showModel shows detailed information about a specific model.
func showModel(cmd *cobra.Command, app application.Application, modelID string) error {
	atlas, err := app.Atlas()
	if err != nil {
		return err
	}

	rec, err := atlas.Lookup(modelID)
	if err != nil {
		// Suppress usage display for not found errors
		cmd.SilenceUsage = true
		return err
	}

	globalFlags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}

	if globalFlags.Output == "" || globalFlags.Output == "table" {
		printModelDetails(rec)
		return nil
	}

	return output.FormatAny(rec, globalFlags)
}

// printModelDetails prints detailed model information using table format.
func printModelDetails(rec registry.Record) {
	formatter := output.NewFormatter(output.FormatTable)

	fmt.Printf("Model: %s\n\n", rec.ID)

	rows := [][]string{
		{"ID", rec.ID},
		{"Collection", rec.Collection},
	}
	if rec.Name != "" {
		rows = append(rows, []string{"Name", rec.Name})
	}
	if rec.Parameters > 0 {
		rows = append(rows, []string{"Parameters", table.FormatNumber(rec.Parameters)})
	}
	if rec.FLOPs > 0 {
		rows = append(rows, []string{"FLOPs", table.FormatNumber(rec.FLOPs)})
	}
	if rec.FileSize > 0 {
		rows = append(rows, []string{"File Size", table.FormatBytes(rec.FileSize)})
	}
	if len(rec.ArchitectureTags) > 0 {
		rows = append(rows, []string{"Architecture", strings.Join(rec.ArchitectureTags, ", ")})
	}
	if len(rec.TrainingTechniques) > 0 {
		rows = append(rows, []string{"Training Techniques", strings.Join(rec.TrainingTechniques, ", ")})
	}
	if len(rec.TrainingData) > 0 {
		rows = append(rows, []string{"Training Data", strings.Join(rec.TrainingData, ", ")})
	}
	if rec.WeightsURI != "" {
		rows = append(rows, []string{"Weights", rec.WeightsURI})
	}

	_ = formatter.Format(os.Stdout, table.Data{
		Headers: []string{"Property", "Value"},
		Rows:    rows,
	})

	printHyperparameters(rec, formatter)
	printResults(rec, formatter)
}

func printHyperparameters(rec registry.Record, formatter output.Formatter) {
	if len(rec.Hyperparameters) == 0 {
		return
	}

	var rows [][]string
	for _, name := range sortedKeys(rec.Hyperparameters) {
		rows = append(rows, []string{name, fmt.Sprintf("%v", rec.Hyperparameters[name])})
	}

	fmt.Println("\nHyperparameters:")
	_ = formatter.Format(os.Stdout, table.Data{
		Headers: []string{"Name", "Value"},
		Rows:    rows,
	})
}

func printResults(rec registry.Record, formatter output.Formatter) {
	if len(rec.Results) == 0 {
		return
	}

	var rows [][]string
	for _, res := range rec.Results {
		for _, metric := range sortedKeys(res.Metrics) {
			rows = append(rows, []string{
				res.Task,
				res.Dataset,
				metric,
				fmt.Sprintf("%.2f", res.Metrics[metric]),
			})
		}
	}

	fmt.Println("\nResults:")
	_ = formatter.Format(os.Stdout, table.Data{
		Headers: []string{"Task", "Dataset", "Metric", "Value"},
		Rows:    rows,
	})
}

// sortedKeys returns map keys in sorted order for stable output.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

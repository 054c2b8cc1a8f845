package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modelatlas/modelatlas/cmd/modelatlas/cmd/generate"
	"github.com/modelatlas/modelatlas/cmd/modelatlas/cmd/inspect"
	"github.com/modelatlas/modelatlas/cmd/modelatlas/cmd/list"
	"github.com/modelatlas/modelatlas/cmd/modelatlas/cmd/serve"
	"github.com/modelatlas/modelatlas/cmd/modelatlas/cmd/validate"
)

// registerCommands registers all subcommands with the root command.
// This is where we wire up all the command handlers.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(list.NewCommand(a))
	rootCmd.AddCommand(inspect.NewCommand(a))
	rootCmd.AddCommand(serve.NewCommand(a))

	// Management commands
	rootCmd.AddCommand(validate.NewCommand(a))
	rootCmd.AddCommand(generate.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(a.newVersionCommand())
}

// newVersionCommand creates the version command.
func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "modelatlas %s\n", a.version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit:   %s\n", a.commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:    %s\n", a.date)
			fmt.Fprintf(cmd.OutOrStdout(), "  built by: %s\n", a.builtBy)
			return nil
		},
	}
}

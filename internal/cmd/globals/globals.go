// Package globals reads the persistent flags shared by every modelatlas
// command, so subcommands can recover them without threading a struct
// through the whole tree.
package globals

import "github.com/spf13/cobra"

// Flags mirrors the root command's persistent flags.
type Flags struct {
	Output  string // requested output format, empty means auto-detect
	Quiet   bool
	Verbose bool
	NoColor bool
}

// Parse reads the persistent flags off the root of cmd's hierarchy.
func Parse(cmd *cobra.Command) (*Flags, error) {
	pf := cmd.Root().PersistentFlags()

	f := &Flags{}
	var err error
	if f.Output, err = pf.GetString("format"); err != nil {
		return nil, err
	}
	if f.Quiet, err = pf.GetBool("quiet"); err != nil {
		return nil, err
	}
	if f.Verbose, err = pf.GetBool("verbose"); err != nil {
		return nil, err
	}
	if f.NoColor, err = pf.GetBool("no-color"); err != nil {
		return nil, err
	}
	return f, nil
}

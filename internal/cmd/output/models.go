package output

import (
	"os"

	"github.com/modelatlas/modelatlas/internal/cmd/globals"
	"github.com/modelatlas/modelatlas/internal/cmd/table"
	"github.com/modelatlas/modelatlas/pkg/registry"
)

// isTabular reports whether a format renders as columns.
func isTabular(f Format) bool {
	return f == FormatTable || f == FormatWide
}

// FormatRecords prints metadata records in the format the global flags
// request, auto-detecting when none was given. Tabular formats go
// through the shared record layout; json and yaml emit the records
// themselves.
func FormatRecords(records []registry.Record, flags *globals.Flags) error {
	format := DetectFormat(flags.Output)
	formatter := NewFormatter(format)

	if isTabular(format) {
		data := table.RecordsToTableData(records, format == FormatWide)
		return formatter.Format(os.Stdout, data)
	}
	return formatter.Format(os.Stdout, records)
}

// FormatCollections prints collections the same way.
func FormatCollections(collections []registry.Collection, flags *globals.Flags) error {
	format := DetectFormat(flags.Output)
	formatter := NewFormatter(format)

	if isTabular(format) {
		return formatter.Format(os.Stdout, table.CollectionsToTableData(collections))
	}
	return formatter.Format(os.Stdout, collections)
}

// FormatAny prints arbitrary command output, for commands whose data
// has no dedicated table layout.
func FormatAny(data any, flags *globals.Flags) error {
	return NewFormatter(DetectFormat(flags.Output)).Format(os.Stdout, data)
}

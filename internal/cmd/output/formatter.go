// Package output renders command results as tables, JSON, or YAML.
// Table layout is delegated to internal/cmd/table so commands describe
// rows once and pick the encoding at print time.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/modelatlas/modelatlas/internal/cmd/table"
)

// Format selects an output encoding.
type Format string

const (
	FormatTable Format = "table" // human-readable columns
	FormatWide  Format = "wide"  // table with extra columns
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a user-supplied format string. The empty string
// is accepted and means "detect".
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	switch f {
	case FormatTable, FormatWide, FormatJSON, FormatYAML, "":
		return f, nil
	}
	return "", fmt.Errorf("invalid format %q: must be one of: table, json, yaml, wide", s)
}

// DetectFormat picks the format to use when none was requested: tables
// on a terminal, JSON when stdout is piped or redirected.
func DetectFormat(explicit string) Format {
	if explicit != "" {
		return Format(strings.ToLower(explicit))
	}
	fd := os.Stdout.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return FormatTable
	}
	return FormatJSON
}

// Formatter writes one value in one encoding.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// NewFormatter returns the formatter for a format. Unknown formats fall
// back to the table renderer.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return jsonFormatter{}
	case FormatYAML:
		return yamlFormatter{}
	case FormatWide:
		return tableFormatter{wide: true}
	default:
		return tableFormatter{}
	}
}

type jsonFormatter struct{}

func (jsonFormatter) Format(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

type yamlFormatter struct{}

func (yamlFormatter) Format(w io.Writer, data any) error {
	out, err := yaml.MarshalWithOptions(data,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

type tableFormatter struct {
	wide bool
}

// Format renders table.Data directly. Anything else is reflected into a
// table when it is a struct or struct slice, otherwise emitted as JSON.
func (f tableFormatter) Format(w io.Writer, data any) error {
	if td, ok := data.(table.Data); ok {
		return renderTable(w, td)
	}
	if td := reflectTable(data); td != nil {
		return renderTable(w, *td)
	}
	return jsonFormatter{}.Format(w, data)
}

// twAligns maps table alignments onto tablewriter's per-column settings.
var twAligns = map[table.Align]tw.Align{
	table.AlignLeft:   tw.AlignLeft,
	table.AlignCenter: tw.AlignCenter,
	table.AlignRight:  tw.AlignRight,
}

func renderTable(w io.Writer, data table.Data) error {
	cfg := tablewriter.Config{}
	if len(data.ColumnAlignment) > 0 {
		perColumn := make([]tw.Align, len(data.ColumnAlignment))
		for i, a := range data.ColumnAlignment {
			align, ok := twAligns[a]
			if !ok {
				align = tw.Skip
			}
			perColumn[i] = align
		}
		cell := tw.CellAlignment{PerColumn: perColumn}
		cfg.Header.Alignment = cell
		cfg.Row.Alignment = cell
	}

	tbl := tablewriter.NewTable(w, tablewriter.WithConfig(cfg))
	if len(data.Headers) > 0 {
		tbl.Header(anyRow(data.Headers)...)
	}
	for _, row := range data.Rows {
		if err := tbl.Append(anyRow(row)...); err != nil {
			return err
		}
	}
	return tbl.Render()
}

func anyRow(cells []string) []any {
	out := make([]any, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}

// reflectTable converts a struct into a Property/Value table and a
// non-empty struct slice into a headed table, using JSON tags for
// column names. Other kinds return nil.
func reflectTable(data any) *table.Data {
	v := reflect.ValueOf(data)
	switch {
	case v.Kind() == reflect.Struct:
		return structTable(v)
	case v.Kind() == reflect.Slice && v.Len() > 0 && v.Index(0).Kind() == reflect.Struct:
		return sliceTable(v)
	}
	return nil
}

func structTable(v reflect.Value) *table.Data {
	t := v.Type()
	rows := make([][]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		rows = append(rows, []string{
			columnName(t.Field(i)),
			fmt.Sprintf("%v", v.Field(i).Interface()),
		})
	}
	return &table.Data{Headers: []string{"Property", "Value"}, Rows: rows}
}

func sliceTable(v reflect.Value) *table.Data {
	t := v.Index(0).Type()

	headers := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		headers = append(headers, columnName(t.Field(i)))
	}

	rows := make([][]string, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)
		row := make([]string, 0, t.NumField())
		for j := 0; j < t.NumField(); j++ {
			row = append(row, fmt.Sprintf("%v", elem.Field(j).Interface()))
		}
		rows = append(rows, row)
	}

	return &table.Data{Headers: headers, Rows: rows}
}

var titleCaser = cases.Title(language.English)

// columnName derives a header from a struct field, preferring its JSON
// tag: "file_size,omitempty" becomes "File Size".
func columnName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" || tag == "-" {
		return field.Name
	}
	if idx := strings.Index(tag, ","); idx > 0 {
		tag = tag[:idx]
	}
	return titleCaser.String(strings.ReplaceAll(tag, "_", " "))
}

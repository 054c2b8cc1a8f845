// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/modelatlas/modelatlas/pkg/registry"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// RecordsToTableData converts metadata records to table format.
func RecordsToTableData(records []registry.Record, wide bool) Data {
	headers := []string{"ID", "Collection", "Params", "FLOPs", "Size", "Top-1"}
	if wide {
		headers = append(headers, "Architecture", "Training Data", "Weights")
	}

	alignment := []Align{AlignLeft, AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight}
	if wide {
		alignment = append(alignment, AlignLeft, AlignLeft, AlignLeft)
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := []string{
			rec.ID,
			rec.Collection,
			FormatCount(rec.Parameters),
			FormatCount(rec.FLOPs),
			FormatBytes(rec.FileSize),
			FormatMetric(rec, "Top 1 Accuracy"),
		}

		if wide {
			arch := strings.Join(rec.ArchitectureTags, ", ")
			if arch == "" {
				arch = "-"
			}

			data := strings.Join(rec.TrainingData, ", ")
			if data == "" {
				data = "-"
			}

			weights := rec.WeightsURI
			if weights == "" {
				weights = "-"
			}

			row = append(row, arch, data, weights)
		}

		rows = append(rows, row)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: alignment,
	}
}

// CollectionsToTableData converts collections to table format.
func CollectionsToTableData(collections []registry.Collection) Data {
	headers := []string{"Name", "Models", "Paper"}

	rows := make([][]string, 0, len(collections))
	for _, coll := range collections {
		paper := coll.PaperTitle
		if paper == "" {
			paper = "-"
		}

		rows = append(rows, []string{
			coll.Name,
			strconv.Itoa(len(coll.Members)),
			paper,
		})
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight, AlignLeft},
	}
}

// FormatCount formats large counts with a metric suffix, e.g. 7980000 -> "8.0M".
func FormatCount(n int64) string {
	switch {
	case n <= 0:
		return "-"
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.1fG", float64(n)/1_000_000_000)
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return strconv.FormatInt(n, 10)
	}
}

// FormatBytes formats a byte count using binary units, e.g. 32340000 -> "30.8 MiB".
func FormatBytes(n int64) string {
	switch {
	case n <= 0:
		return "-"
	case n >= 1<<30:
		return fmt.Sprintf("%.1f GiB", float64(n)/(1<<30))
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return strconv.FormatInt(n, 10) + " B"
	}
}

// FormatMetric looks up a named result metric and formats it, or "-".
func FormatMetric(rec registry.Record, name string) string {
	if v, ok := rec.Metric(name); ok {
		return fmt.Sprintf("%.2f", v)
	}
	return "-"
}

// FormatNumber renders n with comma separators, e.g. 7980000 ->
// "7,980,000".
func FormatNumber(n int64) string {
	s := strconv.FormatInt(n, 10)
	sign := ""
	if n < 0 {
		sign, s = "-", s[1:]
	}

	var b strings.Builder
	b.WriteString(sign)
	for i := range len(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

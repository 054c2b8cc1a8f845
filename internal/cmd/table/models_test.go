package table

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/modelatlas/modelatlas/pkg/registry"
)

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "-", FormatCount(0))
	assert.Equal(t, "512", FormatCount(512))
	assert.Equal(t, "1.5K", FormatCount(1500))
	assert.Equal(t, "8.0M", FormatCount(7_980_000))
	assert.Equal(t, "12.3G", FormatCount(12_304_443_136))
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "-", FormatBytes(0))
	assert.Equal(t, "100 B", FormatBytes(100))
	assert.Equal(t, "1.0 KiB", FormatBytes(1024))
	assert.Equal(t, "30.8 MiB", FormatBytes(32_342_954))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "999", FormatNumber(999))
	assert.Equal(t, "7,980,000", FormatNumber(7_980_000))
	assert.Equal(t, "1,234", FormatNumber(1234))
}

func TestFormatMetric(t *testing.T) {
	rec := registry.Record{
		Results: []registry.Result{
			{
				Task:    "Image Classification",
				Dataset: "ImageNet",
				Metrics: map[string]float64{"Top 1 Accuracy": 75.56},
			},
		},
	}

	assert.Equal(t, "75.56", FormatMetric(rec, "Top 1 Accuracy"))
	assert.Equal(t, "-", FormatMetric(rec, "Top 5 Accuracy"))
}

func TestRecordsToTableData(t *testing.T) {
	records := []registry.Record{
		{
			ID:         "vgg11",
			Collection: "VGG",
			Parameters: 132_863_336,
			FLOPs:      7_609_090_048,
			FileSize:   531_456_000,
		},
	}

	data := RecordsToTableData(records, false)
	assert.Equal(t, []string{"ID", "Collection", "Params", "FLOPs", "Size", "Top-1"}, data.Headers)
	assert.Len(t, data.Rows, 1)
	assert.Equal(t, "vgg11", data.Rows[0][0])
	assert.Equal(t, "132.9M", data.Rows[0][2])

	wide := RecordsToTableData(records, true)
	assert.Greater(t, len(wide.Headers), len(data.Headers))
}

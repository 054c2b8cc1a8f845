package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelatlas/modelatlas/internal/cmd/table"
)

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"table", "json", "yaml", "wide", "JSON", ""} {
		_, err := ParseFormat(valid)
		assert.NoError(t, err, "format %q", valid)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatJSON).Format(&buf, map[string]string{"id": "vgg11"}))

	var out map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "vgg11", out["id"])
}

func TestTableFormatterRendersData(t *testing.T) {
	var buf bytes.Buffer
	data := table.Data{
		Headers: []string{"ID", "Params"},
		Rows:    [][]string{{"densenet121", "8.0M"}},
	}
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, data))

	out := buf.String()
	assert.Contains(t, out, "densenet121")
	assert.Contains(t, out, "8.0M")
}

func TestTableFormatterReflectsStruct(t *testing.T) {
	var buf bytes.Buffer
	value := struct {
		ID       string `json:"id"`
		FileSize int64  `json:"file_size"`
	}{ID: "vgg16", FileSize: 100}

	require.NoError(t, NewFormatter(FormatTable).Format(&buf, value))

	out := buf.String()
	assert.Contains(t, out, "File Size", "json tag should become a title-cased property name")
	assert.Contains(t, out, "vgg16")
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatYAML).Format(&buf, map[string]int{"models": 12}))
	assert.True(t, strings.Contains(buf.String(), "models: 12"))
}

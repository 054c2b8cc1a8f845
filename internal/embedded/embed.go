// Package embedded compiles the default model catalog into the binary
// so lookups work offline with zero setup.
package embedded

import (
	"embed"
)

// FS embeds the catalog: collection descriptions, per-model YAML
// records, and markdown model cards.
//
//go:embed catalog/*
var FS embed.FS

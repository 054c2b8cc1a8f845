package modelatlas

import (
	"io/fs"
)

// config holds options applied by New.
type config struct {
	fsys fs.FS
	path string
}

// Option configures an Atlas.
type Option func(*config)

// WithFS loads the catalog from a custom filesystem instead of the
// embedded data. The filesystem root must contain collections.yaml and
// the collections/ tree.
func WithFS(fsys fs.FS) Option {
	return func(c *config) {
		c.fsys = fsys
	}
}

// WithPath loads the catalog from a directory on disk. New fails if the
// directory does not exist, so a mistyped path cannot masquerade as an
// empty catalog.
func WithPath(dir string) Option {
	return func(c *config) {
		c.path = dir
	}
}

// Package modelatlas provides the main entry point for the modelatlas
// pretrained-model metadata registry. It wires together catalog loading,
// the frozen in-memory registry, and name resolution behind one facade.
//
// The registry is built once at startup from static catalog data and is
// immutable afterwards, so an Atlas may be shared freely across
// goroutines.
//
// Example usage:
//
//	atlas, err := modelatlas.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rec, err := atlas.Lookup("densenet121")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s: %d parameters\n", rec.ID, rec.Parameters)
//
//	// Resolve a variant name to loader parameters
//	cfg, err := atlas.Resolve("vgg11.tv_in1k")
//
//	// Load from a catalog directory instead of the embedded data
//	atlas, err = modelatlas.New(modelatlas.WithPath("./catalog"))
package modelatlas

import (
	"io/fs"

	"github.com/modelatlas/modelatlas/internal/embedded"
	"github.com/modelatlas/modelatlas/pkg/errors"
	"github.com/modelatlas/modelatlas/pkg/registry"
	"github.com/modelatlas/modelatlas/pkg/resolve"
)

// Atlas is a frozen model metadata registry with name resolution.
type Atlas struct {
	reg      *registry.Registry
	resolver *resolve.Resolver
}

// New builds an Atlas from catalog data. With no options the embedded
// catalog is used. The underlying registry is validated and frozen
// before it is returned.
func New(opts ...Option) (*Atlas, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	var (
		reg *registry.Registry
		err error
	)
	switch {
	case cfg.path != "":
		// LoadPath stats the directory first, so a mistyped path is an
		// error rather than an empty catalog.
		reg, err = registry.LoadPath(cfg.path)
	case cfg.fsys != nil:
		reg, err = registry.Load(cfg.fsys)
	default:
		sub, subErr := fs.Sub(embedded.FS, "catalog")
		if subErr != nil {
			return nil, errors.WrapResource("load", "embedded catalog", "", subErr)
		}
		reg, err = registry.Load(sub)
	}
	if err != nil {
		return nil, err
	}
	reg.Freeze()

	return &Atlas{
		reg:      reg,
		resolver: resolve.New(reg),
	}, nil
}

// Registry returns the underlying frozen registry.
func (a *Atlas) Registry() *registry.Registry {
	return a.reg
}

// Lookup returns the metadata record for a model ID.
func (a *Atlas) Lookup(id string) (registry.Record, error) {
	return a.reg.Lookup(id)
}

// Resolve returns the loader config for a model name, applying
// pretrained-tag fallback.
func (a *Atlas) Resolve(name string) (resolve.Config, error) {
	return a.resolver.Resolve(name)
}

// List returns registered model IDs matching a glob pattern, in
// registration order. An empty pattern matches everything.
func (a *Atlas) List(pattern string) ([]string, error) {
	return a.resolver.List(pattern)
}

// Collections returns all collections in registration order.
func (a *Atlas) Collections() []registry.Collection {
	return a.reg.Collections()
}

// Package resolve turns model variant names into the constructor
// parameters a model loader needs: the weights artifact URI plus the
// record's hyperparameters (image size, crop percentage, interpolation,
// normalization constants, ...).
//
// Names may carry a pretrained tag after a dot, e.g. "vgg11.tv_in1k".
// Resolution tries the exact ID first and falls back to the base
// variant, so catalogs that register only tagged IDs and catalogs that
// register bare variants both work. Fetching or validating the weight
// bytes is deliberately out of scope; callers apply their own transport
// policy to the returned URI.
package resolve

import (
	"maps"
	"path"
	"strings"

	"github.com/modelatlas/modelatlas/pkg/errors"
	"github.com/modelatlas/modelatlas/pkg/registry"
)

// Config holds everything a loader needs to construct and initialize a
// model instance from a registry record.
type Config struct {
	// ID is the record the config was resolved from.
	ID string `json:"id" yaml:"id"`

	// Variant is the architecture variant portion of the requested name.
	Variant string `json:"variant" yaml:"variant"`

	// Tag is the pretrained tag portion, empty if the name had none.
	Tag string `json:"tag,omitempty" yaml:"tag,omitempty"`

	// WeightsURI locates the pretrained weights artifact.
	WeightsURI string `json:"weights,omitempty" yaml:"weights,omitempty"`

	// Hyperparameters are the record's constructor parameters.
	Hyperparameters map[string]any `json:"hyperparameters,omitempty" yaml:"hyperparameters,omitempty"`
}

// Resolver resolves variant names against a registry.
type Resolver struct {
	reg *registry.Registry
}

// New creates a resolver backed by the given registry.
func New(reg *registry.Registry) *Resolver {
	return &Resolver{reg: reg}
}

// Resolve returns the loader config for a model name. The exact ID is
// preferred; a tagged name whose tagged record is absent falls back to
// the bare variant.
func (r *Resolver) Resolve(name string) (Config, error) {
	if name == "" {
		return Config{}, errors.NewValidationError("name", name, "model name must not be empty")
	}

	variant, tag := SplitName(name)

	rec, err := r.reg.Lookup(name)
	if err != nil && tag != "" {
		rec, err = r.reg.Lookup(variant)
	}
	if err != nil {
		return Config{}, errors.NewNotFoundError("model", name)
	}

	hp := make(map[string]any, len(rec.Hyperparameters))
	maps.Copy(hp, rec.Hyperparameters)

	return Config{
		ID:              rec.ID,
		Variant:         variant,
		Tag:             tag,
		WeightsURI:      rec.WeightsURI,
		Hyperparameters: hp,
	}, nil
}

// List returns the IDs of registered records matching the glob pattern,
// case-insensitively, in registration order. An empty pattern matches
// everything; a malformed pattern is an error rather than an empty
// result.
func (r *Resolver) List(pattern string) ([]string, error) {
	lowered := strings.ToLower(pattern)

	// path.Match reports a bad pattern regardless of the name, so one
	// check up front covers every record.
	if _, err := path.Match(lowered, ""); err != nil {
		return nil, errors.NewValidationError("pattern", pattern, "malformed glob pattern")
	}

	var out []string
	for rec := range r.reg.Filter(func(rec registry.Record) bool {
		if pattern == "" {
			return true
		}
		ok, _ := path.Match(lowered, strings.ToLower(rec.ID))
		return ok
	}) {
		out = append(out, rec.ID)
	}
	return out, nil
}

// SplitName splits a model name into variant and pretrained tag.
// "vgg11.tv_in1k" -> ("vgg11", "tv_in1k"); "vgg11" -> ("vgg11", "").
func SplitName(name string) (variant, tag string) {
	variant, tag, _ = strings.Cut(name, ".")
	return variant, tag
}

// Package registry provides the core catalog system for pretrained
// image-classification model metadata. A Registry maps a model variant
// identifier to its metadata record and groups variants into collections
// that share one originating paper.
//
// The registry is built once from static catalog data (embedded files,
// a directory on disk, or any fs.FS), then frozen. After freezing it is
// read-only and safe for concurrent lookups without coordination.
//
// Example usage:
//
//	reg := registry.New()
//	_ = reg.AddCollection(registry.Collection{
//	    Name:       "DenseNet",
//	    PaperTitle: "Densely Connected Convolutional Networks",
//	})
//	_ = reg.Register(registry.Record{ID: "densenet121", Collection: "DenseNet"})
//	reg.Freeze()
//
//	rec, err := reg.Lookup("densenet121")
package registry

import (
	"maps"
	"slices"

	"github.com/agentstation/utc"
)

// Record is the metadata entry for one model variant: a named, trained
// configuration of a neural architecture (e.g. "densenet121").
type Record struct {
	// Core identity
	ID         string `json:"id" yaml:"id"`                 // Unique variant identifier
	Collection string `json:"collection" yaml:"collection"` // Owning collection name (lookup only, no ownership)
	Name       string `json:"name,omitempty" yaml:"name,omitempty"`

	// Compute and storage footprint
	FLOPs      int64 `json:"flops" yaml:"flops"`           // Multiply-accumulate count for one forward pass
	Parameters int64 `json:"parameters" yaml:"parameters"` // Trainable parameter count
	FileSize   int64 `json:"file_size" yaml:"file_size"`   // Weights artifact size in bytes

	// Descriptive tags
	ArchitectureTags   []string `json:"architecture,omitempty" yaml:"architecture,omitempty"`
	TrainingTechniques []string `json:"training_techniques,omitempty" yaml:"training_techniques,omitempty"`
	TrainingData       []string `json:"training_data,omitempty" yaml:"training_data,omitempty"`

	// Hyperparameters is an open mapping since the key set varies per
	// record (learning rate, epochs, crop percentage, image size, ...).
	Hyperparameters map[string]any `json:"hyperparameters,omitempty" yaml:"hyperparameters,omitempty"`

	// WeightsURI locates the pretrained weights artifact. The registry
	// never fetches or validates the bytes behind it.
	WeightsURI string `json:"weights,omitempty" yaml:"weights,omitempty"`

	// Results holds benchmark outcomes in their published order.
	Results []Result `json:"results,omitempty" yaml:"results,omitempty"`

	// Timestamps for record keeping and auditing
	CreatedAt utc.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt utc.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// Result is one benchmark outcome: a task evaluated on a dataset with
// one or more named metric values.
type Result struct {
	Task    string             `json:"task" yaml:"task"`
	Dataset string             `json:"dataset" yaml:"dataset"`
	Metrics map[string]float64 `json:"metrics" yaml:"metrics"`
}

// Metric returns the first value recorded under the given metric name
// across the record's results, in result order.
func (r Record) Metric(name string) (float64, bool) {
	for _, res := range r.Results {
		if v, ok := res.Metrics[name]; ok {
			return v, true
		}
	}
	return 0, false
}

// Hyperparameter returns the named hyperparameter value if present.
func (r Record) Hyperparameter(name string) (any, bool) {
	v, ok := r.Hyperparameters[name]
	return v, ok
}

// Clone returns a deep copy of the record so callers cannot mutate
// registry state through shared maps or slices.
func (r Record) Clone() Record {
	out := r
	out.ArchitectureTags = slices.Clone(r.ArchitectureTags)
	out.TrainingTechniques = slices.Clone(r.TrainingTechniques)
	out.TrainingData = slices.Clone(r.TrainingData)
	if r.Hyperparameters != nil {
		out.Hyperparameters = make(map[string]any, len(r.Hyperparameters))
		maps.Copy(out.Hyperparameters, r.Hyperparameters)
	}
	if r.Results != nil {
		out.Results = make([]Result, len(r.Results))
		for i, res := range r.Results {
			cloned := res
			if res.Metrics != nil {
				cloned.Metrics = make(map[string]float64, len(res.Metrics))
				maps.Copy(cloned.Metrics, res.Metrics)
			}
			out.Results[i] = cloned
		}
	}
	return out
}

package registry

import (
	"slices"

	"github.com/agentstation/utc"
)

// Collection groups related model variants sharing one paper and
// training methodology. It is a label for rendering and filtering,
// not a behavioral unit: membership is maintained exclusively by
// Registry.Register.
type Collection struct {
	Name       string `json:"name" yaml:"name"`
	PaperTitle string `json:"paper_title,omitempty" yaml:"paper_title,omitempty"`
	PaperURL   string `json:"paper_url,omitempty" yaml:"paper_url,omitempty"`

	// Members holds the IDs of records registered under this collection,
	// in registration order. IDs, not references: the registry is the
	// arena holding both sides of the relationship.
	Members []string `json:"members,omitempty" yaml:"members,omitempty"`

	CreatedAt utc.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt utc.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// Contains reports whether the collection lists the given record ID.
func (c Collection) Contains(id string) bool {
	return slices.Contains(c.Members, id)
}

// Clone returns a copy with its own member slice.
func (c Collection) Clone() Collection {
	out := c
	out.Members = slices.Clone(c.Members)
	return out
}

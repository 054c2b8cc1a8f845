package registry

import (
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/modelatlas/modelatlas/pkg/errors"
)

// Registry is the authoritative mapping from model identifier to its
// metadata record, and from collection name to its member identifiers.
//
// Construction is append-only: collections are added first, then records
// registered under them. Freeze marks the end of construction; every
// write afterwards fails with errors.ErrReadOnly. Reads are guarded by
// an RWMutex so concurrent readers are safe in either phase.
type Registry struct {
	mu              sync.RWMutex
	records         map[string]*Record
	order           []string // record IDs in registration order
	collections     map[string]*Collection
	collectionOrder []string // collection names in registration order
	frozen          bool
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		records:     make(map[string]*Record),
		collections: make(map[string]*Collection),
	}
}

// AddCollection registers a collection. Any member IDs on the input are
// ignored: membership is derived from Register calls only.
func (r *Registry) AddCollection(c Collection) error {
	if c.Name == "" {
		return errors.NewValidationError("name", c.Name, "collection name must not be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return errors.ErrReadOnly
	}
	if _, exists := r.collections[c.Name]; exists {
		return errors.NewDuplicateError("collection", c.Name)
	}

	stored := c.Clone()
	stored.Members = nil
	r.collections[c.Name] = &stored
	r.collectionOrder = append(r.collectionOrder, c.Name)
	return nil
}

// Register inserts a record under the collection named by its Collection
// field. It fails with a DuplicateError if the ID is already present and
// with an UnknownCollectionError if the collection has not been added
// first. On success the record's ID is appended to the collection's
// member list.
func (r *Registry) Register(rec Record) error {
	if err := validateRecord(rec); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return errors.ErrReadOnly
	}
	if _, exists := r.records[rec.ID]; exists {
		return errors.NewDuplicateError("record", rec.ID)
	}
	collection, ok := r.collections[rec.Collection]
	if !ok {
		return errors.NewUnknownCollectionError(rec.Collection)
	}

	stored := rec.Clone()
	r.records[rec.ID] = &stored
	r.order = append(r.order, rec.ID)
	collection.Members = append(collection.Members, rec.ID)
	return nil
}

// Lookup returns the record for the given ID. It fails with a
// NotFoundError if the ID is absent and never mutates registry state.
func (r *Registry) Lookup(id string) (Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[id]
	if !ok {
		return Record{}, errors.NewNotFoundError("record", id)
	}
	return rec.Clone(), nil
}

// Has reports whether a record with the given ID exists.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	_, ok := r.records[id]
	r.mu.RUnlock()
	return ok
}

// Collection returns the collection with the given name.
func (r *Registry) Collection(name string) (Collection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.collections[name]
	if !ok {
		return Collection{}, errors.NewUnknownCollectionError(name)
	}
	return c.Clone(), nil
}

// ListByCollection returns the records belonging to the named collection
// in registration order. Repeated calls with no intervening Register
// return identical sequences.
func (r *Registry) ListByCollection(name string) ([]Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.collections[name]
	if !ok {
		return nil, errors.NewUnknownCollectionError(name)
	}

	out := make([]Record, 0, len(c.Members))
	for _, id := range c.Members {
		if rec, ok := r.records[id]; ok {
			out = append(out, rec.Clone())
		}
	}
	return out, nil
}

// Filter returns a lazy, restartable sequence over all records matching
// the predicate, in registration order. The predicate is evaluated on
// demand during iteration, so breaking early skips the remaining work.
func (r *Registry) Filter(pred func(Record) bool) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		r.mu.RLock()
		ids := slices.Clone(r.order)
		r.mu.RUnlock()

		for _, id := range ids {
			r.mu.RLock()
			rec, ok := r.records[id]
			var candidate Record
			if ok {
				candidate = rec.Clone()
			}
			r.mu.RUnlock()

			if !ok || !pred(candidate) {
				continue
			}
			if !yield(candidate) {
				return
			}
		}
	}
}

// Records returns all records in registration order.
func (r *Registry) Records() []Record {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Record, 0, len(r.order))
	for _, id := range r.order {
		if rec, ok := r.records[id]; ok {
			out = append(out, rec.Clone())
		}
	}
	return out
}

// Collections returns all collections in registration order.
func (r *Registry) Collections() []Collection {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Collection, 0, len(r.collectionOrder))
	for _, name := range r.collectionOrder {
		if c, ok := r.collections[name]; ok {
			out = append(out, c.Clone())
		}
	}
	return out
}

// Len returns the number of registered records.
func (r *Registry) Len() int {
	r.mu.RLock()
	n := len(r.records)
	r.mu.RUnlock()
	return n
}

// Freeze ends the construction phase. All subsequent write operations
// fail with errors.ErrReadOnly.
func (r *Registry) Freeze() {
	r.mu.Lock()
	r.frozen = true
	r.mu.Unlock()
}

// Frozen reports whether the registry has been frozen.
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	frozen := r.frozen
	r.mu.RUnlock()
	return frozen
}

// Validate checks referential symmetry: every record's collection lists
// the record as a member, and every member ID resolves to a record whose
// Collection field names that collection.
func (r *Registry) Validate() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		rec := r.records[id]
		c, ok := r.collections[rec.Collection]
		if !ok {
			return errors.NewUnknownCollectionError(rec.Collection)
		}
		if !slices.Contains(c.Members, id) {
			return errors.NewValidationError("members", id,
				fmt.Sprintf("collection %s does not list record %s", rec.Collection, id))
		}
	}

	for _, name := range r.collectionOrder {
		c := r.collections[name]
		for _, id := range c.Members {
			rec, ok := r.records[id]
			if !ok {
				return errors.NewNotFoundError("record", id)
			}
			if rec.Collection != name {
				return errors.NewValidationError("collection", id,
					fmt.Sprintf("record %s claims collection %s, listed under %s", id, rec.Collection, name))
			}
		}
	}

	return nil
}

// validateRecord checks the structural invariants of a record before
// insertion.
func validateRecord(rec Record) error {
	if rec.ID == "" {
		return errors.NewValidationError("id", rec.ID, "record ID must not be empty")
	}
	if rec.Collection == "" {
		return errors.NewValidationError("collection", rec.Collection, "record must name its collection")
	}
	if rec.FLOPs < 0 {
		return errors.NewValidationError("flops", rec.FLOPs, "must be non-negative")
	}
	if rec.Parameters < 0 {
		return errors.NewValidationError("parameters", rec.Parameters, "must be non-negative")
	}
	if rec.FileSize < 0 {
		return errors.NewValidationError("file_size", rec.FileSize, "must be non-negative")
	}
	return nil
}

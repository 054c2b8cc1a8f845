package registry

import (
	"testing"

	"github.com/modelatlas/modelatlas/pkg/errors"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()

	r := New()
	if err := r.AddCollection(Collection{
		Name:       "DenseNet",
		PaperTitle: "Densely Connected Convolutional Networks",
		PaperURL:   "https://arxiv.org/abs/1608.06993",
	}); err != nil {
		t.Fatalf("AddCollection: %v", err)
	}
	if err := r.Register(Record{
		ID:         "densenet121",
		Collection: "DenseNet",
		Parameters: 7980000,
		FLOPs:      3641843200,
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	return r
}

func TestRegisterAndLookup(t *testing.T) {
	r := newTestRegistry(t)

	rec, err := r.Lookup("densenet121")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if rec.Parameters != 7980000 {
		t.Errorf("Parameters = %d, want 7980000", rec.Parameters)
	}
	if rec.FLOPs != 3641843200 {
		t.Errorf("FLOPs = %d, want 3641843200", rec.FLOPs)
	}

	members, err := r.ListByCollection("DenseNet")
	if err != nil {
		t.Fatalf("ListByCollection: %v", err)
	}
	if len(members) != 1 || members[0].ID != "densenet121" {
		t.Errorf("ListByCollection = %v, want exactly densenet121", members)
	}
}

func TestDuplicateIDLeavesPriorUnchanged(t *testing.T) {
	r := newTestRegistry(t)

	err := r.Register(Record{
		ID:         "densenet121",
		Collection: "DenseNet",
		Parameters: 1, // would clobber the real value if the insert went through
	})
	if !errors.IsAlreadyExists(err) {
		t.Fatalf("expected duplicate error, got %v", err)
	}

	rec, err := r.Lookup("densenet121")
	if err != nil {
		t.Fatalf("Lookup after failed register: %v", err)
	}
	if rec.Parameters != 7980000 {
		t.Errorf("prior record changed by failed registration: Parameters = %d", rec.Parameters)
	}

	c, err := r.Collection("DenseNet")
	if err != nil {
		t.Fatalf("Collection: %v", err)
	}
	if len(c.Members) != 1 {
		t.Errorf("failed registration grew member list: %v", c.Members)
	}
}

func TestRegisterUnknownCollection(t *testing.T) {
	r := New()

	err := r.Register(Record{ID: "vgg16", Collection: "VGG"})
	if !errors.IsUnknownCollection(err) {
		t.Fatalf("expected unknown collection error, got %v", err)
	}
	if r.Len() != 0 {
		t.Error("failed registration should not insert the record")
	}
}

func TestLookupAbsentDoesNotMutate(t *testing.T) {
	r := newTestRegistry(t)

	_, err := r.Lookup("nonexistent_model")
	if !errors.IsNotFound(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
	if r.Len() != 1 {
		t.Errorf("Lookup mutated registry: len = %d", r.Len())
	}
}

func TestListByCollectionUnknown(t *testing.T) {
	r := newTestRegistry(t)

	if _, err := r.ListByCollection("ResNeXt"); !errors.IsUnknownCollection(err) {
		t.Fatalf("expected unknown collection error, got %v", err)
	}
}

func TestListByCollectionDeterministic(t *testing.T) {
	r := New()
	if err := r.AddCollection(Collection{Name: "VGG"}); err != nil {
		t.Fatal(err)
	}
	ids := []string{"vgg11", "vgg13", "vgg16", "vgg19"}
	for _, id := range ids {
		if err := r.Register(Record{ID: id, Collection: "VGG"}); err != nil {
			t.Fatalf("Register(%s): %v", id, err)
		}
	}

	first, err := r.ListByCollection("VGG")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := r.ListByCollection("VGG")
		if err != nil {
			t.Fatal(err)
		}
		if len(again) != len(first) {
			t.Fatalf("length changed between calls: %d vs %d", len(again), len(first))
		}
		for j := range again {
			if again[j].ID != ids[j] {
				t.Errorf("call %d position %d = %s, want %s", i, j, again[j].ID, ids[j])
			}
		}
	}
}

func TestFilterByAccuracy(t *testing.T) {
	r := New()
	if err := r.AddCollection(Collection{Name: "Inception v4"}); err != nil {
		t.Fatal(err)
	}

	records := []struct {
		id   string
		top1 float64
	}{
		{"model_a", 81.49},
		{"model_b", 82.26},
		{"model_c", 75.56},
	}
	for _, m := range records {
		err := r.Register(Record{
			ID:         m.id,
			Collection: "Inception v4",
			Results: []Result{{
				Task:    "Image Classification",
				Dataset: "ImageNet",
				Metrics: map[string]float64{"Top 1 Accuracy": m.top1},
			}},
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	var got []string
	for rec := range r.Filter(func(rec Record) bool {
		top1, ok := rec.Metric("Top 1 Accuracy")
		return ok && top1 > 80
	}) {
		got = append(got, rec.ID)
	}

	want := []string{"model_a", "model_b"}
	if len(got) != len(want) {
		t.Fatalf("Filter returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Filter order: got %v, want %v", got, want)
		}
	}
}

func TestFilterIsRestartable(t *testing.T) {
	r := newTestRegistry(t)
	seq := r.Filter(func(Record) bool { return true })

	for i := 0; i < 3; i++ {
		count := 0
		for range seq {
			count++
		}
		if count != 1 {
			t.Errorf("iteration %d yielded %d records, want 1", i, count)
		}
	}
}

func TestFreezeRejectsWrites(t *testing.T) {
	r := newTestRegistry(t)
	r.Freeze()

	if !r.Frozen() {
		t.Fatal("Frozen() = false after Freeze")
	}
	if err := r.Register(Record{ID: "x", Collection: "DenseNet"}); !errors.IsReadOnly(err) {
		t.Errorf("Register on frozen registry: got %v, want read-only error", err)
	}
	if err := r.AddCollection(Collection{Name: "New"}); !errors.IsReadOnly(err) {
		t.Errorf("AddCollection on frozen registry: got %v, want read-only error", err)
	}

	// Reads still work.
	if _, err := r.Lookup("densenet121"); err != nil {
		t.Errorf("Lookup on frozen registry: %v", err)
	}
}

func TestValidateReferentialSymmetry(t *testing.T) {
	r := newTestRegistry(t)
	if err := r.Validate(); err != nil {
		t.Fatalf("Validate on consistent registry: %v", err)
	}

	for _, c := range r.Collections() {
		for _, id := range c.Members {
			rec, err := r.Lookup(id)
			if err != nil {
				t.Fatalf("member %s does not resolve: %v", id, err)
			}
			if rec.Collection != c.Name {
				t.Errorf("record %s names collection %s, listed under %s", id, rec.Collection, c.Name)
			}
		}
	}
}

func TestRegisterValidation(t *testing.T) {
	r := New()
	if err := r.AddCollection(Collection{Name: "VGG"}); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name string
		rec  Record
	}{
		{"empty id", Record{Collection: "VGG"}},
		{"empty collection", Record{ID: "vgg16"}},
		{"negative flops", Record{ID: "vgg16", Collection: "VGG", FLOPs: -1}},
		{"negative parameters", Record{ID: "vgg16", Collection: "VGG", Parameters: -1}},
		{"negative file size", Record{ID: "vgg16", Collection: "VGG", FileSize: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := r.Register(tc.rec); !errors.IsValidationError(err) {
				t.Errorf("got %v, want validation error", err)
			}
		})
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	r := New()
	if err := r.AddCollection(Collection{Name: "VGG"}); err != nil {
		t.Fatal(err)
	}
	if err := r.Register(Record{
		ID:              "vgg16",
		Collection:      "VGG",
		Hyperparameters: map[string]any{"image_size": 224},
	}); err != nil {
		t.Fatal(err)
	}

	rec, err := r.Lookup("vgg16")
	if err != nil {
		t.Fatal(err)
	}
	rec.Hyperparameters["image_size"] = 999

	again, err := r.Lookup("vgg16")
	if err != nil {
		t.Fatal(err)
	}
	if again.Hyperparameters["image_size"] != 224 {
		t.Error("caller mutation leaked into registry state")
	}
}

func TestConcurrentReadsAfterFreeze(t *testing.T) {
	r := newTestRegistry(t)
	r.Freeze()

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				if _, err := r.Lookup("densenet121"); err != nil {
					t.Errorf("Lookup: %v", err)
					return
				}
				if _, err := r.ListByCollection("DenseNet"); err != nil {
					t.Errorf("ListByCollection: %v", err)
					return
				}
				for range r.Filter(func(Record) bool { return true }) {
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}

// Package filter provides query parameter parsing and filtering for API endpoints.
package filter

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/modelatlas/modelatlas/pkg/registry"
)

// RecordFilter contains all possible filter criteria for metadata records.
type RecordFilter struct {
	// Basic filters
	ID         string
	IDContains string
	Collection string

	// Tag filters (record matches if it carries all requested values)
	Architecture       []string
	TrainingTechniques []string
	TrainingData       []string

	// Numeric range filters
	MinParameters int64
	MaxParameters int64
	MinFLOPs      int64
	MaxFLOPs      int64

	// Result filters
	Dataset   string
	MinMetric map[string]float64

	// Pagination
	Limit  int
	Offset int
}

// ParseRecordFilter extracts record filter parameters from an HTTP request.
func ParseRecordFilter(r *http.Request) RecordFilter {
	q := r.URL.Query()

	filter := RecordFilter{
		ID:            q.Get("id"),
		IDContains:    q.Get("id_contains"),
		Collection:    q.Get("collection"),
		Dataset:       q.Get("dataset"),
		MinParameters: parseInt64OrDefault(q.Get("min_parameters"), 0),
		MaxParameters: parseInt64OrDefault(q.Get("max_parameters"), 0),
		MinFLOPs:      parseInt64OrDefault(q.Get("min_flops"), 0),
		MaxFLOPs:      parseInt64OrDefault(q.Get("max_flops"), 0),
		Limit:         parseIntOrDefault(q.Get("limit"), 100),
		Offset:        parseIntOrDefault(q.Get("offset"), 0),
	}

	if arch := q.Get("architecture"); arch != "" {
		filter.Architecture = strings.Split(arch, ",")
	}
	if tech := q.Get("training_technique"); tech != "" {
		filter.TrainingTechniques = strings.Split(tech, ",")
	}
	if data := q.Get("training_data"); data != "" {
		filter.TrainingData = strings.Split(data, ",")
	}

	// min_top1=75.5 style metric floors
	if top1 := q.Get("min_top1"); top1 != "" {
		if v, err := strconv.ParseFloat(top1, 64); err == nil {
			filter.MinMetric = map[string]float64{"Top 1 Accuracy": v}
		}
	}

	return filter
}

// Predicate returns a predicate suitable for Registry.Filter.
func (f RecordFilter) Predicate() func(registry.Record) bool {
	return f.matches
}

// Apply filters records in place order, returning only matches.
func (f RecordFilter) Apply(records []registry.Record) []registry.Record {
	filtered := make([]registry.Record, 0, len(records))
	for _, rec := range records {
		if f.matches(rec) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// matches checks if a record passes every filter criterion.
func (f RecordFilter) matches(rec registry.Record) bool {
	return f.matchesBasicFilters(rec) &&
		f.matchesTagFilters(rec) &&
		f.matchesRangeFilters(rec) &&
		f.matchesResultFilters(rec)
}

func (f RecordFilter) matchesBasicFilters(rec registry.Record) bool {
	if f.ID != "" && rec.ID != f.ID {
		return false
	}
	if f.IDContains != "" && !strings.Contains(strings.ToLower(rec.ID), strings.ToLower(f.IDContains)) {
		return false
	}
	if f.Collection != "" && !strings.EqualFold(rec.Collection, f.Collection) {
		return false
	}
	return true
}

func (f RecordFilter) matchesTagFilters(rec registry.Record) bool {
	return containsAll(rec.ArchitectureTags, f.Architecture) &&
		containsAll(rec.TrainingTechniques, f.TrainingTechniques) &&
		containsAll(rec.TrainingData, f.TrainingData)
}

func (f RecordFilter) matchesRangeFilters(rec registry.Record) bool {
	if f.MinParameters > 0 && rec.Parameters < f.MinParameters {
		return false
	}
	if f.MaxParameters > 0 && rec.Parameters > f.MaxParameters {
		return false
	}
	if f.MinFLOPs > 0 && rec.FLOPs < f.MinFLOPs {
		return false
	}
	if f.MaxFLOPs > 0 && rec.FLOPs > f.MaxFLOPs {
		return false
	}
	return true
}

func (f RecordFilter) matchesResultFilters(rec registry.Record) bool {
	if f.Dataset != "" {
		found := false
		for _, res := range rec.Results {
			if strings.EqualFold(res.Dataset, f.Dataset) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	for name, floor := range f.MinMetric {
		v, ok := rec.Metric(name)
		if !ok || v < floor {
			return false
		}
	}
	return true
}

// containsAll reports whether every required value appears in the slice,
// case-insensitively.
func containsAll(slice, required []string) bool {
	for _, want := range required {
		found := false
		for _, have := range slice {
			if strings.EqualFold(have, want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// parseIntOrDefault parses an integer query parameter or returns the default.
func parseIntOrDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil && v >= 0 {
		return v
	}
	return def
}

// parseInt64OrDefault parses an int64 query parameter or returns the default.
func parseInt64OrDefault(s string, def int64) int64 {
	if s == "" {
		return def
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil && v >= 0 {
		return v
	}
	return def
}

package handlers

import (
	"net/http"

	"github.com/modelatlas/modelatlas/internal/server/filter"
	"github.com/modelatlas/modelatlas/internal/server/response"
	"github.com/modelatlas/modelatlas/pkg/registry"
)

// HandleListModels handles GET /v1/models.
//
// Query parameters: id, id_contains, collection, architecture,
// training_technique, training_data, min_parameters, max_parameters,
// min_flops, max_flops, dataset, min_top1, limit, offset.
func (h *Handlers) HandleListModels(w http.ResponseWriter, r *http.Request) {
	// Check cache
	cacheKey := "models:" + r.URL.RawQuery
	if cached, found := h.cache.Get(cacheKey); found {
		response.OK(w, cached)
		return
	}

	atlas, err := h.app.Atlas()
	if err != nil {
		response.InternalError(w, err)
		return
	}

	f := filter.ParseRecordFilter(r)

	// Collect matches lazily in registration order
	var filtered []registry.Record
	for rec := range atlas.Registry().Filter(f.Predicate()) {
		filtered = append(filtered, rec)
	}

	// Apply pagination
	total := len(filtered)
	start := f.Offset
	end := f.Offset + f.Limit

	if start >= total {
		filtered = []registry.Record{}
	} else {
		if end > total {
			end = total
		}
		filtered = filtered[start:end]
	}

	result := map[string]any{
		"models": filtered,
		"pagination": map[string]any{
			"total":  total,
			"limit":  f.Limit,
			"offset": f.Offset,
		},
	}

	h.cache.Set(cacheKey, result)
	response.OK(w, result)
}

// HandleGetModel handles GET /v1/models/{id}.
func (h *Handlers) HandleGetModel(w http.ResponseWriter, _ *http.Request, modelID string) {
	cacheKey := "model:" + modelID
	if cached, found := h.cache.Get(cacheKey); found {
		response.OK(w, cached)
		return
	}

	atlas, err := h.app.Atlas()
	if err != nil {
		response.InternalError(w, err)
		return
	}

	rec, err := atlas.Lookup(modelID)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	h.cache.Set(cacheKey, rec)
	response.OK(w, rec)
}

// HandleResolve handles GET /v1/resolve/{name}. Resolution applies
// pretrained-tag fallback, so tagged names work even when only the bare
// variant is registered.
func (h *Handlers) HandleResolve(w http.ResponseWriter, _ *http.Request, name string) {
	atlas, err := h.app.Atlas()
	if err != nil {
		response.InternalError(w, err)
		return
	}

	cfg, err := atlas.Resolve(name)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	response.OK(w, cfg)
}

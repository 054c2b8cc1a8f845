package handlers

import (
	"net/http"

	"github.com/modelatlas/modelatlas/internal/server/response"
)

// HandleListCollections handles GET /v1/collections.
func (h *Handlers) HandleListCollections(w http.ResponseWriter, _ *http.Request) {
	const cacheKey = "collections"
	if cached, found := h.cache.Get(cacheKey); found {
		response.OK(w, cached)
		return
	}

	atlas, err := h.app.Atlas()
	if err != nil {
		response.InternalError(w, err)
		return
	}

	collections := atlas.Collections()
	result := map[string]any{
		"collections": collections,
		"total":       len(collections),
	}

	h.cache.Set(cacheKey, result)
	response.OK(w, result)
}

// HandleGetCollectionModels handles GET /v1/collections/{name}/models.
// Members are returned in registration order.
func (h *Handlers) HandleGetCollectionModels(w http.ResponseWriter, _ *http.Request, name string) {
	cacheKey := "collection-models:" + name
	if cached, found := h.cache.Get(cacheKey); found {
		response.OK(w, cached)
		return
	}

	atlas, err := h.app.Atlas()
	if err != nil {
		response.InternalError(w, err)
		return
	}

	records, err := atlas.Registry().ListByCollection(name)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	result := map[string]any{
		"collection": name,
		"models":     records,
		"total":      len(records),
	}

	h.cache.Set(cacheKey, result)
	response.OK(w, result)
}

// HandleGetCollection handles GET /v1/collections/{name}.
func (h *Handlers) HandleGetCollection(w http.ResponseWriter, _ *http.Request, name string) {
	atlas, err := h.app.Atlas()
	if err != nil {
		response.InternalError(w, err)
		return
	}

	coll, err := atlas.Registry().Collection(name)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	response.OK(w, coll)
}

package handlers

import (
	"net/http"

	"github.com/modelatlas/modelatlas/internal/server/response"
)

// healthStatus is the /healthz liveness payload.
type healthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// readyStatus is the /readyz readiness payload: the server is ready
// once the catalog has loaded.
type readyStatus struct {
	Status      string `json:"status"`
	Models      int    `json:"models"`
	Collections int    `json:"collections"`
	CacheItems  int    `json:"cache_items"`
}

// HandleHealth answers liveness probes. It never touches the registry.
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, healthStatus{
		Status:  "healthy",
		Service: "modelatlas-api",
		Version: h.app.Version(),
	})
}

// HandleReady answers readiness probes and reports catalog size.
func (h *Handlers) HandleReady(w http.ResponseWriter, _ *http.Request) {
	atlas, err := h.app.Atlas()
	if err != nil {
		response.ServiceUnavailable(w, "Registry not available")
		return
	}

	response.OK(w, readyStatus{
		Status:      "ready",
		Models:      atlas.Registry().Len(),
		Collections: len(atlas.Collections()),
		CacheItems:  h.cache.ItemCount(),
	})
}

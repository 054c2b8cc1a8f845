package server

import (
	"net/http"
	"strings"

	"github.com/modelatlas/modelatlas/internal/server/handlers"
	"github.com/modelatlas/modelatlas/internal/server/middleware"
	"github.com/modelatlas/modelatlas/internal/server/response"
)

// setupRouter builds the full handler: routes plus the middleware stack.
func (s *Server) setupRouter() http.Handler {
	mux := http.NewServeMux()
	s.registerRoutes(mux, handlers.New(s.app, s.cache, s.logger))

	mws := []middleware.Middleware{
		middleware.Recovery(s.logger),
		middleware.Logger(s.logger),
	}
	if s.config.CORSEnabled {
		mws = append(mws, middleware.CORS(s.corsConfig()))
	}
	return middleware.Chain(mws...)(mux)
}

func (s *Server) corsConfig() middleware.CORSConfig {
	cfg := middleware.DefaultCORSConfig()
	if len(s.config.CORSOrigins) > 0 {
		cfg.AllowedOrigins = s.config.CORSOrigins
	} else {
		cfg.AllowAll = true
	}
	return cfg
}

// getOnly guards a route so only GET requests reach the handler.
func getOnly(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			response.MethodNotAllowed(w, r.Method)
			return
		}
		h(w, r)
	}
}

func (s *Server) registerRoutes(mux *http.ServeMux, h *handlers.Handlers) {
	prefix := s.config.PathPrefix

	// 204 keeps browser favicon probes out of the error logs.
	mux.HandleFunc("/favicon.ico", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("/healthz", h.HandleHealth)
	mux.HandleFunc("/readyz", h.HandleReady)

	mux.HandleFunc(prefix+"/models", getOnly(h.HandleListModels))

	mux.HandleFunc(prefix+"/models/", getOnly(func(w http.ResponseWriter, r *http.Request) {
		id := pathSuffix(r.URL.Path, prefix+"/models/")
		if id == "" {
			response.NotFound(w, "model ID required", "")
			return
		}
		h.HandleGetModel(w, r, id)
	}))

	mux.HandleFunc(prefix+"/resolve/", getOnly(func(w http.ResponseWriter, r *http.Request) {
		name := pathSuffix(r.URL.Path, prefix+"/resolve/")
		if name == "" {
			response.NotFound(w, "model name required", "")
			return
		}
		h.HandleResolve(w, r, name)
	}))

	mux.HandleFunc(prefix+"/collections", getOnly(h.HandleListCollections))

	mux.HandleFunc(prefix+"/collections/", getOnly(func(w http.ResponseWriter, r *http.Request) {
		parts := splitPath(strings.TrimPrefix(r.URL.Path, prefix+"/collections/"))
		switch {
		case len(parts) == 1:
			h.HandleGetCollection(w, r, parts[0])
		case len(parts) == 2 && parts[1] == "models":
			h.HandleGetCollectionModels(w, r, parts[0])
		default:
			response.NotFound(w, "no such route", "")
		}
	}))
}

// pathSuffix returns the first path segment after prefix.
func pathSuffix(path, prefix string) string {
	rest := strings.TrimPrefix(path, prefix)
	seg, _, _ := strings.Cut(rest, "/")
	return seg
}

// splitPath breaks a path into its non-empty segments.
func splitPath(path string) []string {
	var parts []string
	for _, p := range strings.Split(path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

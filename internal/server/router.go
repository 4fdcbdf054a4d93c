package server

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterDependencies collects handler dependencies.
type RouterDependencies struct {
	Model          Model
	AllowedOrigins []string
	Metrics        *Metrics // nil disables the /metrics endpoint and counters
}

// NewRouter wires the HTTP routes exposed by the way-finding API.
func NewRouter(logger *slog.Logger, deps RouterDependencies) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	h := NewHandlers(logger, deps.Model)
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/buildings", h.handleBuildings).Methods(http.MethodGet)
	api.HandleFunc("/buildings/{name}", h.handleBuilding).Methods(http.MethodGet)
	api.HandleFunc("/path", h.handlePath).Methods(http.MethodGet)

	if deps.Metrics != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.Metrics.Registry(), promhttp.HandlerOpts{})).
			Methods(http.MethodGet)
	}

	handler := http.Handler(loggingMiddleware(logger, r))
	if deps.Metrics != nil {
		handler = deps.Metrics.Middleware(handler)
	}
	if len(deps.AllowedOrigins) > 0 {
		handler = corsMiddleware(deps.AllowedOrigins)(handler)
	}

	return handler
}

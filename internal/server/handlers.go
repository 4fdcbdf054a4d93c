package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"campusways/campus"
)

// Model is the read-only query surface the handlers serve. campus.Map
// satisfies it; tests may substitute a stub.
type Model interface {
	ShortNameExists(name string) bool
	LongNameForShort(name string) (string, error)
	BuildingForShort(name string) (campus.Building, error)
	BuildingNames() map[string]string
	FindShortestPath(startShort, endShort string) (campus.Path, error)
}

// Handlers exposes HTTP handlers for the way-finding API.
type Handlers struct {
	logger *slog.Logger
	model  Model
}

// NewHandlers constructs a Handlers instance.
func NewHandlers(logger *slog.Logger, model Model) *Handlers {
	return &Handlers{
		logger: logger,
		model:  model,
	}
}

// handleBuildings serves the short→long catalog of every building.
func (h *Handlers) handleBuildings(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.model.BuildingNames())
}

// handleBuilding serves one building record by short name.
func (h *Handlers) handleBuilding(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	b, err := h.model.BuildingForShort(name)
	if err != nil {
		if errors.Is(err, campus.ErrUnknownBuilding) {
			writeError(w, http.StatusNotFound, "unknown building: "+name)
			return
		}
		h.logger.Error("building lookup failed", "name", name, "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}

	respondJSON(w, http.StatusOK, b)
}

// handlePath serves the minimum-cost route between two named buildings.
// An unreachable destination is a normal result: an empty segment list
// with zero total cost.
func (h *Handlers) handlePath(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if start == "" || end == "" {
		writeError(w, http.StatusBadRequest, "missing start or end")
		return
	}

	p, err := h.model.FindShortestPath(start, end)
	if err != nil {
		if errors.Is(err, campus.ErrUnknownBuilding) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		h.logger.Error("path query failed", "start", start, "end", end, "error", err)
		writeError(w, http.StatusInternalServerError, "path query failed")
		return
	}

	respondJSON(w, http.StatusOK, p)
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

// GetRoute handles GET /api/v1/routes/{id}
func (h *Handler) GetRoute(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	route, err := h.service.FindRoute(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Route")
		return
	}
	if route == nil {
		h.writeMessage(w, http.StatusNotFound, "Route not found")
		return
	}
	h.writeJSON(w, http.StatusOK, route)
}

// CreateRoute handles POST /api/v1/routes/{id}
func (h *Handler) CreateRoute(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	attrs, ok := h.decodeAttributes(w, r)
	if !ok {
		return
	}

	route, err := h.service.CreateRoute(r.Context(), id, attrs)
	if err != nil {
		h.writeError(w, err, "Route")
		return
	}
	h.writeJSON(w, http.StatusCreated, route)
}

// UpdateRoute handles PUT /api/v1/routes/{id}
func (h *Handler) UpdateRoute(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	attrs, ok := h.decodeAttributes(w, r)
	if !ok {
		return
	}

	route, err := h.service.UpdateRoute(r.Context(), id, attrs)
	if err != nil {
		h.writeError(w, err, "Route")
		return
	}
	h.writeJSON(w, http.StatusOK, route)
}

// DeleteRoute handles DELETE /api/v1/routes/{id}
func (h *Handler) DeleteRoute(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.DeleteRoute(r.Context(), id); err != nil {
		h.writeError(w, err, "Route")
		return
	}
	h.writeMessage(w, http.StatusAccepted, "Route deleted successfully")
}

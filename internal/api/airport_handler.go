package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

// GetAirport handles GET /api/v1/airports/{id}
func (h *Handler) GetAirport(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	airport, err := h.service.FindAirport(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Airport")
		return
	}
	if airport == nil {
		h.writeMessage(w, http.StatusNotFound, "Airport not found")
		return
	}
	h.writeJSON(w, http.StatusOK, airport)
}

// CreateAirport handles POST /api/v1/airports/{id}
func (h *Handler) CreateAirport(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	attrs, ok := h.decodeAttributes(w, r)
	if !ok {
		return
	}

	airport, err := h.service.CreateAirport(r.Context(), id, attrs)
	if err != nil {
		h.writeError(w, err, "Airport")
		return
	}
	h.writeJSON(w, http.StatusCreated, airport)
}

// UpdateAirport handles PUT /api/v1/airports/{id}
func (h *Handler) UpdateAirport(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	attrs, ok := h.decodeAttributes(w, r)
	if !ok {
		return
	}

	airport, err := h.service.UpdateAirport(r.Context(), id, attrs)
	if err != nil {
		h.writeError(w, err, "Airport")
		return
	}
	h.writeJSON(w, http.StatusOK, airport)
}

// DeleteAirport handles DELETE /api/v1/airports/{id}
func (h *Handler) DeleteAirport(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.DeleteAirport(r.Context(), id); err != nil {
		h.writeError(w, err, "Airport")
		return
	}
	h.writeMessage(w, http.StatusAccepted, "Airport deleted successfully")
}

// DirectConnections handles GET /api/v1/airports/direct-connections
func (h *Handler) DirectConnections(w http.ResponseWriter, r *http.Request) {
	airportCode := r.URL.Query().Get("destinationAirportCode")
	if airportCode == "" {
		h.writeMessage(w, http.StatusBadRequest, "Destination airport code is required")
		return
	}
	limit, offset, ok := h.parseWindow(w, r)
	if !ok {
		return
	}

	codes, err := h.service.DirectConnections(r.Context(), airportCode, limit, offset)
	if err != nil {
		h.writeError(w, err, "Airport")
		return
	}
	h.writeJSON(w, http.StatusOK, codes)
}

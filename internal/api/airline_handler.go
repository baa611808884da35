package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

// GetAirline handles GET /api/v1/airlines/{id}
func (h *Handler) GetAirline(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	airline, err := h.service.FindAirline(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Airline")
		return
	}
	if airline == nil {
		h.writeMessage(w, http.StatusNotFound, "Airline not found")
		return
	}
	h.writeJSON(w, http.StatusOK, airline)
}

// CreateAirline handles POST /api/v1/airlines/{id}
func (h *Handler) CreateAirline(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	attrs, ok := h.decodeAttributes(w, r)
	if !ok {
		return
	}

	airline, err := h.service.CreateAirline(r.Context(), id, attrs)
	if err != nil {
		h.writeError(w, err, "Airline")
		return
	}
	h.writeJSON(w, http.StatusCreated, airline)
}

// UpdateAirline handles PUT /api/v1/airlines/{id}
func (h *Handler) UpdateAirline(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	attrs, ok := h.decodeAttributes(w, r)
	if !ok {
		return
	}

	airline, err := h.service.UpdateAirline(r.Context(), id, attrs)
	if err != nil {
		h.writeError(w, err, "Airline")
		return
	}
	h.writeJSON(w, http.StatusOK, airline)
}

// DeleteAirline handles DELETE /api/v1/airlines/{id}
func (h *Handler) DeleteAirline(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.DeleteAirline(r.Context(), id); err != nil {
		h.writeError(w, err, "Airline")
		return
	}
	h.writeMessage(w, http.StatusAccepted, "Airline deleted successfully")
}

// ListAirlines handles GET /api/v1/airlines/list
func (h *Handler) ListAirlines(w http.ResponseWriter, r *http.Request) {
	country := r.URL.Query().Get("country")
	limit, offset, ok := h.parseWindow(w, r)
	if !ok {
		return
	}

	airlines, err := h.service.ListAirlines(r.Context(), country, limit, offset)
	if err != nil {
		h.writeError(w, err, "Airline")
		return
	}
	if len(airlines) == 0 {
		// Empty pages are informational, not an error
		h.writeMessage(w, http.StatusOK, "No airlines found")
		return
	}
	h.writeJSON(w, http.StatusOK, airlines)
}

// AirlinesFlyingTo handles GET /api/v1/airlines/to-airport
func (h *Handler) AirlinesFlyingTo(w http.ResponseWriter, r *http.Request) {
	airportCode := r.URL.Query().Get("destinationAirportCode")
	if airportCode == "" {
		h.writeMessage(w, http.StatusBadRequest, "Destination airport code is required")
		return
	}
	limit, offset, ok := h.parseWindow(w, r)
	if !ok {
		return
	}

	airlines, err := h.service.AirlinesFlyingTo(r.Context(), airportCode, limit, offset)
	if err != nil {
		h.writeError(w, err, "Airline")
		return
	}
	h.writeJSON(w, http.StatusOK, airlines)
}

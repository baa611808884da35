package api

import (
	"encoding/json"
	"net/http"

	"github.com/tripfolio/travel-api/internal/model"
)

type hotelFilterRequest struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Country     string `json:"country"`
	City        string `json:"city"`
	State       string `json:"state"`
	Offset      int64  `json:"offset"`
	Limit       int64  `json:"limit"`
}

// AutocompleteHotels handles GET /api/v1/hotels/autocomplete
func (h *Handler) AutocompleteHotels(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		h.writeMessage(w, http.StatusBadRequest, "name query parameter is required")
		return
	}

	names, err := h.service.AutocompleteHotels(r.Context(), name)
	if err != nil {
		h.writeError(w, err, "Hotel")
		return
	}
	h.writeJSON(w, http.StatusOK, names)
}

// FilterHotels handles POST /api/v1/hotels/filter
func (h *Handler) FilterHotels(w http.ResponseWriter, r *http.Request) {
	var req hotelFilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	filter := model.HotelFilter{
		Name:        req.Name,
		Title:       req.Title,
		Description: req.Description,
		Country:     req.Country,
		City:        req.City,
		State:       req.State,
	}

	hotels, err := h.service.FilterHotels(r.Context(), filter, req.Offset, req.Limit)
	if err != nil {
		h.writeError(w, err, "Hotel")
		return
	}
	h.writeJSON(w, http.StatusOK, hotels)
}

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/tripfolio/travel-api/internal/model"
	"github.com/tripfolio/travel-api/internal/repository"
	"github.com/tripfolio/travel-api/internal/service"
	"go.uber.org/zap"
)

// HealthChecker reports whether the backing store is reachable
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthCheckerFunc adapts a plain function to HealthChecker
type HealthCheckerFunc func(ctx context.Context) error

// Ping calls f
func (f HealthCheckerFunc) Ping(ctx context.Context) error { return f(ctx) }

// Handler handles HTTP requests
type Handler struct {
	service service.ServiceInterface
	health  HealthChecker
	logger  *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(service service.ServiceInterface, health HealthChecker, logger *zap.Logger) *Handler {
	return &Handler{service: service, health: health, logger: logger}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *Handler) writeMessage(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, model.MessageResponse{Message: message})
}

// writeError maps a service failure to its HTTP status. Domain
// outcomes branch on the error tag; anything unrecognized is a 500 and
// the detail stays in the logs.
func (h *Handler) writeError(w http.ResponseWriter, err error, entity string) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		h.writeMessage(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, repository.ErrNotFound):
		h.writeMessage(w, http.StatusNotFound, entity+" not found")
	case errors.Is(err, repository.ErrAlreadyExists):
		h.writeMessage(w, http.StatusConflict, entity+" already exists")
	case errors.Is(err, repository.ErrUnavailable):
		h.writeMessage(w, http.StatusServiceUnavailable,
			"Database connection is not available. Please check configuration or try again later.")
	default:
		h.logger.Error("Request failed", zap.String("entity", entity), zap.Error(err))
		h.writeMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeAttributes reads the request body as a wire-format attribute
// map; validation of the field set happens in the service layer
func (h *Handler) decodeAttributes(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	var attrs map[string]any
	if err := json.NewDecoder(r.Body).Decode(&attrs); err != nil {
		h.writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return nil, false
	}
	return attrs, true
}

// parseWindow reads limit and offset query parameters
func (h *Handler) parseWindow(w http.ResponseWriter, r *http.Request) (limit, offset int64, ok bool) {
	limit, offset = 0, 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.ParseInt(limitStr, 10, 64)
		if err != nil || limit <= 0 {
			h.writeMessage(w, http.StatusBadRequest, "invalid limit parameter")
			return 0, 0, false
		}
	}
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		var err error
		offset, err = strconv.ParseInt(offsetStr, 10, 64)
		if err != nil || offset < 0 {
			h.writeMessage(w, http.StatusBadRequest, "invalid offset parameter")
			return 0, 0, false
		}
	}
	return limit, offset, true
}

// Health handles GET /api/v1/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	database := model.ServiceStatus{Status: "up", Message: "connected"}
	overall := "healthy"
	status := http.StatusOK

	if err := h.health.Ping(r.Context()); err != nil {
		database = model.ServiceStatus{Status: "down", Message: err.Error()}
		overall = "unhealthy"
		status = http.StatusServiceUnavailable
	}

	h.writeJSON(w, status, model.HealthResponse{
		Status:   overall,
		Services: map[string]model.ServiceStatus{"database": database},
	})
}

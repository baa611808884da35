package api

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tripfolio/travel-api/internal/metrics"
	"github.com/tripfolio/travel-api/internal/service"
	"go.uber.org/zap"
)

// NewRouter creates a new HTTP router
func NewRouter(svc service.ServiceInterface, health HealthChecker, logger *zap.Logger, m *metrics.Metrics) *mux.Router {
	handler := NewHandler(svc, health, logger)

	router := mux.NewRouter()
	if m != nil {
		router.Use(RequestMetrics(m))
	}

	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	router.HandleFunc("/health", handler.Health).Methods("GET")

	// API v1
	v1 := router.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/health", handler.Health).Methods("GET")

	// Fixed paths before the {id} catch-alls
	v1.HandleFunc("/airlines/list", handler.ListAirlines).Methods("GET")
	v1.HandleFunc("/airlines/to-airport", handler.AirlinesFlyingTo).Methods("GET")
	v1.HandleFunc("/airlines/{id}", handler.GetAirline).Methods("GET")
	v1.HandleFunc("/airlines/{id}", handler.CreateAirline).Methods("POST")
	v1.HandleFunc("/airlines/{id}", handler.UpdateAirline).Methods("PUT")
	v1.HandleFunc("/airlines/{id}", handler.DeleteAirline).Methods("DELETE")

	v1.HandleFunc("/airports/direct-connections", handler.DirectConnections).Methods("GET")
	v1.HandleFunc("/airports/{id}", handler.GetAirport).Methods("GET")
	v1.HandleFunc("/airports/{id}", handler.CreateAirport).Methods("POST")
	v1.HandleFunc("/airports/{id}", handler.UpdateAirport).Methods("PUT")
	v1.HandleFunc("/airports/{id}", handler.DeleteAirport).Methods("DELETE")

	v1.HandleFunc("/routes/{id}", handler.GetRoute).Methods("GET")
	v1.HandleFunc("/routes/{id}", handler.CreateRoute).Methods("POST")
	v1.HandleFunc("/routes/{id}", handler.UpdateRoute).Methods("PUT")
	v1.HandleFunc("/routes/{id}", handler.DeleteRoute).Methods("DELETE")

	v1.HandleFunc("/hotels/autocomplete", handler.AutocompleteHotels).Methods("GET")
	v1.HandleFunc("/hotels/filter", handler.FilterHotels).Methods("POST")

	return router
}

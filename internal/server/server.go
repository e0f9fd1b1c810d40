// Package server wires the CityInfo routes, request logging and metrics.
package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/clear-route/cityinfo-api/internal/cities"
	customHTTP "github.com/clear-route/cityinfo-api/pkg/http"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the HTTP handler for the service. Every route goes
// through the request/response logging interceptor; the whole router is
// measured by the metrics middleware registered on reg. Status errors from
// the handlers are rendered behind the interceptor, so 4xx responses get a
// response entry like any other.
func NewRouter(logger *slog.Logger, store *cities.Store, reg *prometheus.Registry) (http.Handler, error) {
	if store == nil {
		return nil, fmt.Errorf("city store is required")
	}

	metrics, err := customHTTP.NewMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("register http metrics: %w", err)
	}

	logged := customHTTP.LoggingMiddleware(logger)
	route := func(h customHTTP.HandlerFunc) http.Handler {
		return customHTTP.Handle(logger, logged(customHTTP.Render(h)))
	}

	citiesHandler := cities.NewHandler(store)
	health := customHTTP.Lift(customHTTP.HealthHandler())

	r := chi.NewRouter()

	r.Method(http.MethodGet, "/healthz", route(health))
	r.Method(http.MethodGet, "/readyz", route(health))
	r.Method(http.MethodGet, "/metrics", route(customHTTP.Lift(promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: false}))))

	r.Route("/cities", func(r chi.Router) {
		r.Method(http.MethodGet, "/", route(citiesHandler.List))
		r.Method(http.MethodGet, "/{id}", route(citiesHandler.Get))
		r.Method(http.MethodGet, "/{id}/pointsofinterest", route(citiesHandler.PointsOfInterest))
		r.Method(http.MethodGet, "/{id}/pointsofinterest/{poiID}", route(citiesHandler.PointOfInterest))
	})

	return metrics.Middleware(r), nil
}

package api

import (
	"delivery-cost-service/internal/api/handlers"
	"delivery-cost-service/internal/domain"
	"delivery-cost-service/internal/metrics"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// limiter may be nil to disable rate limiting.
func NewRouter(costs handlers.CostEstimator, cat *domain.Catalog, limiter *RateLimiter) http.Handler {
	mux := http.NewServeMux()

	costHandler := &handlers.CostHandler{Costs: costs}
	catalogHandler := &handlers.CatalogHandler{Catalog: cat}

	mux.HandleFunc("/", handlers.Root)
	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/catalog", catalogHandler.Get)
	mux.Handle("/calculate-delivery-cost", limiter.Middleware(http.HandlerFunc(costHandler.Calculate)))
	mux.Handle("/metrics", metrics.Handler())

	return requestIDMiddleware(loggingMiddleware(mux))
}

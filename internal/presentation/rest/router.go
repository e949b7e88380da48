package rest

import "net/http"

// NewRouter mounts the health, metrics and financing routes on one mux.
func NewRouter(health *HealthHandler, financing *FinancingHandler, metrics http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	health.RegisterRoutes(mux)
	financing.RegisterRoutes(mux)
	if metrics != nil {
		mux.Handle("GET /metrics", metrics)
	}
	return mux
}

package handler

import (
	"net/http"

	"github.com/airesearchhub/site/pkg/middleware"
)

type MetricsHandler struct {
	metrics *middleware.Metrics
}

func NewMetricsHandler(metrics *middleware.Metrics) MetricsHandler {
	return MetricsHandler{metrics: metrics}
}

// ServeHTTP bypasses the API error handling since Prometheus uses its own format.
func (h MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.metrics.Handler().ServeHTTP(w, r)
}

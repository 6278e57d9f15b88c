package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forecast_venus_http_requests_total",
			Help: "Total de requisições HTTP atendidas pela API",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "forecast_venus_http_request_duration_seconds",
			Help:    "Duração das requisições HTTP em segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// MetricsMiddleware publica contadores e histogramas de requisição no
// registro padrão do Prometheus
func MetricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}

			mrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			next.ServeHTTP(mrw, r)

			httpRequestsTotal.
				WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(mrw.statusCode)).
				Inc()
			httpRequestDuration.
				WithLabelValues(r.Method, r.URL.Path).
				Observe(time.Since(startTime).Seconds())
		})
	}
}

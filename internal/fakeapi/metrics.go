package fakeapi

import (
	"net/http"
	"strconv"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests (Rate)",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_request_errors_total",
			Help: "Total number of HTTP request errors",
		},
		[]string{"method", "path", "status", "error_type"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds (Duration)",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Metrics records request rate, errors and duration into reg.
func Metrics(reg *prometheus.Registry) func(http.Handler) http.Handler {
	reg.MustRegister(httpRequestsTotal, httpRequestErrorsTotal, httpRequestDuration)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			statusStr := strconv.Itoa(status)
			path := r.URL.Path
			duration := time.Since(start).Seconds()

			httpRequestsTotal.WithLabelValues(r.Method, path, statusStr).Inc()
			if status >= 400 && status < 500 {
				httpRequestErrorsTotal.WithLabelValues(r.Method, path, statusStr, "client").Inc()
			} else if status >= 500 {
				httpRequestErrorsTotal.WithLabelValues(r.Method, path, statusStr, "server").Inc()
			}
			httpRequestDuration.WithLabelValues(r.Method, path, statusStr).Observe(duration)
		})
	}
}

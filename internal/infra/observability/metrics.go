package observability

import (
	"net/http"
	"time"

	"github.com/coolgym/coolgym-bff-go/internal/domain"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Metrics holds all Prometheus metrics for the gateway.
type Metrics struct {
	// Registry is the Prometheus registry that owns these metrics.
	// Exposed so the /metrics endpoint can use it.
	Registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	externalErrors  *prometheus.CounterVec
	fallbacks       *prometheus.CounterVec
	guardRedirects  *prometheus.CounterVec
	requestsTotal   *prometheus.CounterVec
}

// NewMetrics creates a dedicated Prometheus registry and registers all
// application metrics in it. Using a private registry avoids "duplicate
// collector" panics when NewMetrics is called more than once (e.g. in tests).
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cg_request_duration_seconds",
				Help:    "Duration of requests by operation.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		externalErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cg_external_errors_total",
				Help: "Total errors from the CoolGym backend.",
			},
			[]string{"service"},
		),
		fallbacks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cg_fallbacks_total",
				Help: "Total best-effort operations that degraded to a fallback value.",
			},
			[]string{"operation"},
		),
		guardRedirects: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cg_guard_redirects_total",
				Help: "Total navigations redirected by the route guard.",
			},
			[]string{"reason"},
		),
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cg_requests_total",
				Help: "Total requests processed.",
			},
			[]string{"status"},
		),
	}
}

// RecordRequestDuration records the duration of an operation.
func (m *Metrics) RecordRequestDuration(operation string, d time.Duration) {
	m.requestDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// IncrExternalError increments the external error counter.
func (m *Metrics) IncrExternalError(service string) {
	m.externalErrors.WithLabelValues(service).Inc()
}

// IncrFallback increments the fallback counter for a degraded operation.
func (m *Metrics) IncrFallback(operation string) {
	m.fallbacks.WithLabelValues(operation).Inc()
}

// IncrGuardRedirect increments the guard redirect counter.
func (m *Metrics) IncrGuardRedirect(reason string) {
	m.guardRedirects.WithLabelValues(reason).Inc()
}

// IncrRequest increments the request counter with a status label.
func (m *Metrics) IncrRequest(status string) {
	m.requestsTotal.WithLabelValues(status).Inc()
}

// MetricsMiddleware counts every request the gateway serves. A response
// status of 500 or above counts as "error", everything else as
// "success"; the gateway snapshot derives its error rate from the two.
func MetricsMiddleware(m *Metrics) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := "success"
			if ww.Status() >= 500 {
				status = "error"
			}
			m.IncrRequest(status)
		})
	}
}

// GetGatewaySnapshot returns a snapshot of gateway health metrics for
// the GET /v1/metrics/gateway endpoint.
func (m *Metrics) GetGatewaySnapshot() *domain.GatewayMetrics {
	totalRequests := getCounterValue(m.requestsTotal, "success") +
		getCounterValue(m.requestsTotal, "error")
	errorCount := getCounterValue(m.requestsTotal, "error")
	fallbackCount := getCounterValue(m.fallbacks, "rental_catalog") +
		getCounterValue(m.fallbacks, "provider_dashboard") +
		getCounterValue(m.fallbacks, "current_user")
	redirects := getCounterValue(m.guardRedirects, "unauthenticated") +
		getCounterValue(m.guardRedirects, "authenticated") +
		getCounterValue(m.guardRedirects, "role_mismatch")

	errorRate := float64(0)
	fallbackRate := float64(0)
	if totalRequests > 0 {
		errorRate = errorCount / totalRequests
		fallbackRate = fallbackCount / totalRequests
	}

	return &domain.GatewayMetrics{
		TotalRequests:  int64(totalRequests),
		ErrorRate:      errorRate,
		FallbackRate:   fallbackRate,
		GuardRedirects: int64(redirects),
		Period:         "all_time",
	}
}

// getCounterValue extracts the current float64 value from a CounterVec for a given label.
func getCounterValue(cv *prometheus.CounterVec, label string) float64 {
	counter := cv.WithLabelValues(label)
	m := &dto.Metric{}
	if err := counter.(prometheus.Metric).Write(m); err != nil {
		return 0
	}
	if m.Counter != nil && m.Counter.Value != nil {
		return *m.Counter.Value
	}
	return 0
}

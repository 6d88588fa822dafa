package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "chef_market",
		Subsystem: "http",
		Name:      "in_flight_requests",
		Help:      "Current number of in-flight HTTP requests, open order streams included.",
	})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chef_market",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests processed.",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chef_market",
		Subsystem: "http",
		Name:      "request_duration",
		Help:      "HTTP request latencies in seconds, order streams excluded.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	httpResponseBytes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chef_market",
		Subsystem: "http",
		Name:      "response_bytes_total",
		Help:      "Bytes written to HTTP responses.",
	}, []string{"route"})
)

// Metrics labels requests by chi route pattern so order ids stay out of
// label values.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		start := time.Now()
		rw := wrapResponseWriter(w)

		next.ServeHTTP(rw, r)

		route := routePattern(r)
		labels := prometheus.Labels{
			"method": r.Method,
			"route":  route,
			"status": strconv.Itoa(rw.status),
		}

		httpRequestsTotal.With(labels).Inc()
		httpResponseBytes.WithLabelValues(route).Add(float64(rw.bytes))
		if !rw.streaming() {
			httpRequestDuration.With(labels).Observe(time.Since(start).Seconds())
		}
	})
}

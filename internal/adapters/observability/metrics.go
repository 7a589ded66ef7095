package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotels", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hotels", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	EntityEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotels", Name: "entity_events_total", Help: "Successful writes per entity."},
		[]string{"entity", "action"}, // action: created|updated|deleted
	)
	LockEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotels", Name: "lock_events_total", Help: "Guard lock acquisitions/contention/releases."},
		[]string{"lock", "event"}, // event: acquired|contended|timeout|released
	)
	ErrorResponses = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotels", Name: "error_responses_total", Help: "Failed requests by error kind."},
		[]string{"kind"},
	)
)

// Serve exposes reg on a side listener at addr; empty addr disables it.
// The returned server is nil when disabled.
func Serve(addr string, reg *prometheus.Registry) *http.Server {
	if addr == "" {
		return nil // disabled
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", MetricsHandler(reg))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
	return srv
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, EntityEvents, LockEvents, ErrorResponses)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveEntity(entity, action string) {
	EntityEvents.WithLabelValues(entity, action).Inc()
}

func ObserveLock(lock, event string) {
	LockEvents.WithLabelValues(lock, event).Inc()
}

func ObserveError(kind string) {
	ErrorResponses.WithLabelValues(kind).Inc()
}

// Package metrics exposes Prometheus instruments for the portal.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "football_portal"

// Recorder owns a private registry. A nil *Recorder is a valid no-op.
type Recorder struct {
	registry *prometheus.Registry

	upstreamRequests *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	circuitState     *prometheus.GaugeVec
	cacheLookups     *prometheus.CounterVec
	feedFallbacks    *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	auto := promauto.With(reg)

	return &Recorder{
		registry: reg,
		upstreamRequests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "Calls to the football data provider by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		upstreamDuration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Latency of football data provider calls.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"endpoint"}),
		circuitState: auto.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "circuit_state",
			Help:      "1 for the current circuit breaker state.",
		}, []string{"state"}),
		cacheLookups: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Response cache lookups by result.",
		}, []string{"cache", "result"}),
		feedFallbacks: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "feed",
			Name:      "fallbacks_total",
			Help:      "Feed operations served without the provider.",
		}, []string{"operation", "source"}),
		httpRequests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

func (r *Recorder) ObserveUpstream(endpoint, outcome string, d time.Duration) {
	if r == nil {
		return
	}
	r.upstreamRequests.WithLabelValues(endpoint, outcome).Inc()
	r.upstreamDuration.WithLabelValues(endpoint).Observe(d.Seconds())
}

func (r *Recorder) SetCircuitState(state string) {
	if r == nil {
		return
	}
	for _, s := range []string{"closed", "open", "half_open"} {
		v := 0.0
		if s == state {
			v = 1
		}
		r.circuitState.WithLabelValues(s).Set(v)
	}
}

// CacheObserver returns a callback suitable for cache.WithObserver.
func (r *Recorder) CacheObserver(name string) func(hit bool) {
	if r == nil {
		return nil
	}
	hits := r.cacheLookups.WithLabelValues(name, "hit")
	misses := r.cacheLookups.WithLabelValues(name, "miss")
	return func(hit bool) {
		if hit {
			hits.Inc()
			return
		}
		misses.Inc()
	}
}

func (r *Recorder) IncFallback(operation, source string) {
	if r == nil {
		return
	}
	r.feedFallbacks.WithLabelValues(operation, source).Inc()
}

func (r *Recorder) ObserveHTTP(method, route string, status int, d time.Duration) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every collector this process exports.
var Registry = prometheus.NewRegistry()

var (
	QueryDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "whr_query_duration_seconds",
		Help:    "Catalog query duration in seconds",
		Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	}, []string{"query"})
	QueryErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "whr_query_errors_total",
		Help: "Catalog queries that returned an error",
	}, []string{"query"})
	CacheHits = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "whr_cache_hits_total",
		Help: "Results cache hits",
	}, []string{"query"})
	CacheMisses = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "whr_cache_misses_total",
		Help: "Results cache misses",
	}, []string{"query"})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		QueryDuration,
		QueryErrors,
		CacheHits,
		CacheMisses,
	)
}

// ObserveQuery records one catalog query.
func ObserveQuery(query string, start time.Time, err error) {
	QueryDuration.WithLabelValues(query).Observe(time.Since(start).Seconds())
	if err != nil {
		QueryErrors.WithLabelValues(query).Inc()
	}
}

// Handler serves Registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}

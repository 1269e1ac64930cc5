package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry is the dedicated Prometheus registry for the service.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, route, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "route", "status"},
	)
	// HTTPDuration records request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "route", "status"},
	)

	// Optimizations counts day optimizations by strategy and outcome.
	Optimizations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "itinerary_optimizations_total", Help: "Day optimizations by strategy and outcome."},
		[]string{"strategy", "outcome"},
	)
	// SavingsMeters records distance saved per optimization.
	SavingsMeters = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "itinerary_optimization_savings_meters", Help: "Travel distance saved per optimization in meters.", Buckets: []float64{0, 250, 500, 1000, 2500, 5000, 10000, 25000}},
		[]string{"strategy"},
	)
	// CacheLookups counts result cache hits and misses.
	CacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "itinerary_result_cache_lookups_total", Help: "Result cache lookups by result."},
		[]string{"result"},
	)
)

var regOnce sync.Once

// Register adds every collector to Registry. Safe to call more than once.
func Register() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(Optimizations)
		Registry.MustRegister(SavingsMeters)
		Registry.MustRegister(CacheLookups)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// Handler serves Registry in the Prometheus exposition format.
func Handler() http.Handler {
	Register()
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

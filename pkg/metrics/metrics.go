// Package metrics exposes Prometheus instrumentation for the analytics
// pipeline: ingest counters, graph size gauges, and per-stage durations.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
)

// Registry holds all metrics for the application
type Registry struct {
	// Ingest
	RowsReadTotal    prometheus.Counter
	RowsKeptTotal    prometheus.Counter
	RowsDroppedTotal prometheus.Counter

	// Graph
	GraphNodes prometheus.Gauge
	GraphEdges prometheus.Gauge

	// Analysis
	AnalysisDuration *prometheus.HistogramVec
	BFSRunsTotal     prometheus.Counter

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{registry: reg}

	r.RowsReadTotal = promauto.With(reg).NewCounter(prometheus.CounterOpts{
		Name: "ridegraph_ingest_rows_read_total",
		Help: "Total data rows read from the ride log",
	})
	r.RowsKeptTotal = promauto.With(reg).NewCounter(prometheus.CounterOpts{
		Name: "ridegraph_ingest_rows_kept_total",
		Help: "Total rows kept after endpoint filtering",
	})
	r.RowsDroppedTotal = promauto.With(reg).NewCounter(prometheus.CounterOpts{
		Name: "ridegraph_ingest_rows_dropped_total",
		Help: "Total rows dropped (short rows, empty or unknown endpoints)",
	})

	r.GraphNodes = promauto.With(reg).NewGauge(prometheus.GaugeOpts{
		Name: "ridegraph_graph_nodes",
		Help: "Unique locations in the built graph",
	})
	r.GraphEdges = promauto.With(reg).NewGauge(prometheus.GaugeOpts{
		Name: "ridegraph_graph_edges",
		Help: "Directed edges in the built graph, counting multiplicity",
	})

	r.AnalysisDuration = promauto.With(reg).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ridegraph_analysis_duration_seconds",
			Help:    "Duration of each analysis stage",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 10.0},
		},
		[]string{"stage"},
	)
	r.BFSRunsTotal = promauto.With(reg).NewCounter(prometheus.CounterOpts{
		Name: "ridegraph_bfs_runs_total",
		Help: "Total BFS traversals executed",
	})

	return r
}

// RecordIngest records counters for one read of the record source.
func (r *Registry) RecordIngest(read, kept, dropped int) {
	r.RowsReadTotal.Add(float64(read))
	r.RowsKeptTotal.Add(float64(kept))
	r.RowsDroppedTotal.Add(float64(dropped))
}

// RecordGraph records graph size after the build stage.
func (r *Registry) RecordGraph(nodes, edges int) {
	r.GraphNodes.Set(float64(nodes))
	r.GraphEdges.Set(float64(edges))
}

// RecordStage records one analysis stage's duration.
func (r *Registry) RecordStage(stage string, duration time.Duration) {
	r.AnalysisDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

// Handler returns an HTTP handler for the /metrics endpoint
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Gather exposes the underlying registry for tests.
func (r *Registry) Gather() ([]*dto.MetricFamily, error) {
	return r.registry.Gather()
}

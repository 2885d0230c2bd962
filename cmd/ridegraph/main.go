// Command ridegraph analyzes a ride-log dataset: it builds the directed
// location graph and reports frequent routes, per-category hubs, a shortest
// path, and aggregate hop-distance statistics.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/ridegraph/pkg/analytics"
	"github.com/dd0wney/ridegraph/pkg/config"
	"github.com/dd0wney/ridegraph/pkg/graph"
	"github.com/dd0wney/ridegraph/pkg/ingest"
	"github.com/dd0wney/ridegraph/pkg/logging"
	"github.com/dd0wney/ridegraph/pkg/metrics"
	"github.com/dd0wney/ridegraph/pkg/parallel"
	"github.com/dd0wney/ridegraph/pkg/report"
	"github.com/dd0wney/ridegraph/pkg/trip"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config (optional)")
	dataPath := flag.String("data", "", "Path to the ride-log CSV (overrides config)")
	topK := flag.Int("top", 0, "Number of top routes to report (overrides config)")
	pathFrom := flag.String("from", "", "Shortest-path origin (defaults to top route)")
	pathTo := flag.String("to", "", "Shortest-path destination (defaults to top route)")
	workers := flag.Int("workers", 0, "Workers for all-pairs BFS (0 = NumCPU)")
	metricsListen := flag.String("metrics-listen", "", "Address for the Prometheus /metrics endpoint (optional)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ridegraph: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *dataPath != "" {
		cfg.Dataset.Path = *dataPath
	}
	if *topK > 0 {
		cfg.Analysis.TopK = *topK
	}
	if *pathFrom != "" || *pathTo != "" {
		cfg.Analysis.PathFrom = *pathFrom
		cfg.Analysis.PathTo = *pathTo
	}
	if *workers > 0 {
		cfg.Analysis.Workers = *workers
	}
	if *metricsListen != "" {
		cfg.MetricsListen = *metricsListen
	}
	if cfg.Dataset.Path == "" {
		fmt.Fprintln(os.Stderr, "Usage: ridegraph --data rides.csv [--top 5] [--from A --to B] [--config config.yaml]")
		os.Exit(1)
	}

	logger := logging.NewJSONLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel)).
		With(logging.RunID(uuid.New().String()))
	reg := metrics.DefaultRegistry()

	if cfg.MetricsListen != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", reg.Handler())
		go func() {
			if err := http.ListenAndServe(cfg.MetricsListen, mux); err != nil {
				logger.Error("metrics endpoint failed", logging.Error(err))
			}
		}()
		logger.Info("metrics endpoint listening", logging.String("addr", cfg.MetricsListen))
	}

	if err := run(cfg, logger, reg); err != nil {
		logger.Error("analysis failed", logging.Error(err))
		os.Exit(1)
	}
}

func run(cfg config.Config, logger logging.Logger, reg *metrics.Registry) error {
	// Ingest
	opts := ingest.DefaultOptions()
	if cfg.Dataset.Delimiter != "" {
		opts.Comma = rune(cfg.Dataset.Delimiter[0])
	}
	opts.SkipHeader = cfg.Dataset.SkipHeader
	opts.CategoryColumn = cfg.Dataset.CategoryColumn
	opts.OriginColumn = cfg.Dataset.OriginColumn
	opts.DestColumn = cfg.Dataset.DestColumn

	source, err := ingest.NewCSVSource(cfg.Dataset.Path, opts)
	if err != nil {
		return err
	}

	timer := logging.StartTimer(logger, "ingest complete", logging.Stage("ingest"))
	records, err := source.Records()
	if err != nil {
		timer.EndError(err)
		return err
	}
	stats := source.Stats()
	reg.RecordIngest(stats.RowsRead, stats.RowsKept, stats.RowsDropped)
	timer.End()
	logger.Info("rides loaded",
		logging.Rides(len(records)),
		logging.Int("dropped", stats.RowsDropped),
	)

	rep := analyze(records, cfg, logger, reg)
	report.Render(os.Stdout, rep)
	return nil
}

// analyze runs every pipeline stage over the filtered records.
func analyze(records []trip.Record, cfg config.Config, logger logging.Logger, reg *metrics.Registry) report.Report {
	// Graph build
	start := time.Now()
	g := graph.Build(records)
	reg.RecordStage("build", time.Since(start))
	reg.RecordGraph(g.NodeCount(), g.EdgeCount())
	logger.Info("graph built", logging.Nodes(g.NodeCount()), logging.Edges(g.EdgeCount()))

	// Route aggregation
	start = time.Now()
	topRoutes := analytics.TopRoutes(records, cfg.Analysis.TopK)
	hubs := analytics.PopularHubs(records)
	reg.RecordStage("aggregate", time.Since(start))

	// Shortest path: explicit endpoints, or the most frequent route's
	from, to := cfg.Analysis.PathFrom, cfg.Analysis.PathTo
	if from == "" && len(topRoutes) > 0 {
		from = topRoutes[0].Route.Origin
		to = topRoutes[0].Route.Destination
	}

	var (
		pathNames   []string
		pathQueried bool
	)
	if from != "" && to != "" {
		pathQueried = true
		startIdx, okFrom := g.IndexOf(from)
		endIdx, okTo := g.IndexOf(to)
		if okFrom && okTo {
			start = time.Now()
			path, err := analytics.ShortestPath(g, startIdx, endIdx)
			reg.RecordStage("shortest_path", time.Since(start))
			reg.BFSRunsTotal.Inc()
			if err != nil {
				logger.Warn("shortest path failed", logging.Error(err))
			} else if path != nil {
				pathNames, _ = g.PathNames(path)
			}
		} else {
			logger.Warn("path endpoint not in graph",
				logging.Location("from", from), logging.Location("to", to))
		}
	}

	// All-pairs distance statistics
	start = time.Now()
	tables := parallel.AllDistances(g, cfg.Analysis.Workers)
	distStats := analytics.DistanceStats(tables)
	reg.RecordStage("distance_stats", time.Since(start))
	reg.BFSRunsTotal.Add(float64(g.NodeCount()))
	logger.Info("distance statistics computed",
		logging.Float64("mean", distStats.Mean),
		logging.Float64("stddev", distStats.StdDev),
		logging.Int("max", distStats.Max),
	)

	return report.Report{
		Rides:       len(records),
		Nodes:       g.NodeCount(),
		Edges:       g.EdgeCount(),
		TopRoutes:   topRoutes,
		Hubs:        hubs,
		Path:        pathNames,
		PathQueried: pathQueried,
		Stats:       distStats,
	}
}

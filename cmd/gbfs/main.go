// Command gbfs runs greedy best-first search on one of the bundled graphs
// and compares the route with the Dijkstra optimum.
//
//	gbfs                          # S → T on the 13-vertex grid
//	gbfs -graph toy -heuristic table -start A -goal X
//	gbfs -config gbfs.toml -trace
//
// Exit status is 0 whether or not a path exists, 1 on configuration errors.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/katalvlaran/gbfs/bfs"
	"github.com/katalvlaran/gbfs/core"
	"github.com/katalvlaran/gbfs/dijkstra"
	"github.com/katalvlaran/gbfs/greedy"
	"github.com/katalvlaran/gbfs/internal/config"
	"github.com/katalvlaran/gbfs/internal/fixture"
	"github.com/katalvlaran/gbfs/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, so it can be tested.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gbfs", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a TOML config file")
	graph := fs.String("graph", "", "graph to search: grid13 or toy (overrides GBFS_GRAPH)")
	start := fs.String("start", "", "start vertex ID (overrides GBFS_START)")
	goal := fs.String("goal", "", "goal vertex ID (overrides GBFS_GOAL)")
	heuristic := fs.String("heuristic", "", "manhattan, euclidean, chebyshev or table (overrides GBFS_HEURISTIC)")
	cost := fs.String("cost", "", "heuristic or weighted (overrides GBFS_COST)")
	maxSteps := fs.Int("max-steps", -1, "abort after this many steps, 0 = unlimited (overrides GBFS_MAX_STEPS)")
	timeout := fs.String("timeout", "", "abort after this duration, e.g. 2s (overrides GBFS_TIMEOUT)")
	logLevel := fs.String("log-level", "", "debug, info, warn or error (overrides GBFS_LOG_LEVEL)")
	logFormat := fs.String("log-format", "", "text or json (overrides GBFS_LOG_FORMAT)")
	trace := fs.Bool("trace", false, "print the open and closed sets after every step")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "[ERROR] %v\n", err)
		return 1
	}

	// Flag overrides take precedence over file and env
	override(&cfg.Graph, *graph)
	override(&cfg.Start, *start)
	override(&cfg.Goal, *goal)
	override(&cfg.Heuristic, *heuristic)
	override(&cfg.Cost, *cost)
	override(&cfg.Timeout, *timeout)
	override(&cfg.LogLevel, *logLevel)
	override(&cfg.LogFormat, *logFormat)
	if *maxSteps >= 0 {
		cfg.MaxSteps = *maxSteps
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "[ERROR] %v\n", err)
		return 1
	}

	logger := logging.New(cfg.LogFormat, cfg.LogLevel, stderr)

	g, table := loadGraph(cfg.Graph)
	opts, cancel, err := searchOptions(cfg, table, logger)
	if err != nil {
		fmt.Fprintf(stderr, "[ERROR] %v\n", err)
		return 1
	}
	defer cancel()

	e, err := greedy.New(g, cfg.Start, cfg.Goal, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "[ERROR] %v\n", err)
		return 1
	}

	res, err := drive(e, stdout, *trace)
	if err != nil {
		fmt.Fprintf(stderr, "[ERROR] %v\n", err)
		return 1
	}

	report(stdout, g, cfg, res)

	return 0
}

func override(dst *string, flagValue string) {
	if flagValue != "" {
		*dst = flagValue
	}
}

// loadGraph returns the named graph and its heuristic table, if any.
func loadGraph(name string) (*core.Graph, map[string]float64) {
	if name == "toy" {
		return fixture.Toy(), fixture.ToyEstimates
	}

	return fixture.Grid13(), nil
}

// searchOptions turns the configuration into greedy options. The returned
// cancel func must always be called.
func searchOptions(cfg *config.Config, table map[string]float64, logger *slog.Logger) ([]greedy.Option, context.CancelFunc, error) {
	var h greedy.Heuristic
	switch cfg.Heuristic {
	case "euclidean":
		h = greedy.Euclidean
	case "chebyshev":
		h = greedy.Chebyshev
	case "table":
		if table == nil {
			return nil, nil, fmt.Errorf("%w: graph %q has no heuristic table", config.ErrInvalid, cfg.Graph)
		}
		h = greedy.Table(table)
	default:
		h = greedy.Manhattan
	}

	opts := []greedy.Option{greedy.WithLogger(logger), greedy.WithMaxSteps(cfg.MaxSteps)}
	if cfg.Cost == "weighted" {
		opts = append(opts, greedy.WithCost(greedy.WeightedHeuristic(h)))
	} else {
		opts = append(opts, greedy.WithHeuristic(h))
	}

	ctx, cancel := context.Background(), context.CancelFunc(func() {})
	d, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, nil, err
	}
	if d > 0 {
		ctx, cancel = context.WithTimeout(ctx, d)
	}

	return append(opts, greedy.WithContext(ctx)), cancel, nil
}

// drive steps the engine to completion, printing a trace line per step when asked.
func drive(e *greedy.Engine, w io.Writer, trace bool) (greedy.Result, error) {
	if !trace {
		return e.Run()
	}

	for !e.Status().Terminal() {
		snap, err := e.Step()
		if err != nil {
			return greedy.Result{}, err
		}
		current := snap.Current
		if current == "" {
			current = "-"
		}
		fmt.Fprintf(w, "step %d: expand %s open=[%s] closed=[%s]\n",
			snap.Step, current, strings.Join(snap.Open, " "), strings.Join(snap.Closed, " "))
	}

	return e.Run()
}

func report(w io.Writer, g *core.Graph, cfg *config.Config, res greedy.Result) {
	switch res.Status {
	case greedy.StatusSucceeded:
		fmt.Fprintln(w, res)
		fmt.Fprintf(w, "Length of the path: %d\n", res.Length())
		fmt.Fprintf(w, "Cost of the path: %d\n", res.Cost)
	case greedy.StatusAborted:
		reason := "aborted"
		if errors.Is(res.Reason, greedy.ErrStepLimit) {
			reason = "step limit reached"
		} else if res.Reason != nil {
			reason = res.Reason.Error()
		}
		fmt.Fprintf(w, "Search aborted: %s\n", reason)
	default:
		fmt.Fprintf(w, "No path from %s to %s\n", cfg.Start, cfg.Goal)
	}
	fmt.Fprintf(w, "Steps: %d\n", res.Steps)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(cfg.Start))
	if err != nil || dist[cfg.Goal] == math.MaxInt64 {
		return
	}
	fmt.Fprintf(w, "Optimal cost (Dijkstra): %d\n", dist[cfg.Goal])

	walk, err := bfs.BFS(g, cfg.Start, bfs.WithTarget(cfg.Goal))
	if err != nil {
		return
	}
	if hops, err := walk.Hops(cfg.Goal); err == nil {
		fmt.Fprintf(w, "Fewest hops (BFS): %d\n", hops)
	}
}

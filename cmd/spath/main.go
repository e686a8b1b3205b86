// Command spath reads a weighted undirected graph, prints the shortest
// route between two vertices and renders the graph with that route
// highlighted.
//
// Usage:
//
//	spath                                  # interactive prompts
//	spath -graph city.yaml -render dot     # YAML graph file
//	spath -gen grid -n 5 -seed 7 -dst 25   # generated graph
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/spath/bfs"
	"github.com/katalvlaran/spath/builder"
	"github.com/katalvlaran/spath/core"
	"github.com/katalvlaran/spath/dijkstra"
	"github.com/katalvlaran/spath/internal/config"
	"github.com/katalvlaran/spath/internal/logging"
	"github.com/katalvlaran/spath/internal/prompt"
	"github.com/katalvlaran/spath/render"
)

func main() {
	f, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "spath: %v\n", err)
		os.Exit(2)
	}
	if err := run(f, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "spath: %v\n", err)
		os.Exit(1)
	}
}

// run executes one query end to end. Results go to out, prompts too in
// interactive mode, and logs to errOut.
func run(f cliFlags, in io.Reader, out, errOut io.Writer) error {
	// 1) Configuration: file and environment, then flags on top.
	cfg, err := config.Load(f.configFile)
	if err != nil {
		return err
	}
	if f.render != "" {
		cfg.Render.Format = f.render
	}
	if f.out != "" {
		cfg.Render.Out = f.out
	}
	if f.queue != "" {
		cfg.Engine.Queue = f.queue
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	log := logging.New(cfg.Logging, errOut)

	// 2) Read the query.
	q, interactive, err := readQuery(f, in, out)
	if err != nil {
		return err
	}
	adj, err := q.Adjacency()
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"vertices": adj.VertexCount(),
		"edges":    adj.EdgeCount(),
		"queue":    cfg.Engine.Queue,
		"revisits": cfg.Engine.Revisits,
	}).Debug("graph loaded")

	// 3) Run the engine.
	res, err := dijkstra.ShortestPaths(adj, q.Source, cfg.EngineOptions()...)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"pops":        res.Stats.Pops,
		"staleSkips":  res.Stats.StaleSkips,
		"relaxations": res.Stats.Relaxations,
		"pushes":      res.Stats.Pushes,
	}).Info("shortest paths computed")

	// 4) Report distance and route in 1-based numbering.
	if interactive {
		fmt.Fprintln(out)
	}
	path, err := res.PathTo(q.Destination)
	switch {
	case errors.Is(err, dijkstra.ErrNoPath):
		fmt.Fprintf(out, "Shortest Distance from %d to %d: unreachable\n", q.Source+1, q.Destination+1)
		fmt.Fprintln(out, "Shortest Path: none")
		log.WithField("destination", q.Destination+1).Warn("destination is not reachable from source")
	case err != nil:
		return err
	default:
		fmt.Fprintf(out, "Shortest Distance from %d to %d: %d\n", q.Source+1, q.Destination+1, res.Dist[q.Destination])
		fmt.Fprintf(out, "Shortest Path: %s\n", prompt.FormatPath(path))
		logFewestHops(log, adj, q)
	}

	// 5) Render the scene.
	return renderScene(cfg.Render, render.NewScene(adj, path, q.Title()), out)
}

// readQuery picks the input source: graph file, generator or prompts.
func readQuery(f cliFlags, in io.Reader, out io.Writer) (prompt.Query, bool, error) {
	switch {
	case f.graphFile != "":
		q, err := prompt.LoadFile(f.graphFile)
		return q, false, err
	case f.gen != "":
		q, err := generate(f)
		return q, false, err
	default:
		q, err := prompt.Interactive(in, out)
		return q, true, err
	}
}

// generate builds the -gen graph and resolves -src/-dst.
func generate(f cliFlags) (prompt.Query, error) {
	n, edges, err := builder.BuildEdges(
		[]builder.Option{
			builder.WithSeed(f.seed),
			builder.WithWeightFn(builder.UniformWeightFn(1, f.maxWeight)),
		},
		generators[f.gen](f.n, f.p),
	)
	if err != nil {
		return prompt.Query{}, err
	}

	dst := f.dst
	if dst == 0 {
		dst = n
	}
	if f.src < 1 || f.src > n || dst < 1 || dst > n {
		return prompt.Query{}, fmt.Errorf("-src %d / -dst %d must be in [1,%d]", f.src, dst, n)
	}

	return prompt.Query{VertexCount: n, Edges: edges, Source: f.src - 1, Destination: dst - 1}, nil
}

// logFewestHops reports the route with the fewest edges, which may differ
// from the lightest one.
func logFewestHops(log *logrus.Logger, adj *core.Adjacency, q prompt.Query) {
	walk, err := bfs.BFS(adj, q.Source)
	if err != nil {
		log.WithError(err).Warn("fewest-hop search failed")
		return
	}
	hops, err := walk.PathTo(q.Destination)
	if err != nil {
		log.WithError(err).Warn("fewest-hop search failed")
		return
	}
	log.WithFields(logrus.Fields{
		"hops":  walk.Depth[q.Destination],
		"route": prompt.FormatPath(hops),
	}).Info("fewest-hop route")
}

// renderScene writes the scene in the configured format.
func renderScene(rc config.RenderConfig, scene render.Scene, out io.Writer) (err error) {
	if rc.Format == "none" {
		return nil
	}
	if rc.Out != "" {
		var file *os.File
		file, err = os.Create(rc.Out)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		defer func() {
			if cerr := file.Close(); err == nil {
				err = cerr
			}
		}()
		out = file
	} else {
		fmt.Fprintln(out)
	}

	if rc.Format == "dot" {
		return render.DOT(out, scene, render.WithOneBased())
	}

	return render.Text(out, scene, render.WithOneBased())
}

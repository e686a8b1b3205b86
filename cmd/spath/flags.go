package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/spath/builder"
)

// cliFlags holds the parsed command line.
type cliFlags struct {
	configFile string
	graphFile  string
	gen        string
	n          int
	p          float64
	seed       int64
	maxWeight  int64
	src        int
	dst        int
	render     string
	out        string
	queue      string
}

// generators maps -gen names to builder constructors of size n.
var generators = map[string]func(n int, p float64) builder.Constructor{
	"path":     func(n int, _ float64) builder.Constructor { return builder.Path(n) },
	"cycle":    func(n int, _ float64) builder.Constructor { return builder.Cycle(n) },
	"star":     func(n int, _ float64) builder.Constructor { return builder.Star(n) },
	"complete": func(n int, _ float64) builder.Constructor { return builder.Complete(n) },
	"grid":     func(n int, _ float64) builder.Constructor { return builder.Grid(n, n) },
	"random":   builder.RandomSparse,
}

func parseFlags(args []string, errOut io.Writer) (cliFlags, error) {
	var f cliFlags
	fs := flag.NewFlagSet("spath", flag.ContinueOnError)
	fs.SetOutput(errOut)

	fs.StringVar(&f.configFile, "config", "", "Path to a YAML configuration file")
	fs.StringVar(&f.graphFile, "graph", "", "Path to a YAML graph file (1-based vertices)")
	fs.StringVar(&f.gen, "gen", "", "Generate a graph: path|cycle|star|complete|grid|random")
	fs.IntVar(&f.n, "n", 6, "Generated graph size (grid: side length)")
	fs.Float64Var(&f.p, "p", 0.3, "Edge probability for -gen random")
	fs.Int64Var(&f.seed, "seed", 42, "Seed for generated graphs and weights")
	fs.Int64Var(&f.maxWeight, "maxw", 9, "Generated weights are drawn from [1, maxw]")
	fs.IntVar(&f.src, "src", 1, "Source vertex for -gen (1-based)")
	fs.IntVar(&f.dst, "dst", 0, "Destination vertex for -gen (1-based; 0 = last vertex)")
	fs.StringVar(&f.render, "render", "", "Scene output: dot|text|none (overrides config)")
	fs.StringVar(&f.out, "out", "", "Write the scene to this file instead of stdout")
	fs.StringVar(&f.queue, "queue", "", "Priority queue: lazy|indexed (overrides config)")

	if err := fs.Parse(args); err != nil {
		return cliFlags{}, err
	}
	if fs.NArg() > 0 {
		return cliFlags{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return f, f.validate()
}

func (f cliFlags) validate() error {
	if f.graphFile != "" && f.gen != "" {
		return fmt.Errorf("-graph and -gen are mutually exclusive")
	}
	if f.gen == "" {
		return nil
	}
	if _, ok := generators[f.gen]; !ok {
		return fmt.Errorf("unknown generator %q", f.gen)
	}
	if f.n < 1 {
		return fmt.Errorf("size must be positive, got %d", f.n)
	}
	if f.p < 0 || f.p > 1 {
		return fmt.Errorf("probability must be in [0,1], got %f", f.p)
	}
	if f.maxWeight < 1 {
		return fmt.Errorf("maximum weight must be at least 1, got %d", f.maxWeight)
	}

	return nil
}

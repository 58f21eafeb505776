// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command full exercises the whole registry surface the way a benchmark
// driver would: a realistic parameter table with value checks, a required
// audit gating the run, assignment tracing routed into a structured logger,
// and a rendered table of the final values.
package main

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/gridrun/params"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

var isTerminalFn = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }

type benchConfig struct {
	GraphType  string        `param:"graph-type"`
	Market     string        `param:"market"`
	Sources    []int64       `param:"src"`
	Devices    []int         `param:"device"`
	Quick      bool          `param:"quick"`
	Undirected bool          `param:"undirected"`
	Iters      int           `param:"iters"`
	Sizing     float64       `param:"queue-sizing"`
	Timeout    time.Duration `param:"timeout"`
	Tags       []string      `param:"tag"`
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.DebugLevel).With().Timestamp().Logger()

	p := params.New("bench <graph-type> [optional arguments]",
		params.WithColor(isTerminalFn()),
		params.WithTracing(true),
		params.WithTraceFunc(func(name, value string) {
			logger.Debug().Str("param", name).Str("value", value).Msg("assigned")
		}),
	)

	params.Use(p, "help", params.OptionalArgument, false, "Print this usage text")
	params.Use(p, "graph-type", params.RequiredArgument|params.RequiredParameter, "", "Input graph type (market, rgg, grid)")
	params.Use(p, "market", params.RequiredArgument, "", "Matrix market file to load")
	params.Use(p, "src", params.RequiredArgument|params.MultiValue, int64(0), "Source vertices, one traversal each")
	params.Use(p, "device", params.RequiredArgument|params.MultiValue, 0, "GPU device indices")
	params.Use(p, "quick", params.OptionalArgument, false, "Skip reference verification")
	params.Use(p, "undirected", params.OptionalArgument, false, "Treat edges as undirected")
	params.Use(p, "iters", params.RequiredArgument, 10, "Timed iterations")
	params.Use(p, "queue-sizing", params.RequiredArgument, 1.2, "Frontier queue sizing factor")
	params.Use(p, "timeout", params.RequiredArgument, time.Duration(0), "Abort a traversal after this long")
	params.Use(p, "tag", params.RequiredArgument|params.MultiValue, "", "Labels attached to the run")

	p.AddCheck("market", params.FileExists())
	p.AddCheck("market", params.Keywords(".mtx"))
	p.AddCheck("device", params.NoDuplicates())
	p.AddCheck("tag", params.Alnum())

	if err := p.Parse(os.Args[1:]); err != nil {
		logger.Warn().Err(err).Msg("some arguments were ignored")
	}
	if help, _ := params.Get[bool](p, "help"); help {
		p.PrintHelp()
		return
	}
	if missing := p.CheckRequired(); len(missing) > 0 {
		fmt.Fprintln(os.Stderr, color.RedString("missing %d required parameter(s), run with --help", len(missing)))
		os.Exit(2)
	}

	var cfg benchConfig
	if err := p.Bind(&cfg); err != nil {
		logger.Fatal().Err(err).Msg("binding parameters")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PARAMETER\tVALUE")
	values := p.List()
	for _, name := range slices.Sorted(maps.Keys(values)) {
		fmt.Fprintf(w, "%s\t%s\n", name, values[name])
	}
	w.Flush()

	logger.Info().
		Str("graph", cfg.GraphType).
		Ints("devices", cfg.Devices).
		Int("iters", cfg.Iters).
		Msg("parameters loaded, ready to run")
}

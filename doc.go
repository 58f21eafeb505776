// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package params is a typed command-line parameter registry: applications
// declare named parameters once, a scanner commits validated values from
// the argument vector, and typed accessors serve the results.
//
// The registry follows these principles:
//   - Declarations carry everything: kind, default, arity, requiredness,
//     description, and the declaration site (captured automatically)
//   - Values are stored uniformly as text; kinds define validation,
//     parsing and formatting
//   - Scanning is best-effort: a bad occurrence is diagnosed and skipped,
//     never fatal, and the stored value stays untouched
//   - Typed reads of text that does not parse fail explicitly, never with
//     a silent zero value
//
// # Basic Usage
//
// Declare parameters, parse the argument vector, read values:
//
//	p := params.New("bench <graph-type> [optional arguments]")
//	params.Use[string](p, "graph-type", params.RequiredArgument|params.RequiredParameter, "", "Input graph type")
//	params.Use[int](p, "iters", params.RequiredArgument, 10, "Benchmark iterations")
//	params.Use[bool](p, "quick", params.OptionalArgument, false, "Skip verification")
//
//	if err := p.Parse(os.Args[1:]); err != nil {
//	    log.Printf("some arguments were ignored: %v", err)
//	}
//	if len(p.CheckRequired()) > 0 {
//	    p.PrintHelp()
//	    os.Exit(2)
//	}
//	iters, err := params.Get[int](p, "iters")
//
// Option occurrences take the forms --name value, --name=value and --name
// alone, with one or two leading dashes. Which forms apply depends on the
// declared argument mode; see Parse.
//
// # Arity
//
// A parameter's Arity ORs together one bit from each of three groups:
// argument mode (NoArgument, RequiredArgument, OptionalArgument),
// multiplicity (SingleValue, MultiValue) and requiredness
// (RequiredParameter, OptionalParameter). Unset groups default to
// OptionalArgument, SingleValue and OptionalParameter. A multi-value
// parameter accumulates repeated occurrences into a comma-joined list; a
// single-value one is overwritten with a warning.
//
// # Kinds
//
// The value kinds are bool, int, uint, float64, string and duration,
// mapping to the Go types in the Value union. Multi-value texts validate
// per comma-separated element.
//
// # Concurrency
//
// A Params has no internal locking. One goroutine owns it through
// registration, then parsing, then reads; sharing it across goroutines
// needs external synchronization.
package params

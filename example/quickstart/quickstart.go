// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command quickstart declares a small parameter table, parses the command
// line and prints what it got.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gridrun/params"
)

func main() {
	p := params.New("quickstart [optional arguments]")
	params.Use(p, "help", params.OptionalArgument, false, "Print this usage text")
	params.Use(p, "iters", params.RequiredArgument, 10, "Benchmark iterations")
	params.Use(p, "quick", params.OptionalArgument, false, "Skip verification")
	params.Use(p, "market", params.RequiredArgument, "", "Matrix market file")

	if err := p.Parse(os.Args[1:]); err != nil {
		log.Printf("some arguments were ignored: %v", err)
	}
	if help, _ := params.Get[bool](p, "help"); help {
		p.PrintHelp()
		return
	}

	iters, err := params.Get[int](p, "iters")
	if err != nil {
		log.Fatal(err)
	}
	quick, _ := params.Get[bool](p, "quick")
	market, _ := p.GetText("market")
	fmt.Printf("iters=%d quick=%v market=%q\n", iters, quick, market)
}

// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
)

// PrintHelp writes the help text to the output writer: the summary line,
// then the required parameters, then the optional ones, each section in
// lexicographic name order. A section header prints only when the section
// has members. Entries show the kind and the default; the description
// follows tab-indented.
func (p *Params) PrintHelp() {
	fmt.Fprintf(p.out, "%s\n", p.summary)
	p.printSection("Required arguments:", true)
	p.printSection("Optional arguments:", false)
}

func (p *Params) printSection(header string, required bool) {
	first := true
	for _, name := range p.sortedNames() {
		it := p.items[name]
		if it.arity.required() != required {
			continue
		}
		if first {
			if p.color {
				header = color.New(color.Bold).Sprint(header)
			}
			fmt.Fprintf(p.out, "\n%s\n", header)
			first = false
		}
		fmt.Fprintf(p.out, "--%s : %s, default = %s\n", name, it.kind, helpDefault(it))
		fmt.Fprintf(p.out, "\t%s\n", it.desc)
	}
}

// helpDefault renders a default for help. Bool defaults print their parsed
// value, so "0" and "1" forms read as false and true; unparsable bool text
// and every other kind print the stored default as is.
func helpDefault(it *param) string {
	if it.kind != KindBool || it.def == "" {
		return it.def
	}
	v, err := strconv.ParseBool(it.def)
	if err != nil {
		return it.def
	}
	return strconv.FormatBool(v)
}

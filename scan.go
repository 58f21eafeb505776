// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"errors"
	"fmt"
	"strings"
)

// option is one scanner table entry. Ids are sequential integers assigned
// in table order; they are never derived from option name characters, so
// any number of parameters can coexist without collisions.
type option struct {
	name string
	mode Arity
	id   int
}

// optionTable builds the scanner table in lexicographic name order.
func (p *Params) optionTable() []option {
	names := p.sortedNames()
	table := make([]option, len(names))
	for i, name := range names {
		table[i] = option{name: name, mode: p.items[name].arity.argMode(), id: i}
	}
	return table
}

// Parse scans args, the argument vector after the program name, against the
// registered parameters and commits validated values.
//
// Option tokens take one or two leading dashes and match declared names
// exactly; an inline value follows "=". Whether a separate value token is
// consumed depends on the parameter's argument mode:
//
//   - no-argument: never consumes a token; an inline value is an error.
//   - required-argument: consumes the next token unless an inline value
//     was given.
//   - optional-argument: takes inline values only; "--name" alone supplies
//     the empty text (which a bool reads as true).
//
// "--" ends option scanning; tokens that are not options are ignored. The
// scan always runs to the end of the vector: failed occurrences are
// diagnosed on the error writer and skipped, leaving the stored value
// untouched. Parse returns nil when every occurrence committed, otherwise
// the per-occurrence errors joined. A non-nil return is a report, not an
// abort signal.
func (p *Params) Parse(args []string) error {
	table := p.optionTable()
	index := make(map[string]int, len(table))
	for _, o := range table {
		index[o.name] = o.id
	}

	var errs []error
	for i := 0; i < len(args); i++ {
		tok := args[i]
		if tok == "--" {
			break
		}
		if len(tok) < 2 || tok[0] != '-' {
			continue
		}
		body := strings.TrimPrefix(strings.TrimPrefix(tok, "-"), "-")
		name, inline, hasInline := strings.Cut(body, "=")
		id, ok := index[name]
		if !ok {
			fmt.Fprintf(p.errw, "Error : Option %s is not recognized.\n", tok)
			errs = append(errs, &UnknownError{Name: name})
			continue
		}
		it := p.items[table[id].name]

		var raw string
		switch table[id].mode {
		case NoArgument:
			if hasInline {
				fmt.Fprintf(p.errw, "Error : Parameter %s(%s) does not take an argument.\n", it.name, it.site)
				errs = append(errs, &ArityError{Name: it.name, Site: it.site, Reason: "does not take an argument"})
				continue
			}
		case RequiredArgument:
			switch {
			case hasInline:
				raw = inline
			case i+1 < len(args):
				i++
				raw = args[i]
			default:
				fmt.Fprintf(p.errw, "Error : Parameter %s(%s) requires an argument.\n", it.name, it.site)
				errs = append(errs, &ArityError{Name: it.name, Site: it.site, Reason: "requires an argument"})
				continue
			}
		case OptionalArgument:
			if hasInline {
				raw = inline
			}
		}

		if err := p.commit(it, raw); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// commit runs one matched occurrence through the value pipeline: bool
// substitution, multi-value normalization and accumulation, multiplicity
// rules, kind validation, checks, and finally the store.
func (p *Params) commit(it *param, raw string) error {
	if it.kind == KindBool && raw == "" {
		raw = "true"
	}
	if it.arity.multi() {
		raw = normalizeList(raw)
		if !it.useDefault {
			fmt.Fprintf(p.errw, "Warning : Parameter %s(%s) specified more than once, latter value %s is appended to previous ones.\n", it.name, it.site, raw)
			raw = it.value + "," + raw
		}
	} else {
		if strings.Contains(raw, ",") {
			fmt.Fprintf(p.errw, "Error : Parameter %s(%s) only takes single argument.\n", it.name, it.site)
			return &ArityError{Name: it.name, Site: it.site, Reason: "only takes a single argument"}
		}
		if !it.useDefault {
			fmt.Fprintf(p.errw, "Warning : Parameter %s(%s) specified more than once, only latter value %s is effective.\n", it.name, it.site, raw)
		}
	}
	if err := it.kind.validateText(raw, it.arity.multi()); err != nil {
		fmt.Fprintf(p.errw, "Error : Parameter %s(%s) only takes in %s, argument %s is invalid.\n", it.name, it.site, it.kind, raw)
		return &ValueError{Name: it.name, Site: it.site, Kind: it.kind, Value: raw, Err: err}
	}
	for _, c := range it.checks {
		if err := c(it.name, raw); err != nil {
			fmt.Fprintf(p.errw, "Error : Parameter %s(%s) rejected value %s: %v.\n", it.name, it.site, raw, err)
			return &CheckError{Name: it.name, Site: it.site, Value: raw, Err: err}
		}
	}
	return p.SetText(it.name, raw)
}

// normalizeList rewrites bracketed multi-value forms ("[a, b, c]") to the
// canonical comma-joined encoding. Text without brackets or spaces passes
// through untouched; otherwise tokens split on spaces, commas and brackets,
// and empty tokens vanish.
func normalizeList(s string) string {
	if !strings.ContainsAny(s, " []") {
		return s
	}
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '[' || r == ']'
	})
	return strings.Join(fields, ",")
}

// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"fmt"
	"io"
	"maps"
	"os"
	"runtime"
	"slices"
	"strconv"
	"strings"
)

// Arity describes how a parameter behaves on the command line: whether an
// occurrence carries an argument, how repeated occurrences combine, and
// whether the parameter must be present. Callers OR together one bit from
// each group; a group with no bit set takes that group's default
// (OptionalArgument, SingleValue, OptionalParameter).
type Arity uint16

const (
	// Argument mode.
	NoArgument Arity = 1 << iota
	RequiredArgument
	OptionalArgument

	// Multiplicity.
	SingleValue
	MultiValue

	// Requiredness.
	RequiredParameter
	OptionalParameter
)

const (
	argModeBits  = NoArgument | RequiredArgument | OptionalArgument
	multiBits    = SingleValue | MultiValue
	requiredBits = RequiredParameter | OptionalParameter
)

// normalized fills unset groups with their defaults.
func (a Arity) normalized() Arity {
	if a&argModeBits == 0 {
		a |= OptionalArgument
	}
	if a&multiBits == 0 {
		a |= SingleValue
	}
	if a&requiredBits == 0 {
		a |= OptionalParameter
	}
	return a
}

// argMode collapses the argument-mode group to a single bit. When several
// bits are set, NoArgument wins over RequiredArgument over OptionalArgument.
func (a Arity) argMode() Arity {
	switch {
	case a&NoArgument != 0:
		return NoArgument
	case a&RequiredArgument != 0:
		return RequiredArgument
	default:
		return OptionalArgument
	}
}

// multi reports whether repeated occurrences accumulate. SingleValue wins
// when both multiplicity bits are set.
func (a Arity) multi() bool {
	return a&MultiValue != 0 && a&SingleValue == 0
}

// required reports whether CheckRequired audits the parameter.
func (a Arity) required() bool {
	return a&RequiredParameter != 0
}

// Site is the file:line a parameter was declared at. Sites identify
// declarations: re-registering a name from its original site is idempotent,
// from anywhere else a duplicate.
type Site struct {
	File string
	Line int
}

func (s Site) String() string { return fmt.Sprintf("%s:%d", s.File, s.Line) }

// callerSite captures the declaration site skip+1 frames up.
func callerSite(skip int) Site {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Site{File: "unknown"}
	}
	return Site{File: file, Line: line}
}

// param is one registry record. Values live as text; kind and arity govern
// how the scanner and the typed accessors treat that text.
type param struct {
	name       string
	arity      Arity
	kind       Kind
	def        string
	value      string
	useDefault bool
	site       Site
	desc       string
	checks     []Check
}

// Params is a registry of typed command-line parameters: declarations made
// with Use, values committed by Parse or Set, reads served by Get, List and
// the required audit. A Params is not safe for concurrent use; the owning
// goroutine registers, then parses, then reads.
type Params struct {
	summary string
	items   map[string]*param

	out     io.Writer
	errw    io.Writer
	tracing bool
	traceFn func(name, value string)
	color   bool
}

// Option configures a registry at construction time.
type Option func(*Params)

// WithOutput sets the writer for help text and the assignment trace.
// Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(p *Params) { p.out = w }
}

// WithErrOutput sets the writer for diagnostics. Defaults to os.Stderr.
func WithErrOutput(w io.Writer) Option {
	return func(p *Params) { p.errw = w }
}

// WithTracing enables the assignment trace: every committed write emits
// "Parameter <name> <- <value>" on the output writer (or calls the trace
// func). Off by default.
func WithTracing(on bool) Option {
	return func(p *Params) { p.tracing = on }
}

// WithTraceFunc replaces the default trace line with fn. Only called when
// tracing is enabled; this is the hook for routing assignments into a
// structured logger.
func WithTraceFunc(fn func(name, value string)) Option {
	return func(p *Params) { p.traceFn = fn }
}

// WithColor styles help section headers with ANSI bold. Off by default;
// when on, the global color controls (NO_COLOR and friends) still apply.
func WithColor(on bool) Option {
	return func(p *Params) { p.color = on }
}

// New returns an empty registry. summary becomes the first line of the help
// text.
func New(summary string, opts ...Option) *Params {
	p := &Params{
		summary: summary,
		items:   make(map[string]*param),
		out:     os.Stdout,
		errw:    os.Stderr,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// sortedNames returns the registered names in lexicographic order, the
// registry's natural order for the option table, the audit and help.
func (p *Params) sortedNames() []string {
	return slices.Sorted(maps.Keys(p.items))
}

// Use registers a parameter whose kind derives from T, with def formatted
// canonically. The declaration site is the caller's file:line. See UseText
// for the failure modes.
func Use[T Value](p *Params, name string, arity Arity, def T, desc string) error {
	return p.useAt(callerSite(1), name, arity, kindOf[T](), formatValue(def), desc)
}

// UseText registers a parameter with an explicit kind and a textual
// default. The current value starts as the default. A NoArgument parameter
// must be KindBool, checked ahead of the duplicate rule; declaring one
// whose default is already true draws a warning, since occurrences could
// never change its value. Registering a name again from a different site
// fails with a DuplicateError; re-running the identical declaration is
// accepted and resets the parameter to its default, so declaration code
// may be re-entered freely.
func (p *Params) UseText(name string, arity Arity, kind Kind, def, desc string) error {
	return p.useAt(callerSite(1), name, arity, kind, def, desc)
}

func (p *Params) useAt(site Site, name string, arity Arity, kind Kind, def, desc string) error {
	arity = arity.normalized()
	if arity.argMode() == NoArgument {
		if kind != KindBool {
			fmt.Fprintf(p.errw, "Parameter %s with no-argument arity must be bool, not %s\n", name, kind)
			return &NoArgumentKindError{Name: name, Kind: kind}
		}
		if v, err := strconv.ParseBool(def); err == nil && v {
			fmt.Fprintf(p.errw, "Warning : Parameter %s(%s) is no-argument with default true, occurrences have no effect.\n", name, site)
		}
	}
	if old, ok := p.items[name]; ok && old.site != site {
		fmt.Fprintf(p.errw, "Parameter %s has been defined before, %s\n", name, old.site)
		return &DuplicateError{Name: name, First: old.site}
	}
	p.items[name] = &param{
		name:       name,
		arity:      arity,
		kind:       kind,
		def:        def,
		value:      def,
		useDefault: true,
		site:       site,
		desc:       desc,
	}
	return nil
}

// Set formats v with the canonical encoding for T and stores it as the
// parameter's current text.
func Set[T Value](p *Params, name string, v T) error {
	return p.SetText(name, formatValue(v))
}

// SetList joins the canonical texts of vs with commas and stores the
// result, the multi-value encoding.
func SetList[T Value](p *Params, name string, vs []T) error {
	elems := make([]string, len(vs))
	for i, v := range vs {
		elems[i] = formatValue(v)
	}
	return p.SetText(name, strings.Join(elems, ","))
}

// SetText stores value as the parameter's current text and clears its
// use-default state. Programmatic writes are trusted: the text is not
// validated against the kind. The scanner validates before committing
// through here.
func (p *Params) SetText(name, value string) error {
	it, ok := p.items[name]
	if !ok {
		fmt.Fprintf(p.errw, "Parameter %s has not been defined\n", name)
		return &UnknownError{Name: name}
	}
	it.value = value
	it.useDefault = false
	p.trace(name, value)
	return nil
}

func (p *Params) trace(name, value string) {
	if !p.tracing {
		return
	}
	if p.traceFn != nil {
		p.traceFn(name, value)
		return
	}
	fmt.Fprintf(p.out, "Parameter %s <- %s\n", name, value)
}

// Get parses the parameter's current text as a T. Text that does not parse
// is an explicit ValueError, never a silent zero value.
func Get[T Value](p *Params, name string) (T, error) {
	var zero T
	it, ok := p.items[name]
	if !ok {
		fmt.Fprintf(p.errw, "Parameter %s has not been defined\n", name)
		return zero, &UnknownError{Name: name}
	}
	v, err := parseValue[T](it.value)
	if err != nil {
		return zero, &ValueError{Name: name, Site: it.site, Kind: it.kind, Value: it.value, Err: err}
	}
	return v, nil
}

// GetList splits the parameter's current text on commas and parses each
// element as a T. Empty text is an empty list.
func GetList[T Value](p *Params, name string) ([]T, error) {
	text, err := p.GetText(name)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	it := p.items[name]
	elems := strings.Split(text, ",")
	vs := make([]T, len(elems))
	for i, elem := range elems {
		v, err := parseValue[T](elem)
		if err != nil {
			return nil, &ValueError{Name: name, Site: it.site, Kind: it.kind, Value: elem, Err: err}
		}
		vs[i] = v
	}
	return vs, nil
}

// GetText returns the parameter's current text.
func (p *Params) GetText(name string) (string, error) {
	it, ok := p.items[name]
	if !ok {
		fmt.Fprintf(p.errw, "Parameter %s has not been defined\n", name)
		return "", &UnknownError{Name: name}
	}
	return it.value, nil
}

// Missing identifies a required parameter that has no value.
type Missing struct {
	Name string
	Site Site
}

// CheckRequired reports every required parameter whose current text is
// empty, printing one diagnostic per finding. It returns the findings
// rather than an error and mutates nothing: whether a missing parameter is
// fatal is the caller's call, not the registry's.
func (p *Params) CheckRequired() []Missing {
	var missing []Missing
	for _, name := range p.sortedNames() {
		it := p.items[name]
		if !it.arity.required() || it.value != "" {
			continue
		}
		fmt.Fprintf(p.errw, "Error : Required parameter %s(%s) is not present.\n", name, it.site)
		missing = append(missing, Missing{Name: name, Site: it.site})
	}
	return missing
}

// List returns a snapshot of current values keyed by name. The map is a
// copy; mutating it does not touch the registry.
func (p *Params) List() map[string]string {
	m := make(map[string]string, len(p.items))
	for name, it := range p.items {
		m[name] = it.value
	}
	return m
}

// ParamInfo is a copy of one registry record.
type ParamInfo struct {
	Name        string
	Arity       Arity
	Kind        Kind
	Default     string
	Value       string
	UsesDefault bool
	Site        Site
	Description string
}

// Info returns a copy of the named parameter's record and whether the name
// is registered.
func (p *Params) Info(name string) (ParamInfo, bool) {
	it, ok := p.items[name]
	if !ok {
		return ParamInfo{}, false
	}
	return ParamInfo{
		Name:        it.name,
		Arity:       it.arity,
		Kind:        it.kind,
		Default:     it.def,
		Value:       it.value,
		UsesDefault: it.useDefault,
		Site:        it.site,
		Description: it.desc,
	}, true
}

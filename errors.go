// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import "fmt"

// DuplicateError is returned by Use when the name was already registered
// from a different declaration site. First is the site of the surviving
// registration.
type DuplicateError struct {
	Name  string
	First Site
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("parameter %s already defined at %s", e.Name, e.First)
}

// NoArgumentKindError is returned by Use when a no-argument parameter is
// declared with a kind other than bool. A no-argument occurrence carries no
// text, so only a bool can give it a meaning.
type NoArgumentKindError struct {
	Name string
	Kind Kind
}

func (e *NoArgumentKindError) Error() string {
	return fmt.Sprintf("no-argument parameter %s must be bool, got %s", e.Name, e.Kind)
}

// UnknownError is returned when a parameter name was never registered.
type UnknownError struct {
	Name string
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("parameter %s has not been defined", e.Name)
}

// ValueError reports text that does not parse as the parameter's kind,
// whether found on the command line or read back through Get.
type ValueError struct {
	Name  string
	Site  Site
	Kind  Kind
	Value string
	Err   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("parameter %s: invalid %s value %q", e.Name, e.Kind, e.Value)
}

func (e *ValueError) Unwrap() error { return e.Err }

// ArityError reports a command-line occurrence that conflicts with the
// parameter's declared arity, such as a value supplied to a no-argument
// parameter or a comma list supplied to a single-value one.
type ArityError struct {
	Name   string
	Site   Site
	Reason string
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("parameter %s %s", e.Name, e.Reason)
}

// CheckError reports a scanned value rejected by a registered Check.
type CheckError struct {
	Name  string
	Site  Site
	Value string
	Err   error
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("parameter %s: rejected value %q: %v", e.Name, e.Value, e.Err)
}

func (e *CheckError) Unwrap() error { return e.Err }

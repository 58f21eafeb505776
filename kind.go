// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind identifies the value type of a parameter. The set is closed: every
// parameter is declared with exactly one Kind, and all validation, parsing
// and formatting of its text goes through that Kind.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindUint
	KindFloat
	KindString
	KindDuration
)

// String returns the name used in help entries and diagnostics.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float64"
	case KindString:
		return "string"
	case KindDuration:
		return "duration"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// validate checks that text is a well-formed encoding of a single value of
// the kind. Integer kinds are strict base 10.
func (k Kind) validate(text string) error {
	var err error
	switch k {
	case KindBool:
		_, err = strconv.ParseBool(text)
	case KindInt:
		_, err = strconv.ParseInt(text, 10, 64)
	case KindUint:
		_, err = strconv.ParseUint(text, 10, 64)
	case KindFloat:
		_, err = strconv.ParseFloat(text, 64)
	case KindString:
		// Every text is a string.
	case KindDuration:
		_, err = time.ParseDuration(text)
	default:
		err = fmt.Errorf("unsupported kind %s", k)
	}
	return err
}

// validateText validates a stored encoding: the whole text for single-value
// parameters, each comma-separated element for multi-value ones. The empty
// element is invalid for every kind but string.
func (k Kind) validateText(text string, multi bool) error {
	if !multi {
		return k.validate(text)
	}
	for _, elem := range strings.Split(text, ",") {
		if err := k.validate(elem); err != nil {
			return err
		}
	}
	return nil
}

// Value enumerates the native Go types the registry converts parameter text
// to and from. The kind mapping: bool is KindBool, int and int64 are
// KindInt, uint and uint64 are KindUint, float64 is KindFloat, string is
// KindString, time.Duration is KindDuration.
type Value interface {
	bool | int | int64 | uint | uint64 | float64 | string | time.Duration
}

// kindOf maps a Value instantiation to its Kind.
func kindOf[T Value]() Kind {
	var zero T
	switch any(zero).(type) {
	case bool:
		return KindBool
	case int, int64:
		return KindInt
	case uint, uint64:
		return KindUint
	case float64:
		return KindFloat
	case time.Duration:
		return KindDuration
	}
	return KindString
}

// formatValue renders v in the kind's canonical text encoding. Canonical
// texts round-trip: parseValue(formatValue(v)) == v.
func formatValue[T Value](v T) string {
	switch v := any(v).(type) {
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case time.Duration:
		return v.String()
	case string:
		return v
	}
	return ""
}

// parseValue decodes text as a T. The returned error is the underlying
// strconv or time error; callers wrap it with parameter context.
func parseValue[T Value](text string) (T, error) {
	var zero T
	switch p := any(&zero).(type) {
	case *bool:
		v, err := strconv.ParseBool(text)
		if err != nil {
			return zero, err
		}
		*p = v
	case *int:
		v, err := strconv.ParseInt(text, 10, strconv.IntSize)
		if err != nil {
			return zero, err
		}
		*p = int(v)
	case *int64:
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return zero, err
		}
		*p = v
	case *uint:
		v, err := strconv.ParseUint(text, 10, strconv.IntSize)
		if err != nil {
			return zero, err
		}
		*p = uint(v)
	case *uint64:
		v, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return zero, err
		}
		*p = v
	case *float64:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return zero, err
		}
		*p = v
	case *time.Duration:
		v, err := time.ParseDuration(text)
		if err != nil {
			return zero, err
		}
		*p = v
	case *string:
		*p = text
	}
	return zero, nil
}

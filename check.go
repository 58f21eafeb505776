// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"fmt"
	"os"
	"strings"
)

// Check inspects a candidate value before the scanner commits it. The value
// is the full text that would be stored, comma-joined for multi-value
// parameters. A non-nil error rejects the occurrence; the stored value
// stays untouched.
type Check func(name, value string) error

// AddCheck attaches c to the named parameter. Checks run on the scanner
// path only, in the order added; programmatic SetText bypasses them.
func (p *Params) AddCheck(name string, c Check) error {
	it, ok := p.items[name]
	if !ok {
		fmt.Fprintf(p.errw, "Parameter %s has not been defined\n", name)
		return &UnknownError{Name: name}
	}
	it.checks = append(it.checks, c)
	return nil
}

// FileExists requires every comma-separated element to name an existing
// file.
func FileExists() Check {
	return func(_, value string) error {
		for _, elem := range strings.Split(value, ",") {
			if _, err := os.Stat(elem); err != nil {
				return fmt.Errorf("file %s does not exist", elem)
			}
		}
		return nil
	}
}

// Keywords requires every comma-separated element to contain at least one
// of the given keywords as a substring.
func Keywords(kw ...string) Check {
	return func(_, value string) error {
		for _, elem := range strings.Split(value, ",") {
			ok := false
			for _, k := range kw {
				if strings.Contains(elem, k) {
					ok = true
					break
				}
			}
			if !ok {
				return fmt.Errorf("value %s matches none of %s", elem, strings.Join(kw, ", "))
			}
		}
		return nil
	}
}

// NoDuplicates rejects a value whose comma-separated elements repeat.
func NoDuplicates() Check {
	return func(_, value string) error {
		seen := make(map[string]bool)
		for _, elem := range strings.Split(value, ",") {
			if seen[elem] {
				return fmt.Errorf("value %s is duplicated", elem)
			}
			seen[elem] = true
		}
		return nil
	}
}

// Alnum restricts a value to letters, digits and the separators ".-_,".
func Alnum() Check {
	return func(_, value string) error {
		for _, r := range value {
			switch {
			case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9':
			case r == '.', r == '-', r == '_', r == ',':
			default:
				return fmt.Errorf("character %q is not allowed", r)
			}
		}
		return nil
	}
}

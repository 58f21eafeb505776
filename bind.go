// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var durationType = reflect.TypeOf(time.Duration(0))

// Bind fills dst, a pointer to struct, from current parameter values. The
// parameter name for a field comes from its `param:"..."` tag, defaulting
// to the lowercased field name; `param:"-"` skips the field. Scalar fields
// parse the current text with the field type's parser; slice fields split
// on commas first, so multi-value parameters land as one element per value.
// An unregistered name or text that does not parse fails with the field
// name wrapped around the underlying error.
func (p *Params) Bind(dst any) error {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("bind target must be a non-nil pointer to struct, got %T", dst)
	}
	v = v.Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Tag.Get("param")
		if name == "-" {
			continue
		}
		if name == "" {
			name = strings.ToLower(field.Name)
		}
		text, err := p.GetText(name)
		if err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
		if err := setField(v.Field(i), text); err != nil {
			it := p.items[name]
			return fmt.Errorf("field %s: %w", field.Name,
				&ValueError{Name: name, Site: it.site, Kind: it.kind, Value: text, Err: err})
		}
	}
	return nil
}

// setField decodes text into one struct field. Slices recurse per element.
func setField(fv reflect.Value, text string) error {
	if fv.Type() == durationType {
		d, err := time.ParseDuration(text)
		if err != nil {
			return err
		}
		fv.SetInt(int64(d))
		return nil
	}
	switch fv.Kind() {
	case reflect.Bool:
		v, err := strconv.ParseBool(text)
		if err != nil {
			return err
		}
		fv.SetBool(v)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(text, 10, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetInt(v)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(text, 10, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetUint(v)
	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(text, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetFloat(v)
	case reflect.String:
		fv.SetString(text)
	case reflect.Slice:
		if text == "" {
			fv.Set(reflect.MakeSlice(fv.Type(), 0, 0))
			return nil
		}
		elems := strings.Split(text, ",")
		s := reflect.MakeSlice(fv.Type(), len(elems), len(elems))
		for i, elem := range elems {
			if err := setField(s.Index(i), elem); err != nil {
				return err
			}
		}
		fv.Set(s)
	default:
		return fmt.Errorf("unsupported field type %s", fv.Type())
	}
	return nil
}

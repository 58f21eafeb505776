// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestBind(t *testing.T) {
	type config struct {
		GraphType string        `param:"graph-type"`
		Iters     int           `param:"iters"`
		Quick     bool          `param:"quick"`
		Sizing    float64       `param:"queue-sizing"`
		Timeout   time.Duration `param:"timeout"`
		Devices   []int         `param:"device"`
		Tags      []string      `param:"tag"`
		Ignored   string        `param:"-"`
		hidden    string
	}

	p := New("test", WithErrOutput(new(bytes.Buffer)))
	mustUse(t, p, "graph-type", RequiredArgument|RequiredParameter, "", "")
	mustUse(t, p, "iters", RequiredArgument, 10, "")
	mustUse(t, p, "quick", OptionalArgument, false, "")
	mustUse(t, p, "queue-sizing", RequiredArgument, 1.2, "")
	mustUse(t, p, "timeout", RequiredArgument, time.Minute, "")
	mustUse(t, p, "device", RequiredArgument|MultiValue, 0, "")
	mustUse(t, p, "tag", RequiredArgument|MultiValue, "", "")

	args := []string{"--graph-type", "market", "--quick", "--device", "0,1", "--device", "2", "--tag", "baseline"}
	if err := p.Parse(args); err != nil {
		t.Fatalf("Parse error = %v", err)
	}

	var got config
	got.Ignored = "untouched"
	got.hidden = "untouched"
	if err := p.Bind(&got); err != nil {
		t.Fatalf("Bind error = %v", err)
	}
	want := config{
		GraphType: "market",
		Iters:     10,
		Quick:     true,
		Sizing:    1.2,
		Timeout:   time.Minute,
		Devices:   []int{0, 1, 2},
		Tags:      []string{"baseline"},
		Ignored:   "untouched",
		hidden:    "untouched",
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(config{})); diff != "" {
		t.Errorf("Bind mismatch (-want +got):\n%s", diff)
	}
}

func TestBindEmptyMultiValue(t *testing.T) {
	p := New("test", WithErrOutput(new(bytes.Buffer)))
	mustUse(t, p, "device", RequiredArgument|MultiValue, "", "")

	var got struct {
		Devices []string `param:"device"`
	}
	if err := p.Bind(&got); err != nil {
		t.Fatalf("Bind error = %v", err)
	}
	if got.Devices == nil || len(got.Devices) != 0 {
		t.Errorf("Devices = %#v, want empty non-nil slice", got.Devices)
	}
}

func TestBindUnknownName(t *testing.T) {
	p := New("test", WithErrOutput(new(bytes.Buffer)))
	var dst struct {
		Missing int `param:"missing"`
	}
	err := p.Bind(&dst)
	var unk *UnknownError
	if !errors.As(err, &unk) {
		t.Fatalf("Bind error = %v, want UnknownError", err)
	}
	if !strings.Contains(err.Error(), "Missing") {
		t.Errorf("Bind error = %v, want field name in message", err)
	}
}

func TestBindMalformedText(t *testing.T) {
	p := New("test", WithErrOutput(new(bytes.Buffer)))
	mustUse(t, p, "iters", RequiredArgument, 10, "")
	if err := p.SetText("iters", "abc"); err != nil {
		t.Fatalf("SetText error = %v", err)
	}
	var dst struct {
		Iters int
	}
	err := p.Bind(&dst)
	var verr *ValueError
	if !errors.As(err, &verr) {
		t.Fatalf("Bind error = %v, want ValueError", err)
	}
	if verr.Name != "iters" || verr.Value != "abc" {
		t.Errorf("ValueError = %+v", verr)
	}
}

func TestBindUnsupportedField(t *testing.T) {
	p := New("test", WithErrOutput(new(bytes.Buffer)))
	mustUse(t, p, "iters", RequiredArgument, 10, "")
	var dst struct {
		Iters map[string]int
	}
	err := p.Bind(&dst)
	if err == nil || !strings.Contains(err.Error(), "unsupported field type") {
		t.Errorf("Bind error = %v, want unsupported field type", err)
	}
}

func TestBindNonStruct(t *testing.T) {
	p := New("test")
	if err := p.Bind(struct{}{}); err == nil {
		t.Error("Bind(non-pointer) error = nil, want error")
	}
	var n int
	if err := p.Bind(&n); err == nil {
		t.Error("Bind(*int) error = nil, want error")
	}
	if err := p.Bind((*struct{})(nil)); err == nil {
		t.Error("Bind(nil pointer) error = nil, want error")
	}
}

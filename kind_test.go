// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"testing"
	"time"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindBool, "bool"},
		{KindInt, "int"},
		{KindUint, "uint"},
		{KindFloat, "float64"},
		{KindString, "string"},
		{KindDuration, "duration"},
		{Kind(99), "Kind(99)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestKindValidate(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		text    string
		wantErr bool
	}{
		{"bool true", KindBool, "true", false},
		{"bool numeric", KindBool, "1", false},
		{"bool junk", KindBool, "yes", true},
		{"int positive", KindInt, "42", false},
		{"int negative", KindInt, "-5", false},
		{"int hex rejected", KindInt, "0x10", true},
		{"int junk", KindInt, "abc", true},
		{"int empty", KindInt, "", true},
		{"uint ok", KindUint, "7", false},
		{"uint negative", KindUint, "-7", true},
		{"float ok", KindFloat, "0.95", false},
		{"float exponent", KindFloat, "1e-3", false},
		{"float junk", KindFloat, "fast", true},
		{"string anything", KindString, "a,b c", false},
		{"string empty", KindString, "", false},
		{"duration ok", KindDuration, "1m30s", false},
		{"duration bare number", KindDuration, "30", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.kind.validate(tt.text)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
		})
	}
}

func TestKindValidateTextMulti(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		text    string
		multi   bool
		wantErr bool
	}{
		{"multi ints", KindInt, "1,2,3", true, false},
		{"multi bad element", KindInt, "1,x,3", true, true},
		{"multi empty element", KindInt, "1,,3", true, true},
		{"multi strings empty element", KindString, "a,,b", true, false},
		{"single sees whole text", KindInt, "1,2", false, true},
		{"multi durations", KindDuration, "1s,2m", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.kind.validateText(tt.text, tt.multi)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateText(%q, %v) error = %v, wantErr %v", tt.text, tt.multi, err, tt.wantErr)
			}
		})
	}
}

func roundTrip[T Value](t *testing.T, v T, wantText string) {
	t.Helper()
	text := formatValue(v)
	if text != wantText {
		t.Errorf("formatValue(%v) = %q, want %q", v, text, wantText)
	}
	got, err := parseValue[T](text)
	if err != nil {
		t.Fatalf("parseValue(%q) error = %v", text, err)
	}
	if got != v {
		t.Errorf("parseValue(%q) = %v, want %v", text, got, v)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	roundTrip(t, true, "true")
	roundTrip(t, false, "false")
	roundTrip(t, 42, "42")
	roundTrip(t, int64(-9000000000), "-9000000000")
	roundTrip(t, uint(7), "7")
	roundTrip(t, uint64(18446744073709551615), "18446744073709551615")
	roundTrip(t, 0.95, "0.95")
	roundTrip(t, "market", "market")
	roundTrip(t, 90*time.Second, "1m30s")
}

func TestKindOf(t *testing.T) {
	if got := kindOf[bool](); got != KindBool {
		t.Errorf("kindOf[bool]() = %v, want %v", got, KindBool)
	}
	if got := kindOf[int](); got != KindInt {
		t.Errorf("kindOf[int]() = %v, want %v", got, KindInt)
	}
	if got := kindOf[int64](); got != KindInt {
		t.Errorf("kindOf[int64]() = %v, want %v", got, KindInt)
	}
	if got := kindOf[uint64](); got != KindUint {
		t.Errorf("kindOf[uint64]() = %v, want %v", got, KindUint)
	}
	if got := kindOf[float64](); got != KindFloat {
		t.Errorf("kindOf[float64]() = %v, want %v", got, KindFloat)
	}
	if got := kindOf[string](); got != KindString {
		t.Errorf("kindOf[string]() = %v, want %v", got, KindString)
	}
	if got := kindOf[time.Duration](); got != KindDuration {
		t.Errorf("kindOf[time.Duration]() = %v, want %v", got, KindDuration)
	}
}

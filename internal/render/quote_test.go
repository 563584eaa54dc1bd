package render

import (
	"errors"
	"testing"
	"time"

	"github.com/zoobzio/stmtql/internal/types"
)

func TestLiterals_Quote(t *testing.T) {
	lit := Literals{
		True:  "1",
		False: "0",
		Bytes: func(hex string) string { return "X'" + hex + "'" },
	}
	stamp := time.Date(2024, 3, 9, 14, 30, 0, 250000000, time.FixedZone("CET", 3600))

	tests := []struct {
		name     string
		value    types.Value
		expected string
	}{
		{"null", types.Null, "NULL"},
		{"string", types.Value{Kind: types.KindString, Str: "hello"}, "'hello'"},
		{"embedded quote", types.Value{Kind: types.KindString, Str: "it's"}, "'it''s'"},
		{"backslash untouched", types.Value{Kind: types.KindString, Str: `a\b`}, `'a\b'`},
		{"empty string", types.Value{Kind: types.KindString}, "''"},
		{"int", types.Value{Kind: types.KindInt, Int: -42}, "-42"},
		{"uint", types.Value{Kind: types.KindUint, Uint: 18446744073709551615}, "18446744073709551615"},
		{"float", types.Value{Kind: types.KindFloat, Float: 0.25}, "0.25"},
		{"true", types.Value{Kind: types.KindBool, Bool: true}, "1"},
		{"false", types.Value{Kind: types.KindBool}, "0"},
		{"bytes", types.Value{Kind: types.KindBytes, Bytes: []byte{0x0a, 0xff}}, "X'0aff'"},
		{"time in utc", types.Value{Kind: types.KindTime, Time: stamp}, "'2024-03-09 13:30:00.25'"},
		{
			"list",
			types.Value{Kind: types.KindList, List: []types.Value{
				{Kind: types.KindInt, Int: 1},
				{Kind: types.KindString, Str: "x"},
				types.Null,
			}},
			"(1, 'x', NULL)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lit.Quote(tt.value)
			if err != nil {
				t.Fatalf("Quote failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Quote = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestLiterals_QuoteErrors(t *testing.T) {
	lit := Literals{True: "1", False: "0"}

	tests := []struct {
		name  string
		value types.Value
	}{
		{"empty list", types.Value{Kind: types.KindList}},
		{"nested list", types.Value{Kind: types.KindList, List: []types.Value{{Kind: types.KindList}}}},
		{"bytes unsupported", types.Value{Kind: types.KindBytes, Bytes: []byte{1}}},
		{"unknown kind", types.Value{Kind: types.ValueKind(99)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := lit.Quote(tt.value); !errors.Is(err, types.ErrInvalidValue) {
				t.Errorf("err = %v, want %v", err, types.ErrInvalidValue)
			}
		})
	}
}

func TestLiterals_Decorate(t *testing.T) {
	lit := Literals{
		Decorate: func(kind types.ValueKind, literal string) string {
			if kind == types.KindString {
				return "N" + literal
			}
			return literal
		},
	}

	got, err := lit.Quote(types.Value{Kind: types.KindList, List: []types.Value{
		{Kind: types.KindString, Str: "a"},
		{Kind: types.KindInt, Int: 2},
		types.Null,
	}})
	if err != nil {
		t.Fatalf("Quote failed: %v", err)
	}
	if got != "(N'a', 2, NULL)" {
		t.Errorf("Quote = %q, want %q", got, "(N'a', 2, NULL)")
	}
}

func TestQuoteString(t *testing.T) {
	tests := []struct {
		in        string
		backslash bool
		expected  string
	}{
		{"plain", false, "'plain'"},
		{"O'Brien", false, "'O''Brien'"},
		{`\'`, false, `'\'''`},
		{`\'`, true, `'\\'''`},
		{`C:\tmp`, true, `'C:\\tmp'`},
	}

	for _, tt := range tests {
		if got := QuoteString(tt.in, tt.backslash); got != tt.expected {
			t.Errorf("QuoteString(%q, %v) = %q, want %q", tt.in, tt.backslash, got, tt.expected)
		}
	}
}

package resource

import (
	"testing"
)

func TestLooseEqual(t *testing.T) {
	tests := []struct {
		name     string
		queryVal string
		fieldVal any
		present  bool
		want     bool
	}{
		// Strings compare case-insensitively
		{"string exact", "bob", "bob", true, true},
		{"string case-insensitive", "Bob", "bob", true, true},
		{"string mismatch", "bob", "alice", true, false},
		{"empty string field", "", "", true, true},

		// Numbers: query params are strings, coerced numerically
		{"float field", "1965", float64(1965), true, true},
		{"int64 field", "1965", int64(1965), true, true},
		{"int field", "42", 42, true, true},
		{"decimal field", "3.5", 3.5, true, true},
		{"numeric mismatch", "1965", float64(1951), true, false},
		{"non-numeric query vs number", "dune", float64(1965), true, false},

		// Booleans
		{"bool true", "true", true, true, true},
		{"bool true mixed case", "True", true, true, true},
		{"bool false", "false", false, true, true},
		{"bool mismatch", "true", false, true, false},

		// Null and absence are equivalent
		{"nil field null query", "null", nil, true, true},
		{"nil field empty query", "", nil, true, true},
		{"absent field null query", "null", nil, false, true},
		{"absent field normal query", "bob", nil, false, false},
		{"nil field normal query", "bob", nil, true, false},

		// Structured values never match a scalar parameter
		{"object field", "x", map[string]any{"a": 1}, true, false},
		{"array field", "x", []any{1, 2}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := looseEqual(tt.queryVal, tt.fieldVal, tt.present)
			if got != tt.want {
				t.Errorf("looseEqual(%q, %v, %v) = %v, want %v",
					tt.queryVal, tt.fieldVal, tt.present, got, tt.want)
			}
		})
	}
}

func TestOrderLess(t *testing.T) {
	tests := []struct {
		name     string
		a, b     any
		wantLess bool
		wantOK   bool
	}{
		{"numbers", float64(1951), float64(1965), true, true},
		{"numbers reversed", float64(1965), float64(1951), false, true},
		{"equal numbers", float64(7), float64(7), false, true},
		{"int64 vs float64", int64(5), float64(6), true, true},
		{"strings", "alpha", "beta", true, true},
		{"equal strings", "same", "same", false, true},
		{"bools", false, true, true, true},
		{"number vs string incomparable", float64(1), "1", false, false},
		{"nil incomparable", nil, float64(1), false, false},
		{"objects incomparable", map[string]any{}, map[string]any{}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			less, ok := orderLess(tt.a, tt.b)
			if ok != tt.wantOK || less != tt.wantLess {
				t.Errorf("orderLess(%v, %v) = (%v, %v), want (%v, %v)",
					tt.a, tt.b, less, ok, tt.wantLess, tt.wantOK)
			}
		})
	}
}

func TestRangeCompare(t *testing.T) {
	tests := []struct {
		name     string
		fieldVal any
		queryVal string
		wantCmp  int
		wantOK   bool
	}{
		{"number below", float64(1951), "1960", -1, true},
		{"number above", float64(1965), "1960", 1, true},
		{"number equal", float64(1960), "1960", 0, true},
		{"int64 field", int64(5), "4", 1, true},
		{"string lexicographic", "banana", "apple", 1, true},
		{"string equal", "same", "same", 0, true},
		{"number vs non-numeric query", float64(1), "abc", 0, false},
		{"bool incomparable", true, "true", 0, false},
		{"nil incomparable", nil, "1", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmp, ok := rangeCompare(tt.fieldVal, tt.queryVal)
			if ok != tt.wantOK || cmp != tt.wantCmp {
				t.Errorf("rangeCompare(%v, %q) = (%d, %v), want (%d, %v)",
					tt.fieldVal, tt.queryVal, cmp, ok, tt.wantCmp, tt.wantOK)
			}
		})
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"string", "x", "x"},
		{"integral float", float64(1965), "1965"},
		{"decimal float", 3.5, "3.5"},
		{"int64", int64(-7), "-7"},
		{"int", 12, "12"},
		{"bool", true, "true"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Stringify(tt.input); got != tt.want {
				t.Errorf("Stringify(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

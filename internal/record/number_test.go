package record

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/tidwall/gjson"
)

func TestCoerce(t *testing.T) {
	cases := []struct {
		in   any
		want float64
	}{
		{nil, 0},
		{12.5, 12.5},
		{7, 7},
		{int64(-3), -3},
		{"1,250.50", 1250.5},
		{"£1.5m", 1.5},
		{"-42", -42},
		{"abc", 0},
		{"", 0},
		{"-", 0},
		{".", 0},
		{"1.2.3", 0},
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{true, 0},
		{[]int{1}, 0},
		{json.Number("9"), 9},
		{gjson.Parse(`3000`), 3000},
		{gjson.Parse(`"2,000"`), 2000},
		{gjson.Parse(`[1]`), 0},
		{gjson.Result{}, 0},
	}
	for _, tc := range cases {
		if got := Coerce(tc.in); got != tc.want {
			t.Fatalf("Coerce(%#v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestCoerceIdempotent(t *testing.T) {
	inputs := []any{"£12,345.67", -8.25, "x", nil, "  -0.5 ", 1e9}
	for _, in := range inputs {
		once := Coerce(in)
		if twice := Coerce(once); twice != once {
			t.Fatalf("Coerce not idempotent for %#v: %v then %v", in, once, twice)
		}
		if math.IsNaN(once) || math.IsInf(once, 0) {
			t.Fatalf("Coerce(%#v) returned non-finite %v", in, once)
		}
	}
}

package api

import (
	"encoding/json"
	"math"
	"testing"
)

func TestFloatMarshal(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1.5, "1.5"},
		{0, "0"},
		{-2.25e9, "-2.25e+09"},
		{math.NaN(), "null"},
		{math.Inf(1), "null"},
		{math.Inf(-1), "null"},
	}
	for _, tc := range cases {
		got, err := json.Marshal(Float(tc.in))
		if err != nil {
			t.Fatalf("marshal %g: %v", tc.in, err)
		}
		if string(got) != tc.want {
			t.Errorf("marshal %g = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestFloats2D(t *testing.T) {
	in := [][]float64{{1, math.Inf(1)}, {3, 4}}
	out, err := json.Marshal(Floats2D(in))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "[[1,null],[3,4]]" {
		t.Errorf("got %s", out)
	}
}

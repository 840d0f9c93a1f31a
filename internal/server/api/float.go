package api

import (
	"math"
	"strconv"
)

// Float marshals like a float64 but encodes non-finite values as null.
// An unsoftened evaluation at a charge position legitimately produces
// ±Inf/NaN, which encoding/json refuses to serialize.
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

func Floats(in []float64) []Float {
	out := make([]Float, len(in))
	for i, v := range in {
		out[i] = Float(v)
	}
	return out
}

func Floats2D(in [][]float64) [][]Float {
	out := make([][]Float, len(in))
	for i, row := range in {
		out[i] = Floats(row)
	}
	return out
}

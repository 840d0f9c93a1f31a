// Package field is the numeric core: softened Coulomb superposition over
// arbitrary point batches, rectangular grid sampling, and field-line tracing.
// Everything here is a pure function of its inputs; concurrent calls are safe.
package field

import (
	"math"

	"github.com/Vrewser/Electric-Field-and-Potential-Calculator-for-Point-Charges-in-2D-Space/internal/domain"
)

// CoulombConstant is k in N·m²/C².
const CoulombConstant = 8.9875517923e9

// Vec is a field vector in N/C.
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (v Vec) Norm() float64 { return math.Hypot(v.X, v.Y) }

// EvalField computes the field vector at every point in pts by superposing
// the softened contribution of every charge: with d = p - rc and
// r2 = |d|² + eps², each charge adds k*q/(r2*sqrt(r2)) * d.
//
// eps = 0 is legal; a point coinciding with a charge then divides by zero
// and the result carries ±Inf/NaN as computed, not an error.
func EvalField(pts []domain.Point, charges []domain.Charge, eps float64) []Vec {
	out := make([]Vec, len(pts))
	e2 := eps * eps
	for _, c := range charges {
		for i := range pts {
			dx := pts[i].X - c.X
			dy := pts[i].Y - c.Y
			r2 := dx*dx + dy*dy + e2
			f := CoulombConstant * c.Q / (r2 * math.Sqrt(r2))
			out[i].X += f * dx
			out[i].Y += f * dy
		}
	}
	return out
}

// EvalPotential computes the scalar potential k*q/sqrt(r2) summed over all
// charges, at every point in pts, with the same softened distance as
// EvalField.
func EvalPotential(pts []domain.Point, charges []domain.Charge, eps float64) []float64 {
	out := make([]float64, len(pts))
	e2 := eps * eps
	for _, c := range charges {
		kq := CoulombConstant * c.Q
		for i := range pts {
			dx := pts[i].X - c.X
			dy := pts[i].Y - c.Y
			out[i] += kq / math.Sqrt(dx*dx+dy*dy+e2)
		}
	}
	return out
}

// FieldAt is the single-point form of EvalField, without the batch
// allocation. The two agree exactly.
func FieldAt(p domain.Point, charges []domain.Charge, eps float64) Vec {
	var v Vec
	e2 := eps * eps
	for _, c := range charges {
		dx := p.X - c.X
		dy := p.Y - c.Y
		r2 := dx*dx + dy*dy + e2
		f := CoulombConstant * c.Q / (r2 * math.Sqrt(r2))
		v.X += f * dx
		v.Y += f * dy
	}
	return v
}

// PotentialAt is the single-point form of EvalPotential.
func PotentialAt(p domain.Point, charges []domain.Charge, eps float64) float64 {
	var v float64
	e2 := eps * eps
	for _, c := range charges {
		dx := p.X - c.X
		dy := p.Y - c.Y
		v += CoulombConstant * c.Q / math.Sqrt(dx*dx+dy*dy+e2)
	}
	return v
}

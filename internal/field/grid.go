package field

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/Vrewser/Electric-Field-and-Potential-Calculator-for-Point-Charges-in-2D-Space/internal/domain"
)

// Grid is a res×res sampling lattice with meshgrid semantics:
// row i, column j maps to the point (xs[j], ys[i]), so X varies along
// columns and Y along rows.
type Grid struct {
	Res int
	X   [][]float64
	Y   [][]float64

	pts []domain.Point
}

// BuildGrid samples the window b with res points per axis, linearly
// spaced and inclusive of both edges.
func BuildGrid(b domain.Bounds, res int) (*Grid, error) {
	if res < 2 {
		return nil, fmt.Errorf("%w: resolution must be >= 2, got %d", domain.ErrInvalidInput, res)
	}
	if !b.Valid() {
		return nil, fmt.Errorf("%w: degenerate bounds [%g,%g]x[%g,%g]",
			domain.ErrInvalidInput, b.XMin, b.XMax, b.YMin, b.YMax)
	}

	xs := floats.Span(make([]float64, res), b.XMin, b.XMax)
	ys := floats.Span(make([]float64, res), b.YMin, b.YMax)

	g := &Grid{
		Res: res,
		X:   make([][]float64, res),
		Y:   make([][]float64, res),
		pts: make([]domain.Point, 0, res*res),
	}
	for i := 0; i < res; i++ {
		g.X[i] = make([]float64, res)
		g.Y[i] = make([]float64, res)
		for j := 0; j < res; j++ {
			g.X[i][j] = xs[j]
			g.Y[i][j] = ys[i]
			g.pts = append(g.pts, domain.Point{X: xs[j], Y: ys[i]})
		}
	}
	return g, nil
}

// Points returns the row-major flattening of the lattice, the batch fed
// to the evaluator. Callers must not mutate it.
func (g *Grid) Points() []domain.Point { return g.pts }

// Reshape restores a row-major flat evaluator output to res×res,
// preserving the lattice's row/column mapping.
func (g *Grid) Reshape(flat []float64) [][]float64 {
	out := make([][]float64, g.Res)
	for i := 0; i < g.Res; i++ {
		out[i] = flat[i*g.Res : (i+1)*g.Res : (i+1)*g.Res]
	}
	return out
}

// ReshapeVec splits a flat vector batch into res×res component grids.
func (g *Grid) ReshapeVec(flat []Vec) (ex, ey [][]float64) {
	ex = make([][]float64, g.Res)
	ey = make([][]float64, g.Res)
	for i := 0; i < g.Res; i++ {
		ex[i] = make([]float64, g.Res)
		ey[i] = make([]float64, g.Res)
		for j := 0; j < g.Res; j++ {
			ex[i][j] = flat[i*g.Res+j].X
			ey[i][j] = flat[i*g.Res+j].Y
		}
	}
	return ex, ey
}

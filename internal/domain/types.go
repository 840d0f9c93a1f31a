package domain

// Charge is a point charge: magnitude in Coulombs, position in meters.
type Charge struct {
	Q float64 `json:"q"`
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Sign reports +1, -1 or 0 depending on the charge magnitude.
func (c Charge) Sign() int {
	switch {
	case c.Q > 0:
		return 1
	case c.Q < 0:
		return -1
	}
	return 0
}

// Point is a query location in the charge plane, meters.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Bounds is the rectangular sampling window, xmin < xmax and ymin < ymax.
type Bounds struct {
	XMin float64 `json:"xmin"`
	XMax float64 `json:"xmax"`
	YMin float64 `json:"ymin"`
	YMax float64 `json:"ymax"`
}

func (b Bounds) Valid() bool {
	return b.XMin < b.XMax && b.YMin < b.YMax
}

// Contains reports whether p lies inside the window (edges inclusive).
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.XMin && p.X <= b.XMax && p.Y >= b.YMin && p.Y <= b.YMax
}

// DefaultBounds is the [-2,2]x[-2,2] window used when a request omits bounds.
func DefaultBounds() Bounds {
	return Bounds{XMin: -2, XMax: 2, YMin: -2, YMax: 2}
}

package domain

import "fmt"

// ChargeInput is the wire form of a charge. Fields are pointers so a
// missing coordinate can be told apart from an explicit zero.
type ChargeInput struct {
	Q *float64 `json:"q"`
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

// GridRequest is the payload of POST /api/calculate.
type GridRequest struct {
	Charges    []ChargeInput `json:"charges"`
	Bounds     *Bounds       `json:"bounds,omitempty"`
	Resolution int           `json:"resolution,omitempty"`
	Softening  *float64      `json:"softening,omitempty"`

	// Populated by NormalizeAndValidate.
	ChargeSet []Charge `json:"-"`
	Window    Bounds   `json:"-"`
	Res       int      `json:"-"`
	Eps       float64  `json:"-"`
}

const (
	DefaultResolution    = 50
	DefaultGridSoftening = 1e-3
	DefaultPtSoftening   = 1e-6
)

func (r *GridRequest) NormalizeAndValidate() map[string]string {
	details := map[string]string{}
	if r == nil {
		details["request"] = "required"
		return details
	}

	r.ChargeSet = normalizeCharges(r.Charges, details)

	r.Window = DefaultBounds()
	if r.Bounds != nil {
		r.Window = *r.Bounds
	}
	if !r.Window.Valid() {
		details["bounds"] = "xmin must be < xmax and ymin must be < ymax"
	}

	r.Res = r.Resolution
	if r.Res == 0 {
		r.Res = DefaultResolution
	}
	if r.Res < 2 {
		details["resolution"] = "must be an integer >= 2"
	}

	r.Eps = DefaultGridSoftening
	if r.Softening != nil {
		r.Eps = *r.Softening
	}
	if r.Eps < 0 {
		details["softening"] = "must be >= 0"
	}

	return details
}

// PointRequest is the payload of POST /api/calculate_point.
type PointRequest struct {
	Charges   []ChargeInput `json:"charges"`
	Point     *Point        `json:"point"`
	Softening *float64      `json:"softening,omitempty"`

	ChargeSet []Charge `json:"-"`
	At        Point    `json:"-"`
	Eps       float64  `json:"-"`
}

func (r *PointRequest) NormalizeAndValidate() map[string]string {
	details := map[string]string{}
	if r == nil {
		details["request"] = "required"
		return details
	}

	r.ChargeSet = normalizeCharges(r.Charges, details)

	if r.Point == nil {
		details["point"] = "required"
	} else {
		r.At = *r.Point
	}

	r.Eps = DefaultPtSoftening
	if r.Softening != nil {
		r.Eps = *r.Softening
	}
	if r.Eps < 0 {
		details["softening"] = "must be >= 0"
	}

	return details
}

// FieldLinesRequest is the payload of POST /api/fieldlines.
type FieldLinesRequest struct {
	Charges        []ChargeInput `json:"charges"`
	Bounds         *Bounds       `json:"bounds,omitempty"`
	LinesPerCharge int           `json:"linesPerCharge,omitempty"`
	StepSize       float64       `json:"stepSize,omitempty"`
	MaxSteps       int           `json:"maxSteps,omitempty"`

	ChargeSet []Charge `json:"-"`
	Window    Bounds   `json:"-"`
}

func (r *FieldLinesRequest) NormalizeAndValidate() map[string]string {
	details := map[string]string{}
	if r == nil {
		details["request"] = "required"
		return details
	}

	r.ChargeSet = normalizeCharges(r.Charges, details)

	r.Window = DefaultBounds()
	if r.Bounds != nil {
		r.Window = *r.Bounds
	}
	if !r.Window.Valid() {
		details["bounds"] = "xmin must be < xmax and ymin must be < ymax"
	}

	if r.LinesPerCharge < 0 {
		details["linesPerCharge"] = "must be > 0"
	}
	if r.StepSize < 0 {
		details["stepSize"] = "must be > 0"
	}
	if r.MaxSteps < 0 {
		details["maxSteps"] = "must be > 0"
	}

	return details
}

func normalizeCharges(in []ChargeInput, details map[string]string) []Charge {
	if len(in) == 0 {
		details["charges"] = "must contain at least one charge"
		return nil
	}

	out := make([]Charge, 0, len(in))
	for i, c := range in {
		ok := true
		if c.Q == nil {
			details[fmt.Sprintf("charges[%d].q", i)] = "required"
			ok = false
		}
		if c.X == nil {
			details[fmt.Sprintf("charges[%d].x", i)] = "required"
			ok = false
		}
		if c.Y == nil {
			details[fmt.Sprintf("charges[%d].y", i)] = "required"
			ok = false
		}
		if ok {
			out = append(out, Charge{Q: *c.Q, X: *c.X, Y: *c.Y})
		}
	}
	return out
}

package domain

import "errors"

// ErrInvalidInput marks malformed caller input: degenerate bounds,
// too-small resolution, non-positive tracer knobs. Wrapped with
// fmt.Errorf("%w: ...") at the point of detection.
var ErrInvalidInput = errors.New("invalid input")

package field

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/Vrewser/Electric-Field-and-Potential-Calculator-for-Point-Charges-in-2D-Space/internal/domain"
)

// TraceConfig holds the field-line integration knobs. The proximity and
// seed-radius factors are empirical defaults, not invariants; callers may
// tune them.
type TraceConfig struct {
	LinesPerCharge int
	StepSize       float64
	MaxSteps       int

	// Epsilon softens the field evaluated along the line.
	Epsilon float64

	// ProximityFactor*StepSize is the capture distance around any charge.
	ProximityFactor float64

	// Seeds sit on a circle of radius max(StepSize*1.5, MinSeedRadius).
	MinSeedRadius float64
}

func DefaultTraceConfig() TraceConfig {
	return TraceConfig{
		LinesPerCharge:  12,
		StepSize:        0.05,
		MaxSteps:        1000,
		Epsilon:         domain.DefaultPtSoftening,
		ProximityFactor: 0.8,
		MinSeedRadius:   0.05,
	}
}

// Line is one traced polyline, tagged with the originating charge's sign
// (rendering hint only).
type Line struct {
	Sign   int            `json:"sign"`
	Points []domain.Point `json:"points"`
}

// TraceLines integrates field lines seeded on a circle around every charge.
// Each seed is integrated forward along the unit field direction and,
// independently, backward against it, advancing StepSize per step for up to
// MaxSteps steps. A direction stops when the position leaves b, comes
// within ProximityFactor*StepSize of any charge, or the field vanishes
// exactly. Polylines with more than 2 points are kept; forward and backward
// runs stay separate lines.
//
// Lines are independent, so the (charge, seed) pairs are traced on a
// bounded worker pool; output order is still deterministic.
func TraceLines(charges []domain.Charge, b domain.Bounds, cfg TraceConfig) ([]Line, error) {
	if cfg.LinesPerCharge <= 0 {
		return nil, fmt.Errorf("%w: linesPerCharge must be > 0, got %d", domain.ErrInvalidInput, cfg.LinesPerCharge)
	}
	if cfg.StepSize <= 0 {
		return nil, fmt.Errorf("%w: stepSize must be > 0, got %g", domain.ErrInvalidInput, cfg.StepSize)
	}
	if cfg.MaxSteps <= 0 {
		return nil, fmt.Errorf("%w: maxSteps must be > 0, got %d", domain.ErrInvalidInput, cfg.MaxSteps)
	}
	if cfg.Epsilon < 0 {
		return nil, fmt.Errorf("%w: epsilon must be >= 0, got %g", domain.ErrInvalidInput, cfg.Epsilon)
	}
	if !b.Valid() {
		return nil, fmt.Errorf("%w: degenerate bounds [%g,%g]x[%g,%g]",
			domain.ErrInvalidInput, b.XMin, b.XMax, b.YMin, b.YMax)
	}
	if cfg.ProximityFactor <= 0 {
		cfg.ProximityFactor = 0.8
	}
	if cfg.MinSeedRadius <= 0 {
		cfg.MinSeedRadius = 0.05
	}

	seedRadius := cfg.StepSize * 1.5
	if seedRadius < cfg.MinSeedRadius {
		seedRadius = cfg.MinSeedRadius
	}

	type seedJob struct {
		charge domain.Charge
		start  domain.Point
	}

	jobs := make([]seedJob, 0, len(charges)*cfg.LinesPerCharge)
	for _, c := range charges {
		for n := 0; n < cfg.LinesPerCharge; n++ {
			theta := 2 * math.Pi * float64(n) / float64(cfg.LinesPerCharge)
			jobs = append(jobs, seedJob{
				charge: c,
				start: domain.Point{
					X: c.X + seedRadius*math.Cos(theta),
					Y: c.Y + seedRadius*math.Sin(theta),
				},
			})
		}
	}

	// Two slots per seed: forward then backward.
	traced := make([][]Line, len(jobs))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(jobs) {
		workers = len(jobs)
	}
	if workers < 1 {
		workers = 1
	}

	idx := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range idx {
				j := jobs[i]
				var lines []Line
				for _, dir := range []float64{1, -1} {
					pts := integrate(j.start, dir, charges, b, cfg)
					if len(pts) > 2 {
						lines = append(lines, Line{Sign: j.charge.Sign(), Points: pts})
					}
				}
				traced[i] = lines
			}
		}()
	}
	for i := range jobs {
		idx <- i
	}
	close(idx)
	wg.Wait()

	var out []Line
	for _, lines := range traced {
		out = append(out, lines...)
	}
	return out, nil
}

// integrate advances from start along dir*unit(E) until a termination
// condition fires or MaxSteps is reached. The point that triggered an
// out-of-bounds stop is kept as the final vertex.
func integrate(start domain.Point, dir float64, charges []domain.Charge, b domain.Bounds, cfg TraceConfig) []domain.Point {
	capture := cfg.StepSize * cfg.ProximityFactor

	pts := make([]domain.Point, 0, 64)
	pts = append(pts, start)
	cur := start

	for i := 0; i < cfg.MaxSteps; i++ {
		e := FieldAt(cur, charges, cfg.Epsilon)
		mag := e.Norm()
		if mag == 0 {
			break
		}

		cur.X += dir * e.X / mag * cfg.StepSize
		cur.Y += dir * e.Y / mag * cfg.StepSize
		pts = append(pts, cur)

		if !b.Contains(cur) {
			break
		}
		if nearAnyCharge(cur, charges, capture) {
			break
		}
	}
	return pts
}

func nearAnyCharge(p domain.Point, charges []domain.Charge, dist float64) bool {
	for _, c := range charges {
		if math.Hypot(p.X-c.X, p.Y-c.Y) < dist {
			return true
		}
	}
	return false
}

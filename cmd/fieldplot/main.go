// fieldplot traces field lines for a charge configuration and renders them
// to a PNG. It is a presentation collaborator of the numeric core, the CLI
// twin of the browser UI.
//
// Charges are given as q@x,y pairs separated by semicolons, q in Coulombs:
//
//	fieldplot -charges "1e-9@-0.5,0;-1e-9@0.5,0" -o dipole.png
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Vrewser/Electric-Field-and-Potential-Calculator-for-Point-Charges-in-2D-Space/internal/domain"
	"github.com/Vrewser/Electric-Field-and-Potential-Calculator-for-Point-Charges-in-2D-Space/internal/field"
)

var (
	positiveLine = drawing.Color{R: 255, G: 170, B: 90, A: 220}
	negativeLine = drawing.Color{R: 120, G: 170, B: 255, A: 220}
	positiveDot  = drawing.Color{R: 230, G: 80, B: 80, A: 255}
	negativeDot  = drawing.Color{R: 80, G: 100, B: 230, A: 255}
)

func main() {
	var (
		chargeSpec = flag.String("charges", "1e-9@-0.5,0;-1e-9@0.5,0", "charges as q@x,y;q@x,y (q in Coulombs)")
		boundsSpec = flag.String("bounds", "-2,2,-2,2", "window as xmin,xmax,ymin,ymax")
		lines      = flag.Int("lines", 12, "field lines per charge")
		step       = flag.Float64("step", 0.05, "integration step size (m)")
		maxSteps   = flag.Int("max-steps", 1000, "max integration steps per direction")
		size       = flag.Int("size", 800, "output image size in pixels")
		out        = flag.String("o", "field.png", "output PNG path")
	)
	flag.Parse()

	charges, err := parseCharges(*chargeSpec)
	if err != nil {
		fatalf("bad -charges: %v", err)
	}
	bounds, err := parseBounds(*boundsSpec)
	if err != nil {
		fatalf("bad -bounds: %v", err)
	}

	cfg := field.DefaultTraceConfig()
	cfg.LinesPerCharge = *lines
	cfg.StepSize = *step
	cfg.MaxSteps = *maxSteps

	traced, err := field.TraceLines(charges, bounds, cfg)
	if err != nil {
		fatalf("trace: %v", err)
	}

	series := make([]chart.Series, 0, len(traced)+2)
	for _, line := range traced {
		xs := make([]float64, len(line.Points))
		ys := make([]float64, len(line.Points))
		for i, p := range line.Points {
			xs[i] = p.X
			ys[i] = p.Y
		}
		col := positiveLine
		if line.Sign < 0 {
			col = negativeLine
		}
		series = append(series, chart.ContinuousSeries{
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeColor: col, StrokeWidth: 1},
		})
	}
	series = append(series, chargeMarkers(charges, 1), chargeMarkers(charges, -1))

	ch := chart.Chart{
		Width:  *size,
		Height: *size,
		XAxis:  chart.XAxis{Name: "x (m)", Range: &chart.ContinuousRange{Min: bounds.XMin, Max: bounds.XMax}},
		YAxis:  chart.YAxis{Name: "y (m)", Range: &chart.ContinuousRange{Min: bounds.YMin, Max: bounds.YMax}},
		Series: series,
	}

	f, err := os.Create(*out)
	if err != nil {
		fatalf("create %s: %v", *out, err)
	}
	defer f.Close()

	if err := ch.Render(chart.PNG, f); err != nil {
		fatalf("render: %v", err)
	}
	fmt.Printf("wrote %s (%d lines, %d charges)\n", *out, len(traced), len(charges))
}

func chargeMarkers(charges []domain.Charge, sign int) chart.Series {
	var xs, ys []float64
	for _, c := range charges {
		if c.Sign() == sign || (sign > 0 && c.Sign() == 0) {
			xs = append(xs, c.X)
			ys = append(ys, c.Y)
		}
	}
	if len(xs) == 0 {
		// go-chart rejects empty series; park an invisible point instead.
		xs, ys = []float64{0}, []float64{0}
		return chart.ContinuousSeries{
			XValues: xs, YValues: ys,
			Style: chart.Style{StrokeWidth: chart.Disabled, DotWidth: chart.Disabled},
		}
	}
	col := positiveDot
	if sign < 0 {
		col = negativeDot
	}
	return chart.ContinuousSeries{
		XValues: xs,
		YValues: ys,
		Style:   chart.Style{StrokeWidth: chart.Disabled, DotWidth: 6, DotColor: col},
	}
}

func parseCharges(spec string) ([]domain.Charge, error) {
	var out []domain.Charge
	for _, part := range strings.Split(spec, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		qpos := strings.SplitN(part, "@", 2)
		if len(qpos) != 2 {
			return nil, fmt.Errorf("%q: want q@x,y", part)
		}
		q, err := strconv.ParseFloat(strings.TrimSpace(qpos[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: bad charge: %v", part, err)
		}
		xy := strings.SplitN(qpos[1], ",", 2)
		if len(xy) != 2 {
			return nil, fmt.Errorf("%q: want q@x,y", part)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xy[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: bad x: %v", part, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(xy[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: bad y: %v", part, err)
		}
		out = append(out, domain.Charge{Q: q, X: x, Y: y})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no charges")
	}
	return out, nil
}

func parseBounds(spec string) (domain.Bounds, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 4 {
		return domain.Bounds{}, fmt.Errorf("want xmin,xmax,ymin,ymax")
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return domain.Bounds{}, fmt.Errorf("bad value %q: %v", p, err)
		}
		vals[i] = v
	}
	b := domain.Bounds{XMin: vals[0], XMax: vals[1], YMin: vals[2], YMax: vals[3]}
	if !b.Valid() {
		return domain.Bounds{}, fmt.Errorf("degenerate bounds")
	}
	return b, nil
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "fieldplot: "+format+"\n", args...)
	os.Exit(1)
}

package analysis

import (
	"fmt"
	"math"

	"github.com/san-kum/fasttrig/internal/angle"
	"github.com/san-kum/fasttrig/internal/metrics"
	"github.com/san-kum/fasttrig/internal/trig"
)

type Function string

const (
	Sin       Function = "sin"
	Cos       Function = "cos"
	Tan       Function = "tan"
	Atan      Function = "atan"
	Atan2     Function = "atan2"
	Asin      Function = "asin"
	Acos      Function = "acos"
	Magnitude Function = "magnitude"
)

const (
	// Tan is only compared where |tan| stays below this, away from saturation.
	tanRange = 2.0
	// Radius of the test vectors fed to Atan2 and Magnitude.
	probeRadius = 8000
	minChunk    = 256
)

// Sample is one evaluation: the raw integer input, the engine result and the
// float64 reference, both in real units.
type Sample struct {
	Input float64
	Got   float64
	Want  float64
}

func (s Sample) Delta() float64 {
	return s.Got - s.Want
}

type Report struct {
	Function  Function           `json:"function"`
	TableSize int                `json:"table_size"`
	Step      int                `json:"step"`
	Samples   int                `json:"samples"`
	Unit      string             `json:"unit"`
	Metrics   map[string]float64 `json:"metrics"`
}

type Result struct {
	Report  Report
	Samples []Sample
}

type probe struct {
	unit   string
	inputs func(step int) []int
	eval   func(e *trig.Engine, in int) Sample
}

var probes = map[Function]probe{
	Sin: {"scale", angles, func(e *trig.Engine, a int) Sample {
		return Sample{float64(a), scale(e.Sin(uint16(a))), math.Sin(angle.ToRadians(uint16(a)))}
	}},
	Cos: {"scale", angles, func(e *trig.Engine, a int) Sample {
		return Sample{float64(a), scale(e.Cos(uint16(a))), math.Cos(angle.ToRadians(uint16(a)))}
	}},
	Tan: {"scale", tanAngles, func(e *trig.Engine, a int) Sample {
		return Sample{float64(a), scale(e.Tan(uint16(a))), math.Tan(angle.ToRadians(uint16(a)))}
	}},
	Atan: {"rad", span(math.MinInt16, math.MaxInt16), func(e *trig.Engine, v int) Sample {
		want := math.Atan(float64(v) / trig.OutputMax)
		return Sample{float64(v), radiansNear(e.Atan(int16(v)), want), want}
	}},
	Atan2: {"rad", angles, func(e *trig.Engine, a int) Sample {
		x, y := probeVector(a)
		want := math.Atan2(float64(y), float64(x))
		return Sample{float64(a), radiansNear(e.Atan2(y, x), want), want}
	}},
	Asin: {"rad", span(-trig.OutputScale, trig.OutputScale), func(e *trig.Engine, v int) Sample {
		want := math.Asin(float64(v) / trig.OutputScale)
		return Sample{float64(v), radiansNear(e.Asin(int16(v)), want), want}
	}},
	Acos: {"rad", span(-trig.OutputScale, trig.OutputScale), func(e *trig.Engine, v int) Sample {
		want := math.Acos(float64(v) / trig.OutputScale)
		return Sample{float64(v), radiansNear(e.Acos(int16(v)), want), want}
	}},
	Magnitude: {"units", angles, func(e *trig.Engine, a int) Sample {
		x, y := probeVector(a)
		return Sample{float64(a), float64(e.Magnitude(int32(x), int32(y))), math.Hypot(float64(x), float64(y))}
	}},
}

// Functions returns every function Sweep can evaluate.
func Functions() []Function {
	return []Function{Sin, Cos, Tan, Atan, Atan2, Asin, Acos, Magnitude}
}

func ParseFunction(name string) (Function, error) {
	fn := Function(name)
	if _, ok := probes[fn]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFunction, name)
	}
	return fn, nil
}

// Sweep evaluates fn over its input domain every step inputs and returns the
// samples with their error report. Angles cover one turn, asin/acos cover
// [-1, 1] and atan the full int16 range.
func Sweep(e *trig.Engine, fn Function, step, workers int) (*Result, error) {
	p, ok := probes[fn]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, fn)
	}
	if step <= 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrStep, step)
	}

	inputs := p.inputs(step)
	samples := make([]Sample, len(inputs))
	ParallelFor(len(inputs), minChunk, workers, func(start, end int) {
		for i := start; i < end; i++ {
			samples[i] = p.eval(e, inputs[i])
		}
	})

	ms := metrics.Standard()
	for _, s := range samples {
		for _, m := range ms {
			m.Observe(s.Input, s.Got, s.Want)
		}
	}

	report := Report{
		Function:  fn,
		TableSize: e.TableSize(),
		Step:      step,
		Samples:   len(samples),
		Unit:      p.unit,
		Metrics:   make(map[string]float64, len(ms)),
	}
	for _, m := range ms {
		report.Metrics[m.Name()] = m.Value()
	}

	return &Result{Report: report, Samples: samples}, nil
}

// CompareSizes runs the same sweep at each table size, in order.
func CompareSizes(sizes []int, fn Function, step, workers int) ([]Report, error) {
	reports := make([]Report, 0, len(sizes))
	for _, n := range sizes {
		e, err := trig.New(n)
		if err != nil {
			return nil, err
		}
		res, err := Sweep(e, fn, step, workers)
		if err != nil {
			return nil, err
		}
		reports = append(reports, res.Report)
	}
	return reports, nil
}

func angles(step int) []int {
	return span(0, trig.FullTurn-1)(step)
}

func tanAngles(step int) []int {
	all := angles(step)
	out := all[:0]
	for _, a := range all {
		if math.Abs(math.Tan(angle.ToRadians(uint16(a)))) <= tanRange {
			out = append(out, a)
		}
	}
	return out
}

func span(lo, hi int) func(step int) []int {
	return func(step int) []int {
		out := make([]int, 0, (hi-lo)/step+1)
		for v := lo; v <= hi; v += step {
			out = append(out, v)
		}
		return out
	}
}

func probeVector(a int) (x, y int16) {
	r := angle.ToRadians(uint16(a))
	return int16(math.Round(probeRadius * math.Cos(r))), int16(math.Round(probeRadius * math.Sin(r)))
}

func scale(v int16) float64 {
	return float64(v) / trig.OutputScale
}

// radiansNear converts an engine angle to radians on the branch closest to
// ref, so wrap-around is not counted as error.
func radiansNear(a uint16, ref float64) float64 {
	r := angle.ToRadians(a)
	for r-ref > math.Pi {
		r -= 2 * math.Pi
	}
	for ref-r > math.Pi {
		r += 2 * math.Pi
	}
	return r
}

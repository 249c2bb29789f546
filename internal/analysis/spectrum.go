package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"

	"github.com/san-kum/fasttrig/internal/demo"
	"github.com/san-kum/fasttrig/internal/trig"
)

// harmonics counted in THD, from the 2nd up.
const harmonics = 5

// Spectrum describes a tone generated by the engine's Sin.
type Spectrum struct {
	Samples int
	Step    uint16
	// Coherent is true when the tone completes a whole number of cycles, in
	// which case no window is applied.
	Coherent bool
	// Magnitudes of bins [0, Samples/2), normalised so a full-scale tone
	// reads 1.0.
	Bins      []float64
	Peak      int
	Amplitude float64
	SFDR      float64 // dB
	THD       float64 // ratio
}

// AnalyzeSpectrum generates samples of a full-scale sine advancing step
// angle units per sample and measures its purity.
func AnalyzeSpectrum(e *trig.Engine, samples int, step uint16) (*Spectrum, error) {
	if samples < 8 || samples&(samples-1) != 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrSamples, samples)
	}

	wave := demo.SineWave(e, samples, step)
	x := make([]float64, samples)
	for i, v := range wave {
		x[i] = float64(v) / trig.OutputScale
	}

	coherent := samples*int(step)%trig.FullTurn == 0
	gain := float64(samples)
	guard := 0
	if !coherent {
		w := window.Hann(samples)
		gain = 0
		for i := range x {
			x[i] *= w[i]
			gain += w[i]
		}
		guard = 3
	}

	freq := fft.FFTReal(x)
	bins := make([]float64, samples/2)
	for k := range bins {
		bins[k] = 2 * cmplx.Abs(freq[k]) / gain
	}

	peak := 1
	for k := 2; k < len(bins); k++ {
		if bins[k] > bins[peak] {
			peak = k
		}
	}

	spur := 0.0
	for k, m := range bins {
		if k >= peak-guard && k <= peak+guard {
			continue
		}
		spur = math.Max(spur, m)
	}

	s := &Spectrum{
		Samples:   samples,
		Step:      step,
		Coherent:  coherent,
		Bins:      bins,
		Peak:      peak,
		Amplitude: bins[peak],
		SFDR:      math.Inf(1),
	}
	if spur > 0 {
		s.SFDR = 20 * math.Log10(bins[peak]/spur)
	}

	var h float64
	for m := 2; m <= harmonics+1; m++ {
		k := foldBin(m*peak, samples)
		if k < len(bins) {
			h += bins[k] * bins[k]
		}
	}
	s.THD = math.Sqrt(h) / bins[peak]

	return s, nil
}

// foldBin maps bin k of an n-point transform into [0, n/2].
func foldBin(k, n int) int {
	k %= n
	if k > n/2 {
		k = n - k
	}
	return k
}

// DB returns the bins in decibels relative to full scale, floored at -160.
func (s *Spectrum) DB() []float64 {
	out := make([]float64, len(s.Bins))
	for i, m := range s.Bins {
		out[i] = math.Max(20*math.Log10(m), -160)
	}
	return out
}

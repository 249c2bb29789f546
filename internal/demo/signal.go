package demo

import "github.com/san-kum/fasttrig/internal/vector"

type Complex struct {
	Real, Imag int16
}

// RotateComplex multiplies z by e^(i·angle).
func RotateComplex(t Trig, z Complex, angle uint16) Complex {
	v := vector.Rotate(t, vector.Vec2{X: z.Real, Y: z.Imag}, angle)
	return Complex{Real: v.X, Imag: v.Y}
}

// SineWave fills samples of a full-scale sine advancing step angle units per
// sample.
func SineWave(t Trig, samples int, step uint16) []int16 {
	out := make([]int16, samples)
	var phase uint16
	for i := range out {
		out[i] = t.Sin(phase)
		phase += step
	}
	return out
}

// DFTBin returns bin k of the discrete Fourier transform of signal,
// normalised by the signal length.
func DFTBin(t Trig, signal []int16, k int) Complex {
	n := int64(len(signal))
	if n == 0 {
		return Complex{}
	}
	var re, im int64
	for i, s := range signal {
		a := uint16((int64(k) * int64(i) * 16384 / n) & 0x3FFF)
		re += int64(s) * int64(t.Cos(a)) >> 13
		im -= int64(s) * int64(t.Sin(a)) >> 13
	}
	return Complex{Real: clamp16(re / n), Imag: clamp16(im / n)}
}

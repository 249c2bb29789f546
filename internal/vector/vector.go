// Package vector provides 2-D Cartesian/polar conversion and rotation on top
// of an integer trig engine.
package vector

// Trig is the subset of the engine the helpers need. *trig.Engine satisfies it.
type Trig interface {
	Sin(angle uint16) int16
	Cos(angle uint16) int16
	Atan2(y, x int16) uint16
	Magnitude(x, y int32) int32
}

// scaleShift converts a product with a sin/cos value back to input units
// (8192 = 1.0).
const scaleShift = 13

type Vec2 struct {
	X, Y int16
}

type Polar struct {
	Angle     uint16
	Magnitude int16
}

// ToPolar returns the angle and length of v. Lengths beyond the int16 range
// saturate.
func ToPolar(t Trig, v Vec2) Polar {
	return Polar{
		Angle:     t.Atan2(v.Y, v.X),
		Magnitude: clamp16(int64(t.Magnitude(int32(v.X), int32(v.Y)))),
	}
}

// FromPolar returns the Cartesian vector for p.
func FromPolar(t Trig, p Polar) Vec2 {
	return Vec2{
		X: clamp16(int64(p.Magnitude) * int64(t.Cos(p.Angle)) >> scaleShift),
		Y: clamp16(int64(p.Magnitude) * int64(t.Sin(p.Angle)) >> scaleShift),
	}
}

// Rotate turns v counter-clockwise by angle.
func Rotate(t Trig, v Vec2, angle uint16) Vec2 {
	c := int64(t.Cos(angle))
	s := int64(t.Sin(angle))
	x, y := int64(v.X), int64(v.Y)
	return Vec2{
		X: clamp16((x*c - y*s) >> scaleShift),
		Y: clamp16((x*s + y*c) >> scaleShift),
	}
}

// Add returns a + b, saturated.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{X: clamp16(int64(a.X) + int64(b.X)), Y: clamp16(int64(a.Y) + int64(b.Y))}
}

// Sub returns a - b, saturated.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{X: clamp16(int64(a.X) - int64(b.X)), Y: clamp16(int64(a.Y) - int64(b.Y))}
}

// Dot returns the dot product of a and b.
func (a Vec2) Dot(b Vec2) int32 {
	return int32(a.X)*int32(b.X) + int32(a.Y)*int32(b.Y)
}

func clamp16(v int64) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}

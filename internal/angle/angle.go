// Package angle converts between engine angle units (16384 per turn) and
// degrees, milliradians and radians.
package angle

import "math"

const (
	unitsPerTurn = 16384
	mask         = unitsPerTurn - 1

	// MilliradiansPerTurn is 2π·1000 truncated, the scale used for mrad input.
	MilliradiansPerTurn = 6283
)

// FromDegrees converts whole degrees of any sign to angle units.
func FromDegrees(deg int) uint16 {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return uint16(deg * unitsPerTurn / 360)
}

// ToDegrees converts angle units to whole degrees in [0, 360), rounded.
func ToDegrees(a uint16) int {
	units := int(a & mask)
	return (units*360 + unitsPerTurn/2) / unitsPerTurn % 360
}

// FromMilliradians converts milliradians of any sign to angle units.
func FromMilliradians(mrad int32) uint16 {
	units := int64(mrad) * unitsPerTurn / MilliradiansPerTurn
	return uint16(units & mask)
}

// ToMilliradians converts angle units to milliradians in [0, 6283).
func ToMilliradians(a uint16) int32 {
	units := int64(a & mask)
	return int32((units*MilliradiansPerTurn + unitsPerTurn/2) / unitsPerTurn % MilliradiansPerTurn)
}

// FromRadians converts radians to angle units, rounding to the nearest unit.
func FromRadians(r float64) uint16 {
	units := int64(math.Round(r * unitsPerTurn / (2 * math.Pi)))
	return uint16(units & mask)
}

// ToRadians converts angle units to radians in [0, 2π).
func ToRadians(a uint16) float64 {
	return float64(a&mask) * 2 * math.Pi / unitsPerTurn
}

// Between reports whether a lies on the counter-clockwise arc from start to
// end, inclusive. The arc may cross zero.
func Between(a, start, end uint16) bool {
	span := (end - start) & mask
	offset := (a - start) & mask
	return offset <= span
}

// Diff returns the signed shortest rotation from a to b in units,
// in [-8192, 8192).
func Diff(a, b uint16) int {
	d := int((b - a) & mask)
	if d >= unitsPerTurn/2 {
		d -= unitsPerTurn
	}
	return d
}

package trig

import "math/bits"

type tables struct {
	sine []int16
	atan []uint16
	asin []uint16
}

// newTables builds the three quarter-range tables for resolution n.
// n must already be validated.
func newTables(n int) tables {
	return tables{
		sine: generateSine(n),
		atan: generateAtan(n),
		asin: generateAsin(n),
	}
}

// sineApprox evaluates the rational surrogate at a in [0, AngleMax] and
// returns the value on the output scale, rounded and clamped to OutputScale.
// With sineB = 0 it reduces to Bhaskara I's 4t/(5/4 − t).
func sineApprox(a int64) int64 {
	t := a * (AngleMax - a)
	p := sineA + (sineB*t)>>q26
	den := (sineD - t) << 13
	if den <= 0 {
		return OutputScale
	}
	v := (t*p + den/2) / den
	if v > OutputScale {
		return OutputScale
	}
	return v
}

func generateSine(n int) []int16 {
	table := make([]int16, n)
	last := int64(n - 1)
	for i := range table {
		a := (int64(i)*QuarterTurn + last/2) / last
		table[i] = int16(sineApprox(a))
	}
	return table
}

// generateAtan fills entry i with atan(i/n) by CORDIC vectoring: the vector
// (1, i/n) is rotated onto the x-axis and the rotations are summed.
func generateAtan(n int) []uint16 {
	table := make([]uint16, n)
	for i := range table {
		x := int64(cordicOne)
		y := int64(i) * cordicOne / int64(n)
		var z int64
		for k := 0; k < cordicSteps; k++ {
			dx, dy := y>>k, x>>k
			if y > 0 {
				x, y = x+dx, y-dy
				z += cordicAngles[k]
			} else {
				x, y = x-dx, y+dy
				z -= cordicAngles[k]
			}
		}
		table[i] = uint16((z + 128) >> 8)
	}
	return table
}

// generateAsin fills entry i with the angle whose sine approximation reaches
// i/n, found by bisection over [0, QuarterTurn]. The entry is the midpoint of
// the final one-unit bracket, which rounds down to its lower end.
func generateAsin(n int) []uint16 {
	table := make([]uint16, n)
	for i := range table {
		target := int64(i) * OutputScale / int64(n)
		lo, hi := int64(0), int64(QuarterTurn)
		for hi-lo > 1 {
			mid := (lo + hi) / 2
			if sineApprox(mid) < target {
				lo = mid
			} else {
				hi = mid
			}
		}
		table[i] = uint16((lo + hi) / 2)
	}
	return table
}

func tableBits(n int) uint {
	return uint(bits.TrailingZeros(uint(n)))
}

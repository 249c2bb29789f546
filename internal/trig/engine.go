package trig

import "math"

// Engine evaluates trigonometric functions from tables generated for a fixed
// resolution. It is immutable after New returns and safe for concurrent use.
type Engine struct {
	n    int
	bits uint

	// position·sineRecip: bits 16+ are the table index, bits 8..15 the fraction.
	sineRecip int64
	asinRecip int64

	t tables
}

// New generates the tables for resolution n and returns the engine.
func New(n int) (*Engine, error) {
	if !ValidTableSize(n) {
		return nil, &TableSizeError{Size: n}
	}
	return &Engine{
		n:         n,
		bits:      tableBits(n),
		sineRecip: int64(n-1) << 16 / QuarterTurn,
		asinRecip: int64(n) << 16 / OutputScale,
		t:         newTables(n),
	}, nil
}

// MustNew is like New but panics on an invalid size.
func MustNew(n int) *Engine {
	e, err := New(n)
	if err != nil {
		panic(err)
	}
	return e
}

// TableSize returns the resolution N.
func (e *Engine) TableSize() int {
	return e.n
}

// TableMemory returns the bytes held by the three tables.
func (e *Engine) TableMemory() int {
	return 2 * (len(e.t.sine) + len(e.t.atan) + len(e.t.asin))
}

// Sin returns sin(angle) on the output scale.
func (e *Engine) Sin(angle uint16) int16 {
	angle &= AngleMask
	quadrant := int32(angle >> 12)
	position := int64(angle & 0xFFF)
	if quadrant&1 != 0 {
		position = 0x1000 - position
	}

	scaled := position * e.sineRecip
	index := int(scaled >> 16)
	fraction := int32(scaled>>8) & 0xFF

	var v int32
	if index >= e.n-1 {
		v = int32(e.t.sine[e.n-1])
	} else {
		y0 := int32(e.t.sine[index])
		y1 := int32(e.t.sine[index+1])
		v = y0 + ((y1-y0)*fraction+128)>>8
	}

	// -1 for quadrants 2 and 3, 0 otherwise.
	sign := -(quadrant >> 1)
	return int16((v ^ sign) - sign)
}

// Cos returns cos(angle) on the output scale.
func (e *Engine) Cos(angle uint16) int16 {
	return e.Sin(angle + QuarterTurn)
}

// SinCos returns Sin(angle) and Cos(angle). It is two independent lookups.
func (e *Engine) SinCos(angle uint16) (sin, cos int16) {
	return e.Sin(angle), e.Cos(angle)
}

// Tan returns tan(angle) scaled by OutputScale. Near odd multiples of a
// quarter turn, where |cos| < TanGuard, it returns ±TanLimit with the sign of
// sin. All results are saturated to ±TanLimit.
func (e *Engine) Tan(angle uint16) int16 {
	s := int32(e.Sin(angle))
	c := int32(e.Cos(angle))

	if c > -TanGuard && c < TanGuard {
		if s >= 0 {
			return TanLimit
		}
		return -TanLimit
	}

	return saturate16(s * OutputScale / c)
}

var (
	atanOffset = [4]int32{0, 2 * AngleMax, AngleMax, AngleMax}
	atanSign   = [4]int32{1, -1, -1, 1}
)

// Atan2 returns the angle of the vector (x, y) in [0, FullTurn).
// Atan2(0, 0) is 0.
func (e *Engine) Atan2(y, x int16) uint16 {
	if x == 0 {
		switch {
		case y > 0:
			return QuarterTurn
		case y < 0:
			return 3 * QuarterTurn
		default:
			return 0
		}
	}

	ax, ay := abs64(int64(x)), abs64(int64(y))
	var code int
	if x < 0 {
		code |= 2
	}
	if y < 0 {
		code |= 1
	}

	var angle int32
	if ax >= ay {
		angle = e.atanRatio(ay, ax)
	} else {
		angle = QuarterTurn - e.atanRatio(ax, ay)
	}

	return uint16((atanOffset[code] + atanSign[code]*angle) & AngleMask)
}

// atanRatio returns atan(num/den) for num <= den from the atan table.
func (e *Engine) atanRatio(num, den int64) int32 {
	ratio := (num << (e.bits + 8)) / den
	return e.interpolate(e.t.atan, EighthTurn, int(ratio>>8), int32(ratio&0xFF))
}

// Atan returns atan(value/OutputMax): Atan2 against a fixed reference of
// OutputMax. To invert Tan use Atan2(Tan(a), OutputScale).
func (e *Engine) Atan(value int16) uint16 {
	return e.Atan2(value, OutputMax)
}

// Asin returns asin(value/OutputScale). Arguments beyond ±1.0 saturate to
// ±QuarterTurn; negative results are returned wrapped into [0, FullTurn).
func (e *Engine) Asin(value int16) uint16 {
	av := abs64(int64(value))
	if av > OutputScale {
		av = OutputScale
	}

	scaled := av * e.asinRecip
	angle := e.interpolate(e.t.asin, QuarterTurn, int(scaled>>16), int32(scaled>>8)&0xFF)

	if value < 0 {
		return uint16((2*AngleMax - angle) & AngleMask)
	}
	return uint16(angle)
}

// Acos returns acos(value/OutputScale) in [0, AngleMax].
func (e *Engine) Acos(value int16) uint16 {
	return uint16((QuarterTurn - int32(e.Asin(value))) & AngleMask)
}

// Magnitude returns sqrt(x² + y²) using CORDIC vectoring, saturated to
// math.MaxInt32.
func (e *Engine) Magnitude(x, y int32) int32 {
	return magnitude(x, y)
}

func magnitude(x, y int32) int32 {
	ax := abs64(int64(x)) << magnitudeShift
	ay := abs64(int64(y)) << magnitudeShift

	for i := 0; i < magnitudeSteps; i++ {
		dx, dy := ay>>i, ax>>i
		if ay >= 0 {
			ax, ay = ax+dx, ay-dy
		} else {
			ax, ay = ax-dx, ay+dy
		}
	}

	const shift = 16 + magnitudeShift
	r := (ax*magnitudeGain + 1<<(shift-1)) >> shift
	if r > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(r)
}

// interpolate reads table at index with an 8-bit fraction toward the next
// entry. edge is the function value at index n, one past the last entry.
func (e *Engine) interpolate(table []uint16, edge int32, index int, fraction int32) int32 {
	if index >= e.n {
		return edge
	}
	y0 := int32(table[index])
	y1 := edge
	if index+1 < e.n {
		y1 = int32(table[index+1])
	}
	return y0 + ((y1-y0)*fraction+128)>>8
}

func saturate16(v int32) int16 {
	if v > TanLimit {
		return TanLimit
	}
	if v < -TanLimit {
		return -TanLimit
	}
	return int16(v)
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

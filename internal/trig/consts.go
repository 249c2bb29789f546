package trig

// Angle units: 16384 per turn, wrapped to 14 bits.
const (
	AngleMask   = 0x3FFF
	FullTurn    = 16384
	AngleMax    = 8192 // π
	QuarterTurn = 4096
	EighthTurn  = 2048
)

// Output scale for sin/cos and the asin/acos argument.
const (
	OutputScale = 8192 // 1.0
	OutputMax   = 2 * OutputScale
)

const (
	// TanLimit is the value Tan saturates to.
	TanLimit = 32767
	// TanGuard is the |cos| threshold below which Tan saturates instead of dividing.
	TanGuard = 100
)

const (
	MinTableSize = 8
	MaxTableSize = 4096
)

// Bhaskara-form sine surrogate f(t) = t(A + B·t)/(D − t) with
// t = a(AngleMax − a)/AngleMax², constants in Q26. f(π/2) = 1.
const (
	sineA int64 = 642925223
	sineB int64 = 434848310
	sineD int64 = 204686541
	q26         = 26
)

// cordicAngles[k] is atan(2^-k) in 1/256 angle units.
var cordicAngles = [cordicSteps]int64{
	524288, 309505, 163534, 83012, 41667, 20854, 10430, 5215,
	2608, 1304, 652, 326, 163, 81, 41, 20,
}

const (
	cordicSteps    = 16
	cordicOne      = 1 << 24
	magnitudeSteps = 12
	magnitudeShift = 12
	// magnitudeGain is 1/K for 12 CORDIC steps in Q16.
	magnitudeGain = 39797
)

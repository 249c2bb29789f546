package demo

import "github.com/san-kum/fasttrig/internal/vector"

// invSqrt3 is 1/√3 on the output scale.
const invSqrt3 = 4730

// AlphaBeta is a stationary two-axis current vector.
type AlphaBeta struct {
	Alpha, Beta int16
}

// DQ is the rotor-frame current vector.
type DQ struct {
	D, Q int16
}

// Clarke converts phase currents a and b of a balanced three-phase system.
func Clarke(a, b int16) AlphaBeta {
	return AlphaBeta{
		Alpha: a,
		Beta:  clamp16((int64(a) + 2*int64(b)) * invSqrt3 >> 13),
	}
}

// Park rotates ab into the rotor frame at electrical angle theta.
func Park(t Trig, ab AlphaBeta, theta uint16) DQ {
	v := vector.Rotate(t, vector.Vec2{X: ab.Alpha, Y: ab.Beta}, -theta)
	return DQ{D: v.X, Q: v.Y}
}

func InversePark(t Trig, dq DQ, theta uint16) AlphaBeta {
	v := vector.Rotate(t, vector.Vec2{X: dq.D, Y: dq.Q}, theta)
	return AlphaBeta{Alpha: v.X, Beta: v.Y}
}

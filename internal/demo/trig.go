// Package demo holds small consumers of the trig engine: navigation, arm
// kinematics, signal generation, projectile physics and motor control.
package demo

import (
	"errors"

	"github.com/san-kum/fasttrig/internal/vector"
)

var ErrUnreachable = errors.New("target out of reach")

// Trig is the engine surface the demos use.
type Trig interface {
	vector.Trig
	Acos(value int16) uint16
}

// atan2Wide is Atan2 for operands wider than int16. Both are shifted down
// together so the ratio is kept.
func atan2Wide(t Trig, y, x int64) uint16 {
	for y > 32767 || y < -32768 || x > 32767 || x < -32768 {
		y >>= 1
		x >>= 1
	}
	return t.Atan2(int16(y), int16(x))
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

// Package trig provides an integer-only trigonometry engine built on small
// quarter-range lookup tables.
//
// An [Engine] is parameterized by its table resolution N (a power of two in
// [8, 4096]). Construction generates three tables once:
//
//   - sine over [0, π/2], from a Bhaskara-style rational approximation
//   - atan over ratios [0, 1), from a 16-step CORDIC vectoring recurrence
//   - asin over [0, 1), by bisection against the sine approximation
//
// Every evaluator method is a pure function of its arguments and the tables,
// so a single engine may be shared by any number of goroutines.
//
// # Units
//
// Angles are 14-bit: 16384 units make a full turn and inputs are wrapped with
// [AngleMask]. Sine and cosine return values on a ±16384 span where 8192 is
// 1.0; asin and acos take their argument on the same scale.
//
// # Example
//
//	e := trig.MustNew(256)
//	s, c := e.SinCos(angle.FromDegrees(30))
//	heading := e.Atan2(dy, dx)
package trig

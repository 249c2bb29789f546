package demo

// JointAngles of a planar two-link arm. Elbow is relative to the upper arm.
type JointAngles struct {
	Shoulder uint16
	Elbow    uint16
}

type EndEffector struct {
	X, Y int16
}

type ServoArm struct {
	trig   Trig
	l1, l2 int64
}

// NewServoArm returns an arm with link lengths l1 and l2 in millimetres.
func NewServoArm(t Trig, l1, l2 int16) *ServoArm {
	return &ServoArm{trig: t, l1: int64(l1), l2: int64(l2)}
}

func (a *ServoArm) ForwardKinematics(j JointAngles) EndEffector {
	tip := j.Shoulder + j.Elbow
	x := a.l1*int64(a.trig.Cos(j.Shoulder)) + a.l2*int64(a.trig.Cos(tip))
	y := a.l1*int64(a.trig.Sin(j.Shoulder)) + a.l2*int64(a.trig.Sin(tip))
	return EndEffector{X: clamp16(x >> 13), Y: clamp16(y >> 13)}
}

// InverseKinematics returns the elbow-down solution reaching (x, y), or
// ErrUnreachable when the point lies outside the arm's annulus.
func (a *ServoArm) InverseKinematics(x, y int16) (JointAngles, error) {
	d2 := int64(x)*int64(x) + int64(y)*int64(y)
	outer := (a.l1 + a.l2) * (a.l1 + a.l2)
	inner := (a.l1 - a.l2) * (a.l1 - a.l2)
	if d2 > outer || d2 < inner {
		return JointAngles{}, ErrUnreachable
	}

	// law of cosines on the output scale
	c := (d2 - a.l1*a.l1 - a.l2*a.l2) * 8192 / (2 * a.l1 * a.l2)
	elbow := a.trig.Acos(clamp16(c))

	k1 := a.l1*8192 + a.l2*int64(a.trig.Cos(elbow))
	k2 := a.l2 * int64(a.trig.Sin(elbow))
	shoulder := a.trig.Atan2(y, x) - atan2Wide(a.trig, k2, k1)

	return JointAngles{Shoulder: shoulder & 0x3FFF, Elbow: elbow}, nil
}

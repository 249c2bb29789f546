package demo

type Projectile struct {
	X, Y   int16
	VX, VY int16
}

// Launch returns a projectile at the origin moving at speed along angle.
func Launch(t Trig, speed int16, angle uint16) Projectile {
	return Projectile{
		VX: clamp16(int64(speed) * int64(t.Cos(angle)) >> 13),
		VY: clamp16(int64(speed) * int64(t.Sin(angle)) >> 13),
	}
}

// Step advances p by one tick under gravity.
func Step(p Projectile, gravity int16) Projectile {
	p.X = clamp16(int64(p.X) + int64(p.VX))
	p.Y = clamp16(int64(p.Y) + int64(p.VY))
	p.VY = clamp16(int64(p.VY) - int64(gravity))
	return p
}

// ImpactAngle is the direction of travel.
func ImpactAngle(t Trig, p Projectile) uint16 {
	return t.Atan2(p.VY, p.VX)
}

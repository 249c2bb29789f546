package demo

import (
	"errors"
	"testing"

	"github.com/san-kum/fasttrig/internal/angle"
	"github.com/san-kum/fasttrig/internal/trig"
)

func within(got, want, tol int) bool {
	d := got - want
	return d >= -tol && d <= tol
}

func TestNavigator(t *testing.T) {
	nav := NewNavigator(trig.Trig128)

	target := nav.CalculateTarget(Position{0, 0}, Position{1000, 1000})
	if target.Heading != angle.FromDegrees(45) {
		t.Errorf("heading = %d, want %d", target.Heading, angle.FromDegrees(45))
	}
	if target.Distance != 1414 {
		t.Errorf("distance = %d, want 1414", target.Distance)
	}

	pos := nav.Move(Position{0, 0}, target.Heading, 500)
	if pos != (Position{353, 353}) {
		t.Errorf("Move = %+v, want {353 353}", pos)
	}
}

func TestNavigator_WideDeltas(t *testing.T) {
	nav := NewNavigator(trig.Trig128)

	target := nav.CalculateTarget(Position{-10000, 20000}, Position{20000, -20000})
	if target.Distance != 50000 {
		t.Errorf("distance = %d, want 50000", target.Distance)
	}
	if deg := angle.ToDegrees(target.Heading); deg != 307 {
		t.Errorf("heading = %d°, want 307°", deg)
	}
}

func TestServoArm_ForwardKinematics(t *testing.T) {
	arm := NewServoArm(trig.Trig256, 100, 100)
	tests := []struct {
		joints JointAngles
		want   EndEffector
	}{
		{JointAngles{0, 0}, EndEffector{200, 0}},
		{JointAngles{0, angle.FromDegrees(90)}, EndEffector{100, 100}},
		{JointAngles{angle.FromDegrees(90), angle.FromDegrees(90)}, EndEffector{-100, 100}},
	}
	for _, tt := range tests {
		if got := arm.ForwardKinematics(tt.joints); got != tt.want {
			t.Errorf("ForwardKinematics(%+v) = %+v, want %+v", tt.joints, got, tt.want)
		}
	}
}

func TestServoArm_InverseKinematics(t *testing.T) {
	arm := NewServoArm(trig.Trig256, 1000, 1000)
	points := []EndEffector{
		{1200, 800},
		{-500, 1500},
		{1900, 0},
		{300, -700},
		{-1000, -1000},
		{0, 1999},
	}
	for _, p := range points {
		j, err := arm.InverseKinematics(p.X, p.Y)
		if err != nil {
			t.Fatalf("InverseKinematics(%+v): %v", p, err)
		}
		got := arm.ForwardKinematics(j)
		if !within(int(got.X), int(p.X), 2) || !within(int(got.Y), int(p.Y), 2) {
			t.Errorf("round trip %+v -> %+v -> %+v", p, j, got)
		}
	}
}

func TestServoArm_Unreachable(t *testing.T) {
	tests := []struct {
		name   string
		l1, l2 int16
		x, y   int16
	}{
		{"beyond reach", 1000, 1000, 2500, 0},
		{"inside inner radius", 1000, 500, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewServoArm(trig.Trig256, tt.l1, tt.l2).InverseKinematics(tt.x, tt.y)
			if !errors.Is(err, ErrUnreachable) {
				t.Errorf("err = %v, want ErrUnreachable", err)
			}
		})
	}
}

func TestSineWave_DFT(t *testing.T) {
	e := trig.Trig128
	wave := SineWave(e, 64, 1024)
	if len(wave) != 64 {
		t.Fatalf("len = %d", len(wave))
	}

	tests := []struct {
		bin  int
		want Complex
	}{
		{4, Complex{0, -4096}},
		{3, Complex{0, 0}},
		{0, Complex{0, 0}},
	}
	for _, tt := range tests {
		got := DFTBin(e, wave, tt.bin)
		if !within(int(got.Real), int(tt.want.Real), 4) || !within(int(got.Imag), int(tt.want.Imag), 4) {
			t.Errorf("DFTBin(k=%d) = %+v, want %+v", tt.bin, got, tt.want)
		}
	}

	if got := DFTBin(e, nil, 1); got != (Complex{}) {
		t.Errorf("empty signal = %+v", got)
	}
}

func TestRotateComplex(t *testing.T) {
	e := trig.Trig128
	if got := RotateComplex(e, Complex{1000, 0}, angle.FromDegrees(90)); got != (Complex{0, 1000}) {
		t.Errorf("got %+v, want {0 1000}", got)
	}
	if got := RotateComplex(e, Complex{0, 1000}, angle.FromDegrees(90)); got != (Complex{-1000, 0}) {
		t.Errorf("got %+v, want {-1000 0}", got)
	}
}

func TestProjectile(t *testing.T) {
	e := trig.Trig64
	p := Launch(e, 1000, angle.FromDegrees(45))
	if p.VX != 707 || p.VY != 707 {
		t.Fatalf("Launch = %+v, want vx=vy=707", p)
	}
	if got := ImpactAngle(e, p); got != angle.FromDegrees(45) {
		t.Errorf("launch angle = %d", got)
	}

	for i := 0; i < 1000 && p.Y >= 0; i++ {
		p = Step(p, 10)
	}
	if p.Y >= 0 {
		t.Fatal("projectile never landed")
	}
	if !angle.Between(ImpactAngle(e, p), angle.FromDegrees(300), angle.FromDegrees(330)) {
		t.Errorf("impact angle = %d°, want ~314°", angle.ToDegrees(ImpactAngle(e, p)))
	}
}

func TestClarke(t *testing.T) {
	tests := []struct {
		a, b int16
		want AlphaBeta
	}{
		{1000, -500, AlphaBeta{1000, 0}},
		{0, 866, AlphaBeta{0, 1000}},
	}
	for _, tt := range tests {
		if got := Clarke(tt.a, tt.b); got != tt.want {
			t.Errorf("Clarke(%d, %d) = %+v, want %+v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestPark_RoundTrip(t *testing.T) {
	e := trig.Trig128
	for _, theta := range []uint16{0, 1000, 4096, 7000, 12000} {
		ab := AlphaBeta{
			Alpha: int16(1000 * int32(e.Cos(theta)) >> 13),
			Beta:  int16(1000 * int32(e.Sin(theta)) >> 13),
		}
		dq := Park(e, ab, theta)
		if !within(int(dq.D), 1000, 2) || !within(int(dq.Q), 0, 2) {
			t.Errorf("Park(θ=%d) = %+v, want ~{1000 0}", theta, dq)
		}
		back := InversePark(e, dq, theta)
		if !within(int(back.Alpha), int(ab.Alpha), 2) || !within(int(back.Beta), int(ab.Beta), 2) {
			t.Errorf("InversePark(θ=%d) = %+v, want %+v", theta, back, ab)
		}
	}
}

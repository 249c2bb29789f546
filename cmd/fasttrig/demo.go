package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/san-kum/fasttrig/internal/angle"
	"github.com/san-kum/fasttrig/internal/demo"
)

var demoNames = []string{"navigator", "servo", "signal", "physics", "motor"}

var demos = map[string]func() error{
	"navigator": navigatorDemo,
	"servo":     servoDemo,
	"signal":    signalDemo,
	"physics":   physicsDemo,
	"motor":     motorDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	names := demoNames
	if len(args) == 1 {
		if _, ok := demos[args[0]]; !ok {
			return fmt.Errorf("unknown demo: %s (available: %v)", args[0], demoNames)
		}
		names = args[:1]
	}

	for i, name := range names {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("== %s (N=%d) ==\n", name, engine.TableSize())
		if err := demos[name](); err != nil {
			return err
		}
	}
	return nil
}

func navigatorDemo() error {
	nav := demo.NewNavigator(engine)
	target := nav.CalculateTarget(demo.Position{}, demo.Position{X: 1000, Y: 1000})
	fmt.Printf("target heading: %d° (%d units)\n", angle.ToDegrees(target.Heading), target.Heading)
	fmt.Printf("target distance: %d mm\n", target.Distance)

	pos := nav.Move(demo.Position{}, target.Heading, 500)
	fmt.Printf("after moving 500 mm: (%d, %d)\n", pos.X, pos.Y)
	return nil
}

func servoDemo() error {
	arm := demo.NewServoArm(engine, 100, 80)
	joints := demo.JointAngles{Shoulder: angle.FromDegrees(30), Elbow: angle.FromDegrees(45)}
	tip := arm.ForwardKinematics(joints)
	fmt.Printf("shoulder 30°, elbow 45° -> (%d, %d) mm\n", tip.X, tip.Y)

	back, err := arm.InverseKinematics(tip.X, tip.Y)
	if err != nil {
		return err
	}
	fmt.Printf("inverse: shoulder %d°, elbow %d°\n", angle.ToDegrees(back.Shoulder), angle.ToDegrees(back.Elbow))

	if _, err := arm.InverseKinematics(300, 0); err != nil {
		fmt.Printf("(300, 0): %v\n", err)
	}
	return nil
}

func signalDemo() error {
	const n, bin = 64, 4
	wave := demo.SineWave(engine, n, uint16(bin*16384/n))
	fmt.Printf("sine wave, %d samples, %d cycles: %v ...\n", n, bin, wave[:8])

	for _, k := range []int{bin - 1, bin, bin + 1} {
		c := demo.DFTBin(engine, wave, k)
		fmt.Printf("DFT bin %d: %+d %+di\n", k, c.Real, c.Imag)
	}

	z := demo.RotateComplex(engine, demo.Complex{Real: 1000}, angle.FromDegrees(60))
	fmt.Printf("1000 rotated 60°: %d%+di\n", z.Real, z.Imag)
	return nil
}

func physicsDemo() error {
	p := demo.Launch(engine, 200, angle.FromDegrees(45))
	fmt.Printf("launch at 45°: v = (%d, %d), heading %d°\n", p.VX, p.VY, angle.ToDegrees(demo.ImpactAngle(engine, p)))

	ticks := 0
	for p.Y >= 0 && ticks < 10000 {
		p = demo.Step(p, 4)
		ticks++
	}
	impact := demo.ImpactAngle(engine, p)
	fmt.Printf("landed after %d ticks at x=%d, impact %d°\n", ticks, p.X, angle.ToDegrees(impact))

	inArc := angle.Between(impact, angle.FromDegrees(270), angle.FromDegrees(360))
	fmt.Printf("impact falling (270°..360°): %t\n", inArc)
	return nil
}

func motorDemo() error {
	ab := demo.Clarke(1000, -500)
	fmt.Printf("clarke(1000, -500) = α %d, β %d\n", ab.Alpha, ab.Beta)

	theta := angle.FromDegrees(30)
	dq := demo.Park(engine, ab, theta)
	fmt.Printf("park at 30°: d %d, q %d\n", dq.D, dq.Q)

	back := demo.InversePark(engine, dq, theta)
	fmt.Printf("inverse park: α %d, β %d\n", back.Alpha, back.Beta)
	return nil
}

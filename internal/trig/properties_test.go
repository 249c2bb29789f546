package trig_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fasttrig/internal/angle"
	"github.com/san-kum/fasttrig/internal/trig"
)

var _ = Describe("Engine", func() {
	var e *trig.Engine

	BeforeEach(func() {
		e = trig.MustNew(128)
	})

	Describe("Atan2", func() {
		DescribeTable("returns the standard four-quadrant angle",
			func(y, x int16, degrees int) {
				got := angle.ToDegrees(e.Atan2(y, x))
				Expect(angle.Diff(angle.FromDegrees(got), angle.FromDegrees(degrees))).
					To(BeNumerically("~", 0, 46), "atan2(%d, %d) = %d°", y, x, got)
			},
			Entry("first quadrant", int16(1000), int16(1000), 45),
			Entry("second quadrant", int16(1000), int16(-1000), 135),
			Entry("third quadrant", int16(-1000), int16(-1000), 225),
			Entry("fourth quadrant", int16(-1000), int16(1000), 315),
			Entry("positive y axis", int16(1000), int16(0), 90),
			Entry("negative y axis", int16(-1000), int16(0), 270),
			Entry("positive x axis", int16(0), int16(1000), 0),
			Entry("negative x axis", int16(0), int16(-1000), 180),
		)

		It("inverts Tan against the output scale", func() {
			for a := -trig.FullTurn / 6; a <= trig.FullTurn/6; a++ {
				want := uint16(a & trig.AngleMask)
				got := e.Atan2(e.Tan(want), trig.OutputScale)
				Expect(angle.Diff(want, got)).To(BeNumerically("~", 0, 2), "angle %d", want)
			}
		})

		It("returns canonical angles", func() {
			for y := -32768; y <= 32767; y += 1021 {
				for x := -32768; x <= 32767; x += 1531 {
					Expect(e.Atan2(int16(y), int16(x))).To(BeNumerically("<", trig.FullTurn))
				}
			}
		})
	})

	Describe("Atan", func() {
		It("is Atan2 against twice the output scale", func() {
			for v := -32768; v <= 32767; v += 127 {
				Expect(e.Atan(int16(v))).To(Equal(e.Atan2(int16(v), trig.OutputMax)))
			}
		})

		It("tracks atan(v/OutputMax)", func() {
			for v := -32768; v <= 32767; v += 61 {
				want := math.Atan(float64(v)/trig.OutputMax) * trig.FullTurn / (2 * math.Pi)
				got := angle.Diff(0, e.Atan(int16(v)))
				Expect(float64(got)).To(BeNumerically("~", want, 2), "atan(%d)", v)
			}
		})
	})

	Describe("Magnitude", func() {
		DescribeTable("matches Pythagorean triples within 1%",
			func(x, y int32) {
				exact := math.Hypot(float64(x), float64(y))
				Expect(float64(e.Magnitude(x, y))).To(BeNumerically("~", exact, exact*0.01))
			},
			Entry("3-4-5", int32(3000), int32(4000)),
			Entry("5-12-13", int32(5000), int32(12000)),
			Entry("8-15-17", int32(8000), int32(15000)),
			Entry("mixed signs", int32(-8000), int32(15000)),
		)
	})

	Describe("special angles", func() {
		DescribeTable("sin and cos within 0.01",
			func(degrees int, wantSin, wantCos float64) {
				a := angle.FromDegrees(degrees)
				s, c := e.SinCos(a)
				Expect(float64(s)/trig.OutputScale).To(BeNumerically("~", wantSin, 0.01))
				Expect(float64(c)/trig.OutputScale).To(BeNumerically("~", wantCos, 0.01))
			},
			Entry("0°", 0, 0.0, 1.0),
			Entry("30°", 30, 0.5, 0.866),
			Entry("45°", 45, 0.707, 0.707),
			Entry("60°", 60, 0.866, 0.5),
			Entry("90°", 90, 1.0, 0.0),
			Entry("120°", 120, 0.866, -0.5),
			Entry("135°", 135, 0.707, -0.707),
			Entry("150°", 150, 0.5, -0.866),
			Entry("180°", 180, 0.0, -1.0),
			Entry("210°", 210, -0.5, -0.866),
			Entry("225°", 225, -0.707, -0.707),
			Entry("240°", 240, -0.866, -0.5),
			Entry("270°", 270, -1.0, 0.0),
			Entry("300°", 300, -0.866, 0.5),
			Entry("315°", 315, -0.707, 0.707),
			Entry("330°", 330, -0.5, 0.866),
			Entry("360°", 360, 0.0, 1.0),
		)
	})

	Describe("inverse functions", func() {
		It("round-trips asin through sin", func() {
			for v := -8192; v <= 8192; v += 500 {
				Expect(int(e.Sin(e.Asin(int16(v))))).To(BeNumerically("~", v, 99))
			}
		})

		It("keeps asin + acos at a quarter turn", func() {
			for v := -8192; v <= 8192; v += 500 {
				sum := (int(e.Asin(int16(v))) + int(e.Acos(int16(v)))) & trig.AngleMask
				Expect(sum).To(BeNumerically("~", trig.QuarterTurn, 10))
			}
		})

		It("keeps acos in [0, π]", func() {
			for v := -8192; v <= 8192; v += 64 {
				Expect(e.Acos(int16(v))).To(BeNumerically("<=", trig.AngleMax))
			}
		})
	})

	Describe("table resolution", func() {
		It("rejects sizes that are not a power of two", func() {
			_, err := trig.New(96)
			Expect(err).To(MatchError(trig.ErrTableSize))
		})

		It("reports its footprint", func() {
			Expect(e.TableSize()).To(Equal(128))
			Expect(e.TableMemory()).To(Equal(768))
		})

		It("never gets worse at 45° as the table grows", func() {
			want := math.Sqrt2 / 2
			var errs []float64
			for _, n := range []int{8, 16, 32, 64, 128, 256} {
				s := trig.MustNew(n).Sin(angle.FromDegrees(45))
				errs = append(errs, math.Abs(float64(s)/trig.OutputScale-want))
			}
			for i := 1; i < len(errs); i++ {
				Expect(errs[i]).To(BeNumerically("<=", errs[i-1]))
			}
		})
	})
})

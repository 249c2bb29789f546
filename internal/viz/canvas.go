package viz

import (
	"strings"

	"github.com/san-kum/fasttrig/internal/trig"
	"github.com/san-kum/fasttrig/internal/vector"
)

// Braille cells hold 2x4 dots:
//
//	1 4
//	2 5
//	3 6
//	7 8
//
// Unicode offset 0x2800.
const brailleBase = 0x2800

var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a character grid addressed in sub-pixels, (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

func (c *Canvas) SubWidth() int  { return c.Width * 2 }
func (c *Canvas) SubHeight() int { return c.Height * 4 }

func (c *Canvas) cell(x, y int) (row, col int, bit rune, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, 0, false
	}
	col, row = x/2, y/4
	if col >= c.Width || row >= c.Height {
		return 0, 0, 0, false
	}
	return row, col, pixelMap[y%4][x%2], true
}

// Set turns on the sub-pixel at (x, y). Out of range points are ignored.
func (c *Canvas) Set(x, y int) {
	if row, col, bit, ok := c.cell(x, y); ok {
		c.Grid[row][col] |= bit
	}
}

func (c *Canvas) Unset(x, y int) {
	if row, col, bit, ok := c.cell(x, y); ok {
		c.Grid[row][col] &^= bit
	}
}

// IsSet reports whether the sub-pixel at (x, y) is on.
func (c *Canvas) IsSet(x, y int) bool {
	row, col, bit, ok := c.cell(x, y)
	return ok && c.Grid[row][col]&bit != 0
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBase
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawCircle traces a circle of radius r around (cx, cy) with segments
// chords, placing the vertices with the engine. Screen y grows downward.
func (c *Canvas) DrawCircle(e *trig.Engine, cx, cy, r, segments int) {
	if segments < 3 {
		segments = 3
	}
	px, py := c.polar(e, cx, cy, r, 0)
	for i := 1; i <= segments; i++ {
		a := uint16(i * trig.FullTurn / segments)
		x, y := c.polar(e, cx, cy, r, a)
		c.DrawLine(px, py, x, y)
		px, py = x, y
	}
}

// DrawRay draws a line from (cx, cy) of length r at angle a.
func (c *Canvas) DrawRay(e *trig.Engine, cx, cy, r int, a uint16) (x, y int) {
	x, y = c.polar(e, cx, cy, r, a)
	c.DrawLine(cx, cy, x, y)
	return x, y
}

func (c *Canvas) polar(e *trig.Engine, cx, cy, r int, a uint16) (int, int) {
	v := vector.FromPolar(e, vector.Polar{Angle: a, Magnitude: int16(r)})
	return cx + int(v.X), cy - int(v.Y)
}

// PlotSeries draws ys left to right scaled into [lo, hi], joining samples
// with lines.
func (c *Canvas) PlotSeries(ys []float64, lo, hi float64) {
	if len(ys) == 0 || c.Width == 0 || c.Height == 0 {
		return
	}
	if hi == lo {
		hi = lo + 1
	}
	w, h := c.SubWidth(), c.SubHeight()
	toY := func(v float64) int {
		return h - 1 - int((v-lo)/(hi-lo)*float64(h-1)+0.5)
	}

	px, py := 0, toY(ys[0])
	for x := 0; x < w; x++ {
		i := x * len(ys) / w
		y := toY(ys[i])
		c.DrawLine(px, py, x, y)
		px, py = x, y
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

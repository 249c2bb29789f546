package export

import (
	"strings"
	"testing"

	"github.com/san-kum/fasttrig/internal/viz"
)

func TestCanvasToSVG(t *testing.T) {
	if CanvasToSVG(nil, 4) != "" {
		t.Error("nil canvas should render nothing")
	}

	c := viz.NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	svg := CanvasToSVG(c, 10)

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("not an SVG document")
	}
	if n := strings.Count(svg, "<circle"); n != 2 {
		t.Errorf("expected 2 dots, got %d", n)
	}
	if !strings.Contains(svg, `cx="5.0" cy="5.0"`) || !strings.Contains(svg, `cx="35.0" cy="35.0"`) {
		t.Errorf("dots at wrong positions:\n%s", svg)
	}
	if !strings.Contains(svg, `width="40" height="40"`) {
		t.Error("wrong document size")
	}
}

func TestSeriesToSVG(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	svg := SeriesToSVG([]Series{
		{Name: "sin", X: xs, Y: []float64{0, 1, 0, -1}},
		{Name: "err", Stroke: "#ff0000", X: xs, Y: []float64{0.1, 0.2, 0.1, 0}},
		{Name: "short", X: xs[:1], Y: []float64{5}},
	}, 300, 100)

	if n := strings.Count(svg, "<path"); n != 2 {
		t.Errorf("expected 2 paths, got %d", n)
	}
	if !strings.Contains(svg, `stroke="#ff0000"`) || !strings.Contains(svg, `data-name="sin"`) {
		t.Error("series attributes missing")
	}
	if !strings.Contains(svg, "stroke-dasharray") {
		t.Error("expected zero line for data spanning zero")
	}
	if !strings.Contains(svg, "M0.0,") || !strings.Contains(svg, "L300.0,") {
		t.Error("x axis should span the full width")
	}
}

func TestSeriesToSVG_Empty(t *testing.T) {
	if SeriesToSVG(nil, 100, 100) != "" {
		t.Error("expected empty output")
	}
}

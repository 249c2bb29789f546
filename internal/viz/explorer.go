package viz

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/fasttrig/internal/angle"
	"github.com/san-kum/fasttrig/internal/trig"
)

const (
	minStep = 1
	maxStep = trig.QuarterTurn

	circleCols = 24
	circleRows = 12
)

// Explorer steps an angle around the unit circle and shows what each
// engine function returns for it.
type Explorer struct {
	engines []*trig.Engine
	current int
	angle   uint16
	step    int
	theme   int
	history []float64
}

// NewExplorer starts on the engine in engines with e's table size. With no
// engines it uses the built-in presets.
func NewExplorer(e *trig.Engine, engines []*trig.Engine) *Explorer {
	if len(engines) == 0 {
		for _, name := range trig.ListPresets() {
			engines = append(engines, trig.Preset(name))
		}
	}
	x := &Explorer{engines: engines, step: 64}
	for i, other := range engines {
		if e != nil && other.TableSize() == e.TableSize() {
			x.current = i
		}
	}
	return x
}

func (x *Explorer) Engine() *trig.Engine { return x.engines[x.current] }
func (x *Explorer) Angle() uint16        { return x.angle }
func (x *Explorer) Step() int            { return x.step }

func (x *Explorer) Init() tea.Cmd { return nil }

func (x *Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return x, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return x, tea.Quit
	case "right", "l":
		x.rotate(x.step)
	case "left", "h":
		x.rotate(-x.step)
	case "up", "k":
		x.step = min(x.step*2, maxStep)
	case "down", "j":
		x.step = max(x.step/2, minStep)
	case "]":
		if x.current < len(x.engines)-1 {
			x.current++
			x.history = x.history[:0]
		}
	case "[":
		if x.current > 0 {
			x.current--
			x.history = x.history[:0]
		}
	case "t":
		x.theme = (x.theme + 1) % len(Themes)
	case "0":
		x.angle = 0
	}
	return x, nil
}

func (x *Explorer) rotate(delta int) {
	x.angle = uint16((int(x.angle) + delta) & trig.AngleMask)
	s := float64(x.Engine().Sin(x.angle))/trig.OutputScale - math.Sin(angle.ToRadians(x.angle))
	x.history = append(x.history, math.Abs(s))
	if len(x.history) > 64 {
		x.history = x.history[1:]
	}
}

func (x *Explorer) View() string {
	th := Themes[x.theme]
	e := x.Engine()
	title := lipgloss.NewStyle().Bold(true).Foreground(th.Title)
	muted := lipgloss.NewStyle().Foreground(th.Muted)

	c := NewCanvas(circleCols, circleRows)
	cx, cy := c.SubWidth()/2, c.SubHeight()/2
	r := min(cx, cy) - 1
	c.DrawCircle(e, cx, cy, r, 64)
	c.DrawRay(e, cx, cy, r, x.angle)
	circle := lipgloss.NewStyle().Foreground(th.Circle).Render(c.String())

	rad := angle.ToRadians(x.angle)
	sin, cos := e.SinCos(x.angle)
	tan := e.Tan(x.angle)
	back := e.Atan2(sin, cos)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", title.Render(fmt.Sprintf("fasttrig · N=%d · %d bytes", e.TableSize(), e.TableMemory())))
	fmt.Fprintf(&b, "%s\n\n", muted.Render(strings.Repeat("─", 34)))
	fmt.Fprintf(&b, "%s %s\n", Metric("angle", "%5d", x.angle), muted.Render(fmt.Sprintf("(%d°, step %d)", angle.ToDegrees(x.angle), x.step)))
	fmt.Fprintf(&b, "%s %s\n", Metric("sin  ", "%+7.4f", scaled(sin)), errNote(scaled(sin), math.Sin(rad)))
	fmt.Fprintf(&b, "      %s\n", Bar(scaled(sin), 20))
	fmt.Fprintf(&b, "%s %s\n", Metric("cos  ", "%+7.4f", scaled(cos)), errNote(scaled(cos), math.Cos(rad)))
	fmt.Fprintf(&b, "      %s\n", Bar(scaled(cos), 20))
	if tan == trig.TanLimit || tan == -trig.TanLimit {
		fmt.Fprintf(&b, "%s %s\n", Metric("tan  ", "%+7.4f", scaled(tan)), lipgloss.NewStyle().Foreground(th.Warning).Render("saturated"))
	} else {
		fmt.Fprintf(&b, "%s %s\n", Metric("tan  ", "%+7.4f", scaled(tan)), errNote(scaled(tan), math.Tan(rad)))
	}
	fmt.Fprintf(&b, "%s %s\n", Metric("atan2", "%5d", back), muted.Render(fmt.Sprintf("(%+d units)", angle.Diff(x.angle, back))))
	fmt.Fprintf(&b, "\n%s\n%s\n", MetricLabel.Render("|sin error|"), SparklineChart(x.history, 32))

	hints := KeyHint.Render("h/l rotate  j/k step  [/] size  t theme  q quit")
	body := lipgloss.JoinHorizontal(lipgloss.Top, circle, "  ", b.String())
	return Panel.Render(body) + "\n" + hints + "\n"
}

func scaled(v int16) float64 {
	return float64(v) / trig.OutputScale
}

func errNote(got, want float64) string {
	d := got - want
	return ErrorGrade(math.Abs(d), 0.001).Render(fmt.Sprintf("err %+.1e", d))
}

// RunExplorer starts the explorer on e.
func RunExplorer(e *trig.Engine) error {
	_, err := tea.NewProgram(NewExplorer(e, nil), tea.WithAltScreen()).Run()
	return err
}

package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 1)

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#444466"))

	// error grades, see ErrorGrade
	GradeGood = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
	GradeFair = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00"))
	GradePoor = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)

// ErrorGrade colours err against limit: good below a tenth of it, fair up
// to the limit, poor beyond.
func ErrorGrade(err, limit float64) lipgloss.Style {
	switch {
	case err < limit/10:
		return GradeGood
	case err <= limit:
		return GradeFair
	default:
		return GradePoor
	}
}

// Table renders rows under header as aligned columns.
func Table(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	line := func(cells []string, style lipgloss.Style) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			w := 0
			if i < len(widths) {
				w = widths[i]
			}
			parts[i] = style.Width(w).Render(cell)
		}
		return strings.Join(parts, "  ")
	}

	var b strings.Builder
	b.WriteString(line(header, HeaderStyle.BorderBottom(false)))
	b.WriteByte('\n')
	total := 0
	for _, w := range widths {
		total += w + 2
	}
	b.WriteString(Subtle.Render(strings.Repeat("─", max(total-2, 0))))
	b.WriteByte('\n')
	for _, row := range rows {
		b.WriteString(line(row, lipgloss.NewStyle()))
		b.WriteByte('\n')
	}
	return b.String()
}

// Bar renders |v| in [0, 1] as a horizontal bar, marking negative values.
func Bar(v float64, width int) string {
	neg := v < 0
	if neg {
		v = -v
	}
	filled := int(v*float64(width) + 0.5)
	filled = min(max(filled, 0), width)

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	if neg {
		return GradeFair.Render(bar)
	}
	return GradeGood.Render(bar)
}

// SparklineChart renders a mini sparkline from values.
func SparklineChart(values []float64, width int) string {
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	step := max(len(values)/width, 1)

	var result strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		norm := (values[i*step] - lo) / rng
		idx := min(max(int(norm*float64(len(chars)-1)), 0), len(chars)-1)
		result.WriteRune(chars[idx])
	}
	return result.String()
}

// Metric renders a "label value" pair.
func Metric(label string, format string, v any) string {
	return MetricLabel.Render(label) + " " + MetricValue.Render(fmt.Sprintf(format, v))
}

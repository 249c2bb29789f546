// Package viz renders engine output in the terminal.
//
//   - [Canvas]: Braille sub-pixel canvas used for the unit circle and curve
//     plots
//   - [Explorer]: Bubble Tea program for stepping an angle around the circle
//     and comparing engine results with float64 math
//   - lipgloss styles and themes shared with the CLI tables
//
// # Key Bindings
//
//	h/l, ←/→ - Rotate by the current step
//	j/k, ↓/↑ - Halve/double the step
//	[/]      - Previous/next table size
//	t        - Cycle themes
//	q        - Quit
package viz

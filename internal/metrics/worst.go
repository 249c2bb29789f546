package metrics

import "math"

// WorstCase records the input at which the largest error occurred. Value
// returns that input; Error returns the error itself.
type WorstCase struct {
	name  string
	input float64
	err   float64
	seen  bool
}

func NewWorstCase() *WorstCase {
	return &WorstCase{name: WorstInput}
}

func (w *WorstCase) Name() string { return w.name }

func (w *WorstCase) Observe(x, got, want float64) {
	d := math.Abs(got - want)
	if !w.seen || d > w.err {
		w.input, w.err, w.seen = x, d, true
	}
}

func (w *WorstCase) Value() float64 { return w.input }

func (w *WorstCase) Error() float64 { return w.err }

func (w *WorstCase) Reset() {
	w.input, w.err, w.seen = 0, 0, false
}

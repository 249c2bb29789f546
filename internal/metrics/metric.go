package metrics

// Metric accumulates the error of an approximation over a sweep. Observe is
// called once per sample with the input, the approximated value and the
// reference, all in real units.
type Metric interface {
	Name() string
	Observe(x, got, want float64)
	Value() float64
	Reset()
}

// Names of the standard metrics.
const (
	MaxAbs     = "max_abs_error"
	MeanAbs    = "mean_abs_error"
	RMS        = "rms_error"
	WorstInput = "worst_input"
)

// Standard returns a fresh set of the error metrics reported for each
// function.
func Standard() []Metric {
	return []Metric{
		NewMaxAbsError(),
		NewMeanAbsError(),
		NewRMSError(),
		NewWorstCase(),
	}
}

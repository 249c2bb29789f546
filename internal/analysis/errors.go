package analysis

import "errors"

var (
	// ErrUnknownFunction indicates a function name Sweep does not evaluate.
	ErrUnknownFunction = errors.New("analysis: unknown function")

	// ErrStep indicates a non-positive sweep step.
	ErrStep = errors.New("analysis: sweep step must be positive")

	// ErrSamples indicates a tone length that is not a power of two.
	ErrSamples = errors.New("analysis: sample count must be a power of two >= 8")
)

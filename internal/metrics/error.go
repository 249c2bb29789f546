package metrics

import "math"

type MaxAbsError struct {
	name string
	max  float64
}

func NewMaxAbsError() *MaxAbsError {
	return &MaxAbsError{name: MaxAbs}
}

func (m *MaxAbsError) Name() string { return m.name }

func (m *MaxAbsError) Observe(x, got, want float64) {
	m.max = math.Max(m.max, math.Abs(got-want))
}

func (m *MaxAbsError) Value() float64 { return m.max }

func (m *MaxAbsError) Reset() { m.max = 0 }

type MeanAbsError struct {
	name    string
	sum     float64
	samples int
}

func NewMeanAbsError() *MeanAbsError {
	return &MeanAbsError{name: MeanAbs}
}

func (m *MeanAbsError) Name() string { return m.name }

func (m *MeanAbsError) Observe(x, got, want float64) {
	m.sum += math.Abs(got - want)
	m.samples++
}

func (m *MeanAbsError) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanAbsError) Reset() {
	m.sum = 0
	m.samples = 0
}

type RMSError struct {
	name    string
	sumSq   float64
	samples int
}

func NewRMSError() *RMSError {
	return &RMSError{name: RMS}
}

func (r *RMSError) Name() string { return r.name }

func (r *RMSError) Observe(x, got, want float64) {
	d := got - want
	r.sumSq += d * d
	r.samples++
}

func (r *RMSError) Value() float64 {
	if r.samples == 0 {
		return 0
	}
	return math.Sqrt(r.sumSq / float64(r.samples))
}

func (r *RMSError) Reset() {
	r.sumSq = 0
	r.samples = 0
}

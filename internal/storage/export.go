package storage

import (
	"encoding/json"
	"os"

	"github.com/san-kum/fasttrig/internal/analysis"
)

// ExportData is a run with its samples in a single document.
type ExportData struct {
	RunMetadata
	Inputs []float64 `json:"inputs"`
	Got    []float64 `json:"got"`
	Want   []float64 `json:"want"`
}

// ExportJSON writes run runID and its samples to path.
func (s *Store) ExportJSON(runID, path string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	samples, err := s.LoadSamples(runID)
	if err != nil {
		return err
	}

	data := ExportData{
		RunMetadata: *meta,
		Inputs:      make([]float64, len(samples)),
		Got:         make([]float64, len(samples)),
		Want:        make([]float64, len(samples)),
	}
	for i, smp := range samples {
		data.Inputs[i], data.Got[i], data.Want[i] = smp.Input, smp.Got, smp.Want
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Samples rebuilds the analysis samples of an export.
func (d *ExportData) Samples() []analysis.Sample {
	n := min(len(d.Inputs), len(d.Got), len(d.Want))
	out := make([]analysis.Sample, n)
	for i := range out {
		out[i] = analysis.Sample{Input: d.Inputs[i], Got: d.Got[i], Want: d.Want[i]}
	}
	return out
}

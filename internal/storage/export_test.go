package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/fasttrig/internal/analysis"
)

func TestExportJSON(t *testing.T) {
	s := newTestStore(t)
	res := sweep(t, analysis.Atan2)
	id, err := s.Save(res)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "run.json")
	if err := s.ExportJSON(id, path); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		t.Fatal(err)
	}

	if data.ID != id || data.Function != "atan2" {
		t.Errorf("unexpected metadata: %+v", data.RunMetadata)
	}
	got := data.Samples()
	if len(got) != len(res.Samples) {
		t.Fatalf("expected %d samples, got %d", len(res.Samples), len(got))
	}
	for i := range got {
		if got[i] != res.Samples[i] {
			t.Fatalf("sample %d: got %+v, want %+v", i, got[i], res.Samples[i])
		}
	}
}

func TestExportJSON_MissingRun(t *testing.T) {
	s := newTestStore(t)
	if err := s.ExportJSON("nope", filepath.Join(t.TempDir(), "x.json")); err == nil {
		t.Error("expected error for missing run")
	}
}

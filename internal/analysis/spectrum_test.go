package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/fasttrig/internal/trig"
)

func TestAnalyzeSpectrum_Coherent(t *testing.T) {
	tests := []struct {
		engine  *trig.Engine
		minSFDR float64
	}{
		{trig.MustNew(8), 50},
		{trig.Trig32, 75},
		{trig.Trig128, 75},
		{trig.Trig512, 75},
	}

	for _, tt := range tests {
		s, err := AnalyzeSpectrum(tt.engine, 1024, 160)
		if err != nil {
			t.Fatal(err)
		}
		if !s.Coherent {
			t.Error("1024 samples of step 160 should be coherent")
		}
		if s.Peak != 10 {
			t.Errorf("N=%d: expected peak at bin 10, got %d", tt.engine.TableSize(), s.Peak)
		}
		if math.Abs(s.Amplitude-1) > 0.01 {
			t.Errorf("N=%d: expected amplitude ~1, got %f", tt.engine.TableSize(), s.Amplitude)
		}
		if s.SFDR < tt.minSFDR {
			t.Errorf("N=%d: SFDR %.1f dB, want >= %.0f", tt.engine.TableSize(), s.SFDR, tt.minSFDR)
		}
		if s.THD > 1e-3 {
			t.Errorf("N=%d: THD %g", tt.engine.TableSize(), s.THD)
		}
	}
}

func TestAnalyzeSpectrum_Windowed(t *testing.T) {
	s, err := AnalyzeSpectrum(trig.Trig128, 1024, 150)
	if err != nil {
		t.Fatal(err)
	}
	if s.Coherent {
		t.Fatal("step 150 over 1024 samples is not a whole number of cycles")
	}
	if s.Peak != 9 && s.Peak != 10 {
		t.Errorf("expected peak near bin 9.4, got %d", s.Peak)
	}
	if len(s.Bins) != 512 {
		t.Errorf("expected 512 bins, got %d", len(s.Bins))
	}
}

func TestAnalyzeSpectrum_BadLength(t *testing.T) {
	for _, n := range []int{0, 4, 1000} {
		if _, err := AnalyzeSpectrum(trig.Default, n, 160); !errors.Is(err, ErrSamples) {
			t.Errorf("samples=%d: expected ErrSamples, got %v", n, err)
		}
	}
}

func TestSpectrum_DB(t *testing.T) {
	s := &Spectrum{Bins: []float64{0, 1, 0.1}}
	db := s.DB()
	want := []float64{-160, 0, -20}
	for i := range want {
		if math.Abs(db[i]-want[i]) > 1e-9 {
			t.Errorf("bin %d: %f dB, want %f", i, db[i], want[i])
		}
	}
}

func TestFoldBin(t *testing.T) {
	tests := []struct{ k, n, want int }{
		{10, 64, 10},
		{32, 64, 32},
		{40, 64, 24},
		{70, 64, 6},
	}
	for _, tt := range tests {
		if got := foldBin(tt.k, tt.n); got != tt.want {
			t.Errorf("foldBin(%d, %d) = %d, want %d", tt.k, tt.n, got, tt.want)
		}
	}
}

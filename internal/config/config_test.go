package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/fasttrig/internal/trig"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.TableSize != 128 {
		t.Errorf("expected table size 128, got %d", cfg.TableSize)
	}
	if cfg.Sweep.Workers <= 0 {
		t.Error("workers should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"non power of two", func(c *Config) { c.TableSize = 100 }, trig.ErrTableSize},
		{"too small", func(c *Config) { c.TableSize = 4 }, trig.ErrTableSize},
		{"zero step", func(c *Config) { c.Sweep.Step = 0 }, ErrSweepStep},
		{"zero plot width", func(c *Config) { c.Plot.Width = 0 }, ErrPlotSize},
		{"odd samples", func(c *Config) { c.Wave.Samples = 1000 }, ErrSamples},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestValidate_Preset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TableSize = 0
	cfg.Preset = "precise"
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset should override table size: %v", err)
	}

	cfg.Preset = "nonexistent"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestEngine(t *testing.T) {
	cfg := DefaultConfig()
	e, err := cfg.Engine()
	if err != nil {
		t.Fatal(err)
	}
	if e != trig.Trig128 {
		t.Error("expected shared Trig128 engine")
	}

	cfg.TableSize = 1024
	e, err = cfg.Engine()
	if err != nil {
		t.Fatal(err)
	}
	if e.TableSize() != 1024 {
		t.Errorf("expected size 1024, got %d", e.TableSize())
	}

	cfg.Preset = "compact"
	e, _ = cfg.Engine()
	if e != trig.Trig64 {
		t.Error("preset should select Trig64")
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fasttrig.yaml")

	cfg := DefaultConfig()
	cfg.TableSize = 256
	cfg.Plot.Height = 30
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.TableSize != 256 || loaded.Plot.Height != 30 {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("table_size: 64\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TableSize != 64 {
		t.Errorf("expected 64, got %d", cfg.TableSize)
	}
	if cfg.Wave.Samples != DefaultSamples {
		t.Errorf("expected default samples, got %d", cfg.Wave.Samples)
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("table_size: 100\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, trig.ErrTableSize) {
		t.Errorf("expected ErrTableSize, got %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("games")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.TableSize != 64 {
		t.Errorf("expected table size 64, got %d", cfg.TableSize)
	}

	cfg.TableSize = 8
	if Presets["games"].TableSize != 64 {
		t.Error("GetPreset should return a copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsValid(t *testing.T) {
	for _, name := range ListPresets() {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

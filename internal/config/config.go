package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/san-kum/fasttrig/internal/trig"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTableSize  = 128
	DefaultDataDir    = "./runs"
	DefaultSweepStep  = 1
	DefaultPlotWidth  = 72
	DefaultPlotHeight = 16
	DefaultSamples    = 1024
	DefaultWaveStep   = 160
)

var (
	ErrSweepStep = errors.New("sweep step must be positive")
	ErrPlotSize  = errors.New("plot dimensions must be positive")
	ErrSamples   = errors.New("wave samples must be a power of two")
)

type Config struct {
	TableSize int         `yaml:"table_size"`
	Preset    string      `yaml:"preset,omitempty"`
	DataDir   string      `yaml:"data_dir"`
	Sweep     SweepConfig `yaml:"sweep"`
	Plot      PlotConfig  `yaml:"plot"`
	Wave      WaveConfig  `yaml:"wave"`
}

type SweepConfig struct {
	Step    int `yaml:"step"`
	Workers int `yaml:"workers"`
}

type PlotConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// WaveConfig describes the test tone used for spectrum analysis.
type WaveConfig struct {
	Samples int    `yaml:"samples"`
	Step    uint16 `yaml:"step"`
}

func DefaultConfig() *Config {
	return &Config{
		TableSize: DefaultTableSize,
		DataDir:   DefaultDataDir,
		Sweep: SweepConfig{
			Step:    DefaultSweepStep,
			Workers: runtime.NumCPU(),
		},
		Plot: PlotConfig{
			Width:  DefaultPlotWidth,
			Height: DefaultPlotHeight,
		},
		Wave: WaveConfig{
			Samples: DefaultSamples,
			Step:    DefaultWaveStep,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the table size, or the engine preset when one is named.
func (c *Config) Validate() error {
	if c.Preset != "" {
		if trig.Preset(c.Preset) == nil {
			return fmt.Errorf("unknown engine preset %q", c.Preset)
		}
	} else if !trig.ValidTableSize(c.TableSize) {
		return &trig.TableSizeError{Size: c.TableSize}
	}
	if c.Sweep.Step <= 0 {
		return fmt.Errorf("%w (got %d)", ErrSweepStep, c.Sweep.Step)
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return fmt.Errorf("%w (got %dx%d)", ErrPlotSize, c.Plot.Width, c.Plot.Height)
	}
	if c.Wave.Samples < 2 || c.Wave.Samples&(c.Wave.Samples-1) != 0 {
		return fmt.Errorf("%w (got %d)", ErrSamples, c.Wave.Samples)
	}
	return nil
}

// Engine returns the configured engine. A named preset wins over TableSize.
func (c *Config) Engine() (*trig.Engine, error) {
	if c.Preset != "" {
		if e := trig.Preset(c.Preset); e != nil {
			return e, nil
		}
		return nil, fmt.Errorf("unknown engine preset %q", c.Preset)
	}
	if e := trig.Preset(fmt.Sprint(c.TableSize)); e != nil {
		return e, nil
	}
	return trig.New(c.TableSize)
}

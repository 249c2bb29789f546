package config

import "sort"

// Presets are starting points for typical workloads.
var Presets = map[string]*Config{
	"embedded": {
		TableSize: 32, DataDir: DefaultDataDir,
		Sweep: SweepConfig{Step: 16, Workers: 1},
		Plot:  PlotConfig{Width: 48, Height: 10},
		Wave:  WaveConfig{Samples: 256, Step: 512},
	},
	"games": {
		TableSize: 64, DataDir: DefaultDataDir,
		Sweep: SweepConfig{Step: 4, Workers: 4},
		Plot:  PlotConfig{Width: DefaultPlotWidth, Height: DefaultPlotHeight},
		Wave:  WaveConfig{Samples: 512, Step: 256},
	},
	"motor": {
		TableSize: 128, DataDir: DefaultDataDir,
		Sweep: SweepConfig{Step: 1, Workers: 4},
		Plot:  PlotConfig{Width: DefaultPlotWidth, Height: DefaultPlotHeight},
		Wave:  WaveConfig{Samples: 1024, Step: 64},
	},
	"audio": {
		TableSize: 256, DataDir: DefaultDataDir,
		Sweep: SweepConfig{Step: 1, Workers: 8},
		Plot:  PlotConfig{Width: 96, Height: 20},
		Wave:  WaveConfig{Samples: 4096, Step: 160},
	},
	"robotics": {
		TableSize: 512, DataDir: DefaultDataDir,
		Sweep: SweepConfig{Step: 1, Workers: 8},
		Plot:  PlotConfig{Width: DefaultPlotWidth, Height: DefaultPlotHeight},
		Wave:  WaveConfig{Samples: 1024, Step: 160},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

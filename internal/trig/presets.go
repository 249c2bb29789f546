package trig

import (
	"sort"
	"strconv"
)

// Fixed-resolution engines, generated at package init.
var (
	Trig32  = MustNew(32)  // 192 bytes
	Trig64  = MustNew(64)  // 384 bytes
	Trig128 = MustNew(128) // 768 bytes
	Trig256 = MustNew(256) // 1536 bytes
	Trig512 = MustNew(512) // 3072 bytes

	Default = Trig128
)

var presets = map[string]*Engine{
	"ultra-compact": Trig32,
	"compact":       Trig64,
	"balanced":      Trig128,
	"precise":       Trig256,
	"very-precise":  Trig512,
}

// Preset returns a shared engine by preset name ("balanced") or by size
// ("128"). Unknown names return nil.
func Preset(name string) *Engine {
	if e, ok := presets[name]; ok {
		return e
	}
	n, err := strconv.Atoi(name)
	if err != nil {
		return nil
	}
	for _, e := range presets {
		if e.n == n {
			return e
		}
	}
	return nil
}

// ListPresets returns the preset names ordered by table size.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return presets[names[i]].n < presets[names[j]].n
	})
	return names
}

// Snapshot is a copy of an engine's tables.
type Snapshot struct {
	Size int      `json:"size" yaml:"size"`
	Sine []int16  `json:"sine" yaml:"sine"`
	Atan []uint16 `json:"atan" yaml:"atan"`
	Asin []uint16 `json:"asin" yaml:"asin"`
}

// Tables returns copies of the generated tables.
func (e *Engine) Tables() Snapshot {
	s := Snapshot{
		Size: e.n,
		Sine: make([]int16, e.n),
		Atan: make([]uint16, e.n),
		Asin: make([]uint16, e.n),
	}
	copy(s.Sine, e.t.sine)
	copy(s.Atan, e.t.atan)
	copy(s.Asin, e.t.asin)
	return s
}

package prefabs

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/saccade/sequence"
)

// LoadSizeCurve compiles a tengo script that reads `cycle` and `max_cycles`
// and assigns `size`. The script is evaluated once per cycle up front, so a
// script error surfaces here rather than mid-animation.
func LoadSizeCurve(name string, maxCycles int) (sequence.SizeCurve, error) {
	src, err := LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("load script: %w", err)
	}
	return CompileSizeCurve(src, maxCycles)
}

// CompileSizeCurve evaluates src for every cycle in [0, maxCycles).
func CompileSizeCurve(src []byte, maxCycles int) (sequence.SizeCurve, error) {
	script := tengo.NewScript(src)
	_ = script.Add("cycle", 0)
	_ = script.Add("max_cycles", maxCycles)
	_ = script.Add("size", 0.0)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	table := make([]float64, max(1, maxCycles))
	for i := range table {
		if err := compiled.Set("cycle", i); err != nil {
			return nil, err
		}
		if err := compiled.Run(); err != nil {
			return nil, fmt.Errorf("run cycle %d: %w", i, err)
		}
		v := compiled.Get("size")
		if v.ValueType() != "float" && v.ValueType() != "int" {
			return nil, fmt.Errorf("cycle %d: size is %s, want a number", i, v.ValueType())
		}
		table[i] = v.Float()
	}

	return func(cycle, n int) float64 {
		if cycle < 0 || cycle >= len(table) || n != maxCycles {
			return sequence.LinearSizeCurve(cycle, n)
		}
		return table[cycle]
	}, nil
}

package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/saccade/sequence"
)

func TestEmbeddedSequenceMatchesDefaults(t *testing.T) {
	spec, err := LoadSequenceSpec("")
	require.NoError(t, err)

	cfg, err := BuildConfig(spec)
	require.NoError(t, err)

	want := sequence.DefaultConfig()
	assert.Equal(t, want.Graph, cfg.Graph)
	assert.Equal(t, want.Timing, cfg.Timing)
	assert.Equal(t, want.MaxCycles, cfg.MaxCycles)
	assert.Equal(t, want.StallWarnAfter, cfg.StallWarnAfter)
	for cycle := 0; cycle < want.MaxCycles; cycle++ {
		assert.InDelta(t, want.SizeCurve(cycle, want.MaxCycles), cfg.SizeCurve(cycle, cfg.MaxCycles), 1e-9, "cycle %d", cycle)
	}

	def := DefaultSequenceSpec()
	assert.Equal(t, def.Eye, spec.Eye)
	assert.Equal(t, def.Regions, spec.Regions)
	assert.Equal(t, def.Edges, spec.Edges)
	assert.Equal(t, "size_curve.tengo", spec.Celebration.SizeScript)
	spec.Celebration.SizeScript = ""
	assert.Equal(t, def.Celebration, spec.Celebration)
	assert.Equal(t, def.Colors.TargetA.NRGBA(), spec.Colors.TargetA.NRGBA())
	assert.Equal(t, def.Colors.EdgeIdle.NRGBA(), spec.Colors.EdgeIdle.NRGBA())
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		h, s, l float64
		alpha   uint8
	}{
		{in: "hsl(210, 100%, 50%)", h: 210, s: 100, l: 50, alpha: 255},
		{in: "hsl(220, 90%, 60%)", h: 220, s: 90, l: 60, alpha: 255},
		{in: "#ff0000", h: 0, s: 100, l: 50, alpha: 255},
		{in: "rgba(59, 130, 246, 0.3)", h: 217, s: 91, l: 60, alpha: 77},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			require.NoError(t, err)
			hsl := c.HSL()
			assert.InDelta(t, tt.h, hsl.H, 1)
			assert.InDelta(t, tt.s, hsl.S, 1)
			assert.InDelta(t, tt.l, hsl.L, 1)
			assert.InDelta(t, float64(tt.alpha), float64(c.NRGBA().A), 1)
		})
	}

	_, err := ParseColor("not a color")
	assert.Error(t, err)
}

func TestCompileSizeCurve(t *testing.T) {
	curve, err := CompileSizeCurve([]byte(`size = 0.5 + float(cycle) * 0.1`), 3)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, curve(0, 3), 1e-9)
	assert.InDelta(t, 0.7, curve(2, 3), 1e-9)
	// out of the evaluated range falls back to linear
	assert.InDelta(t, sequence.LinearSizeCurve(5, 6), curve(5, 6), 1e-9)

	_, err = CompileSizeCurve([]byte(`size = `), 3)
	assert.Error(t, err)

	_, err = CompileSizeCurve([]byte(`size = "big"`), 3)
	assert.Error(t, err)
}

func TestEmbeddedSizeScriptIsLinear(t *testing.T) {
	curve, err := LoadSizeCurve("scripts/size_curve.tengo", 3)
	require.NoError(t, err)
	for cycle, want := range []float64{0.2, 0.6, 1.0} {
		assert.InDelta(t, want, curve(cycle, 3), 1e-9)
	}
}

func TestDiskOverridePartialSpec(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, Dir), 0o755))
	data := []byte("cycles: 5\ntiming:\n  inter_step: 100ms\nedges:\n  - { id: e1, from: pfc, to: sc }\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, Dir, "partial.yaml"), data, 0o644))
	t.Chdir(dir)

	spec, err := LoadSequenceSpec("prefabs/partial.yaml")
	require.NoError(t, err)
	assert.Equal(t, 5, spec.Cycles)
	assert.Equal(t, 100*time.Millisecond, spec.Timing.InterStep)
	assert.Equal(t, 800*time.Millisecond, spec.Timing.Step)
	assert.Len(t, spec.Regions, 6)
	require.Len(t, spec.Edges, 1)

	cfg, err := BuildConfig(spec)
	require.NoError(t, err)
	assert.Equal(t, []string{"pfc", "sc"}, cfg.Graph.ReferencedRegions())

	_, ok := ModTime("partial.yaml")
	assert.True(t, ok)
}

func TestLoadSequenceSpecErrors(t *testing.T) {
	_, err := LoadSequenceSpec("missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prefabs: load missing.yaml")

	spec := DefaultSequenceSpec()
	spec.Timing.InterStep = 0
	_, err = BuildConfig(&spec)
	assert.ErrorIs(t, err, sequence.ErrInvalidTiming)

	_, err = BuildConfig(nil)
	assert.Error(t, err)
}

func TestBrokenSizeScriptFallsBack(t *testing.T) {
	spec := DefaultSequenceSpec()
	spec.Celebration.SizeScript = "does_not_exist.tengo"
	cfg, err := BuildConfig(&spec)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, cfg.SizeCurve(1, 3), 1e-9)
}

func TestCleanPaths(t *testing.T) {
	assert.Equal(t, "sequence.yaml", cleanPrefabPath("prefabs/sequence.yaml"))
	assert.Equal(t, "scripts/a.tengo", cleanScriptPath("a.tengo"))
	assert.Equal(t, "scripts/a.tengo", cleanScriptPath("prefabs/scripts/a.tengo"))
	assert.Equal(t, "scripts/a.tengo", cleanScriptPath("scripts/a.tengo"))
}

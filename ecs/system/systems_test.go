package system

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/saccade/common"
	"github.com/milk9111/saccade/ecs"
	"github.com/milk9111/saccade/ecs/component"
	"github.com/milk9111/saccade/ecs/entity"
	"github.com/milk9111/saccade/prefabs"
	"github.com/milk9111/saccade/sequence"
)

// staticScene is a world whose snapshot is set by hand, without a controller.
func staticScene(t *testing.T, snap sequence.Snapshot) (*ecs.World, *component.Sequence) {
	t.Helper()
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	seq := &component.Sequence{Snapshot: snap}
	require.NoError(t, ecs.Add(w, e, component.SequenceComponent.Kind(), seq))
	palette := entity.PaletteFromSpec(prefabs.DefaultSequenceSpec().Colors)
	require.NoError(t, ecs.Add(w, e, component.PaletteComponent.Kind(), &palette))
	return w, seq
}

// liveScene is a full world driven by a real controller.
func liveScene(t *testing.T, spec prefabs.SequenceSpec) (*ecs.World, *sequence.Controller) {
	t.Helper()
	w := ecs.NewWorld()
	require.NoError(t, entity.NewScene(w, &spec, false))
	e, ok := ecs.First(w, component.SequenceComponent.Kind())
	require.True(t, ok)
	seq, ok := ecs.Get(w, e, component.SequenceComponent.Kind())
	require.True(t, ok)
	return w, seq.Controller
}

func particles(w *ecs.World) []*component.Particle {
	var out []*component.Particle
	ecs.ForEach(w, component.ParticleComponent.Kind(), func(_ ecs.Entity, p *component.Particle) {
		out = append(out, p)
	})
	return out
}

func TestBurstSize(t *testing.T) {
	assert.Equal(t, 44, BurstSize(80, 0.2))
	assert.Equal(t, 70, BurstSize(80, 0.6))
	assert.Equal(t, 96, BurstSize(80, 1.0))
}

func TestCelebrationBurstWithinBounds(t *testing.T) {
	spec := prefabs.DefaultSequenceSpec()
	set := entity.BurstSettings(spec.Celebration)
	origin := cp.Vector{X: 325, Y: 325}

	for seed := uint64(1); seed <= 20; seed++ {
		for _, size := range []float64{0.2, 0.6, 1.0} {
			w, _ := staticScene(t, sequence.Snapshot{
				Phase:             sequence.Celebrate,
				CelebrationActive: true,
				SizeFactor:        size,
				Highlight:         sequence.SideB,
			})
			_, err := entity.NewCelebration(w, spec.Celebration, origin)
			require.NoError(t, err)

			NewCelebrationSystem(rand.New(rand.NewPCG(seed, seed))).Update(w)
			ps := particles(w)
			require.Len(t, ps, BurstSize(80, size))

			for _, p := range ps {
				assert.GreaterOrEqual(t, p.Angle, 0.0)
				assert.Less(t, p.Angle, 2*3.1415927)
				assert.LessOrEqual(t, p.Travel, set.Spread*size)
				assert.GreaterOrEqual(t, p.Radius, set.MinRadius*size-1e-9)
				assert.LessOrEqual(t, p.Radius, (set.MinRadius+set.RadiusRange)*size+1e-9)
				assert.LessOrEqual(t, p.Delay, set.MaxDelay)
				assert.GreaterOrEqual(t, p.Duration, set.MinDuration)
				assert.LessOrEqual(t, p.Duration, set.MinDuration+set.DurationRange)
				assert.GreaterOrEqual(t, p.Saturation, 55.0)
				assert.LessOrEqual(t, p.Saturation, 95.0)
				assert.GreaterOrEqual(t, p.Lightness, 45.0)
				assert.LessOrEqual(t, p.Lightness, 85.0)
			}

			move := NewParticleSystem(50 * time.Millisecond)
			for i := 0; i < 20; i++ {
				move.Update(w)
			}
			ecs.ForEach2(w, component.ParticleComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.Particle, tr *component.Transform) {
				assert.LessOrEqual(t, tr.Vec().Distance(origin), p.Travel+1e-9)
			})
		}
	}
}

func TestCelebrationSameSeedSameBurst(t *testing.T) {
	spec := prefabs.DefaultSequenceSpec()
	burst := func() []component.Particle {
		w, _ := staticScene(t, sequence.Snapshot{Phase: sequence.Celebrate, CelebrationActive: true, SizeFactor: 0.6})
		_, err := entity.NewCelebration(w, spec.Celebration, cp.Vector{})
		require.NoError(t, err)
		NewCelebrationSystem(rand.New(rand.NewPCG(7, 7))).Update(w)
		var out []component.Particle
		for _, p := range particles(w) {
			out = append(out, *p)
		}
		return out
	}
	assert.Equal(t, burst(), burst())
}

func TestCelebrationRegeneratesAndFades(t *testing.T) {
	spec := prefabs.DefaultSequenceSpec()
	w, seq := staticScene(t, sequence.Snapshot{Phase: sequence.Celebrate, CelebrationActive: true, SizeFactor: 0.2})
	ce, err := entity.NewCelebration(w, spec.Celebration, cp.Vector{})
	require.NoError(t, err)

	celebrate := NewCelebrationSystem(rand.New(rand.NewPCG(1, 2)))
	ttl := NewTTLSystem()

	celebrate.Update(w)
	celebrate.Update(w)
	require.Len(t, particles(w), 44)

	seq.Snapshot = sequence.Snapshot{Phase: sequence.MoveToTargetA}
	celebrate.Update(w)
	ps := particles(w)
	require.Len(t, ps, 44)
	for _, p := range ps {
		assert.Equal(t, common.Frames(200*time.Millisecond), p.FadeTotal)
	}

	frames := common.Frames(300 * time.Millisecond)
	for i := 0; i < frames-1; i++ {
		ttl.Update(w)
	}
	assert.Len(t, particles(w), 44)
	ttl.Update(w)
	assert.Empty(t, particles(w))

	seq.Snapshot = sequence.Snapshot{Phase: sequence.Celebrate, CelebrationActive: true, SizeFactor: 1}
	celebrate.Update(w)
	ps = particles(w)
	require.Len(t, ps, 96)
	c, _ := ecs.Get(w, ce, component.CelebrationComponent.Kind())
	assert.Equal(t, 2, c.Generation)
	assert.Equal(t, 2, ps[0].Generation)
}

func TestCelebrationSuppressedWhileEnding(t *testing.T) {
	spec := prefabs.DefaultSequenceSpec()
	w, _ := staticScene(t, sequence.Snapshot{Phase: sequence.End, CelebrationActive: true, SizeFactor: 1})
	_, err := entity.NewCelebration(w, spec.Celebration, cp.Vector{})
	require.NoError(t, err)
	NewCelebrationSystem(rand.New(rand.NewPCG(1, 1))).Update(w)
	assert.Empty(t, particles(w))
}

func TestParticleFadeScalesAlpha(t *testing.T) {
	w := ecs.NewWorld()
	_, err := entity.NewParticle(w, component.Particle{
		Travel:     100,
		Duration:   time.Second,
		FadeTotal:  4,
		FadeFrames: 4,
	})
	require.NoError(t, err)

	sys := NewParticleSystem(100 * time.Millisecond)
	sys.Update(w)
	p := particles(w)[0]
	assert.InDelta(t, (1-0.01)*0.75, p.Alpha, 1e-9)
	for i := 0; i < 3; i++ {
		sys.Update(w)
	}
	assert.Zero(t, p.Alpha)
}

func TestHighlightDrawsAndRetractsEdges(t *testing.T) {
	g := sequence.DefaultGraph()
	snap := sequence.Snapshot{
		Phase:         sequence.LightCircuitA,
		ActiveEdges:   []string{"c1"},
		ActiveRegions: []string{"pfc", "fef"},
		Graph:         g,
		Timing:        sequence.DefaultTiming(),
	}
	w, seq := staticScene(t, snap)
	require.NoError(t, entity.BuildDiagram(w, g))

	edge := func(id string) *component.EdgePath {
		var out *component.EdgePath
		ecs.ForEach(w, component.EdgePathComponent.Kind(), func(_ ecs.Entity, p *component.EdgePath) {
			if p.ID == id {
				out = p
			}
		})
		require.NotNil(t, out, id)
		return out
	}
	region := func(id string) *component.RegionNode {
		var out *component.RegionNode
		ecs.ForEach(w, component.RegionNodeComponent.Kind(), func(_ ecs.Entity, r *component.RegionNode) {
			if r.ID == id {
				out = r
			}
		})
		require.NotNil(t, out, id)
		return out
	}

	sys := NewHighlightSystem(100 * time.Millisecond)
	sys.Update(w)
	assert.InDelta(t, 0.125, edge("c1").Drawn, 1e-9)
	assert.Zero(t, edge("c2").Drawn)
	assert.True(t, region("pfc").Active)
	assert.False(t, region("sef").Active)

	for i := 0; i < 10; i++ {
		sys.Update(w)
	}
	assert.Equal(t, 1.0, edge("c1").Drawn)

	seq.Snapshot.Phase = sequence.MoveToTargetB
	seq.Snapshot.ActiveEdges = nil
	seq.Snapshot.ActiveRegions = nil
	sys.Update(w)
	assert.InDelta(t, 1-100.0/150.0, edge("c1").Drawn, 1e-9)
	assert.False(t, region("pfc").Active)
	sys.Update(w)
	assert.Zero(t, edge("c1").Drawn)
}

func TestHighlightRebuildsOnGraphChange(t *testing.T) {
	g := sequence.DefaultGraph()
	w, seq := staticScene(t, sequence.Snapshot{Phase: sequence.MoveToTargetA, Graph: g, Timing: sequence.DefaultTiming()})
	require.NoError(t, entity.BuildDiagram(w, g))

	sys := NewHighlightSystem(0)
	sys.Update(w)
	assert.Len(t, ecs.Query(w, component.EdgePathComponent.Kind()), 10)

	small := g
	small.Edges = g.Edges[:2]
	seq.Snapshot.Graph = small
	sys.Update(w)
	assert.Len(t, ecs.Query(w, component.EdgePathComponent.Kind()), 2)
	assert.Len(t, ecs.Query(w, component.RegionNodeComponent.Kind()), 6)
}

func TestSequenceSystemPublishesPhaseEvents(t *testing.T) {
	w, ctrl := liveScene(t, prefabs.DefaultSequenceSpec())
	sys := NewSequenceSystem(time.Millisecond)

	sys.Update(w)
	events := w.Events().Drain()
	require.Len(t, events, 1)
	assert.Equal(t, ecs.EventPhaseChanged, events[0].Type)
	assert.Equal(t, component.PhaseChange{To: sequence.MoveToTargetA}, events[0].Data)

	snap, ok := currentSnapshot(w)
	require.True(t, ok)
	assert.Equal(t, sequence.MoveToTargetA, snap.Phase)

	ctrl.EyeMovementComplete()
	sys.Update(w)
	events = w.Events().Drain()
	require.Len(t, events, 1)
	assert.Equal(t, component.PhaseChange{From: sequence.MoveToTargetA, To: sequence.LightCircuitA}, events[0].Data)
	snap, _ = currentSnapshot(w)
	assert.Equal(t, []string{"c1"}, snap.ActiveEdges)
}

func TestEyeSignalsOncePerActivation(t *testing.T) {
	w, ctrl := liveScene(t, prefabs.DefaultSequenceSpec())
	sched := ecs.NewScheduler(NewSequenceSystem(time.Millisecond), NewEyeSystem(time.Millisecond))

	sched.Update(w)
	ignored := 0
	ctrl.OnIgnored(func(sequence.Phase, sequence.Event) { ignored++ })

	eyeEntity, ok := ecs.First(w, component.EyeComponent.Kind())
	require.True(t, ok)
	eye, _ := ecs.Get(w, eyeEntity, component.EyeComponent.Kind())
	assert.Equal(t, 1, eye.Activations)
	assert.Equal(t, 1.0, eye.PupilFrom, "first activation starts from the opposite side")
	assert.Equal(t, -1.0, eye.PupilTo)

	// movement 333ms + pause 100ms, one tick of latency to the controller
	for i := 2; i <= 433; i++ {
		sched.Update(w)
	}
	assert.True(t, eye.Signaled)
	assert.Equal(t, sequence.MoveToTargetA, ctrl.Phase())
	sched.Update(w)
	assert.Equal(t, sequence.LightCircuitA, ctrl.Phase())
	assert.Equal(t, -1.0, eye.PupilX)

	for ctrl.Phase() != sequence.MoveToTargetB {
		sched.Update(w)
	}
	assert.Equal(t, 2, eye.Activations)
	assert.Equal(t, -1.0, eye.PupilFrom)
	assert.Equal(t, 1.0, eye.PupilTo)

	for i := 0; i < 2000; i++ {
		sched.Update(w)
	}
	assert.Zero(t, ignored)
}

func TestRippleCompletesAfterLastRing(t *testing.T) {
	spec := prefabs.DefaultSequenceSpec()
	spec.Cycles = 1
	w, ctrl := liveScene(t, spec)
	sched := ecs.NewScheduler(NewSequenceSystem(time.Millisecond), NewEyeSystem(time.Millisecond))

	for i := 0; i < 20000 && ctrl.Phase() != sequence.EndEffect; i++ {
		sched.Update(w)
	}
	require.Equal(t, sequence.EndEffect, ctrl.Phase())

	eyeEntity, _ := ecs.First(w, component.EyeComponent.Kind())
	eye, _ := ecs.Get(w, eyeEntity, component.EyeComponent.Kind())
	require.True(t, eye.Face)
	require.True(t, eye.Spread)
	require.Len(t, eye.Rings, 5)
	assert.Zero(t, eye.LabelAlpha)

	total := eye.Timing.RippleTotal()
	require.Equal(t, 1480*time.Millisecond, total)

	ticks := int(total / time.Millisecond)
	for i := 0; i < ticks-1; i++ {
		sched.Update(w)
	}
	assert.False(t, eye.RippleSignaled)
	assert.Len(t, eye.Rings, 5)
	assert.Greater(t, eye.Rings[0].Radius, eye.Rings[4].Radius)

	sched.Update(w)
	assert.True(t, eye.RippleSignaled)
	assert.Empty(t, eye.Rings)
	assert.Equal(t, sequence.EndEffect, ctrl.Phase())

	sched.Update(w)
	assert.Equal(t, sequence.MoveToTargetA, ctrl.Phase())
	assert.False(t, eye.Face)
	assert.Zero(t, ctrl.Snapshot().Cycle)
}

func TestTTLSystemDestroysExpired(t *testing.T) {
	w := ecs.NewWorld()
	short := ecs.CreateEntity(w)
	long := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, short, component.TTLComponent.Kind(), &component.TTL{Frames: 1}))
	require.NoError(t, ecs.Add(w, long, component.TTLComponent.Kind(), &component.TTL{Frames: 3}))

	sys := NewTTLSystem()
	sys.Update(w)
	assert.False(t, w.IsAlive(short))
	assert.True(t, w.IsAlive(long))
	sys.Update(w)
	sys.Update(w)
	assert.False(t, w.IsAlive(long))
}

package system

import (
	"time"

	"github.com/milk9111/saccade/common"
	"github.com/milk9111/saccade/ecs"
	"github.com/milk9111/saccade/ecs/component"
	"github.com/milk9111/saccade/sequence"
)

// EyeSystem plays the saccade sub-animation from the snapshot and reports
// completion back to the controller: eye movement once per activation, the
// ending ripple once per spread.
type EyeSystem struct {
	dt time.Duration
}

func NewEyeSystem(dt time.Duration) *EyeSystem {
	if dt <= 0 {
		dt = common.Tick
	}
	return &EyeSystem{dt: dt}
}

func (s *EyeSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	snap, ok := currentSnapshot(w)
	if !ok || snap.Phase == "" {
		return
	}
	ctrl := currentController(w)

	ecs.ForEach2(w, component.EyeComponent.Kind(), component.EyeGeometryComponent.Kind(), func(_ ecs.Entity, eye *component.Eye, geom *component.EyeGeometry) {
		s.updateFace(eye, geom, snap, ctrl)
		if eye.Face {
			return
		}
		s.updateGaze(eye, snap, ctrl)
	})
}

func sideOffset(side sequence.Side) float64 {
	if side == sequence.SideA {
		return -1
	}
	return 1
}

func (s *EyeSystem) updateGaze(eye *component.Eye, snap sequence.Snapshot, ctrl *sequence.Controller) {
	target := snap.EyeTarget
	moving := snap.EyeMoving

	if moving && (!eye.Moving || target != eye.Target) {
		to := sideOffset(target)
		from := eye.PupilX
		if eye.Activations == 0 {
			from = -to
		}
		eye.Activations++
		eye.MoveElapsed = 0
		eye.Signaled = false
		eye.PupilFrom = from
		eye.PupilTo = to
		eye.PupilX = from
	}
	eye.Moving = moving
	eye.Target = target
	eye.PupilY = 0

	if !moving {
		eye.PupilX = sideOffset(target)
		return
	}

	eye.MoveElapsed += s.dt
	t := common.Progress(float64(eye.MoveElapsed), float64(eye.Timing.Movement))
	eye.PupilX = common.Lerp64(eye.PupilFrom, eye.PupilTo, common.EaseInOut(t))

	if !eye.Signaled && eye.MoveElapsed >= eye.Timing.Movement+eye.Timing.Pause {
		eye.Signaled = true
		if ctrl != nil {
			ctrl.EyeMovementComplete()
		}
	}
}

func (s *EyeSystem) updateFace(eye *component.Eye, geom *component.EyeGeometry, snap sequence.Snapshot, ctrl *sequence.Controller) {
	if !snap.ShowCompletionFace {
		if eye.Face {
			eye.Face = false
			eye.Spread = false
			eye.Rings = nil
			eye.SmileProgress = 0
			eye.LabelAlpha = 1
		}
		return
	}

	if !eye.Face {
		eye.Face = true
		eye.FaceElapsed = 0
		eye.Moving = false
	} else {
		eye.FaceElapsed += s.dt
	}
	tm := eye.Timing
	eye.LabelAlpha = 1 - common.Progress(float64(eye.FaceElapsed), float64(tm.LabelFade))
	eye.PupilX = common.Lerp64(eye.PupilX, 0, common.Progress(float64(eye.FaceElapsed), float64(tm.Movement)))
	eye.PupilY = -0.1
	eye.SmileProgress = common.EaseOut(common.Progress(float64(eye.FaceElapsed-tm.SmileDelay()), float64(tm.SmileDraw)))

	if !snap.SpreadEffect {
		eye.Spread = false
		eye.Rings = nil
		return
	}
	if !eye.Spread {
		eye.Spread = true
		eye.SpreadElapsed = 0
		eye.RippleSignaled = false
	} else {
		eye.SpreadElapsed += s.dt
	}
	if eye.RippleSignaled {
		eye.Rings = nil
		return
	}

	eye.Rings = ringsAt(eye.SpreadElapsed, tm, geom)
	if eye.SpreadElapsed >= tm.RippleTotal() {
		eye.RippleSignaled = true
		eye.Rings = nil
		if ctrl != nil {
			ctrl.RippleComplete()
		}
	}
}

// ringsAt lays out every ring of the ripple at the given time since the
// spread started. Rings that have not started yet are invisible.
func ringsAt(elapsed time.Duration, tm component.EyeTiming, geom *component.EyeGeometry) []component.Ring {
	rings := make([]component.Ring, tm.RingCount)
	start := geom.Head * 0.6
	end := geom.Width * 0.75
	for i := range rings {
		local := elapsed - time.Duration(i)*tm.RingDelay
		if local < 0 {
			rings[i] = component.Ring{Radius: start, Stroke: 5}
			continue
		}
		t := common.Progress(float64(local), float64(tm.Ripple))
		rings[i] = component.Ring{
			Radius: common.Lerp64(start, end, common.SpreadEase(t)),
			Alpha:  1 - t,
			Stroke: common.Lerp64(5, 0.5, t),
		}
	}
	return rings
}

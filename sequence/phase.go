package sequence

// Phase identifies a state of the animation controller.
type Phase string

const (
	MoveToTargetA Phase = "move_to_target_a"
	LightCircuitA Phase = "light_circuit_a"
	MoveToTargetB Phase = "move_to_target_b"
	LightCircuitB Phase = "light_circuit_b"
	Celebrate     Phase = "celebrate"
	End           Phase = "end"
	EndEffect     Phase = "end_effect"
)

// Phases lists every phase in loop order.
var Phases = []Phase{
	MoveToTargetA,
	LightCircuitA,
	MoveToTargetB,
	LightCircuitB,
	Celebrate,
	End,
	EndEffect,
}

func (p Phase) String() string { return string(p) }

// MovesEye reports whether the eye is actively travelling in this phase.
func (p Phase) MovesEye() bool {
	return p == MoveToTargetA || p == MoveToTargetB
}

// Illuminates reports whether the circuit sequencer runs in this phase.
func (p Phase) Illuminates() bool {
	return p == LightCircuitA || p == LightCircuitB
}

// ShowsCircuit reports whether regions and edges are drawn in this phase.
func (p Phase) ShowsCircuit() bool {
	switch p {
	case LightCircuitA, LightCircuitB, Celebrate, End, EndEffect:
		return true
	}
	return false
}

// Ending reports whether the phase belongs to the ending sequence.
func (p Phase) Ending() bool {
	return p == End || p == EndEffect
}

// Side is one of the two fixed eye targets.
type Side string

const (
	SideA Side = "A"
	SideB Side = "B"
)

// Opposite returns the other target.
func (s Side) Opposite() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

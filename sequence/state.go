package sequence

import "time"

// activeSet is an insertion-ordered set of ids.
type activeSet struct {
	order []string
	index map[string]struct{}
}

func (s *activeSet) add(id string) bool {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, ok := s.index[id]; ok {
		return false
	}
	s.index[id] = struct{}{}
	s.order = append(s.order, id)
	return true
}

func (s *activeSet) has(id string) bool {
	_, ok := s.index[id]
	return ok
}

func (s *activeSet) reset() {
	s.order = nil
	s.index = nil
}

func (s *activeSet) snapshot() []string {
	if len(s.order) == 0 {
		return nil
	}
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// state holds every field the controller mutates.
type state struct {
	phase             Phase
	epoch             uint64
	version           uint64
	enteredAt         time.Duration
	cycle             int
	allCyclesComplete bool
	progress          int
	celebrating       bool
	sizeFactor        float64
	regions           activeSet
	edges             activeSet
	resets            int
}

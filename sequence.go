package cosmodrift

// Step is one timed action in a Sequence: Delay seconds after the previous
// step fires, Action runs.
type Step struct {
	Delay  float64
	Action func()
}

// Sequence interprets an ordered list of timed steps from the frame tick.
// It replaces chains of nested host timeouts: the whole schedule is plain
// data, executed by a single routine with deterministic ordering relative to
// the rest of the frame.
//
// There is no global sequence manager — owners call Update themselves.
type Sequence struct {
	steps []Step
	index int
	wait  float64
}

// NewSequence creates a Sequence from the given steps. Steps fire in order;
// a zero Delay fires on the first Update after the previous step.
func NewSequence(steps ...Step) *Sequence {
	return &Sequence{steps: steps}
}

// Update advances the sequence by dt seconds, firing every step whose delay
// has elapsed. Multiple steps can fire within a single tick.
func (s *Sequence) Update(dt float64) {
	if s.Done() {
		return
	}
	s.wait += dt
	for s.index < len(s.steps) && s.wait >= s.steps[s.index].Delay {
		s.wait -= s.steps[s.index].Delay
		if a := s.steps[s.index].Action; a != nil {
			a()
		}
		s.index++
	}
}

// Done reports whether every step has fired.
func (s *Sequence) Done() bool {
	return s.index >= len(s.steps)
}

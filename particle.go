package cosmodrift

// Alpha envelope breakpoints shared by every transient effect. The triangular
// fade-in / hold / fade-out profile must be identical across effect types for
// visual parity, so the breakpoints live here and nowhere else.
const (
	envelopeFadeInEnd    = 0.2
	envelopeFadeOutBegin = 0.8
)

// Envelope returns the canonical transient-effect alpha profile for a
// normalized progress p: a linear ramp 0→1 for p < 0.2, a hold at 1 for
// 0.2 ≤ p < 0.8, and a linear ramp 1→0 for p ≥ 0.8. Out-of-range progress
// clamps to 0.
func Envelope(p float64) float64 {
	switch {
	case p <= 0:
		return 0
	case p < envelopeFadeInEnd:
		return p / envelopeFadeInEnd
	case p < envelopeFadeOutBegin:
		return 1
	case p < 1:
		return (1 - p) / (1 - envelopeFadeOutBegin)
	default:
		return 0
	}
}

// Slot is one reusable unit of capacity in a fixed-size particle pool: the
// renderable state of a single transient effect particle. Slots are owned
// exclusively by the system that acquired them and are never shared.
type Slot struct {
	Position Vec3
	Velocity Vec3
	Size     float64
	Alpha    float64
	Active   bool
}

// Pool is a fixed-capacity slot pool with CPU-side bookkeeping. Acquisition
// never blocks and never errors: when the pool is exhausted, Acquire returns
// nil and the caller silently skips the effect.
type Pool struct {
	slots  []Slot
	active int
}

// NewPool creates a Pool with a preallocated slot array.
func NewPool(capacity int) *Pool {
	if capacity <= 0 {
		capacity = 32
	}
	return &Pool{slots: make([]Slot, capacity)}
}

// Cap returns the pool capacity.
func (p *Pool) Cap() int {
	return len(p.slots)
}

// ActiveCount returns the number of currently acquired slots.
func (p *Pool) ActiveCount() int {
	return p.active
}

// Acquire returns a free slot marked active, or nil when the pool is at
// capacity. The returned slot is zeroed apart from the Active flag.
func (p *Pool) Acquire() *Slot {
	for i := range p.slots {
		if !p.slots[i].Active {
			p.slots[i] = Slot{Active: true}
			p.active++
			return &p.slots[i]
		}
	}
	return nil
}

// Release returns a slot to the pool: alpha forced to zero, active flag
// cleared. Releasing an already-inactive slot is a no-op.
func (p *Pool) Release(s *Slot) {
	if s == nil || !s.Active {
		return
	}
	s.Alpha = 0
	s.Active = false
	p.active--
}

// EachActive calls fn for every active slot. Intended for render submission;
// fn must not retain the pointer past the call.
func (p *Pool) EachActive(fn func(*Slot)) {
	for i := range p.slots {
		if p.slots[i].Active {
			fn(&p.slots[i])
		}
	}
}

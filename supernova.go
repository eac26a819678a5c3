package cosmodrift

import (
	"math"
	"math/rand/v2"
	"time"
)

// SupernovaPhase identifies where the dramatic event is in its lifecycle.
type SupernovaPhase uint8

const (
	PhaseDormant SupernovaPhase = iota
	PhaseGrowing
	PhasePeak
	PhaseFading
)

// Phase boundaries over normalized event progress.
const (
	novaGrowEnd   = 0.3
	novaFadeBegin = 0.7
)

// SupernovaConfig tunes the one-shot dramatic event.
type SupernovaConfig struct {
	// Position is the fixed world anchor of the event.
	Position Vec3
	// BaseRadius is the visual radius at scale 1.
	BaseRadius float64
	// MaxScale is the peak radius multiplier reached at the end of growth.
	MaxScale float64
	// Duration is the full event length in seconds.
	Duration float64
	// MinElapsed is the session time that must pass before the trigger is
	// ever evaluated.
	MinElapsed float64
	// TriggerChance is the per-tick Bernoulli success probability once
	// MinElapsed has passed. Expected trigger time is geometric over ticks.
	TriggerChance float64
	// PeakIntensity is the light intensity reached at the end of growth.
	PeakIntensity float64
	// PulseRate is the angular rate, in radians per second, of the
	// sinusoidal intensity pulse during the peak phase.
	PulseRate float64
	// Burst configures the companion shockwave spawned on trigger.
	Burst ShockwaveConfig
}

// DefaultSupernovaConfig returns the tuning used by the demo journey.
func DefaultSupernovaConfig() SupernovaConfig {
	return SupernovaConfig{
		Position:      Vec3{-220, 60, -180},
		BaseRadius:    3,
		MaxScale:      100,
		Duration:      25,
		MinElapsed:    60,
		TriggerChance: 0.001,
		PeakIntensity: 3,
		PulseRate:     6,
		Burst:         DefaultShockwaveConfig(),
	}
}

// Supernova is the timed event controller for the dramatic one-shot event.
// It triggers probabilistically after a session-time threshold, runs through
// growth, peak, and fade phases, then tears itself down. Strictly one shot
// per session: once the triggered guard is set it is never cleared.
type Supernova struct {
	cfg      SupernovaConfig
	rng      *rand.Rand
	notifier Notifier

	triggered bool // one-shot guard, permanent for the session
	active    bool
	startTime float64
	phase     SupernovaPhase

	scale     float64
	intensity float64
	burst     *ShockwaveBurst
}

// NewSupernova creates a dormant controller. notifier may be nil.
func NewSupernova(cfg SupernovaConfig, rng *rand.Rand, notifier Notifier) *Supernova {
	if cfg.Duration <= 0 {
		cfg.Duration = 25
	}
	if cfg.MaxScale <= 0 {
		cfg.MaxScale = 100
	}
	return &Supernova{cfg: cfg, rng: rng, notifier: notifier, phase: PhaseDormant}
}

// Phase returns the current lifecycle phase.
func (n *Supernova) Phase() SupernovaPhase { return n.phase }

// Triggered reports whether the event has fired this session (it can fire at
// most once).
func (n *Supernova) Triggered() bool { return n.triggered }

// Active reports whether the event is currently running.
func (n *Supernova) Active() bool { return n.active }

// Position returns the fixed world anchor of the event.
func (n *Supernova) Position() Vec3 { return n.cfg.Position }

// Radius returns the current visual radius (BaseRadius × scale); 0 while
// dormant.
func (n *Supernova) Radius() float64 { return n.cfg.BaseRadius * n.scale }

// Intensity returns the current light intensity; 0 while dormant.
func (n *Supernova) Intensity() float64 { return n.intensity }

// Burst returns the companion shockwave, or nil when none is in flight.
func (n *Supernova) Burst() *ShockwaveBurst { return n.burst }

// Update advances the controller. The trigger is evaluated only while the
// camera is autonomous, but an event already in flight keeps running through
// mode switches.
func (n *Supernova) Update(dt, elapsed float64, mode CameraMode) {
	if n.burst != nil {
		n.burst.Update(dt)
		if n.burst.Done() {
			n.burst = nil
		}
	}

	if !n.active {
		if n.triggered || mode != ModeAutonomous {
			return
		}
		if elapsed <= n.cfg.MinElapsed {
			return
		}
		if !Bernoulli(n.rng, n.cfg.TriggerChance) {
			return
		}
		n.trigger(elapsed)
		return
	}

	p := (elapsed - n.startTime) / n.cfg.Duration
	switch {
	case p >= 1:
		n.teardown()
	case p < novaGrowEnd:
		n.phase = PhaseGrowing
		q := p / novaGrowEnd
		n.scale = lerp(1, n.cfg.MaxScale, q)
		n.intensity = lerp(0, n.cfg.PeakIntensity, q)
	case p < novaFadeBegin:
		n.phase = PhasePeak
		n.scale = n.cfg.MaxScale
		// Pulse around a midpoint to simulate flickering light.
		mid := n.cfg.PeakIntensity * 0.8
		amp := n.cfg.PeakIntensity * 0.2
		n.intensity = mid + amp*math.Sin((elapsed-n.startTime)*n.cfg.PulseRate)
	default:
		n.phase = PhaseFading
		q := (p - novaFadeBegin) / (1 - novaFadeBegin)
		n.scale = lerp(n.cfg.MaxScale, 0, q)
		n.intensity = lerp(n.cfg.PeakIntensity*0.8, 0, q)
	}
}

// trigger fires the event: sets the permanent guard, spawns the companion
// burst at the anchor, and pushes the user-facing notification.
func (n *Supernova) trigger(elapsed float64) {
	n.triggered = true
	n.active = true
	n.startTime = elapsed
	n.phase = PhaseGrowing
	n.scale = 1
	n.intensity = 0
	n.burst = NewShockwaveBurst(n.cfg.Burst, n.cfg.Position, n.rng)
	if n.notifier != nil {
		n.notifier.Notify(Notification{
			Title:    "Supernova!",
			Body:     "A distant star has reached the end of its life.",
			Duration: 8 * time.Second,
		})
	}
}

// teardown releases all owned visuals and returns to Dormant. The triggered
// guard stays set, so the event cannot rerun this session.
func (n *Supernova) teardown() {
	n.active = false
	n.phase = PhaseDormant
	n.scale = 0
	n.intensity = 0
	n.burst = nil
}

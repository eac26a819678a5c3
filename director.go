package cosmodrift

import (
	"math"
	"math/rand/v2"
	"time"
)

// Camera path tuning: fractional look-ahead along the curve and the gentle
// continuous oscillations layered on top of it.
const (
	defaultLoopPeriod = 300.0 // seconds for one full circuit
	lookAheadBase     = 0.02  // fraction of the loop ahead of the camera
	lookAheadWobble   = 0.008
	lookAheadWobbleHz = 0.11 // rad/s of the look-ahead modulation
	rollAmplitude     = 0.06 // radians
	rollHz            = 0.23 // rad/s of the roll oscillation
	maxTickDelta      = 0.25 // seconds; long host stalls advance at most this
)

// DirectorConfig wires a Director's collaborators. Zero values get sensible
// defaults; only Path is required for autonomous camera motion.
type DirectorConfig struct {
	// Path is the closed journey curve the autonomous camera follows.
	Path *Path
	// LoopPeriod is the duration of one full circuit in seconds.
	LoopPeriod float64
	// Clock is the session time source. Defaults to SystemClock.
	Clock Clock
	// Rand seeds all randomness. Defaults to a time-seeded source.
	Rand *rand.Rand
	// ShootingStars tunes the streak system. Zero value uses defaults.
	ShootingStars ShootingStarConfig
	// Supernova tunes the dramatic event. Zero value uses defaults.
	Supernova SupernovaConfig
	// Universe, when set, has its bodies spun and orbited each tick.
	Universe *Universe
	// Notifier receives event notifications. May be nil.
	Notifier Notifier
	// OnManualUpdate is invoked each tick while the camera is manual, so
	// the host's interactive controls can move it. May be nil.
	OnManualUpdate func(dt float64)
	// OnRender is invoked at the end of every tick to request a frame from
	// the external renderer. May be nil (the Ebitengine host draws on its
	// own schedule).
	OnRender func()
}

// Director is the single per-frame driver of the whole session. It owns the
// clock, the random source, the camera, the journey path, every particle
// system, and the event controller; nothing animated lives outside it. All
// state is mutated inside Tick on one logical thread of control — no locks,
// no internal concurrency.
type Director struct {
	cfg DirectorConfig

	clock    Clock
	rng      *rand.Rand
	lastTick time.Time
	started  bool
	elapsed  float64

	camera    Camera
	path      *Path
	stars     *ShootingStarSystem
	supernova *Supernova
	universe  *Universe
}

// NewDirector creates a Director with the given wiring.
func NewDirector(cfg DirectorConfig) *Director {
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0xda3e39cb94b95bdb))
	}
	if cfg.LoopPeriod <= 0 {
		cfg.LoopPeriod = defaultLoopPeriod
	}
	if cfg.Path == nil {
		cfg.Path = NewPath()
	}
	zeroStars := ShootingStarConfig{}
	if cfg.ShootingStars == zeroStars {
		cfg.ShootingStars = DefaultShootingStarConfig()
	}
	zeroNova := SupernovaConfig{}
	if cfg.Supernova == zeroNova {
		cfg.Supernova = DefaultSupernovaConfig()
	}

	d := &Director{
		cfg:      cfg,
		clock:    cfg.Clock,
		rng:      cfg.Rand,
		path:     cfg.Path,
		universe: cfg.Universe,
	}
	d.stars = NewShootingStarSystem(cfg.ShootingStars, d.rng)
	d.supernova = NewSupernova(cfg.Supernova, d.rng, cfg.Notifier)
	return d
}

// Camera returns the camera state. The host's input handling flips its mode
// and, in manual mode, moves it; everything else is owned by the Director.
func (d *Director) Camera() *Camera {
	return &d.camera
}

// Path returns the journey curve.
func (d *Director) Path() *Path {
	return d.path
}

// ShootingStars returns the streak system for render submission.
func (d *Director) ShootingStars() *ShootingStarSystem {
	return d.stars
}

// Supernova returns the event controller for render submission.
func (d *Director) Supernova() *Supernova {
	return d.supernova
}

// Universe returns the procedural scene, or nil when none was wired.
func (d *Director) Universe() *Universe {
	return d.universe
}

// Elapsed returns the simulated session time in seconds.
func (d *Director) Elapsed() float64 {
	return d.elapsed
}

// Tick advances the session by the wall-clock delta since the previous tick,
// then requests a frame. Call once per display refresh; it returns promptly
// and never blocks.
func (d *Director) Tick() {
	now := d.clock.Now()
	if !d.started {
		d.started = true
		d.lastTick = now
	}
	dt := now.Sub(d.lastTick).Seconds()
	d.lastTick = now
	if dt < 0 {
		dt = 0
	}
	if dt > maxTickDelta {
		dt = maxTickDelta
	}
	d.Advance(dt)
}

// Advance runs one update pass with an explicit delta. The order is part of
// the contract — later steps read state the earlier ones produce:
// particle systems, then the event controller, then camera placement, then
// the render request.
func (d *Director) Advance(dt float64) {
	d.elapsed += dt

	d.stars.Update(dt, d.elapsed)
	d.supernova.Update(dt, d.elapsed, d.camera.Mode)
	if d.universe != nil {
		d.universe.Update(dt)
	}

	if d.camera.Mode == ModeAutonomous {
		d.placeCamera(dt)
	} else if d.cfg.OnManualUpdate != nil {
		d.cfg.OnManualUpdate(dt)
	}

	if d.cfg.OnRender != nil {
		d.cfg.OnRender()
	}
}

// placeCamera derives the autonomous camera pose from the journey path: the
// position at the loop fraction of elapsed time, a look target slightly
// ahead on the curve with a slow sinusoidal modulation, and a gentle
// continuous roll.
func (d *Director) placeCamera(dt float64) {
	t := math.Mod(d.elapsed, d.cfg.LoopPeriod) / d.cfg.LoopPeriod
	pos := d.path.PointAt(t)

	ahead := t + lookAheadBase + lookAheadWobble*math.Sin(d.elapsed*lookAheadWobbleHz)
	look := d.path.PointAt(ahead)

	roll := rollAmplitude * math.Sin(d.elapsed*rollHz)

	d.camera.place(pos, look, roll, dt)
}

package cosmodrift

import (
	"math"
	"math/rand/v2"
)

// ShootingStarConfig controls how streaks are spawned and behave.
type ShootingStarConfig struct {
	// PoolSize is the slot pool capacity backing all streaks.
	PoolSize int
	// MaxConcurrent caps simultaneously active streaks. Spawn requests
	// beyond the cap are silently dropped.
	MaxConcurrent int
	// CheckInterval is how often, in simulated seconds, the spawn check runs.
	CheckInterval float64
	// SpawnChance is the Bernoulli success probability per check.
	SpawnChance float64
	// SpawnRadius is the range of distances from the origin at which a
	// streak begins.
	SpawnRadius Range
	// Travel is the range of distances a streak covers start to end.
	Travel Range
	// Size is the range of streak head sizes in world units.
	Size Range
	// MaxAlpha is the range of peak opacities.
	MaxAlpha Range
	// Duration is the range of streak lifetimes in seconds.
	Duration Range
}

// DefaultShootingStarConfig returns the tuning used by the demo journey.
func DefaultShootingStarConfig() ShootingStarConfig {
	return ShootingStarConfig{
		PoolSize:      20,
		MaxConcurrent: 3,
		CheckInterval: 3.0,
		SpawnChance:   0.4,
		SpawnRadius:   Range{120, 260},
		Travel:        Range{60, 140},
		Size:          Range{0.6, 1.8},
		MaxAlpha:      Range{0.5, 1.0},
		Duration:      Range{1.2, 2.6},
	}
}

// shootingStar is one active streak: a slot plus the interpolation endpoints
// that drive it.
type shootingStar struct {
	slot     *Slot
	start    Vec3
	end      Vec3
	progress float64
	speed    float64 // progress per second (1/duration)
	size     float64
	maxAlpha float64
}

// ShootingStarSystem owns the streak pool and its spawn policy: a polled
// elapsed-time check every CheckInterval simulated seconds, each check a
// single independent coin flip. Polling from the frame tick (rather than a
// host timer callback) keeps spawns inside the tick boundary, so a frame's
// rendered state is always internally consistent.
type ShootingStarSystem struct {
	cfg       ShootingStarConfig
	pool      *Pool
	active    []*shootingStar
	rng       *rand.Rand
	lastCheck float64
}

// NewShootingStarSystem creates a system with a preallocated pool. rng must
// not be nil; all randomness flows through it.
func NewShootingStarSystem(cfg ShootingStarConfig, rng *rand.Rand) *ShootingStarSystem {
	if cfg.PoolSize <= 0 {
		cfg.PoolSize = 20
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 3
	}
	if cfg.CheckInterval <= 0 {
		cfg.CheckInterval = 3.0
	}
	return &ShootingStarSystem{
		cfg:    cfg,
		pool:   NewPool(cfg.PoolSize),
		active: make([]*shootingStar, 0, cfg.MaxConcurrent),
		rng:    rng,
	}
}

// Pool exposes the backing pool for render submission.
func (s *ShootingStarSystem) Pool() *Pool {
	return s.pool
}

// ActiveCount returns the number of streaks currently in flight.
func (s *ShootingStarSystem) ActiveCount() int {
	return len(s.active)
}

// Update advances every active streak by dt seconds and runs the spawn check
// when the polled interval has elapsed.
func (s *ShootingStarSystem) Update(dt, elapsed float64) {
	// Advance streaks, swap-remove completed ones.
	i := 0
	for i < len(s.active) {
		st := s.active[i]
		st.progress += st.speed * dt
		if st.progress >= 1 {
			s.pool.Release(st.slot)
			last := len(s.active) - 1
			s.active[i] = s.active[last]
			s.active[last] = nil
			s.active = s.active[:last]
			continue
		}
		st.slot.Position = st.start.Lerp(st.end, st.progress)
		st.slot.Size = st.size
		st.slot.Alpha = st.maxAlpha * Envelope(st.progress)
		i++
	}

	// Polled spawn check: one Bernoulli trial per elapsed interval. The
	// marker advances by whole intervals so checks stay on the fixed grid
	// instead of drifting by the tick remainder.
	if elapsed-s.lastCheck >= s.cfg.CheckInterval {
		s.lastCheck += s.cfg.CheckInterval
		if Bernoulli(s.rng, s.cfg.SpawnChance) {
			s.Spawn()
		}
	}
}

// Spawn starts a new streak with randomized parameters. Returns false when
// the concurrency cap or the pool declines the request; never blocks, never
// errors.
func (s *ShootingStarSystem) Spawn() bool {
	if len(s.active) >= s.cfg.MaxConcurrent {
		return false
	}
	slot := s.pool.Acquire()
	if slot == nil {
		return false
	}

	// Start position and travel direction both sampled in spherical
	// coordinates, magnitudes uniform over their configured ranges.
	start := SphericalDir(
		s.rng.Float64()*2*math.Pi,
		s.rng.Float64()*math.Pi,
	).Scale(s.cfg.SpawnRadius.Random(s.rng))
	dir := SphericalDir(
		s.rng.Float64()*2*math.Pi,
		s.rng.Float64()*math.Pi,
	)
	end := start.Add(dir.Scale(s.cfg.Travel.Random(s.rng)))

	duration := s.cfg.Duration.Random(s.rng)
	if duration <= 0 {
		duration = 1
	}

	st := &shootingStar{
		slot:     slot,
		start:    start,
		end:      end,
		speed:    1 / duration,
		size:     s.cfg.Size.Random(s.rng),
		maxAlpha: s.cfg.MaxAlpha.Random(s.rng),
	}
	slot.Position = start
	slot.Size = st.size
	slot.Alpha = 0 // fade-in starts from zero

	s.active = append(s.active, st)
	return true
}

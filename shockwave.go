package cosmodrift

import (
	"math"
	"math/rand/v2"
)

// ShockwaveConfig controls a one-shot expanding particle burst.
type ShockwaveConfig struct {
	// Particles is the burst size. The burst owns a pool of exactly this
	// many slots and never replenishes.
	Particles int
	// Speed is the range of initial particle speeds in world units/second.
	Speed Range
	// Size is the range of particle sizes.
	Size Range
	// MaxAlpha is the range of peak opacities.
	MaxAlpha Range
	// Duration is the range of particle lifetimes in seconds.
	Duration Range
}

// DefaultShockwaveConfig returns the tuning used by the supernova burst.
func DefaultShockwaveConfig() ShockwaveConfig {
	return ShockwaveConfig{
		Particles: 60,
		Speed:     Range{25, 70},
		Size:      Range{0.8, 2.4},
		MaxAlpha:  Range{0.6, 1.0},
		Duration:  Range{1.8, 3.2},
	}
}

// shockParticle pairs a slot with its simulation parameters.
type shockParticle struct {
	slot     *Slot
	progress float64
	speed    float64 // progress per second
	maxAlpha float64
}

// ShockwaveBurst is a fixed burst of particles expanding outward from an
// origin. Velocities decay with progress to fake drag; alpha follows the
// shared triangular envelope. Once every particle completes, the burst is
// done and releases nothing further.
type ShockwaveBurst struct {
	pool      *Pool
	particles []shockParticle
	remaining int
}

// NewShockwaveBurst spawns the full burst immediately, anchored at origin.
// Directions are sampled in spherical coordinates, magnitudes uniform over
// the configured ranges.
func NewShockwaveBurst(cfg ShockwaveConfig, origin Vec3, rng *rand.Rand) *ShockwaveBurst {
	if cfg.Particles <= 0 {
		cfg.Particles = 60
	}
	b := &ShockwaveBurst{
		pool:      NewPool(cfg.Particles),
		particles: make([]shockParticle, 0, cfg.Particles),
	}
	for i := 0; i < cfg.Particles; i++ {
		slot := b.pool.Acquire()
		if slot == nil {
			break
		}
		dir := SphericalDir(
			rng.Float64()*2*math.Pi,
			rng.Float64()*math.Pi,
		)
		duration := cfg.Duration.Random(rng)
		if duration <= 0 {
			duration = 1
		}
		slot.Position = origin
		slot.Velocity = dir.Scale(cfg.Speed.Random(rng))
		slot.Size = cfg.Size.Random(rng)
		slot.Alpha = 0
		b.particles = append(b.particles, shockParticle{
			slot:     slot,
			speed:    1 / duration,
			maxAlpha: cfg.MaxAlpha.Random(rng),
		})
	}
	b.remaining = len(b.particles)
	return b
}

// Pool exposes the backing pool for render submission.
func (b *ShockwaveBurst) Pool() *Pool {
	return b.pool
}

// Done reports whether every particle in the burst has completed.
func (b *ShockwaveBurst) Done() bool {
	return b.remaining == 0
}

// Update advances the burst by dt seconds. Positions integrate each
// particle's velocity scaled by (1 - progress*0.5), so expansion slows as
// the wave ages.
func (b *ShockwaveBurst) Update(dt float64) {
	for i := range b.particles {
		p := &b.particles[i]
		if !p.slot.Active {
			continue
		}
		p.progress += p.speed * dt
		if p.progress >= 1 {
			b.pool.Release(p.slot)
			b.remaining--
			continue
		}
		drag := 1 - p.progress*0.5
		p.slot.Position = p.slot.Position.Add(p.slot.Velocity.Scale(drag * dt))
		p.slot.Alpha = p.maxAlpha * Envelope(p.progress)
	}
}

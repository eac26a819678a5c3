package cosmodrift

import (
	"math"
	"math/rand/v2"
)

// BodyKind distinguishes rendering and animation behavior for a Body.
type BodyKind uint8

const (
	KindSun    BodyKind = iota // central light source, slow spin
	KindPlanet                 // textured sphere, optional ring
	KindMoon                   // orbits a parent body (visual circle, no physics)
	KindNebula                 // large translucent billboard
)

// Body is one celestial object in the scene. Orbit fields describe a purely
// visual circular motion around OrbitCenter; there is no gravitation here.
type Body struct {
	Name string
	Kind BodyKind

	Position Vec3
	Radius   float64
	Tint     Color
	Texture  string // asset key; empty means procedural sprite

	// Spin is the visual self-rotation rate in radians per second.
	Spin     float64
	Rotation float64

	// Ring, when true, draws a flat ring between the two radii.
	Ring      bool
	RingInner float64
	RingOuter float64

	// Orbit (moons only): Position is recomputed from these each frame.
	OrbitCenter Vec3
	OrbitRadius float64
	OrbitRate   float64 // radians per second
	OrbitAngle  float64
}

// StarPoint is one fixed point of the background starfield.
type StarPoint struct {
	Position Vec3
	Size     float64
	Tint     Color
}

// UniverseConfig tunes procedural generation of the background scene.
type UniverseConfig struct {
	// StarCount is the number of starfield points.
	StarCount int
	// StarShell is the range of distances from the origin for star points.
	StarShell Range
	// StarSize is the range of star point sizes.
	StarSize Range
}

// DefaultUniverseConfig returns the demo tuning.
func DefaultUniverseConfig() UniverseConfig {
	return UniverseConfig{
		StarCount: 1200,
		StarShell: Range{400, 900},
		StarSize:  Range{0.3, 1.1},
	}
}

// Universe holds the generated scene: bodies updated per frame and a static
// starfield.
type Universe struct {
	Bodies []*Body
	Stars  []StarPoint
}

// NewUniverse generates a starfield and returns an otherwise empty universe.
// Bodies are added by the caller (typically from a journey config).
func NewUniverse(cfg UniverseConfig, rng *rand.Rand) *Universe {
	if cfg.StarCount <= 0 {
		cfg.StarCount = 1200
	}
	u := &Universe{Stars: make([]StarPoint, cfg.StarCount)}
	for i := range u.Stars {
		dir := SphericalDir(
			rng.Float64()*2*math.Pi,
			rng.Float64()*math.Pi,
		)
		// Slight blue-white temperature variation.
		warm := Range{0.75, 1.0}.Random(rng)
		u.Stars[i] = StarPoint{
			Position: dir.Scale(cfg.StarShell.Random(rng)),
			Size:     cfg.StarSize.Random(rng),
			Tint:     Color{warm, warm, 1, 1},
		}
	}
	return u
}

// AddBody appends a body to the scene and returns it.
func (u *Universe) AddBody(b *Body) *Body {
	u.Bodies = append(u.Bodies, b)
	return b
}

// Update advances visual-only rotation and orbital motion by dt seconds.
func (u *Universe) Update(dt float64) {
	for _, b := range u.Bodies {
		b.Rotation += b.Spin * dt
		if b.OrbitRadius > 0 {
			b.OrbitAngle += b.OrbitRate * dt
			b.Position = b.OrbitCenter.Add(Vec3{
				math.Cos(b.OrbitAngle) * b.OrbitRadius,
				0,
				math.Sin(b.OrbitAngle) * b.OrbitRadius,
			})
		}
	}
}

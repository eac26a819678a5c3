package cosmodrift

import (
	"math"
	"math/rand/v2"
)

// Vec3 is a 3D vector used for positions, directions, and velocities
// throughout the API.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product of v and o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Dist returns the Euclidean distance between v and o.
func (v Vec3) Dist(o Vec3) float64 {
	return v.Sub(o).Length()
}

// Normalized returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Lerp returns the linear interpolation between v and o by t.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{
		lerp(v.X, o.X, t),
		lerp(v.Y, o.Y, t),
		lerp(v.Z, o.Z, t),
	}
}

// SphericalDir converts spherical coordinates to a unit direction vector.
// theta is the azimuth in [0, 2π), phi the polar angle in [0, π].
func SphericalDir(theta, phi float64) Vec3 {
	sinPhi := math.Sin(phi)
	return Vec3{
		sinPhi * math.Cos(theta),
		math.Cos(phi),
		sinPhi * math.Sin(theta),
	}
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Range is a general-purpose min/max range sampled uniformly.
// Used by the particle systems and the procedural universe generator.
type Range struct {
	Min, Max float64
}

// Random returns a uniform random float64 in [Min, Max] drawn from rng.
// Randomness is always routed through an injected source so tests can seed
// outcomes deterministically.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Bernoulli performs one coin flip with success probability p against the
// given source. Spawn and trigger decisions are discrete per-tick trials, not
// continuous arrival processes, so they all route through here.
func Bernoulli(rng *rand.Rand, p float64) bool {
	if p >= 1 {
		return true
	}
	if p <= 0 {
		return false
	}
	return rng.Float64() < p
}

// CameraMode selects who drives the camera each frame.
type CameraMode uint8

const (
	// ModeAutonomous drives the camera along the journey path.
	ModeAutonomous CameraMode = iota
	// ModeManual leaves the camera to external interactive controls.
	ModeManual
)

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

package cosmodrift

import (
	"math"
	"math/rand/v2"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertNearTol(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (±%v)", name, got, want, tol)
	}
}

func assertVec3Near(t *testing.T, name string, got, want Vec3) {
	t.Helper()
	if math.Abs(got.X-want.X) > epsilon ||
		math.Abs(got.Y-want.Y) > epsilon ||
		math.Abs(got.Z-want.Z) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// testRand returns a deterministic random source for tests.
func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// --- Vec3 ---

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}

	assertVec3Near(t, "Add", a.Add(b), Vec3{5, -3, 9})
	assertVec3Near(t, "Sub", a.Sub(b), Vec3{-3, 7, -3})
	assertVec3Near(t, "Scale", a.Scale(2), Vec3{2, 4, 6})
	assertNear(t, "Dot", a.Dot(b), 1*4+2*-5+3*6)
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	assertVec3Near(t, "x cross y", x.Cross(y), Vec3{0, 0, 1})
	assertVec3Near(t, "y cross x", y.Cross(x), Vec3{0, 0, -1})
}

func TestVec3LengthAndDist(t *testing.T) {
	v := Vec3{3, 4, 0}
	assertNear(t, "Length", v.Length(), 5)
	assertNear(t, "Dist", v.Dist(Vec3{3, 4, 12}), 12)
}

func TestVec3Normalized(t *testing.T) {
	v := Vec3{0, 3, 4}.Normalized()
	assertNear(t, "unit length", v.Length(), 1)
	assertVec3Near(t, "direction", v, Vec3{0, 0.6, 0.8})

	// Zero vector stays zero rather than producing NaNs.
	assertVec3Near(t, "zero", Vec3{}.Normalized(), Vec3{})
}

func TestVec3Lerp(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{10, -20, 30}
	assertVec3Near(t, "t=0", a.Lerp(b, 0), a)
	assertVec3Near(t, "t=1", a.Lerp(b, 1), b)
	assertVec3Near(t, "t=0.5", a.Lerp(b, 0.5), Vec3{5, -10, 15})
}

func TestSphericalDir(t *testing.T) {
	// phi=0 points straight up the Y axis regardless of theta.
	assertVec3Near(t, "pole", SphericalDir(1.234, 0), Vec3{0, 1, 0})
	// phi=π/2, theta=0 points along +X.
	assertVec3Near(t, "equator", SphericalDir(0, math.Pi/2), Vec3{1, 0, 0})

	// Always unit length.
	rng := testRand(7)
	for i := 0; i < 100; i++ {
		d := SphericalDir(rng.Float64()*2*math.Pi, rng.Float64()*math.Pi)
		assertNear(t, "unit", d.Length(), 1)
	}
}

// --- Range ---

func TestRangeRandom(t *testing.T) {
	rng := testRand(42)
	r := Range{10, 20}
	for i := 0; i < 100; i++ {
		v := r.Random(rng)
		if v < 10 || v > 20 {
			t.Fatalf("Random() = %f, outside [10, 20]", v)
		}
	}

	// Equal min/max draws nothing from the source.
	r2 := Range{5, 5}
	for i := 0; i < 10; i++ {
		if r2.Random(rng) != 5 {
			t.Fatal("Random() with Min==Max should return Min")
		}
	}
}

func TestLerp(t *testing.T) {
	assertNear(t, "lerp(0,10,0)", lerp(0, 10, 0), 0)
	assertNear(t, "lerp(0,10,0.5)", lerp(0, 10, 0.5), 5)
	assertNear(t, "lerp(0,10,1)", lerp(0, 10, 1), 10)
}

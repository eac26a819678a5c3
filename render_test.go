package cosmodrift

import (
	"math"
	"testing"
)

func testView(cam Camera) View {
	return NewView(&cam, 640, 480, math.Pi/3)
}

func TestProjectCenterOfView(t *testing.T) {
	v := testView(Camera{Position: Vec3{0, 0, 10}, Look: Vec3{0, 0, 0}})
	x, y, depth, ok := v.Project(Vec3{0, 0, 0})
	if !ok {
		t.Fatal("point straight ahead rejected")
	}
	assertNear(t, "screen x", x, 320)
	assertNear(t, "screen y", y, 240)
	assertNear(t, "depth", depth, 10)
}

func TestProjectBehindCameraRejected(t *testing.T) {
	v := testView(Camera{Position: Vec3{0, 0, 10}, Look: Vec3{0, 0, 0}})
	if _, _, _, ok := v.Project(Vec3{0, 0, 20}); ok {
		t.Error("point behind the camera projected")
	}
	// Just in front of the eye but inside the near plane.
	if _, _, _, ok := v.Project(Vec3{0, 0, 10 - nearPlane/2}); ok {
		t.Error("point inside near plane projected")
	}
}

func TestProjectScreenDirections(t *testing.T) {
	// Looking down -Z from the origin: +X world is screen right, +Y world is
	// screen up (smaller y).
	v := testView(Camera{Position: Vec3{}, Look: Vec3{0, 0, -1}})

	x, _, _, ok := v.Project(Vec3{5, 0, -10})
	if !ok || x <= 320 {
		t.Errorf("world +X projected to x=%f, want right of center", x)
	}
	_, y, _, ok := v.Project(Vec3{0, 5, -10})
	if !ok || y >= 240 {
		t.Errorf("world +Y projected to y=%f, want above center", y)
	}
}

func TestSpriteScaleAttenuatesWithDepth(t *testing.T) {
	v := testView(Camera{Position: Vec3{}, Look: Vec3{0, 0, -1}})
	near := v.SpriteScale(2, 10)
	far := v.SpriteScale(2, 20)
	assertNearTol(t, "double distance halves size", far, near/2, 1e-9)
}

func TestViewRollRotatesScreenAxes(t *testing.T) {
	// A quarter-turn roll maps world +X onto the screen's vertical axis.
	plain := testView(Camera{Position: Vec3{}, Look: Vec3{0, 0, -1}})
	rolled := testView(Camera{Position: Vec3{}, Look: Vec3{0, 0, -1}, Roll: math.Pi / 2})

	px, _, _, _ := plain.Project(Vec3{5, 0, -10})
	rx, ry, _, _ := rolled.Project(Vec3{5, 0, -10})

	if math.Abs(px-320) < 1 {
		t.Fatal("unrolled projection should be off-center horizontally")
	}
	assertNearTol(t, "rolled x recentered", rx, 320, 1e-6)
	assertNearTol(t, "offset moved to vertical", math.Abs(ry-240), math.Abs(px-320), 1e-6)
}

func TestViewDegenerateLookSafe(t *testing.T) {
	// Look target equal to the eye: a usable basis instead of NaNs.
	v := testView(Camera{Position: Vec3{1, 2, 3}, Look: Vec3{1, 2, 3}})
	x, y, _, ok := v.Project(Vec3{1, 2, 3 - 50})
	if !ok || math.IsNaN(x) || math.IsNaN(y) {
		t.Fatalf("degenerate view produced x=%f y=%f ok=%v", x, y, ok)
	}
}

func TestViewStraightDownSafe(t *testing.T) {
	v := testView(Camera{Position: Vec3{0, 10, 0}, Look: Vec3{0, 0, 0}})
	x, y, _, ok := v.Project(Vec3{0, 0, 0})
	if !ok || math.IsNaN(x) || math.IsNaN(y) {
		t.Fatalf("straight-down view produced x=%f y=%f ok=%v", x, y, ok)
	}
}

func TestSortByDepthFarToNear(t *testing.T) {
	v := testView(Camera{Position: Vec3{}, Look: Vec3{0, 0, -1}})
	items := []Billboard{
		{World: Vec3{0, 0, -10}},
		{World: Vec3{0, 0, -100}},
		{World: Vec3{0, 0, -50}},
	}
	sortByDepth(items, v)
	if items[0].World.Z != -100 || items[1].World.Z != -50 || items[2].World.Z != -10 {
		t.Errorf("sorted order: %v %v %v", items[0].World, items[1].World, items[2].World)
	}
}

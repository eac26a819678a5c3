package cosmodrift

import (
	"strings"
	"testing"
)

const sampleJourneyYAML = `
name: test run
loopPeriod: 120
starCount: 10
waypoints:
  - {x: 0, y: 0, z: 100, caption: "Start"}
  - {x: 100, y: 0, z: 0}
  - {x: 0, y: 0, z: -100}
  - {x: -100, y: 0, z: 0}
bodies:
  - {name: sol, kind: sun, radius: 10}
  - {name: terra, kind: planet, x: 80, radius: 5, spin: 0.1}
  - {name: luna, kind: moon, radius: 1, orbits: terra, orbitRadius: 12, orbitRate: 0.5}
`

func TestParseJourney(t *testing.T) {
	j, err := ParseJourney([]byte(sampleJourneyYAML))
	if err != nil {
		t.Fatal(err)
	}
	if j.Name != "test run" {
		t.Errorf("Name = %q", j.Name)
	}
	assertNear(t, "LoopPeriod", j.LoopPeriod, 120)
	if len(j.Waypoints) != 4 || len(j.Bodies) != 3 {
		t.Fatalf("waypoints = %d, bodies = %d", len(j.Waypoints), len(j.Bodies))
	}
	if j.Waypoints[0].Caption != "Start" {
		t.Errorf("caption = %q", j.Waypoints[0].Caption)
	}
}

func TestParseJourneyDefaults(t *testing.T) {
	j, err := ParseJourney([]byte(`
waypoints:
  - {x: 0, y: 0, z: 1}
  - {x: 1, y: 0, z: 0}
  - {x: 0, y: 0, z: -1}
  - {x: -1, y: 0, z: 0}
`))
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, "default loop period", j.LoopPeriod, defaultLoopPeriod)
	if j.StarCount != DefaultUniverseConfig().StarCount {
		t.Errorf("StarCount = %d", j.StarCount)
	}
}

func TestParseJourneyRejectsMalformedYAML(t *testing.T) {
	_, err := ParseJourney([]byte("waypoints: [\n"))
	if err == nil || !strings.Contains(err.Error(), "parse journey") {
		t.Errorf("err = %v, want wrapped parse error", err)
	}
}

func TestParseJourneyRejectsTooFewWaypoints(t *testing.T) {
	_, err := ParseJourney([]byte(`
waypoints:
  - {x: 0, y: 0, z: 0}
  - {x: 1, y: 1, z: 1}
`))
	if err == nil || !strings.Contains(err.Error(), "at least 4") {
		t.Errorf("err = %v, want waypoint count error", err)
	}
}

func TestParseJourneyRejectsUnknownKind(t *testing.T) {
	_, err := ParseJourney([]byte(`
waypoints:
  - {x: 0, y: 0, z: 1}
  - {x: 1, y: 0, z: 0}
  - {x: 0, y: 0, z: -1}
  - {x: -1, y: 0, z: 0}
bodies:
  - {name: x, kind: comet}
`))
	if err == nil || !strings.Contains(err.Error(), "unknown kind") {
		t.Errorf("err = %v, want kind error", err)
	}
}

func TestParseJourneyRejectsUnknownOrbitParent(t *testing.T) {
	_, err := ParseJourney([]byte(`
waypoints:
  - {x: 0, y: 0, z: 1}
  - {x: 1, y: 0, z: 0}
  - {x: 0, y: 0, z: -1}
  - {x: -1, y: 0, z: 0}
bodies:
  - {name: stray, kind: moon, orbits: nothing}
`))
	if err == nil || !strings.Contains(err.Error(), "orbits unknown body") {
		t.Errorf("err = %v, want orbit parent error", err)
	}
}

func TestJourneyBuildPath(t *testing.T) {
	j, err := ParseJourney([]byte(sampleJourneyYAML))
	if err != nil {
		t.Fatal(err)
	}
	p := j.BuildPath()
	if p.Len() != 4 {
		t.Fatalf("path has %d points", p.Len())
	}
	assertVec3Near(t, "first waypoint", p.PointAt(0), Vec3{0, 0, 100})
}

func TestJourneyBuildUniverse(t *testing.T) {
	j, err := ParseJourney([]byte(sampleJourneyYAML))
	if err != nil {
		t.Fatal(err)
	}
	u := j.BuildUniverse(testRand(60))
	if len(u.Stars) != 10 {
		t.Errorf("stars = %d, want 10", len(u.Stars))
	}
	if len(u.Bodies) != 3 {
		t.Fatalf("bodies = %d, want 3", len(u.Bodies))
	}

	var luna *Body
	for _, b := range u.Bodies {
		if b.Name == "luna" {
			luna = b
		}
	}
	if luna == nil || luna.Kind != KindMoon {
		t.Fatal("moon missing from built universe")
	}
	assertVec3Near(t, "orbit center is parent position", luna.OrbitCenter, Vec3{80, 0, 0})

	// After one update the moon sits on its orbit circle.
	u.Update(0)
	assertNearTol(t, "moon orbit distance", luna.Position.Dist(luna.OrbitCenter), 12, 1e-9)
}

func TestDefaultJourneyIsValid(t *testing.T) {
	j := DefaultJourney()
	if err := j.validate(); err != nil {
		t.Fatalf("built-in journey invalid: %v", err)
	}
	if len(j.Waypoints) != 11 {
		t.Errorf("waypoints = %d, want 11", len(j.Waypoints))
	}
	p := j.BuildPath()
	assertVec3Near(t, "tour start", p.PointAt(0), Vec3{0, 20, 160})
}

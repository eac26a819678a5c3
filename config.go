package cosmodrift

import (
	"fmt"
	"math/rand/v2"
	"os"

	"gopkg.in/yaml.v3"
)

// Waypoint is one camera control point of a journey, with an optional caption
// shown as the camera passes it.
type Waypoint struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Z       float64 `yaml:"z"`
	Caption string  `yaml:"caption,omitempty"`
}

// Vec3 returns the waypoint position.
func (w Waypoint) Vec3() Vec3 { return Vec3{w.X, w.Y, w.Z} }

// BodyConfig describes one celestial body in a journey file.
type BodyConfig struct {
	Name    string  `yaml:"name"`
	Kind    string  `yaml:"kind"` // sun, planet, moon, nebula
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Z       float64 `yaml:"z"`
	Radius  float64 `yaml:"radius"`
	Texture string  `yaml:"texture,omitempty"`
	Spin    float64 `yaml:"spin,omitempty"`

	Ring      bool    `yaml:"ring,omitempty"`
	RingInner float64 `yaml:"ringInner,omitempty"`
	RingOuter float64 `yaml:"ringOuter,omitempty"`

	// Moons only: orbit around the named parent body.
	Orbits      string  `yaml:"orbits,omitempty"`
	OrbitRadius float64 `yaml:"orbitRadius,omitempty"`
	OrbitRate   float64 `yaml:"orbitRate,omitempty"`
}

// Journey is a declarative flythrough: the camera path, its timing, and the
// scene it flies through.
type Journey struct {
	Name       string       `yaml:"name"`
	LoopPeriod float64      `yaml:"loopPeriod"`
	StarCount  int          `yaml:"starCount"`
	Waypoints  []Waypoint   `yaml:"waypoints"`
	Bodies     []BodyConfig `yaml:"bodies,omitempty"`
}

// ParseJourney decodes a YAML journey document, applies defaults for missing
// fields, and validates the result.
func ParseJourney(data []byte) (*Journey, error) {
	var j Journey
	if err := yaml.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse journey: %w", err)
	}
	j.applyDefaults()
	if err := j.validate(); err != nil {
		return nil, err
	}
	return &j, nil
}

// LoadJourney reads and parses a journey file.
func LoadJourney(path string) (*Journey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load journey: %w", err)
	}
	j, err := ParseJourney(data)
	if err != nil {
		return nil, fmt.Errorf("load journey %s: %w", path, err)
	}
	return j, nil
}

func (j *Journey) applyDefaults() {
	if j.LoopPeriod <= 0 {
		j.LoopPeriod = defaultLoopPeriod
	}
	if j.StarCount <= 0 {
		j.StarCount = DefaultUniverseConfig().StarCount
	}
}

func (j *Journey) validate() error {
	if len(j.Waypoints) < 4 {
		return fmt.Errorf("journey %q: %d waypoints, need at least 4 for a closed curve", j.Name, len(j.Waypoints))
	}
	names := make(map[string]bool, len(j.Bodies))
	for _, b := range j.Bodies {
		switch b.Kind {
		case "sun", "planet", "moon", "nebula":
		default:
			return fmt.Errorf("journey %q: body %q: unknown kind %q", j.Name, b.Name, b.Kind)
		}
		names[b.Name] = true
	}
	for _, b := range j.Bodies {
		if b.Orbits != "" && !names[b.Orbits] {
			return fmt.Errorf("journey %q: body %q orbits unknown body %q", j.Name, b.Name, b.Orbits)
		}
	}
	return nil
}

// BuildPath constructs the closed camera spline from the waypoints.
func (j *Journey) BuildPath() *Path {
	p := NewPath()
	for _, w := range j.Waypoints {
		p.AddPoint(w.Vec3())
	}
	return p
}

// BuildUniverse constructs the scene described by the journey: a generated
// starfield plus the declared bodies. Moons resolve their parent position at
// build time; per-frame orbital motion keeps them attached.
func (j *Journey) BuildUniverse(rng *rand.Rand) *Universe {
	cfg := DefaultUniverseConfig()
	cfg.StarCount = j.StarCount
	u := NewUniverse(cfg, rng)

	byName := make(map[string]*Body, len(j.Bodies))
	for _, bc := range j.Bodies {
		b := &Body{
			Name:      bc.Name,
			Kind:      parseBodyKind(bc.Kind),
			Position:  Vec3{bc.X, bc.Y, bc.Z},
			Radius:    bc.Radius,
			Tint:      ColorWhite,
			Texture:   bc.Texture,
			Spin:      bc.Spin,
			Ring:      bc.Ring,
			RingInner: bc.RingInner,
			RingOuter: bc.RingOuter,
		}
		u.AddBody(b)
		byName[bc.Name] = b
	}
	for i, bc := range j.Bodies {
		if bc.Orbits == "" {
			continue
		}
		b := u.Bodies[i]
		b.OrbitCenter = byName[bc.Orbits].Position
		b.OrbitRadius = bc.OrbitRadius
		b.OrbitRate = bc.OrbitRate
	}
	return u
}

func parseBodyKind(s string) BodyKind {
	switch s {
	case "sun":
		return KindSun
	case "moon":
		return KindMoon
	case "nebula":
		return KindNebula
	default:
		return KindPlanet
	}
}

// DefaultJourney returns the built-in grand tour: an eleven-waypoint loop
// past the demo scene's bodies.
func DefaultJourney() *Journey {
	j := &Journey{
		Name:       "grand tour",
		LoopPeriod: defaultLoopPeriod,
		Waypoints: []Waypoint{
			{X: 0, Y: 20, Z: 160, Caption: "Departure"},
			{X: 90, Y: 25, Z: 110},
			{X: 140, Y: 10, Z: 20, Caption: "Aurelia flyby"},
			{X: 120, Y: -15, Z: -80},
			{X: 40, Y: 5, Z: -140, Caption: "The Veil nebula"},
			{X: -60, Y: 30, Z: -120},
			{X: -130, Y: 15, Z: -40, Caption: "Ring plane crossing"},
			{X: -150, Y: -10, Z: 60},
			{X: -90, Y: -25, Z: 130},
			{X: -20, Y: 0, Z: 90, Caption: "Inner system"},
			{X: 30, Y: 40, Z: 40},
		},
		Bodies: []BodyConfig{
			{Name: "helion", Kind: "sun", X: 0, Y: 0, Z: 0, Radius: 18, Spin: 0.02},
			{Name: "aurelia", Kind: "planet", X: 150, Y: 0, Z: -10, Radius: 9, Spin: 0.15, Texture: "aurelia.png"},
			{Name: "callina", Kind: "moon", Radius: 2, Orbits: "aurelia", OrbitRadius: 22, OrbitRate: 0.3},
			{Name: "sereth", Kind: "planet", X: -140, Y: 5, Z: -30, Radius: 12, Spin: 0.08,
				Ring: true, RingInner: 16, RingOuter: 26, Texture: "sereth.png"},
			{Name: "veil", Kind: "nebula", X: 60, Y: 20, Z: -180, Radius: 70, Texture: "veil.png"},
		},
		StarCount: DefaultUniverseConfig().StarCount,
	}
	return j
}

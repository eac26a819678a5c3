// flythrough plays an endless camera journey through a procedurally
// generated star system: a spline loop past planets, moons and nebulae,
// with shooting stars, an occasional supernova, captions, and an ambient
// drone. Tab switches between the autonomous camera and free flight.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"math"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/pallasgames/cosmodrift"
)

const (
	screenW = 1280
	screenH = 720
	fov     = math.Pi / 3
)

type game struct {
	dir      *cosmodrift.Director
	journey  *cosmodrift.Journey
	captions *cosmodrift.CaptionBoard
	audio    *cosmodrift.AmbientAudio
	loader   *cosmodrift.TextureLoader

	loading  bool
	loadDone chan struct{}

	glow  *ebiten.Image // soft radial disc for bodies and particles
	spark *ebiten.Image // tighter disc for stars and streaks

	volume       float64
	yaw, pitch   float64 // free-flight look angles
	lastWaypoint int

	queue []cosmodrift.Billboard
}

func main() {
	journeyFile := flag.String("journey", "", "journey YAML file (default: built-in grand tour)")
	flag.Parse()

	journey := cosmodrift.DefaultJourney()
	if *journeyFile != "" {
		j, err := cosmodrift.LoadJourney(*journeyFile)
		if err != nil {
			log.Fatal(err)
		}
		journey = j
	}

	g := newGame(journey)
	defer g.audio.Cleanup()

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("Cosmodrift: " + journey.Name)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

func newGame(journey *cosmodrift.Journey) *game {
	g := &game{
		journey:      journey,
		captions:     cosmodrift.NewCaptionBoard(),
		audio:        cosmodrift.NewAmbientAudio(slog.Default()),
		glow:         makeGlowSprite(64, 2.0),
		spark:        makeGlowSprite(16, 4.0),
		volume:       0.6,
		lastWaypoint: -1,
		loadDone:     make(chan struct{}),
	}

	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x2545f4914f6cdd1d))
	g.dir = cosmodrift.NewDirector(cosmodrift.DirectorConfig{
		Path:           journey.BuildPath(),
		LoopPeriod:     journey.LoopPeriod,
		Universe:       journey.BuildUniverse(rng),
		Notifier:       g.captions,
		OnManualUpdate: g.flyCamera,
	})

	g.audio.Init()
	g.audio.Start(g.volume)

	g.startLoading()
	return g
}

// startLoading kicks off texture loading from an assets directory next to
// the binary. Missing directory or files fall back to procedural sprites.
func (g *game) startLoading() {
	var names []string
	for _, b := range g.journey.Bodies {
		if b.Texture != "" {
			names = append(names, b.Texture)
		}
	}
	if len(names) == 0 {
		close(g.loadDone)
		return
	}
	if _, err := os.Stat("assets"); err != nil {
		slog.Warn("no assets directory, using procedural sprites")
		close(g.loadDone)
		return
	}

	g.loader = &cosmodrift.TextureLoader{FS: os.DirFS("assets"), MaxDim: 512}
	g.loading = true
	go func() {
		defer close(g.loadDone)
		if err := g.loader.Load(context.Background(), names); err != nil {
			slog.Warn("texture loading aborted", "error", err)
		}
	}()
}

func (g *game) Update() error {
	if g.loading {
		select {
		case <-g.loadDone:
			g.loading = false
		default:
			return nil
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.toggleMode()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.audio.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.setVolume(g.volume - 0.1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.setVolume(g.volume + 0.1)
	}

	before := g.dir.Elapsed()
	g.dir.Tick()
	dt := g.dir.Elapsed() - before

	g.captions.Update(dt)
	g.announceWaypoints()
	return nil
}

func (g *game) toggleMode() {
	cam := g.dir.Camera()
	cam.ToggleMode()
	if cam.Mode == cosmodrift.ModeManual {
		// Seed free-flight angles from the current view direction.
		dir := cam.Look.Sub(cam.Position).Normalized()
		g.pitch = math.Asin(dir.Y)
		g.yaw = math.Atan2(dir.X, -dir.Z)
	}
}

func (g *game) setVolume(v float64) {
	g.volume = math.Max(0, math.Min(1, v))
	g.audio.SetVolume(g.volume)
}

// flyCamera is the manual-mode control: WASD translates, R/F climbs and
// dives, arrow keys turn, Shift speeds everything up.
func (g *game) flyCamera(dt float64) {
	cam := g.dir.Camera()

	turn := 1.2 * dt
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.yaw -= turn
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.yaw += turn
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.pitch = math.Min(g.pitch+turn, math.Pi/2-0.01)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.pitch = math.Max(g.pitch-turn, -math.Pi/2+0.01)
	}

	forward := cosmodrift.Vec3{
		X: math.Cos(g.pitch) * math.Sin(g.yaw),
		Y: math.Sin(g.pitch),
		Z: -math.Cos(g.pitch) * math.Cos(g.yaw),
	}
	right := forward.Cross(cosmodrift.Vec3{Y: 1}).Normalized()

	speed := 40.0 * dt
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		speed *= 3
	}
	var move cosmodrift.Vec3
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		move = move.Add(forward)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		move = move.Sub(forward)
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		move = move.Add(right)
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		move = move.Sub(right)
	}
	if ebiten.IsKeyPressed(ebiten.KeyR) {
		move = move.Add(cosmodrift.Vec3{Y: 1})
	}
	if ebiten.IsKeyPressed(ebiten.KeyF) {
		move = move.Sub(cosmodrift.Vec3{Y: 1})
	}

	cam.Position = cam.Position.Add(move.Normalized().Scale(speed))
	cam.Look = cam.Position.Add(forward)
	cam.Roll = 0
}

// announceWaypoints shows the caption attached to each waypoint as the
// autonomous camera passes it.
func (g *game) announceWaypoints() {
	if g.dir.Camera().Mode != cosmodrift.ModeAutonomous {
		return
	}
	n := len(g.journey.Waypoints)
	if n == 0 {
		return
	}
	t := math.Mod(g.dir.Elapsed(), g.journey.LoopPeriod) / g.journey.LoopPeriod
	idx := int(t*float64(n)) % n
	if idx == g.lastWaypoint {
		return
	}
	g.lastWaypoint = idx
	if caption := g.journey.Waypoints[idx].Caption; caption != "" {
		g.captions.Notify(cosmodrift.Notification{Title: caption, Duration: 6 * time.Second})
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.loading {
		loaded := g.loader.Loaded()
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("Loading textures %d...", loaded), screenW/2-60, screenH/2)
		return
	}

	view := cosmodrift.NewView(g.dir.Camera(), screenW, screenH, fov)
	g.queue = g.queue[:0]

	uni := g.dir.Universe()
	for _, s := range uni.Stars {
		g.queue = append(g.queue, cosmodrift.Billboard{
			Image: g.spark, World: s.Position, Size: s.Size, Tint: s.Tint, Alpha: 1,
		})
	}
	for _, b := range uni.Bodies {
		g.queue = append(g.queue, g.bodyBillboard(b))
	}

	g.dir.ShootingStars().Pool().EachActive(func(s *cosmodrift.Slot) {
		g.queue = append(g.queue, cosmodrift.Billboard{
			Image: g.spark, World: s.Position, Size: s.Size,
			Tint: cosmodrift.ColorWhite, Alpha: s.Alpha,
		})
	})

	nova := g.dir.Supernova()
	if nova.Active() {
		g.queue = append(g.queue, cosmodrift.Billboard{
			Image: g.glow, World: nova.Position(), Size: nova.Radius() * 2,
			Tint:  cosmodrift.Color{R: 1, G: 0.95, B: 0.8, A: 1},
			Alpha: math.Min(1, nova.Intensity()/3),
		})
	}
	if burst := nova.Burst(); burst != nil {
		burst.Pool().EachActive(func(s *cosmodrift.Slot) {
			g.queue = append(g.queue, cosmodrift.Billboard{
				Image: g.spark, World: s.Position, Size: s.Size,
				Tint: cosmodrift.Color{R: 1, G: 0.85, B: 0.6, A: 1}, Alpha: s.Alpha,
			})
		})
	}

	cosmodrift.DrawBillboards(screen, view, g.queue)
	g.drawOverlay(screen)
}

func (g *game) bodyBillboard(b *cosmodrift.Body) cosmodrift.Billboard {
	bb := cosmodrift.Billboard{
		Image: g.glow, World: b.Position, Size: b.Radius * 2, Tint: b.Tint, Alpha: 1,
	}
	if g.loader != nil {
		if tex, ok := g.loader.Texture(b.Texture); ok {
			bb.Image = tex
		}
	}
	switch b.Kind {
	case cosmodrift.KindSun:
		bb.Tint = cosmodrift.Color{R: 1, G: 0.9, B: 0.55, A: 1}
	case cosmodrift.KindMoon:
		bb.Tint = cosmodrift.Color{R: 0.7, G: 0.7, B: 0.75, A: 1}
	case cosmodrift.KindNebula:
		bb.Tint = cosmodrift.Color{R: 0.6, G: 0.4, B: 0.9, A: 1}
		bb.Alpha = 0.35
	}
	return bb
}

func (g *game) drawOverlay(screen *ebiten.Image) {
	mode := "auto"
	if g.dir.Camera().Mode == cosmodrift.ModeManual {
		mode = "manual"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS %.0f  cam %s  vol %.0f%%\nTab: camera  arrows/WASD: fly  Space: mute  -/=: volume",
		ebiten.ActualFPS(), mode, g.volume*100))

	if title, body, alpha := g.captions.Caption(); alpha > 0.05 {
		y := screenH - 64
		ebitenutil.DebugPrintAt(screen, title, 24, y)
		if body != "" {
			ebitenutil.DebugPrintAt(screen, body, 24, y+16)
		}
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

// makeGlowSprite renders a soft radial disc; sharp controls the falloff.
func makeGlowSprite(d int, sharp float64) *ebiten.Image {
	img := ebiten.NewImage(d, d)
	c := float64(d-1) / 2
	for y := 0; y < d; y++ {
		for x := 0; x < d; x++ {
			dx, dy := (float64(x)-c)/c, (float64(y)-c)/c
			r := math.Sqrt(dx*dx + dy*dy)
			if r >= 1 {
				continue
			}
			a := math.Pow(1-r, sharp)
			v := uint8(a * 255)
			img.Set(x, y, color.RGBA{v, v, v, v})
		}
	}
	return img
}

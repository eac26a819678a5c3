package cosmodrift

import (
	"log/slog"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const ambientSampleRate = beep.SampleRate(48000)

// AmbientAudio plays a procedurally generated space drone under the scene.
// Initialization failure leaves it in silent mode; every method is then a
// no-op, so the frame loop never depends on a working audio device.
type AmbientAudio struct {
	mixer       *beep.Mixer
	drone       *beep.Ctrl
	volume      *effects.Volume
	log         *slog.Logger
	initialized bool
}

// NewAmbientAudio creates an audio controller. Call Init before Start.
func NewAmbientAudio(log *slog.Logger) *AmbientAudio {
	if log == nil {
		log = slog.Default()
	}
	return &AmbientAudio{mixer: &beep.Mixer{}, log: log}
}

// Init opens the speaker and attaches the mixer. A failed init is logged and
// swallowed; the controller stays silent.
func (a *AmbientAudio) Init() {
	if a.initialized {
		return
	}
	if err := speaker.Init(ambientSampleRate, ambientSampleRate.N(100*time.Millisecond)); err != nil {
		a.log.Warn("audio unavailable, running silent", "error", err)
		return
	}
	speaker.Play(a.mixer)
	a.initialized = true
}

// Start begins the endless drone at the given volume (0..1). The generator
// never finishes on its own, so it feeds the mixer directly with no loop
// wrapper.
func (a *AmbientAudio) Start(vol float64) {
	if !a.initialized || a.drone != nil {
		return
	}
	a.volume = volumeFor(newDroneGenerator(ambientSampleRate), vol)
	a.drone = &beep.Ctrl{Streamer: a.volume}

	speaker.Lock()
	a.mixer.Add(a.drone)
	speaker.Unlock()
}

// SetVolume rescales the drone. vol is linear 0..1; 0 is fully silent.
func (a *AmbientAudio) SetVolume(vol float64) {
	if !a.initialized || a.volume == nil {
		return
	}
	speaker.Lock()
	applyVolume(a.volume, vol)
	speaker.Unlock()
}

// TogglePause pauses or resumes the drone without dropping stream position.
func (a *AmbientAudio) TogglePause() {
	if !a.initialized || a.drone == nil {
		return
	}
	speaker.Lock()
	a.drone.Paused = !a.drone.Paused
	speaker.Unlock()
}

// Paused reports whether the drone is currently paused.
func (a *AmbientAudio) Paused() bool {
	return a.drone != nil && a.drone.Paused
}

// Cleanup silences everything.
func (a *AmbientAudio) Cleanup() {
	if !a.initialized {
		return
	}
	speaker.Lock()
	a.mixer.Clear()
	speaker.Unlock()
	a.drone = nil
	a.volume = nil
}

// volumeFor wraps a streamer in a log-scaled volume control. math.Log2(0) is
// -Inf, so zero and below switch to the Silent flag instead.
func volumeFor(s beep.Streamer, vol float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	applyVolume(v, vol)
	return v
}

func applyVolume(v *effects.Volume, vol float64) {
	if vol <= 0 {
		v.Volume = 0
		v.Silent = true
		return
	}
	v.Volume = math.Log2(vol)
	v.Silent = false
}

// droneGenerator layers slow detuned sine waves into an endless low hum.
type droneGenerator struct {
	sr  beep.SampleRate
	pos int
}

func newDroneGenerator(sr beep.SampleRate) *droneGenerator {
	return &droneGenerator{sr: sr}
}

func (g *droneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Two low fundamentals a fifth apart, slightly detuned per channel,
		// breathing on a ~20 second swell.
		swell := 0.6 + 0.4*math.Sin(2*math.Pi*t/20)
		left := 0.10*math.Sin(2*math.Pi*55.0*t) + 0.06*math.Sin(2*math.Pi*82.4*t)
		right := 0.10*math.Sin(2*math.Pi*55.2*t) + 0.06*math.Sin(2*math.Pi*82.6*t)

		samples[i][0] = swell * left
		samples[i][1] = swell * right
		g.pos++
	}
	return len(samples), true
}

func (g *droneGenerator) Err() error { return nil }

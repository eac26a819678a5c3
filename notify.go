package cosmodrift

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Notification is a transient user-facing message: a title, a body, and how
// long it should stay fully visible.
type Notification struct {
	Title    string
	Body     string
	Duration time.Duration
}

// Notifier receives notifications pushed by the core. The UI surface is an
// external collaborator; the core only pushes and never reads back.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(Notification)

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notification) {
	f(n)
}

// Caption fade tuning.
const (
	captionFadeIn  = 0.4 // seconds
	captionFadeOut = 0.8
)

// CaptionBoard is a minimal on-screen text panel: it holds the most recent
// notification and drives its alpha through fade-in, hold, and fade-out. The
// hold/fade schedule is a data-driven Sequence; the alpha ramps are gween
// tweens. A new notification replaces the current one immediately.
//
// CaptionBoard implements Notifier and is advanced from the frame tick like
// every other animated state.
type CaptionBoard struct {
	title string
	body  string
	alpha float64

	seq  *Sequence
	fade *gween.Tween
}

// NewCaptionBoard creates an empty caption board.
func NewCaptionBoard() *CaptionBoard {
	return &CaptionBoard{}
}

// Notify displays n: fade in, hold for n.Duration, fade out.
func (cb *CaptionBoard) Notify(n Notification) {
	cb.title = n.Title
	cb.body = n.Body
	cb.fade = gween.New(float32(cb.alpha), 1, captionFadeIn, ease.OutQuad)
	cb.seq = NewSequence(
		Step{Delay: captionFadeIn + n.Duration.Seconds(), Action: func() {
			cb.fade = gween.New(float32(cb.alpha), 0, captionFadeOut, ease.InQuad)
		}},
	)
}

// Update advances the fade schedule by dt seconds. The active tween advances
// before the sequence so a fade-out scheduled this tick starts cleanly on the
// next one.
func (cb *CaptionBoard) Update(dt float64) {
	if cb.fade != nil {
		v, done := cb.fade.Update(float32(dt))
		cb.alpha = float64(v)
		if done {
			cb.fade = nil
		}
	}
	if cb.seq != nil {
		cb.seq.Update(dt)
		if cb.seq.Done() {
			cb.seq = nil
		}
	}
}

// Caption returns the current text and its display alpha. Alpha 0 means
// nothing should be drawn.
func (cb *CaptionBoard) Caption() (title, body string, alpha float64) {
	return cb.title, cb.body, cb.alpha
}

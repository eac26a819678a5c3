package cosmodrift

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// cameraBlendDuration is how long, in seconds, the camera eases back onto
// the journey path after manual control is released.
const cameraBlendDuration = 1.5

// blendAnim eases the camera from a detached position back onto the path.
type blendAnim struct {
	tween *gween.Tween // blend factor 0→1
	from  Vec3
}

// Camera is the externally owned camera state. In autonomous mode the
// Director places it along the journey path every frame; in manual mode the
// host's interactive controls own Position/Look/Roll and the Director leaves
// them untouched.
type Camera struct {
	Position Vec3
	Look     Vec3
	Roll     float64 // radians about the view axis
	Mode     CameraMode

	blend *blendAnim
}

// SetMode switches who drives the camera. Returning from manual to
// autonomous starts a short eased blend from the current position onto the
// path rather than snapping. Mode switches never reset in-flight particle or
// event animations; only the camera driver changes.
func (c *Camera) SetMode(mode CameraMode) {
	if mode == c.Mode {
		return
	}
	if mode == ModeAutonomous {
		c.blend = &blendAnim{
			tween: gween.New(0, 1, cameraBlendDuration, ease.InOutQuad),
			from:  c.Position,
		}
	}
	c.Mode = mode
}

// ToggleMode flips between autonomous and manual.
func (c *Camera) ToggleMode() {
	if c.Mode == ModeAutonomous {
		c.SetMode(ModeManual)
	} else {
		c.SetMode(ModeAutonomous)
	}
}

// Blending reports whether a manual→autonomous ease is still in progress.
func (c *Camera) Blending() bool {
	return c.blend != nil
}

// place applies an autonomous pose, blending from the last manual position
// while a mode-return ease is active. Called by the Director once per tick.
func (c *Camera) place(pos, look Vec3, roll float64, dt float64) {
	if c.blend != nil {
		k, done := c.blend.tween.Update(float32(dt))
		pos = c.blend.from.Lerp(pos, float64(k))
		if done {
			c.blend = nil
		}
	}
	c.Position = pos
	c.Look = look
	c.Roll = roll
}

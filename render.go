package cosmodrift

import (
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

const nearPlane = 0.1

// View is a camera snapshot prepared for perspective projection. Build one
// per frame with NewView; it is cheap and carries no references.
type View struct {
	Eye           Vec3
	Width, Height float64

	forward, right, up Vec3
	focal              float64
}

// NewView derives an orthonormal camera basis from the camera's position,
// look target and roll, for a screen of the given size. fov is the vertical
// field of view in radians.
func NewView(cam *Camera, width, height, fov float64) View {
	forward := cam.Look.Sub(cam.Position).Normalized()
	if forward.Length() < 1e-9 {
		forward = Vec3{0, 0, -1}
	}
	right := forward.Cross(Vec3{0, 1, 0}).Normalized()
	if right.Length() < 1e-9 {
		right = Vec3{1, 0, 0} // looking straight up or down
	}
	up := right.Cross(forward)

	// Roll rotates the right/up pair about the view axis.
	if cam.Roll != 0 {
		c, s := math.Cos(cam.Roll), math.Sin(cam.Roll)
		right, up = right.Scale(c).Add(up.Scale(s)), up.Scale(c).Sub(right.Scale(s))
	}

	return View{
		Eye:     cam.Position,
		Width:   width,
		Height:  height,
		forward: forward,
		right:   right,
		up:      up,
		focal:   (height / 2) / math.Tan(fov/2),
	}
}

// Project maps a world point to screen coordinates. ok is false when the
// point lies behind the near plane. depth is the distance along the view
// axis, usable for painter ordering.
func (v View) Project(world Vec3) (x, y, depth float64, ok bool) {
	rel := world.Sub(v.Eye)
	depth = rel.Dot(v.forward)
	if depth < nearPlane {
		return 0, 0, depth, false
	}
	x = v.Width/2 + v.focal*rel.Dot(v.right)/depth
	y = v.Height/2 - v.focal*rel.Dot(v.up)/depth
	return x, y, depth, true
}

// SpriteScale returns the on-screen pixel extent of a world-space size at
// the given depth.
func (v View) SpriteScale(size, depth float64) float64 {
	return v.focal * size / depth
}

// Billboard is one camera-facing sprite queued for drawing.
type Billboard struct {
	Image *ebiten.Image
	World Vec3
	Size  float64 // world-space extent
	Tint  Color
	Alpha float64
}

// sortByDepth orders billboards far to near for painter-style compositing.
// Billboards behind the near plane sort to the front and are skipped when
// drawn.
func sortByDepth(items []Billboard, v View) {
	sort.Slice(items, func(i, j int) bool {
		di := items[i].World.Sub(v.Eye).Dot(v.forward)
		dj := items[j].World.Sub(v.Eye).Dot(v.forward)
		return di > dj
	})
}

// DrawBillboards composites the queued sprites onto dst back to front.
func DrawBillboards(dst *ebiten.Image, v View, items []Billboard) {
	sortByDepth(items, v)
	for _, b := range items {
		drawBillboard(dst, v, b)
	}
}

func drawBillboard(dst *ebiten.Image, v View, b Billboard) {
	if b.Image == nil || b.Alpha <= 0 {
		return
	}
	x, y, depth, ok := v.Project(b.World)
	if !ok {
		return
	}
	px := v.SpriteScale(b.Size, depth)
	if px < 0.5 {
		return
	}
	bounds := b.Image.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(px/w, px/h)
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(
		float32(b.Tint.R), float32(b.Tint.G), float32(b.Tint.B),
		float32(b.Tint.A*b.Alpha),
	)
	dst.DrawImage(b.Image, &op)
}

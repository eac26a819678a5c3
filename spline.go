package cosmodrift

import "math"

// Path is an ordered sequence of 3D control points interpolated by a closed
// centripetal Catmull-Rom spline. The curve wraps from the last point back to
// the first, so a camera following it loops seamlessly.
//
// Centripetal parametrization is used rather than uniform because the journey
// waypoints are very unevenly spaced (tens to over a hundred units apart);
// uniform knots produce cusps and self-intersections on such data.
//
// A Path is authored once with AddPoint and treated as immutable afterwards.
type Path struct {
	points []Vec3
	// knots holds one centripetal knot interval per wraparound edge,
	// knots[i] spanning points[i] to points[(i+1)%n]. Rebuilt on every
	// AddPoint; derived state only.
	knots []float64
}

// knotTiny is the threshold below which a knot interval is treated as
// degenerate (coincident control points) and substituted, matching the
// usual centripetal Catmull-Rom safeguard.
const knotTiny = 1e-4

// NewPath creates an empty Path.
func NewPath() *Path {
	return &Path{}
}

// AddPoint appends a control point and recomputes the cached knot table.
// The curve becomes evaluable once at least 2 points exist.
func (p *Path) AddPoint(pt Vec3) {
	p.points = append(p.points, pt)
	p.rebuild()
}

// Len returns the number of control points.
func (p *Path) Len() int {
	return len(p.points)
}

// Points returns a copy of the control points.
func (p *Path) Points() []Vec3 {
	out := make([]Vec3, len(p.points))
	copy(out, p.points)
	return out
}

// rebuild recomputes the per-edge knot intervals. O(n) in point count and
// idempotent: the same control points always yield the same table.
func (p *Path) rebuild() {
	n := len(p.points)
	if n < 2 {
		p.knots = p.knots[:0]
		return
	}
	if cap(p.knots) < n {
		p.knots = make([]float64, n)
	}
	p.knots = p.knots[:n]
	for i := 0; i < n; i++ {
		next := p.points[(i+1)%n]
		distSq := p.points[i].Sub(next).Dot(p.points[i].Sub(next))
		// Centripetal: knot spacing = |Pi+1 - Pi|^0.5 = (distSq)^0.25.
		p.knots[i] = math.Pow(distSq, 0.25)
	}
}

// PointAt returns the interpolated position at fractional arc position t
// along the closed curve. t is taken modulo 1.0, so any real value is valid
// and PointAt(t) == PointAt(t+1). With fewer than 2 control points the curve
// is degenerate and the zero vector is returned; a wrong-but-present frame
// beats a crash in a purely visual system.
func (p *Path) PointAt(t float64) Vec3 {
	n := len(p.points)
	if n < 2 {
		return Vec3{}
	}

	t -= math.Floor(t) // wrap into [0, 1)

	scaled := t * float64(n)
	seg := int(scaled)
	if seg >= n {
		seg = n - 1 // guard t just below 1.0 rounding up
	}
	w := scaled - float64(seg)

	p0 := p.points[(seg-1+n)%n]
	p1 := p.points[seg]
	p2 := p.points[(seg+1)%n]
	p3 := p.points[(seg+2)%n]

	dt0 := p.knots[(seg-1+n)%n]
	dt1 := p.knots[seg]
	dt2 := p.knots[(seg+1)%n]

	// Degenerate interval safeguards: fall back to a sane neighbor so
	// coincident points never divide by zero.
	if dt1 < knotTiny {
		dt1 = 1.0
	}
	if dt0 < knotTiny {
		dt0 = dt1
	}
	if dt2 < knotTiny {
		dt2 = dt1
	}

	return Vec3{
		catmullRom(p0.X, p1.X, p2.X, p3.X, dt0, dt1, dt2, w),
		catmullRom(p0.Y, p1.Y, p2.Y, p3.Y, dt0, dt1, dt2, w),
		catmullRom(p0.Z, p1.Z, p2.Z, p3.Z, dt0, dt1, dt2, w),
	}
}

// catmullRom evaluates one coordinate of a non-uniform Catmull-Rom segment
// between x1 and x2 as a cubic Hermite polynomial, with tangents derived from
// the knot intervals dt0, dt1, dt2. At w=0 the result is exactly x1; at w=1
// exactly x2, which keeps the curve passing through every control point.
func catmullRom(x0, x1, x2, x3, dt0, dt1, dt2, w float64) float64 {
	// Tangents scaled to the local parameter range.
	t1 := ((x1-x0)/dt0 - (x2-x0)/(dt0+dt1) + (x2-x1)/dt1) * dt1
	t2 := ((x2-x1)/dt1 - (x3-x1)/(dt1+dt2) + (x3-x2)/dt2) * dt1

	c0 := x1
	c1 := t1
	c2 := -3*x1 + 3*x2 - 2*t1 - t2
	c3 := 2*x1 - 2*x2 + t1 + t2

	return c0 + w*(c1+w*(c2+w*c3))
}

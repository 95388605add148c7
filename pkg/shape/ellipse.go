package shape

import (
	"math"

	"github.com/chazu/sketchgeom/pkg/geom"
)

// EllipseStrategy implements axis-aligned ellipse geometry. A zero
// radius collapses the ellipse to the segment along its other axis.
type EllipseStrategy struct{}

var _ Strategy[Ellipse] = EllipseStrategy{}

func (EllipseStrategy) Bounds(s Ellipse) geom.Bounds {
	c := s.Point.Clean()
	rx, ry := geom.NonNegative(s.RadiusX), geom.NonNegative(s.RadiusY)
	return geom.NewBounds(c.X-rx, c.X+rx, c.Y-ry, c.Y+ry)
}

func (EllipseStrategy) HitPoint(s Ellipse, p geom.Vec2) bool {
	return insideEllipse(s.Point.Clean(), s.RadiusX, s.RadiusY, p)
}

func (e EllipseStrategy) HitBounds(s Ellipse, b geom.Bounds) bool {
	own := e.Bounds(s)
	if !geom.BoundsCollide(own, b) {
		return false
	}
	if geom.BoundsContain(b, own) {
		return true
	}
	c := s.Point.Clean()
	if geom.EllipseCrossesBounds(c, s.RadiusX, s.RadiusY, b) {
		return true
	}
	return insideEllipse(c, s.RadiusX, s.RadiusY, b.Center())
}

// Rotate moves the centre about pivot. The ellipse stays axis-aligned;
// its radii swap on odd quarter turns.
func (EllipseStrategy) Rotate(s Ellipse, pivot geom.Vec2, angle float64) Ellipse {
	if noTurn(angle) {
		return s
	}
	s.Point = geom.Rotate(s.Point, pivot, angle)
	if swapsAxes(angle) {
		s.RadiusX, s.RadiusY = s.RadiusY, s.RadiusX
	}
	return s
}

func (EllipseStrategy) Translate(s Ellipse, d geom.Vec2) Ellipse {
	s.Point = s.Point.Add(d)
	return s
}

func (EllipseStrategy) Scale(s Ellipse, f float64) Ellipse {
	k := magnitude(f)
	s.RadiusX = geom.NonNegative(s.RadiusX) * k
	s.RadiusY = geom.NonNegative(s.RadiusY) * k
	return s
}

func (EllipseStrategy) Stretch(s Ellipse, fx, fy float64) Shape {
	s.RadiusX = geom.NonNegative(s.RadiusX) * magnitude(fx)
	s.RadiusY = geom.NonNegative(s.RadiusY) * magnitude(fy)
	return s
}

// insideEllipse reports whether p satisfies (dx/rx)² + (dy/ry)² ≤ 1,
// treating a zero radius as the degenerate segment or point.
func insideEllipse(c geom.Vec2, rx, ry float64, p geom.Vec2) bool {
	rx, ry = geom.NonNegative(rx), geom.NonNegative(ry)
	dx, dy := p.X-c.X, p.Y-c.Y
	switch {
	case rx == 0 && ry == 0:
		return dx == 0 && dy == 0
	case rx == 0:
		return dx == 0 && math.Abs(dy) <= ry
	case ry == 0:
		return dy == 0 && math.Abs(dx) <= rx
	}
	nx, ny := dx/rx, dy/ry
	return nx*nx+ny*ny <= 1
}

package shape

import "github.com/chazu/sketchgeom/pkg/geom"

// CircleStrategy implements circle geometry. A negative radius behaves
// as zero.
type CircleStrategy struct{}

var _ Strategy[Circle] = CircleStrategy{}

func (CircleStrategy) Bounds(s Circle) geom.Bounds {
	return geom.Square(s.Point.Clean(), s.Radius)
}

func (CircleStrategy) HitPoint(s Circle, p geom.Vec2) bool {
	return geom.Dist(s.Point.Clean(), p) < geom.NonNegative(s.Radius)
}

// HitBounds reports a hit when the box holds the whole circle, the
// circle's boundary crosses an edge of the box, or the box sits entirely
// inside the circle.
func (c CircleStrategy) HitBounds(s Circle, b geom.Bounds) bool {
	own := c.Bounds(s)
	if !geom.BoundsCollide(own, b) {
		return false
	}
	if geom.BoundsContain(b, own) {
		return true
	}
	centre, r := s.Point.Clean(), geom.NonNegative(s.Radius)
	if geom.EllipseCrossesBounds(centre, r, r, b) {
		return true
	}
	// No crossing found. The box point nearest the centre decides.
	return geom.Dist(centre, geom.Nearest(b, centre)) <= r
}

func (CircleStrategy) Rotate(s Circle, pivot geom.Vec2, angle float64) Circle {
	if noTurn(angle) {
		return s
	}
	s.Point = geom.Rotate(s.Point, pivot, angle)
	return s
}

func (CircleStrategy) Translate(s Circle, d geom.Vec2) Circle {
	s.Point = s.Point.Add(d)
	return s
}

func (CircleStrategy) Scale(s Circle, f float64) Circle {
	s.Radius = geom.NonNegative(s.Radius) * magnitude(f)
	return s
}

// Stretch returns an Ellipse unless both factors have the same
// magnitude.
func (CircleStrategy) Stretch(s Circle, fx, fy float64) Shape {
	kx, ky := magnitude(fx), magnitude(fy)
	r := geom.NonNegative(s.Radius)
	if kx == ky {
		return Circle{Point: s.Point, Radius: r * kx}
	}
	return Ellipse{Point: s.Point, RadiusX: r * kx, RadiusY: r * ky}
}

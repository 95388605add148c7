package shape

import "github.com/chazu/sketchgeom/pkg/geom"

// RectangleStrategy implements axis-aligned rectangle geometry anchored
// at the top-left corner. Negative size components behave as zero.
type RectangleStrategy struct{}

var _ Strategy[Rectangle] = RectangleStrategy{}

func (RectangleStrategy) Bounds(s Rectangle) geom.Bounds {
	p := s.Point.Clean()
	return geom.NewBounds(
		p.X, p.X+geom.NonNegative(s.Size.X),
		p.Y, p.Y+geom.NonNegative(s.Size.Y),
	)
}

func (r RectangleStrategy) HitPoint(s Rectangle, p geom.Vec2) bool {
	return geom.PointInBounds(p, r.Bounds(s))
}

// HitBounds is an overlap test, which also covers either box containing
// the other.
func (r RectangleStrategy) HitBounds(s Rectangle, b geom.Bounds) bool {
	return geom.BoundsCollide(r.Bounds(s), b)
}

// Rotate moves the rectangle's centre about pivot. The rectangle stays
// axis-aligned; width and height swap on odd quarter turns.
func (RectangleStrategy) Rotate(s Rectangle, pivot geom.Vec2, angle float64) Rectangle {
	if noTurn(angle) {
		return s
	}
	size := geom.V(geom.NonNegative(s.Size.X), geom.NonNegative(s.Size.Y))
	s.Point = rotateCentred(s.Point, size, pivot, angle)
	if swapsAxes(angle) {
		s.Size = geom.V(s.Size.Y, s.Size.X)
	}
	return s
}

func (RectangleStrategy) Translate(s Rectangle, d geom.Vec2) Rectangle {
	s.Point = s.Point.Add(d)
	return s
}

func (RectangleStrategy) Scale(s Rectangle, f float64) Rectangle {
	k := magnitude(f)
	s.Size = geom.V(geom.NonNegative(s.Size.X)*k, geom.NonNegative(s.Size.Y)*k)
	return s
}

func (RectangleStrategy) Stretch(s Rectangle, fx, fy float64) Shape {
	s.Size = geom.V(
		geom.NonNegative(s.Size.X)*magnitude(fx),
		geom.NonNegative(s.Size.Y)*magnitude(fy),
	)
	return s
}

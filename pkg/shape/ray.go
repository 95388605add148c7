package shape

import (
	"math"

	"github.com/chazu/sketchgeom/pkg/geom"
)

// RayStrategy implements ray geometry: bounded at the origin, unbounded
// along the direction.
type RayStrategy struct{}

var _ Strategy[Ray] = RayStrategy{}

func (RayStrategy) Bounds(s Ray) geom.Bounds {
	return reachBounds(s.Point.Clean(), s.Direction.Unit(), false)
}

// HitPoint reports a hit within LineTolerance of the ray that does not
// lie behind the origin.
func (RayStrategy) HitPoint(s Ray, p geom.Vec2) bool {
	o, d := s.Point.Clean(), s.Direction.Unit()
	if d.IsZero() {
		return geom.Dist(o, p) < LineTolerance
	}
	v := p.Sub(o)
	return d.Dot(v) >= 0 && math.Abs(d.Cross(v)) < LineTolerance
}

func (r RayStrategy) HitBounds(s Ray, b geom.Bounds) bool {
	if !geom.BoundsCollide(r.Bounds(s), b) {
		return false
	}
	_, _, ok := geom.ClipLine(s.Point.Clean(), s.Direction.Unit(), 0, geom.Inf, b)
	return ok
}

func (RayStrategy) Rotate(s Ray, pivot geom.Vec2, angle float64) Ray {
	if noTurn(angle) {
		return s
	}
	return Ray{
		Point:     geom.Rotate(s.Point, pivot, angle),
		Direction: geom.RotateDir(s.Direction, angle),
	}
}

func (RayStrategy) Translate(s Ray, d geom.Vec2) Ray {
	s.Point = s.Point.Add(d)
	return s
}

func (RayStrategy) Scale(s Ray, _ float64) Ray { return s }

func (RayStrategy) Stretch(s Ray, fx, fy float64) Shape {
	s.Direction = stretchDir(s.Direction, fx, fy)
	return s
}

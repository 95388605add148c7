package shape

import (
	"math"

	"github.com/chazu/sketchgeom/pkg/geom"
)

// LineTolerance is the perpendicular distance within which a point probe
// hits a Line, Ray or LineSegment.
const LineTolerance = 4

// LineStrategy implements infinite line geometry. A zero direction
// degrades the line to its anchor point.
type LineStrategy struct{}

var _ Strategy[Line] = LineStrategy{}

// Bounds is unbounded on every axis the line moves along and degenerate
// on an axis it is parallel to.
func (LineStrategy) Bounds(s Line) geom.Bounds {
	return reachBounds(s.Point.Clean(), s.Direction.Unit(), true)
}

func (LineStrategy) HitPoint(s Line, p geom.Vec2) bool {
	o, d := s.Point.Clean(), s.Direction.Unit()
	if d.IsZero() {
		return geom.Dist(o, p) < LineTolerance
	}
	return math.Abs(d.Cross(p.Sub(o))) < LineTolerance
}

func (l LineStrategy) HitBounds(s Line, b geom.Bounds) bool {
	if !geom.BoundsCollide(l.Bounds(s), b) {
		return false
	}
	_, _, ok := geom.ClipLine(s.Point.Clean(), s.Direction.Unit(), -geom.Inf, geom.Inf, b)
	return ok
}

func (LineStrategy) Rotate(s Line, pivot geom.Vec2, angle float64) Line {
	if noTurn(angle) {
		return s
	}
	return Line{
		Point:     geom.Rotate(s.Point, pivot, angle),
		Direction: geom.RotateDir(s.Direction, angle),
	}
}

func (LineStrategy) Translate(s Line, d geom.Vec2) Line {
	s.Point = s.Point.Add(d)
	return s
}

// Scale leaves a line unchanged; it has no extent to scale.
func (LineStrategy) Scale(s Line, _ float64) Line { return s }

func (LineStrategy) Stretch(s Line, fx, fy float64) Shape {
	s.Direction = stretchDir(s.Direction, fx, fy)
	return s
}

// reachBounds returns the bounds of the line through o along unit d, or
// of the ray from o along d when both is false.
func reachBounds(o, d geom.Vec2, both bool) geom.Bounds {
	minX, maxX := reach(o.X, d.X, both)
	minY, maxY := reach(o.Y, d.Y, both)
	return geom.NewBounds(minX, maxX, minY, maxY)
}

func reach(p, d float64, both bool) (lo, hi float64) {
	switch {
	case d == 0:
		return p, p
	case both:
		return -geom.Inf, geom.Inf
	case d > 0:
		return p, geom.Inf
	default:
		return -geom.Inf, p
	}
}

package shape

import (
	"math"

	"github.com/chazu/sketchgeom/pkg/geom"
)

// SegmentStrategy implements line segment geometry. Start is the anchor
// for scale and stretch.
type SegmentStrategy struct{}

var _ Strategy[LineSegment] = SegmentStrategy{}

func (SegmentStrategy) Bounds(s LineSegment) geom.Bounds {
	return geom.BoundsOf(s.Start.Clean(), s.End.Clean())
}

// HitPoint reports a hit within LineTolerance of the segment whose
// projection falls inside the segment's span.
func (SegmentStrategy) HitPoint(s LineSegment, p geom.Vec2) bool {
	a := s.Start.Clean()
	seg := s.End.Clean().Sub(a)
	ll := seg.Dot(seg)
	v := p.Sub(a)
	if ll == 0 {
		return v.Len() < LineTolerance
	}
	t := seg.Dot(v) / ll
	if t < 0 || t > 1 {
		return false
	}
	return math.Abs(seg.Cross(v))/math.Sqrt(ll) < LineTolerance
}

// HitBounds reports whether any part of the segment lies in b, which
// covers both an edge crossing and an endpoint inside the box.
func (g SegmentStrategy) HitBounds(s LineSegment, b geom.Bounds) bool {
	if !geom.BoundsCollide(g.Bounds(s), b) {
		return false
	}
	a := s.Start.Clean()
	_, _, ok := geom.ClipLine(a, s.End.Clean().Sub(a), 0, 1, b)
	return ok
}

func (SegmentStrategy) Rotate(s LineSegment, pivot geom.Vec2, angle float64) LineSegment {
	if noTurn(angle) {
		return s
	}
	return LineSegment{
		Start: geom.Rotate(s.Start, pivot, angle),
		End:   geom.Rotate(s.End, pivot, angle),
	}
}

func (SegmentStrategy) Translate(s LineSegment, d geom.Vec2) LineSegment {
	return LineSegment{Start: s.Start.Add(d), End: s.End.Add(d)}
}

func (SegmentStrategy) Scale(s LineSegment, f float64) LineSegment {
	k := magnitude(f)
	s.End = s.Start.Add(s.End.Sub(s.Start).Mul(k))
	return s
}

func (SegmentStrategy) Stretch(s LineSegment, fx, fy float64) Shape {
	s.End = s.Start.Add(s.End.Sub(s.Start).MulXY(magnitude(fx), magnitude(fy)))
	return s
}

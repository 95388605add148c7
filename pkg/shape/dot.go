package shape

import "github.com/chazu/sketchgeom/pkg/geom"

// DotSize is the side of the square a Dot occupies.
const DotSize = 4

// DotStrategy treats a dot as a DotSize square around its point. Scale
// and stretch leave it unchanged.
type DotStrategy struct{}

var _ Strategy[Dot] = DotStrategy{}

func (DotStrategy) Bounds(s Dot) geom.Bounds {
	return geom.Square(s.Point.Clean(), DotSize/2)
}

func (DotStrategy) HitPoint(s Dot, p geom.Vec2) bool {
	return geom.Dist(s.Point.Clean(), p) < DotSize/2
}

func (d DotStrategy) HitBounds(s Dot, b geom.Bounds) bool {
	return geom.PointInBounds(s.Point.Clean(), b) || geom.BoundsCollide(d.Bounds(s), b)
}

func (DotStrategy) Rotate(s Dot, pivot geom.Vec2, angle float64) Dot {
	if noTurn(angle) {
		return s
	}
	return Dot{Point: geom.Rotate(s.Point, pivot, angle)}
}

func (DotStrategy) Translate(s Dot, d geom.Vec2) Dot {
	return Dot{Point: s.Point.Add(d)}
}

func (DotStrategy) Scale(s Dot, _ float64) Dot { return s }

func (DotStrategy) Stretch(s Dot, _, _ float64) Shape { return s }

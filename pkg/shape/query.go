package shape

import "github.com/chazu/sketchgeom/pkg/geom"

// Query is a hit-test probe: either a point or a region. The zero value
// probes the origin.
type Query struct {
	point  geom.Vec2
	region geom.Bounds
	isBox  bool
}

// At returns a point probe.
func At(p geom.Vec2) Query { return Query{point: p} }

// Within returns a region probe.
func Within(b geom.Bounds) Query { return Query{region: b, isBox: true} }

// Point returns the probed point and whether q is a point probe.
func (q Query) Point() (geom.Vec2, bool) { return q.point, !q.isBox }

// Region returns the probed box and whether q is a region probe.
func (q Query) Region() (geom.Bounds, bool) { return q.region, q.isBox }

func (q Query) String() string {
	if q.isBox {
		return "within " + boundsString(q.region)
	}
	return "at " + q.point.String()
}

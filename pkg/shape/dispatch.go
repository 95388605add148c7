package shape

import "github.com/chazu/sketchgeom/pkg/geom"

// Each kind forwards to its own Registry field. Adding a kind means
// adding a field, a NewRegistry entry and a block here; missing any of
// them fails to compile.

func (s Dot) bounds(r *Registry) geom.Bounds { return r.Dot.Bounds(s) }
func (s Dot) hitPoint(r *Registry, p geom.Vec2) bool { return r.Dot.HitPoint(s, p) }
func (s Dot) hitBounds(r *Registry, b geom.Bounds) bool { return r.Dot.HitBounds(s, b) }
func (s Dot) translate(r *Registry, d geom.Vec2) Shape { return r.Dot.Translate(s, d) }
func (s Dot) scale(r *Registry, f float64) Shape { return r.Dot.Scale(s, f) }
func (s Dot) stretch(r *Registry, fx, fy float64) Shape { return r.Dot.Stretch(s, fx, fy) }
func (s Dot) rotate(r *Registry, p geom.Vec2, a float64) Shape {
	return r.Dot.Rotate(s, p, a)
}

func (s Circle) bounds(r *Registry) geom.Bounds { return r.Circle.Bounds(s) }
func (s Circle) hitPoint(r *Registry, p geom.Vec2) bool { return r.Circle.HitPoint(s, p) }
func (s Circle) hitBounds(r *Registry, b geom.Bounds) bool { return r.Circle.HitBounds(s, b) }
func (s Circle) translate(r *Registry, d geom.Vec2) Shape { return r.Circle.Translate(s, d) }
func (s Circle) scale(r *Registry, f float64) Shape { return r.Circle.Scale(s, f) }
func (s Circle) stretch(r *Registry, fx, fy float64) Shape {
	return r.Circle.Stretch(s, fx, fy)
}
func (s Circle) rotate(r *Registry, p geom.Vec2, a float64) Shape {
	return r.Circle.Rotate(s, p, a)
}

func (s Ellipse) bounds(r *Registry) geom.Bounds { return r.Ellipse.Bounds(s) }
func (s Ellipse) hitPoint(r *Registry, p geom.Vec2) bool { return r.Ellipse.HitPoint(s, p) }
func (s Ellipse) hitBounds(r *Registry, b geom.Bounds) bool { return r.Ellipse.HitBounds(s, b) }
func (s Ellipse) translate(r *Registry, d geom.Vec2) Shape { return r.Ellipse.Translate(s, d) }
func (s Ellipse) scale(r *Registry, f float64) Shape { return r.Ellipse.Scale(s, f) }
func (s Ellipse) stretch(r *Registry, fx, fy float64) Shape {
	return r.Ellipse.Stretch(s, fx, fy)
}
func (s Ellipse) rotate(r *Registry, p geom.Vec2, a float64) Shape {
	return r.Ellipse.Rotate(s, p, a)
}

func (s Rectangle) bounds(r *Registry) geom.Bounds { return r.Rectangle.Bounds(s) }
func (s Rectangle) hitPoint(r *Registry, p geom.Vec2) bool { return r.Rectangle.HitPoint(s, p) }
func (s Rectangle) hitBounds(r *Registry, b geom.Bounds) bool {
	return r.Rectangle.HitBounds(s, b)
}
func (s Rectangle) translate(r *Registry, d geom.Vec2) Shape { return r.Rectangle.Translate(s, d) }
func (s Rectangle) scale(r *Registry, f float64) Shape { return r.Rectangle.Scale(s, f) }
func (s Rectangle) stretch(r *Registry, fx, fy float64) Shape {
	return r.Rectangle.Stretch(s, fx, fy)
}
func (s Rectangle) rotate(r *Registry, p geom.Vec2, a float64) Shape {
	return r.Rectangle.Rotate(s, p, a)
}

func (s Line) bounds(r *Registry) geom.Bounds { return r.Line.Bounds(s) }
func (s Line) hitPoint(r *Registry, p geom.Vec2) bool { return r.Line.HitPoint(s, p) }
func (s Line) hitBounds(r *Registry, b geom.Bounds) bool { return r.Line.HitBounds(s, b) }
func (s Line) translate(r *Registry, d geom.Vec2) Shape { return r.Line.Translate(s, d) }
func (s Line) scale(r *Registry, f float64) Shape { return r.Line.Scale(s, f) }
func (s Line) stretch(r *Registry, fx, fy float64) Shape { return r.Line.Stretch(s, fx, fy) }
func (s Line) rotate(r *Registry, p geom.Vec2, a float64) Shape {
	return r.Line.Rotate(s, p, a)
}

func (s Ray) bounds(r *Registry) geom.Bounds { return r.Ray.Bounds(s) }
func (s Ray) hitPoint(r *Registry, p geom.Vec2) bool { return r.Ray.HitPoint(s, p) }
func (s Ray) hitBounds(r *Registry, b geom.Bounds) bool { return r.Ray.HitBounds(s, b) }
func (s Ray) translate(r *Registry, d geom.Vec2) Shape { return r.Ray.Translate(s, d) }
func (s Ray) scale(r *Registry, f float64) Shape { return r.Ray.Scale(s, f) }
func (s Ray) stretch(r *Registry, fx, fy float64) Shape { return r.Ray.Stretch(s, fx, fy) }
func (s Ray) rotate(r *Registry, p geom.Vec2, a float64) Shape {
	return r.Ray.Rotate(s, p, a)
}

func (s LineSegment) bounds(r *Registry) geom.Bounds { return r.Segment.Bounds(s) }
func (s LineSegment) hitPoint(r *Registry, p geom.Vec2) bool { return r.Segment.HitPoint(s, p) }
func (s LineSegment) hitBounds(r *Registry, b geom.Bounds) bool {
	return r.Segment.HitBounds(s, b)
}
func (s LineSegment) translate(r *Registry, d geom.Vec2) Shape { return r.Segment.Translate(s, d) }
func (s LineSegment) scale(r *Registry, f float64) Shape { return r.Segment.Scale(s, f) }
func (s LineSegment) stretch(r *Registry, fx, fy float64) Shape {
	return r.Segment.Stretch(s, fx, fy)
}
func (s LineSegment) rotate(r *Registry, p geom.Vec2, a float64) Shape {
	return r.Segment.Rotate(s, p, a)
}

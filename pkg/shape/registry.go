package shape

import (
	"fmt"

	"github.com/chazu/sketchgeom/pkg/geom"
)

// Strategy implements the geometry of one shape kind. Transforms return
// a new value and never modify s. Stretch returns a Shape because it may
// change the kind (a circle stretched unevenly becomes an ellipse).
type Strategy[S Shape] interface {
	Bounds(s S) geom.Bounds
	HitPoint(s S, p geom.Vec2) bool
	HitBounds(s S, b geom.Bounds) bool
	Rotate(s S, pivot geom.Vec2, angle float64) S
	Translate(s S, d geom.Vec2) S
	Scale(s S, f float64) S
	Stretch(s S, fx, fy float64) Shape
}

// Registry holds one strategy per kind. Resolving a kind to its strategy
// is done by the shape itself: each variant's unexported methods in
// dispatch.go forward to its own field, so a kind without a strategy does
// not compile and there is no runtime default.
type Registry struct {
	Dot       Strategy[Dot]
	Circle    Strategy[Circle]
	Ellipse   Strategy[Ellipse]
	Rectangle Strategy[Rectangle]
	Line      Strategy[Line]
	Ray       Strategy[Ray]
	Segment   Strategy[LineSegment]
}

// NewRegistry returns a registry of the built-in strategies. Callers may
// replace individual fields on the returned value before use.
func NewRegistry() *Registry {
	return &Registry{
		DotStrategy{},
		CircleStrategy{},
		EllipseStrategy{},
		RectangleStrategy{},
		LineStrategy{},
		RayStrategy{},
		SegmentStrategy{},
	}
}

// Bounds returns the axis-aligned bounds of s. Line and Ray report
// geom.Inf on the axes they extend along.
func (r *Registry) Bounds(s Shape) geom.Bounds { return s.bounds(r) }

// HitTest answers a point or region probe against s.
func (r *Registry) HitTest(s Shape, q Query) bool {
	if b, ok := q.Region(); ok {
		return s.hitBounds(r, b)
	}
	return s.hitPoint(r, q.point)
}

// HitPoint reports whether p is on or inside s.
func (r *Registry) HitPoint(s Shape, p geom.Vec2) bool { return s.hitPoint(r, p) }

// HitBounds reports whether s intersects or lies inside b. A true result
// implies geom.BoundsCollide(r.Bounds(s), b).
func (r *Registry) HitBounds(s Shape, b geom.Bounds) bool { return s.hitBounds(r, b) }

// Rotate returns s rotated by angle radians about pivot.
func (r *Registry) Rotate(s Shape, pivot geom.Vec2, angle float64) Shape {
	return s.rotate(r, pivot, angle)
}

// Translate returns s offset by d.
func (r *Registry) Translate(s Shape, d geom.Vec2) Shape { return s.translate(r, d) }

// Scale returns s scaled uniformly about its anchor.
func (r *Registry) Scale(s Shape, f float64) Shape { return s.scale(r, f) }

// Stretch returns s scaled per axis about its anchor.
func (r *Registry) Stretch(s Shape, fx, fy float64) Shape { return s.stretch(r, fx, fy) }

// ---------------------------------------------------------------------------
// Package-level operations on the built-in strategies
// ---------------------------------------------------------------------------

var builtin = NewRegistry()

// Bounds returns the bounds of s using the built-in strategies.
func Bounds(s Shape) geom.Bounds { return builtin.Bounds(s) }

// HitTest answers q against s using the built-in strategies.
func HitTest(s Shape, q Query) bool { return builtin.HitTest(s, q) }

// HitPoint is HitTest with a point probe.
func HitPoint(s Shape, p geom.Vec2) bool { return builtin.HitPoint(s, p) }

// HitBounds is HitTest with a region probe.
func HitBounds(s Shape, b geom.Bounds) bool { return builtin.HitBounds(s, b) }

// Rotate turns s by angle radians about pivot using the built-in strategies.
func Rotate(s Shape, pivot geom.Vec2, angle float64) Shape {
	return builtin.Rotate(s, pivot, angle)
}

// Translate moves s by d using the built-in strategies.
func Translate(s Shape, d geom.Vec2) Shape { return builtin.Translate(s, d) }

// Scale scales s by f about its anchor using the built-in strategies.
func Scale(s Shape, f float64) Shape { return builtin.Scale(s, f) }

// Stretch scales s by fx and fy about its anchor using the built-in
// strategies. The result may be of a different kind.
func Stretch(s Shape, fx, fy float64) Shape { return builtin.Stretch(s, fx, fy) }

func boundsString(b geom.Bounds) string {
	return fmt.Sprintf("[%g,%g]x[%g,%g]", b.MinX, b.MaxX, b.MinY, b.MaxY)
}

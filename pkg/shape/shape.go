package shape

import (
	"fmt"

	"github.com/chazu/sketchgeom/pkg/geom"
)

// Kind enumerates the closed set of shape primitives.
type Kind int

const (
	KindDot       Kind = iota // fixed-size point marker
	KindCircle                // centre and radius
	KindEllipse               // centre and axis-aligned radii
	KindRectangle             // top-left corner and size
	KindLine                  // infinite in both directions
	KindRay                   // infinite in one direction
	KindSegment               // bounded by two endpoints
)

func (k Kind) String() string {
	switch k {
	case KindDot:
		return "dot"
	case KindCircle:
		return "circle"
	case KindEllipse:
		return "ellipse"
	case KindRectangle:
		return "rectangle"
	case KindLine:
		return "line"
	case KindRay:
		return "ray"
	case KindSegment:
		return "segment"
	default:
		return "unknown"
	}
}

// Shape is a 2D primitive value. The unexported methods restrict
// implementations to this package and route every operation to the
// matching field of a Registry; see dispatch.go.
type Shape interface {
	Kind() Kind
	// Anchor is the reference point scale and stretch hold fixed.
	Anchor() geom.Vec2

	bounds(r *Registry) geom.Bounds
	hitPoint(r *Registry, p geom.Vec2) bool
	hitBounds(r *Registry, b geom.Bounds) bool
	rotate(r *Registry, pivot geom.Vec2, angle float64) Shape
	translate(r *Registry, d geom.Vec2) Shape
	scale(r *Registry, f float64) Shape
	stretch(r *Registry, fx, fy float64) Shape
}

// Dot is a point marker drawn as a small fixed-size square.
type Dot struct {
	Point geom.Vec2 `json:"point"`
}

// Circle is centred on Point.
type Circle struct {
	Point  geom.Vec2 `json:"point"`
	Radius float64   `json:"radius"`
}

// Ellipse is centred on Point with axis-aligned radii.
type Ellipse struct {
	Point   geom.Vec2 `json:"point"`
	RadiusX float64   `json:"radiusX"`
	RadiusY float64   `json:"radiusY"`
}

// Rectangle spans [Point, Point+Size].
type Rectangle struct {
	Point geom.Vec2 `json:"point"`
	Size  geom.Vec2 `json:"size"`
}

// Line passes through Point along Direction, unbounded both ways.
// Direction is expected to be a unit vector; other lengths are
// normalized where the value is used.
type Line struct {
	Point     geom.Vec2 `json:"point"`
	Direction geom.Vec2 `json:"direction"`
}

// Ray starts at Point and extends without bound along Direction.
type Ray struct {
	Point     geom.Vec2 `json:"point"`
	Direction geom.Vec2 `json:"direction"`
}

// LineSegment joins Start to End. Start is its anchor for scale and
// stretch.
type LineSegment struct {
	Start geom.Vec2 `json:"start"`
	End   geom.Vec2 `json:"end"`
}

func (Dot) Kind() Kind { return KindDot }
func (Circle) Kind() Kind { return KindCircle }
func (Ellipse) Kind() Kind { return KindEllipse }
func (Rectangle) Kind() Kind { return KindRectangle }
func (Line) Kind() Kind { return KindLine }
func (Ray) Kind() Kind { return KindRay }
func (LineSegment) Kind() Kind { return KindSegment }

func (s Dot) Anchor() geom.Vec2 { return s.Point }
func (s Circle) Anchor() geom.Vec2 { return s.Point }
func (s Ellipse) Anchor() geom.Vec2 { return s.Point }
func (s Rectangle) Anchor() geom.Vec2 { return s.Point }
func (s Line) Anchor() geom.Vec2 { return s.Point }
func (s Ray) Anchor() geom.Vec2 { return s.Point }
func (s LineSegment) Anchor() geom.Vec2 { return s.Start }

func (s Dot) String() string { return fmt.Sprintf("dot%v", s.Point) }

func (s Circle) String() string {
	return fmt.Sprintf("circle%v r=%g", s.Point, s.Radius)
}

func (s Ellipse) String() string {
	return fmt.Sprintf("ellipse%v rx=%g ry=%g", s.Point, s.RadiusX, s.RadiusY)
}

func (s Rectangle) String() string {
	return fmt.Sprintf("rect%v size=%v", s.Point, s.Size)
}

func (s Line) String() string {
	return fmt.Sprintf("line%v dir=%v", s.Point, s.Direction)
}

func (s Ray) String() string {
	return fmt.Sprintf("ray%v dir=%v", s.Point, s.Direction)
}

func (s LineSegment) String() string {
	return fmt.Sprintf("segment%v-%v", s.Start, s.End)
}

package geom

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
)

// Vec2 is an immutable 2D vector or point.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// V is a convenience constructor for Vec2.
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// Zero is the origin.
var Zero = Vec2{}

// sdfx and fromSdfx convert to and from the sdfx vector type. Vec2
// mirrors v2.Vec field for field, so the conversion is free.
func (v Vec2) sdfx() v2.Vec { return v2.Vec{X: v.X, Y: v.Y} }

func fromSdfx(v v2.Vec) Vec2 { return Vec2{X: v.X, Y: v.Y} }

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return fromSdfx(v.sdfx().Add(o.sdfx())) }

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return fromSdfx(v.sdfx().Sub(o.sdfx())) }

// Mul returns v scaled by k.
func (v Vec2) Mul(k float64) Vec2 { return fromSdfx(v.sdfx().MulScalar(k)) }

// Neg returns -v.
func (v Vec2) Neg() Vec2 { return fromSdfx(v.sdfx().Neg()) }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 { return v.sdfx().Dot(o.sdfx()) }

// Len returns the length of v.
func (v Vec2) Len() float64 { return v.sdfx().Length() }

// MulXY scales each component independently.
func (v Vec2) MulXY(kx, ky float64) Vec2 {
	return fromSdfx(v.sdfx().Mul(v2.Vec{X: kx, Y: ky}))
}

// Cross returns the z component of the 3D cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Unit returns v scaled to length 1. The zero vector is returned as is.
func (v Vec2) Unit() Vec2 {
	l := v.Len()
	if l == 0 || math.IsNaN(l) {
		return Zero
	}
	return v.Mul(1 / l)
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Clean returns v with NaN components replaced by zero.
func (v Vec2) Clean() Vec2 {
	if math.IsNaN(v.X) {
		v.X = 0
	}
	if math.IsNaN(v.Y) {
		v.Y = 0
	}
	return v
}

// IsNaN reports whether either component is NaN.
func (v Vec2) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}

// Equals reports whether v and o differ by at most tol on each axis.
func (v Vec2) Equals(o Vec2, tol float64) bool {
	return math.Abs(v.X-o.X) <= tol && math.Abs(v.Y-o.Y) <= tol
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Vec2) float64 {
	return a.Sub(b).Len()
}

// Rotate rotates v about pivot by angle radians, counter-clockwise in a
// y-up frame. A zero (or NaN) angle returns v unchanged.
func Rotate(v, pivot Vec2, angle float64) Vec2 {
	if angle == 0 || math.IsNaN(angle) || v == pivot {
		return v
	}
	m := sdf.Translate2d(pivot.sdfx()).
		Mul(sdf.Rotate2d(angle)).
		Mul(sdf.Translate2d(pivot.Neg().sdfx()))
	return fromSdfx(m.MulPosition(v.sdfx()))
}

// RotateDir rotates a direction vector by angle radians about the origin.
func RotateDir(d Vec2, angle float64) Vec2 {
	return Rotate(d, Zero, angle)
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

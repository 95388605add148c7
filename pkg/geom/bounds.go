package geom

import (
	"math"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
)

// Inf is the sentinel for an unbounded extent. Bounds that reach it
// compare consistently with finite values (Inf >= any finite number).
var Inf = math.Inf(1)

// Bounds is an axis-aligned bounding box. Width and Height are always
// MaxX-MinX and MaxY-MinY; a zero-area box is valid.
type Bounds struct {
	MinX   float64 `json:"minX"`
	MaxX   float64 `json:"maxX"`
	MinY   float64 `json:"minY"`
	MaxY   float64 `json:"maxY"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewBounds builds a box from its extents. NaN extents become zero and an
// inverted range is swapped, so the result always satisfies the Bounds
// invariant.
func NewBounds(minX, maxX, minY, maxY float64) Bounds {
	minX, maxX = span(minX, maxX)
	minY, maxY = span(minY, maxY)
	return Bounds{
		MinX:   minX,
		MaxX:   maxX,
		MinY:   minY,
		MaxY:   maxY,
		Width:  extent(minX, maxX),
		Height: extent(minY, maxY),
	}
}

// BoundsOf returns the smallest box containing both points.
func BoundsOf(a, b Vec2) Bounds {
	return NewBounds(a.X, b.X, a.Y, b.Y)
}

// Square returns the box of side 2*half centred on c. A negative half
// is treated as zero.
func Square(c Vec2, half float64) Bounds {
	half = NonNegative(half)
	return NewBounds(c.X-half, c.X+half, c.Y-half, c.Y+half)
}

func span(lo, hi float64) (float64, float64) {
	if math.IsNaN(lo) {
		lo = 0
	}
	if math.IsNaN(hi) {
		hi = 0
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo, hi
}

// extent is hi-lo except that a box pinned at one infinity (Inf-Inf)
// has zero extent instead of NaN.
func extent(lo, hi float64) float64 {
	d := hi - lo
	if math.IsNaN(d) {
		return 0
	}
	return d
}

// NonNegative clamps v to [0, +Inf], mapping NaN to zero.
func NonNegative(v float64) float64 {
	if v > 0 {
		return v
	}
	return 0
}

// Min returns the top-left corner.
func (b Bounds) Min() Vec2 { return Vec2{X: b.MinX, Y: b.MinY} }

// Max returns the bottom-right corner.
func (b Bounds) Max() Vec2 { return Vec2{X: b.MaxX, Y: b.MaxY} }

// Center returns the centre of the box. The centre of an unbounded axis
// is the sentinel itself, or zero when the axis is unbounded both ways.
func (b Bounds) Center() Vec2 {
	return Vec2{X: mid(b.MinX, b.MaxX), Y: mid(b.MinY, b.MaxY)}
}

func mid(lo, hi float64) float64 {
	m := lo + (hi-lo)/2
	if math.IsNaN(m) {
		return 0
	}
	return m
}

// Corners returns the four corners clockwise from the top-left.
func (b Bounds) Corners() [4]Vec2 {
	return [4]Vec2{
		{b.MinX, b.MinY},
		{b.MaxX, b.MinY},
		{b.MaxX, b.MaxY},
		{b.MinX, b.MaxY},
	}
}

// Edges returns the four edges as segments, in the same order as Corners.
func (b Bounds) Edges() [4][2]Vec2 {
	c := b.Corners()
	return [4][2]Vec2{
		{c[0], c[1]},
		{c[1], c[2]},
		{c[2], c[3]},
		{c[3], c[0]},
	}
}

// Unbounded reports whether any extent is the infinite sentinel.
func (b Bounds) Unbounded() bool {
	return math.IsInf(b.MinX, 0) || math.IsInf(b.MaxX, 0) ||
		math.IsInf(b.MinY, 0) || math.IsInf(b.MaxY, 0)
}

// Valid reports whether b satisfies the Bounds invariant.
func (b Bounds) Valid() bool {
	return b.MaxX >= b.MinX && b.MaxY >= b.MinY &&
		b.Width == extent(b.MinX, b.MaxX) && b.Height == extent(b.MinY, b.MaxY)
}

// Expand returns b grown by d on every side. A negative d shrinks the
// box but never past its centre.
func Expand(b Bounds, d float64) Bounds {
	if math.IsNaN(d) {
		return b
	}
	c := b.Center()
	return NewBounds(
		math.Min(b.MinX-d, c.X), math.Max(b.MaxX+d, c.X),
		math.Min(b.MinY-d, c.Y), math.Max(b.MaxY+d, c.Y),
	)
}

// Translate returns b offset by d.
func (b Bounds) Translate(d Vec2) Bounds {
	return NewBounds(b.MinX+d.X, b.MaxX+d.X, b.MinY+d.Y, b.MaxY+d.Y)
}

// PointInBounds reports whether p lies in b, boundary included.
func PointInBounds(p Vec2, b Bounds) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Nearest returns the point of b closest to p. It is p itself when p is
// inside b.
func Nearest(b Bounds, p Vec2) Vec2 {
	return Vec2{X: min(max(p.X, b.MinX), b.MaxX), Y: min(max(p.Y, b.MinY), b.MaxY)}
}

// BoundsContain reports whether every corner of inner lies in outer.
func BoundsContain(outer, inner Bounds) bool {
	return inner.MinX >= outer.MinX && inner.MaxX <= outer.MaxX &&
		inner.MinY >= outer.MinY && inner.MaxY <= outer.MaxY
}

// BoundsCollide reports whether a and b overlap on both axes. Touching
// edges count as a collision.
func BoundsCollide(a, b Bounds) bool {
	return a.MinX <= b.MaxX && b.MinX <= a.MaxX &&
		a.MinY <= b.MaxY && b.MinY <= a.MaxY
}

// Union returns the smallest box containing a and b. An axis that is
// unbounded in either input stays unbounded.
func Union(a, b Bounds) Bounds {
	u := a.box2().Extend(b.box2())
	return NewBounds(u.Min.X, u.Max.X, u.Min.Y, u.Max.Y)
}

// UnionAll folds Union over bs. The zero Bounds is returned for no input.
func UnionAll(bs ...Bounds) Bounds {
	if len(bs) == 0 {
		return Bounds{}
	}
	u := bs[0]
	for _, b := range bs[1:] {
		u = Union(u, b)
	}
	return u
}

func (b Bounds) box2() sdf.Box2 {
	return sdf.Box2{
		Min: v2.Vec{X: b.MinX, Y: b.MinY},
		Max: v2.Vec{X: b.MaxX, Y: b.MaxY},
	}
}

package shape

import (
	"math"

	"github.com/chazu/sketchgeom/pkg/geom"
)

// quarterTol is how close an angle must be to a multiple of π/2 for an
// axis-aligned shape to swap its extents.
const quarterTol = 1e-9

// magnitude turns a user factor into an extent multiplier: NaN leaves
// the extent unchanged and the sign is dropped.
func magnitude(f float64) float64 {
	if math.IsNaN(f) {
		return 1
	}
	return math.Abs(f)
}

// noTurn reports whether angle leaves every shape unchanged.
func noTurn(angle float64) bool {
	return angle == 0 || math.IsNaN(angle) || math.IsInf(angle, 0)
}

// swapsAxes reports whether rotating by angle exchanges the width and
// height of an axis-aligned box, i.e. angle is an odd multiple of π/2.
// Other angles keep the extents as they are.
func swapsAxes(angle float64) bool {
	q := angle / (math.Pi / 2)
	k := math.Round(q)
	if math.Abs(q-k) > quarterTol {
		return false
	}
	return math.Mod(math.Abs(k), 2) == 1
}

// rotateCentred rotates the centre of an axis-aligned box with top-left
// tl and size sz about pivot and returns the new top-left. The box stays
// axis-aligned, with its extents swapped when swapsAxes(angle).
func rotateCentred(tl, sz, pivot geom.Vec2, angle float64) geom.Vec2 {
	c := geom.Rotate(tl.Add(sz.Mul(0.5)), pivot, angle)
	if swapsAxes(angle) {
		sz = geom.V(sz.Y, sz.X)
	}
	return c.Sub(sz.Mul(0.5))
}

// stretchDir stretches a direction component-wise and renormalizes it.
// A stretch that collapses the direction keeps the original.
func stretchDir(d geom.Vec2, fx, fy float64) geom.Vec2 {
	u := d.MulXY(magnitude(fx), magnitude(fy)).Unit()
	if u.IsZero() {
		return d
	}
	return u
}

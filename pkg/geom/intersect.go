package geom

import "math"

// ---------------------------------------------------------------------------
// Circle and ellipse boundaries against a box
// ---------------------------------------------------------------------------

// IntersectCircleBounds returns the points where the circle of radius r
// centred on c crosses the edges of b. The result is empty when the
// circle lies wholly inside or outside the box.
func IntersectCircleBounds(c Vec2, r float64, b Bounds) []Vec2 {
	return AppendCircleBounds(nil, c, r, b)
}

// AppendCircleBounds is IntersectCircleBounds appending to dst. Passing a
// stack buffer (var buf [8]geom.Vec2; buf[:0]) keeps the call
// allocation-free.
func AppendCircleBounds(dst []Vec2, c Vec2, r float64, b Bounds) []Vec2 {
	r = NonNegative(r)
	return AppendEllipseBounds(dst, c, r, r, b)
}

// IntersectEllipseBounds returns the points where the axis-aligned
// ellipse with radii rx, ry centred on c crosses the edges of b.
func IntersectEllipseBounds(c Vec2, rx, ry float64, b Bounds) []Vec2 {
	return AppendEllipseBounds(nil, c, rx, ry, b)
}

// AppendEllipseBounds is IntersectEllipseBounds appending to dst.
// Negative radii are treated as zero; an ellipse with a zero radius is
// the segment (or point) it collapses to.
func AppendEllipseBounds(dst []Vec2, c Vec2, rx, ry float64, b Bounds) []Vec2 {
	rx, ry = NonNegative(rx), NonNegative(ry)
	if rx == 0 || ry == 0 {
		axis := Vec2{X: rx, Y: ry}
		lo, hi := c.Sub(axis), c.Add(axis)
		for _, e := range b.Edges() {
			dst = appendSegmentSegment(dst, lo, hi, e[0], e[1])
		}
		return dst
	}
	for _, e := range b.Edges() {
		dst = appendEllipseSegment(dst, c, rx, ry, e[0], e[1])
	}
	return dst
}

// EllipseCrossesBounds reports whether the ellipse boundary crosses any
// edge of b, without allocating.
func EllipseCrossesBounds(c Vec2, rx, ry float64, b Bounds) bool {
	var buf [8]Vec2
	return len(AppendEllipseBounds(buf[:0], c, rx, ry, b)) > 0
}

// tangentEps is the relative tolerance under which a negative
// discriminant counts as a tangent.
const tangentEps = 1e-12

// appendEllipseSegment solves |u + t·d|² = 1 in the ellipse's unit-circle
// frame and keeps roots with t in [0, 1].
func appendEllipseSegment(dst []Vec2, c Vec2, rx, ry float64, a, e Vec2) []Vec2 {
	u := Vec2{X: (a.X - c.X) / rx, Y: (a.Y - c.Y) / ry}
	d := Vec2{X: (e.X - a.X) / rx, Y: (e.Y - a.Y) / ry}

	qa := d.Dot(d)
	qb := 2 * u.Dot(d)
	qc := u.Dot(u) - 1

	if qa == 0 {
		// Degenerate edge: a single point, on the boundary only if qc == 0.
		if qc == 0 {
			dst = append(dst, a)
		}
		return dst
	}

	disc := qb*qb - 4*qa*qc
	if disc < 0 && -disc <= tangentEps*qb*qb {
		// Tangent edge lost to rounding.
		disc = 0
	}
	if disc < 0 || math.IsNaN(disc) {
		return dst
	}
	seg := e.Sub(a)
	if disc == 0 {
		t := -qb / (2 * qa)
		if t >= 0 && t <= 1 {
			dst = append(dst, a.Add(seg.Mul(t)))
		}
		return dst
	}
	sq := math.Sqrt(disc)
	for _, t := range [2]float64{(-qb - sq) / (2 * qa), (-qb + sq) / (2 * qa)} {
		if t >= 0 && t <= 1 {
			dst = append(dst, a.Add(seg.Mul(t)))
		}
	}
	return dst
}

// appendSegmentSegment appends the intersection of segments p0p1 and q0q1.
// Collinear overlaps contribute the ends of the overlap.
func appendSegmentSegment(dst []Vec2, p0, p1, q0, q1 Vec2) []Vec2 {
	r := p1.Sub(p0)
	s := q1.Sub(q0)
	qp := q0.Sub(p0)
	rxs := r.Cross(s)

	if rxs != 0 {
		t := qp.Cross(s) / rxs
		u := qp.Cross(r) / rxs
		if t >= 0 && t <= 1 && u >= 0 && u <= 1 {
			dst = append(dst, p0.Add(r.Mul(t)))
		}
		return dst
	}

	if qp.Cross(r) != 0 {
		return dst // parallel, not collinear
	}

	rr := r.Dot(r)
	if rr == 0 {
		// p is a single point; it must lie on q's line and within its span.
		if s.Cross(p0.Sub(q0)) != 0 {
			return dst
		}
		ss := s.Dot(s)
		if ss == 0 {
			if p0 == q0 {
				dst = append(dst, p0)
			}
			return dst
		}
		if u := p0.Sub(q0).Dot(s) / ss; u >= 0 && u <= 1 {
			dst = append(dst, p0)
		}
		return dst
	}

	t0 := qp.Dot(r) / rr
	t1 := t0 + s.Dot(r)/rr
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	lo, hi := math.Max(t0, 0), math.Min(t1, 1)
	if lo > hi {
		return dst
	}
	dst = append(dst, p0.Add(r.Mul(lo)))
	if hi > lo {
		dst = append(dst, p0.Add(r.Mul(hi)))
	}
	return dst
}

// ---------------------------------------------------------------------------
// Parametric lines against a box
// ---------------------------------------------------------------------------

// ClipLine clips the parametric line origin + t·dir, t in [t0, t1], to b
// (Liang–Barsky). It returns the surviving parameter range and whether
// it is non-empty. Infinite t0/t1 describe rays and full lines; touching
// the box boundary counts as inside.
func ClipLine(origin, dir Vec2, t0, t1 float64, b Bounds) (lo, hi float64, ok bool) {
	lo, hi = t0, t1
	if lo > hi {
		return lo, hi, false
	}
	if lo, hi, ok = clipAxis(origin.X, dir.X, b.MinX, b.MaxX, lo, hi); !ok {
		return lo, hi, false
	}
	return clipAxis(origin.Y, dir.Y, b.MinY, b.MaxY, lo, hi)
}

func clipAxis(p, d, bmin, bmax, lo, hi float64) (float64, float64, bool) {
	if d == 0 {
		return lo, hi, p >= bmin && p <= bmax
	}
	ta := (bmin - p) / d
	tb := (bmax - p) / d
	if ta > tb {
		ta, tb = tb, ta
	}
	if ta > lo {
		lo = ta
	}
	if tb < hi {
		hi = tb
	}
	return lo, hi, lo <= hi
}

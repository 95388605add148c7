package sketch

import (
	"fmt"
	"math"

	"github.com/chazu/sketchgeom/pkg/geom"
	"github.com/chazu/sketchgeom/pkg/shape"
)

// ---------------------------------------------------------------------------
// Geometric validation (warnings)
// ---------------------------------------------------------------------------

// unitTol is how far a direction's length may stray from 1 before it is
// reported.
const unitTol = 1e-6

// validateGeometry flags values the geometry engine accepts but
// normalizes: negative extents become zero, NaN becomes zero and
// non-unit directions are rescaled.
func validateGeometry(s *Sketch) []ValidationWarning {
	var warnings []ValidationWarning
	for _, e := range s.Entries {
		if e == nil || e.Shape == nil {
			continue // reported by validateEntries
		}
		for _, msg := range geometryFindings(e.Shape) {
			warnings = append(warnings, ValidationWarning{EntryID: e.ID, Message: msg})
		}
	}
	return warnings
}

func geometryFindings(s shape.Shape) []string {
	var out []string
	nanPoint := func(label string, v geom.Vec2) {
		if v.IsNaN() {
			out = append(out, fmt.Sprintf("%s %s has a NaN coordinate; treated as 0", s.Kind(), label))
		}
	}
	extent := func(label string, v float64) {
		switch {
		case math.IsNaN(v):
			out = append(out, fmt.Sprintf("%s %s is NaN; treated as 0", s.Kind(), label))
		case v < 0:
			out = append(out, fmt.Sprintf("%s %s is %.4g, negative extents are treated as 0", s.Kind(), label, v))
		}
	}
	direction := func(d geom.Vec2) {
		switch l := d.Len(); {
		case d.IsNaN():
			out = append(out, fmt.Sprintf("%s direction has a NaN component", s.Kind()))
		case l == 0:
			out = append(out, fmt.Sprintf("%s direction is zero; it behaves as a single point", s.Kind()))
		case math.Abs(l-1) > unitTol:
			out = append(out, fmt.Sprintf("%s direction has length %.4g, expected a unit vector", s.Kind(), l))
		}
	}

	switch v := s.(type) {
	case shape.Dot:
		nanPoint("point", v.Point)
	case shape.Circle:
		nanPoint("centre", v.Point)
		extent("radius", v.Radius)
	case shape.Ellipse:
		nanPoint("centre", v.Point)
		extent("radius x", v.RadiusX)
		extent("radius y", v.RadiusY)
	case shape.Rectangle:
		nanPoint("corner", v.Point)
		extent("width", v.Size.X)
		extent("height", v.Size.Y)
	case shape.Line:
		nanPoint("point", v.Point)
		direction(v.Direction)
	case shape.Ray:
		nanPoint("origin", v.Point)
		direction(v.Direction)
	case shape.LineSegment:
		nanPoint("start", v.Start)
		nanPoint("end", v.End)
		if v.Start == v.End {
			out = append(out, fmt.Sprintf("segment is degenerate: start and end are both %v", v.Start))
		}
	}
	return out
}

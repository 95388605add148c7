// Package shape implements bounds, hit testing and affine edits for the
// closed set of 2D primitives: Dot, Circle, Ellipse, Rectangle, Line, Ray
// and LineSegment.
//
// Every kind has a Strategy, and a Registry holds one strategy per kind.
// Dispatch goes through unexported methods on each shape type, so the
// set of kinds is checked by the compiler rather than by a runtime
// switch. The package-level functions use the built-in strategies:
//
//	c := shape.Circle{Point: geom.V(0, 0), Radius: 5}
//	shape.Bounds(c)                           // [-5,5]x[-5,5]
//	shape.HitTest(c, shape.At(geom.V(1, 1)))  // true
//	shape.Stretch(c, 2, 1)                    // an Ellipse
//
// Shapes are values. Transforms return a new shape and never modify
// their input. Bounds and HitTest do not allocate.
package shape

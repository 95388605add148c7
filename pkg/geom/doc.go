// Package geom provides the 2D value types and pure predicates the shape
// engine is built on: vectors, axis-aligned bounds, and boundary
// intersection routines. Nothing in this package holds state, and the
// query functions do not allocate.
//
// Unbounded extents are represented with the IEEE infinities (see [Inf]),
// never with large finite placeholders, so aggregating bounds with
// [Union] keeps an axis unbounded once any input is.
package geom

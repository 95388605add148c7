// Package sketch defines the shape list produced by evaluating a sketch
// script. A Sketch is never mutated once evaluation returns it; each
// evaluation produces a new one.
package sketch

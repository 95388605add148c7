// Package brush selects shapes with a point or a dragged rectangle.
//
// An Index keeps bounded shapes in an R-tree for the broad phase and
// confirms every candidate with the shape's own hit test. Lines and
// rays have infinite bounds, so they live outside the tree and are
// always hit-tested directly.
package brush

import (
	"fmt"
	"iter"
	"slices"

	"deedles.dev/xiter"
	"github.com/dhconnelly/rtreego"

	"github.com/chazu/sketchgeom/pkg/geom"
	"github.com/chazu/sketchgeom/pkg/shape"
)

// DefaultPadding widens every rectangle handed to the R-tree. The tree
// treats touching rectangles as disjoint, while geom.BoundsCollide counts
// touching as a collision.
const DefaultPadding = 1e-6

// R-tree branching factors.
const (
	minChildren = 8
	maxChildren = 32
)

// Index is an immutable spatial index over a list of shapes. Results are
// positions in the list the index was built from.
type Index struct {
	reg       *shape.Registry
	pad       float64
	tree      *rtreego.Rtree
	shapes    []shape.Shape
	unbounded []int
}

// Option configures an Index.
type Option func(*Index)

// WithRegistry sets the registry used for bounds and hit tests.
func WithRegistry(r *shape.Registry) Option {
	return func(ix *Index) { ix.reg = r }
}

// WithPadding sets the broad-phase padding. Non-positive values fall back
// to DefaultPadding.
func WithPadding(p float64) Option {
	return func(ix *Index) {
		if p > 0 {
			ix.pad = p
		}
	}
}

// entry is the R-tree's view of one bounded shape.
type entry struct {
	id   int
	rect rtreego.Rect
}

func (e *entry) Bounds() rtreego.Rect { return e.rect }

// New indexes the shapes yielded by seq.
func New(seq iter.Seq[shape.Shape], opts ...Option) (*Index, error) {
	ix := &Index{reg: shape.NewRegistry(), pad: DefaultPadding}
	for _, o := range opts {
		o(ix)
	}

	var entries []rtreego.Spatial
	for i, s := range xiter.Enumerate(seq) {
		ix.shapes = append(ix.shapes, s)
		b := ix.reg.Bounds(s)
		if b.Unbounded() {
			ix.unbounded = append(ix.unbounded, i)
			continue
		}
		r, err := ix.rect(b)
		if err != nil {
			return nil, fmt.Errorf("brush: index shape %d (%v): %w", i, s.Kind(), err)
		}
		entries = append(entries, &entry{id: i, rect: r})
	}
	ix.tree = rtreego.NewTree(2, minChildren, maxChildren, entries...)
	return ix, nil
}

// FromSlice indexes shapes.
func FromSlice(shapes []shape.Shape, opts ...Option) (*Index, error) {
	return New(slices.Values(shapes), opts...)
}

// Len returns the number of indexed shapes.
func (ix *Index) Len() int { return len(ix.shapes) }

// Shape returns the shape at position i.
func (ix *Index) Shape(i int) shape.Shape { return ix.shapes[i] }

// Select returns, in ascending order, the positions of every shape that
// intersects or lies inside b.
func (ix *Index) Select(b geom.Bounds) ([]int, error) {
	return ix.query(b, func(s shape.Shape) bool { return ix.reg.HitBounds(s, b) })
}

// At returns, in ascending order, the positions of every shape hit by a
// point probe at p.
func (ix *Index) At(p geom.Vec2) ([]int, error) {
	// Line-like shapes hit within a tolerance that reaches past their
	// bounds, so the broad phase searches a box that wide.
	area := geom.Square(p, max(shape.LineTolerance, shape.DotSize/2))
	return ix.query(area, func(s shape.Shape) bool { return ix.reg.HitPoint(s, p) })
}

func (ix *Index) query(area geom.Bounds, hit func(shape.Shape) bool) ([]int, error) {
	r, err := ix.rect(area)
	if err != nil {
		return nil, fmt.Errorf("brush: query %+v: %w", area, err)
	}

	var out []int
	for _, sp := range ix.tree.SearchIntersect(r) {
		e := sp.(*entry)
		if hit(ix.shapes[e.id]) {
			out = append(out, e.id)
		}
	}
	for _, i := range ix.unbounded {
		if hit(ix.shapes[i]) {
			out = append(out, i)
		}
	}
	slices.Sort(out)
	return out, nil
}

func (ix *Index) rect(b geom.Bounds) (rtreego.Rect, error) {
	b = geom.Expand(b, ix.pad)
	return rtreego.NewRectFromPoints(
		rtreego.Point{b.MinX, b.MinY},
		rtreego.Point{b.MaxX, b.MaxY},
	)
}

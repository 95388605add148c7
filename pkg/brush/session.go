package brush

import (
	"slices"

	"github.com/chazu/sketchgeom/pkg/geom"
)

// Session tracks one drag of the selection brush. The brush is the box
// spanned by the point where the drag began and the latest pointer
// position.
type Session struct {
	ix       *Index
	origin   geom.Vec2
	box      geom.Bounds
	selected []int
}

// Begin starts a brush drag at p. Nothing is selected until the first
// Move.
func (ix *Index) Begin(p geom.Vec2) *Session {
	return &Session{ix: ix, origin: p, box: geom.BoundsOf(p, p)}
}

// Move updates the brush to end at p and returns the new selection. The
// second result reports whether the selection changed since the last
// move.
func (s *Session) Move(p geom.Vec2) ([]int, bool, error) {
	s.box = geom.BoundsOf(s.origin, p)
	sel, err := s.ix.Select(s.box)
	if err != nil {
		return s.selected, false, err
	}
	changed := !slices.Equal(sel, s.selected)
	s.selected = sel
	return sel, changed, nil
}

// Box returns the current brush rectangle.
func (s *Session) Box() geom.Bounds { return s.box }

// Selected returns the selection as of the last Move.
func (s *Session) Selected() []int { return s.selected }

package sketch

import (
	"fmt"

	"github.com/chazu/sketchgeom/pkg/brush"
	"github.com/chazu/sketchgeom/pkg/geom"
	"github.com/chazu/sketchgeom/pkg/shape"
)

// Sketch is the ordered list of shapes produced by one evaluation.
// Entries are kept in creation order, which is also paint order.
type Sketch struct {
	Entries   []*Entry           `json:"entries"`
	ByID      map[EntryID]*Entry `json:"-"`
	NameIndex map[string]EntryID `json:"name_index"`
	Version   uint64             `json:"version"`
}

// New creates an empty Sketch.
func New() *Sketch {
	return &Sketch{
		ByID:      make(map[EntryID]*Entry),
		NameIndex: make(map[string]EntryID),
	}
}

// Add appends an entry. It does not check for duplicates.
func (s *Sketch) Add(e *Entry) {
	s.Entries = append(s.Entries, e)
	s.ByID[e.ID] = e
	if e.Name != "" {
		s.NameIndex[e.Name] = e.ID
	}
}

// Lookup returns the entry with the given user-assigned name, or nil.
func (s *Sketch) Lookup(name string) *Entry {
	id, ok := s.NameIndex[name]
	if !ok {
		return nil
	}
	return s.ByID[id]
}

// MustLookup returns the entry with the given name, or panics.
func (s *Sketch) MustLookup(name string) *Entry {
	e := s.Lookup(name)
	if e == nil {
		panic(fmt.Sprintf("sketch: no entry named %q", name))
	}
	return e
}

// Get returns the entry with the given ID, or nil.
func (s *Sketch) Get(id EntryID) *Entry {
	return s.ByID[id]
}

// Len returns the number of entries.
func (s *Sketch) Len() int {
	return len(s.Entries)
}

// Shapes returns the entries' shapes in paint order.
func (s *Sketch) Shapes() []shape.Shape {
	shapes := make([]shape.Shape, len(s.Entries))
	for i, e := range s.Entries {
		shapes[i] = e.Shape
	}
	return shapes
}

// Bounds returns the union of every entry's bounds. It stays unbounded on
// any axis a Line or Ray extends along. ok is false for an empty sketch.
func (s *Sketch) Bounds() (b geom.Bounds, ok bool) {
	for i, e := range s.Entries {
		eb := shape.Bounds(e.Shape)
		if i == 0 {
			b = eb
			continue
		}
		b = geom.Union(b, eb)
	}
	return b, len(s.Entries) > 0
}

// CountKinds returns how many entries there are of each kind.
func (s *Sketch) CountKinds() map[shape.Kind]int {
	counts := make(map[shape.Kind]int)
	for _, e := range s.Entries {
		counts[e.Kind()]++
	}
	return counts
}

// Index builds a brush index over the sketch. Selection results are
// positions in Entries.
func (s *Sketch) Index(opts ...brush.Option) (*brush.Index, error) {
	ix, err := brush.FromSlice(s.Shapes(), opts...)
	if err != nil {
		return nil, fmt.Errorf("sketch: %w", err)
	}
	return ix, nil
}

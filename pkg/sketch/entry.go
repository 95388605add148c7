package sketch

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/chazu/sketchgeom/pkg/shape"
)

// EntryID is a content-addressed identifier for sketch entries: the hex
// xxhash of the key it was built from.
type EntryID string

// NewEntryID hashes the joined parts into an EntryID. Equal parts always
// give equal IDs.
func NewEntryID(parts ...string) EntryID {
	return EntryID(fmt.Sprintf("%016x", xxhash.Sum64String(strings.Join(parts, "/"))))
}

func (id EntryID) String() string { return string(id) }

// Short returns the first 8 characters, for messages.
func (id EntryID) Short() string {
	if len(id) <= 8 {
		return string(id)
	}
	return string(id[:8])
}

// IsZero reports whether id is unset.
func (id EntryID) IsZero() bool { return id == "" }

// Entry is one shape in a sketch.
type Entry struct {
	ID    EntryID     `json:"id"`
	Name  string      `json:"name,omitempty"`
	Shape shape.Shape `json:"shape"`
}

// Kind returns the kind of the entry's shape.
func (e *Entry) Kind() shape.Kind { return e.Shape.Kind() }

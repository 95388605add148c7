package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/chazu/sketchgeom/pkg/geom"
	"github.com/chazu/sketchgeom/pkg/shape"
)

// Probe is a named hit-test query run against every evaluated sketch.
// Exactly one of Point ([x, y]) and Box ([min_x, max_x, min_y, max_y])
// is set.
type Probe struct {
	Name  string    `json:"name" yaml:"name"`
	Point []float64 `json:"point,omitempty" yaml:"point,omitempty"`
	Box   []float64 `json:"box,omitempty" yaml:"box,omitempty"`
}

// ProbeSet is the top level of a probe file.
type ProbeSet struct {
	Probes []Probe `json:"probes" yaml:"probes"`
}

// Query converts the probe to a shape query.
func (p Probe) Query() (shape.Query, error) {
	switch {
	case p.Point != nil && p.Box != nil:
		return shape.Query{}, fmt.Errorf("probe %q: point and box are exclusive: %w", p.Name, ErrInvalid)
	case p.Point != nil:
		if len(p.Point) != 2 {
			return shape.Query{}, fmt.Errorf("probe %q: point needs 2 numbers, got %d: %w", p.Name, len(p.Point), ErrInvalid)
		}
		return shape.At(geom.V(p.Point[0], p.Point[1])), nil
	case p.Box != nil:
		if len(p.Box) != 4 {
			return shape.Query{}, fmt.Errorf("probe %q: box needs 4 numbers, got %d: %w", p.Name, len(p.Box), ErrInvalid)
		}
		return shape.Within(geom.NewBounds(p.Box[0], p.Box[1], p.Box[2], p.Box[3])), nil
	}
	return shape.Query{}, fmt.Errorf("probe %q: needs a point or a box: %w", p.Name, ErrInvalid)
}

// Validate checks that names are present and unique and that every
// probe converts to a query.
func (ps ProbeSet) Validate() error {
	seen := make(map[string]bool, len(ps.Probes))
	var errs []error
	for i, p := range ps.Probes {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("probe %d: missing name: %w", i, ErrInvalid))
			continue
		}
		if seen[p.Name] {
			errs = append(errs, fmt.Errorf("probe %q: duplicate name: %w", p.Name, ErrInvalid))
		}
		seen[p.Name] = true
		if _, err := p.Query(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: probes: %w", err)
	}
	return nil
}

// LoadProbes decodes and validates a probe file from r.
func LoadProbes(r io.Reader) (ProbeSet, error) {
	var ps ProbeSet
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&ps); err != nil && !errors.Is(err, io.EOF) {
		return ProbeSet{}, fmt.Errorf("config: decode probes: %w", err)
	}
	if err := ps.Validate(); err != nil {
		return ProbeSet{}, err
	}
	return ps, nil
}

// LoadProbesFile is LoadProbes on the named file.
func LoadProbesFile(path string) (ProbeSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return ProbeSet{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return LoadProbes(f)
}

package engine

import (
	"math"
	"strings"
	"testing"

	"github.com/chazu/sketchgeom/pkg/geom"
	"github.com/chazu/sketchgeom/pkg/shape"
	"github.com/chazu/sketchgeom/pkg/sketch"
)

// ---------------------------------------------------------------------------
// Preprocessing tests
// ---------------------------------------------------------------------------

func TestPreprocessKeywords(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "simple keyword",
			input:  `(circle :radius 5)`,
			expect: `(circle "__kw_radius" 5)`,
		},
		{
			name:   "multiple keywords",
			input:  `(ellipse :rx 4 :ry 2)`,
			expect: `(ellipse "__kw_rx" 4 "__kw_ry" 2)`,
		},
		{
			name:   "keyword in string preserved",
			input:  `"thing with :keyword inside"`,
			expect: `"thing with :keyword inside"`,
		},
		{
			name:   "escaped quote inside string",
			input:  `"a \" :b" :c`,
			expect: `"a \" :b" "__kw_c"`,
		},
		{
			name:   "backtick string preserved",
			input:  "`raw :kw-x`",
			expect: "`raw :kw-x`",
		},
		{
			name:   "assignment operator preserved",
			input:  `(def x := 10)`,
			expect: `(def x := 10)`,
		},
		{
			name:   "kebab-case identifier",
			input:  `(def wheel-base :pivot-point p)`,
			expect: `(def wheel_base "__kw_pivot-point" p)`,
		},
		{
			name:   "minus operator preserved",
			input:  `(- 10 5)`,
			expect: `(- 10 5)`,
		},
		{
			name:   "negative literal preserved",
			input:  `(vec2 -3 x-1)`,
			expect: `(vec2 -3 x-1)`,
		},
		{
			name:   "comment converted to // style",
			input:  `;; comment with :keyword`,
			expect: `// comment with :keyword`,
		},
		{
			name:   "single semicolon comment",
			input:  `; simple comment`,
			expect: `// simple comment`,
		},
		{
			name:   "line count kept",
			input:  "; one\n(dot)\n; three",
			expect: "// one\n(dot)\n// three",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := preprocessSource(tt.input)
			if got != tt.expect {
				t.Errorf("preprocessSource(%q)\n  got:  %q\n  want: %q", tt.input, got, tt.expect)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func mustEvaluate(t *testing.T, source string) *sketch.Sketch {
	t.Helper()
	s, evalErrs, err := NewEngine().Evaluate(source)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("eval errors: %v", evalErrs)
	}
	if s == nil {
		t.Fatal("expected non-nil sketch")
	}
	return s
}

// evalFails evaluates source and returns the joined messages of the
// expected non-fatal errors.
func evalFails(t *testing.T, source string) string {
	t.Helper()
	s, evalErrs, err := NewEngine().Evaluate(source)
	if err != nil {
		t.Fatalf("expected non-fatal eval error, got fatal: %v", err)
	}
	if s != nil {
		t.Error("expected nil sketch on eval error")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected at least one eval error")
	}
	msgs := make([]string, len(evalErrs))
	for i, e := range evalErrs {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, "\n")
}

func lookupShape(t *testing.T, s *sketch.Sketch, name string) shape.Shape {
	t.Helper()
	e := s.Lookup(name)
	if e == nil {
		t.Fatalf("expected entry named %q", name)
	}
	return e.Shape
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

func TestEveryKind(t *testing.T) {
	source := `
(defshape "d" (dot :at (vec2 1 2)))
(defshape "c" (circle :at (vec2 0 0) :radius 5))
(defshape "e" (ellipse :at (vec2 3 4) :rx 2 :ry 1.5))
(defshape "r" (rect :at (vec2 10 10) :size (vec2 4 6)))
(defshape "l" (line :at (vec2 0 1) :dir (vec2 0 1)))
(defshape "y" (ray :at (vec2 2 2)))
(defshape "s" (segment :from (vec2 0 0) :to (vec2 3 4)))
`
	s := mustEvaluate(t, source)

	want := map[string]shape.Shape{
		"d": shape.Dot{Point: geom.V(1, 2)},
		"c": shape.Circle{Point: geom.V(0, 0), Radius: 5},
		"e": shape.Ellipse{Point: geom.V(3, 4), RadiusX: 2, RadiusY: 1.5},
		"r": shape.Rectangle{Point: geom.V(10, 10), Size: geom.V(4, 6)},
		"l": shape.Line{Point: geom.V(0, 1), Direction: geom.V(0, 1)},
		"y": shape.Ray{Point: geom.V(2, 2), Direction: geom.V(1, 0)},
		"s": shape.LineSegment{Start: geom.V(0, 0), End: geom.V(3, 4)},
	}
	if s.Len() != len(want) {
		t.Fatalf("entry count = %d, want %d", s.Len(), len(want))
	}
	for name, w := range want {
		if got := lookupShape(t, s, name); got != w {
			t.Errorf("%s = %v, want %v", name, got, w)
		}
	}
	if s.Entries[0].Name != "d" || s.Entries[6].Name != "s" {
		t.Error("entries should keep definition order")
	}
}

func TestDefaults(t *testing.T) {
	s := mustEvaluate(t, `(defshape "bare" (circle))`)
	if got := lookupShape(t, s, "bare"); got != (shape.Circle{}) {
		t.Errorf("bare circle = %v, want zero circle", got)
	}
}

func TestVariableReference(t *testing.T) {
	source := `
(def r 7)
(def centre (vec2 1 1))
(defshape "wheel" (circle :at centre :radius r))
`
	s := mustEvaluate(t, source)
	c, ok := lookupShape(t, s, "wheel").(shape.Circle)
	if !ok {
		t.Fatalf("expected Circle, got %T", lookupShape(t, s, "wheel"))
	}
	if c.Radius != 7 || c.Point != geom.V(1, 1) {
		t.Errorf("wheel = %v", c)
	}
}

func TestArithmeticArguments(t *testing.T) {
	s := mustEvaluate(t, `(defshape "c" (circle :radius (* 2 3)))`)
	if c := lookupShape(t, s, "c").(shape.Circle); c.Radius != 6 {
		t.Errorf("radius = %g, want 6", c.Radius)
	}
}

// ---------------------------------------------------------------------------
// Transforms
// ---------------------------------------------------------------------------

func TestTranslate(t *testing.T) {
	s := mustEvaluate(t, `(defshape "s" (translate (segment :from (vec2 0 0) :to (vec2 1 1)) (vec2 5 5)))`)
	want := shape.LineSegment{Start: geom.V(5, 5), End: geom.V(6, 6)}
	if got := lookupShape(t, s, "s"); got != want {
		t.Errorf("translated = %v, want %v", got, want)
	}
}

func TestRotate(t *testing.T) {
	source := `
(def seg (segment :from (vec2 0 0) :to (vec2 10 0)))
(defshape "deg" (rotate seg :degrees 90))
(defshape "rad" (rotate seg :angle 0))
(defshape "pivot" (rotate (dot :at (vec2 10 0)) :pivot (vec2 0 0) :degrees 180))
`
	s := mustEvaluate(t, source)

	deg := lookupShape(t, s, "deg").(shape.LineSegment)
	if deg.Start != geom.V(0, 0) || !deg.End.Equals(geom.V(0, 10), 1e-9) {
		t.Errorf("rotated about the start anchor: got %v", deg)
	}
	rad := lookupShape(t, s, "rad").(shape.LineSegment)
	if rad.End != geom.V(10, 0) {
		t.Errorf("zero angle should be identity, got %v", rad)
	}
	d := lookupShape(t, s, "pivot").(shape.Dot)
	if !d.Point.Equals(geom.V(-10, 0), 1e-9) {
		t.Errorf("dot about origin by 180 = %v", d.Point)
	}
}

func TestRotateNeedsAngle(t *testing.T) {
	msg := evalFails(t, `(rotate (dot) :pivot (vec2 0 0))`)
	if !strings.Contains(msg, ":angle or :degrees") {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestScaleAndStretch(t *testing.T) {
	source := `
(defshape "big" (scale (circle :radius 2) 3))
(defshape "oval" (stretch (circle :at (vec2 1 1) :radius 2) 2 1))
`
	s := mustEvaluate(t, source)
	if c := lookupShape(t, s, "big").(shape.Circle); c.Radius != 6 {
		t.Errorf("scaled radius = %g, want 6", c.Radius)
	}
	oval, ok := lookupShape(t, s, "oval").(shape.Ellipse)
	if !ok {
		t.Fatalf("unequal stretch of a circle should give an ellipse, got %T", lookupShape(t, s, "oval"))
	}
	if oval.RadiusX != 4 || oval.RadiusY != 2 || oval.Point != geom.V(1, 1) {
		t.Errorf("oval = %v", oval)
	}
}

// ---------------------------------------------------------------------------
// Sketch membership
// ---------------------------------------------------------------------------

func TestShapeLookup(t *testing.T) {
	source := `
(defshape "hub" (circle :radius 1))
(defshape "rim" (scale (shape "hub") 10))
`
	s := mustEvaluate(t, source)
	if c := lookupShape(t, s, "rim").(shape.Circle); c.Radius != 10 {
		t.Errorf("rim radius = %g, want 10", c.Radius)
	}
}

func TestShapeLookupError(t *testing.T) {
	msg := evalFails(t, `(shape "nonexistent")`)
	if !strings.Contains(msg, "nonexistent") {
		t.Errorf("message should name the missing shape, got %q", msg)
	}
}

func TestDefshapeDuplicate(t *testing.T) {
	msg := evalFails(t, "(defshape \"a\" (dot))\n(defshape \"a\" (dot))")
	if !strings.Contains(msg, "already defined") {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestDraw(t *testing.T) {
	source := `
(draw (dot :at (vec2 1 1)) (dot :at (vec2 2 2)))
(draw (list (dot :at (vec2 3 3))))
(defshape "named" (dot))
`
	s := mustEvaluate(t, source)
	if s.Len() != 4 {
		t.Fatalf("entry count = %d, want 4", s.Len())
	}
	for i := 0; i < 3; i++ {
		e := s.Entries[i]
		if e.Name != "" {
			t.Errorf("drawn entry %d should be unnamed, got %q", i, e.Name)
		}
		want := geom.V(float64(i+1), float64(i+1))
		if e.Shape.Anchor() != want {
			t.Errorf("entry %d at %v, want %v", i, e.Shape.Anchor(), want)
		}
	}
	if errs := sketch.Validate(s); len(errs) != 0 {
		t.Errorf("drawn sketch should validate, got %v", errs)
	}

	again := mustEvaluate(t, source)
	for i := range s.Entries {
		if s.Entries[i].ID != again.Entries[i].ID {
			t.Errorf("entry %d id differs between runs", i)
		}
	}
}

func TestArgumentErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"unknown keyword", `(circle :raduis 5)`, "unknown keyword :raduis"},
		{"wrong type", `(circle :radius "five")`, "expected number"},
		{"vec expected", `(dot :at 5)`, "expected vec2"},
		{"positional to constructor", `(dot (vec2 1 1))`, "only keyword arguments"},
		{"vec2 arity", `(vec2 1)`, "exactly 2 numbers"},
		{"shape expected", `(translate (vec2 1 1) (vec2 1 1))`, "expected shape"},
		{"stretch arity", `(stretch (dot) 2)`, "3 positional arguments"},
		{"draw non-shape", `(draw 5)`, "expected list or array"},
		{"empty name", `(defshape "" (dot))`, "must not be empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := evalFails(t, tt.source)
			if !strings.Contains(msg, tt.want) {
				t.Errorf("message %q should contain %q", msg, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Full sketch
// ---------------------------------------------------------------------------

func TestFullSketchExample(t *testing.T) {
	source := `
;; a cart: body, two wheels, an axle and the ground
(def wheel-r 3)
(defshape "body" (rect :at (vec2 0 0) :size (vec2 20 8)))
(defshape "front-wheel" (circle :at (vec2 4 11) :radius wheel-r))
(defshape "rear-wheel" (translate (shape "front-wheel") (vec2 12 0)))
(defshape "axle" (segment :from (vec2 4 11) :to (vec2 16 11)))
(defshape "ground" (line :at (vec2 0 14) :dir (vec2 1 0)))
`
	s := mustEvaluate(t, source)
	if s.Len() != 5 {
		t.Fatalf("entry count = %d, want 5", s.Len())
	}
	rear := lookupShape(t, s, "rear-wheel").(shape.Circle)
	if rear.Point != geom.V(16, 11) || rear.Radius != 3 {
		t.Errorf("rear wheel = %v", rear)
	}

	b, ok := s.Bounds()
	if !ok {
		t.Fatal("expected bounds")
	}
	if !math.IsInf(b.MinX, -1) || !math.IsInf(b.MaxX, 1) {
		t.Errorf("ground line should make x unbounded, got %+v", b)
	}
	if b.MinY != 0 || b.MaxY != 14 {
		t.Errorf("y extent = [%g, %g], want [0, 14]", b.MinY, b.MaxY)
	}

	ix, err := s.Index()
	if err != nil {
		t.Fatalf("Index: %v", err)
	}
	hits, err := ix.At(geom.V(16, 11))
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	var names []string
	for _, i := range hits {
		names = append(names, s.Entries[i].Name)
	}
	got := strings.Join(names, ",")
	// The ground line is 3 below the hub, inside the line tolerance.
	if got != "rear-wheel,axle,ground" {
		t.Errorf("hits at the rear hub = %q, want rear-wheel,axle,ground", got)
	}
}

func TestEmptySourceStillWorks(t *testing.T) {
	s := mustEvaluate(t, "")
	if s.Len() != 0 {
		t.Errorf("expected empty sketch, got %d entries", s.Len())
	}
}

func TestUndrawnShapesAreNotEntries(t *testing.T) {
	s := mustEvaluate(t, `(def c (circle :radius 2)) (scale c 2)`)
	if s.Len() != 0 {
		t.Errorf("shapes neither defined nor drawn should not be entries, got %d", s.Len())
	}
}

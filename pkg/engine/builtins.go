package engine

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/sketchgeom/pkg/geom"
	"github.com/chazu/sketchgeom/pkg/shape"
	"github.com/chazu/sketchgeom/pkg/sketch"
)

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpVec2 wraps a geom.Vec2.
type sexpVec2 struct {
	vec geom.Vec2
}

func (v *sexpVec2) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec2 %g %g)", v.vec.X, v.vec.Y)
}
func (v *sexpVec2) Type() *zygo.RegisteredType { return nil }

// sexpShape wraps a shape value. name is set when the value came from
// defshape or shape, for messages.
type sexpShape struct {
	shape shape.Shape
	name  string
}

func (s *sexpShape) SexpString(ps *zygo.PrintState) string {
	if s.name != "" {
		return fmt.Sprintf("(shape %q)", s.name)
	}
	return fmt.Sprintf("(%v)", s.shape)
}
func (s *sexpShape) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	return strings.CutPrefix(str.S, kwPrefix)
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		name, ok := isKW(args[i])
		if !ok {
			result.positional = append(result.positional, args[i])
			continue
		}
		if i+1 < len(args) {
			result.kw[name] = args[i+1]
			i++
		} else {
			// Trailing keyword with no value.
			result.kw[name] = zygo.SexpNull
		}
	}
	return result
}

// only rejects keywords outside allowed, so a typo like :raduis is an
// error rather than a silent default.
func (a kwArgs) only(allowed ...string) error {
	for k := range a.kw {
		if !slices.Contains(allowed, k) {
			return fmt.Errorf("unknown keyword :%s", k)
		}
	}
	return nil
}

// num returns the numeric keyword key, or def when it is absent.
func (a kwArgs) num(key string, def float64) (float64, error) {
	v, ok := a.kw[key]
	if !ok {
		return def, nil
	}
	f, err := toFloat64(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

// vec returns the vec2 keyword key, or def when it is absent.
func (a kwArgs) vec(key string, def geom.Vec2) (geom.Vec2, error) {
	v, ok := a.kw[key]
	if !ok {
		return def, nil
	}
	p, err := toVec2(v)
	if err != nil {
		return geom.Vec2{}, fmt.Errorf("%s: %w", key, err)
	}
	return p, nil
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toVec2 extracts a Vec2 from a sexpVec2.
func toVec2(s zygo.Sexp) (geom.Vec2, error) {
	if v, ok := s.(*sexpVec2); ok {
		return v.vec, nil
	}
	return geom.Vec2{}, fmt.Errorf("expected vec2, got %T (%s)", s, s.SexpString(nil))
}

// toShape extracts a shape from a sexpShape.
func toShape(s zygo.Sexp) (shape.Shape, error) {
	if v, ok := s.(*sexpShape); ok {
		return v.shape, nil
	}
	return nil, fmt.Errorf("expected shape, got %T (%s)", s, s.SexpString(nil))
}

// sexpListToSlice converts a SexpPair (Lisp list) or SexpArray to a Go slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// builtin is the signature shared by every sketch builtin. It receives
// arguments already split by parseArgs.
type builtin func(pa kwArgs) (zygo.Sexp, error)

// registerBuiltins installs the sketch builtins into a zygomys environment.
// Shapes are plain values until defshape or draw adds them to s.
//
// Source code must be preprocessed with preprocessSource() before evaluation so
// that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, s *sketch.Sketch) {
	b := &builder{sketch: s}
	fns := map[string]builtin{
		"vec2":      vec2,
		"dot":       constructor("dot", dotFromArgs),
		"circle":    constructor("circle", circleFromArgs),
		"ellipse":   constructor("ellipse", ellipseFromArgs),
		"rect":      constructor("rect", rectFromArgs),
		"line":      constructor("line", lineFromArgs),
		"ray":       constructor("ray", rayFromArgs),
		"segment":   constructor("segment", segmentFromArgs),
		"translate": translate,
		"rotate":    rotate,
		"scale":     scale,
		"stretch":   stretch,
		"defshape":  b.defshape,
		"shape":     b.lookup,
		"draw":      b.draw,
	}
	for name, fn := range fns {
		env.AddFunction(name, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			return fn(parseArgs(args))
		})
	}
}

// builder holds the sketch that defshape and draw append to.
type builder struct {
	sketch *sketch.Sketch
}

// constructor adapts a shape-building function into a builtin, prefixing
// its errors with the builtin's name.
func constructor(name string, build func(kwArgs) (shape.Shape, error)) builtin {
	return func(pa kwArgs) (zygo.Sexp, error) {
		if len(pa.positional) > 0 {
			return zygo.SexpNull, fmt.Errorf("%s takes only keyword arguments", name)
		}
		sh, err := build(pa)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
		}
		return &sexpShape{shape: sh}, nil
	}
}

// (vec2 1 2)
func vec2(pa kwArgs) (zygo.Sexp, error) {
	if len(pa.positional) != 2 || len(pa.kw) > 0 {
		return zygo.SexpNull, fmt.Errorf("vec2 requires exactly 2 numbers")
	}
	x, err := toFloat64(pa.positional[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("vec2: x: %w", err)
	}
	y, err := toFloat64(pa.positional[1])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("vec2: y: %w", err)
	}
	return &sexpVec2{vec: geom.V(x, y)}, nil
}

// ---------------------------------------------------------------------------
// Shape constructors
// ---------------------------------------------------------------------------

// defaultDir is the direction of a line or ray given without :dir.
var defaultDir = geom.V(1, 0)

// (dot :at (vec2 1 2))
func dotFromArgs(pa kwArgs) (shape.Shape, error) {
	if err := pa.only("at"); err != nil {
		return nil, err
	}
	at, err := pa.vec("at", geom.Vec2{})
	if err != nil {
		return nil, err
	}
	return shape.Dot{Point: at}, nil
}

// (circle :at (vec2 0 0) :radius 5)
func circleFromArgs(pa kwArgs) (shape.Shape, error) {
	if err := pa.only("at", "radius"); err != nil {
		return nil, err
	}
	at, err := pa.vec("at", geom.Vec2{})
	if err != nil {
		return nil, err
	}
	r, err := pa.num("radius", 0)
	if err != nil {
		return nil, err
	}
	return shape.Circle{Point: at, Radius: r}, nil
}

// (ellipse :at (vec2 0 0) :rx 4 :ry 2)
func ellipseFromArgs(pa kwArgs) (shape.Shape, error) {
	if err := pa.only("at", "rx", "ry"); err != nil {
		return nil, err
	}
	at, err := pa.vec("at", geom.Vec2{})
	if err != nil {
		return nil, err
	}
	rx, err := pa.num("rx", 0)
	if err != nil {
		return nil, err
	}
	ry, err := pa.num("ry", 0)
	if err != nil {
		return nil, err
	}
	return shape.Ellipse{Point: at, RadiusX: rx, RadiusY: ry}, nil
}

// (rect :at (vec2 0 0) :size (vec2 10 5))
func rectFromArgs(pa kwArgs) (shape.Shape, error) {
	if err := pa.only("at", "size"); err != nil {
		return nil, err
	}
	at, err := pa.vec("at", geom.Vec2{})
	if err != nil {
		return nil, err
	}
	size, err := pa.vec("size", geom.Vec2{})
	if err != nil {
		return nil, err
	}
	return shape.Rectangle{Point: at, Size: size}, nil
}

// (line :at (vec2 0 0) :dir (vec2 1 0))
func lineFromArgs(pa kwArgs) (shape.Shape, error) {
	at, dir, err := pointAndDir(pa)
	if err != nil {
		return nil, err
	}
	return shape.Line{Point: at, Direction: dir}, nil
}

// (ray :at (vec2 0 0) :dir (vec2 0 1))
func rayFromArgs(pa kwArgs) (shape.Shape, error) {
	at, dir, err := pointAndDir(pa)
	if err != nil {
		return nil, err
	}
	return shape.Ray{Point: at, Direction: dir}, nil
}

func pointAndDir(pa kwArgs) (at, dir geom.Vec2, err error) {
	if err = pa.only("at", "dir"); err != nil {
		return
	}
	if at, err = pa.vec("at", geom.Vec2{}); err != nil {
		return
	}
	dir, err = pa.vec("dir", defaultDir)
	return
}

// (segment :from (vec2 0 0) :to (vec2 10 0))
func segmentFromArgs(pa kwArgs) (shape.Shape, error) {
	if err := pa.only("from", "to"); err != nil {
		return nil, err
	}
	from, err := pa.vec("from", geom.Vec2{})
	if err != nil {
		return nil, err
	}
	to, err := pa.vec("to", geom.Vec2{})
	if err != nil {
		return nil, err
	}
	return shape.LineSegment{Start: from, End: to}, nil
}

// ---------------------------------------------------------------------------
// Transforms
// ---------------------------------------------------------------------------

// subject checks that pa has exactly n positional arguments and returns
// the first as a shape.
func subject(op string, pa kwArgs, n int) (shape.Shape, error) {
	if len(pa.positional) != n {
		return nil, fmt.Errorf("%s requires %d positional arguments, got %d", op, n, len(pa.positional))
	}
	sh, err := toShape(pa.positional[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sh, nil
}

// (translate s (vec2 dx dy))
func translate(pa kwArgs) (zygo.Sexp, error) {
	sh, err := subject("translate", pa, 2)
	if err != nil {
		return zygo.SexpNull, err
	}
	d, err := toVec2(pa.positional[1])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("translate: offset: %w", err)
	}
	return &sexpShape{shape: shape.Translate(sh, d)}, nil
}

// (rotate s :pivot (vec2 0 0) :angle 1.57)
// (rotate s :degrees 90)
//
// The pivot defaults to the shape's anchor.
func rotate(pa kwArgs) (zygo.Sexp, error) {
	sh, err := subject("rotate", pa, 1)
	if err != nil {
		return zygo.SexpNull, err
	}
	if err := pa.only("pivot", "angle", "degrees"); err != nil {
		return zygo.SexpNull, fmt.Errorf("rotate: %w", err)
	}
	pivot, err := pa.vec("pivot", sh.Anchor())
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("rotate: %w", err)
	}

	_, hasAngle := pa.kw["angle"]
	_, hasDegrees := pa.kw["degrees"]
	var angle float64
	switch {
	case hasAngle && hasDegrees:
		return zygo.SexpNull, fmt.Errorf("rotate: give either :angle or :degrees, not both")
	case hasAngle:
		angle, err = pa.num("angle", 0)
	case hasDegrees:
		angle, err = pa.num("degrees", 0)
		angle *= math.Pi / 180
	default:
		return zygo.SexpNull, fmt.Errorf("rotate requires :angle or :degrees")
	}
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("rotate: %w", err)
	}
	return &sexpShape{shape: shape.Rotate(sh, pivot, angle)}, nil
}

// (scale s 2)
func scale(pa kwArgs) (zygo.Sexp, error) {
	sh, err := subject("scale", pa, 2)
	if err != nil {
		return zygo.SexpNull, err
	}
	f, err := toFloat64(pa.positional[1])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("scale: factor: %w", err)
	}
	return &sexpShape{shape: shape.Scale(sh, f)}, nil
}

// (stretch s 2 1)
func stretch(pa kwArgs) (zygo.Sexp, error) {
	sh, err := subject("stretch", pa, 3)
	if err != nil {
		return zygo.SexpNull, err
	}
	fx, err := toFloat64(pa.positional[1])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("stretch: fx: %w", err)
	}
	fy, err := toFloat64(pa.positional[2])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("stretch: fy: %w", err)
	}
	return &sexpShape{shape: shape.Stretch(sh, fx, fy)}, nil
}

// ---------------------------------------------------------------------------
// Sketch membership
// ---------------------------------------------------------------------------

// (defshape "wheel" (circle ...))
func (b *builder) defshape(pa kwArgs) (zygo.Sexp, error) {
	if len(pa.positional) != 2 {
		return zygo.SexpNull, fmt.Errorf("defshape requires a name and a shape expression")
	}
	name, err := toString(pa.positional[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("defshape: name: %w", err)
	}
	if name == "" {
		return zygo.SexpNull, fmt.Errorf("defshape: name must not be empty")
	}
	if b.sketch.Lookup(name) != nil {
		return zygo.SexpNull, fmt.Errorf("defshape: shape %q already defined", name)
	}
	sh, err := toShape(pa.positional[1])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("defshape: %w", err)
	}

	b.sketch.Add(&sketch.Entry{
		ID:    sketch.NewEntryID("shape", name),
		Name:  name,
		Shape: sh,
	})
	return &sexpShape{shape: sh, name: name}, nil
}

// (shape "wheel")
func (b *builder) lookup(pa kwArgs) (zygo.Sexp, error) {
	if len(pa.positional) != 1 {
		return zygo.SexpNull, fmt.Errorf("shape requires a name argument")
	}
	name, err := toString(pa.positional[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("shape: name: %w", err)
	}
	e := b.sketch.Lookup(name)
	if e == nil {
		return zygo.SexpNull, fmt.Errorf("shape: no shape named %q", name)
	}
	return &sexpShape{shape: e.Shape, name: name}, nil
}

// (draw s1 s2 ...) or (draw (list s1 s2))
//
// Adds unnamed entries. IDs come from the entry's position, so the same
// script always yields the same IDs.
func (b *builder) draw(pa kwArgs) (zygo.Sexp, error) {
	if len(pa.kw) > 0 {
		return zygo.SexpNull, fmt.Errorf("draw takes no keyword arguments")
	}
	var shapes []shape.Shape
	for i, arg := range pa.positional {
		items := []zygo.Sexp{arg}
		if _, single := arg.(*sexpShape); !single {
			var err error
			if items, err = sexpListToSlice(arg); err != nil {
				return zygo.SexpNull, fmt.Errorf("draw: argument %d: %w", i+1, err)
			}
		}
		for _, item := range items {
			sh, err := toShape(item)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("draw: argument %d: %w", i+1, err)
			}
			shapes = append(shapes, sh)
		}
	}
	for _, sh := range shapes {
		b.sketch.Add(&sketch.Entry{
			ID:    sketch.NewEntryID("draw", strconv.Itoa(b.sketch.Len())),
			Shape: sh,
		})
	}
	return zygo.SexpNull, nil
}

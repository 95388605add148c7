package main

import (
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/chazu/sketchgeom/pkg/brush"
	"github.com/chazu/sketchgeom/pkg/config"
	"github.com/chazu/sketchgeom/pkg/engine"
	"github.com/chazu/sketchgeom/pkg/geom"
	"github.com/chazu/sketchgeom/pkg/shape"
	"github.com/chazu/sketchgeom/pkg/sketch"
)

// colorPalette is a default palette used to assign distinct colors to shapes.
var colorPalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// App is the frontend binding. Evaluate replaces the current sketch;
// Select and HitAt query it.
type App struct {
	engine    *engine.Engine
	log       *zap.Logger
	brushOpts []brush.Option

	mu      sync.Mutex
	current *sketch.Sketch
	index   *brush.Index
}

// BoundsData is a JSON-serializable bounding box. Infinite or NaN edges
// are null, since JSON has no encoding for them. Unbounded names the
// infinite edges as "-x", "+x", "-y" and "+y".
type BoundsData struct {
	MinX      *float64 `json:"minX"`
	MaxX      *float64 `json:"maxX"`
	MinY      *float64 `json:"minY"`
	MaxY      *float64 `json:"maxY"`
	Width     *float64 `json:"width"`
	Height    *float64 `json:"height"`
	Unbounded []string `json:"unbounded,omitempty"`
}

// ShapeData is one sketch entry in the frontend format.
type ShapeData struct {
	ID     string              `json:"id"`
	Name   string              `json:"name,omitempty"`
	Kind   string              `json:"kind"`
	Params map[string]*float64 `json:"params"`
	Bounds BoundsData          `json:"bounds"`
	Color  string              `json:"color"`
}

// EvalErrorData is a JSON-serializable eval error or warning for the frontend.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Entry   string `json:"entry,omitempty"`
	Message string `json:"message"`
}

// EvalResult is the full result returned to the frontend.
type EvalResult struct {
	Shapes   []ShapeData     `json:"shapes"`
	Bounds   *BoundsData     `json:"bounds"`
	Errors   []EvalErrorData `json:"errors"`
	Warnings []EvalErrorData `json:"warnings"`
}

// SelectResult lists the IDs of the entries a query hit, in paint order.
type SelectResult struct {
	IDs   []string `json:"ids"`
	Error string   `json:"error,omitempty"`
}

// NewApp creates an App from cfg. A nil logger discards output.
func NewApp(cfg config.Config, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{
		engine:    engine.NewEngine(cfg.EngineOptions(log.Named("engine"))...),
		log:       log,
		brushOpts: cfg.BrushOptions(),
	}
}

// Evaluate takes Lisp source and returns the sketch's shapes + errors.
// This is the primary binding called by the frontend editor. On failure
// the previous sketch stays current.
func (a *App) Evaluate(source string) EvalResult {
	result := EvalResult{
		Shapes:   []ShapeData{},
		Errors:   []EvalErrorData{},
		Warnings: []EvalErrorData{},
	}

	// Step 1: Evaluate and validate the source.
	res, err := a.engine.EvaluateResult(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		a.log.Error("evaluate failed", zap.Error(err))
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}

	// Step 2: Convert errors and warnings to the frontend format.
	for _, e := range res.Errors {
		result.Errors = append(result.Errors, EvalErrorData{
			Line:    e.Line,
			Col:     e.Col,
			Message: e.Message,
		})
	}
	for _, w := range res.Warnings {
		result.Warnings = append(result.Warnings, EvalErrorData{
			Entry:   w.EntryID.String(),
			Message: w.Message,
		})
	}
	if len(result.Errors) > 0 {
		return result
	}

	// Step 3: Build the selection index for the new sketch.
	s := res.Sketch
	ix, err := s.Index(a.brushOpts...)
	if err != nil {
		a.log.Error("index failed", zap.Error(err))
		result.Errors = append(result.Errors, EvalErrorData{Message: "indexing failed: " + err.Error()})
		return result
	}
	a.mu.Lock()
	a.current, a.index = s, ix
	a.mu.Unlock()

	// Step 4: Convert entries to the frontend format.
	for i, e := range s.Entries {
		result.Shapes = append(result.Shapes, ShapeData{
			ID:     e.ID.String(),
			Name:   e.Name,
			Kind:   e.Kind().String(),
			Params: shapeParams(e.Shape),
			Bounds: boundsData(shape.Bounds(e.Shape)),
			Color:  colorPalette[i%len(colorPalette)],
		})
	}
	if b, ok := s.Bounds(); ok {
		bd := boundsData(b)
		result.Bounds = &bd
	}

	return result
}

// Select returns the entries of the current sketch that intersect the box.
func (a *App) Select(minX, maxX, minY, maxY float64) SelectResult {
	return a.query(func(ix *brush.Index) ([]int, error) {
		return ix.Select(geom.NewBounds(minX, maxX, minY, maxY))
	})
}

// HitAt returns the entries of the current sketch under the point.
func (a *App) HitAt(x, y float64) SelectResult {
	return a.query(func(ix *brush.Index) ([]int, error) {
		return ix.At(geom.V(x, y))
	})
}

func (a *App) query(run func(*brush.Index) ([]int, error)) SelectResult {
	a.mu.Lock()
	s, ix := a.current, a.index
	a.mu.Unlock()

	result := SelectResult{IDs: []string{}}
	if ix == nil {
		return result
	}
	hits, err := run(ix)
	if err != nil {
		a.log.Warn("selection failed", zap.Error(err))
		result.Error = err.Error()
		return result
	}
	for _, i := range hits {
		result.IDs = append(result.IDs, s.Entries[i].ID.String())
	}
	return result
}

// finite returns &f, or nil when f is infinite or NaN.
func finite(f float64) *float64 {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil
	}
	return &f
}

func boundsData(b geom.Bounds) BoundsData {
	var open []string
	for _, edge := range []struct {
		v    float64
		sign int
		name string
	}{
		{b.MinX, -1, "-x"}, {b.MaxX, 1, "+x"}, {b.MinY, -1, "-y"}, {b.MaxY, 1, "+y"},
	} {
		if math.IsInf(edge.v, edge.sign) {
			open = append(open, edge.name)
		}
	}
	return BoundsData{
		MinX:      finite(b.MinX),
		MaxX:      finite(b.MaxX),
		MinY:      finite(b.MinY),
		MaxY:      finite(b.MaxY),
		Width:     finite(b.Width),
		Height:    finite(b.Height),
		Unbounded: open,
	}
}

// shapeParams flattens a shape's fields for drawing.
func shapeParams(s shape.Shape) map[string]*float64 {
	p := make(map[string]*float64, 6)
	point := func(xk, yk string, v geom.Vec2) {
		p[xk] = finite(v.X)
		p[yk] = finite(v.Y)
	}
	switch v := s.(type) {
	case shape.Dot:
		point("x", "y", v.Point)
	case shape.Circle:
		point("x", "y", v.Point)
		p["radius"] = finite(v.Radius)
	case shape.Ellipse:
		point("x", "y", v.Point)
		p["rx"] = finite(v.RadiusX)
		p["ry"] = finite(v.RadiusY)
	case shape.Rectangle:
		point("x", "y", v.Point)
		p["width"] = finite(v.Size.X)
		p["height"] = finite(v.Size.Y)
	case shape.Line:
		point("x", "y", v.Point)
		point("dx", "dy", v.Direction)
	case shape.Ray:
		point("x", "y", v.Point)
		point("dx", "dy", v.Direction)
	case shape.LineSegment:
		point("x", "y", v.Start)
		point("x2", "y2", v.End)
	}
	return p
}

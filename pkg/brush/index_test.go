package brush

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/sketchgeom/pkg/geom"
	"github.com/chazu/sketchgeom/pkg/shape"
)

func scene() []shape.Shape {
	return []shape.Shape{
		shape.Dot{Point: geom.V(10, 10)},                                   // 0
		shape.Circle{Point: geom.V(0, 0), Radius: 5},                       // 1
		shape.Rectangle{Point: geom.V(20, 20), Size: geom.V(10, 5)},        // 2
		shape.LineSegment{Start: geom.V(-20, 0), End: geom.V(-10, 0)},      // 3
		shape.Line{Point: geom.V(0, 50), Direction: geom.V(1, 0)},          // 4
		shape.Ray{Point: geom.V(100, 0), Direction: geom.V(0, 1)},          // 5
		shape.Ellipse{Point: geom.V(60, 60), RadiusX: 10, RadiusY: 2},      // 6
		shape.Rectangle{Point: geom.V(30, 0), Size: geom.V(5, 5)},          // 7
	}
}

func TestSelect(t *testing.T) {
	ix, err := FromSlice(scene())
	require.NoError(t, err)
	require.Equal(t, 8, ix.Len())

	tests := []struct {
		name string
		box  geom.Bounds
		want []int
	}{
		{"empty area", geom.NewBounds(200, 210, 200, 210), nil},
		{"dot and circle", geom.NewBounds(-1, 11, -1, 11), []int{0, 1}},
		{"line crosses", geom.NewBounds(-100, -90, 45, 55), []int{4}},
		{"ray above origin only", geom.NewBounds(95, 105, -10, -1), nil},
		{"ray ahead", geom.NewBounds(95, 105, 10, 20), []int{5}},
		{"touching rectangle edge", geom.NewBounds(35, 40, 0, 5), []int{7}},
		{"segment endpoint", geom.NewBounds(-11, -9, -1, 1), []int{3}},
		{"ellipse bounds corner only", geom.NewBounds(69, 75, 61.5, 70), nil},
		{"everything bounded", geom.NewBounds(-30, 80, -30, 70), []int{0, 1, 2, 3, 4, 6, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ix.Select(tt.box)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAt(t *testing.T) {
	ix, err := FromSlice(scene())
	require.NoError(t, err)

	got, err := ix.At(geom.V(-15, 3))
	require.NoError(t, err)
	assert.Equal(t, []int{3}, got, "within tolerance of a flat segment")

	got, err = ix.At(geom.V(1, 1))
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got)

	got, err = ix.At(geom.V(500, 51))
	require.NoError(t, err)
	assert.Equal(t, []int{4}, got, "far along the line")
}

// TestSelectMatchesLinearScan checks the broad phase never drops a shape
// the narrow phase would accept.
func TestSelectMatchesLinearScan(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	var shapes []shape.Shape
	for range 400 {
		p := geom.V(rng.Float64()*1000, rng.Float64()*1000)
		switch rng.IntN(4) {
		case 0:
			shapes = append(shapes, shape.Dot{Point: p})
		case 1:
			shapes = append(shapes, shape.Circle{Point: p, Radius: rng.Float64() * 30})
		case 2:
			shapes = append(shapes, shape.Rectangle{Point: p, Size: geom.V(rng.Float64()*40, rng.Float64()*40)})
		default:
			shapes = append(shapes, shape.LineSegment{Start: p, End: p.Add(geom.V(rng.Float64()*50-25, rng.Float64()*50-25))})
		}
	}
	ix, err := FromSlice(shapes)
	require.NoError(t, err)

	for q := range 50 {
		x, y := rng.Float64()*1000, rng.Float64()*1000
		box := geom.NewBounds(x, x+rng.Float64()*150, y, y+rng.Float64()*150)
		t.Run(fmt.Sprint(q), func(t *testing.T) {
			var want []int
			for i, s := range shapes {
				if shape.HitBounds(s, box) {
					want = append(want, i)
				}
			}
			got, err := ix.Select(box)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestSession(t *testing.T) {
	ix, err := FromSlice(scene())
	require.NoError(t, err)

	s := ix.Begin(geom.V(-2, -2))
	assert.Empty(t, s.Selected())

	sel, changed, err := s.Move(geom.V(2, 2))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []int{1}, sel)

	_, changed, err = s.Move(geom.V(3, 3))
	require.NoError(t, err)
	assert.False(t, changed)

	sel, changed, err = s.Move(geom.V(11, 11))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []int{0, 1}, sel)
	assert.Equal(t, geom.NewBounds(-2, 11, -2, 11), s.Box())

	sel, _, err = s.Move(geom.V(-30, 3))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, sel, "dragging backwards normalizes the box")
}

func TestCustomRegistry(t *testing.T) {
	reg := shape.NewRegistry()
	reg.Dot = wideDot{}
	ix, err := FromSlice([]shape.Shape{shape.Dot{Point: geom.V(0, 0)}}, WithRegistry(reg), WithPadding(0.5))
	require.NoError(t, err)

	got, err := ix.Select(geom.NewBounds(15, 16, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, got)
}

type wideDot struct{ shape.DotStrategy }

func (wideDot) Bounds(s shape.Dot) geom.Bounds { return geom.Square(s.Point, 20) }

func (w wideDot) HitBounds(s shape.Dot, b geom.Bounds) bool {
	return geom.BoundsCollide(w.Bounds(s), b)
}

func BenchmarkSelect(b *testing.B) {
	rng := rand.New(rand.NewPCG(3, 4))
	shapes := make([]shape.Shape, 5000)
	for i := range shapes {
		shapes[i] = shape.Circle{Point: geom.V(rng.Float64()*5000, rng.Float64()*5000), Radius: 10}
	}
	ix, err := FromSlice(shapes)
	require.NoError(b, err)
	box := geom.NewBounds(1000, 1200, 1000, 1200)

	for b.Loop() {
		_, _ = ix.Select(box)
	}
}

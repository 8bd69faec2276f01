package shapes_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/shapes"
)

func TestTriangleGeometry(t *testing.T) {
	g := shapes.TriangleGeometry()
	require.NoError(t, g.Validate())
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, shapes.Triangles, g.Topology)

	b, err := shapes.Pack(g)
	require.NoError(t, err)
	assert.Equal(t, 7, b.Stride)
	assert.Equal(t, int32(28), b.ByteStride())
	assert.Equal(t, 3, b.VertexCount())
	assert.Equal(t, []shapes.Layout{
		{Name: shapes.AttribPosition, Size: 3, Offset: 0},
		{Name: shapes.AttribColor, Size: 4, Offset: 3},
	}, b.Layouts)

	// position then color, per vertex
	assert.Equal(t, []float32{0.0, 0.622008459, 0.0, 1, 0, 0, 1}, b.Data[:7])
	assert.Equal(t, []float32{0.5, -0.311004243, 0.0, 0, 0, 1, 1}, b.Data[14:])
}

func TestSquareGeometry(t *testing.T) {
	g := shapes.SquareGeometry()
	require.NoError(t, g.Validate())
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 2, g.PositionSize)
	assert.Equal(t, shapes.TriangleFan, g.Topology)

	b, err := shapes.Pack(g)
	require.NoError(t, err)
	assert.Equal(t, g.Positions, b.Data)
	assert.Len(t, b.Layouts, 1)
}

func TestRegularPolygonOnUnitCircle(t *testing.T) {
	pts := shapes.RegularPolygon(5, 1)
	require.Len(t, pts, 10)

	for k := 0; k < 5; k++ {
		x, y := float64(pts[2*k]), float64(pts[2*k+1])
		assert.InDelta(t, 1.0, x*x+y*y, 1e-6, "vertex %d", k)

		angle := math.Atan2(y, x) * 180 / math.Pi
		if angle < 0 {
			angle += 360
		}
		assert.InDelta(t, float64(72*k), angle, 1e-4, "vertex %d", k)
	}
	assert.InDelta(t, 1.0, pts[0], 1e-7)
	assert.InDelta(t, 0.0, pts[1], 1e-7)
}

func TestRegularPolygonRadius(t *testing.T) {
	pts := shapes.RegularPolygon(8, 0.25)
	require.Len(t, pts, 16)
	for k := 0; k < 8; k++ {
		x, y := float64(pts[2*k]), float64(pts[2*k+1])
		assert.InDelta(t, 0.0625, x*x+y*y, 1e-6)
	}
}

func TestRegularPolygonIsPure(t *testing.T) {
	a := shapes.RegularPolygon(5, 1)
	b := shapes.RegularPolygon(5, 1)
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, math.Float32bits(a[i]), math.Float32bits(b[i]), "component %d", i)
	}
}

func TestRegularPolygonDegenerate(t *testing.T) {
	assert.Nil(t, shapes.RegularPolygon(2, 1))
	assert.Error(t, shapes.PolygonGeometry(2, 1).Validate())
}

func TestCubeGeometry(t *testing.T) {
	g := shapes.CubeGeometry()
	require.NoError(t, g.Validate())
	assert.Len(t, g.Positions, 36*3)
	assert.Equal(t, 36, g.VertexCount())
	assert.Equal(t, shapes.Triangles, g.Topology)

	for _, c := range g.Positions {
		assert.Contains(t, []float32{-0.5, 0.5}, c)
	}

	// every triangle lies in one face plane
	faces := make(map[[2]int]int)
	for tri := 0; tri < 12; tri++ {
		v := g.Positions[tri*9 : tri*9+9]
		found := false
		for axis := 0; axis < 3; axis++ {
			if v[axis] == v[3+axis] && v[axis] == v[6+axis] {
				side := 0
				if v[axis] > 0 {
					side = 1
				}
				faces[[2]int{axis, side}]++
				found = true
				break
			}
		}
		assert.True(t, found, "triangle %d is not axis aligned", tri)
	}
	assert.Len(t, faces, 6)
	for face, n := range faces {
		assert.Equal(t, 2, n, "face %v", face)
	}
}

func TestFanIndices(t *testing.T) {
	assert.Equal(t, []uint16{0, 1, 2, 0, 2, 3, 0, 3, 4}, shapes.FanIndices(5))
	assert.Equal(t, []uint16{0, 1, 2, 0, 2, 3}, shapes.FanIndices(4))
	assert.Nil(t, shapes.FanIndices(2))
}

func TestValidateMalformed(t *testing.T) {
	tests := []struct {
		name string
		g    shapes.Geometry
	}{
		{"ragged positions", shapes.Geometry{Positions: []float32{0, 0, 0, 1}, PositionSize: 3}},
		{"no position size", shapes.Geometry{Positions: []float32{0, 0}}},
		{"empty", shapes.Geometry{PositionSize: 2}},
		{"color count", shapes.Geometry{Positions: []float32{0, 0, 1, 1}, PositionSize: 2, Colors: []float32{1, 1, 1, 1}, ColorSize: 4}},
		{"index range", shapes.Geometry{Positions: []float32{0, 0, 1, 1, 1, 0}, PositionSize: 2, Indices: []uint16{0, 1, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.g.Validate(), shapes.ErrMalformedGeometry)
			_, err := shapes.Pack(tt.g)
			assert.ErrorIs(t, err, shapes.ErrMalformedGeometry)
		})
	}
}

func TestDrawCount(t *testing.T) {
	g := shapes.PolygonGeometry(5, 1)
	assert.Equal(t, 5, g.DrawCount())
	g.Indices = shapes.FanIndices(5)
	assert.Equal(t, 9, g.DrawCount())
}

func TestIndexedGeometryVertexLimit(t *testing.T) {
	assert.Nil(t, shapes.FanIndices(shapes.MaxIndexedVertices+1))
	assert.Len(t, shapes.FanIndices(shapes.MaxIndexedVertices), 3*(shapes.MaxIndexedVertices-2))

	// a list that wrapped past 65535 stays in range but addresses the wrong vertices
	n := shapes.MaxIndexedVertices + 4464
	g := shapes.PolygonGeometry(n, 1)
	g.Indices = []uint16{0, 4462, 4463}
	assert.ErrorIs(t, g.Validate(), shapes.ErrMalformedGeometry)

	g.Indices = nil
	assert.NoError(t, g.Validate(), "fan draws have no index limit")
}

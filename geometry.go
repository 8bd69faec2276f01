package shapes

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"
)

// Attribute names declared by the shape shaders.
// MaxIndexedVertices is the largest vertex count an unsigned short index
// list can address.
const MaxIndexedVertices = math.MaxUint16 + 1

const (
	AttribPosition = "vPosition"
	AttribColor    = "aColor"
	UniformMVP     = "uMVPMatrix"
)

// Geometry describes the vertices of one shape.
type Geometry struct {
	Positions    []float32
	PositionSize int // components per position
	Colors       []float32
	ColorSize    int // components per color, 0 when Colors is empty
	Topology     Topology
	Indices      []uint16 // optional draw order, triangle list over Positions
}

// VertexCount returns the number of vertices described by Positions.
func (g Geometry) VertexCount() int {
	if g.PositionSize <= 0 {
		return 0
	}
	return len(g.Positions) / g.PositionSize
}

// DrawCount returns the number of vertices a draw call consumes.
func (g Geometry) DrawCount() int {
	if len(g.Indices) > 0 {
		return len(g.Indices)
	}
	return g.VertexCount()
}

// Validate checks that component counts and indices are consistent.
func (g Geometry) Validate() error {
	if g.PositionSize < 1 || g.PositionSize > 4 {
		return fmt.Errorf("%w: position size %d", ErrMalformedGeometry, g.PositionSize)
	}
	if len(g.Positions) == 0 || len(g.Positions)%g.PositionSize != 0 {
		return fmt.Errorf("%w: %d position components not divisible by %d",
			ErrMalformedGeometry, len(g.Positions), g.PositionSize)
	}
	n := g.VertexCount()
	if len(g.Colors) > 0 {
		if g.ColorSize < 1 || g.ColorSize > 4 {
			return fmt.Errorf("%w: color size %d", ErrMalformedGeometry, g.ColorSize)
		}
		if len(g.Colors) != n*g.ColorSize {
			return fmt.Errorf("%w: %d color components for %d vertices",
				ErrMalformedGeometry, len(g.Colors), n)
		}
	}
	if len(g.Indices) > 0 && n > MaxIndexedVertices {
		return fmt.Errorf("%w: %d vertices exceed the %d addressable by 16-bit indices",
			ErrMalformedGeometry, n, MaxIndexedVertices)
	}
	for i, idx := range g.Indices {
		if int(idx) >= n {
			return fmt.Errorf("%w: index %d at %d out of range", ErrMalformedGeometry, idx, i)
		}
	}
	return nil
}

// Layout places one attribute inside an interleaved Buffer.
type Layout struct {
	Name   string
	Size   int // components
	Offset int // components from the start of a vertex
}

// Buffer is interleaved vertex data ready for upload.
type Buffer struct {
	Data    []float32
	Stride  int // components per vertex
	Layouts []Layout
}

// VertexCount returns len(Data) / Stride.
func (b Buffer) VertexCount() int {
	if b.Stride == 0 {
		return 0
	}
	return len(b.Data) / b.Stride
}

// ByteStride returns the vertex stride in bytes.
func (b Buffer) ByteStride() int32 {
	return int32(b.Stride * 4)
}

// Pack interleaves positions and optional colors into one Buffer.
func Pack(g Geometry) (Buffer, error) {
	if err := g.Validate(); err != nil {
		return Buffer{}, err
	}

	b := Buffer{
		Stride:  g.PositionSize,
		Layouts: []Layout{{Name: AttribPosition, Size: g.PositionSize}},
	}
	if len(g.Colors) > 0 {
		b.Layouts = append(b.Layouts, Layout{Name: AttribColor, Size: g.ColorSize, Offset: g.PositionSize})
		b.Stride += g.ColorSize
	}

	n := g.VertexCount()
	b.Data = make([]float32, 0, n*b.Stride)
	for i := 0; i < n; i++ {
		b.Data = append(b.Data, g.Positions[i*g.PositionSize:(i+1)*g.PositionSize]...)
		if g.ColorSize > 0 && len(g.Colors) > 0 {
			b.Data = append(b.Data, g.Colors[i*g.ColorSize:(i+1)*g.ColorSize]...)
		}
	}
	return b, nil
}

// TriangleGeometry returns an equilateral triangle with one RGBA color per vertex.
func TriangleGeometry() Geometry {
	return Geometry{
		Positions: []float32{
			0.0, 0.622008459, 0.0, // top
			-0.5, -0.311004243, 0.0, // bottom left
			0.5, -0.311004243, 0.0, // bottom right
		},
		PositionSize: 3,
		Colors: []float32{
			1, 0, 0, 1,
			0, 1, 0, 1,
			0, 0, 1, 1,
		},
		ColorSize: 4,
		Topology:  Triangles,
	}
}

// SquareGeometry returns an axis-aligned square drawn as a fan.
func SquareGeometry() Geometry {
	return Geometry{
		Positions: []float32{
			-0.5, 0.5, // top left
			-0.5, -0.5, // bottom left
			0.5, -0.5, // bottom right
			0.5, 0.5, // top right
		},
		PositionSize: 2,
		Topology:     TriangleFan,
	}
}

// RegularPolygon returns n 2D points on a circle of the given radius,
// starting at angle 0 and spaced by 2π/n counter-clockwise.
func RegularPolygon(n int, radius float32) []float32 {
	if n < 3 {
		return nil
	}
	step := 2 * math32.Pi / float32(n)
	pts := make([]float32, 0, 2*n)
	for k := 0; k < n; k++ {
		a := float32(k) * step
		pts = append(pts, radius*math32.Cos(a), radius*math32.Sin(a))
	}
	return pts
}

// PolygonGeometry returns a regular n-gon drawn as a fan.
func PolygonGeometry(n int, radius float32) Geometry {
	return Geometry{
		Positions:    RegularPolygon(n, radius),
		PositionSize: 2,
		Topology:     TriangleFan,
	}
}

// FanIndices returns a triangle-list index order equivalent to a fan over
// n vertices: (0, k, k+1) for k in 1..n-2. It returns nil when n is below 3
// or above MaxIndexedVertices.
func FanIndices(n int) []uint16 {
	if n < 3 || n > MaxIndexedVertices {
		return nil
	}
	idx := make([]uint16, 0, 3*(n-2))
	for k := 1; k < n-1; k++ {
		idx = append(idx, 0, uint16(k), uint16(k+1))
	}
	return idx
}

// CubeGeometry returns a unit cube centred at the origin as 12 independent
// triangles (no shared vertices).
func CubeGeometry() Geometry {
	const h = 0.5
	return Geometry{
		Positions: []float32{
			// front (+z)
			-h, -h, h, h, -h, h, h, h, h,
			-h, -h, h, h, h, h, -h, h, h,
			// back (-z)
			h, -h, -h, -h, -h, -h, -h, h, -h,
			h, -h, -h, -h, h, -h, h, h, -h,
			// left (-x)
			-h, -h, -h, -h, -h, h, -h, h, h,
			-h, -h, -h, -h, h, h, -h, h, -h,
			// right (+x)
			h, -h, h, h, -h, -h, h, h, -h,
			h, -h, h, h, h, -h, h, h, h,
			// top (+y)
			-h, h, h, h, h, h, h, h, -h,
			-h, h, h, h, h, -h, -h, h, -h,
			// bottom (-y)
			-h, -h, -h, h, -h, -h, h, -h, h,
			-h, -h, -h, h, -h, h, -h, -h, h,
		},
		PositionSize: 3,
		Topology:     Triangles,
	}
}

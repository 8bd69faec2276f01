package shapes

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// Kind selects the geometry and shaders of a Renderable.
type Kind int

const (
	KindTriangle Kind = iota
	KindSquare
	KindPolygon
	KindCube
)

// KindPentagon is a polygon with the default five sides.
const KindPentagon = KindPolygon

func (k Kind) String() string {
	switch k {
	case KindTriangle:
		return "triangle"
	case KindSquare:
		return "square"
	case KindPolygon:
		return "polygon"
	case KindCube:
		return "cube"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a shape name to its Kind. "pentagon" is accepted as a
// polygon alias.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "triangle":
		return KindTriangle, nil
	case "square":
		return KindSquare, nil
	case "polygon", "pentagon":
		return KindPolygon, nil
	case "cube":
		return KindCube, nil
	}
	return 0, fmt.Errorf("unknown shape %q", name)
}

// State is the construction state of a Renderable.
type State int

const (
	Uninitialized State = iota
	Ready
)

const (
	defaultSides  = 5
	defaultRadius = 1
)

// Renderable draws one shape with its own program and vertex buffers.
type Renderable struct {
	dev      Device
	kind     Kind
	shaders  ShaderSource
	logger   *slog.Logger
	strict   bool
	sides    int
	radius   float32
	indexed  bool
	perFrame bool

	state    State
	prog     *Program
	geom     Geometry
	buf      Buffer
	vbo, ebo uint32
	dirty    bool
}

// New compiles the program for kind and uploads its geometry. Without
// WithStrict a program that fails to compile or link is logged and the
// returned renderable skips its draws.
func New(dev Device, kind Kind, opts ...Option) (*Renderable, error) {
	r := &Renderable{
		dev:    dev,
		kind:   kind,
		logger: defaultLogger,
		sides:  defaultSides,
		radius: defaultRadius,
	}
	for _, opt := range opts {
		opt(r)
	}

	switch kind {
	case KindTriangle:
		r.shaders = triangleShaders
	case KindSquare:
		r.shaders = squareShaders
	case KindPolygon:
		r.shaders = polygonShaders
		if err := r.checkPolygon(r.sides, r.radius); err != nil {
			return nil, err
		}
	case KindCube:
		r.shaders = cubeShaders
	default:
		return nil, fmt.Errorf("unknown shape kind %d", int(kind))
	}

	if err := r.build(); err != nil {
		return nil, err
	}
	return r, nil
}

// NewTriangle returns a per-vertex colored triangle.
func NewTriangle(dev Device, opts ...Option) (*Renderable, error) {
	return New(dev, KindTriangle, opts...)
}

// NewSquare returns a square drawn as a fan.
func NewSquare(dev Device, opts ...Option) (*Renderable, error) {
	return New(dev, KindSquare, opts...)
}

// NewPentagon returns a regular pentagon on the unit circle.
func NewPentagon(dev Device, opts ...Option) (*Renderable, error) {
	return New(dev, KindPolygon, append([]Option{WithSides(5)}, opts...)...)
}

// NewCube returns a unit cube drawn as a triangle list.
func NewCube(dev Device, opts ...Option) (*Renderable, error) {
	return New(dev, KindCube, opts...)
}

func (r *Renderable) build() error {
	prog, err := NewCompiler(r.dev, r.logger).Build(r.shaders)
	r.prog = prog
	if err != nil && r.strict {
		r.release()
		return fmt.Errorf("build %s program: %w", r.kind, err)
	}

	r.geom = r.geometry()
	r.vbo = r.dev.CreateBuffer()
	if len(r.geom.Indices) > 0 {
		r.ebo = r.dev.CreateBuffer()
	}
	if err := r.upload(); err != nil {
		r.release()
		return err
	}

	r.state = Ready
	r.logger.Debug("shape ready", "kind", r.kind, "vertices", r.buf.VertexCount(), "program", r.prog.Handle)
	return nil
}

func (r *Renderable) geometry() Geometry {
	var g Geometry
	switch r.kind {
	case KindTriangle:
		g = TriangleGeometry()
	case KindSquare:
		g = SquareGeometry()
	case KindPolygon:
		g = PolygonGeometry(r.sides, r.radius)
	case KindCube:
		g = CubeGeometry()
	}
	if r.indexed && g.Topology == TriangleFan {
		g.Indices = FanIndices(g.VertexCount())
		g.Topology = Triangles
	}
	return g
}

func (r *Renderable) upload() error {
	buf, err := Pack(r.geom)
	if err != nil {
		return fmt.Errorf("pack %s geometry: %w", r.kind, err)
	}
	r.buf = buf
	r.dev.VertexData(r.vbo, buf.Data)
	if len(r.geom.Indices) > 0 {
		r.dev.IndexData(r.ebo, r.geom.Indices)
	}
	r.dirty = false
	return nil
}

// Draw renders the shape under mvp. Failures are logged, never returned.
func (r *Renderable) Draw(mvp mgl32.Mat4) {
	if err := r.TryDraw(mvp); err != nil {
		r.logger.Error("draw failed", "kind", r.kind, "err", err)
	}
}

// DrawIdentity renders the shape with no transform, positions taken as
// clip-space coordinates. It is Draw(mgl32.Ident4()).
func (r *Renderable) DrawIdentity() {
	r.Draw(mgl32.Ident4())
}

// TryDraw renders the shape under mvp and reports why nothing was drawn.
// Every attribute slot enabled during the call is disabled before it returns.
func (r *Renderable) TryDraw(mvp mgl32.Mat4) error {
	if r.state != Ready {
		return ErrNotReady
	}
	if !r.prog.Usable() {
		return fmt.Errorf("%w: %s", ErrProgramUnusable, r.prog.Log)
	}

	r.prog.Use()

	if r.perFrame && r.kind == KindPolygon {
		r.geom = r.geometry()
		r.dirty = true
	}
	if r.dirty {
		if err := r.upload(); err != nil {
			return err
		}
	} else {
		r.dev.BindVertexBuffer(r.vbo)
	}

	release, err := r.bindAttributes()
	defer release()
	if err != nil {
		return err
	}

	loc, err := r.prog.UniformLocation(UniformMVP)
	if err != nil {
		return err
	}
	m := [16]float32(mvp)
	r.dev.UniformMatrix4fv(loc, &m)

	if len(r.geom.Indices) > 0 {
		r.dev.BindIndexBuffer(r.ebo)
		r.dev.DrawElements(r.geom.Topology, int32(len(r.geom.Indices)))
	} else {
		r.dev.DrawArrays(r.geom.Topology, 0, int32(r.buf.VertexCount()))
	}
	return nil
}

// bindAttributes enables and points every attribute of the packed buffer.
// The returned func disables all slots that were enabled, even on error.
func (r *Renderable) bindAttributes() (func(), error) {
	var enabled []uint32
	release := func() {
		for _, slot := range enabled {
			r.dev.DisableVertexAttribArray(slot)
		}
	}

	stride := r.buf.ByteStride()
	for _, l := range r.buf.Layouts {
		slot, err := r.prog.AttribLocation(l.Name)
		if err != nil {
			return release, err
		}
		r.dev.EnableVertexAttribArray(slot)
		enabled = append(enabled, slot)
		r.dev.VertexAttribPointer(slot, int32(l.Size), stride, uintptr(l.Offset*4))
	}
	return release, nil
}

// SetPolygon changes the polygon parameters. The ring is regenerated and
// re-uploaded on the next draw.
func (r *Renderable) SetPolygon(sides int, radius float32) error {
	if r.kind != KindPolygon {
		return fmt.Errorf("%s is not a polygon", r.kind)
	}
	if err := r.checkPolygon(sides, radius); err != nil {
		return err
	}
	if r.indexed && r.ebo == 0 {
		r.ebo = r.dev.CreateBuffer()
	}
	r.sides, r.radius = sides, radius
	r.geom = r.geometry()
	r.dirty = true
	return nil
}

func (r *Renderable) checkPolygon(sides int, radius float32) error {
	switch {
	case sides < 3:
		return fmt.Errorf("%w: polygon needs at least 3 sides, got %d", ErrMalformedGeometry, sides)
	case r.indexed && sides > MaxIndexedVertices:
		return fmt.Errorf("%w: indexed polygon allows at most %d sides, got %d", ErrMalformedGeometry, MaxIndexedVertices, sides)
	case !(radius > 0):
		return fmt.Errorf("%w: polygon radius must be positive, got %g", ErrMalformedGeometry, radius)
	}
	return nil
}

// Reinit re-creates the program and buffers after the rendering context
// was lost. Handles from the lost context are dropped, not deleted.
func (r *Renderable) Reinit() error {
	r.state = Uninitialized
	r.prog = nil
	r.vbo, r.ebo = 0, 0
	return r.build()
}

// Delete releases the program and buffers.
func (r *Renderable) Delete() {
	r.release()
	r.state = Uninitialized
}

func (r *Renderable) release() {
	if r.prog != nil {
		r.prog.Delete()
	}
	if r.ebo != 0 {
		r.dev.DeleteBuffer(r.ebo)
		r.ebo = 0
	}
	if r.vbo != 0 {
		r.dev.DeleteBuffer(r.vbo)
		r.vbo = 0
	}
}

// Kind returns the shape kind.
func (r *Renderable) Kind() Kind { return r.kind }

// State returns the construction state.
func (r *Renderable) State() State { return r.state }

// Program returns the owned program.
func (r *Renderable) Program() *Program { return r.prog }

// Geometry returns the current geometry descriptor.
func (r *Renderable) Geometry() Geometry { return r.geom }

// VertexCount returns the number of vertices consumed by a draw call.
func (r *Renderable) VertexCount() int { return r.geom.DrawCount() }

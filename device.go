package shapes

// Stage identifies a programmable pipeline stage.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Topology is the primitive assembly mode of a draw call.
type Topology int

const (
	Triangles Topology = iota
	TriangleFan
	TriangleStrip
)

func (t Topology) String() string {
	switch t {
	case Triangles:
		return "triangles"
	case TriangleFan:
		return "triangle-fan"
	case TriangleStrip:
		return "triangle-strip"
	default:
		return "unknown"
	}
}

// Device is the subset of the GPU API used to compile programs, upload
// geometry and issue draw calls. All methods must be called on the thread
// that owns the current rendering context.
//
// Lookup methods return -1 for names the program does not expose.
type Device interface {
	CreateShader(stage Stage) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	AttribLocation(program uint32, name string) int32
	UniformLocation(program uint32, name string) int32

	CreateBuffer() uint32
	// VertexData uploads data into buf and leaves buf bound as the
	// vertex source for subsequent attribute pointers.
	VertexData(buf uint32, data []float32)
	// IndexData uploads data into buf and leaves buf bound as the
	// element source for DrawElements.
	IndexData(buf uint32, data []uint16)
	BindVertexBuffer(buf uint32)
	BindIndexBuffer(buf uint32)
	DeleteBuffer(buf uint32)

	EnableVertexAttribArray(slot uint32)
	DisableVertexAttribArray(slot uint32)
	// VertexAttribPointer describes float attribute data in the bound
	// vertex buffer. stride and offset are in bytes.
	VertexAttribPointer(slot uint32, size, stride int32, offset uintptr)

	UniformMatrix4fv(location int32, m *[16]float32)

	DrawArrays(mode Topology, first, count int32)
	// DrawElements draws count unsigned short indices from the bound
	// index buffer.
	DrawElements(mode Topology, count int32)
}

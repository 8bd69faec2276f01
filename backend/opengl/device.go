// Package opengl provides an OpenGL 4.1 core Device and GLFW host helpers
// for the shapes package.
package opengl

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/shapes"
)

// Device implements shapes.Device over the current OpenGL context.
// gl.Init must have been called on the rendering thread.
type Device struct {
	vao uint32
}

var _ shapes.Device = (*Device)(nil)

// NewDevice creates the vertex array object required by the core profile
// and leaves it bound.
func NewDevice() *Device {
	d := &Device{}
	d.Reinit()
	return d
}

// Reinit re-creates the vertex array object after context loss.
func (d *Device) Reinit() {
	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)
}

// Delete releases the vertex array object.
func (d *Device) Delete() {
	if d.vao != 0 {
		gl.BindVertexArray(0)
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
}

func glStage(stage shapes.Stage) uint32 {
	if stage == shapes.StageFragment {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

func glMode(mode shapes.Topology) uint32 {
	switch mode {
	case shapes.TriangleFan:
		return gl.TRIANGLE_FAN
	case shapes.TriangleStrip:
		return gl.TRIANGLE_STRIP
	default:
		return gl.TRIANGLES
	}
}

// CreateShader creates an empty shader object for stage.
func (d *Device) CreateShader(stage shapes.Stage) uint32 {
	return gl.CreateShader(glStage(stage))
}

// ShaderSource replaces the source of shader with src.
func (d *Device) ShaderSource(shader uint32, src string) {
	csource, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
}

// CompileShader compiles the source attached to shader.
func (d *Device) CompileShader(shader uint32) { gl.CompileShader(shader) }

// ShaderCompiled reports the COMPILE_STATUS of shader.
func (d *Device) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

// ShaderInfoLog returns the compiler diagnostic of shader.
func (d *Device) ShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
	return strings.TrimRight(string(log), "\x00\n")
}

// DeleteShader flags shader for deletion.
func (d *Device) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

// CreateProgram creates an empty program object.
func (d *Device) CreateProgram() uint32 { return gl.CreateProgram() }

// AttachShader attaches shader to program.
func (d *Device) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

// LinkProgram links the stages attached to program.
func (d *Device) LinkProgram(program uint32) { gl.LinkProgram(program) }

// ProgramLinked reports the LINK_STATUS of program.
func (d *Device) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

// ProgramInfoLog returns the linker diagnostic of program.
func (d *Device) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetProgramInfoLog(program, logLength, nil, &log[0])
	return strings.TrimRight(string(log), "\x00\n")
}

// UseProgram makes program the current rendering program.
func (d *Device) UseProgram(program uint32) { gl.UseProgram(program) }

// DeleteProgram flags program for deletion.
func (d *Device) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

// AttribLocation returns the slot of the named attribute, or -1.
func (d *Device) AttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

// UniformLocation returns the location of the named uniform, or -1.
func (d *Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// CreateBuffer generates one buffer object name.
func (d *Device) CreateBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

// VertexData binds buf to ARRAY_BUFFER and uploads data as STATIC_DRAW.
func (d *Device) VertexData(buf uint32, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buf)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

// IndexData binds buf to ELEMENT_ARRAY_BUFFER and uploads data as STATIC_DRAW.
func (d *Device) IndexData(buf uint32, data []uint16) {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data)*int(unsafe.Sizeof(data[0])), gl.Ptr(data), gl.STATIC_DRAW)
}

// BindVertexBuffer binds buf to ARRAY_BUFFER.
func (d *Device) BindVertexBuffer(buf uint32) { gl.BindBuffer(gl.ARRAY_BUFFER, buf) }

// BindIndexBuffer binds buf to ELEMENT_ARRAY_BUFFER.
func (d *Device) BindIndexBuffer(buf uint32) { gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf) }

// DeleteBuffer deletes buf.
func (d *Device) DeleteBuffer(buf uint32) { gl.DeleteBuffers(1, &buf) }

// EnableVertexAttribArray enables the attribute array at slot.
func (d *Device) EnableVertexAttribArray(slot uint32) { gl.EnableVertexAttribArray(slot) }

// DisableVertexAttribArray disables the attribute array at slot.
func (d *Device) DisableVertexAttribArray(slot uint32) { gl.DisableVertexAttribArray(slot) }

// VertexAttribPointer points slot at non-normalized floats in the bound
// ARRAY_BUFFER; stride and offset are in bytes.
func (d *Device) VertexAttribPointer(slot uint32, size, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(slot, size, gl.FLOAT, false, stride, offset)
}

// UniformMatrix4fv uploads one column-major, non-transposed 4x4 matrix.
func (d *Device) UniformMatrix4fv(location int32, m *[16]float32) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

// DrawArrays draws count vertices starting at first.
func (d *Device) DrawArrays(mode shapes.Topology, first, count int32) {
	gl.DrawArrays(glMode(mode), first, count)
}

// DrawElements draws count unsigned short indices from the bound
// ELEMENT_ARRAY_BUFFER.
func (d *Device) DrawElements(mode shapes.Topology, count int32) {
	gl.DrawElements(glMode(mode), count, gl.UNSIGNED_SHORT, gl.PtrOffset(0))
}

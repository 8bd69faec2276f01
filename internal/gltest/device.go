// Package gltest provides a recording shapes.Device for tests.
package gltest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-theft-auto/shapes"
)

// Call is one recorded device call.
type Call struct {
	Name string
	Args []any
}

// DrawCall is one recorded DrawArrays or DrawElements call.
type DrawCall struct {
	Mode    shapes.Topology
	Count   int32
	Indexed bool
	Program uint32
	Enabled []uint32 // slots enabled at dispatch
	MVP     [16]float32
}

type shader struct {
	stage    shapes.Stage
	src      string
	compiled bool
	log      string
	deleted  bool
}

type program struct {
	shaders  []uint32
	linked   bool
	log      string
	attribs  []string
	uniforms []string
	deleted  bool
}

// Device records calls and emulates enough GL state for renderables.
// A shader compiles when its source declares "void main"; attribute and
// uniform locations are assigned from the "in" and "uniform" declarations
// of the linked vertex stage.
type Device struct {
	Calls   []Call
	Draws   []DrawCall
	Buffers map[uint32][]float32
	Indices map[uint32][]uint16

	// FailLink forces every link to fail.
	FailLink bool
	// Missing names resolve to -1 regardless of the program.
	Missing map[string]bool

	next     uint32
	shaders  map[uint32]*shader
	programs map[uint32]*program
	current  uint32
	enabled  map[uint32]bool
	uniforms map[int32][16]float32
	deleted  map[uint32]bool
}

// New returns an empty recording device.
func New() *Device {
	return &Device{
		Buffers:  make(map[uint32][]float32),
		Indices:  make(map[uint32][]uint16),
		shaders:  make(map[uint32]*shader),
		programs: make(map[uint32]*program),
		enabled:  make(map[uint32]bool),
		uniforms: make(map[int32][16]float32),
		deleted:  make(map[uint32]bool),
	}
}

var _ shapes.Device = (*Device)(nil)

func (d *Device) record(name string, args ...any) {
	d.Calls = append(d.Calls, Call{Name: name, Args: args})
}

func (d *Device) handle() uint32 {
	d.next++
	return d.next
}

// Count returns how many times name was called.
func (d *Device) Count(name string) int {
	n := 0
	for _, c := range d.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Index returns the position of the first call named name after from, or -1.
func (d *Device) Index(name string, from int) int {
	for i := from; i < len(d.Calls); i++ {
		if d.Calls[i].Name == name {
			return i
		}
	}
	return -1
}

// Names returns the recorded call names in order.
func (d *Device) Names() []string {
	names := make([]string, len(d.Calls))
	for i, c := range d.Calls {
		names[i] = c.Name
	}
	return names
}

// Enabled returns the currently enabled attribute slots.
func (d *Device) Enabled() []uint32 {
	var slots []uint32
	for i := uint32(0); i < 16; i++ {
		if d.enabled[i] {
			slots = append(slots, i)
		}
	}
	return slots
}

// CurrentProgram returns the program last passed to UseProgram.
func (d *Device) CurrentProgram() uint32 { return d.current }

// Deleted reports whether a shader, program or buffer handle was deleted.
func (d *Device) Deleted(h uint32) bool { return d.deleted[h] }

// Reset clears the recorded calls and draws, keeping object state.
func (d *Device) Reset() {
	d.Calls = nil
	d.Draws = nil
}

func (d *Device) CreateShader(stage shapes.Stage) uint32 {
	h := d.handle()
	d.shaders[h] = &shader{stage: stage}
	d.record("CreateShader", stage)
	return h
}

func (d *Device) ShaderSource(s uint32, src string) {
	d.shaders[s].src = src
	d.record("ShaderSource", s)
}

func (d *Device) CompileShader(s uint32) {
	sh := d.shaders[s]
	sh.compiled = strings.Contains(sh.src, "void main")
	if !sh.compiled {
		sh.log = "ERROR: 0:1: 'main' : function not defined"
	}
	d.record("CompileShader", s)
}

func (d *Device) ShaderCompiled(s uint32) bool { return d.shaders[s].compiled }

func (d *Device) ShaderInfoLog(s uint32) string { return d.shaders[s].log }

func (d *Device) DeleteShader(s uint32) {
	d.shaders[s].deleted = true
	d.deleted[s] = true
	d.record("DeleteShader", s)
}

func (d *Device) CreateProgram() uint32 {
	h := d.handle()
	d.programs[h] = &program{}
	d.record("CreateProgram")
	return h
}

func (d *Device) AttachShader(p, s uint32) {
	d.programs[p].shaders = append(d.programs[p].shaders, s)
	d.record("AttachShader", p, s)
}

var (
	inDecl      = regexp.MustCompile(`(?m)^\s*in\s+\w+\s+(\w+)\s*;`)
	uniformDecl = regexp.MustCompile(`(?m)^\s*uniform\s+\w+\s+(\w+)\s*;`)
)

func (d *Device) LinkProgram(p uint32) {
	prog := d.programs[p]
	prog.linked = !d.FailLink
	for _, s := range prog.shaders {
		sh := d.shaders[s]
		if !sh.compiled {
			prog.linked = false
			continue
		}
		if sh.stage == shapes.StageVertex {
			for _, m := range inDecl.FindAllStringSubmatch(sh.src, -1) {
				prog.attribs = append(prog.attribs, m[1])
			}
		}
		for _, m := range uniformDecl.FindAllStringSubmatch(sh.src, -1) {
			prog.uniforms = append(prog.uniforms, m[1])
		}
	}
	if !prog.linked {
		prog.log = fmt.Sprintf("ERROR: program %d: link failed", p)
		prog.attribs, prog.uniforms = nil, nil
	}
	d.record("LinkProgram", p)
}

func (d *Device) ProgramLinked(p uint32) bool { return d.programs[p].linked }

func (d *Device) ProgramInfoLog(p uint32) string { return d.programs[p].log }

func (d *Device) UseProgram(p uint32) {
	d.current = p
	d.record("UseProgram", p)
}

func (d *Device) DeleteProgram(p uint32) {
	d.programs[p].deleted = true
	d.deleted[p] = true
	d.record("DeleteProgram", p)
}

func (d *Device) AttribLocation(p uint32, name string) int32 {
	d.record("AttribLocation", p, name)
	if d.Missing[name] {
		return -1
	}
	for i, a := range d.programs[p].attribs {
		if a == name {
			return int32(i)
		}
	}
	return -1
}

func (d *Device) UniformLocation(p uint32, name string) int32 {
	d.record("UniformLocation", p, name)
	if d.Missing[name] {
		return -1
	}
	for i, u := range d.programs[p].uniforms {
		if u == name {
			return int32(i)
		}
	}
	return -1
}

func (d *Device) CreateBuffer() uint32 {
	h := d.handle()
	d.record("CreateBuffer")
	return h
}

func (d *Device) VertexData(buf uint32, data []float32) {
	d.Buffers[buf] = append([]float32(nil), data...)
	d.record("VertexData", buf, len(data))
}

func (d *Device) IndexData(buf uint32, data []uint16) {
	d.Indices[buf] = append([]uint16(nil), data...)
	d.record("IndexData", buf, len(data))
}

func (d *Device) BindVertexBuffer(buf uint32) { d.record("BindVertexBuffer", buf) }

func (d *Device) BindIndexBuffer(buf uint32) { d.record("BindIndexBuffer", buf) }

func (d *Device) DeleteBuffer(buf uint32) {
	d.deleted[buf] = true
	d.record("DeleteBuffer", buf)
}

func (d *Device) EnableVertexAttribArray(slot uint32) {
	d.enabled[slot] = true
	d.record("EnableVertexAttribArray", slot)
}

func (d *Device) DisableVertexAttribArray(slot uint32) {
	d.enabled[slot] = false
	d.record("DisableVertexAttribArray", slot)
}

func (d *Device) VertexAttribPointer(slot uint32, size, stride int32, offset uintptr) {
	d.record("VertexAttribPointer", slot, size, stride, offset)
}

func (d *Device) UniformMatrix4fv(loc int32, m *[16]float32) {
	d.uniforms[loc] = *m
	d.record("UniformMatrix4fv", loc)
}

func (d *Device) DrawArrays(mode shapes.Topology, first, count int32) {
	d.draw(mode, count, false)
	d.record("DrawArrays", mode, first, count)
}

func (d *Device) DrawElements(mode shapes.Topology, count int32) {
	d.draw(mode, count, true)
	d.record("DrawElements", mode, count)
}

func (d *Device) draw(mode shapes.Topology, count int32, indexed bool) {
	dc := DrawCall{Mode: mode, Count: count, Indexed: indexed, Program: d.current, Enabled: d.Enabled()}
	if prog := d.programs[d.current]; prog != nil {
		for i, u := range prog.uniforms {
			if u == shapes.UniformMVP {
				dc.MVP = d.uniforms[int32(i)]
			}
		}
	}
	d.Draws = append(d.Draws, dc)
}

package shapes

import (
	"log/slog"
)

// ShaderSource is a vertex/fragment stage pair.
type ShaderSource struct {
	Vertex   string
	Fragment string
}

// Shader is a compiled (or rejected) shader stage.
type Shader struct {
	Handle   uint32
	Stage    Stage
	Compiled bool
	Log      string // compiler diagnostic, empty on success
}

// Program is a linked vertex/fragment pair owned by a single Renderable.
type Program struct {
	Handle uint32
	Linked bool
	Log    string // link diagnostic, empty on success

	dev Device
}

// Compiler compiles shader stages and links them into programs.
type Compiler struct {
	dev    Device
	logger *slog.Logger
}

// NewCompiler returns a Compiler that issues calls on dev and reports
// diagnostics to logger (the package logger if nil).
func NewCompiler(dev Device, logger *slog.Logger) *Compiler {
	if logger == nil {
		logger = defaultLogger
	}
	return &Compiler{dev: dev, logger: logger}
}

// CompileShader compiles one stage. A rejected stage is logged and still
// returned, marked as not compiled.
func (c *Compiler) CompileShader(stage Stage, src string) *Shader {
	s := &Shader{Handle: c.dev.CreateShader(stage), Stage: stage}
	c.dev.ShaderSource(s.Handle, src)
	c.dev.CompileShader(s.Handle)

	s.Compiled = c.dev.ShaderCompiled(s.Handle)
	if !s.Compiled {
		s.Log = c.dev.ShaderInfoLog(s.Handle)
		if s.Log == "" {
			s.Log = "no diagnostic available"
		}
		c.logger.Error("shader compilation failed", "stage", stage, "shader", s.Handle, "log", s.Log)
	}
	return s
}

// LinkProgram attaches both stages, links them and records the link status.
// The stage objects are released once linked into the program.
func (c *Compiler) LinkProgram(vs, fs *Shader) *Program {
	p := &Program{Handle: c.dev.CreateProgram(), dev: c.dev}
	c.dev.AttachShader(p.Handle, vs.Handle)
	c.dev.AttachShader(p.Handle, fs.Handle)
	c.dev.LinkProgram(p.Handle)

	p.Linked = vs.Compiled && fs.Compiled && c.dev.ProgramLinked(p.Handle)
	if !p.Linked {
		p.Log = c.dev.ProgramInfoLog(p.Handle)
		if p.Log == "" {
			p.Log = "no diagnostic available"
		}
		c.logger.Error("program link failed", "program", p.Handle, "log", p.Log)
	}

	c.dev.DeleteShader(vs.Handle)
	c.dev.DeleteShader(fs.Handle)
	return p
}

// Build compiles and links src. The program is always returned; err is a
// *ShaderError or *LinkError when the program is not usable.
func (c *Compiler) Build(src ShaderSource) (*Program, error) {
	vs := c.CompileShader(StageVertex, src.Vertex)
	fs := c.CompileShader(StageFragment, src.Fragment)
	p := c.LinkProgram(vs, fs)

	switch {
	case !vs.Compiled:
		return p, &ShaderError{Stage: StageVertex, Log: vs.Log}
	case !fs.Compiled:
		return p, &ShaderError{Stage: StageFragment, Log: fs.Log}
	case !p.Linked:
		return p, &LinkError{Log: p.Log}
	}
	c.logger.Debug("program linked", "program", p.Handle)
	return p, nil
}

// Usable reports whether the program can be drawn with.
func (p *Program) Usable() bool {
	return p != nil && p.Linked && p.Handle != 0
}

// Use makes p the current rendering program.
func (p *Program) Use() {
	p.dev.UseProgram(p.Handle)
}

// AttribLocation resolves a vertex attribute slot by name.
func (p *Program) AttribLocation(name string) (uint32, error) {
	loc := p.dev.AttribLocation(p.Handle, name)
	if loc < 0 {
		return 0, &LocationError{Name: name}
	}
	return uint32(loc), nil
}

// UniformLocation resolves a uniform location by name.
func (p *Program) UniformLocation(name string) (int32, error) {
	loc := p.dev.UniformLocation(p.Handle, name)
	if loc < 0 {
		return -1, &LocationError{Name: name, Uniform: true}
	}
	return loc, nil
}

// Delete releases the program object.
func (p *Program) Delete() {
	if p.Handle != 0 {
		p.dev.DeleteProgram(p.Handle)
		p.Handle = 0
		p.Linked = false
	}
}

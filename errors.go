package shapes

import (
	"errors"
	"fmt"
)

var (
	// ErrShaderCompile is returned when a shader stage is rejected by the compiler.
	ErrShaderCompile = errors.New("shader compilation failed")
	// ErrProgramLink is returned when compiled stages fail to link.
	ErrProgramLink = errors.New("program link failed")
	// ErrAttributeNotFound is returned when an attribute is absent from the active program.
	ErrAttributeNotFound = errors.New("attribute not found")
	// ErrUniformNotFound is returned when a uniform is absent from the active program.
	ErrUniformNotFound = errors.New("uniform not found")
	// ErrProgramUnusable is returned when drawing with a program that did not link.
	ErrProgramUnusable = errors.New("program not usable")
	// ErrMalformedGeometry is returned when geometry violates its layout.
	ErrMalformedGeometry = errors.New("malformed geometry")
	// ErrNotReady is returned when drawing a renderable that was deleted or never built.
	ErrNotReady = errors.New("renderable not ready")
)

// ShaderError describes a rejected shader stage.
type ShaderError struct {
	Stage Stage
	Log   string
}

func (e *ShaderError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Stage, ErrShaderCompile, e.Log)
}

func (e *ShaderError) Unwrap() error { return ErrShaderCompile }

// LinkError describes a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("%s: %s", ErrProgramLink, e.Log)
}

func (e *LinkError) Unwrap() error { return ErrProgramLink }

// LocationError describes an attribute or uniform name that did not resolve.
type LocationError struct {
	Name    string
	Uniform bool
}

func (e *LocationError) Error() string {
	return fmt.Sprintf("%s: %q", e.Unwrap(), e.Name)
}

func (e *LocationError) Unwrap() error {
	if e.Uniform {
		return ErrUniformNotFound
	}
	return ErrAttributeNotFound
}

package shapes_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/shapes"
	"github.com/go-theft-auto/shapes/internal/gltest"
)

const testVertex = `
#version 410 core
in vec4 vPosition;
uniform mat4 uMVPMatrix;
void main() {
    gl_Position = uMVPMatrix * vPosition;
}
`

const testFragment = `
#version 410 core
out vec4 FragColor;
void main() {
    FragColor = vec4(1.0);
}
`

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func TestCompileShaderInvalidSource(t *testing.T) {
	dev := gltest.New()
	logger, logs := bufferLogger()
	c := shapes.NewCompiler(dev, logger)

	s := c.CompileShader(shapes.StageVertex, "this is not glsl")

	assert.NotZero(t, s.Handle)
	assert.False(t, s.Compiled)
	assert.NotEmpty(t, s.Log)
	assert.Contains(t, logs.String(), "shader compilation failed")
	assert.Contains(t, logs.String(), "stage=vertex")
}

func TestBuildLinksProgram(t *testing.T) {
	dev := gltest.New()
	logger, _ := bufferLogger()
	c := shapes.NewCompiler(dev, logger)

	p, err := c.Build(shapes.ShaderSource{Vertex: testVertex, Fragment: testFragment})
	require.NoError(t, err)

	assert.True(t, p.Usable())
	assert.Empty(t, p.Log)
	assert.Equal(t, 2, dev.Count("AttachShader"))
	assert.Equal(t, 2, dev.Count("DeleteShader"), "stages are released after linking")
}

func TestBuildFragmentFailure(t *testing.T) {
	dev := gltest.New()
	logger, _ := bufferLogger()
	c := shapes.NewCompiler(dev, logger)

	p, err := c.Build(shapes.ShaderSource{Vertex: testVertex, Fragment: "garbage"})
	require.Error(t, err)
	assert.ErrorIs(t, err, shapes.ErrShaderCompile)

	var se *shapes.ShaderError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, shapes.StageFragment, se.Stage)
	assert.NotEmpty(t, se.Log)

	require.NotNil(t, p, "a program handle is returned even when unusable")
	assert.False(t, p.Usable())
}

func TestBuildLinkFailure(t *testing.T) {
	dev := gltest.New()
	dev.FailLink = true
	logger, logs := bufferLogger()
	c := shapes.NewCompiler(dev, logger)

	p, err := c.Build(shapes.ShaderSource{Vertex: testVertex, Fragment: testFragment})
	assert.ErrorIs(t, err, shapes.ErrProgramLink)

	var le *shapes.LinkError
	require.True(t, errors.As(err, &le))
	assert.NotEmpty(t, le.Log)
	assert.False(t, p.Usable())
	assert.Contains(t, logs.String(), "program link failed")
}

func TestProgramLocations(t *testing.T) {
	dev := gltest.New()
	logger, _ := bufferLogger()
	p, err := shapes.NewCompiler(dev, logger).Build(shapes.ShaderSource{Vertex: testVertex, Fragment: testFragment})
	require.NoError(t, err)

	slot, err := p.AttribLocation("vPosition")
	require.NoError(t, err)
	assert.Equal(t, uint32(0), slot)

	_, err = p.AttribLocation("aNormal")
	assert.ErrorIs(t, err, shapes.ErrAttributeNotFound)
	assert.EqualError(t, err, `attribute not found: "aNormal"`)

	loc, err := p.UniformLocation("uMVPMatrix")
	require.NoError(t, err)
	assert.Equal(t, int32(0), loc)

	_, err = p.UniformLocation("uColor")
	assert.ErrorIs(t, err, shapes.ErrUniformNotFound)
}

func TestProgramDelete(t *testing.T) {
	dev := gltest.New()
	logger, _ := bufferLogger()
	p, err := shapes.NewCompiler(dev, logger).Build(shapes.ShaderSource{Vertex: testVertex, Fragment: testFragment})
	require.NoError(t, err)

	h := p.Handle
	p.Delete()
	assert.True(t, dev.Deleted(h))
	assert.False(t, p.Usable())

	p.Delete()
	assert.Equal(t, 1, dev.Count("DeleteProgram"))
}

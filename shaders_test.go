package shapes

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareForwardsPosition(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`(?m)^\s*out vec4 fragPosition;`), squareShaders.Vertex)
	assert.Contains(t, squareShaders.Vertex, "fragPosition = vPosition;")
	assert.Regexp(t, regexp.MustCompile(`(?m)^\s*in vec4 fragPosition;`), squareShaders.Fragment)
	assert.Contains(t, squareShaders.Fragment, "(fragPosition.x - 1.0) * 20.0")
}

func TestCubeRotatesInVertexStage(t *testing.T) {
	assert.Contains(t, cubeShaders.Vertex, "const float xAngle = 1.0;")
	assert.Contains(t, cubeShaders.Vertex, "const float yAngle = 1.0;")
	assert.Contains(t, cubeShaders.Vertex, "rotY * rotX * vPosition.xyz")
}

func TestShapeColors(t *testing.T) {
	assert.Contains(t, polygonShaders.Fragment, "vec4(0.0, 1.0, 0.0, 1.0)")
	assert.Contains(t, cubeShaders.Fragment, "vec4(0.1, 0.5, 0.7, 1.0)")
	assert.Contains(t, squareShaders.Fragment, "vec4(1.0, 1.0, 1.0, 1.0)")
	assert.Contains(t, squareShaders.Fragment, "vec4(0.0, 0.0, 1.0, 1.0)")
}

package shapes

// Position-only vertex stage shared by the single-color shapes. vPosition
// is a vec4 so 2D and 3D positions both fill in z=0, w=1.
const flatVertexShader = `
#version 410 core
in vec4 vPosition;

uniform mat4 uMVPMatrix;

void main() {
    gl_Position = uMVPMatrix * vPosition;
}
`

// Vertex stage for per-vertex colored geometry.
const colorVertexShader = `
#version 410 core
in vec4 vPosition;
in vec4 aColor;

out vec4 Color;

uniform mat4 uMVPMatrix;

void main() {
    gl_Position = uMVPMatrix * vPosition;
    Color = aColor;
}
`

const colorFragmentShader = `
#version 410 core
in vec4 Color;

out vec4 FragColor;

void main() {
    FragColor = Color;
}
`

// flatFragmentShader returns a fragment stage that writes one constant color.
func flatFragmentShader(rgba string) string {
	return `
#version 410 core
out vec4 FragColor;

void main() {
    FragColor = vec4(` + rgba + `);
}
`
}

// Square vertex stage: forwards the object-space position so the fragment
// stage can stripe along x.
const stripeVertexShader = `
#version 410 core
in vec4 vPosition;

out vec4 fragPosition;

uniform mat4 uMVPMatrix;

void main() {
    fragPosition = vPosition;
    gl_Position = uMVPMatrix * vPosition;
}
`

// Alternating white and blue vertical bands, 20 per unit of x.
const stripeFragmentShader = `
#version 410 core
in vec4 fragPosition;

out vec4 FragColor;

void main() {
    int band = int(abs((fragPosition.x - 1.0) * 20.0));
    if (band % 2 == 0) {
        FragColor = vec4(1.0, 1.0, 1.0, 1.0);
    } else {
        FragColor = vec4(0.0, 0.0, 1.0, 1.0);
    }
}
`

// Cube vertex stage: tilts the cube by fixed angles (radians) about X then Y
// before the caller's transform so three faces are visible head-on.
const tiltedVertexShader = `
#version 410 core
in vec4 vPosition;

uniform mat4 uMVPMatrix;

const float xAngle = 1.0;
const float yAngle = 1.0;

void main() {
    mat3 rotX = mat3(
        1.0, 0.0, 0.0,
        0.0, cos(xAngle), sin(xAngle),
        0.0, -sin(xAngle), cos(xAngle));
    mat3 rotY = mat3(
        cos(yAngle), 0.0, -sin(yAngle),
        0.0, 1.0, 0.0,
        sin(yAngle), 0.0, cos(yAngle));
    gl_Position = uMVPMatrix * vec4(rotY * rotX * vPosition.xyz, 1.0);
}
`

var (
	triangleShaders = ShaderSource{Vertex: colorVertexShader, Fragment: colorFragmentShader}
	squareShaders   = ShaderSource{Vertex: stripeVertexShader, Fragment: stripeFragmentShader}
	polygonShaders  = ShaderSource{Vertex: flatVertexShader, Fragment: flatFragmentShader("0.0, 1.0, 0.0, 1.0")}
	cubeShaders     = ShaderSource{Vertex: tiltedVertexShader, Fragment: flatFragmentShader("0.1, 0.5, 0.7, 1.0")}
)

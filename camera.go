package shapes

import "github.com/go-gl/mathgl/mgl32"

// Camera builds the view-projection transform for a surface: a frustum
// sized to the aspect ratio, looking at the origin from z = -3, rotated
// about Z by a host-controlled angle.
type Camera struct {
	proj  mgl32.Mat4
	view  mgl32.Mat4
	angle float32 // degrees
}

// NewCamera returns a camera for a width x height surface.
func NewCamera(width, height int) *Camera {
	c := &Camera{
		view: mgl32.LookAtV(mgl32.Vec3{0, 0, -3}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}),
	}
	c.Resize(width, height)
	return c
}

// Resize rebuilds the projection for a new surface size.
func (c *Camera) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	ratio := float32(width) / float32(height)
	c.proj = mgl32.Frustum(-ratio, ratio, -1, 1, 3, 7)
}

// Angle returns the rotation about Z in degrees.
func (c *Camera) Angle() float32 { return c.angle }

// SetAngle sets the rotation about Z in degrees.
func (c *Camera) SetAngle(deg float32) { c.angle = deg }

// ViewProjection returns projection * view.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.proj.Mul4(c.view)
}

// MVP returns projection * view * rotation.
func (c *Camera) MVP() mgl32.Mat4 {
	return c.ViewProjection().Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(c.angle)))
}

// dragScale converts pixels of drag into degrees of rotation.
const dragScale = 180.0 / 320

// Drag rotates the camera by a pointer move from (px, py) to (x, y) on a
// width x height surface. Horizontal motion is reversed below the midline
// and vertical motion left of centre, so circling the centre turns the
// scene with the pointer.
func (c *Camera) Drag(px, py, x, y float32, width, height int) {
	dx, dy := x-px, y-py
	if y > float32(height)/2 {
		dx = -dx
	}
	if x < float32(width)/2 {
		dy = -dy
	}
	c.angle += (dx + dy) * dragScale
}

package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/shapes"
)

// DragRotator turns left-button mouse drags on a GLFW window into camera
// rotation.
type DragRotator struct {
	camera   *shapes.Camera
	dragging bool
	prevX    float32
	prevY    float32
}

// NewDragRotator installs cursor and button callbacks on window.
func NewDragRotator(window *glfw.Window, camera *shapes.Camera) *DragRotator {
	d := &DragRotator{camera: camera}

	window.SetMouseButtonCallback(d.mouseButtonCallback)
	window.SetCursorPosCallback(d.cursorPosCallback)

	return d
}

func (d *DragRotator) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}

	switch action {
	case glfw.Press:
		x, y := w.GetCursorPos()
		d.prevX, d.prevY = float32(x), float32(y)
		d.dragging = true
	case glfw.Release:
		d.dragging = false
	}
}

func (d *DragRotator) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	x, y := float32(xpos), float32(ypos)
	if d.dragging {
		width, height := w.GetSize()
		d.camera.Drag(d.prevX, d.prevY, x, y, width, height)
	}
	d.prevX, d.prevY = x, y
}

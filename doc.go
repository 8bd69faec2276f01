/*
Package shapes renders a fixed set of 2D and 3D shapes (triangle, square,
regular polygon, cube) through a programmable GPU pipeline.

# Overview

Each shape is a Renderable that owns one linked Program and its vertex
buffers. The host creates renderables once, after its rendering context is
current, and calls Draw with a model-view-projection matrix every frame.
All GPU calls go through a Device; backend/opengl provides the OpenGL 4.1
core implementation.

# Quick Start

	// Setup, on the rendering thread
	dev := opengl.NewDevice()
	tri, _ := shapes.NewTriangle(dev)
	pent, _ := shapes.NewPentagon(dev, shapes.WithIndexedDraw(true))
	camera := shapes.NewCamera(800, 600)

	// Frame loop
	for !window.ShouldClose() {
	    tri.Draw(camera.MVP())
	    pent.Draw(camera.MVP())
	    window.SwapBuffers()
	}

# Draw Sequence

A draw call activates the program, resolves and enables every attribute the
geometry declares (vPosition, plus aColor for the triangle), points them at
the interleaved vertex buffer, uploads uMVPMatrix and dispatches one
DrawArrays or DrawElements call. Every slot enabled during the call is
disabled before Draw returns, including on failure.

# Errors

Draw never returns an error; failures go to the logger. TryDraw returns the
same failures as typed errors:

	ErrProgramUnusable   program did not compile or link
	ErrAttributeNotFound a declared attribute is not in the program
	ErrUniformNotFound   uMVPMatrix is not in the program
	ErrNotReady          renderable was deleted or failed to re-initialize

Construction logs compile and link failures and yields a renderable that
draws nothing. WithStrict(true) returns *ShaderError or *LinkError instead.

# Context Loss

When the host re-creates its rendering context, call Reinit on every
renderable (or on a Scene) to recompile programs and repack buffers.
Handles from the lost context are dropped without being deleted.

# Logging

Diagnostics use log/slog on stderr at Info level. SetVerbose(true) enables
Debug output; WithLogger routes one renderable to another logger.
*/
package shapes

// Example renders the triangle, square, pentagon and cube in one window.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Drag with the left mouse button to rotate the scene. Press R to release
// and rebuild every program and buffer.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/shapes"
	"github.com/go-theft-auto/shapes/backend/opengl"
	"github.com/go-theft-auto/shapes/internal/config"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "example/shapes.toml", "path to TOML configuration")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	if err := run(*configPath, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// slots places up to four shapes in the quadrants of the view.
var slots = []mgl32.Vec3{
	{-0.6, 0.5, 1},
	{0.6, 0.5, 1},
	{-0.6, -0.5, 1},
	{0.6, -0.5, 1},
}

func run(configPath string, verbose bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	shapes.SetVerbose(verbose || cfg.Verbose)

	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	}

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	dev := opengl.NewDevice()
	defer dev.Delete()

	scene, err := buildScene(dev, cfg)
	if err != nil {
		return err
	}
	defer func() { scene.Delete() }()

	w, h := window.GetFramebufferSize()
	camera := shapes.NewCamera(w, h)
	opengl.NewDragRotator(window, camera)

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		camera.Resize(width, height)
	})

	rebuild := false
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyR && action == glfw.Press {
			rebuild = true
		}
	})

	gl.Enable(gl.DEPTH_TEST)

	// Main loop.
	for !window.ShouldClose() {
		glfw.PollEvents()

		// The context is still alive here, so live objects are deleted
		// before rebuilding. Scene.Reinit is for a context that was lost
		// and took its objects with it.
		if rebuild {
			rebuild = false
			scene.Delete()
			dev.Delete()
			dev.Reinit()
			next, err := buildScene(dev, cfg)
			if err != nil {
				return fmt.Errorf("rebuild scene: %w", err)
			}
			scene = next
		}

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		scene.Draw(camera.MVP())

		window.SwapBuffers()
	}

	return nil
}

func buildScene(dev shapes.Device, cfg config.Config) (*shapes.Scene, error) {
	scene := &shapes.Scene{}
	for i, name := range cfg.Shapes {
		if i >= len(slots) {
			break
		}
		kind, err := shapes.ParseKind(name)
		if err != nil {
			return nil, err
		}
		r, err := shapes.New(dev, kind, cfg.Options(kind)...)
		if err != nil {
			scene.Delete()
			return nil, fmt.Errorf("create %s: %w", name, err)
		}

		model := mgl32.Translate3D(slots[i].X(), slots[i].Y(), slots[i].Z()).Mul4(mgl32.Scale3D(0.4, 0.4, 0.4))
		scene.Add(r, model)
	}
	return scene, nil
}

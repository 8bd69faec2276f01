package shapes

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Scene draws a fixed list of renderables in insertion order.
type Scene struct {
	entries []sceneEntry
}

type sceneEntry struct {
	shape *Renderable
	model mgl32.Mat4
}

// Add appends r with its model transform.
func (s *Scene) Add(r *Renderable, model mgl32.Mat4) {
	s.entries = append(s.entries, sceneEntry{shape: r, model: model})
}

// SetModel replaces the model transform of the i-th entry.
func (s *Scene) SetModel(i int, model mgl32.Mat4) {
	s.entries[i].model = model
}

// Len returns the number of entries.
func (s *Scene) Len() int { return len(s.entries) }

// Shape returns the i-th renderable.
func (s *Scene) Shape(i int) *Renderable { return s.entries[i].shape }

// Draw renders every entry with viewProj * model.
func (s *Scene) Draw(viewProj mgl32.Mat4) {
	for _, e := range s.entries {
		e.shape.Draw(viewProj.Mul4(e.model))
	}
}

// Reinit re-creates every entry after context loss. All entries are
// attempted; failures are joined.
func (s *Scene) Reinit() error {
	var errs []error
	for _, e := range s.entries {
		if err := e.shape.Reinit(); err != nil {
			errs = append(errs, fmt.Errorf("reinit %s: %w", e.shape.Kind(), err))
		}
	}
	return errors.Join(errs...)
}

// Delete releases every entry.
func (s *Scene) Delete() {
	for _, e := range s.entries {
		e.shape.Delete()
	}
	s.entries = nil
}

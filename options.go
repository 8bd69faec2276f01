package shapes

import "log/slog"

// Option configures a Renderable.
type Option func(*Renderable)

// WithLogger sets the diagnostic logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderable) { r.logger = logger }
}

// WithStrict makes construction and Reinit fail with a typed error when the
// program does not compile or link, instead of logging and producing a
// renderable that draws nothing.
func WithStrict(strict bool) Option {
	return func(r *Renderable) { r.strict = strict }
}

// WithSides sets the number of polygon vertices. Ignored for fixed shapes.
func WithSides(n int) Option {
	return func(r *Renderable) { r.sides = n }
}

// WithRadius sets the polygon circumradius. Ignored for fixed shapes.
func WithRadius(radius float32) Option {
	return func(r *Renderable) { r.radius = radius }
}

// WithIndexedDraw draws fan shapes (square, polygon) as an indexed triangle
// list through an element buffer.
func WithIndexedDraw(indexed bool) Option {
	return func(r *Renderable) { r.indexed = indexed }
}

// WithPerFrameRegeneration rebuilds and re-uploads the polygon ring on every
// draw call rather than only when its parameters change.
func WithPerFrameRegeneration(perFrame bool) Option {
	return func(r *Renderable) { r.perFrame = perFrame }
}

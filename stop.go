package gradstops

import "github.com/google/uuid"

// Stop is a colored control point on the gradient axis.
//
// Stops are created by [Model.AddStop] and are owned by that model until
// removed. Accessors are read-only; all changes go through the model so that
// its indices and observers stay consistent.
type Stop struct {
	id       uuid.UUID
	position float64
	color    RGBA
	model    *Model
}

// ID returns the identifier assigned when the stop was added.
func (s *Stop) ID() uuid.UUID { return s.id }

// Position returns the stop's position in [0, 1].
func (s *Stop) Position() float64 { return s.position }

// Color returns the stop's color.
func (s *Stop) Color() RGBA { return s.color }

// Model returns the owning model, or nil once the stop has been removed.
func (s *Stop) Model() *Model { return s.model }

func (s *Stop) reset() {
	*s = Stop{}
}

// ColorStop is a plain (position, color) pair, used to import and export
// a model's contents without exposing live stops.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

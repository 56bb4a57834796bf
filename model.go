package gradstops

import (
	"cmp"
	"math"
	"slices"

	"github.com/google/uuid"
)

// Model is an ordered collection of gradient stops on the [0, 1] axis with
// selection and current-stop tracking.
//
// Every change is announced to subscribed handlers (see [Event]). Invalid or
// redundant requests are silent no-ops. A Model is not safe for concurrent
// use; it belongs to the goroutine driving the editor.
type Model struct {
	// order holds the owned stops sorted by position; positions are unique.
	order []*Stop
	// index maps each owned stop to its position and mirrors order.
	index     map[*Stop]float64
	selection map[*Stop]struct{}
	current   *Stop

	alloc   Allocator
	subs    []subscription
	nextSub int
}

// NewModel creates an empty model.
func NewModel(opts ...ModelOption) *Model {
	o := defaultModelOptions()
	for _, opt := range opts {
		opt(&o)
	}
	m := &Model{
		index:     make(map[*Stop]float64),
		selection: make(map[*Stop]struct{}),
		alloc:     o.allocator,
	}
	for _, h := range o.handlers {
		m.Subscribe(h)
	}
	return m
}

// NewModelFromStops creates a model holding the given stops.
// Stops colliding with an earlier one after clamping are dropped.
func NewModelFromStops(stops []ColorStop, opts ...ModelOption) *Model {
	m := NewModel(opts...)
	for _, s := range stops {
		m.AddStop(s.Offset, s.Color)
	}
	return m
}

// Len returns the number of stops.
func (m *Model) Len() int { return len(m.order) }

// Stops returns the stops in ascending position order.
// The slice is a snapshot and may be kept across mutations.
func (m *Model) Stops() []*Stop {
	return slices.Clone(m.order)
}

// ColorStops exports the model's contents in ascending position order.
func (m *Model) ColorStops() []ColorStop {
	out := make([]ColorStop, len(m.order))
	for i, s := range m.order {
		out[i] = ColorStop{Offset: s.position, Color: s.color}
	}
	return out
}

// SetColorStops replaces the model's contents with stops. Existing stops are
// removed through RemoveStop, so observers see every removal.
func (m *Model) SetColorStops(stops []ColorStop) {
	m.Clear()
	for _, s := range stops {
		m.AddStop(s.Offset, s.Color)
	}
}

// At returns the stop at exactly pos, or nil.
func (m *Model) At(pos float64) *Stop {
	if i, ok := m.search(pos); ok {
		return m.order[i]
	}
	return nil
}

// Contains reports whether stop is owned by m.
func (m *Model) Contains(stop *Stop) bool {
	if stop == nil {
		return false
	}
	_, ok := m.index[stop]
	return ok
}

// Position returns the indexed position of stop and whether m owns it.
func (m *Model) Position(stop *Stop) (float64, bool) {
	pos, ok := m.index[stop]
	return pos, ok
}

// Find returns the owned stop with the given ID, or nil.
func (m *Model) Find(id uuid.UUID) *Stop {
	for _, s := range m.order {
		if s.id == id {
			return s
		}
	}
	return nil
}

// CurrentStop returns the current stop, or nil.
func (m *Model) CurrentStop() *Stop { return m.current }

// IsSelected reports whether stop is selected.
func (m *Model) IsSelected(stop *Stop) bool {
	_, ok := m.selection[stop]
	return ok
}

// SelectedStops returns the selected stops in ascending position order.
func (m *Model) SelectedStops() []*Stop {
	out := make([]*Stop, 0, len(m.selection))
	for _, s := range m.order {
		if _, ok := m.selection[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

// FirstSelected returns the selected stop with the lowest position, or nil.
func (m *Model) FirstSelected() *Stop {
	for _, s := range m.order {
		if m.IsSelected(s) {
			return s
		}
	}
	return nil
}

// LastSelected returns the selected stop with the highest position, or nil.
func (m *Model) LastSelected() *Stop {
	for i := len(m.order) - 1; i >= 0; i-- {
		if s := m.order[i]; m.IsSelected(s) {
			return s
		}
	}
	return nil
}

// Clone returns an independent model with the same positions and colors.
// Selection, current stop and handlers are not copied; the allocator is shared.
func (m *Model) Clone() *Model {
	c := NewModel(WithAllocator(m.alloc))
	for _, s := range m.order {
		c.AddStop(s.position, s.color)
	}
	return c
}

// search finds pos in the ordered index.
func (m *Model) search(pos float64) (int, bool) {
	return slices.BinarySearchFunc(m.order, pos, func(s *Stop, p float64) int {
		return cmp.Compare(s.position, p)
	})
}

// insert places an initialized stop in both indices. The caller has checked
// that pos is free.
func (m *Model) insert(s *Stop, pos float64) {
	s.position = pos
	i, _ := m.search(pos)
	m.order = slices.Insert(m.order, i, s)
	m.index[s] = pos
}

// erase drops s from both indices.
func (m *Model) erase(s *Stop) {
	if i, ok := m.search(m.index[s]); ok {
		m.order = slices.Delete(m.order, i, i+1)
	}
	delete(m.index, s)
}

// relocate moves s to a free position, keeping both indices in step.
func (m *Model) relocate(s *Stop, pos float64) {
	if i, ok := m.search(s.position); ok {
		m.order = slices.Delete(m.order, i, i+1)
	}
	m.insert(s, pos)
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// validPosition reports whether pos can be clamped into [0, 1].
func validPosition(pos float64) bool {
	return !math.IsNaN(pos)
}

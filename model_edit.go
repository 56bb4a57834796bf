package gradstops

import "github.com/google/uuid"

// AddStop creates a stop at pos (clamped to [0, 1]) with color c.
// It returns nil when another stop already occupies the clamped position.
func (m *Model) AddStop(pos float64, c RGBA) *Stop {
	if !validPosition(pos) {
		Logger().Debug("gradstops: add rejected, position is NaN")
		return nil
	}
	pos = clamp01(pos)
	if m.At(pos) != nil {
		Logger().Debug("gradstops: add rejected, position occupied", "pos", pos)
		return nil
	}

	s := m.alloc.NewStop()
	s.id = uuid.New()
	s.color = c
	s.model = m
	m.insert(s, pos)

	m.emit(Event{Kind: StopAdded, Stop: s})
	return s
}

// RemoveStop removes stop from the model and releases it to the allocator.
// If stop is current, the current stop is cleared first; if it is selected,
// it is deselected first. Each step is announced.
func (m *Model) RemoveStop(stop *Stop) {
	if !m.Contains(stop) {
		return
	}
	if m.current == stop {
		m.SetCurrentStop(nil)
	}
	m.SelectStop(stop, false)

	m.emit(Event{Kind: StopRemoved, Stop: stop})

	// A handler may have removed it already.
	if !m.Contains(stop) {
		return
	}
	m.erase(stop)
	delete(m.selection, stop)
	if m.current == stop {
		m.current = nil
	}
	m.alloc.FreeStop(stop)
}

// MoveStop moves stop to pos (clamped to [0, 1]). Nothing happens when the
// target is held by another stop or equals the stop's position.
func (m *Model) MoveStop(stop *Stop, pos float64) {
	if !m.Contains(stop) || !validPosition(pos) {
		return
	}
	pos = clamp01(pos)
	if other := m.At(pos); other != nil {
		if other != stop {
			Logger().Debug("gradstops: move rejected, position occupied", "pos", pos)
		}
		return
	}

	m.emit(Event{Kind: StopMoved, Stop: stop, Position: pos})

	if !m.Contains(stop) || m.At(pos) != nil {
		return
	}
	m.relocate(stop, pos)
}

// SwapStops exchanges the positions of a and b.
func (m *Model) SwapStops(a, b *Stop) {
	if a == b || !m.Contains(a) || !m.Contains(b) {
		return
	}

	m.emit(Event{Kind: StopsSwapped, Stop: a, Other: b})

	if !m.Contains(a) || !m.Contains(b) {
		return
	}
	i, _ := m.search(a.position)
	j, _ := m.search(b.position)
	pa, pb := a.position, b.position
	a.position, b.position = pb, pa
	m.index[a], m.index[b] = pb, pa
	m.order[i], m.order[j] = b, a
}

// ChangeStop sets the color of stop. Nothing happens when the color is
// exactly equal to the current one.
func (m *Model) ChangeStop(stop *Stop, c RGBA) {
	if !m.Contains(stop) || stop.color == c {
		return
	}

	m.emit(Event{Kind: StopChanged, Stop: stop, Color: c})

	stop.color = c
}

// SelectStop sets the selection state of stop.
func (m *Model) SelectStop(stop *Stop, selected bool) {
	if !m.Contains(stop) || m.IsSelected(stop) == selected {
		return
	}

	m.emit(Event{Kind: StopSelected, Stop: stop, Selected: selected})

	if selected {
		if m.Contains(stop) {
			m.selection[stop] = struct{}{}
		}
	} else {
		delete(m.selection, stop)
	}
}

// SetCurrentStop makes stop the current stop. A nil stop clears it; a stop
// not owned by the model is ignored.
func (m *Model) SetCurrentStop(stop *Stop) {
	if stop != nil && !m.Contains(stop) {
		return
	}
	if stop == m.current {
		return
	}

	m.emit(Event{Kind: CurrentStopChanged, Stop: stop})

	if stop != nil && !m.Contains(stop) {
		return
	}
	m.current = stop
}

package gradstops

import "slices"

// Bulk operations iterate over snapshots taken before the loop, because
// every step goes through the single-stop path and handlers may mutate the
// model while it runs.

// Clear removes every stop.
func (m *Model) Clear() {
	for _, s := range m.Stops() {
		m.RemoveStop(s)
	}
}

// Close clears the model, releasing all stops to its allocator.
// The model remains usable.
func (m *Model) Close() {
	m.Clear()
}

// ClearSelection deselects every selected stop.
func (m *Model) ClearSelection() {
	for _, s := range m.SelectedStops() {
		m.SelectStop(s, false)
	}
}

// SelectAll selects every stop.
func (m *Model) SelectAll() {
	for _, s := range m.Stops() {
		m.SelectStop(s, true)
	}
}

// DeleteStops removes the selected stops and then the current stop, if any
// remains.
func (m *Model) DeleteStops() {
	for _, s := range m.SelectedStops() {
		m.RemoveStop(s)
	}
	if cur := m.current; cur != nil {
		m.RemoveStop(cur)
	}
}

// FlipAll mirrors every stop about 0.5.
//
// Stops are visited from the highest position down. When the mirrored
// position is held by a stop that has not been visited yet, the two are
// swapped and the partner is marked visited; otherwise the stop is moved.
func (m *Model) FlipAll() {
	snapshot := m.Stops()
	visited := make(map[*Stop]struct{}, len(snapshot))
	for i := len(snapshot) - 1; i >= 0; i-- {
		s := snapshot[i]
		if _, done := visited[s]; done {
			continue
		}
		visited[s] = struct{}{}
		if !m.Contains(s) {
			continue
		}
		target := 1 - s.position
		if other := m.At(target); other != nil {
			if _, done := visited[other]; !done {
				visited[other] = struct{}{}
				m.SwapStops(s, other)
			}
			continue
		}
		m.MoveStop(s, target)
	}
}

// MoveStops drags the selection together with the current stop so that the
// current stop lands at pos.
//
// When more than one stop is selected the offset is limited so the group
// keeps its shape inside [0, 1]. Stops outside the group that sit on a target
// position are removed.
func (m *Model) MoveStops(pos float64) {
	cur := m.current
	if cur == nil || !validPosition(pos) {
		return
	}
	pos = clamp01(pos)
	if pos == cur.position {
		return
	}
	offset := pos - cur.position
	clamped := false

	selected := m.SelectedStops()
	if len(selected) > 1 {
		first, last := selected[0], selected[len(selected)-1]
		maxOffset := 1 - last.position
		minOffset := -first.position
		if offset > maxOffset {
			offset, clamped = maxOffset, true
		} else if offset < minOffset {
			offset, clamped = minOffset, true
		}
	}
	if offset == 0 {
		return
	}

	group := selected
	if !m.IsSelected(cur) {
		group = append(group, cur)
	}
	inGroup := make(map[*Stop]struct{}, len(group))
	for _, s := range group {
		inGroup[s] = struct{}{}
	}
	// Ascending when moving left, descending when moving right, so that a
	// stop never lands on a group member that has not moved yet.
	slices.SortFunc(group, func(a, b *Stop) int {
		if offset < 0 {
			return cmpPosition(a, b)
		}
		return cmpPosition(b, a)
	})

	for _, s := range group {
		if !m.Contains(s) {
			continue
		}
		target := clamp01(s.position + offset)
		if s == cur && !clamped {
			target = pos
		}
		if occupant := m.At(target); occupant != nil && occupant != s {
			if _, member := inGroup[occupant]; !member {
				Logger().Debug("gradstops: displacing stop", "pos", target)
				m.RemoveStop(occupant)
			}
		}
		m.MoveStop(s, target)
	}
}

func cmpPosition(a, b *Stop) int {
	switch {
	case a.position < b.position:
		return -1
	case a.position > b.position:
		return 1
	}
	return 0
}

package gradstops

import "testing"

// countingAllocator records allocations and releases.
type countingAllocator struct {
	allocs, frees int
	freed         []*Stop
}

func (c *countingAllocator) NewStop() *Stop {
	c.allocs++
	return new(Stop)
}

func (c *countingAllocator) FreeStop(s *Stop) {
	c.frees++
	c.freed = append(c.freed, s)
	s.reset()
}

func TestAllocatorLifecycle(t *testing.T) {
	alloc := &countingAllocator{}
	m := NewModel(WithAllocator(alloc))

	a := m.AddStop(0.1, Red)
	m.AddStop(0.1, Blue) // rejected before allocation
	m.AddStop(0.9, Blue)
	if alloc.allocs != 2 {
		t.Errorf("allocs = %d, want 2", alloc.allocs)
	}

	var removedSawOwner bool
	m.Subscribe(func(e Event) {
		if e.Kind == StopRemoved {
			removedSawOwner = e.Stop.Model() == m
		}
	})
	m.RemoveStop(a)
	if !removedSawOwner {
		t.Error("stop must still be live while StopRemoved is delivered")
	}
	if alloc.frees != 1 || alloc.freed[0] != a {
		t.Errorf("frees = %d, want 1 for the removed stop", alloc.frees)
	}

	m.Close()
	if alloc.frees != 2 {
		t.Errorf("frees after Close = %d, want 2", alloc.frees)
	}
}

func TestCloneSharesAllocator(t *testing.T) {
	alloc := &countingAllocator{}
	m := NewModel(WithAllocator(alloc))
	m.AddStop(0.5, Red)
	m.Clone()
	if alloc.allocs != 2 {
		t.Errorf("allocs = %d, want 2", alloc.allocs)
	}
}

func TestWithAllocatorNilKeepsDefault(t *testing.T) {
	m := NewModel(WithAllocator(nil))
	if m.alloc != DefaultAllocator {
		t.Error("nil allocator should keep the default")
	}
}

func TestStaleStopIsUnowned(t *testing.T) {
	for _, tt := range []struct {
		name  string
		alloc Allocator
	}{
		{"heap", HeapAllocator{}},
		{"pool", NewPoolAllocator()},
	} {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel(WithAllocator(tt.alloc))
			s := m.AddStop(0.5, Red)
			m.RemoveStop(s)

			if s.Model() != nil {
				t.Error("released stop still reports an owner")
			}
			m.MoveStop(s, 0.2)
			m.ChangeStop(s, Blue)
			m.SelectStop(s, true)
			m.SetCurrentStop(s)
			if m.Len() != 0 || m.CurrentStop() != nil || len(m.SelectedStops()) != 0 {
				t.Error("operations on a released stop must be no-ops")
			}
		})
	}
}

func TestPoolAllocatorReuse(t *testing.T) {
	p := NewPoolAllocator()
	m := NewModel(WithAllocator(p))
	for i := 0; i < 10; i++ {
		s := m.AddStop(0.5, Gray(float64(i)/10))
		if s == nil {
			t.Fatal("AddStop returned nil")
		}
		if s.Position() != 0.5 || s.Model() != m {
			t.Fatal("pooled stop not initialized")
		}
		m.RemoveStop(s)
	}
	checkIndices(t, m)
}

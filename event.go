package gradstops

// EventKind identifies a model change notification.
type EventKind int

const (
	// StopAdded is delivered after the stop has been inserted.
	StopAdded EventKind = iota
	// StopRemoved is delivered before the stop leaves the indices.
	StopRemoved
	// StopMoved carries the target position in Event.Position.
	StopMoved
	// StopsSwapped carries the second stop in Event.Other.
	StopsSwapped
	// StopChanged carries the new color in Event.Color.
	StopChanged
	// StopSelected carries the new selection state in Event.Selected.
	StopSelected
	// CurrentStopChanged carries the new current stop (possibly nil) in Event.Stop.
	CurrentStopChanged
)

// String returns the name of the event kind.
func (k EventKind) String() string {
	switch k {
	case StopAdded:
		return "StopAdded"
	case StopRemoved:
		return "StopRemoved"
	case StopMoved:
		return "StopMoved"
	case StopsSwapped:
		return "StopsSwapped"
	case StopChanged:
		return "StopChanged"
	case StopSelected:
		return "StopSelected"
	case CurrentStopChanged:
		return "CurrentStopChanged"
	default:
		return "Unknown"
	}
}

// Event describes a change to a Model.
//
// Except for StopAdded, events are delivered before the change is applied:
// a handler querying the model sees the old state.
type Event struct {
	Kind     EventKind
	Stop     *Stop
	Other    *Stop   // StopsSwapped
	Position float64 // StopMoved
	Color    RGBA    // StopChanged
	Selected bool    // StopSelected
}

// Handler receives model events synchronously on the mutating goroutine.
// Handlers may call back into the model.
type Handler func(Event)

type subscription struct {
	id int
	h  Handler
}

// Subscribe registers h and returns a function that unregisters it.
// Handlers run in registration order.
func (m *Model) Subscribe(h Handler) (unsubscribe func()) {
	if h == nil {
		return func() {}
	}
	m.nextSub++
	id := m.nextSub
	m.subs = append(m.subs, subscription{id: id, h: h})
	return func() {
		for i, s := range m.subs {
			if s.id == id {
				m.subs = append(m.subs[:i:i], m.subs[i+1:]...)
				return
			}
		}
	}
}

// emit delivers e to a snapshot of the current handlers, so handlers that
// subscribe or unsubscribe during delivery do not disturb this pass.
func (m *Model) emit(e Event) {
	if len(m.subs) == 0 {
		return
	}
	subs := m.subs
	for _, s := range subs {
		s.h(e)
	}
}

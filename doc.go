// Package gradstops provides the editable stops model behind a visual
// gradient editor.
//
// # Overview
//
// A [Model] holds colored control points ([Stop]) on the normalized [0, 1]
// axis. The editor forwards user gestures as model calls (add, remove, move,
// swap, recolor, select, drag a group, flip) and repaints from the events the
// model emits. Positions are clamped to [0, 1] and are unique per model.
//
// # Quick Start
//
//	m := gradstops.NewModel(gradstops.WithHandler(func(e gradstops.Event) {
//	    view.Invalidate()
//	}))
//	black := m.AddStop(0, gradstops.Black)
//	m.AddStop(1, gradstops.White)
//
//	m.SetCurrentStop(black)
//	m.MoveStops(0.2)          // drag the current stop
//	c := m.Color(0.6)         // interpolated color
//
//	img, _ := m.Preview(256, 32, gradstops.WithCheckerboard(8))
//
// # Notifications
//
// Events are delivered synchronously, in subscription order, on the goroutine
// that mutates the model. StopAdded is sent after insertion; every other event
// is sent before the change is applied, so a handler that queries the model
// sees the previous state. Handlers may call back into the model.
//
// # Invalid requests
//
// Acting on a stop the model does not own, moving onto an occupied position
// or requesting a change that is already in effect does nothing. Such calls
// are logged at debug level (see [SetLogger]) and never panic.
//
// # Concurrency
//
// A Model is not safe for concurrent use.
package gradstops

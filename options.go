package gradstops

// ModelOption configures a Model during creation.
//
// Example:
//
//	// Default heap allocation
//	m := gradstops.NewModel()
//
//	// Pooled stops and a repaint hook
//	m := gradstops.NewModel(
//	    gradstops.WithAllocator(gradstops.NewPoolAllocator()),
//	    gradstops.WithHandler(func(e gradstops.Event) { view.Update() }),
//	)
type ModelOption func(*modelOptions)

// modelOptions holds optional configuration for Model creation.
type modelOptions struct {
	allocator Allocator
	handlers  []Handler
}

// defaultModelOptions returns the default model options.
func defaultModelOptions() modelOptions {
	return modelOptions{
		allocator: DefaultAllocator,
	}
}

// WithAllocator sets the allocator used for the model's stops.
// A nil allocator keeps the default.
func WithAllocator(a Allocator) ModelOption {
	return func(o *modelOptions) {
		if a != nil {
			o.allocator = a
		}
	}
}

// WithHandler subscribes h before the model is returned.
// It may be given more than once.
func WithHandler(h Handler) ModelOption {
	return func(o *modelOptions) {
		if h != nil {
			o.handlers = append(o.handlers, h)
		}
	}
}

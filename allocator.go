package gradstops

import "sync"

// Allocator supplies and reclaims Stop storage for a Model.
//
// NewStop must return a zeroed *Stop; the model initializes it.
// FreeStop is called exactly once per stop, after the stop has been
// removed from every index and its notifications have been delivered.
type Allocator interface {
	NewStop() *Stop
	FreeStop(s *Stop)
}

// HeapAllocator delegates to the Go runtime. FreeStop only detaches the
// stop so that stale references are treated as unowned.
type HeapAllocator struct{}

func (HeapAllocator) NewStop() *Stop { return new(Stop) }

func (HeapAllocator) FreeStop(s *Stop) { s.reset() }

// PoolAllocator recycles released stops through a sync.Pool.
//
// A released stop may be handed out again by a later AddStop, so holders of
// a stale *Stop can observe it becoming live again. Use it only when callers
// drop references on StopRemoved.
type PoolAllocator struct {
	pool sync.Pool
}

// NewPoolAllocator creates an empty pool-backed allocator.
func NewPoolAllocator() *PoolAllocator {
	return &PoolAllocator{pool: sync.Pool{New: func() any { return new(Stop) }}}
}

func (p *PoolAllocator) NewStop() *Stop {
	return p.pool.Get().(*Stop)
}

func (p *PoolAllocator) FreeStop(s *Stop) {
	s.reset()
	p.pool.Put(s)
}

// DefaultAllocator is used by models created without WithAllocator.
var DefaultAllocator Allocator = HeapAllocator{}

package render2d

import "sync"

// ElementPool manages a pool of reusable Elements.
// Renderer components acquire one element per drawable per frame and the
// batcher owner returns them after flush, so after warmup a steady-state
// frame allocates nothing for element records.
//
// Usage:
//
//	pool := NewElementPool()
//	e := pool.Get()
//	// fill e, batcher.Draw(e), batcher.Flush(sub)
//	pool.Put(e)
type ElementPool struct {
	pool sync.Pool
}

// NewElementPool creates a new element pool.
func NewElementPool() *ElementPool {
	return &ElementPool{
		pool: sync.Pool{
			New: func() any {
				return &Element{}
			},
		},
	}
}

// Get retrieves an element from the pool.
// The element is reset and ready for use.
func (p *ElementPool) Get() *Element {
	e := p.pool.Get().(*Element)
	e.Reset()
	return e
}

// Put returns an element to the pool for reuse.
func (p *ElementPool) Put(e *Element) {
	if e == nil {
		return
	}
	p.pool.Put(e)
}

// Warmup pre-allocates elements to avoid allocation during critical paths.
// Call this during initialization if allocation-free frames are required.
func (p *ElementPool) Warmup(count int) {
	elements := make([]*Element, count)
	for i := 0; i < count; i++ {
		elements[i] = p.Get()
	}
	for i := 0; i < count; i++ {
		p.Put(elements[i])
	}
}

// Package pool provides bounded free-list arenas for frequently spawned entities.
package pool

// Pool keeps idle instances of T for reuse.
// Idle instances belong to the pool; once acquired, the caller owns the
// instance until it is handed back with Release.
type Pool[T any] struct {
	free  []*T
	limit int
	newFn func() *T
	reset func(*T)
}

// New creates a pool whose free list never grows beyond limit.
// newFn allocates a fresh instance; reset returns an instance to an inert state.
// Either func may be nil.
func New[T any](limit int, newFn func() *T, reset func(*T)) *Pool[T] {
	if limit < 0 {
		limit = 0
	}
	if newFn == nil {
		newFn = func() *T { return new(T) }
	}
	return &Pool[T]{
		free:  make([]*T, 0, limit),
		limit: limit,
		newFn: newFn,
		reset: reset,
	}
}

// Acquire pops an idle instance, or allocates one when the free list is empty.
func (p *Pool[T]) Acquire() *T {
	n := len(p.free)
	if n == 0 {
		return p.newFn()
	}
	obj := p.free[n-1]
	p.free[n-1] = nil
	p.free = p.free[:n-1]
	return obj
}

// Release resets obj and keeps it for reuse if the free list has room.
// Past the ceiling the instance is simply dropped.
func (p *Pool[T]) Release(obj *T) {
	if obj == nil {
		return
	}
	if p.reset != nil {
		p.reset(obj)
	}
	if len(p.free) >= p.limit {
		return
	}
	p.free = append(p.free, obj)
}

// Prefill allocates idle instances until the free list holds n (capped at the ceiling).
func (p *Pool[T]) Prefill(n int) {
	if n > p.limit {
		n = p.limit
	}
	for len(p.free) < n {
		obj := p.newFn()
		if p.reset != nil {
			p.reset(obj)
		}
		p.free = append(p.free, obj)
	}
}

// Idle returns the number of instances waiting in the free list.
func (p *Pool[T]) Idle() int {
	return len(p.free)
}

// Limit returns the free-list ceiling.
func (p *Pool[T]) Limit() int {
	return p.limit
}

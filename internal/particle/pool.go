package particle

import "strconv"

// DefaultPoolSize is the free-list capacity used when none is configured.
const DefaultPoolSize = 500

// Pool recycles Particle records to avoid allocation churn when many
// short-lived bursts are fired.
//
// The free list is LIFO: the most recently released record is handed out
// first. A record sitting in the pool is never referenced by a live
// animation instance.
//
// Pool is not safe for concurrent use. It is owned by the goroutine that
// drives the frame loop.
type Pool struct {
	free    []*Particle
	maxSize int
	created int // 累计分配数量（仅用于诊断）
}

// NewPool creates a pool that retains at most maxSize released records.
// A non-positive maxSize falls back to DefaultPoolSize.
func NewPool(maxSize int) *Pool {
	if maxSize <= 0 {
		maxSize = DefaultPoolSize
	}
	return &Pool{
		free:    make([]*Particle, 0, maxSize),
		maxSize: maxSize,
	}
}

// Acquire returns a recycled record if one is available, otherwise a freshly
// allocated one with a new ID. Kind and Config are always cleared.
func (p *Pool) Acquire() *Particle {
	if n := len(p.free); n > 0 {
		pt := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		pt.pooled = false
		return pt
	}

	p.created++
	return &Particle{ID: "p-" + strconv.Itoa(p.created)}
}

// Release hands a record back to the pool.
//
// Records already pooled are ignored, and so are records released while the
// pool is full (they are left to the garbage collector). Physical fields are
// not reset; the next Acquire site overwrites them.
func (p *Pool) Release(pt *Particle) {
	if pt == nil || pt.pooled {
		return
	}
	if len(p.free) >= p.maxSize {
		return
	}

	pt.Kind = nil
	pt.Config = nil
	pt.pooled = true
	p.free = append(p.free, pt)
}

// ReleaseAll releases every record in ps.
func (p *Pool) ReleaseAll(ps []*Particle) {
	for _, pt := range ps {
		p.Release(pt)
	}
}

// Clear drops every pooled record.
func (p *Pool) Clear() {
	for i := range p.free {
		p.free[i] = nil
	}
	p.free = p.free[:0]
}

// Len returns the number of records available for reuse.
func (p *Pool) Len() int {
	return len(p.free)
}

// Created returns how many records have ever been allocated.
func (p *Pool) Created() int {
	return p.created
}

// MaxSize returns the free-list capacity.
func (p *Pool) MaxSize() int {
	return p.maxSize
}

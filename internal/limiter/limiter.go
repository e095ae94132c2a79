package limiter

import "context"

// Gate bounds the number of compositions running at once so CPU-bound
// rendering cannot starve unrelated users' updates.
type Gate struct {
	slots chan struct{}
}

// NewGate creates a gate admitting at most maxConcurrent holders.
// Values below 1 are treated as 1.
func NewGate(maxConcurrent int) *Gate {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Gate{slots: make(chan struct{}, maxConcurrent)}
}

// Acquire blocks until a slot is free or the context is done.
func (g *Gate) Acquire(ctx context.Context) error {
	select {
	case g.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release frees a previously acquired slot.
func (g *Gate) Release() {
	select {
	case <-g.slots:
	default:
	}
}

// Active returns the number of slots currently held.
func (g *Gate) Active() int {
	return len(g.slots)
}

// Capacity returns the maximum number of concurrent holders.
func (g *Gate) Capacity() int {
	return cap(g.slots)
}

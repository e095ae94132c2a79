package limiter

import (
	"context"
	"testing"
	"time"
)

func TestGateBoundsConcurrency(t *testing.T) {
	g := NewGate(2)
	ctx := context.Background()

	if err := g.Acquire(ctx); err != nil {
		t.Fatalf("first Acquire: %v", err)
	}
	if err := g.Acquire(ctx); err != nil {
		t.Fatalf("second Acquire: %v", err)
	}
	if g.Active() != 2 {
		t.Errorf("Active = %d, want 2", g.Active())
	}

	// Third acquire must block until a slot frees.
	blocked, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	if err := g.Acquire(blocked); err == nil {
		t.Fatal("expected third Acquire to block and fail on deadline")
	}

	g.Release()
	if err := g.Acquire(ctx); err != nil {
		t.Fatalf("Acquire after Release: %v", err)
	}
}

func TestGateCancelledContext(t *testing.T) {
	g := NewGate(1)
	if err := g.Acquire(context.Background()); err != nil {
		t.Fatalf("Acquire: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := g.Acquire(ctx); err != context.Canceled {
		t.Errorf("Acquire on cancelled context = %v, want context.Canceled", err)
	}
}

func TestGateMinimumCapacity(t *testing.T) {
	g := NewGate(0)
	if g.Capacity() != 1 {
		t.Errorf("Capacity = %d, want 1", g.Capacity())
	}
}

func TestReleaseWithoutAcquireIsSafe(t *testing.T) {
	g := NewGate(1)
	g.Release() // must not panic or corrupt state
	if g.Active() != 0 {
		t.Errorf("Active = %d, want 0", g.Active())
	}
}

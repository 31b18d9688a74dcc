package core

import (
	"testing"
	"time"
)

func TestFixedStepDue(t *testing.T) {
	clock := time.Unix(100, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if got := fs.Due(); got != 1 {
		t.Fatalf("first call due = %d, want 1", got)
	}
	clock = clock.Add(50 * time.Millisecond)
	if got := fs.Due(); got != 0 {
		t.Fatalf("half a tick due = %d, want 0", got)
	}
	clock = clock.Add(60 * time.Millisecond)
	if got := fs.Due(); got != 1 {
		t.Fatalf("after 110ms due = %d, want 1", got)
	}
	clock = clock.Add(250 * time.Millisecond)
	if got := fs.Due(); got != 2 {
		t.Fatalf("after 250ms more due = %d, want 2", got)
	}
}

func TestFixedStepDropsBacklog(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(60)
	fs.now = func() time.Time { return clock }
	fs.Due()

	clock = clock.Add(10 * time.Second)
	if got := fs.Due(); got != 4 {
		t.Fatalf("due after stall = %d, want 4", got)
	}
	clock = clock.Add(time.Millisecond)
	if got := fs.Due(); got != 0 {
		t.Fatalf("backlog carried over: due = %d", got)
	}
}

func TestSetTPSDefaults(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("interval = %v, want 1/60s", fs.Interval())
	}
	fs.SetTPS(20)
	if fs.Interval() != 50*time.Millisecond {
		t.Fatalf("interval = %v, want 50ms", fs.Interval())
	}
}

package ratelimit

import (
	"context"
	"testing"
	"time"
)

func newTestLimiter(start time.Time) (*MemoryLimiter, *time.Time) {
	now := start
	l := NewMemoryLimiter()
	l.now = func() time.Time { return now }
	return l, &now
}

func TestMemoryLimiterWindow(t *testing.T) {
	ctx := context.Background()
	l, now := newTestLimiter(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	for i := 1; i <= 5; i++ {
		if !l.Allow(ctx, "U1", "join-hostel", 5, time.Minute) {
			t.Fatalf("call %d should be admitted", i)
		}
	}
	if l.Allow(ctx, "U1", "join-hostel", 5, time.Minute) {
		t.Fatalf("call 6 within window should be denied")
	}
	// denied calls must not extend the window
	if l.Allow(ctx, "U1", "join-hostel", 5, time.Minute) {
		t.Fatalf("repeated denied call should stay denied")
	}

	*now = now.Add(time.Minute + time.Millisecond)
	if !l.Allow(ctx, "U1", "join-hostel", 5, time.Minute) {
		t.Fatalf("call after window elapsed should be admitted")
	}
	// counter reset to 1: four more calls fit
	for i := 0; i < 4; i++ {
		if !l.Allow(ctx, "U1", "join-hostel", 5, time.Minute) {
			t.Fatalf("post-reset call %d should be admitted", i+2)
		}
	}
	if l.Allow(ctx, "U1", "join-hostel", 5, time.Minute) {
		t.Fatalf("post-reset call 6 should be denied")
	}
}

func TestMemoryLimiterBurst(t *testing.T) {
	ctx := context.Background()
	l, now := newTestLimiter(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	// 6 calls within 10ms, maxAttempts=5, window=60s
	for i := 1; i <= 6; i++ {
		got := l.Allow(ctx, "U1", "join-hostel", 5, 60*time.Second)
		want := i <= 5
		if got != want {
			t.Fatalf("call %d: got %v, want %v", i, got, want)
		}
		*now = now.Add(2 * time.Millisecond)
	}
}

func TestMemoryLimiterKeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLimiter(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	if !l.Allow(ctx, "U1", "create-ticket", 1, time.Minute) {
		t.Fatalf("first call for U1 should be admitted")
	}
	if l.Allow(ctx, "U1", "create-ticket", 1, time.Minute) {
		t.Fatalf("second call for U1 should be denied")
	}
	if !l.Allow(ctx, "U2", "create-ticket", 1, time.Minute) {
		t.Fatalf("other principal must have its own counter")
	}
	if !l.Allow(ctx, "U1", "join-hostel", 1, time.Minute) {
		t.Fatalf("other action must have its own counter")
	}
}

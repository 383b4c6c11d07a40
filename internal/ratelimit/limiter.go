package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter membatasi frekuensi aksi sensitif per (principal, action). Sifatnya
// advisory: ini rem kasar anti-abuse, bukan sistem kuota presisi.
type Limiter interface {
	// Allow reports whether the principal may perform the action now, given
	// at most max attempts per window.
	Allow(ctx context.Context, principalID, action string, max int, window time.Duration) bool
}

type entry struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter keeps counters in-process. Per definisi hanya berlaku per
// instance; deployment multi-instance harus memakai RedisLimiter supaya
// limitnya tetap per-principal, bukan per-instance.
type MemoryLimiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
}

func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

func (l *MemoryLimiter) Allow(ctx context.Context, principalID, action string, max int, window time.Duration) bool {
	key := principalID + ":" + action
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok || now.After(e.resetAt) {
		l.entries[key] = &entry{count: 1, resetAt: now.Add(window)}
		return true
	}
	if e.count >= max {
		// deny tanpa increment: percobaan yang ditolak tidak memperpanjang window
		return false
	}
	e.count++
	return true
}

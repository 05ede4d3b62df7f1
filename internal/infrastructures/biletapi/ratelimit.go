package biletapi

import (
	"context"
	"sync"
	"time"
)

// RateLimiter enforces a sliding-window request budget against the
// booking backend. Safe for concurrent use.
type RateLimiter struct {
	mu     sync.Mutex
	max    int
	window time.Duration
	stamps []time.Time
	now    func() time.Time
}

// NewRateLimiter allows max requests per window.
func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		max:    max,
		window: window,
		now:    time.Now,
	}
}

// Acquire blocks until a slot frees up in the window or the context is
// done. It loops rather than recursing: each pass prunes expired stamps,
// takes a slot if one is free, otherwise sleeps until the oldest stamp
// ages out.
func (rl *RateLimiter) Acquire(ctx context.Context) error {
	for {
		rl.mu.Lock()
		now := rl.now()
		cutoff := now.Add(-rl.window)

		kept := rl.stamps[:0]
		for _, s := range rl.stamps {
			if s.After(cutoff) {
				kept = append(kept, s)
			}
		}
		rl.stamps = kept

		if len(rl.stamps) < rl.max {
			rl.stamps = append(rl.stamps, now)
			rl.mu.Unlock()
			return nil
		}

		wait := rl.window - now.Sub(rl.stamps[0])
		rl.mu.Unlock()

		if wait <= 0 {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// Pending reports how many stamps currently occupy the window.
func (rl *RateLimiter) Pending() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.window)
	n := 0
	for _, s := range rl.stamps {
		if s.After(cutoff) {
			n++
		}
	}
	return n
}

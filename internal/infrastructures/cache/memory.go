// Package cache provides ticket cache backends: a bounded in-memory TTL
// cache for single instances and a Redis-backed one for shared
// deployments.
package cache

import (
	"context"
	"sync"
	"time"

	domerr "github.com/SiyahKale0/ucuzyol/internal/domain/errors"
	"github.com/SiyahKale0/ucuzyol/internal/domain/models"
)

type memoryEntry struct {
	tickets   []models.Ticket
	createdAt time.Time
	expiresAt time.Time
}

// Memory is a capacity-bounded TTL cache. When full, inserting a new key
// evicts the entry that was created earliest. Safe for concurrent use.
type Memory struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]memoryEntry
	now      func() time.Time
}

// NewMemory builds a cache holding at most capacity entries.
func NewMemory(capacity int) *Memory {
	return &Memory{
		capacity: capacity,
		entries:  make(map[string]memoryEntry),
		now:      time.Now,
	}
}

// Get returns the cached tickets for a key, or ErrTicketsNotCached when
// the key is missing or its TTL has lapsed. Expired entries are removed
// on access.
func (m *Memory) Get(_ context.Context, key string) ([]models.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, domerr.ErrTicketsNotCached
	}
	if m.now().After(e.expiresAt) {
		delete(m.entries, key)
		return nil, domerr.ErrTicketsNotCached
	}
	return e.tickets, nil
}

// Set stores tickets under a key for the given TTL, evicting the oldest
// entry if the cache is full and the key is new.
func (m *Memory) Set(_ context.Context, key string, tickets []models.Ticket, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if _, exists := m.entries[key]; !exists && len(m.entries) >= m.capacity {
		m.evictOldest()
	}
	m.entries[key] = memoryEntry{
		tickets:   tickets,
		createdAt: now,
		expiresAt: now.Add(ttl),
	}
	return nil
}

// Len reports the number of stored entries, expired ones included.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *Memory) evictOldest() {
	var oldestKey string
	var oldestAt time.Time
	first := true
	for k, e := range m.entries {
		if first || e.createdAt.Before(oldestAt) {
			oldestKey = k
			oldestAt = e.createdAt
			first = false
		}
	}
	if !first {
		delete(m.entries, oldestKey)
	}
}

package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domerr "github.com/SiyahKale0/ucuzyol/internal/domain/errors"
	"github.com/SiyahKale0/ucuzyol/internal/domain/models"
)

func someTickets(price float64) []models.Ticket {
	return []models.Ticket{{
		Carrier:   "Metro Turizm",
		Departure: "10:00",
		Arrival:   "16:00",
		Price:     price,
		Seats:     10,
	}}
}

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory(10)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", someTickets(450), time.Minute))
	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, someTickets(450), got)
}

func TestMemoryMiss(t *testing.T) {
	m := NewMemory(10)
	_, err := m.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, domerr.ErrTicketsNotCached)
}

func TestMemoryExpiry(t *testing.T) {
	now := time.Now()
	m := NewMemory(10)
	m.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", someTickets(450), 2*time.Minute))

	now = now.Add(time.Minute)
	_, err := m.Get(ctx, "k")
	assert.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = m.Get(ctx, "k")
	assert.ErrorIs(t, err, domerr.ErrTicketsNotCached)
	assert.Zero(t, m.Len(), "expired entry should be dropped on access")
}

func TestMemoryEvictsOldestAtCapacity(t *testing.T) {
	now := time.Now()
	m := NewMemory(100)
	m.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 101; i++ {
		key := fmt.Sprintf("k%03d", i)
		require.NoError(t, m.Set(ctx, key, someTickets(float64(100+i)), time.Hour))
		now = now.Add(time.Second)
	}

	assert.Equal(t, 100, m.Len())
	_, err := m.Get(ctx, "k000")
	assert.ErrorIs(t, err, domerr.ErrTicketsNotCached, "oldest entry should be evicted")
	_, err = m.Get(ctx, "k100")
	assert.NoError(t, err)
}

func TestMemoryOverwriteDoesNotEvict(t *testing.T) {
	now := time.Now()
	m := NewMemory(2)
	m.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "a", someTickets(1), time.Hour))
	now = now.Add(time.Second)
	require.NoError(t, m.Set(ctx, "b", someTickets(2), time.Hour))
	now = now.Add(time.Second)
	require.NoError(t, m.Set(ctx, "a", someTickets(3), time.Hour))

	assert.Equal(t, 2, m.Len())
	got, err := m.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, someTickets(2), got)
}

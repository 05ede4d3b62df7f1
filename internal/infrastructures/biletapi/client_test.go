package biletapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	domerr "github.com/SiyahKale0/ucuzyol/internal/domain/errors"
	"github.com/SiyahKale0/ucuzyol/internal/domain/models"
)

type fakeCache struct {
	mu   sync.Mutex
	data map[string][]models.Ticket
	sets int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]models.Ticket)}
}

func (f *fakeCache) Get(_ context.Context, key string) ([]models.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if t, ok := f.data[key]; ok {
		return t, nil
	}
	return nil, domerr.ErrTicketsNotCached
}

func (f *fakeCache) Set(_ context.Context, key string, tickets []models.Ticket, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = tickets
	f.sets++
	return nil
}

func newTestClient(t *testing.T, endpoint string, retries int) (*Client, *fakeCache) {
	t.Helper()
	cache := newFakeCache()
	c := NewClient(
		zap.NewNop(),
		endpoint,
		&http.Client{Timeout: 2 * time.Second},
		NewRateLimiter(100, time.Minute),
		cache,
		2*time.Minute,
		retries,
	)
	c.backoff = time.Millisecond
	return c, cache
}

const searchBody = `{
	"status": true,
	"result": {
		"routes": [
			{
				"firm": {"name": "Metro Turizm"},
				"pricing": {"internet_price": 450, "price": 500, "available_seats": 12},
				"departure": {"humanized": {"time": "10:00"}},
				"arrival": {"humanized": {"time": "16:30"}}
			},
			[{
				"firm": {"name": "Kamil Koç"},
				"pricing": {"base_internet_price": 380, "internet_price": 420, "available_seats": 4},
				"departure": {"humanized": {"time": "09:15"}},
				"arrival": {"humanized": {"time": "15:45"}}
			}],
			{
				"firm": {"name": "Soldout Seyahat"},
				"pricing": {"price": 300, "available_seats": 0},
				"departure": {"humanized": {"time": "11:00"}},
				"arrival": {"humanized": {"time": "17:00"}}
			},
			{
				"firm": {"name": "Broken Saat"},
				"pricing": {"price": 310, "available_seats": 5},
				"departure": {"humanized": {"time": "25:99"}},
				"arrival": {"humanized": {"time": "17:00"}}
			}
		]
	}
}`

func TestTicketsParsesAndSorts(t *testing.T) {
	var gotForm struct {
		origin, destination, date string
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		gotForm.origin = r.PostFormValue("origin")
		gotForm.destination = r.PostFormValue("destination")
		gotForm.date = r.PostFormValue("date")
		w.Write([]byte(searchBody))
	}))
	defer srv.Close()

	c, cache := newTestClient(t, srv.URL, 0)
	tickets, err := c.Tickets(context.Background(), "istanbul", "ankara", "15.09.2026")
	if err != nil {
		t.Fatalf("tickets: %v", err)
	}

	if gotForm.origin != "istanbul" || gotForm.destination != "ankara" || gotForm.date != "15.09.2026" {
		t.Fatalf("unexpected form: %+v", gotForm)
	}

	// Sold-out and malformed entries dropped, survivors cheapest first.
	if len(tickets) != 2 {
		t.Fatalf("len(tickets) = %d, want 2", len(tickets))
	}
	if tickets[0].Carrier != "Kamil Koç" || tickets[0].Price != 380 {
		t.Fatalf("tickets[0] = %+v, want Kamil Koç at 380", tickets[0])
	}
	if tickets[1].Carrier != "Metro Turizm" || tickets[1].Price != 450 {
		t.Fatalf("tickets[1] = %+v, want Metro Turizm at 450", tickets[1])
	}

	if cache.sets != 1 {
		t.Fatalf("cache sets = %d, want 1", cache.sets)
	}
}

func TestTicketsServesFromCache(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(searchBody))
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL, 0)
	ctx := context.Background()

	if _, err := c.Tickets(ctx, "istanbul", "ankara", "15.09.2026"); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if _, err := c.Tickets(ctx, "istanbul", "ankara", "15.09.2026"); err != nil {
		t.Fatalf("second call: %v", err)
	}
	if calls != 1 {
		t.Fatalf("backend calls = %d, want 1", calls)
	}
}

func TestTicketsRetriesTransportErrors(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			// Kill the connection mid-flight to force a transport error.
			hj, ok := w.(http.Hijacker)
			if !ok {
				t.Error("server does not support hijacking")
				return
			}
			conn, _, err := hj.Hijack()
			if err != nil {
				t.Errorf("hijack: %v", err)
				return
			}
			conn.Close()
			return
		}
		w.Write([]byte(searchBody))
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL, 2)
	tickets, err := c.Tickets(context.Background(), "izmir", "ankara", "15.09.2026")
	if err != nil {
		t.Fatalf("tickets: %v", err)
	}
	if calls != 2 {
		t.Fatalf("backend calls = %d, want 2", calls)
	}
	if len(tickets) != 2 {
		t.Fatalf("len(tickets) = %d, want 2", len(tickets))
	}
}

func TestTicketsErrorStatusIsNotRetried(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, cache := newTestClient(t, srv.URL, 2)
	tickets, err := c.Tickets(context.Background(), "izmir", "ankara", "15.09.2026")
	if err != nil {
		t.Fatalf("tickets: %v", err)
	}
	if tickets != nil {
		t.Fatalf("tickets = %v, want nil", tickets)
	}
	if calls != 1 {
		t.Fatalf("backend calls = %d, want 1", calls)
	}
	if cache.sets != 0 {
		t.Fatalf("cache sets = %d, want 0", cache.sets)
	}
}

func TestTicketsEmptyResultNotCached(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": true, "result": {"routes": []}}`))
	}))
	defer srv.Close()

	c, cache := newTestClient(t, srv.URL, 0)
	tickets, err := c.Tickets(context.Background(), "mus", "bingol", "15.09.2026")
	if err != nil {
		t.Fatalf("tickets: %v", err)
	}
	if len(tickets) != 0 {
		t.Fatalf("len(tickets) = %d, want 0", len(tickets))
	}
	if cache.sets != 0 {
		t.Fatalf("cache sets = %d, want 0", cache.sets)
	}
}

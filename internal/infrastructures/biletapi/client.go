// Package biletapi fetches live ticket offers from the bilet.com search
// endpoint, with caching, rate limiting and retry on transport errors.
package biletapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	domerr "github.com/SiyahKale0/ucuzyol/internal/domain/errors"
	"github.com/SiyahKale0/ucuzyol/internal/domain/models"
	"github.com/SiyahKale0/ucuzyol/internal/domain/ports"
	"github.com/SiyahKale0/ucuzyol/internal/infrastructures/biletapi/dto"
)

// Client talks to the booking backend. It implements ports.TicketSource.
type Client struct {
	log        *zap.Logger
	endpoint   string
	httpClient *http.Client
	limiter    *RateLimiter
	cache      ports.TicketCache
	cacheTTL   time.Duration
	retries    int
	backoff    time.Duration
}

// NewClient wires a backend client. retries is the number of extra
// attempts after the first; backoff is the initial retry delay, doubled
// per attempt.
func NewClient(
	log *zap.Logger,
	endpoint string,
	httpClient *http.Client,
	limiter *RateLimiter,
	cache ports.TicketCache,
	cacheTTL time.Duration,
	retries int,
) *Client {
	return &Client{
		log:        log,
		endpoint:   endpoint,
		httpClient: httpClient,
		limiter:    limiter,
		cache:      cache,
		cacheTTL:   cacheTTL,
		retries:    retries,
		backoff:    time.Second,
	}
}

func cacheKey(originSlug, destSlug, date string) string {
	return fmt.Sprintf("tickets:%s:%s:%s", originSlug, destSlug, date)
}

// Tickets returns live offers for a slug pair on a date, cheapest first.
// A failed or empty lookup yields an empty slice, not an error; the
// search degrades to estimate-only results instead of failing outright.
func (c *Client) Tickets(ctx context.Context, originSlug, destSlug, date string) ([]models.Ticket, error) {
	key := cacheKey(originSlug, destSlug, date)
	if cached, err := c.cache.Get(ctx, key); err == nil {
		c.log.Debug("ticket cache hit", zap.String("key", key))
		return cached, nil
	} else if !errors.Is(err, domerr.ErrTicketsNotCached) {
		c.log.Warn("ticket cache get failed", zap.String("key", key), zap.Error(err))
	}

	if err := c.limiter.Acquire(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	tickets, err := c.fetchWithRetry(ctx, originSlug, destSlug, date)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		c.log.Warn("ticket fetch gave up",
			zap.String("origin", originSlug),
			zap.String("destination", destSlug),
			zap.String("date", date),
			zap.Error(err))
		return nil, nil
	}

	sort.SliceStable(tickets, func(i, j int) bool {
		return tickets[i].Price < tickets[j].Price
	})

	if len(tickets) > 0 {
		if err := c.cache.Set(ctx, key, tickets, c.cacheTTL); err != nil {
			c.log.Warn("ticket cache set failed", zap.String("key", key), zap.Error(err))
		}
	}
	return tickets, nil
}

func (c *Client) fetchWithRetry(ctx context.Context, originSlug, destSlug, date string) ([]models.Ticket, error) {
	var lastErr error
	delay := c.backoff

	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			c.log.Debug("retrying ticket fetch",
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay))
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}

		tickets, err := c.fetch(ctx, originSlug, destSlug, date)
		if err == nil {
			return tickets, nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		var transient *transportError
		if !errors.As(err, &transient) {
			// Bad payloads and error statuses will not improve on retry.
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("after %d attempts: %w", c.retries+1, lastErr)
}

// transportError marks failures worth retrying.
type transportError struct {
	err error
}

func (e *transportError) Error() string { return e.err.Error() }
func (e *transportError) Unwrap() error { return e.err }

func (c *Client) fetch(ctx context.Context, originSlug, destSlug, date string) ([]models.Ticket, error) {
	form := url.Values{}
	form.Set("origin", originSlug)
	form.Set("destination", destSlug)
	form.Set("date", date)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, &transportError{err: fmt.Errorf("do request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	var sr dto.SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return sr.Tickets()
}

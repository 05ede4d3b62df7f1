package ports

import (
	"context"
	"time"

	"github.com/SiyahKale0/ucuzyol/internal/domain/models"
)

// TicketSource fetches live tickets for a slugged city pair on a date
// (DD.MM.YYYY). Implementations degrade to an empty slice on transient
// failures instead of surfacing transport errors.
type TicketSource interface {
	Tickets(ctx context.Context, originSlug, destSlug, date string) ([]models.Ticket, error)
}

// TicketCache memoizes fetch results. Get returns
// errors.ErrTicketsNotCached on a miss or an expired entry.
type TicketCache interface {
	Get(ctx context.Context, key string) ([]models.Ticket, error)
	Set(ctx context.Context, key string, tickets []models.Ticket, ttl time.Duration) error
}

// ItinerarySearcher is the engine's public search surface, consumed by the
// HTTP handlers.
type ItinerarySearcher interface {
	Search(ctx context.Context, origin, destination, date string, maxResults int) ([]models.Itinerary, error)
}

// Package dto holds the wire types of the bilet.com search endpoint and
// their mapping into domain tickets.
package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/SiyahKale0/ucuzyol/internal/domain/models"
)

// SearchResponse is the backend's search envelope. Route entries are
// inconsistently shaped: most are plain objects, some are single-element
// arrays wrapping the object, so they are decoded in two steps.
type SearchResponse struct {
	Status bool `json:"status"`
	Result struct {
		Routes []json.RawMessage `json:"routes"`
	} `json:"result"`
}

type routeEntry struct {
	Firm struct {
		Name string `json:"name"`
	} `json:"firm"`
	Pricing struct {
		BaseInternetPrice *float64 `json:"base_internet_price"`
		InternetPrice     *float64 `json:"internet_price"`
		Price             *float64 `json:"price"`
		AvailableSeats    int      `json:"available_seats"`
	} `json:"pricing"`
	Departure struct {
		Humanized struct {
			Time string `json:"time"`
		} `json:"humanized"`
	} `json:"departure"`
	Arrival struct {
		Humanized struct {
			Time string `json:"time"`
		} `json:"humanized"`
	} `json:"arrival"`
}

// bestPrice picks the lowest of the quoted price fields. Zero and missing
// quotes are ignored.
func (r routeEntry) bestPrice() float64 {
	best := 0.0
	for _, p := range []*float64{r.Pricing.BaseInternetPrice, r.Pricing.InternetPrice, r.Pricing.Price} {
		if p == nil || *p <= 0 {
			continue
		}
		if best == 0 || *p < best {
			best = *p
		}
	}
	return best
}

func (r routeEntry) valid() bool {
	if r.Firm.Name == "" || r.bestPrice() <= 0 || r.Pricing.AvailableSeats <= 0 {
		return false
	}
	if _, err := time.Parse("15:04", r.Departure.Humanized.Time); err != nil {
		return false
	}
	if _, err := time.Parse("15:04", r.Arrival.Humanized.Time); err != nil {
		return false
	}
	return true
}

// Tickets validates and maps the response into domain tickets. Entries
// with no seats, no usable price or malformed times are dropped rather
// than failing the whole batch.
func (sr SearchResponse) Tickets() ([]models.Ticket, error) {
	if !sr.Status {
		return nil, fmt.Errorf("backend reported failure status")
	}

	var tickets []models.Ticket
	for _, raw := range sr.Result.Routes {
		entry, err := decodeRoute(raw)
		if err != nil {
			continue
		}
		if !entry.valid() {
			continue
		}
		tickets = append(tickets, models.Ticket{
			Carrier:   entry.Firm.Name,
			Departure: entry.Departure.Humanized.Time,
			Arrival:   entry.Arrival.Humanized.Time,
			Price:     entry.bestPrice(),
			Seats:     entry.Pricing.AvailableSeats,
		})
	}
	return tickets, nil
}

func decodeRoute(raw json.RawMessage) (routeEntry, error) {
	var entry routeEntry
	if err := json.Unmarshal(raw, &entry); err == nil {
		return entry, nil
	}

	var wrapped []routeEntry
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return routeEntry{}, fmt.Errorf("decode route entry: %w", err)
	}
	if len(wrapped) == 0 {
		return routeEntry{}, fmt.Errorf("empty route entry array")
	}
	return wrapped[0], nil
}

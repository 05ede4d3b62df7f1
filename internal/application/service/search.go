// Package service assembles complete itineraries from the static route
// model and live ticket data.
package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	domerr "github.com/SiyahKale0/ucuzyol/internal/domain/errors"
	"github.com/SiyahKale0/ucuzyol/internal/domain/models"
	"github.com/SiyahKale0/ucuzyol/internal/domain/ports"
	"github.com/SiyahKale0/ucuzyol/internal/geo"
	"github.com/SiyahKale0/ucuzyol/internal/routing"
)

const dateLayout = "02.01.2006"
const clockLayout = "15:04"

// SearchService runs the staged itinerary search: direct tickets first,
// then single-transfer candidates, then multi-hop chains when nothing
// better exists. It implements ports.ItinerarySearcher.
type SearchService struct {
	log                *zap.Logger
	source             ports.TicketSource
	minConnection      time.Duration
	transferCandidates int
	defaultMaxResults  int
}

func NewSearchService(
	log *zap.Logger,
	source ports.TicketSource,
	minConnection time.Duration,
	transferCandidates int,
	defaultMaxResults int,
) *SearchService {
	if log == nil {
		log = zap.NewNop()
	}
	if minConnection <= 0 {
		minConnection = time.Hour
	}
	if transferCandidates <= 0 {
		transferCandidates = 6
	}
	if defaultMaxResults <= 0 {
		defaultMaxResults = 7
	}
	return &SearchService{
		log:                log,
		source:             source,
		minConnection:      minConnection,
		transferCandidates: transferCandidates,
		defaultMaxResults:  defaultMaxResults,
	}
}

// Search finds itineraries between two cities on a date (DD.MM.YYYY),
// cheapest first, truncated to maxResults. Backend failures degrade to
// fewer results; an unknown city or malformed date is the caller's
// mistake and comes back as an error.
func (s *SearchService) Search(ctx context.Context, origin, destination, date string, maxResults int) ([]models.Itinerary, error) {
	const op = "service.Search"
	tracer := otel.Tracer("ucuzyol/service")
	ctx, span := tracer.Start(ctx, op)
	defer span.End()
	span.SetAttributes(
		attribute.String("search.origin", origin),
		attribute.String("search.destination", destination),
		attribute.String("search.date", date),
	)

	logger := s.log.With(
		zap.String("op", op),
		zap.String("origin", origin),
		zap.String("destination", destination),
		zap.String("date", date),
	)

	if origin == destination {
		return nil, domerr.ErrSameOriginAndDest
	}
	if !geo.Known(origin) || !geo.Known(destination) {
		logger.Warn("unknown city in search")
		return nil, domerr.ErrUnknownCity
	}
	travelDate, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domerr.ErrInvalidDate, date)
	}
	if maxResults <= 0 {
		maxResults = s.defaultMaxResults
	}

	itineraries := s.directStage(ctx, logger, origin, destination, travelDate)
	directCount := len(itineraries)
	span.SetAttributes(attribute.Int("search.direct_count", directCount))

	if directCount == 0 || len(itineraries) < 3 {
		transfers := s.transferStage(ctx, logger, origin, destination, travelDate)
		itineraries = append(itineraries, transfers...)
	}

	if directCount == 0 && len(itineraries) < 3 {
		chains := s.multiTransferStage(ctx, logger, origin, destination, travelDate)
		itineraries = append(itineraries, chains...)
	}

	sort.SliceStable(itineraries, func(i, j int) bool {
		return itineraries[i].TotalPrice < itineraries[j].TotalPrice
	})
	if len(itineraries) > maxResults {
		itineraries = itineraries[:maxResults]
	}

	logger.Info("search finished",
		zap.Int("direct", directCount),
		zap.Int("results", len(itineraries)))
	span.SetAttributes(attribute.Int("search.results", len(itineraries)))
	return itineraries, nil
}

// fetch wraps the ticket source with slugging and failure degradation:
// any error besides cancellation yields an empty slice.
func (s *SearchService) fetch(ctx context.Context, logger *zap.Logger, origin, destination string, date time.Time) []models.Ticket {
	tickets, err := s.source.Tickets(ctx, geo.Slugify(origin), geo.Slugify(destination), date.Format(dateLayout))
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		logger.Warn("ticket fetch failed",
			zap.String("leg_origin", origin),
			zap.String("leg_destination", destination),
			zap.Error(err))
		return nil
	}
	return tickets
}

func (s *SearchService) directStage(ctx context.Context, logger *zap.Logger, origin, destination string, date time.Time) []models.Itinerary {
	tickets := s.fetch(ctx, logger, origin, destination, date)

	var out []models.Itinerary
	for _, t := range tickets {
		if t.Carrier == "" || t.Seats <= 0 {
			continue
		}
		out = append(out, models.Itinerary{
			ID:   uuid.NewString(),
			Type: models.TripDirect,
			Legs: []models.Leg{{
				Origin:      origin,
				Destination: destination,
				Date:        date.Format(dateLayout),
				Carrier:     t.Carrier,
				Departure:   t.Departure,
				Arrival:     t.Arrival,
				Price:       t.Price,
				Seats:       t.Seats,
			}},
			TotalPrice: t.Price,
		})
	}
	return out
}

// transferStage evaluates the advisor's best hubs concurrently. Each
// candidate is a dependent two-step pipeline: leg2's date follows from
// leg1's arrival, so the legs cannot be fetched in parallel.
func (s *SearchService) transferStage(ctx context.Context, logger *zap.Logger, origin, destination string, date time.Time) []models.Itinerary {
	analysis := routing.AnalyzeTransfers(origin, destination)
	candidates := analysis.Candidates
	if len(candidates) > s.transferCandidates {
		candidates = candidates[:s.transferCandidates]
	}
	if len(candidates) == 0 {
		return nil
	}

	results := make([]*models.Itinerary, len(candidates))
	var wg sync.WaitGroup
	for i, cand := range candidates {
		wg.Add(1)
		go func(slot int, hub routing.HubCandidate) {
			defer wg.Done()
			results[slot] = s.evaluateTransfer(ctx, logger, origin, destination, hub, date)
		}(i, cand)
	}
	wg.Wait()

	var out []models.Itinerary
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out
}

func (s *SearchService) evaluateTransfer(ctx context.Context, logger *zap.Logger, origin, destination string, cand routing.HubCandidate, date time.Time) *models.Itinerary {
	leg1Tickets := s.fetch(ctx, logger, origin, cand.City, date)
	if len(leg1Tickets) == 0 {
		return nil
	}
	leg1 := leg1Tickets[0]

	arrival, ok := legArrival(date, leg1.Departure, leg1.Arrival)
	if !ok {
		return nil
	}
	leg2Date := truncateToDay(arrival)

	leg2Tickets := s.fetch(ctx, logger, cand.City, destination, leg2Date)
	leg2, ok := earliestFeasible(leg2Tickets, leg2Date, arrival.Add(s.minConnection))
	if !ok {
		return nil
	}

	return &models.Itinerary{
		ID:   uuid.NewString(),
		Type: models.TripTransfer,
		Legs: []models.Leg{
			{
				Origin:      origin,
				Destination: cand.City,
				Date:        date.Format(dateLayout),
				Carrier:     leg1.Carrier,
				Departure:   leg1.Departure,
				Arrival:     leg1.Arrival,
				Price:       leg1.Price,
				Seats:       leg1.Seats,
			},
			{
				Origin:      cand.City,
				Destination: destination,
				Date:        leg2Date.Format(dateLayout),
				Carrier:     leg2.Carrier,
				Departure:   leg2.Departure,
				Arrival:     leg2.Arrival,
				Price:       leg2.Price,
				Seats:       leg2.Seats,
			},
		},
		Hubs:       []string{cand.City},
		HubScore:   cand.HubScore,
		TotalPrice: leg1.Price + leg2.Price,
	}
}

// multiTransferStage walks composed chains hop by hop. Hops beyond the
// first get one next-day retry before the chain is abandoned.
func (s *SearchService) multiTransferStage(ctx context.Context, logger *zap.Logger, origin, destination string, date time.Time) []models.Itinerary {
	chains := routing.ComposeChains(origin, destination, 2)
	if len(chains) > 5 {
		chains = chains[:5]
	}

	var out []models.Itinerary
	for _, chain := range chains {
		if it := s.evaluateChain(ctx, logger, chain, date); it != nil {
			out = append(out, *it)
		}
	}
	return out
}

func (s *SearchService) evaluateChain(ctx context.Context, logger *zap.Logger, chain routing.Chain, date time.Time) *models.Itinerary {
	legs := make([]models.Leg, 0, len(chain.Legs))
	total := 0.0
	hopDate := date
	var prevArrival time.Time

	for hop, hopLeg := range chain.Legs {
		ticket, legDate, ok := s.bookHop(ctx, logger, hopLeg.Origin, hopLeg.Destination, hopDate, prevArrival, hop)
		if !ok {
			return nil
		}

		arrival, arrOK := legArrival(legDate, ticket.Departure, ticket.Arrival)
		if !arrOK {
			return nil
		}
		prevArrival = arrival
		hopDate = truncateToDay(arrival)
		total += ticket.Price

		legs = append(legs, models.Leg{
			Origin:      hopLeg.Origin,
			Destination: hopLeg.Destination,
			Date:        legDate.Format(dateLayout),
			Carrier:     ticket.Carrier,
			Departure:   ticket.Departure,
			Arrival:     ticket.Arrival,
			Price:       ticket.Price,
			Seats:       ticket.Seats,
		})
	}

	return &models.Itinerary{
		ID:         uuid.NewString(),
		Type:       models.TripMultiTransfer,
		Legs:       legs,
		Hubs:       chain.Hubs,
		HubScore:   chain.HubScore,
		TotalPrice: total,
	}
}

// bookHop fetches one chain hop and picks a feasible departure. The
// first hop takes the cheapest ticket; later hops must clear the
// connection gap and may retry once on the following day.
func (s *SearchService) bookHop(ctx context.Context, logger *zap.Logger, origin, destination string, date time.Time, prevArrival time.Time, hop int) (models.Ticket, time.Time, bool) {
	tickets := s.fetch(ctx, logger, origin, destination, date)

	if hop == 0 {
		if len(tickets) == 0 {
			return models.Ticket{}, time.Time{}, false
		}
		return tickets[0], date, true
	}

	if t, ok := earliestFeasible(tickets, date, prevArrival.Add(s.minConnection)); ok {
		return t, date, true
	}

	nextDay := date.AddDate(0, 0, 1)
	tickets = s.fetch(ctx, logger, origin, destination, nextDay)
	if t, ok := earliestFeasible(tickets, nextDay, prevArrival.Add(s.minConnection)); ok {
		return t, nextDay, true
	}
	return models.Ticket{}, time.Time{}, false
}

// earliestFeasible picks the ticket with the earliest departure at or
// after notBefore on the given date.
func earliestFeasible(tickets []models.Ticket, date time.Time, notBefore time.Time) (models.Ticket, bool) {
	var best models.Ticket
	var bestAt time.Time
	found := false

	for _, t := range tickets {
		dep, ok := clockOn(date, t.Departure)
		if !ok {
			continue
		}
		if dep.Before(notBefore) {
			continue
		}
		if !found || dep.Before(bestAt) {
			best = t
			bestAt = dep
			found = true
		}
	}
	return best, found
}

// legArrival resolves a leg's arrival instant from its travel date and
// HH:MM strings. An arrival clock at or before the departure clock means
// the bus crossed midnight.
func legArrival(date time.Time, departure, arrival string) (time.Time, bool) {
	dep, ok := clockOn(date, departure)
	if !ok {
		return time.Time{}, false
	}
	arr, ok := clockOn(date, arrival)
	if !ok {
		return time.Time{}, false
	}
	if !arr.After(dep) {
		arr = arr.AddDate(0, 0, 1)
	}
	return arr, true
}

func clockOn(date time.Time, clock string) (time.Time, bool) {
	t, err := time.Parse(clockLayout, clock)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), true
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

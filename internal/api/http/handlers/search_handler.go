// Package handlers exposes the itinerary search engine over HTTP.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/SiyahKale0/ucuzyol/internal/application/service"
	domerr "github.com/SiyahKale0/ucuzyol/internal/domain/errors"
	"github.com/SiyahKale0/ucuzyol/internal/domain/models"
	"github.com/SiyahKale0/ucuzyol/internal/domain/ports"
)

type SearchHandler struct {
	log      *zap.Logger
	searcher ports.ItinerarySearcher
	timeout  time.Duration
}

func NewSearchHandler(log *zap.Logger, searcher ports.ItinerarySearcher, timeout time.Duration) *SearchHandler {
	return &SearchHandler{
		log:      log,
		searcher: searcher,
		timeout:  timeout,
	}
}

type searchResponse struct {
	Itineraries []models.Itinerary `json:"itineraries"`
	Stats       models.Stats       `json:"stats"`
	Count       int                `json:"count"`
}

// GetItineraries handles GET /v1/itineraries?origin=&destination=&date=&limit=.
func (h *SearchHandler) GetItineraries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	origin := strings.TrimSpace(r.URL.Query().Get("origin"))
	destination := strings.TrimSpace(r.URL.Query().Get("destination"))
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if origin == "" || destination == "" || date == "" {
		writeError(w, http.StatusBadRequest, "origin, destination and date are required")
		return
	}

	limit, present, errMsg := parsePositiveIntQuery(r, "limit")
	if present && errMsg != "" {
		writeError(w, http.StatusBadRequest, "limit must be a positive integer")
		return
	}

	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	itineraries, err := h.searcher.Search(ctx, origin, destination, date, limit)
	if err != nil {
		switch {
		case errors.Is(err, domerr.ErrUnknownCity):
			writeError(w, http.StatusBadRequest, "unknown city")
		case errors.Is(err, domerr.ErrSameOriginAndDest):
			writeError(w, http.StatusBadRequest, "origin and destination must differ")
		case errors.Is(err, domerr.ErrInvalidDate):
			writeError(w, http.StatusBadRequest, "date must be DD.MM.YYYY")
		default:
			h.log.Error("search failed",
				zap.String("origin", origin),
				zap.String("destination", destination),
				zap.Error(err))
			writeError(w, http.StatusInternalServerError, "search failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Itineraries: itineraries,
		Stats:       service.ComputeStats(itineraries),
		Count:       len(itineraries),
	})
}

// Healthz reports liveness.
func Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

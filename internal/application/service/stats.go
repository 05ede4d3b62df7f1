package service

import (
	"math"

	"github.com/SiyahKale0/ucuzyol/internal/domain/models"
)

// ComputeStats summarizes a result set: counts per trip type, the price
// spread, and how often each carrier appears across all legs.
func ComputeStats(itineraries []models.Itinerary) models.Stats {
	stats := models.Stats{
		Total:    len(itineraries),
		Carriers: make(map[string]int),
	}
	if len(itineraries) == 0 {
		return stats
	}

	sum := 0.0
	for i, it := range itineraries {
		switch it.Type {
		case models.TripDirect:
			stats.Direct++
		case models.TripTransfer:
			stats.Transfer++
		case models.TripMultiTransfer:
			stats.MultiTransfer++
		}

		if i == 0 || it.TotalPrice < stats.MinPrice {
			stats.MinPrice = it.TotalPrice
		}
		if it.TotalPrice > stats.MaxPrice {
			stats.MaxPrice = it.TotalPrice
		}
		sum += it.TotalPrice

		for _, leg := range it.Legs {
			if leg.Carrier != "" {
				stats.Carriers[leg.Carrier]++
			}
		}
	}
	stats.AvgPrice = math.Round(sum / float64(len(itineraries)))
	return stats
}

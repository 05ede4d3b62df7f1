package service

import (
	"testing"

	"github.com/SiyahKale0/ucuzyol/internal/domain/models"
)

func TestComputeStats(t *testing.T) {
	itineraries := []models.Itinerary{
		{
			Type:       models.TripDirect,
			TotalPrice: 300,
			Legs:       []models.Leg{{Carrier: "Metro Turizm"}},
		},
		{
			Type:       models.TripTransfer,
			TotalPrice: 290,
			Legs: []models.Leg{
				{Carrier: "Kamil Koç"},
				{Carrier: "Metro Turizm"},
			},
		},
		{
			Type:       models.TripMultiTransfer,
			TotalPrice: 410,
			Legs: []models.Leg{
				{Carrier: "Kamil Koç"},
				{Carrier: "Özkaymak"},
				{Carrier: "Kamil Koç"},
			},
		},
	}

	stats := ComputeStats(itineraries)

	if stats.Total != 3 || stats.Direct != 1 || stats.Transfer != 1 || stats.MultiTransfer != 1 {
		t.Fatalf("counts = %+v", stats)
	}
	if stats.MinPrice != 290 || stats.MaxPrice != 410 {
		t.Fatalf("price range = [%v, %v], want [290, 410]", stats.MinPrice, stats.MaxPrice)
	}
	if stats.AvgPrice != 333 {
		t.Fatalf("avg price = %v, want 333", stats.AvgPrice)
	}
	if stats.Carriers["Metro Turizm"] != 2 || stats.Carriers["Kamil Koç"] != 3 || stats.Carriers["Özkaymak"] != 1 {
		t.Fatalf("carriers = %v", stats.Carriers)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)
	if stats.Total != 0 || stats.MinPrice != 0 || stats.MaxPrice != 0 || stats.AvgPrice != 0 {
		t.Fatalf("stats = %+v, want zeroes", stats)
	}
	if stats.Carriers == nil {
		t.Fatal("carriers map should be initialized")
	}
}

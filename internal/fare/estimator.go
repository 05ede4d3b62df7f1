// Package fare estimates ticket prices from road distance when no live
// offer is available, mirroring how operators actually price long hauls:
// a per-km base rate with volume discounts on longer corridors.
package fare

import (
	"math"

	"github.com/SiyahKale0/ucuzyol/internal/geo"
)

const (
	// BaseRatePerKm is the market-average price per road kilometer, in TL.
	BaseRatePerKm = 0.35

	// MinimumFare is the floor any estimate snaps up to, in TL.
	MinimumFare = 80
)

// discountTiers maps a road-distance threshold (km) to the rate retained
// above it. Longer hauls get cheaper per km. Ordered descending so the
// first matching tier wins.
var discountTiers = []struct {
	thresholdKm float64
	rate        float64
}{
	{1000, 0.75},
	{800, 0.80},
	{600, 0.85},
	{400, 0.90},
	{200, 0.95},
	{0, 1.0},
}

// distanceDiscount returns the retained rate for a road distance.
func distanceDiscount(km float64) float64 {
	for _, t := range discountTiers {
		if km >= t.thresholdKm {
			return t.rate
		}
	}
	return 1.0
}

// Estimate prices a trip between two cities for a carrier with the given
// price multiplier. The result is floored at MinimumFare and rounded to
// the nearest multiple of 5 TL. Unknown cities yield +Inf.
func Estimate(origin, destination string, multiplier float64) float64 {
	dist := geo.RoadDistance(origin, destination)
	if math.IsInf(dist, 1) {
		return dist
	}

	price := dist * BaseRatePerKm * distanceDiscount(dist) * multiplier
	price = math.Max(price, MinimumFare)
	return math.Round(price/5) * 5
}

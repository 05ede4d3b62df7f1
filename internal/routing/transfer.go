package routing

import (
	"sort"

	"github.com/SiyahKale0/ucuzyol/internal/fare"
	"github.com/SiyahKale0/ucuzyol/internal/geo"
	"github.com/SiyahKale0/ucuzyol/internal/network"
)

// FeasibilityTier says why a connection between two cities is considered
// serviceable, from strongest evidence to weakest.
type FeasibilityTier string

const (
	// TierCarrier means a registered carrier runs the corridor.
	TierCarrier FeasibilityTier = "carrier"
	// TierRoad means the cities are road-graph neighbors.
	TierRoad FeasibilityTier = "road"
	// TierProximity means no known service, but the cities are close
	// enough that ad hoc coverage is plausible.
	TierProximity FeasibilityTier = "proximity"
)

// proximityLimitKm caps straight-line distance for the proximity tier.
const proximityLimitKm = 600

// connection is one feasible leg of a transfer.
type connection struct {
	feasible bool
	tier     FeasibilityTier
	carriers []network.Carrier
}

// classifyConnection checks the three feasibility tiers in order.
func classifyConnection(a, b string) connection {
	if cs := network.CarriersServing(a, b); len(cs) > 0 {
		return connection{feasible: true, tier: TierCarrier, carriers: cs}
	}
	if network.RoadConnected(a, b) {
		return connection{feasible: true, tier: TierRoad}
	}
	if geo.Distance(a, b) < proximityLimitKm {
		return connection{feasible: true, tier: TierProximity}
	}
	return connection{}
}

// TransferLeg describes one half of a via-hub trip.
type TransferLeg struct {
	Carriers   []network.Carrier
	Fare       float64
	DistanceKm float64
	Tier       FeasibilityTier
}

// HubCandidate is a scored transfer city between an origin and a
// destination.
type HubCandidate struct {
	City       string
	HubScore   int
	FirstLeg   TransferLeg
	SecondLeg  TransferLeg
	TotalFare  float64
	TotalKm    float64
	Efficiency float64
	Score      float64
}

// TransferAnalysis is the advisor's verdict for a city pair.
type TransferAnalysis struct {
	DirectCarriers []network.Carrier
	Candidates     []HubCandidate
}

// HasDirect reports whether a registered carrier covers the pair without
// a transfer.
func (a TransferAnalysis) HasDirect() bool { return len(a.DirectCarriers) > 0 }

// maxTransferCandidates caps how many scored hubs the advisor returns.
const maxTransferCandidates = 10

// AnalyzeTransfers finds and ranks transfer cities for a pair. When a
// direct carrier exists the candidate list is empty; planning a transfer
// would only add cost. Candidates come from the hub set plus the road
// neighbors of both endpoints, both legs must clear a feasibility tier,
// and the round trip through the hub may not exceed three times the
// direct road distance.
func AnalyzeTransfers(origin, destination string) TransferAnalysis {
	if direct := network.CarriersServing(origin, destination); len(direct) > 0 {
		return TransferAnalysis{DirectCarriers: direct}
	}

	seen := make(map[string]struct{})
	var pool []string
	add := func(cities []string) {
		for _, c := range cities {
			if c == origin || c == destination {
				continue
			}
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			pool = append(pool, c)
		}
	}
	add(network.AllHubs())
	add(network.Neighbors(origin))
	add(network.Neighbors(destination))

	directKm := geo.RoadDistance(origin, destination)

	var candidates []HubCandidate
	for _, hub := range pool {
		first := classifyConnection(origin, hub)
		second := classifyConnection(hub, destination)
		if !first.feasible || !second.feasible {
			continue
		}

		firstKm := geo.RoadDistance(origin, hub)
		secondKm := geo.RoadDistance(hub, destination)
		totalKm := firstKm + secondKm
		if totalKm > directKm*3 {
			continue
		}
		efficiency := directKm / totalKm

		firstFare := fare.Estimate(origin, hub, network.CheapestMultiplier(first.carriers))
		secondFare := fare.Estimate(hub, destination, network.CheapestMultiplier(second.carriers))
		totalFare := firstFare + secondFare

		carrierLegBonus := 0.0
		if first.tier == TierCarrier {
			carrierLegBonus += 20
		}
		if second.tier == TierCarrier {
			carrierLegBonus += 20
		}
		hubScore := network.HubScore(hub)
		score := float64(hubScore)*2 + efficiency*100 + carrierLegBonus - totalFare/15

		candidates = append(candidates, HubCandidate{
			City:     hub,
			HubScore: hubScore,
			FirstLeg: TransferLeg{
				Carriers:   first.carriers,
				Fare:       firstFare,
				DistanceKm: firstKm,
				Tier:       first.tier,
			},
			SecondLeg: TransferLeg{
				Carriers:   second.carriers,
				Fare:       secondFare,
				DistanceKm: secondKm,
				Tier:       second.tier,
			},
			TotalFare:  totalFare,
			TotalKm:    totalKm,
			Efficiency: efficiency,
			Score:      score,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > maxTransferCandidates {
		candidates = candidates[:maxTransferCandidates]
	}
	return TransferAnalysis{Candidates: candidates}
}

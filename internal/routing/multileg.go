package routing

import (
	"math"
	"sort"

	"github.com/SiyahKale0/ucuzyol/internal/fare"
	"github.com/SiyahKale0/ucuzyol/internal/geo"
	"github.com/SiyahKale0/ucuzyol/internal/network"
)

// ChainLeg is one hop of a multi-transfer chain, priced with the
// cheapest carrier on the corridor or the market rate when none serves
// it. SuggestedCarrier names a plausible regional operator for legs no
// registered carrier covers.
type ChainLeg struct {
	Origin           string
	Destination      string
	Carriers         []network.Carrier
	SuggestedCarrier string
	Fare             float64
}

// Chain is a complete transfer itinerary candidate built from the static
// network, before any live ticket lookup.
type Chain struct {
	Hubs       []string
	Legs       []ChainLeg
	TotalFare  float64
	TotalKm    float64
	Efficiency float64
	HubScore   int
}

const (
	// Chains via two hubs only make sense on mid-to-long hauls.
	twoHubMinDirectKm = 400
	// Three-hub chains are reserved for the longest corridors, for
	// example Edirne to Hakkâri.
	threeHubMinDirectKm = 700

	maxChains = 10
)

func newChainLeg(origin, destination string, cs []network.Carrier, legFare float64) ChainLeg {
	leg := ChainLeg{
		Origin:      origin,
		Destination: destination,
		Carriers:    cs,
		Fare:        legFare,
	}
	if len(cs) == 0 {
		leg.SuggestedCarrier, _ = network.RegionalFallbackCarrier(origin, destination)
	}
	return leg
}

// ComposeChains enumerates transfer chains between two cities, cheapest
// first, capped at ten. One-hub chains reuse the transfer advisor's top
// candidates; two-hub chains pair mega and regional hubs on routes over
// 400 direct km within a 3x detour; three-hub chains pair mega hubs on
// routes over 700 direct km within a 3.5x detour. maxTransfers bounds
// how deep the enumeration goes.
func ComposeChains(origin, destination string, maxTransfers int) []Chain {
	var chains []Chain
	directKm := geo.RoadDistance(origin, destination)
	if math.IsInf(directKm, 1) {
		return nil
	}

	analysis := AnalyzeTransfers(origin, destination)
	if !analysis.HasDirect() {
		top := analysis.Candidates
		if len(top) > 5 {
			top = top[:5]
		}
		for _, c := range top {
			chains = append(chains, Chain{
				Hubs: []string{c.City},
				Legs: []ChainLeg{
					newChainLeg(origin, c.City, c.FirstLeg.Carriers, c.FirstLeg.Fare),
					newChainLeg(c.City, destination, c.SecondLeg.Carriers, c.SecondLeg.Fare),
				},
				TotalFare:  c.TotalFare,
				TotalKm:    c.TotalKm,
				Efficiency: c.Efficiency,
				HubScore:   c.HubScore,
			})
		}
	}

	if maxTransfers >= 2 && directKm > twoHubMinDirectKm {
		chains = append(chains, twoHubChains(origin, destination, directKm)...)
	}
	if maxTransfers >= 3 && directKm > threeHubMinDirectKm {
		chains = append(chains, threeHubChains(origin, destination, directKm)...)
	}

	sort.SliceStable(chains, func(i, j int) bool {
		return chains[i].TotalFare < chains[j].TotalFare
	})
	if len(chains) > maxChains {
		chains = chains[:maxChains]
	}
	return chains
}

func twoHubChains(origin, destination string, directKm float64) []Chain {
	hubs := network.ExpressHubs()
	var chains []Chain

	for _, hub1 := range hubs {
		if hub1 == origin || hub1 == destination {
			continue
		}
		for _, hub2 := range hubs {
			if hub2 == origin || hub2 == destination || hub2 == hub1 {
				continue
			}

			totalKm := geo.RoadDistance(origin, hub1) +
				geo.RoadDistance(hub1, hub2) +
				geo.RoadDistance(hub2, destination)
			if totalKm > directKm*3 {
				continue
			}

			c1 := classifyConnection(origin, hub1)
			c2 := classifyConnection(hub1, hub2)
			c3 := classifyConnection(hub2, destination)
			if !c1.feasible || !c2.feasible || !c3.feasible {
				continue
			}

			legs := []ChainLeg{
				newChainLeg(origin, hub1, c1.carriers, fare.Estimate(origin, hub1, network.CheapestMultiplier(c1.carriers))),
				newChainLeg(hub1, hub2, c2.carriers, fare.Estimate(hub1, hub2, network.CheapestMultiplier(c2.carriers))),
				newChainLeg(hub2, destination, c3.carriers, fare.Estimate(hub2, destination, network.CheapestMultiplier(c3.carriers))),
			}
			chains = append(chains, Chain{
				Hubs:       []string{hub1, hub2},
				Legs:       legs,
				TotalFare:  legs[0].Fare + legs[1].Fare + legs[2].Fare,
				TotalKm:    totalKm,
				Efficiency: directKm / totalKm,
			})
		}
	}
	return chains
}

func threeHubChains(origin, destination string, directKm float64) []Chain {
	mega := network.MegaHubs()
	third := append(append([]string(nil), mega...), firstN(network.RegionalHubs(), 5)...)
	var chains []Chain

	for _, hub1 := range mega {
		if hub1 == origin || hub1 == destination {
			continue
		}
		for _, hub2 := range mega {
			if hub2 == origin || hub2 == destination || hub2 == hub1 {
				continue
			}
			for _, hub3 := range third {
				if hub3 == origin || hub3 == destination || hub3 == hub1 || hub3 == hub2 {
					continue
				}

				totalKm := geo.RoadDistance(origin, hub1) +
					geo.RoadDistance(hub1, hub2) +
					geo.RoadDistance(hub2, hub3) +
					geo.RoadDistance(hub3, destination)
				if totalKm > directKm*3.5 {
					continue
				}

				c1 := classifyConnection(origin, hub1)
				c2 := classifyConnection(hub1, hub2)
				c3 := classifyConnection(hub2, hub3)
				c4 := classifyConnection(hub3, destination)
				if !c1.feasible || !c2.feasible || !c3.feasible || !c4.feasible {
					continue
				}

				// Long chains are priced at the market rate; carrier
				// haggling over four hops is noise at this distance.
				legs := []ChainLeg{
					newChainLeg(origin, hub1, c1.carriers, fare.Estimate(origin, hub1, 1.0)),
					newChainLeg(hub1, hub2, c2.carriers, fare.Estimate(hub1, hub2, 1.0)),
					newChainLeg(hub2, hub3, c3.carriers, fare.Estimate(hub2, hub3, 1.0)),
					newChainLeg(hub3, destination, c4.carriers, fare.Estimate(hub3, destination, 1.0)),
				}
				total := 0.0
				for _, l := range legs {
					total += l.Fare
				}
				chains = append(chains, Chain{
					Hubs:       []string{hub1, hub2, hub3},
					Legs:       legs,
					TotalFare:  total,
					TotalKm:    totalKm,
					Efficiency: directKm / totalKm,
				})
			}
		}
	}
	return chains
}

func firstN(s []string, n int) []string {
	if len(s) < n {
		n = len(s)
	}
	return s[:n]
}

// Package routing plans intercity bus routes over the road network: A*
// pathfinding with express hub edges, transfer point analysis and
// multi-hub chain composition.
package routing

import (
	"container/heap"

	domerr "github.com/SiyahKale0/ucuzyol/internal/domain/errors"
	"github.com/SiyahKale0/ucuzyol/internal/fare"
	"github.com/SiyahKale0/ucuzyol/internal/geo"
	"github.com/SiyahKale0/ucuzyol/internal/network"
)

// CostMode selects what the pathfinder optimizes for.
type CostMode string

const (
	// CostDistance minimizes total road distance.
	CostDistance CostMode = "distance"
	// CostPrice minimizes estimated fare, rewarding hub stops and
	// corridors with registered carriers.
	CostPrice CostMode = "price"
	// CostBalanced trades distance against fare with hub and carrier
	// bonuses.
	CostBalanced CostMode = "balanced"
)

// Route is a pathfinder result. Cost is in the selected mode's unit and
// only comparable within that mode; EstimatedFare is always the summed
// per-edge fare estimate at market multiplier.
type Route struct {
	Path          []string
	Cost          float64
	EstimatedFare float64
}

// hubBonus rewards passing through hub cities: up to 50 cost units for a
// perfect-score hub.
func hubBonus(city string) float64 {
	return float64(network.HubScore(city)) / 100 * 50
}

// carrierBonus rewards edges some registered carrier actually serves.
const carrierBonus = 100

// edgeCost prices the move from one city to a road-adjacent (or
// express-linked) one under the given mode.
func edgeCost(from, to string, mode CostMode) float64 {
	dist := geo.RoadDistance(from, to)

	switch mode {
	case CostDistance:
		return dist
	case CostPrice:
		est := fare.Estimate(from, to, 1.0)
		bonus := 0.0
		if len(network.CarriersServing(from, to)) > 0 {
			bonus = carrierBonus
		}
		return est - hubBonus(to) - bonus
	default:
		est := fare.Estimate(from, to, 1.0)
		bonus := 0.0
		if len(network.CarriersServing(from, to)) > 0 {
			bonus = carrierBonus
		}
		return dist*0.5 + est*0.3 - hubBonus(to) - bonus*0.2
	}
}

// pqItem is an open-set entry. seq breaks priority ties in insertion
// order so results are deterministic.
type pqItem struct {
	city     string
	priority float64
	seq      int
}

type openSet struct {
	items []pqItem
	seq   int
}

func (q *openSet) Len() int { return len(q.items) }

func (q *openSet) Less(i, j int) bool {
	if q.items[i].priority != q.items[j].priority {
		return q.items[i].priority < q.items[j].priority
	}
	return q.items[i].seq < q.items[j].seq
}

func (q *openSet) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *openSet) Push(x any) { q.items = append(q.items, x.(pqItem)) }

func (q *openSet) Pop() any {
	old := q.items
	n := len(old)
	it := old[n-1]
	q.items = old[:n-1]
	return it
}

func (q *openSet) push(city string, priority float64) {
	heap.Push(q, pqItem{city: city, priority: priority, seq: q.seq})
	q.seq++
}

// neighborsOf returns road neighbors plus, for express hubs, edges to
// every mega and regional hub. Express services let high-traffic cities
// skip the corridor-by-corridor crawl.
func neighborsOf(city string) []string {
	ns := network.Neighbors(city)
	if !network.IsExpressHub(city) {
		return ns
	}

	seen := make(map[string]struct{}, len(ns))
	for _, n := range ns {
		seen[n] = struct{}{}
	}
	out := append([]string(nil), ns...)
	for _, hub := range network.ExpressHubs() {
		if hub == city {
			continue
		}
		if _, ok := seen[hub]; ok {
			continue
		}
		out = append(out, hub)
	}
	return out
}

// FindRoute runs A* between two cities under the given cost mode. The
// heuristic is the straight-line distance to the destination.
func FindRoute(origin, destination string, mode CostMode) (Route, error) {
	if !geo.Known(origin) || !geo.Known(destination) {
		return Route{}, domerr.ErrUnknownCity
	}
	if origin == destination {
		return Route{Path: []string{origin}}, nil
	}

	open := &openSet{}
	heap.Init(open)
	gScore := map[string]float64{origin: 0}
	fareScore := map[string]float64{origin: 0}
	prev := make(map[string]string)
	closed := make(map[string]struct{})

	open.push(origin, geo.Distance(origin, destination))

	for open.Len() > 0 {
		current := heap.Pop(open).(pqItem).city

		if current == destination {
			path := []string{destination}
			for step := destination; ; {
				p, ok := prev[step]
				if !ok {
					break
				}
				path = append(path, p)
				step = p
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return Route{
				Path:          path,
				Cost:          gScore[destination],
				EstimatedFare: fareScore[destination],
			}, nil
		}

		if _, ok := closed[current]; ok {
			continue
		}
		closed[current] = struct{}{}

		for _, next := range neighborsOf(current) {
			if _, ok := closed[next]; ok {
				continue
			}

			g := gScore[current] + edgeCost(current, next, mode)
			est := fareScore[current] + fare.Estimate(current, next, 1.0)

			if old, ok := gScore[next]; !ok || g < old {
				prev[next] = current
				gScore[next] = g
				fareScore[next] = est
				open.push(next, g+geo.Distance(next, destination))
			}
		}
	}

	return Route{}, domerr.ErrNoRouteFound
}

// RouteExists reports whether any path connects the two cities.
func RouteExists(origin, destination string) bool {
	_, err := FindRoute(origin, destination, CostDistance)
	return err == nil
}

// pathKey serializes a path for dedup across alternative route sets.
func pathKey(path []string) string {
	key := ""
	for _, c := range path {
		key += c + "|"
	}
	return key
}

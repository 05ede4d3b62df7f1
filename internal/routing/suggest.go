package routing

import (
	"sort"

	domerr "github.com/SiyahKale0/ucuzyol/internal/domain/errors"
	"github.com/SiyahKale0/ucuzyol/internal/geo"
	"github.com/SiyahKale0/ucuzyol/internal/network"
)

// SuggestionKind labels why an alternative route was proposed.
type SuggestionKind string

const (
	SuggestionShortest    SuggestionKind = "shortest"
	SuggestionCheapest    SuggestionKind = "cheapest"
	SuggestionRecommended SuggestionKind = "recommended"
	SuggestionAlternative SuggestionKind = "alternative"
)

// Suggestion is an alternative route between two cities, with the hub it
// was forced through when it came from the hub fan-out.
type Suggestion struct {
	Route
	Kind   SuggestionKind
	ViaHub string
}

// SuggestRoutes proposes up to maxRoutes distinct routes: the shortest,
// the cheapest, the balanced pick, then balanced routes forced through
// each major hub. Duplicates by path are dropped and the survivors are
// ordered by estimated fare.
func SuggestRoutes(origin, destination string, maxRoutes int) ([]Suggestion, error) {
	if !geo.Known(origin) || !geo.Known(destination) {
		return nil, domerr.ErrUnknownCity
	}
	if maxRoutes <= 0 {
		maxRoutes = 5
	}

	var out []Suggestion
	seen := make(map[string]struct{})
	add := func(r Route, kind SuggestionKind, via string) {
		key := pathKey(r.Path)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, Suggestion{Route: r, Kind: kind, ViaHub: via})
	}

	if r, err := FindRoute(origin, destination, CostDistance); err == nil {
		add(r, SuggestionShortest, "")
	}
	if r, err := FindRoute(origin, destination, CostPrice); err == nil {
		add(r, SuggestionCheapest, "")
	}
	if r, err := FindRoute(origin, destination, CostBalanced); err == nil {
		add(r, SuggestionRecommended, "")
	}

	for _, hub := range network.ExpressHubs() {
		if len(out) >= maxRoutes {
			break
		}
		if hub == origin || hub == destination {
			continue
		}

		first, err := FindRoute(origin, hub, CostBalanced)
		if err != nil {
			continue
		}
		second, err := FindRoute(hub, destination, CostBalanced)
		if err != nil {
			continue
		}

		joined := append(append([]string(nil), first.Path[:len(first.Path)-1]...), second.Path...)
		add(Route{
			Path:          joined,
			Cost:          first.Cost + second.Cost,
			EstimatedFare: first.EstimatedFare + second.EstimatedFare,
		}, SuggestionAlternative, hub)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EstimatedFare < out[j].EstimatedFare
	})
	if len(out) > maxRoutes {
		out = out[:maxRoutes]
	}
	if len(out) == 0 {
		return nil, domerr.ErrNoRouteFound
	}
	return out, nil
}

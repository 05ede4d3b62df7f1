package network

// Hub tiers. Mega hubs connect everywhere, regional hubs anchor their
// region, sub hubs matter only on specific corridors.
var (
	megaHubs     = []string{"İstanbul", "Ankara"}
	regionalHubs = []string{"İzmir", "Bursa", "Adana", "Antalya", "Konya", "Kayseri", "Samsun", "Trabzon", "Gaziantep", "Diyarbakır"}
	subHubs      = []string{"Denizli", "Eskişehir", "Afyonkarahisar", "Malatya", "Erzurum", "Van", "Mersin", "Şanlıurfa", "Sivas", "Elazığ"}
)

// hubScores rates transfer desirability on a 0-100 scale.
var hubScores = map[string]int{
	"İstanbul":       100,
	"Ankara":         95,
	"İzmir":          80,
	"Bursa":          75,
	"Adana":          70,
	"Antalya":        70,
	"Konya":          65,
	"Kayseri":        60,
	"Gaziantep":      60,
	"Samsun":         55,
	"Trabzon":        55,
	"Diyarbakır":     55,
	"Denizli":        50,
	"Eskişehir":      50,
	"Malatya":        45,
	"Erzurum":        45,
	"Mersin":         45,
	"Şanlıurfa":      40,
	"Sivas":          40,
	"Afyonkarahisar": 35,
	"Van":            35,
	"Elazığ":         35,
}

// expressHubThreshold: cities scoring at least this run inter-hub express
// services, modeled as extra pathfinder edges.
const expressHubThreshold = 55

// MegaHubs returns the tier-1 hub cities.
func MegaHubs() []string { return megaHubs }

// RegionalHubs returns the tier-2 hub cities.
func RegionalHubs() []string { return regionalHubs }

// SubHubs returns the tier-3 hub cities.
func SubHubs() []string { return subHubs }

// AllHubs returns mega, regional and sub hubs in tier order.
func AllHubs() []string {
	out := make([]string, 0, len(megaHubs)+len(regionalHubs)+len(subHubs))
	out = append(out, megaHubs...)
	out = append(out, regionalHubs...)
	out = append(out, subHubs...)
	return out
}

// ExpressHubs returns mega and regional hubs, the endpoints of inter-hub
// express edges.
func ExpressHubs() []string {
	out := make([]string, 0, len(megaHubs)+len(regionalHubs))
	out = append(out, megaHubs...)
	out = append(out, regionalHubs...)
	return out
}

// HubScore returns the desirability score for a city, 0 if it is not a hub.
func HubScore(city string) int {
	return hubScores[city]
}

// IsExpressHub reports whether the city's score qualifies it for inter-hub
// express edges.
func IsExpressHub(city string) bool {
	return hubScores[city] >= expressHubThreshold
}

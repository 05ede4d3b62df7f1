package network

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SiyahKale0/ucuzyol/internal/geo"
)

func TestRoadNetworkCitiesAreKnown(t *testing.T) {
	for city, links := range roadNetwork {
		if city == "Hopa" {
			continue
		}
		assert.True(t, geo.Known(city), "unknown city %s in road network", city)
		for _, n := range links {
			if n == "Hopa" {
				continue
			}
			assert.True(t, geo.Known(n), "unknown neighbor %s of %s", n, city)
		}
	}
}

func TestNeighborsSymmetricAndSorted(t *testing.T) {
	ns := Neighbors("Ankara")
	require.NotEmpty(t, ns)
	assert.True(t, sort.StringsAreSorted(ns))

	// Links listed on only one side must still be visible from both.
	assert.Contains(t, Neighbors("Yozgat"), "Ankara")
	assert.Contains(t, Neighbors("Ankara"), "Yozgat")

	for _, n := range ns {
		assert.Contains(t, Neighbors(n), "Ankara", "edge Ankara-%s not symmetric", n)
	}
}

func TestRoadConnected(t *testing.T) {
	assert.True(t, RoadConnected("İstanbul", "Kocaeli"))
	assert.True(t, RoadConnected("Kocaeli", "İstanbul"))
	assert.False(t, RoadConnected("İstanbul", "Van"))
}

func TestCarriersServing(t *testing.T) {
	cs := CarriersServing("İstanbul", "Ankara")
	require.NotEmpty(t, cs)
	names := make([]string, 0, len(cs))
	for _, c := range cs {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "Metro Turizm")
	assert.Contains(t, names, "Kamil Koç")

	// Line direction must not matter.
	assert.Len(t, CarriersServing("Ankara", "İstanbul"), len(cs))

	assert.Empty(t, CarriersServing("Edirne", "Kayseri"))
}

func TestCheapestMultiplier(t *testing.T) {
	assert.Equal(t, 1.0, CheapestMultiplier(nil))

	cs := CarriersServing("İstanbul", "Diyarbakır")
	require.NotEmpty(t, cs)
	// Diyarbakır Seyahat undercuts everyone on this corridor.
	assert.Equal(t, 0.78, CheapestMultiplier(cs))
}

func TestHubTiers(t *testing.T) {
	assert.Equal(t, []string{"İstanbul", "Ankara"}, MegaHubs())
	assert.Len(t, AllHubs(), len(MegaHubs())+len(RegionalHubs())+len(SubHubs()))

	assert.Equal(t, 100, HubScore("İstanbul"))
	assert.Zero(t, HubScore("Kilis"))

	assert.True(t, IsExpressHub("Samsun"))   // score 55, at the threshold
	assert.False(t, IsExpressHub("Denizli")) // score 50
	assert.False(t, IsExpressHub("Kilis"))
}

func TestRegionalFallbackCarrier(t *testing.T) {
	name, mult := RegionalFallbackCarrier("Mardin", "Batman")
	assert.Equal(t, "Diyarbakır Seyahat", name)
	assert.Equal(t, 0.78, mult)

	name, _ = RegionalFallbackCarrier("Malatya", "Erzurum")
	assert.Equal(t, "Malatya Medine", name)

	name, _ = RegionalFallbackCarrier("Kars", "Iğdır")
	assert.Equal(t, "Doğu Turizm", name)

	name, _ = RegionalFallbackCarrier("Trabzon", "Rize")
	assert.Equal(t, "Lüks Artvin", name)

	name, _ = RegionalFallbackCarrier("Samsun", "Ordu")
	assert.Equal(t, "As Turizm", name)

	name, _ = RegionalFallbackCarrier("Konya", "Karaman")
	assert.Equal(t, "Özkaymak", name)

	name, mult = RegionalFallbackCarrier("Edirne", "Tekirdağ")
	assert.Equal(t, "Metro Turizm", name)
	assert.Equal(t, 0.95, mult)
}

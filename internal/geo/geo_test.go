package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinatesCoversAllProvinces(t *testing.T) {
	assert.Len(t, Cities(), 81)

	for _, city := range Cities() {
		c, ok := Coordinates(city)
		require.True(t, ok, city)
		assert.InDelta(t, 39, c.Lat, 6, "%s latitude out of Turkey", city)
		assert.InDelta(t, 35, c.Lon, 10, "%s longitude out of Turkey", city)
	}
}

func TestDistanceKnownPair(t *testing.T) {
	// İstanbul-Ankara great-circle distance is roughly 350 km.
	d := Distance("İstanbul", "Ankara")
	assert.InDelta(t, 350, d, 30)

	assert.InDelta(t, d, Distance("Ankara", "İstanbul"), 1e-9)
	assert.Zero(t, Distance("Ankara", "Ankara"))
}

func TestDistanceUnknownCityIsInfinite(t *testing.T) {
	assert.True(t, math.IsInf(Distance("Atlantis", "Ankara"), 1))
	assert.True(t, math.IsInf(Distance("Ankara", "Atlantis"), 1))
}

func TestRoadDistanceAppliesFactor(t *testing.T) {
	d := Distance("İzmir", "Ankara")
	assert.InDelta(t, d*RoadFactor, RoadDistance("İzmir", "Ankara"), 1e-9)
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"İstanbul":       "istanbul",
		"Şanlıurfa":      "sanliurfa",
		"Çanakkale":      "canakkale",
		"Ağrı":           "agri",
		"Kahramanmaraş":  "kahramanmaras",
		"Afyonkarahisar": "afyonkarahisar",
		"Güzel Şehir":    "guzel-sehir",
		"  Uşak  ":       "usak",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), in)
	}
}

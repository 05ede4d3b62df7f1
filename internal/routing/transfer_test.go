package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SiyahKale0/ucuzyol/internal/geo"
	"github.com/SiyahKale0/ucuzyol/internal/network"
)

func TestAnalyzeTransfersDirectPairHasNoCandidates(t *testing.T) {
	a := AnalyzeTransfers("İstanbul", "Ankara")
	assert.True(t, a.HasDirect())
	assert.NotEmpty(t, a.DirectCarriers)
	assert.Empty(t, a.Candidates)
}

func TestAnalyzeTransfersFindsHubsForUnservedPair(t *testing.T) {
	// No registered carrier runs Edirne-Kayseri.
	require.Empty(t, network.CarriersServing("Edirne", "Kayseri"))

	a := AnalyzeTransfers("Edirne", "Kayseri")
	assert.False(t, a.HasDirect())
	require.NotEmpty(t, a.Candidates)
	assert.LessOrEqual(t, len(a.Candidates), 10)

	directKm := geo.RoadDistance("Edirne", "Kayseri")
	for _, c := range a.Candidates {
		assert.NotEqual(t, "Edirne", c.City)
		assert.NotEqual(t, "Kayseri", c.City)
		assert.LessOrEqual(t, c.TotalKm, directKm*3, "hub %s exceeds detour cap", c.City)
		assert.Positive(t, c.TotalFare)
	}

	for i := 1; i < len(a.Candidates); i++ {
		assert.GreaterOrEqual(t, a.Candidates[i-1].Score, a.Candidates[i].Score)
	}
}

func TestClassifyConnectionTiers(t *testing.T) {
	c := classifyConnection("İstanbul", "Ankara")
	require.True(t, c.feasible)
	assert.Equal(t, TierCarrier, c.tier)
	assert.NotEmpty(t, c.carriers)

	// Road neighbors without a shared carrier line.
	c = classifyConnection("Edirne", "Kırklareli")
	require.True(t, c.feasible)
	assert.Equal(t, TierRoad, c.tier)
	assert.Empty(t, c.carriers)

	// Van-Şanlıurfa: no carrier, no road edge, but under 600 km apart.
	require.Less(t, geo.Distance("Van", "Şanlıurfa"), 600.0)
	c = classifyConnection("Van", "Şanlıurfa")
	require.True(t, c.feasible)
	assert.Equal(t, TierProximity, c.tier)

	// Edirne-Van is far beyond the proximity limit.
	c = classifyConnection("Edirne", "Van")
	assert.False(t, c.feasible)
}

func TestAnalyzeTransfersScoreRewardsCarrierLegs(t *testing.T) {
	a := AnalyzeTransfers("Edirne", "Kayseri")
	require.NotEmpty(t, a.Candidates)

	best := a.Candidates[0]
	bonus := 0.0
	if best.FirstLeg.Tier == TierCarrier {
		bonus += 20
	}
	if best.SecondLeg.Tier == TierCarrier {
		bonus += 20
	}
	want := float64(best.HubScore)*2 + best.Efficiency*100 + bonus - best.TotalFare/15
	assert.InDelta(t, want, best.Score, 1e-9)
}

package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domerr "github.com/SiyahKale0/ucuzyol/internal/domain/errors"
	"github.com/SiyahKale0/ucuzyol/internal/network"
)

func assertValidPath(t *testing.T, path []string) {
	t.Helper()
	require.NotEmpty(t, path)
	for i := 0; i < len(path)-1; i++ {
		a, b := path[i], path[i+1]
		ok := network.RoadConnected(a, b) || network.IsExpressHub(a)
		assert.True(t, ok, "edge %s -> %s is neither a road link nor an express hop", a, b)
	}
}

func TestFindRouteDirectNeighbors(t *testing.T) {
	r, err := FindRoute("İstanbul", "Kocaeli", CostDistance)
	require.NoError(t, err)
	assert.Equal(t, []string{"İstanbul", "Kocaeli"}, r.Path)
	assert.Positive(t, r.Cost)
	assert.Positive(t, r.EstimatedFare)
}

func TestFindRouteSameCity(t *testing.T) {
	r, err := FindRoute("Ankara", "Ankara", CostDistance)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ankara"}, r.Path)
	assert.Zero(t, r.Cost)
	assert.Zero(t, r.EstimatedFare)
}

func TestFindRouteUnknownCity(t *testing.T) {
	_, err := FindRoute("Gotham", "Ankara", CostDistance)
	assert.ErrorIs(t, err, domerr.ErrUnknownCity)

	_, err = FindRoute("Ankara", "Gotham", CostBalanced)
	assert.ErrorIs(t, err, domerr.ErrUnknownCity)
}

func TestFindRouteLongHaulIsConnected(t *testing.T) {
	for _, mode := range []CostMode{CostDistance, CostPrice, CostBalanced} {
		r, err := FindRoute("Edirne", "Hakkâri", mode)
		require.NoError(t, err, "mode %s", mode)
		assert.Equal(t, "Edirne", r.Path[0])
		assert.Equal(t, "Hakkâri", r.Path[len(r.Path)-1])
		assertValidPath(t, r.Path)
	}
}

func TestFindRouteExpressHopsFromHubs(t *testing.T) {
	// İstanbul is an express hub, so Trabzon is reachable in one hop
	// even though they share no road edge.
	r, err := FindRoute("İstanbul", "Trabzon", CostDistance)
	require.NoError(t, err)
	assertValidPath(t, r.Path)
	assert.Len(t, r.Path, 2)
}

func TestFindRouteDeterministic(t *testing.T) {
	first, err := FindRoute("İzmir", "Van", CostBalanced)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := FindRoute("İzmir", "Van", CostBalanced)
		require.NoError(t, err)
		assert.Equal(t, first.Path, again.Path)
	}
}

func TestFindRouteDistanceModeNoShorterAlternative(t *testing.T) {
	r, err := FindRoute("İstanbul", "Ankara", CostDistance)
	require.NoError(t, err)

	// The express edge makes the one-hop route optimal.
	assert.Equal(t, []string{"İstanbul", "Ankara"}, r.Path)
}

func TestRouteExists(t *testing.T) {
	assert.True(t, RouteExists("İstanbul", "Şırnak"))
	assert.False(t, RouteExists("İstanbul", "Atlantis"))
}

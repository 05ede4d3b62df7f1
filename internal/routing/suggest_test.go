package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domerr "github.com/SiyahKale0/ucuzyol/internal/domain/errors"
)

func TestSuggestRoutesDistinctAndSorted(t *testing.T) {
	suggestions, err := SuggestRoutes("İzmir", "Trabzon", 5)
	require.NoError(t, err)
	require.NotEmpty(t, suggestions)
	assert.LessOrEqual(t, len(suggestions), 5)

	seen := make(map[string]struct{})
	for _, s := range suggestions {
		key := pathKey(s.Path)
		_, dup := seen[key]
		assert.False(t, dup, "duplicate path %v", s.Path)
		seen[key] = struct{}{}

		assert.Equal(t, "İzmir", s.Path[0])
		assert.Equal(t, "Trabzon", s.Path[len(s.Path)-1])
	}
	for i := 1; i < len(suggestions); i++ {
		assert.LessOrEqual(t, suggestions[i-1].EstimatedFare, suggestions[i].EstimatedFare)
	}
}

func TestSuggestRoutesAlternativesCarryViaHub(t *testing.T) {
	suggestions, err := SuggestRoutes("Edirne", "Van", 5)
	require.NoError(t, err)
	for _, s := range suggestions {
		if s.Kind == SuggestionAlternative {
			assert.NotEmpty(t, s.ViaHub)
		} else {
			assert.Empty(t, s.ViaHub)
		}
	}
}

func TestSuggestRoutesUnknownCity(t *testing.T) {
	_, err := SuggestRoutes("Narnia", "Ankara", 5)
	assert.ErrorIs(t, err, domerr.ErrUnknownCity)
}

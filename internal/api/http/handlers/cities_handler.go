package handlers

import (
	"net/http"
	"sort"

	"github.com/SiyahKale0/ucuzyol/internal/geo"
)

// GetCities handles GET /v1/cities, the picker source for clients.
func GetCities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	cities := geo.Cities()
	sort.Strings(cities)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"cities": cities,
		"count":  len(cities),
	})
}

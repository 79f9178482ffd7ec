// Package rank orders carparks by distance from an observer.
package rank

import (
	"sort"

	"carpark-status-backend/internal/geo"
	"carpark-status-backend/internal/model"
)

// Nearest returns the carparks closest to the observer, ascending by
// great-circle distance, truncated to limit (non-positive limit means
// no truncation). Ties keep their original relative order. The input
// slice is never mutated; distances are set on the returned copies.
func Nearest(carparks []model.Carpark, observer geo.Point, limit int) []model.Carpark {
	ranked := make([]model.Carpark, len(carparks))
	copy(ranked, carparks)

	for i := range ranked {
		ranked[i].Distance = geo.Haversine(observer, geo.Point{Lat: ranked[i].Lat, Lon: ranked[i].Lon})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Distance < ranked[j].Distance
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

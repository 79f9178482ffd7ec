// Package reconcile merges the static carpark reference dataset with
// the live availability feed into the unified carpark set.
package reconcile

import (
	"strconv"
	"strings"

	"carpark-status-backend/internal/dataset"
	"carpark-status-backend/internal/feed"
	"carpark-status-backend/internal/geo"
	"carpark-status-backend/internal/model"
)

// Reconcile builds the unified carpark set. The static dataset is
// authoritative for what a carpark is: live records without a static
// counterpart are dropped, never promoted to entities of their own.
//
// Static rows missing an identifier or either coordinate are discarded.
// Duplicate identifiers are last-write-wins, both across static rows
// and across live records within one feed snapshot.
//
// Pure and idempotent: the same inputs always produce the same output,
// in static-dataset order.
func Reconcile(static []dataset.Record, live []feed.Record) []model.Carpark {
	carparks := make([]model.Carpark, 0, len(static))
	byID := make(map[string]int, len(static))

	for _, rec := range static {
		id := strings.TrimSpace(rec.CarParkNo)
		if id == "" || rec.X == nil || rec.Y == nil {
			continue
		}

		lat, lon := geo.SVY21ToWGS84(*rec.X, *rec.Y)
		cp := model.Carpark{
			ID:      id,
			Address: strings.TrimSpace(rec.Address),
			Lat:     lat,
			Lon:     lon,
			Type:    rec.Type,
		}

		key := model.NormalizeID(id)
		if i, seen := byID[key]; seen {
			carparks[i] = cp
			continue
		}
		byID[key] = len(carparks)
		carparks = append(carparks, cp)
	}

	for _, rec := range live {
		i, ok := byID[model.NormalizeID(rec.CarparkNumber)]
		if !ok {
			continue
		}
		carparks[i].Available = availableLots(rec)
	}

	return carparks
}

// availableLots extracts the authoritative lot count from a live
// record: the first snapshot's lots_available, parsed as an integer.
// Absent or unparsable counts stay 0, and so do negative ones.
func availableLots(rec feed.Record) int {
	if len(rec.CarparkInfo) == 0 {
		return 0
	}
	lots, err := strconv.Atoi(strings.TrimSpace(rec.CarparkInfo[0].LotsAvailable))
	if err != nil || lots < 0 {
		return 0
	}
	return lots
}

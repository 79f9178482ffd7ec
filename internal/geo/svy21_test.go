package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSVY21ToWGS84_ProjectionOrigin(t *testing.T) {
	// The projection origin maps back to the SVY21 false origin at
	// 1°22'N, 103°50'E exactly.
	lat, lon := SVY21ToWGS84(28001.642, 38744.572)
	assert.InDelta(t, 1.3666666666666666, lat, 1e-7)
	assert.InDelta(t, 103.83333333333333, lon, 1e-7)
}

func TestSVY21ToWGS84_WithinSingaporeBounds(t *testing.T) {
	// Easting/northing pairs spread across the HDB dataset's extent.
	grid := []struct {
		name     string
		easting  float64
		northing float64
	}{
		{"central", 29857.8, 33444.1},
		{"west", 13733.9, 35253.7},
		{"east", 42714.2, 36961.4},
		{"north", 24505.4, 47851.3},
		{"south", 27622.7, 28377.4},
	}

	for _, g := range grid {
		t.Run(g.name, func(t *testing.T) {
			lat, lon := SVY21ToWGS84(g.easting, g.northing)
			assert.Greater(t, lat, 1.1, "latitude below Singapore")
			assert.Less(t, lat, 1.5, "latitude above Singapore")
			assert.Greater(t, lon, 103.6, "longitude west of Singapore")
			assert.Less(t, lon, 104.1, "longitude east of Singapore")
		})
	}
}

func TestSVY21ToWGS84_NonFiniteInput(t *testing.T) {
	cases := []struct {
		name     string
		easting  float64
		northing float64
	}{
		{"nan easting", math.NaN(), 38744.572},
		{"nan northing", 28001.642, math.NaN()},
		{"both nan", math.NaN(), math.NaN()},
		{"positive inf", math.Inf(1), 38744.572},
		{"negative inf", 28001.642, math.Inf(-1)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lat, lon := SVY21ToWGS84(c.easting, c.northing)
			assert.Zero(t, lat)
			assert.Zero(t, lon)
		})
	}
}

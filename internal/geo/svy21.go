package geo

import (
	"math"

	"github.com/wroge/wgs84"
)

type spheroid struct {
	a, fi float64
}

func (s spheroid) A() float64 {
	return s.a
}
func (s spheroid) Fi() float64 {
	return s.fi
}

// EPSG:3414 (SVY21, Singapore survey grid)
// +proj=tmerc +lat_0=1.366666666666667 +lon_0=103.8333333333333 +k=1 +x_0=28001.642 +y_0=38744.572 +ellps=WGS84 +units=m +no_defs
func svy21Transformer() func(a, b, c float64) (a2, b2, c2 float64) {
	epsg3414 := wgs84.Datum{
		Spheroid: spheroid{
			a: 6378137, fi: 298.257223563,
		},
		Area: wgs84.AreaFunc(func(lon, lat float64) bool {
			if lon < 103.59 || lat < 1.13 || lon > 104.07 || lat > 1.47 {
				return false
			}
			return true
		}),
	}
	proj := epsg3414.TransverseMercator(103.83333333333333, 1.3666666666666666, 1, 28001.642, 38744.572)
	epsg := wgs84.EPSG()
	epsg.Add(3414, proj)
	return wgs84.Transform(epsg.Code(3414), wgs84.WGS84().LonLat())
}

var svy21ToLonLat = svy21Transformer()

// SVY21ToWGS84 converts an SVY21 easting/northing pair (meters) to a
// WGS84 latitude/longitude pair (degrees).
//
// Non-finite inputs yield the (0, 0) sentinel instead of an error:
// malformed rows in the source dataset are expected, and (0, 0) is
// nowhere near Singapore, so downstream callers can recognize it as
// "no usable coordinate" rather than a real location.
func SVY21ToWGS84(easting, northing float64) (lat, lon float64) {
	if !finite(easting) || !finite(northing) {
		return 0, 0
	}
	lon, lat, _ = svy21ToLonLat(easting, northing, 0)
	if !finite(lat) || !finite(lon) {
		return 0, 0
	}
	return lat, lon
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Map Projections
//
// Package proj provides the map projections used by basemap surfaces.
// Projections are small value types so that a whole grid of surfaces
// can share one projection by value.
package proj

import "math"

// PlateCarree is the cylindrical equirectangular projection: longitude
// and latitude map linearly onto the plane. The projection is
// parameterized by the longitude of its central meridian.
type PlateCarree struct {
	// CentralLongitude is the longitude, in degrees, that projects
	// onto x = 0.
	CentralLongitude float64
}

// Project maps the geographic coordinate (lon, lat), in degrees, onto
// the projection plane. The x coordinate is the longitude relative to
// the central meridian wrapped into [-180, 180), the y coordinate is
// the latitude clamped to [-90, 90].
func (p PlateCarree) Project(lon, lat float64) (x, y float64) {
	return normalizeLon(lon - p.CentralLongitude), clampLat(lat)
}

// Invert maps a point (x, y) of the projection plane back to a
// geographic coordinate in degrees.
func (p PlateCarree) Invert(x, y float64) (lon, lat float64) {
	return normalizeLon(x + p.CentralLongitude), clampLat(y)
}

// normalizeLon wraps d into the interval [-180, 180).
func normalizeLon(d float64) float64 {
	d = math.Mod(d+180, 360)
	if d < 0 {
		d += 360
	}
	return d - 180
}

func clampLat(d float64) float64 {
	return math.Max(-90, math.Min(90, d))
}

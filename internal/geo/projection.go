package geo

import "math"

// VisibleFrom reports whether p sits on the hemisphere facing the viewer
// centered on center. Markers on the back of the globe are culled with this.
func VisibleFrom(center, p LatLng) bool {
	return AngularDistance(center, p) < math.Pi/2
}

// Orthographic projects p onto a globe of the given radius viewed head-on at
// center. Returns screen-space offsets from the globe center and whether the
// point is on the visible hemisphere.
func Orthographic(p, center LatLng, radius float64) (x, y float64, visible bool) {
	lat := p.Lat * math.Pi / 180
	lng := p.Lng * math.Pi / 180
	lat0 := center.Lat * math.Pi / 180
	lng0 := center.Lng * math.Pi / 180

	cosC := math.Sin(lat0)*math.Sin(lat) + math.Cos(lat0)*math.Cos(lat)*math.Cos(lng-lng0)

	x = radius * math.Cos(lat) * math.Sin(lng-lng0)
	y = -radius * (math.Cos(lat0)*math.Sin(lat) - math.Sin(lat0)*math.Cos(lat)*math.Cos(lng-lng0))
	return x, y, cosC > 0
}

// Equirectangular projects p onto a flat width×height map.
func Equirectangular(p LatLng, width, height float64) (x, y float64) {
	x = (p.Lng + 180) / 360 * width
	y = (90 - p.Lat) / 180 * height
	return x, y
}

// Package geo holds the spherical geometry behind the destination globe:
// great-circle routes sampled by spherical linear interpolation, the
// front-hemisphere visibility test, and the two map projections the client
// renders with.
package geo

import "math"

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Sample counts for route animation. The reduced count is served when the
// client signals prefers-reduced-motion.
const (
	DenseSamples   = 128
	ReducedSamples = 48
)

type vec3 struct{ x, y, z float64 }

func toVector(p LatLng) vec3 {
	lat := p.Lat * math.Pi / 180
	lng := p.Lng * math.Pi / 180
	return vec3{
		x: math.Cos(lat) * math.Cos(lng),
		y: math.Cos(lat) * math.Sin(lng),
		z: math.Sin(lat),
	}
}

func toLatLng(v vec3) LatLng {
	return LatLng{
		Lat: math.Asin(v.z) * 180 / math.Pi,
		Lng: math.Atan2(v.y, v.x) * 180 / math.Pi,
	}
}

// AngularDistance returns the central angle between two points, in radians.
func AngularDistance(a, b LatLng) float64 {
	va, vb := toVector(a), toVector(b)
	dot := va.x*vb.x + va.y*vb.y + va.z*vb.z
	return math.Acos(math.Max(-1, math.Min(1, dot)))
}

// Slerp interpolates along the great circle from a to b. t=0 yields a, t=1
// yields b. Antipodal endpoints fall back to linear interpolation of the
// coordinates since the great circle is ambiguous there.
func Slerp(a, b LatLng, t float64) LatLng {
	omega := AngularDistance(a, b)
	if omega < 1e-9 {
		return a
	}
	sinOmega := math.Sin(omega)
	if sinOmega < 1e-9 {
		return LatLng{
			Lat: a.Lat + t*(b.Lat-a.Lat),
			Lng: a.Lng + t*(b.Lng-a.Lng),
		}
	}
	va, vb := toVector(a), toVector(b)
	fa := math.Sin((1-t)*omega) / sinOmega
	fb := math.Sin(t*omega) / sinOmega
	return toLatLng(vec3{
		x: fa*va.x + fb*vb.x,
		y: fa*va.y + fb*vb.y,
		z: fa*va.z + fb*vb.z,
	})
}

// RoutePoints samples the great circle from a to b at steps+1 points,
// endpoints included.
func RoutePoints(a, b LatLng, steps int) []LatLng {
	if steps < 1 {
		steps = 1
	}
	points := make([]LatLng, 0, steps+1)
	for i := 0; i <= steps; i++ {
		points = append(points, Slerp(a, b, float64(i)/float64(steps)))
	}
	return points
}

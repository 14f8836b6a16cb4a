package keplerian

import "math"

const (
	deg2rad = math.Pi / 180
)

// norm returns the norm of a given vector which is supposed to be 3x1.
func norm(v []float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// normalizeDeg reduces an angle in degrees to [0, 360).
func normalizeDeg(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// Deg2rad converts degrees to radians, normalized to [0, 2π).
func Deg2rad(a float64) float64 {
	return normalizeDeg(a) * deg2rad
}

// Rad2deg converts radians to degrees, normalized to [0, 360).
func Rad2deg(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a / deg2rad
}

package keplerian

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/unit"
)

// GMST returns the Greenwich Mean Sidereal Time for the given instant as an
// angle in radians, normalized to [0, 2π).
//
// This evaluates the IAU 1982 polynomial in degrees (Meeus, eq. 12.4)
// without the nutation correction, so it is mean, not apparent, sidereal
// time. The error stays below an arcsecond over several centuries around
// J2000, which is far tighter than the two-body propagation it serves.
func GMST(dt time.Time) float64 {
	jd := julian.TimeToJD(dt)
	d := jd - J2000
	T := d / 36525
	θ := 280.46061837 + 360.98564736629*d + 0.000387933*T*T - T*T*T/38710000
	return unit.AngleFromDeg(θ).Mod1().Rad()
}

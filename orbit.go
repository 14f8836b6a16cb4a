package keplerian

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidElements is returned for orbits this propagator does not
// support: non-positive semi-major axes and hyperbolic or parabolic
// eccentricities.
var ErrInvalidElements = errors.New("invalid orbital elements")

// OrbitalElements is the classical element set of a circular or elliptical
// Earth orbit. Distances are in meters and angles in degrees; angles need
// not be pre-normalized. The true anomaly holds exactly at Epoch.
type OrbitalElements struct {
	SemiMajorAxis float64 // a, meters
	Eccentricity  float64 // e, in [0,1)
	Inclination   float64 // i, degrees
	RAAN          float64 // Ω, degrees
	ArgPerigee    float64 // ω, degrees
	TrueAnomaly   float64 // ν at Epoch, degrees
	Epoch         time.Time
}

// Validate checks that the elements describe a supported orbit. NaN values
// fail the same range checks as out-of-domain ones.
func (oe OrbitalElements) Validate() error {
	if !(oe.SemiMajorAxis > 0) {
		return fmt.Errorf("%w: semi-major axis %g m", ErrInvalidElements, oe.SemiMajorAxis)
	}
	if !(oe.Eccentricity >= 0 && oe.Eccentricity < 1) {
		return fmt.Errorf("%w: eccentricity %g not in [0,1)", ErrInvalidElements, oe.Eccentricity)
	}
	return nil
}

// MeanMotion returns n = √(µ/a³) in radians per second.
func (oe OrbitalElements) MeanMotion() float64 {
	return math.Sqrt(EarthGM / math.Pow(oe.SemiMajorAxis, 3))
}

// Period returns the orbital period.
func (oe OrbitalElements) Period() time.Duration {
	// The time package does not trivially handle fractions of a second, so
	// let's compute this in a convoluted way...
	seconds := 2 * math.Pi * math.Sqrt(math.Pow(oe.SemiMajorAxis, 3)/EarthGM)
	duration, _ := time.ParseDuration(fmt.Sprintf("%.6fs", seconds))
	return duration
}

func (oe OrbitalElements) String() string {
	return fmt.Sprintf("a=%.1f e=%.4f i=%.3f Ω=%.3f ω=%.3f ν=%.3f", oe.SemiMajorAxis, oe.Eccentricity, oe.Inclination, oe.RAAN, oe.ArgPerigee, oe.TrueAnomaly)
}

// Propagate returns the inertial position of the orbit at the given time
// under two-body dynamics. Back-propagation (target before Epoch) is
// supported.
//
// The element angles are converted to radians, the epoch true anomaly to
// mean anomaly, the mean anomaly advanced linearly by the mean motion,
// Kepler's equation solved for the eccentric anomaly, and the perifocal
// position rotated through the 3-1-3 sequence (Ω, i, ω) into ECI.
func Propagate(oe OrbitalElements, target time.Time) (PositionECI, error) {
	if err := oe.Validate(); err != nil {
		return PositionECI{}, err
	}
	i := Deg2rad(oe.Inclination)
	Ω := Deg2rad(oe.RAAN)
	ω := Deg2rad(oe.ArgPerigee)
	ν0 := Deg2rad(oe.TrueAnomaly)
	e := oe.Eccentricity

	dt := target.Sub(oe.Epoch).Seconds()
	n := oe.MeanMotion()
	E0 := EccentricAnomalyFromTrue(ν0, e)
	M0 := MeanAnomalyFromEccentric(E0, e)
	M := M0 + n*dt

	E, err := SolveKepler(M, e)
	if err != nil {
		return PositionECI{}, err
	}
	ν := TrueAnomalyFromEccentric(E, e)

	r := oe.SemiMajorAxis * (1 - e*math.Cos(E))
	sinν, cosν := math.Sincos(ν)
	pqw := []float64{r * cosν, r * sinν, 0}
	eci := PQW2ECI(i, ω, Ω, pqw)
	return PositionECI{eci[0], eci[1], eci[2]}, nil
}

// PropagateECEF propagates the orbit and rotates the result into the
// earth-fixed frame using the sidereal angle at the target time.
func PropagateECEF(oe OrbitalElements, target time.Time) (PositionECEF, error) {
	eci, err := Propagate(oe, target)
	if err != nil {
		return PositionECEF{}, err
	}
	return ECI2ECEF(eci, GMST(target)), nil
}

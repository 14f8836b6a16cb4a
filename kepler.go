package keplerian

import (
	"errors"
	"fmt"
	"math"
)

const (
	// keplerTolerance is the absolute tolerance on the Newton correction term.
	keplerTolerance = 1e-12
	// maxKeplerIterations bounds the Newton iteration for near-parabolic inputs.
	maxKeplerIterations = 100
)

// ErrNoConvergence is returned when the Kepler solver exceeds its iteration
// cap without meeting tolerance.
var ErrNoConvergence = errors.New("kepler equation did not converge")

// SolveKepler solves Kepler's equation E - e·sin(E) = M for the eccentric
// anomaly E via Newton-Raphson iteration seeded at E₀ = M. M is the mean
// anomaly in radians (any real value), e the eccentricity in [0, 1). The
// residual of the returned anomaly is within 1e-12.
func SolveKepler(M, e float64) (float64, error) {
	return solveKepler(M, e, keplerTolerance, maxKeplerIterations)
}

func solveKepler(M, e, tol float64, maxIter int) (float64, error) {
	if !(e >= 0 && e < 1) {
		return 0, fmt.Errorf("%w: eccentricity %g not in [0,1)", ErrInvalidElements, e)
	}
	// Reduce the mean anomaly to one revolution. Without this, E - e·sin(E) - M
	// loses enough bits for large M (long propagation spans) that the Newton
	// correction floors above tolerance. fmod is exact, and shifting E by whole
	// revolutions leaves every downstream trigonometric use unchanged.
	M = math.Mod(M, 2*math.Pi)
	E := M
	for iter := 0; iter < maxIter; iter++ {
		delta := (E - e*math.Sin(E) - M) / (1 - e*math.Cos(E))
		E -= delta
		if math.Abs(delta) <= tol {
			return E, nil
		}
	}
	return 0, fmt.Errorf("%w after %d iterations (M=%g, e=%g)", ErrNoConvergence, maxIter, M, e)
}

// EccentricAnomalyFromTrue converts a true anomaly into the matching
// eccentric anomaly, both in radians. The half-angle atan2 form resolves
// the sign ambiguity an acos of the cosine relation would leave.
func EccentricAnomalyFromTrue(ν, e float64) float64 {
	return 2 * math.Atan2(math.Sqrt(1-e)*math.Sin(ν/2), math.Sqrt(1+e)*math.Cos(ν/2))
}

// TrueAnomalyFromEccentric converts an eccentric anomaly into the matching
// true anomaly, both in radians.
func TrueAnomalyFromEccentric(E, e float64) float64 {
	return 2 * math.Atan2(math.Sqrt(1+e)*math.Sin(E/2), math.Sqrt(1-e)*math.Cos(E/2))
}

// MeanAnomalyFromEccentric applies Kepler's equation directly.
func MeanAnomalyFromEccentric(E, e float64) float64 {
	return E - e*math.Sin(E)
}

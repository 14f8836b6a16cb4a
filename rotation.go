package keplerian

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// PositionECI is a Cartesian position in the Earth-centered inertial frame,
// in meters.
type PositionECI struct {
	X, Y, Z float64
}

// Vector returns the position as a 3x1 vector.
func (p PositionECI) Vector() []float64 {
	return []float64{p.X, p.Y, p.Z}
}

// Norm returns the distance from the center of the Earth in meters.
func (p PositionECI) Norm() float64 {
	return norm(p.Vector())
}

// PositionECEF is a Cartesian position in the Earth-centered earth-fixed
// frame, in meters.
type PositionECEF struct {
	X, Y, Z float64
}

// Vector returns the position as a 3x1 vector.
func (p PositionECEF) Vector() []float64 {
	return []float64{p.X, p.Y, p.Z}
}

// Norm returns the distance from the center of the Earth in meters.
func (p PositionECEF) Norm() float64 {
	return norm(p.Vector())
}

// PQW2ECI rotates a perifocal frame vector into the inertial frame for the
// given inclination, argument of perigee and RAAN, all in radians.
func PQW2ECI(i, ω, Ω float64, v []float64) []float64 {
	return MxV33(R3R1R3(-ω, -i, -Ω), v)
}

// ECI2ECEF rotates an inertial position into the earth-fixed frame for the
// given Greenwich sidereal angle in radians.
func ECI2ECEF(p PositionECI, θgst float64) PositionECEF {
	r := MxV33(R3(θgst), p.Vector())
	return PositionECEF{r[0], r[1], r[2]}
}

// ECEF2ECI rotates an earth-fixed position back into the inertial frame for
// the given Greenwich sidereal angle in radians.
func ECEF2ECI(p PositionECEF, θgst float64) PositionECI {
	r := MxV33(R3(-θgst), p.Vector())
	return PositionECI{r[0], r[1], r[2]}
}

// R3R1R3 builds the direction cosine matrix of a 3-1-3 Euler rotation,
// i.e. R3(θ3)·R1(θ2)·R3(θ1). From Schaub & Junkins.
func R3R1R3(θ1, θ2, θ3 float64) *mat.Dense {
	sθ1, cθ1 := math.Sincos(θ1)
	sθ2, cθ2 := math.Sincos(θ2)
	sθ3, cθ3 := math.Sincos(θ3)
	return mat.NewDense(3, 3, []float64{cθ3*cθ1 - sθ3*cθ2*sθ1, cθ3*sθ1 + sθ3*cθ2*cθ1, sθ3 * sθ2,
		-sθ3*cθ1 - cθ3*cθ2*sθ1, -sθ3*sθ1 + cθ3*cθ2*cθ1, cθ3 * sθ2,
		sθ2 * sθ1, -sθ2 * cθ1, cθ2})
}

// R1 rotation about the 1st axis.
func R1(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R2 rotation about the 2nd axis.
func R2(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{c, 0, -s, 0, 1, 0, s, 0, c})
}

// R3 rotation about the 3rd axis.
func R3(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// MxV33 multiplies a matrix with a vector. Note that there is no dimension check!
func MxV33(m *mat.Dense, v []float64) []float64 {
	vVec := mat.NewVecDense(len(v), v)
	var rVec mat.VecDense
	rVec.MulVec(m, vVec)
	return []float64{rVec.AtVec(0), rVec.AtVec(1), rVec.AtVec(2)}
}

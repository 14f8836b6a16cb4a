package keplerian

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConstellation is returned when a constellation specification
// cannot be expanded into a valid satellite set.
var ErrInvalidConstellation = errors.New("invalid constellation specification")

// ConstellationSpec describes a Walker Delta pattern i:t/p/f, the symmetric
// arrangement of t satellites over p equally spaced orbital planes with
// phasing factor f controlling the anomaly offset between adjacent planes.
type ConstellationSpec struct {
	Name          string
	SemiMajorAxis float64 // meters, shared by every satellite
	Inclination   float64 // degrees, shared by every satellite
	Satellites    int     // t, total satellite count
	Planes        int     // p, planes evenly spaced in RAAN
	Phasing       int     // f, inter-plane phasing factor
	Epoch         time.Time
}

// Satellite is one expanded constellation member. Plane and Slot are
// 0-based; Label is the human-readable identifier used in exports.
type Satellite struct {
	Label    string
	Plane    int
	Slot     int
	Elements OrbitalElements
}

func (s Satellite) String() string {
	return s.Label
}

// WalkerDelta expands the specification into its ordered satellite set.
// Plane p sits at RAAN p·(360/p_total); slot s within a plane sits at true
// anomaly s·(360/perPlane) + p·(f·360/t), reduced to [0,360). Eccentricity
// and argument of perigee are fixed at zero: only circular Walker Delta
// constellations are supported. Ordering is plane-major then slot-minor and
// is deterministic, so callers may index the result.
//
// The satellite count must divide evenly into the planes; a remainder is
// rejected rather than silently dropping satellites from each plane.
func WalkerDelta(spec ConstellationSpec) ([]Satellite, error) {
	if spec.Planes <= 0 {
		return nil, fmt.Errorf("%w: plane count %d", ErrInvalidConstellation, spec.Planes)
	}
	if spec.Satellites <= 0 {
		return nil, fmt.Errorf("%w: satellite count %d", ErrInvalidConstellation, spec.Satellites)
	}
	if spec.Satellites%spec.Planes != 0 {
		return nil, fmt.Errorf("%w: %d satellites do not divide evenly into %d planes", ErrInvalidConstellation, spec.Satellites, spec.Planes)
	}
	perPlane := spec.Satellites / spec.Planes
	ΔΩ := 360.0 / float64(spec.Planes)
	Δν := 360.0 / float64(perPlane)
	phaseShift := float64(spec.Phasing) * 360.0 / float64(spec.Satellites)

	sats := make([]Satellite, 0, spec.Satellites)
	for p := 0; p < spec.Planes; p++ {
		Ω := float64(p) * ΔΩ
		for s := 0; s < perPlane; s++ {
			ν := normalizeDeg(float64(s)*Δν + float64(p)*phaseShift)
			label := fmt.Sprintf("P%02d-S%02d", p+1, s+1)
			if spec.Name != "" {
				label = spec.Name + "-" + label
			}
			sats = append(sats, Satellite{
				Label: label,
				Plane: p,
				Slot:  s,
				Elements: OrbitalElements{
					SemiMajorAxis: spec.SemiMajorAxis,
					Inclination:   spec.Inclination,
					RAAN:          Ω,
					TrueAnomaly:   ν,
					Epoch:         spec.Epoch,
				},
			})
		}
	}
	return sats, nil
}

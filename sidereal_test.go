package keplerian

import (
	"math"
	"testing"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestGMSTJ2000(t *testing.T) {
	// At the J2000.0 reference epoch every time-dependent term vanishes and
	// only the leading coefficient of the IAU 1982 polynomial remains.
	noon := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	if θ := GMST(noon); !scalar.EqualWithinAbs(θ, Deg2rad(280.46061837), 1e-12) {
		t.Fatalf("GMST at J2000.0 = %.15f rad (%.10f°)", θ, Rad2deg(θ))
	}
}

func TestGMSTRegression(t *testing.T) {
	dt := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if θ := GMST(dt); !scalar.EqualWithinAbs(θ, 2.780160660439382, 1e-9) {
		t.Fatalf("GMST(%s) = %.15f rad", dt, θ)
	}
}

func TestGMSTRange(t *testing.T) {
	dates := []time.Time{
		time.Date(1950, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1987, 4, 10, 19, 21, 0, 0, time.UTC),
		time.Date(1999, 12, 31, 23, 59, 59, 0, time.UTC),
		time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 29, 18, 45, 12, 0, time.UTC),
		time.Date(2038, 1, 19, 3, 14, 7, 0, time.UTC),
	}
	for _, dt := range dates {
		if θ := GMST(dt); θ < 0 || θ >= 2*math.Pi {
			t.Fatalf("GMST(%s) = %f out of [0, 2π)", dt, θ)
		}
	}
}

func TestGMSTAgainstMeeus(t *testing.T) {
	// The sidereal package implements the same IAU 1982 expression from the
	// day boundary instead of directly from the epoch, so agreement to well
	// below a microradian confirms both the polynomial and the wrapping.
	dates := []time.Time{
		time.Date(1987, 4, 10, 19, 21, 0, 0, time.UTC),
		time.Date(1999, 12, 31, 23, 59, 59, 0, time.UTC),
		time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2010, 6, 15, 8, 30, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2030, 12, 25, 6, 0, 0, 0, time.UTC),
	}
	for _, dt := range dates {
		ref := sidereal.Mean(julian.TimeToJD(dt)).Angle().Mod1().Rad()
		θ := GMST(dt)
		diff := math.Abs(θ - ref)
		if diff > math.Pi {
			diff = 2*math.Pi - diff
		}
		if diff > 1e-8 {
			t.Fatalf("GMST(%s) = %.12f, sidereal.Mean = %.12f", dt, θ, ref)
		}
	}
}

func TestGMSTRate(t *testing.T) {
	// The finite difference over one hour must reproduce the rotation rate
	// constant; the quadratic and cubic terms contribute well under the
	// tolerance on this scale.
	t0 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	diff := GMST(t0.Add(time.Hour)) - GMST(t0)
	if diff < 0 {
		diff += 2 * math.Pi
	}
	if rate := diff / 3600; !scalar.EqualWithinAbs(rate, EarthRotationRate, 1e-12) {
		t.Fatalf("dθ/dt = %.18f, want %.18f", rate, EarthRotationRate)
	}
}

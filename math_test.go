package keplerian

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestNorm(t *testing.T) {
	if got := norm([]float64{3, 4, 0}); got != 5 {
		t.Fatalf("|(3,4,0)| = %f", got)
	}
	if got := norm([]float64{2, 3, 6}); got != 7 {
		t.Fatalf("|(2,3,6)| = %f", got)
	}
}

func TestAngles(t *testing.T) {
	for _, pair := range []struct{ deg, rad float64 }{
		{0, 0},
		{30, math.Pi / 6},
		{90, math.Pi / 2},
		{180, math.Pi},
		{270, 3 * math.Pi / 2},
		{360, 0},
		{450, math.Pi / 2},
		{-90, 3 * math.Pi / 2},
		{-450, 3 * math.Pi / 2},
		{-720, 0},
	} {
		if got := Deg2rad(pair.deg); !scalar.EqualWithinAbs(got, pair.rad, 1e-12) {
			t.Fatalf("Deg2rad(%f) = %f, expected %f", pair.deg, got, pair.rad)
		}
	}
	for _, pair := range []struct{ rad, deg float64 }{
		{0, 0},
		{math.Pi / 2, 90},
		{math.Pi, 180},
		{2 * math.Pi, 0},
		{-math.Pi / 2, 270},
		{5 * math.Pi, 180},
	} {
		if got := Rad2deg(pair.rad); !scalar.EqualWithinAbs(got, pair.deg, 1e-10) {
			t.Fatalf("Rad2deg(%f) = %f, expected %f", pair.rad, got, pair.deg)
		}
	}
	// Round trips stay in the principal range.
	for deg := -719.5; deg < 720; deg += 7.25 {
		rad := Deg2rad(deg)
		if rad < 0 || rad >= 2*math.Pi {
			t.Fatalf("Deg2rad(%f) = %f out of [0, 2π)", deg, rad)
		}
		if back := Rad2deg(rad); !scalar.EqualWithinAbs(back, normalizeDeg(deg), 1e-9) {
			t.Fatalf("round trip of %f returned %f", deg, back)
		}
	}
}

func TestNormalizeDeg(t *testing.T) {
	for _, pair := range []struct{ in, out float64 }{
		{0, 0},
		{359.9, 359.9},
		{360, 0},
		{725, 5},
		{-5, 355},
		{-360, 0},
		{-725, 355},
	} {
		if got := normalizeDeg(pair.in); !scalar.EqualWithinAbs(got, pair.out, 1e-10) {
			t.Fatalf("normalizeDeg(%f) = %f, expected %f", pair.in, got, pair.out)
		}
	}
}

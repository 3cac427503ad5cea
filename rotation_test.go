package orrery

import (
	"math"
	"testing"

	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"
)

func TestR1R2R3(t *testing.T) {
	x := math.Pi / 3.0
	s, c := math.Sincos(x)
	r1 := R1(x)
	r2 := R2(x)
	r3 := R3(x)
	// Test items equal to 1.
	if r1.At(0, 0) != r2.At(1, 1) || r1.At(0, 0) != r3.At(2, 2) || r3.At(2, 2) != 1 {
		t.Fatal("expected R1.At(0, 0) = R2.At(1, 1) = R3.At(2, 2) = 1\n")
	}
	// Test R1.
	if r1.At(1, 1) != r1.At(2, 2) || r1.At(2, 2) != c {
		t.Fatal("expected R1 cosines misplaced\n")
	}
	if r1.At(2, 1) != -r1.At(1, 2) || r1.At(1, 2) != s {
		t.Fatal("expected R1 sines misplaced\n")
	}
	// Test R2.
	if r2.At(0, 0) != r2.At(2, 2) || r2.At(2, 2) != c {
		t.Fatal("expected R2 cosines misplaced\n")
	}
	if r2.At(2, 0) != -r2.At(0, 2) || r2.At(2, 0) != s {
		t.Fatal("expected R2 sines misplaced\n")
	}
	// Test R3.
	if r3.At(1, 1) != r3.At(0, 0) || r3.At(0, 0) != c {
		t.Fatal("expected R3 cosines misplaced\n")
	}
	if r3.At(0, 1) != -r3.At(1, 0) || r3.At(0, 1) != s {
		t.Fatal("expected R3 sines misplaced\n")
	}
}

func TestR313Composition(t *testing.T) {
	// R313(i, ω, Ω) must equal the transpose of R3(ω)·R1(i)·R3(Ω).
	i, ω, Ω := math.Pi/17, math.Pi/16, math.Pi/15
	var r1r3, seq, diff mat64.Dense
	r1r3.Mul(R1(i), R3(Ω))
	seq.Mul(R3(ω), &r1r3)
	diff.Sub(seq.T(), R313(i, ω, Ω))
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if !floats.EqualWithinAbs(diff.At(r, c), 0, 1e-12) {
				t.Fatalf("R313 composition off at (%d,%d): %g", r, c, diff.At(r, c))
			}
		}
	}
}

func TestOrbitToParent(t *testing.T) {
	// From Vallado.
	i := Deg2rad(87.87)
	ω := Deg2rad(53.38)
	Ω := Deg2rad(227.89)
	R := orbitToParent(i, ω, Ω, []float64{-466.7639, 11447.0219, 0})
	V := orbitToParent(i, ω, Ω, []float64{-5.996222, 4.753601, 0})
	if !vectorsEqual(R, []float64{6525.368, 6861.532, 6449.119}) {
		t.Fatalf("R = %+v", R)
	}
	if !vectorsEqual(V, []float64{4.902279, 5.533140, -1.975710}) {
		t.Fatalf("V = %+v", V)
	}
}

func TestAttitudeMatrix(t *testing.T) {
	// Zero tilt, zero spin is the identity.
	m := AttitudeMatrix(0, 0)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			exp := 0.0
			if r == c {
				exp = 1
			}
			if !floats.EqualWithinAbs(m.At(r, c), exp, 1e-12) {
				t.Fatalf("identity off at (%d,%d): %g", r, c, m.At(r, c))
			}
		}
	}
	// A pure spin keeps the polar axis fixed.
	m = AttitudeMatrix(0, 123.4)
	z := MxV33(m, []float64{0, 0, 1})
	if !vectorsEqual(z, []float64{0, 0, 1}) {
		t.Fatalf("spin moved the pole: %+v", z)
	}
	// Any attitude is a proper rotation: unit vectors stay unit.
	m = AttitudeMatrix(23.44, 76.2)
	for _, v := range [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} {
		if !floats.EqualWithinAbs(norm(MxV33(m, v)), 1, 1e-12) {
			t.Fatalf("attitude scales %+v", v)
		}
	}
}

package orrery

import (
	"testing"
)

func TestCross(t *testing.T) {
	i := []float64{1, 0, 0}
	j := []float64{0, 1, 0}
	k := []float64{0, 0, 1}
	if !vectorsEqual(cross(i, j), k) {
		t.Fatal("i x j != k")
	}
	if !vectorsEqual(cross(j, k), i) {
		t.Fatal("j x k != i")
	}
	// From Vallado
	if !vectorsEqual(cross([]float64{6524.834, 6862.875, 6448.296}, []float64{4.901327, 5.533756, -1.976341}), []float64{-4.924667792015100e4, 4.450050424118601e4, 0.246964476137900e4}) {
		t.Fatal("cross fail")
	}
}

func TestUnit(t *testing.T) {
	if !vectorsEqual(unit([]float64{3, 4, 0}), []float64{0.6, 0.8, 0}) {
		t.Fatal("unit fail")
	}
	if n := norm(unit([]float64{0, 0, 0})); n != 0 {
		t.Fatalf("unit of the zero vector has norm %f", n)
	}
}

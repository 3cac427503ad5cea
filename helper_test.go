package orrery

import (
	"github.com/gonum/floats"
)

func vectorsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := len(a) - 1; i >= 0; i-- {
		if !floats.EqualWithinAbs(a[i], b[i], 1e-3) {
			return false
		}
	}
	return true
}

// testBodies returns a minimal valid catalog table for engine tests.
func testBodies() []Body {
	return []Body{Sun, Earth, Mars, Jupiter, Saturn,
		earthMoons[0], marsMoons[0], marsMoons[1]}
}

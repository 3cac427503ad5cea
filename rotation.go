package orrery

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// R313 returns the orbit-plane to parent-frame rotation matrix for the
// classical 3-1-3 Euler sequence Rz(Ω)·Rx(i)·Rz(ω).
// From Schaub and Junkins (the one in Vallado has a sign typo).
func R313(i, ω, Ω float64) *mat64.Dense {
	si, ci := math.Sincos(i)
	sω, cω := math.Sincos(ω)
	sΩ, cΩ := math.Sincos(Ω)
	return mat64.NewDense(3, 3, []float64{cΩ*cω - sΩ*sω*ci, -1*cΩ*sω - sΩ*cω*ci, sΩ * si,
		sΩ*cω + cΩ*sω*ci, cΩ*cω*ci - sΩ*sω, -1 * cΩ * si,
		sω * si, cω * si, ci})
}

// orbitToParent rotates a vector expressed in the orbital plane (periapsis
// along +X) into the parent frame of the orbit. Angles in radians.
func orbitToParent(i, ω, Ω float64, v []float64) []float64 {
	return MxV33(R313(i, ω, Ω), v)
}

// R1 rotation about the 1st axis.
func R1(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R2 rotation about the 2nd axis.
func R2(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, 0, -s, 0, 1, 0, s, 0, c})
}

// R3 rotation about the 3rd axis.
func R3(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// MxV33 multiplies a matrix with a vector. Note that there is no dimension check!
func MxV33(m *mat64.Dense, v []float64) (o []float64) {
	vVec := mat64.NewVector(len(v), v)
	var rVec mat64.Vector
	rVec.MulVec(m, vVec)
	return []float64{rVec.At(0, 0), rVec.At(1, 0), rVec.At(2, 0)}
}

// AttitudeMatrix returns the body attitude for a given axial tilt and spin
// angle (both in degrees), composed tilt-then-spin: the body spins about its
// own polar axis, and the spun frame is tipped over by the fixed tilt.
func AttitudeMatrix(tiltDeg, spinDeg float64) *mat64.Dense {
	var m mat64.Dense
	m.Mul(R1(Deg2rad(tiltDeg)), R3(Deg2rad(spinDeg)))
	return &m
}

package orrery

import (
	"math"
)

const (
	// keplerε is the absolute residual tolerance on Kepler's equation.
	keplerε = 1e-10
	// keplerMaxIter bounds the Newton-Raphson iteration. On hitting the
	// bound the best estimate is returned, never an error: a single body
	// must not stall a frame.
	keplerMaxIter = 30
)

// State holds a two-body state vector in the frame of the orbited primary:
// position in km and velocity in km/s. Converged reports whether the anomaly
// solve met tolerance within the iteration bound.
type State struct {
	R, V      []float64
	Converged bool
}

// solveKepler solves M = E - e·sin(E) for the eccentric anomaly E via
// Newton-Raphson seeded at E=M. M in radians, 0 ≤ e < 1.
func solveKepler(M, e float64) (E float64, converged bool) {
	E = M
	for it := 0; it < keplerMaxIter; it++ {
		f := E - e*math.Sin(E) - M
		if math.Abs(f) < keplerε {
			return E, true
		}
		fp := 1 - e*math.Cos(E)
		if math.Abs(fp) < 1e-12 {
			break
		}
		E -= f / fp
	}
	return E, math.Abs(E-e*math.Sin(E)-M) < keplerε
}

// meanMotion returns n = sqrt(μ/a³) in rad/s for a in km and μ in km³/s².
func meanMotion(μ, a float64) float64 {
	return math.Sqrt(μ / (a * a * a))
}

// orbitalPeriod returns the period T = 2π/n in seconds.
func orbitalPeriod(μ, a float64) float64 {
	return 2 * math.Pi / meanMotion(μ, a)
}

// meanAnomalyAt propagates the epoch mean anomaly to jd and normalizes the
// result into [0, 2π).
func meanAnomalyAt(el Elements, μ, jd float64) float64 {
	Δt := (jd - el.epoch) * daySec
	M := math.Mod(Deg2rad(el.m0)+meanMotion(μ, el.a)*Δt, 2*math.Pi)
	if M < 0 {
		M += 2 * math.Pi
	}
	return M
}

// Propagate computes the state vector for the provided osculating elements at
// the target Julian Date, in the frame of the primary whose gravitational
// parameter is μ. The general 3-1-3 rotation handles near-circular and
// near-equatorial orbits without special casing.
func Propagate(el Elements, μ, jd float64) State {
	M := meanAnomalyAt(el, μ, jd)
	E, converged := solveKepler(M, el.e)

	// True anomaly via the half-angle relation, radius from E.
	sinE2, cosE2 := math.Sincos(E / 2)
	ν := 2 * math.Atan2(math.Sqrt(1+el.e)*sinE2, math.Sqrt(1-el.e)*cosE2)
	r := el.a * (1 - el.e*math.Cos(E))

	sinν, cosν := math.Sincos(ν)
	R := []float64{r * cosν, r * sinν, 0}
	p := el.a * (1 - el.e*el.e)
	vf := math.Sqrt(μ / p)
	V := []float64{-vf * sinν, vf * (el.e + cosν), 0}

	i, ω, Ω := Deg2rad(el.i), Deg2rad(el.ω), Deg2rad(el.Ω)
	return State{
		R:         orbitToParent(i, ω, Ω, R),
		V:         orbitToParent(i, ω, Ω, V),
		Converged: converged,
	}
}

// OrbitPoints samples n positions along the full orbit described by el, in km
// in the primary's frame. Meant for orbit-line rendering.
func OrbitPoints(el Elements, n int) [][]float64 {
	pts := make([][]float64, n)
	i, ω, Ω := Deg2rad(el.i), Deg2rad(el.ω), Deg2rad(el.Ω)
	for k := 0; k < n; k++ {
		E := 2 * math.Pi * float64(k) / float64(n)
		sinE2, cosE2 := math.Sincos(E / 2)
		ν := 2 * math.Atan2(math.Sqrt(1+el.e)*sinE2, math.Sqrt(1-el.e)*cosE2)
		r := el.a * (1 - el.e*math.Cos(E))
		sinν, cosν := math.Sincos(ν)
		pts[k] = orbitToParent(i, ω, Ω, []float64{r * cosν, r * sinν, 0})
	}
	return pts
}

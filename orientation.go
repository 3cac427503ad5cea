package orrery

import (
	"math"
)

// Orientation is a body's full attitude at an epoch: the fixed axial tilt and
// the accumulated spin angle about the body's polar axis, both in degrees.
// Compose tilt-then-spin (see AttitudeMatrix) to recover the body frame.
type Orientation struct {
	Tilt float64
	Spin float64
}

// spinRate returns the signed spin rate in degrees per simulated second.
// For a tidally locked body the rate derives from the orbital mean motion n
// (rad/s): one rotation per orbit, prograde. Otherwise the rate comes from
// the sidereal period, and a negative period flips the sign of the rate:
// same formula, opposite sense.
func spinRate(spin RotationState, n float64) float64 {
	if spin.locked {
		return n / deg2rad
	}
	if spin.period == 0 {
		return 0
	}
	rate := 360 / math.Abs(spin.period)
	if spin.period < 0 {
		return -rate
	}
	return rate
}

// spinAngle accumulates the spin from the initial phase over elapsed
// simulated seconds and normalizes into [0, 360). The normalization is
// explicit about negative rates: math.Mod keeps the sign of the dividend,
// which is where off-by-360 bugs hide.
func spinAngle(phase0, rateDegSec, elapsed float64) float64 {
	a := math.Mod(phase0+rateDegSec*elapsed, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// orientationAt resolves a body's attitude at elapsed simulated seconds.
// timeScale is the same compression the body's orbit runs on: a moon on
// compressed time spins on compressed time too, locked or not, so
// spin-orbit resonances survive the compression.
func orientationAt(spin RotationState, phase0, n, timeScale, elapsed float64) Orientation {
	return Orientation{
		Tilt: spin.tilt,
		Spin: spinAngle(phase0, spinRate(spin, n)*timeScale, elapsed),
	}
}

// initialPhase aligns a body's spin to the reference sidereal convention at
// simulation start. Earth gets GMST so its prime meridian is plausible at
// epoch zero; for every other body the alignment is cosmetic and zero is
// fine.
func initialPhase(id string, startJD float64) float64 {
	if id == "earth" {
		return gmst(startJD)
	}
	return 0
}

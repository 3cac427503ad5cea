package orrery

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestSpinRate(t *testing.T) {
	// Earth's sidereal day.
	r := spinRate(NewRotation(86164.1, 23.44), 0)
	if !floats.EqualWithinAbs(r, 0.004178074, 1e-9) {
		t.Fatalf("earth spin rate %g deg/s", r)
	}
	// Venus spins the other way: same magnitude, negative sign.
	retro := spinRate(NewRotation(-86164.1, 0), 0)
	if retro != -r {
		t.Fatalf("retrograde rate %g, expected %g", retro, -r)
	}
	// A tidally locked body rotates once per orbit.
	n := meanMotion(μEarth, 384400)
	locked := spinRate(LockedRotation(1.54), n)
	if !floats.EqualWithinAbs(locked*deg2rad, n, 1e-15) {
		t.Fatalf("locked rate %g deg/s does not match mean motion", locked)
	}
}

func TestSpinAngle(t *testing.T) {
	// Prograde accumulates, retrograde unwinds, both stay in [0, 360).
	if a := spinAngle(0, 1, 90); a != 90 {
		t.Fatalf("expected 90, got %f", a)
	}
	if a := spinAngle(0, 1, 450); a != 90 {
		t.Fatalf("expected wrap to 90, got %f", a)
	}
	a := spinAngle(10, -1, 30)
	if !floats.EqualWithinAbs(a, 340, 1e-12) {
		t.Fatalf("retrograde wrap gave %f, expected 340", a)
	}
	for _, elapsed := range []float64{0, 17.2, 1e7, 1e9} {
		for _, rate := range []float64{0.004178, -0.004178, 0} {
			if a := spinAngle(123.4, rate, elapsed); a < 0 || a >= 360 {
				t.Fatalf("rate=%g elapsed=%g angle %f outside [0,360)", rate, elapsed, a)
			}
		}
	}
}

func TestSpinAngleLockedFullOrbit(t *testing.T) {
	// One orbit of a locked moon is exactly one rotation.
	n := meanMotion(μEarth, 384400)
	rate := spinRate(LockedRotation(0), n)
	T := 2 * math.Pi / n
	if a := spinAngle(0, rate, T); !floats.EqualWithinAbs(a, 0, 1e-6) && !floats.EqualWithinAbs(a, 360, 1e-6) {
		t.Fatalf("locked moon at %f deg after one orbit", a)
	}
}

func TestOrientationAtCompressed(t *testing.T) {
	// Phobos orbits on compressed time and carries an explicit rotation
	// period in 1:1 resonance; the spin must ride the same compression or
	// the tidal lock visibly breaks.
	ph := marsMoons[0]
	ts := timeScaleFor(ph.El)
	if ts != tinyMoonTimeScale {
		t.Fatalf("phobos time scale %f", ts)
	}
	n := meanMotion(μMars, ph.El.SemiMajorAxis())
	elapsed := 100000.0
	o := orientationAt(ph.Spin, 0, n, ts, elapsed)
	want := math.Mod(360/ph.Spin.period*ts*elapsed, 360)
	if !floats.EqualWithinAbs(o.Spin, want, 1e-9) {
		t.Fatalf("compressed spin %f, expected %f", o.Spin, want)
	}
	// Spin rate matches orbit rate to within the element rounding.
	ratio := (360 / ph.Spin.period) / (n / deg2rad)
	if !floats.EqualWithinAbs(ratio, 1, 1e-3) {
		t.Fatalf("spin-orbit rate ratio %f", ratio)
	}
	if o.Tilt != ph.Spin.tilt {
		t.Fatalf("tilt %f", o.Tilt)
	}
}

func TestInitialPhase(t *testing.T) {
	// Earth aligns to Greenwich sidereal time; everything else starts at 0.
	if p := initialPhase("earth", J2000); !floats.EqualWithinAbs(p, 280.46061837, 1e-6) {
		t.Fatalf("earth phase at J2000 is %f", p)
	}
	if p := initialPhase("mars", J2000); p != 0 {
		t.Fatalf("mars phase %f, expected 0", p)
	}
}

func TestGMST(t *testing.T) {
	if θ := gmst(J2000); !floats.EqualWithinAbs(θ, 280.46061837, 1e-9) {
		t.Fatalf("gmst(J2000) = %f", θ)
	}
	// Half a day later the sky has turned a bit more than 180 degrees.
	if θ := gmst(J2000 + 0.5); !floats.EqualWithinAbs(θ, 100.953442, 1e-5) {
		t.Fatalf("gmst(J2000+0.5) = %f", θ)
	}
	for jd := J2000 - 36525; jd < J2000+36525; jd += 1000.25 {
		if θ := gmst(jd); θ < 0 || θ >= 360 {
			t.Fatalf("gmst(%f) = %f outside [0,360)", jd, θ)
		}
	}
}

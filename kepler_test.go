package orrery

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestSolveKepler(t *testing.T) {
	if E, _ := solveKepler(1.2, 0); E != 1.2 {
		t.Fatal("circular orbit must have E = M")
	}
	for _, e := range []float64{0.0167, 0.3, 0.84833} {
		for M := 0.0; M < 2*math.Pi; M += 0.05 {
			E, converged := solveKepler(M, e)
			if !converged {
				t.Fatalf("e=%g M=%g did not converge", e, M)
			}
			if resid := math.Abs(E - e*math.Sin(E) - M); resid >= keplerε {
				t.Fatalf("e=%g M=%g residual %g", e, M, resid)
			}
		}
	}
}

func TestSolveKeplerBestEstimate(t *testing.T) {
	// Near-parabolic comet with a small mean anomaly: Newton from E=M
	// oscillates past the iteration bound.
	E, converged := solveKepler(0.35, 0.99498)
	if converged {
		t.Fatal("expected the iteration bound to be hit")
	}
	if math.IsNaN(E) || math.IsInf(E, 0) {
		t.Fatalf("best estimate must stay finite, got %f", E)
	}
}

func TestPropagateCircular(t *testing.T) {
	el := NewElements(AU, 0, 5, 30, 60, 17, J2000)
	for _, jd := range []float64{J2000, J2000 + 55.3, J2000 + 400} {
		st := Propagate(el, μSun, jd)
		if !st.Converged {
			t.Fatalf("jd=%f did not converge", jd)
		}
		if !floats.EqualWithinAbs(norm(st.R), AU, 1) {
			t.Fatalf("jd=%f circular radius %f km off a", jd, norm(st.R))
		}
	}
}

func TestPropagatePerihelion(t *testing.T) {
	// Earth-like orbit at periapsis: r = a(1-e) = 0.9833 AU.
	el := NewElements(AU, 0.0167, 0, 0, 0, 0, J2000)
	st := Propagate(el, μSun, J2000)
	if !floats.EqualWithinAbs(norm(st.R)/AU, 0.9833, 1e-6) {
		t.Fatalf("perihelion at %f AU, expected 0.9833", norm(st.R)/AU)
	}
}

func TestPropagateVisViva(t *testing.T) {
	el := NewElements(AU, 0.3, 12, 40, 70, 123, J2000)
	st := Propagate(el, μSun, J2000+55)
	r := norm(st.R)
	vExp := math.Sqrt(2*μSun/r - μSun/AU)
	if !floats.EqualWithinAbs(norm(st.V), vExp, 1e-9) {
		t.Fatalf("speed %f km/s, vis-viva says %f", norm(st.V), vExp)
	}
}

func TestPropagateRoundTrip(t *testing.T) {
	el := NewElements(AU, 0.3, 12, 40, 70, 123, J2000)
	T := orbitalPeriod(μSun, AU) / daySec
	st0 := Propagate(el, μSun, J2000+55)
	st1 := Propagate(el, μSun, J2000+55+T)
	if !floats.EqualWithinAbs(norm(sub(st0.R, st1.R)), 0, 1e-2) {
		t.Fatalf("position moved %f km over one full period", norm(sub(st0.R, st1.R)))
	}
	if !floats.EqualWithinAbs(norm(sub(st0.V, st1.V)), 0, 1e-8) {
		t.Fatalf("velocity moved %f km/s over one full period", norm(sub(st0.V, st1.V)))
	}
}

func TestMeanAnomalyNormalized(t *testing.T) {
	el := NewElements(AU, 0.1, 0, 0, 0, 350, J2000)
	// At the element epoch the mean anomaly is M0 itself.
	if M := meanAnomalyAt(el, μSun, J2000); !floats.EqualWithinAbs(M, Deg2rad(350), 1e-12) {
		t.Fatalf("mean anomaly at epoch %f, expected M0", M)
	}
	for _, jd := range []float64{J2000 - 5000, J2000, J2000 + 5000} {
		M := meanAnomalyAt(el, μSun, jd)
		if M < 0 || M >= 2*math.Pi {
			t.Fatalf("jd=%f mean anomaly %f outside [0,2π)", jd, M)
		}
	}
}

func TestOrbitalPeriod(t *testing.T) {
	if T := orbitalPeriod(μSun, AU) / daySec; !floats.EqualWithinAbs(T, 365.274, 1e-3) {
		t.Fatalf("1 AU period %f days", T)
	}
}

func TestOrbitPoints(t *testing.T) {
	el := NewElements(AU, 0.3, 12, 40, 70, 0, J2000)
	pts := OrbitPoints(el, 64)
	if len(pts) != 64 {
		t.Fatalf("expected 64 points, got %d", len(pts))
	}
	// First sample is E=0, the periapsis.
	if !floats.EqualWithinAbs(norm(pts[0]), el.Periapsis(), 1) {
		t.Fatalf("first sample at %f km, periapsis is %f", norm(pts[0]), el.Periapsis())
	}
	for k, p := range pts {
		r := norm(p)
		if r < el.Periapsis()-1 || r > el.Apoapsis()+1 {
			t.Fatalf("sample %d at %f km escapes the orbit", k, r)
		}
	}
}

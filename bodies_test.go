package orrery

import (
	"testing"
)

func TestDefaultBodiesTable(t *testing.T) {
	c, err := NewCatalog(DefaultBodies())
	if err != nil {
		t.Fatal(err)
	}
	for parent, want := range map[string]int{
		"earth": 1, "mars": 2, "jupiter": 30, "saturn": 26,
		"uranus": 25, "neptune": 14, "pluto": 5,
	} {
		if got := len(c.Children(parent)); got != want {
			t.Fatalf("%s carries %d moons, expected %d", parent, got, want)
		}
	}
	// Venus, Uranus and Pluto spin backwards.
	for _, id := range []string{"venus", "uranus", "pluto"} {
		b, _ := c.Body(id)
		if !b.Spin.Retrograde() {
			t.Fatalf("%s is not retrograde", id)
		}
	}
	earth, _ := c.Body("earth")
	if earth.Spin.Retrograde() {
		t.Fatal("earth is retrograde")
	}
	// Every comet stays on a bound orbit so the solver applies.
	for _, b := range comets {
		if e := b.El.Eccentricity(); e >= 1 {
			t.Fatalf("%s has e=%g", b.ID, e)
		}
	}
	// Triton orbits backwards via its inclination, not a negative period.
	triton, ok := c.Body("triton")
	if !ok {
		t.Fatal("triton missing")
	}
	if i := triton.El.i; i < 90 || i > 270 {
		t.Fatalf("triton inclination %f is not retrograde", i)
	}
}

package orrery

import (
	"testing"
	"time"

	"github.com/gonum/floats"
)

func TestClockEpoch(t *testing.T) {
	// Noon UTC on 2000-01-01 is the J2000 epoch.
	c := NewClock(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), 1)
	if !floats.EqualWithinAbs(c.EpochJD(), J2000, 1e-9) {
		t.Fatalf("start epoch %f, expected %f", c.EpochJD(), J2000)
	}
	c.Advance(time.Hour) // capped to 100ms
	c.Advance(50 * time.Millisecond)
	if !floats.EqualWithinAbs(c.Elapsed(), 0.15, 1e-12) {
		t.Fatalf("elapsed %f s, expected 0.15", c.Elapsed())
	}
}

func TestClockRate(t *testing.T) {
	start := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	c := NewClock(start, 86400) // one simulated day per real second
	jd0 := c.EpochJD()
	c.Advance(100 * time.Millisecond)
	c.Advance(100 * time.Millisecond)
	c.Advance(100 * time.Millisecond)
	c.Advance(100 * time.Millisecond)
	c.Advance(100 * time.Millisecond)
	c.Advance(100 * time.Millisecond)
	c.Advance(100 * time.Millisecond)
	c.Advance(100 * time.Millisecond)
	c.Advance(100 * time.Millisecond)
	jd := c.Advance(100 * time.Millisecond)
	if !floats.EqualWithinAbs(jd-jd0, 1, 1e-9) {
		t.Fatalf("one simulated day expected, got %f days", jd-jd0)
	}
	c.SetRate(0.5)
	if c.Rate() != 0.5 {
		t.Fatalf("rate %f after SetRate", c.Rate())
	}
	c.Advance(100 * time.Millisecond)
	if !floats.EqualWithinAbs(c.Elapsed(), 86400+0.05, 1e-9) {
		t.Fatalf("elapsed %f s after rate change", c.Elapsed())
	}
}

func TestClockPauseResume(t *testing.T) {
	c := NewClock(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), 1000)
	c.Advance(100 * time.Millisecond)
	frozen := c.EpochJD()
	c.Pause()
	if !c.Paused() {
		t.Fatal("clock did not pause")
	}
	for i := 0; i < 50; i++ {
		c.Advance(100 * time.Millisecond)
	}
	if c.EpochJD() != frozen {
		t.Fatalf("paused clock drifted from %f to %f", frozen, c.EpochJD())
	}
	// Resume continues from the frozen epoch, no jump.
	c.Resume()
	if c.EpochJD() != frozen {
		t.Fatalf("resume jumped from %f to %f", frozen, c.EpochJD())
	}
	c.Advance(10 * time.Millisecond)
	if !floats.EqualWithinAbs(c.Elapsed(), 100+10, 1e-9) {
		t.Fatalf("elapsed %f s after resume", c.Elapsed())
	}
}

func TestClockSimTime(t *testing.T) {
	start := time.Date(2026, 8, 29, 6, 30, 0, 0, time.UTC)
	c := NewClock(start, 1)
	if got := c.SimTime(); got.Sub(start) > time.Millisecond || start.Sub(got) > time.Millisecond {
		t.Fatalf("sim time %v, expected %v", got, start)
	}
}

package orrery

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/julian"
)

// maxFrameDt caps a single tick's real time so a render stall does not slam
// the simulation forward.
const maxFrameDt = 100 * time.Millisecond

// Clock maps wall-clock playback to a simulated epoch. Simulated seconds
// accumulate monotonically as realDt × rate while running; pausing freezes
// the accumulator, resuming continues from the frozen value.
type Clock struct {
	startJD float64
	elapsed float64 // simulated seconds since start
	rate    float64
	paused  bool
}

// NewClock starts a simulation clock at the given UTC instant with the given
// playback rate (simulated seconds per real second).
func NewClock(start time.Time, rate float64) *Clock {
	return &Clock{startJD: julian.TimeToJD(start.UTC()), rate: rate}
}

// Advance accumulates one frame of real time and returns the new epoch as a
// Julian Date. A paused clock returns the frozen epoch.
func (c *Clock) Advance(realDt time.Duration) float64 {
	if !c.paused {
		if realDt > maxFrameDt {
			realDt = maxFrameDt
		}
		c.elapsed += realDt.Seconds() * c.rate
	}
	return c.EpochJD()
}

// EpochJD returns the current simulated epoch as a Julian Date.
func (c *Clock) EpochJD() float64 {
	return c.startJD + c.elapsed/daySec
}

// Elapsed returns simulated seconds since simulation start.
func (c *Clock) Elapsed() float64 { return c.elapsed }

// SetRate changes the playback rate. Takes effect from the next Advance.
func (c *Clock) SetRate(rate float64) { c.rate = rate }

// Rate returns the playback rate.
func (c *Clock) Rate() float64 { return c.rate }

// Pause freezes the simulated epoch.
func (c *Clock) Pause() { c.paused = true }

// Resume continues from the frozen epoch with no time jump.
func (c *Clock) Resume() { c.paused = false }

// Paused reports whether the clock is frozen.
func (c *Clock) Paused() bool { return c.paused }

// SimTime returns the simulated epoch as a time.Time.
func (c *Clock) SimTime() time.Time {
	return julian.JDToTime(c.EpochJD())
}

// gmst returns the Greenwich Mean Sidereal Time in degrees for a Julian
// Date. USNO polynomial, good to ~0.1 arcsec over 1800-2200.
func gmst(jd float64) float64 {
	dj := jd - J2000
	t := dj / 36525.0
	θ := math.Mod(280.46061837+360.98564736629*dj+
		0.000387933*t*t-t*t*t/38710000.0, 360)
	if θ < 0 {
		θ += 360
	}
	return θ
}

package orrery

// Scales maps physical kilometers into scene units. Orbital distances and
// body radii use two independent linear factors: collapsing both onto one
// factor makes every body sub-pixel at navigable orbital scales, so the
// difference is an invariant, not a bug. Moon offsets from their parent use
// the size factor for the same reason.
type Scales struct {
	DistanceKmPerUnit float64 // heliocentric distances
	SizeKmPerUnit     float64 // radii and moon offsets
}

// DefaultScales returns the scale pair the renderer was tuned for: 1 scene
// unit per 100,000 km of orbit, radii magnified 50x relative to that.
func DefaultScales() Scales {
	return Scales{DistanceKmPerUnit: 1e5, SizeKmPerUnit: 2e3}
}

// DistToScene converts a heliocentric position in km to scene units.
func (s Scales) DistToScene(km []float64) []float64 {
	return scale(km, 1/s.DistanceKmPerUnit)
}

// SizeToScene converts a radius or parent-relative moon offset in km to
// scene units.
func (s Scales) SizeToScene(km float64) float64 {
	return km / s.SizeKmPerUnit
}

// OffsetToScene converts a moon's parent-relative offset in km to scene
// units, on the size scale.
func (s Scales) OffsetToScene(km []float64) []float64 {
	return scale(km, 1/s.SizeKmPerUnit)
}

// sunOffset computes the first-order barycentric wobble of the star from the
// already-resolved heliocentric positions of its two most massive
// satellites. The mass ratios are μ ratios; the offset is where the star is
// drawn, all other bodies stay in the unperturbed heliocentric frame.
func sunOffset(posJ, posS []float64, μJ, μS, μSun float64) []float64 {
	mJ := μJ / μSun
	mS := μS / μSun
	f := 1 / (1 + mJ + mS)
	return scale(add(scale(posJ, mJ), scale(posS, mS)), f)
}

// floorOffset scales a moon's scene offset up to a minimum separation from
// its parent so inner moons do not render inside the parent sphere.
func floorOffset(offset []float64, min float64) []float64 {
	n := norm(offset)
	if n > 0 && n < min {
		return scale(offset, min/n)
	}
	return offset
}

const (
	// Moons inside this semi-major axis get their orbital (and locked
	// spin) time compressed so they stay watchable instead of strobing.
	tinyMoonAKm       = 150000.0
	tinyMoonTimeScale = 0.1
)

// timeScaleFor returns the elapsed-time compression for a moon's orbit.
func timeScaleFor(el Elements) float64 {
	if el.a < tinyMoonAKm {
		return tinyMoonTimeScale
	}
	return 1
}

// compressEpoch rescales the elapsed time since the element epoch, leaving
// the epoch itself fixed.
func compressEpoch(el Elements, jd, timeScale float64) float64 {
	return el.epoch + (jd-el.epoch)*timeScale
}

package orrery

import (
	"math"
)

// LODClass buckets bodies by how aggressively they may be skipped. Primaries
// are effectively never culled; the smaller a moon, the closer the camera
// must be for its state to be worth computing.
type LODClass uint8

const (
	LODPrimary LODClass = iota
	LODMajorMoon
	LODSmallMoon
	LODTinyMoon
)

// lodClassFor assigns the static class: heliocentric bodies are primaries,
// moons bucket by physical radius.
func lodClassFor(b *Body) LODClass {
	if b.Class != BodyMoon {
		return LODPrimary
	}
	switch {
	case b.Radius > 100:
		return LODMajorMoon
	case b.Radius > 10:
		return LODSmallMoon
	}
	return LODTinyMoon
}

// LODGate filters which bodies still need a state this frame, from the
// camera distance to each body's last-known scene position. Thresholds are
// static configuration in scene units.
type LODGate struct {
	thresholds [4]float64
}

// NewLODGate builds a gate from per-class skip distances in scene units.
// Primaries are exempt regardless.
func NewLODGate(major, small, tiny float64) *LODGate {
	return &LODGate{thresholds: [4]float64{math.Inf(1), major, small, tiny}}
}

// Visible reports whether the body must be computed and emitted this frame.
// The focused body and its direct children are always exempt so focusing a
// planet keeps its whole moon set selectable.
func (g *LODGate) Visible(b *Body, camDist float64, focus string) bool {
	if focus != "" && (b.ID == focus || b.Parent == focus) {
		return true
	}
	return camDist <= g.thresholds[lodClassFor(b)]
}

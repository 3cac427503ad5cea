package orrery

import (
	"fmt"
	"math"
	"sort"

	"github.com/soniakeys/meeus/planetposition"
	"github.com/soniakeys/meeus/pluto"
)

const (
	daySec  = 86400.0
	hourSec = 3600.0

	// J2000 is the reference epoch for the planetary element sets.
	J2000 = 2451545.0
)

// BodyClass partitions the catalog: the Sun is the single root of the frame
// tree, planets/dwarfs/comets orbit it, moons orbit a planet or dwarf.
type BodyClass uint8

const (
	BodyStar BodyClass = iota
	BodyPlanet
	BodyDwarf
	BodyMoon
	BodyComet
)

func (c BodyClass) String() string {
	switch c {
	case BodyStar:
		return "star"
	case BodyPlanet:
		return "planet"
	case BodyDwarf:
		return "dwarf"
	case BodyMoon:
		return "moon"
	case BodyComet:
		return "comet"
	}
	return "unknown"
}

// Elements defines an osculating orbit: semi-major axis a in km, angles in
// degrees, epoch as a Julian Date. Immutable once the catalog is built.
type Elements struct {
	a     float64 // km
	e     float64
	i     float64 // deg, to the ecliptic (moons: to the parent equator)
	Ω     float64 // deg, longitude of the ascending node
	ω     float64 // deg, argument of periapsis
	m0    float64 // deg, mean anomaly at epoch
	epoch float64 // JD
}

// NewElements builds an element set from a (km), e, i, Ω, ω, M0 (degrees) and
// the reference epoch (JD).
func NewElements(a, e, i, Ω, ω, m0, epoch float64) Elements {
	return Elements{a, e, i, Ω, ω, m0, epoch}
}

// SemiMajorAxis returns a in km.
func (el Elements) SemiMajorAxis() float64 { return el.a }

// Eccentricity returns e.
func (el Elements) Eccentricity() float64 { return el.e }

// Periapsis returns the periapsis radius a(1-e) in km.
func (el Elements) Periapsis() float64 { return el.a * (1 - el.e) }

// Apoapsis returns the apoapsis radius a(1+e) in km.
func (el Elements) Apoapsis() float64 { return el.a * (1 + el.e) }

// RotationState carries a body's spin convention: sidereal period in seconds
// (negative encodes retrograde), axial tilt in degrees, and the tidal lock
// flag. A locked body derives its spin rate from its orbital mean motion
// instead of an explicit period.
type RotationState struct {
	period float64 // s, signed
	tilt   float64 // deg
	locked bool
}

// NewRotation builds a rotation state from a signed sidereal period in
// seconds and an axial tilt in degrees.
func NewRotation(period, tilt float64) RotationState {
	return RotationState{period: period, tilt: tilt}
}

// LockedRotation builds a tidally locked rotation state: one rotation per
// orbit, prograde.
func LockedRotation(tilt float64) RotationState {
	return RotationState{tilt: tilt, locked: true}
}

// Tilt returns the axial tilt in degrees.
func (r RotationState) Tilt() float64 { return r.tilt }

// Retrograde reports whether the body spins against its orbital sense.
func (r RotationState) Retrograde() bool { return r.period < 0 }

// Body is one catalog row: identity, physical constants, elements and spin.
// Bodies are immutable after catalog validation.
type Body struct {
	ID     string
	Name   string
	Class  BodyClass
	Parent string  // empty for the star and for heliocentric bodies
	Radius float64 // km
	μ      float64 // km³/s², gravitational parameter of this body
	El     Elements
	Spin   RotationState

	pp *planetposition.V87Planet // lazily loaded VSOP87 series
}

// NewBody builds a catalog row. μ may be zero for bodies that have no
// satellites of their own.
func NewBody(id, name string, class BodyClass, parent string, radius, μ float64, el Elements, spin RotationState) Body {
	return Body{ID: id, Name: name, Class: class, Parent: parent, Radius: radius, μ: μ, El: el, Spin: spin}
}

// GM returns μ (which is unexported because it's a lowercase letter).
func (b Body) GM() float64 {
	return b.μ
}

// Catalog indexes the immutable element table and resolves the two-level
// frame tree: star → {planets, dwarfs, comets} → {moons}.
type Catalog struct {
	bodies   map[string]*Body
	star     string
	roots    []string // heliocentric bodies, declaration order
	children map[string][]string
}

// NewCatalog validates the body table and builds the frame tree. Any invalid
// row aborts with a CatalogError: the engine never starts on bad data.
func NewCatalog(bodies []Body) (*Catalog, error) {
	c := &Catalog{
		bodies:   make(map[string]*Body, len(bodies)),
		children: make(map[string][]string),
	}
	for k := range bodies {
		b := bodies[k]
		if b.ID == "" {
			return nil, &CatalogError{Body: b.Name, Reason: "empty body id"}
		}
		if _, dup := c.bodies[b.ID]; dup {
			return nil, &CatalogError{Body: b.ID, Reason: "duplicate body id"}
		}
		c.bodies[b.ID] = &b
	}
	for _, b := range bodies {
		switch {
		case b.Class == BodyStar:
			if c.star != "" {
				return nil, &CatalogError{Body: b.ID, Reason: "more than one star"}
			}
			if b.μ <= 0 {
				return nil, &CatalogError{Body: b.ID, Reason: fmt.Sprintf("non-positive μ %g", b.μ)}
			}
			c.star = b.ID
			continue
		case b.El.a <= 0:
			return nil, &CatalogError{Body: b.ID, Reason: fmt.Sprintf("non-positive semi-major axis %g", b.El.a)}
		case b.El.e < 0 || b.El.e >= 1:
			return nil, &CatalogError{Body: b.ID, Reason: fmt.Sprintf("eccentricity %g outside [0,1)", b.El.e)}
		case b.Spin.period == 0 && !b.Spin.locked:
			return nil, &CatalogError{Body: b.ID, Reason: "no rotation period and not tidally locked"}
		}
		if b.Class == BodyMoon {
			p, ok := c.bodies[b.Parent]
			if !ok {
				return nil, &CatalogError{Body: b.ID, Reason: fmt.Sprintf("parent %q does not exist", b.Parent)}
			}
			if p.Class == BodyMoon {
				return nil, &CatalogError{Body: b.ID, Reason: fmt.Sprintf("parent %q is itself a moon", b.Parent)}
			}
			if p.μ <= 0 {
				return nil, &CatalogError{Body: b.ID, Reason: fmt.Sprintf("parent %q has no gravitational parameter", b.Parent)}
			}
			c.children[b.Parent] = append(c.children[b.Parent], b.ID)
		} else {
			if b.Parent != "" {
				return nil, &CatalogError{Body: b.ID, Reason: "heliocentric body with a parent"}
			}
			c.roots = append(c.roots, b.ID)
		}
	}
	if c.star == "" {
		return nil, &CatalogError{Reason: "catalog has no star"}
	}
	// Children sorted by semi-major axis so moon indices match the
	// conventional inner-to-outer numbering.
	for _, kids := range c.children {
		sort.SliceStable(kids, func(x, y int) bool {
			return c.bodies[kids[x]].El.a < c.bodies[kids[y]].El.a
		})
	}
	return c, nil
}

// Star returns the catalog's central body id.
func (c *Catalog) Star() string { return c.star }

// Roots returns the heliocentric body ids in declaration order.
func (c *Catalog) Roots() []string { return c.roots }

// Children returns the moon ids of the given body, inner to outer.
func (c *Catalog) Children(id string) []string { return c.children[id] }

// Body returns the catalog row for id.
func (c *Catalog) Body(id string) (*Body, bool) {
	b, ok := c.bodies[id]
	return b, ok
}

// Len returns the number of catalog rows.
func (c *Catalog) Len() int { return len(c.bodies) }

// μFor returns the gravitational parameter governing b's orbit: the star's μ
// for heliocentric bodies, the parent's for moons.
func (c *Catalog) μFor(b *Body) float64 {
	if b.Class == BodyMoon {
		return c.bodies[b.Parent].μ
	}
	return c.bodies[c.star].μ
}

// vsopIndex maps a planet id to its VSOP87 series number, 1-indexed as in the
// theory itself.
func vsopIndex(id string) (int, bool) {
	switch id {
	case "mercury":
		return 1, true
	case "venus":
		return 2, true
	case "earth":
		return 3, true
	case "mars":
		return 4, true
	case "jupiter":
		return 5, true
	case "saturn":
		return 6, true
	case "uranus":
		return 7, true
	case "neptune":
		return 8, true
	}
	return 0, false
}

// HelioState returns the heliocentric state of a root body at jd in km and
// km/s. With VSOP87 enabled in the configuration, the eight planets use the
// full periodic series and Pluto uses Meeus' dedicated theory; everything
// else falls back to the body's osculating elements.
func (c *Catalog) HelioState(b *Body, jd float64) State {
	if b.ID == c.star {
		return State{R: []float64{0, 0, 0}, V: []float64{0, 0, 0}, Converged: true}
	}
	μSun := c.bodies[c.star].μ
	if cfg := orreryConfig(); cfg.VSOP87 {
		if b.ID == "pluto" {
			l, lat, r := pluto.Heliocentric(jd)
			return lbrToState(l.Rad(), lat.Rad(), r*AU, μSun, b.El.a)
		}
		if n, ok := vsopIndex(b.ID); ok {
			if b.pp == nil {
				planet, err := planetposition.LoadPlanetPath(n-1, cfg.VSOP87Dir)
				if err != nil {
					panic(fmt.Errorf("could not load VSOP87 series %d: %s", n, err))
				}
				b.pp = planet
			}
			l, lat, r := b.pp.Position2000(jd)
			return lbrToState(l.Rad(), lat.Rad(), r*AU, μSun, b.El.a)
		}
	}
	return Propagate(b.El, μSun, jd)
}

// lbrToState converts heliocentric ecliptic L, B (radians) and R (km) into a
// Cartesian state. The velocity direction is taken along the orbit-normal
// cross product, its magnitude from vis-viva.
func lbrToState(l, b, r, μSun, a float64) State {
	sB, cB := math.Sincos(b)
	sL, cL := math.Sincos(l)
	R := []float64{r * cB * cL, r * cB * sL, r * sB}
	v := math.Sqrt(2*μSun/r - μSun/a)
	vDir := unit(cross(R, []float64{0, 0, -1}))
	return State{R: R, V: scale(vDir, v), Converged: true}
}

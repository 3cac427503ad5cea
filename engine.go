package orrery

import (
	"os"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"golang.org/x/time/rate"
)

const (
	// Comets closer to the star than this sublimate and grow a coma.
	sublimationKm = 3 * AU
	// Minimum moon separation from its parent on the size scale, about 1%
	// of Jupiter's radius. Keeps inner moons outside the parent sphere.
	minMoonOffsetKm = 715.0
)

// Pose is one frame's output for a visible body. Position is in scene units,
// angles in degrees. The renderer owns everything downstream of this record.
type Pose struct {
	ID          string
	Position    []float64
	AxialTilt   float64
	SpinAngle   float64
	RadiusScene float64
	Active      bool    // comets: within sublimation range
	Activity    float64 // comets: coma strength, 0 to 0.8
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithLogger replaces the default logfmt stdout logger.
func WithLogger(l kitlog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithMetrics attaches a metrics collector.
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithStartTime pins the simulation start instant (defaults to now).
func WithStartTime(t time.Time) Option {
	return func(e *Engine) { e.start = t }
}

// WithPlaybackRate overrides the configured simulated-seconds-per-second.
func WithPlaybackRate(r float64) Option {
	return func(e *Engine) { e.rateOverride = &r }
}

// WithScales overrides the configured scene scale pair.
func WithScales(s Scales) Option {
	return func(e *Engine) { e.scales = s }
}

// Engine computes the time-dependent pose of every catalog body, one frame
// per Tick. It is single-threaded and frame-driven: no internal goroutines,
// no shared mutable state across body solves.
type Engine struct {
	cat     *Catalog
	clock   *Clock
	scales  Scales
	gate    *LODGate
	logger  kitlog.Logger
	warnLim *rate.Limiter
	metrics *Metrics

	start        time.Time
	rateOverride *float64

	focus     string
	camera    []float64
	lastScene map[string][]float64
	phase     map[string]float64 // initial spin phase per body, deg
}

// New builds an engine over a validated catalog.
func New(cat *Catalog, opts ...Option) (*Engine, error) {
	if cat == nil {
		return nil, &CatalogError{Reason: "nil catalog"}
	}
	cfg := orreryConfig()
	e := &Engine{
		cat:       cat,
		scales:    Scales{DistanceKmPerUnit: cfg.DistanceKmPerUnit, SizeKmPerUnit: cfg.SizeKmPerUnit},
		gate:      NewLODGate(cfg.LODMajor, cfg.LODSmall, cfg.LODTiny),
		logger:    kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout)),
		warnLim:   rate.NewLimiter(rate.Every(time.Second), 5),
		lastScene: make(map[string][]float64, cat.Len()),
	}
	for _, o := range opts {
		o(e)
	}
	if e.start.IsZero() {
		e.start = time.Now().UTC()
	}
	r := cfg.PlaybackRate
	if e.rateOverride != nil {
		r = *e.rateOverride
	}
	e.clock = NewClock(e.start, r)
	e.logger = kitlog.With(e.logger, "component", "orrery")
	e.phase = make(map[string]float64, cat.Len())
	for id := range cat.bodies {
		e.phase[id] = initialPhase(id, e.clock.EpochJD())
	}
	return e, nil
}

// Clock exposes the simulation clock.
func (e *Engine) Clock() *Clock { return e.clock }

// Catalog exposes the element catalog.
func (e *Engine) Catalog() *Catalog { return e.cat }

// SetCamera updates the camera scene position used for LOD distances.
func (e *Engine) SetCamera(pos []float64) { e.camera = pos }

// SetPlaybackRate changes simulated seconds per real second.
func (e *Engine) SetPlaybackRate(r float64) { e.clock.SetRate(r) }

// Pause freezes the simulated epoch.
func (e *Engine) Pause() { e.clock.Pause() }

// Resume continues from the frozen epoch.
func (e *Engine) Resume() { e.clock.Resume() }

// Focus re-centers on a body, lifting the LOD exemption onto it and its
// direct children. An unknown id is a no-op returning a FocusError.
func (e *Engine) Focus(id string) error {
	if _, ok := e.cat.Body(id); !ok {
		return &FocusError{Body: id, Reason: ReasonUnknownBody}
	}
	e.focus = id
	return nil
}

// Unfocus clears the focus.
func (e *Engine) Unfocus() { e.focus = "" }

// Focused returns the currently focused body id, empty when none.
func (e *Engine) Focused() string { return e.focus }

// SelectMoon resolves the 1-based moon index around parent (inner to outer)
// and focuses it. An empty parent means the currently focused body. Out of
// range or unfocused requests are no-ops returning a FocusError.
func (e *Engine) SelectMoon(parent string, index int) (string, error) {
	if parent == "" {
		parent = e.focus
	}
	if parent == "" {
		return "", &FocusError{Reason: ReasonNoFocus}
	}
	if _, ok := e.cat.Body(parent); !ok {
		return "", &FocusError{Body: parent, Reason: ReasonUnknownBody}
	}
	kids := e.cat.Children(parent)
	if index < 1 || index > len(kids) {
		return "", &FocusError{Body: parent, Index: index, Count: len(kids), Reason: ReasonIndexOutOfRange}
	}
	id := kids[index-1]
	e.focus = id
	return id, nil
}

// OrbitPath samples n scene-unit points along id's orbit, relative to the
// body the orbit is centered on. Roots use the distance scale and moons the
// size scale, matching how Tick places them. The star has no orbit and
// yields an empty path.
func (e *Engine) OrbitPath(id string, n int) ([][]float64, error) {
	b, ok := e.cat.Body(id)
	if !ok {
		return nil, &FocusError{Body: id, Reason: ReasonUnknownBody}
	}
	if id == e.cat.Star() {
		return [][]float64{}, nil
	}
	pts := OrbitPoints(b.El, n)
	for k, p := range pts {
		if b.Class == BodyMoon {
			pts[k] = e.scales.OffsetToScene(p)
		} else {
			pts[k] = e.scales.DistToScene(p)
		}
	}
	return pts, nil
}

// Tick advances the clock by one frame of real time and returns the pose of
// every non-culled body. Two ordered passes: heliocentric bodies first (the
// star's barycentric offset needs Jupiter and Saturn resolved), then moons
// nested under their parent's scene position.
func (e *Engine) Tick(realDt time.Duration) []Pose {
	began := time.Now()
	jd := e.clock.Advance(realDt)
	elapsed := e.clock.Elapsed()

	poses := make([]Pose, 0, e.cat.Len())
	helio := make(map[string][]float64, len(e.cat.Roots()))

	// Pass 1: solve heliocentric states. Roots are primaries, exempt from
	// the LOD gate, and the star's wobble needs Jupiter and Saturn anyway.
	for _, id := range e.cat.Roots() {
		b, _ := e.cat.Body(id)
		st := e.cat.HelioState(b, jd)
		e.noteConvergence(b, st, jd)
		helio[id] = st.R
		e.lastScene[id] = e.scales.DistToScene(st.R)
	}

	// The star is drawn at the barycentric offset; every other body stays
	// in the unperturbed heliocentric frame.
	sunKm := []float64{0, 0, 0}
	if jup, sat := helio["jupiter"], helio["saturn"]; jup != nil && sat != nil {
		bJ, _ := e.cat.Body("jupiter")
		bS, _ := e.cat.Body("saturn")
		star, _ := e.cat.Body(e.cat.Star())
		sunKm = sunOffset(jup, sat, bJ.GM(), bS.GM(), star.GM())
	}
	star, _ := e.cat.Body(e.cat.Star())
	e.lastScene[star.ID] = e.scales.DistToScene(sunKm)
	poses = append(poses, e.poseFor(star, e.lastScene[star.ID], 0, 1, elapsed, 0))

	for _, id := range e.cat.Roots() {
		b, _ := e.cat.Body(id)
		rSun := norm(sub(helio[id], sunKm))
		poses = append(poses, e.poseFor(b, e.lastScene[id], 0, 1, elapsed, rSun))
	}

	// Pass 2: moons, nested under the parent scene position resolved above.
	for _, pid := range e.cat.Roots() {
		kids := e.cat.Children(pid)
		if len(kids) == 0 {
			continue
		}
		parent, _ := e.cat.Body(pid)
		parentScene := e.lastScene[pid]
		μ := parent.GM()
		for _, mid := range kids {
			m, _ := e.cat.Body(mid)
			if !e.visible(m) {
				e.metrics.recordCulled()
				continue
			}
			ts := timeScaleFor(m.El)
			st := Propagate(m.El, μ, compressEpoch(m.El, jd, ts))
			e.noteConvergence(m, st, jd)
			off := floorOffset(e.scales.OffsetToScene(st.R), e.scales.SizeToScene(minMoonOffsetKm))
			pos := add(parentScene, off)
			e.lastScene[mid] = pos
			// Spin runs on the same compressed time as the orbit.
			n := meanMotion(μ, m.El.a)
			poses = append(poses, e.poseFor(m, pos, n, ts, elapsed, 0))
		}
	}

	e.metrics.recordFrame(time.Since(began))
	return poses
}

// visible consults the LOD gate using the camera distance to the body's
// last-known scene position. With no camera or no prior position the body is
// always computed.
func (e *Engine) visible(b *Body) bool {
	if e.camera == nil {
		return true
	}
	last, ok := e.lastScene[b.ID]
	if !ok {
		return true
	}
	return e.gate.Visible(b, norm(sub(e.camera, last)), e.focus)
}

// poseFor assembles the pose record. n is the orbital mean motion in rad/s
// and ts the orbit's time compression (both only meaningful for moons);
// rSun is the heliocentric distance in km (only meaningful for comets).
func (e *Engine) poseFor(b *Body, pos []float64, n, ts, elapsed, rSun float64) Pose {
	o := orientationAt(b.Spin, e.phase[b.ID], n, ts, elapsed)
	p := Pose{
		ID:          b.ID,
		Position:    pos,
		AxialTilt:   o.Tilt,
		SpinAngle:   o.Spin,
		RadiusScene: e.scales.SizeToScene(b.Radius),
	}
	if b.Class == BodyComet && rSun > 0 && rSun < sublimationKm {
		p.Active = true
		floor := 0.1 * AU
		if rSun > floor {
			floor = rSun
		}
		p.Activity = 0.3 * AU / floor
		if p.Activity > 0.8 {
			p.Activity = 0.8
		}
	}
	return p
}

// noteConvergence flags a Kepler solve that hit its iteration bound. The
// body still renders at the best estimate; the event is counted and logged,
// throttled so one stubborn body cannot flood a 60fps log.
func (e *Engine) noteConvergence(b *Body, st State, jd float64) {
	if st.Converged {
		return
	}
	e.metrics.recordNonConverged(b.ID)
	if e.warnLim.Allow() {
		e.logger.Log("msg", "kepler solve hit iteration bound", "body", b.ID, "jd", jd)
	}
}

package orrery

// Catalog data: NASA fact sheet physical constants, J2000 osculating
// elements for planets and dwarfs, JPL Horizons elements for comets
// (epoch JD 2460990.5), parent-centric elements for moons (epoch JD
// 2458849.5). Pure data, no logic.

// Gravitational parameters in km³/s².
const (
	μSun      = 1.327e11
	μMercury  = 2.2032e4
	μVenus    = 3.249e5
	μEarth    = 3.986e5
	μMars     = 4.282837e4
	μJupiter  = 1.2668653e8
	μSaturn   = 3.7931187e7
	μUranus   = 5.793939e6
	μNeptune  = 6.836529e6
	μPluto    = 8.71e6
	μEris     = 8.31e6
	μHaumea   = 4.00e6
	μMakemake = 3.19e6
	μCeres    = 6.26e4
)

// Sun is the frame root. Its plotted position carries the barycentric wobble.
var Sun = Body{ID: "sun", Name: "Sun", Class: BodyStar, Radius: 696340, μ: μSun,
	Spin: RotationState{period: 25 * daySec, tilt: 7.25}}

var Mercury = Body{ID: "mercury", Name: "Mercury", Class: BodyPlanet, Radius: 2440, μ: μMercury,
	El:   Elements{a: 0.38709927 * AU, e: 0.20563593, i: 7.00497902, Ω: 48.33076593, ω: 29.12703035, m0: 174.79252722, epoch: J2000},
	Spin: RotationState{period: 58.646 * daySec, tilt: 0.03}}

var Venus = Body{ID: "venus", Name: "Venus", Class: BodyPlanet, Radius: 6052, μ: μVenus,
	El:   Elements{a: 0.72333566 * AU, e: 0.00677672, i: 3.39467605, Ω: 76.67984255, ω: 54.92262463, m0: 50.37663232, epoch: J2000},
	Spin: RotationState{period: -243.025 * daySec, tilt: 177.4}}

var Earth = Body{ID: "earth", Name: "Earth", Class: BodyPlanet, Radius: 6371, μ: μEarth,
	El:   Elements{a: 1.00000261 * AU, e: 0.01671123, i: 0.00001531, Ω: 0, ω: 102.93768193, m0: 357.52688973, epoch: J2000},
	Spin: RotationState{period: 0.99726968 * daySec, tilt: 23.44}}

var Mars = Body{ID: "mars", Name: "Mars", Class: BodyPlanet, Radius: 3390, μ: μMars,
	El:   Elements{a: 1.52371034 * AU, e: 0.09339410, i: 1.84969142, Ω: 49.55953891, ω: 286.4968315, m0: 19.39019754, epoch: J2000},
	Spin: RotationState{period: 1.025957 * daySec, tilt: 25.19}}

var Jupiter = Body{ID: "jupiter", Name: "Jupiter", Class: BodyPlanet, Radius: 71492, μ: μJupiter,
	El:   Elements{a: 5.20288700 * AU, e: 0.04838624, i: 1.30439695, Ω: 100.47390909, ω: 274.25457074, m0: 19.66796068, epoch: J2000},
	Spin: RotationState{period: 9.925 * hourSec, tilt: 3.13}}

var Saturn = Body{ID: "saturn", Name: "Saturn", Class: BodyPlanet, Radius: 58232, μ: μSaturn,
	El:   Elements{a: 9.53667594 * AU, e: 0.05386179, i: 2.48599187, Ω: 113.66242448, ω: 338.93645383, m0: 317.35536592, epoch: J2000},
	Spin: RotationState{period: 10.656 * hourSec, tilt: 26.73}}

var Uranus = Body{ID: "uranus", Name: "Uranus", Class: BodyPlanet, Radius: 25559, μ: μUranus,
	El:   Elements{a: 19.18916464 * AU, e: 0.04725744, i: 0.77263783, Ω: 74.01692503, ω: 96.93735127, m0: 142.28382821, epoch: J2000},
	Spin: RotationState{period: -17.24 * hourSec, tilt: 97.77}}

var Neptune = Body{ID: "neptune", Name: "Neptune", Class: BodyPlanet, Radius: 24622, μ: μNeptune,
	El:   Elements{a: 30.06992276 * AU, e: 0.00859048, i: 1.77004347, Ω: 131.78422574, ω: 273.18053653, m0: 259.91520804, epoch: J2000},
	Spin: RotationState{period: 16.11 * hourSec, tilt: 28.32}}

var Pluto = Body{ID: "pluto", Name: "Pluto", Class: BodyDwarf, Radius: 1188.3, μ: μPluto,
	El:   Elements{a: 39.48 * AU, e: 0.2488, i: 17.16, Ω: 110.30, ω: 113.78, m0: 14.53, epoch: J2000},
	Spin: RotationState{period: -153.29 * hourSec, tilt: 122.5}}

var Eris = Body{ID: "eris", Name: "Eris", Class: BodyDwarf, Radius: 1163, μ: μEris,
	El:   Elements{a: 67.78 * AU, e: 0.4407, i: 44.04, Ω: 35.19, ω: 54.07, m0: 330.00, epoch: J2000},
	Spin: RotationState{period: 25.9 * hourSec}}

var Haumea = Body{ID: "haumea", Name: "Haumea", Class: BodyDwarf, Radius: 816, μ: μHaumea,
	El:   Elements{a: 43.13 * AU, e: 0.1951, i: 28.22, Ω: 338.07, ω: 240.85, m0: 359.00, epoch: J2000},
	Spin: RotationState{period: 3.915 * hourSec}}

var Makemake = Body{ID: "makemake", Name: "Makemake", Class: BodyDwarf, Radius: 715, μ: μMakemake,
	El:   Elements{a: 45.79 * AU, e: 0.159, i: 29.01, Ω: 150.35, ω: 148.72, m0: 289.00, epoch: J2000},
	Spin: RotationState{period: 22.48 * hourSec}}

var Ceres = Body{ID: "ceres", Name: "Ceres", Class: BodyDwarf, Radius: 473, μ: μCeres,
	El:   Elements{a: 2.77 * AU, e: 0.0758, i: 10.59, Ω: 80.33, ω: 73.60, m0: 95.00, epoch: J2000},
	Spin: RotationState{period: 9.074 * hourSec}}

// cometEpoch is the comet element reference epoch (2025-11-11).
const cometEpoch = 2460990.5

var comets = []Body{
	{ID: "halley", Name: "1P/Halley", Class: BodyComet, Radius: 5.5,
		El:   Elements{a: 17.84 * AU, e: 0.9671, i: 162.26, Ω: 59.40, ω: 112.05, m0: 345.5, epoch: cometEpoch},
		Spin: RotationState{period: 2.2 * daySec}},
	{ID: "halebopp", Name: "C/1995 O1 (Hale-Bopp)", Class: BodyComet, Radius: 25,
		El:   Elements{a: 177.43 * AU, e: 0.99498, i: 89.29, Ω: 282.73, ω: 130.41, m0: 3.9, epoch: cometEpoch},
		Spin: RotationState{period: 11.35 * hourSec}},
	{ID: "encke", Name: "2P/Encke", Class: BodyComet, Radius: 2,
		El:   Elements{a: 2.215 * AU, e: 0.84833, i: 11.76, Ω: 334.6, ω: 186.5, m0: 180.2, epoch: cometEpoch},
		Spin: RotationState{period: 11.1 * hourSec}},
	{ID: "lovejoy", Name: "C/2014 Q2 (Lovejoy)", Class: BodyComet, Radius: 10,
		El:   Elements{a: 393.0 * AU, e: 0.998, i: 80.3, Ω: 12.4, ω: 90.3, m0: 0.27, epoch: cometEpoch},
		Spin: RotationState{period: 22 * hourSec}},
}

// DefaultBodies returns the full built-in catalog table.
func DefaultBodies() []Body {
	bodies := []Body{Sun, Mercury, Venus, Earth, Mars, Jupiter, Saturn, Uranus, Neptune,
		Pluto, Eris, Haumea, Makemake, Ceres}
	bodies = append(bodies, comets...)
	bodies = append(bodies, earthMoons...)
	bodies = append(bodies, marsMoons...)
	bodies = append(bodies, jupiterMoons...)
	bodies = append(bodies, saturnMoons...)
	bodies = append(bodies, uranusMoons...)
	bodies = append(bodies, neptuneMoons...)
	bodies = append(bodies, plutoMoons...)
	return bodies
}

var earthMoons = []Body{
	{ID: "moon", Name: "Moon", Class: BodyMoon, Parent: "earth", Radius: 1737.4,
		El: Elements{a: 384400, e: 0.0554, i: 5.16, Ω: 125.08, ω: 318.15, m0: 135.27, epoch: 2458849.5},
		Spin: RotationState{period: 27.321661 * daySec, tilt: 1.54}},
}

var marsMoons = []Body{
	{ID: "phobos", Name: "Phobos", Class: BodyMoon, Parent: "mars", Radius: 11.2,
		El: Elements{a: 9375, e: 0.015, i: 1.1, Ω: 169.2, ω: 216.3, m0: 189.7, epoch: 2458849.5},
		Spin: RotationState{period: 0.31891 * daySec, tilt: 0}},
	{ID: "deimos", Name: "Deimos", Class: BodyMoon, Parent: "mars", Radius: 6.4,
		El: Elements{a: 23457, e: 0, i: 1.8, Ω: 54.3, ω: 0, m0: 205, epoch: 2458849.5},
		Spin: RotationState{period: 1.26244 * daySec, tilt: 0}},
}

var jupiterMoons = []Body{
	{ID: "metis", Name: "Metis", Class: BodyMoon, Parent: "jupiter", Radius: 21,
		El: Elements{a: 128000, e: 0.0002, i: 0.06, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "adrastea", Name: "Adrastea", Class: BodyMoon, Parent: "jupiter", Radius: 7,
		El: Elements{a: 129000, e: 0.0015, i: 0.03, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "amalthea", Name: "Amalthea", Class: BodyMoon, Parent: "jupiter", Radius: 83.9,
		El: Elements{a: 181400, e: 0.0032, i: 0.374, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "thebe", Name: "Thebe", Class: BodyMoon, Parent: "jupiter", Radius: 48.9,
		El: Elements{a: 221900, e: 0.0175, i: 1.076, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "io", Name: "Io", Class: BodyMoon, Parent: "jupiter", Radius: 1821.6,
		El: Elements{a: 421800, e: 0.0041, i: 0.05, Ω: 43.977, ω: 84.129, m0: 171.016, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "europa", Name: "Europa", Class: BodyMoon, Parent: "jupiter", Radius: 1560.8,
		El: Elements{a: 671100, e: 0.009, i: 0.47, Ω: 219.106, ω: 88.97, m0: 317.021, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "ganymede", Name: "Ganymede", Class: BodyMoon, Parent: "jupiter", Radius: 2631.2,
		El: Elements{a: 1070400, e: 0.0013, i: 0.2, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "callisto", Name: "Callisto", Class: BodyMoon, Parent: "jupiter", Radius: 2410.3,
		El: Elements{a: 1882700, e: 0.0074, i: 0.192, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "themisto", Name: "Themisto", Class: BodyMoon, Parent: "jupiter", Radius: 7,
		El: Elements{a: 7397000, e: 0.257, i: 44.3, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "leda", Name: "Leda", Class: BodyMoon, Parent: "jupiter", Radius: 14,
		El: Elements{a: 11145200, e: 0.162, i: 28.2, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "ersa", Name: "Ersa", Class: BodyMoon, Parent: "jupiter", Radius: 1.4,
		El: Elements{a: 11399400, e: 0.117, i: 29, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "s2018j2", Name: "S/2018 J 2", Class: BodyMoon, Parent: "jupiter", Radius: 1.4,
		El: Elements{a: 11419700, e: 0.152, i: 28.3, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "himalia", Name: "Himalia", Class: BodyMoon, Parent: "jupiter", Radius: 69.9,
		El: Elements{a: 11439000, e: 0.16, i: 28.4, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "pandia", Name: "Pandia", Class: BodyMoon, Parent: "jupiter", Radius: 1.4,
		El: Elements{a: 11479600, e: 0.178, i: 28.9, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "lysithea", Name: "Lysithea", Class: BodyMoon, Parent: "jupiter", Radius: 21,
		El: Elements{a: 11699100, e: 0.117, i: 27.7, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "elara", Name: "Elara", Class: BodyMoon, Parent: "jupiter", Radius: 41.9,
		El: Elements{a: 11710700, e: 0.212, i: 27.8, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "s2011j3", Name: "S/2011 J 3", Class: BodyMoon, Parent: "jupiter", Radius: 1.4,
		El: Elements{a: 11716800, e: 0.192, i: 27.6, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "dia", Name: "Dia", Class: BodyMoon, Parent: "jupiter", Radius: 2.1,
		El: Elements{a: 12257900, e: 0.232, i: 29.1, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "s2018j4", Name: "S/2018 J 4", Class: BodyMoon, Parent: "jupiter", Radius: 0.7,
		El: Elements{a: 16328500, e: 0.177, i: 50.2, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "carpo", Name: "Carpo", Class: BodyMoon, Parent: "jupiter", Radius: 1.4,
		El: Elements{a: 17039500, e: 0.415, i: 53.3, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "valetudo", Name: "Valetudo", Class: BodyMoon, Parent: "jupiter", Radius: 0.5,
		El: Elements{a: 18690100, e: 0.217, i: 34.5, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "euporie", Name: "Euporie", Class: BodyMoon, Parent: "jupiter", Radius: 0.7,
		El: Elements{a: 19261900, e: 0.148, i: 145.5, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "s2003j18", Name: "S/2003 J 18", Class: BodyMoon, Parent: "jupiter", Radius: 0.7,
		El: Elements{a: 20332800, e: 0.102, i: 145.7, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "eupheme", Name: "Eupheme", Class: BodyMoon, Parent: "jupiter", Radius: 0.7,
		El: Elements{a: 20763400, e: 0.234, i: 147.9, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "s2021j3", Name: "S/2021 J 3", Class: BodyMoon, Parent: "jupiter", Radius: 0.7,
		El: Elements{a: 20776600, e: 0.239, i: 147.9, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "s2010j2", Name: "S/2010 J 2", Class: BodyMoon, Parent: "jupiter", Radius: 0.5,
		El: Elements{a: 20786900, e: 0.244, i: 148, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "s2016j1", Name: "S/2016 J 1", Class: BodyMoon, Parent: "jupiter", Radius: 0.5,
		El: Elements{a: 20796700, e: 0.245, i: 145.1, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "mneme", Name: "Mneme", Class: BodyMoon, Parent: "jupiter", Radius: 0.7,
		El: Elements{a: 20815800, e: 0.24, i: 147.8, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "euanthe", Name: "Euanthe", Class: BodyMoon, Parent: "jupiter", Radius: 1.4,
		El: Elements{a: 20822900, e: 0.243, i: 148.1, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "s2003j16", Name: "S/2003 J 16", Class: BodyMoon, Parent: "jupiter", Radius: 0.7,
		El: Elements{a: 20877500, e: 0.238, i: 147.8, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
}

var saturnMoons = []Body{
	{ID: "s2009s1", Name: "S/2009 S 1", Class: BodyMoon, Parent: "saturn", Radius: 151.4,
		El: Elements{a: 116900, e: 0, i: 0, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "pan", Name: "Pan", Class: BodyMoon, Parent: "saturn", Radius: 11.6,
		El: Elements{a: 133600, e: 0, i: 0, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "daphnis", Name: "Daphnis", Class: BodyMoon, Parent: "saturn", Radius: 4.1,
		El: Elements{a: 136500, e: 0, i: 0, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "atlas", Name: "Atlas", Class: BodyMoon, Parent: "saturn", Radius: 17.5,
		El: Elements{a: 137700, e: 0.001, i: 0, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "prometheus", Name: "Prometheus", Class: BodyMoon, Parent: "saturn", Radius: 40.8,
		El: Elements{a: 139400, e: 0.002, i: 0, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "pandora", Name: "Pandora", Class: BodyMoon, Parent: "saturn", Radius: 40.8,
		El: Elements{a: 141700, e: 0.004, i: 0, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "epimetheus", Name: "Epimetheus", Class: BodyMoon, Parent: "saturn", Radius: 58.2,
		El: Elements{a: 151400, e: 0.02, i: 0.3, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "janus", Name: "Janus", Class: BodyMoon, Parent: "saturn", Radius: 87.3,
		El: Elements{a: 151500, e: 0.007, i: 0.2, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "aegaeon", Name: "Aegaeon", Class: BodyMoon, Parent: "saturn", Radius: 0.3,
		El: Elements{a: 167500, e: 0, i: 0, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "mimas", Name: "Mimas", Class: BodyMoon, Parent: "saturn", Radius: 198,
		El: Elements{a: 186000, e: 0.02, i: 1.6, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "methone", Name: "Methone", Class: BodyMoon, Parent: "saturn", Radius: 1.2,
		El: Elements{a: 194700, e: 0.002, i: 0, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "anthe", Name: "Anthe", Class: BodyMoon, Parent: "saturn", Radius: 0.9,
		El: Elements{a: 198100, e: 0.002, i: 0, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "pallene", Name: "Pallene", Class: BodyMoon, Parent: "saturn", Radius: 2.3,
		El: Elements{a: 212300, e: 0.004, i: 0.2, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "enceladus", Name: "Enceladus", Class: BodyMoon, Parent: "saturn", Radius: 252.1,
		El: Elements{a: 238400, e: 0.005, i: 0, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "tethys", Name: "Tethys", Class: BodyMoon, Parent: "saturn", Radius: 531,
		El: Elements{a: 295000, e: 0.001, i: 1.1, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "telesto", Name: "Telesto", Class: BodyMoon, Parent: "saturn", Radius: 11.6,
		El: Elements{a: 295000, e: 0.001, i: 1.2, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "calypso", Name: "Calypso", Class: BodyMoon, Parent: "saturn", Radius: 11.6,
		El: Elements{a: 295000, e: 0.001, i: 1.5, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "helene", Name: "Helene", Class: BodyMoon, Parent: "saturn", Radius: 17.5,
		El: Elements{a: 377600, e: 0.007, i: 0.2, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "polydeuces", Name: "Polydeuces", Class: BodyMoon, Parent: "saturn", Radius: 1.2,
		El: Elements{a: 377600, e: 0.019, i: 0.2, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "dione", Name: "Dione", Class: BodyMoon, Parent: "saturn", Radius: 561.7,
		El: Elements{a: 377700, e: 0.002, i: 0, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "rhea", Name: "Rhea", Class: BodyMoon, Parent: "saturn", Radius: 764.5,
		El: Elements{a: 527200, e: 0.001, i: 0.3, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "titan", Name: "Titan", Class: BodyMoon, Parent: "saturn", Radius: 2575,
		El: Elements{a: 1221900, e: 0.029, i: 0.3, Ω: 28.06, ω: 186.59, m0: 230, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "hyperion", Name: "Hyperion", Class: BodyMoon, Parent: "saturn", Radius: 134,
		El: Elements{a: 1481500, e: 0.105, i: 0.6, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "iapetus", Name: "Iapetus", Class: BodyMoon, Parent: "saturn", Radius: 734.5,
		El: Elements{a: 3561700, e: 0.028, i: 7.6, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "s2023s1", Name: "S/2023 S 1", Class: BodyMoon, Parent: "saturn", Radius: 1503,
		El: Elements{a: 11205400, e: 0.386, i: 48.8, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "s2019s1", Name: "S/2019 S 1", Class: BodyMoon, Parent: "saturn", Radius: 2498.8,
		El: Elements{a: 11245400, e: 0.384, i: 49.5, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
}

var uranusMoons = []Body{
	{ID: "cordelia", Name: "Cordelia", Class: BodyMoon, Parent: "uranus", Radius: 20.3,
		El: Elements{a: 49800, e: 0, i: 0.2, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "ophelia", Name: "Ophelia", Class: BodyMoon, Parent: "uranus", Radius: 20.3,
		El: Elements{a: 53800, e: 0.011, i: 0.1, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "s2025u1", Name: "S/2025 U 1", Class: BodyMoon, Parent: "uranus", Radius: 10.1,
		El: Elements{a: 57800, e: 0.039, i: 4, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "bianca", Name: "Bianca", Class: BodyMoon, Parent: "uranus", Radius: 25.4,
		El: Elements{a: 59200, e: 0.001, i: 0.1, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "cressida", Name: "Cressida", Class: BodyMoon, Parent: "uranus", Radius: 40.6,
		El: Elements{a: 61800, e: 0, i: 0.1, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "desdemona", Name: "Desdemona", Class: BodyMoon, Parent: "uranus", Radius: 35.5,
		El: Elements{a: 62700, e: 0, i: 0.1, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "juliet", Name: "Juliet", Class: BodyMoon, Parent: "uranus", Radius: 46.7,
		El: Elements{a: 64400, e: 0.001, i: 0.1, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "portia", Name: "Portia", Class: BodyMoon, Parent: "uranus", Radius: 67.6,
		El: Elements{a: 66100, e: 0, i: 0.1, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "rosalind", Name: "Rosalind", Class: BodyMoon, Parent: "uranus", Radius: 36,
		El: Elements{a: 69900, e: 0, i: 0.1, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "belinda", Name: "Belinda", Class: BodyMoon, Parent: "uranus", Radius: 45.3,
		El: Elements{a: 75300, e: 0, i: 0.1, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "puck", Name: "Puck", Class: BodyMoon, Parent: "uranus", Radius: 81,
		El: Elements{a: 86000, e: 0, i: 0.3, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "miranda", Name: "Miranda", Class: BodyMoon, Parent: "uranus", Radius: 235.8,
		El: Elements{a: 129900, e: 0.0013, i: 4.3, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "ariel", Name: "Ariel", Class: BodyMoon, Parent: "uranus", Radius: 578.9,
		El: Elements{a: 190900, e: 0.0012, i: 0, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "umbriel", Name: "Umbriel", Class: BodyMoon, Parent: "uranus", Radius: 584.7,
		El: Elements{a: 266000, e: 0.0039, i: 0, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "titania", Name: "Titania", Class: BodyMoon, Parent: "uranus", Radius: 788.9,
		El: Elements{a: 436300, e: 0.0011, i: 0, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "oberon", Name: "Oberon", Class: BodyMoon, Parent: "uranus", Radius: 761.4,
		El: Elements{a: 583500, e: 0.0014, i: 0, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "francisco", Name: "Francisco", Class: BodyMoon, Parent: "uranus", Radius: 11,
		El: Elements{a: 4282900, e: 0.145, i: 147.3, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "caliban", Name: "Caliban", Class: BodyMoon, Parent: "uranus", Radius: 36,
		El: Elements{a: 7231000, e: 0.181, i: 141.7, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "stephano", Name: "Stephano", Class: BodyMoon, Parent: "uranus", Radius: 16,
		El: Elements{a: 8004000, e: 0.229, i: 143.8, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "trinculo", Name: "Trinculo", Class: BodyMoon, Parent: "uranus", Radius: 9,
		El: Elements{a: 8504000, e: 0.219, i: 166.3, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "sycorax", Name: "Sycorax", Class: BodyMoon, Parent: "uranus", Radius: 75,
		El: Elements{a: 12179000, e: 0.522, i: 159.4, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "margaret", Name: "Margaret", Class: BodyMoon, Parent: "uranus", Radius: 10,
		El: Elements{a: 14345000, e: 0.677, i: 57.4, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "prospero", Name: "Prospero", Class: BodyMoon, Parent: "uranus", Radius: 25,
		El: Elements{a: 16268000, e: 0.445, i: 151.8, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "setebos", Name: "Setebos", Class: BodyMoon, Parent: "uranus", Radius: 24,
		El: Elements{a: 17420000, e: 0.591, i: 158.2, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "ferdinand", Name: "Ferdinand", Class: BodyMoon, Parent: "uranus", Radius: 10,
		El: Elements{a: 20430000, e: 0.368, i: 169.8, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
}

var neptuneMoons = []Body{
	{ID: "naiad", Name: "Naiad", Class: BodyMoon, Parent: "neptune", Radius: 29.5,
		El: Elements{a: 48224, e: 0.0047, i: 4.691, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "thalassa", Name: "Thalassa", Class: BodyMoon, Parent: "neptune", Radius: 41,
		El: Elements{a: 50074, e: 0.0018, i: 0.2, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "despina", Name: "Despina", Class: BodyMoon, Parent: "neptune", Radius: 75,
		El: Elements{a: 52526, e: 0.0002, i: 0.2, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "galatea", Name: "Galatea", Class: BodyMoon, Parent: "neptune", Radius: 87,
		El: Elements{a: 61953, e: 0.0001, i: 0.1, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "larissa", Name: "Larissa", Class: BodyMoon, Parent: "neptune", Radius: 97,
		El: Elements{a: 73548, e: 0.0014, i: 0.2, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "hippocamp", Name: "Hippocamp", Class: BodyMoon, Parent: "neptune", Radius: 17.4,
		El: Elements{a: 105283, e: 0.0009, i: 0, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "proteus", Name: "Proteus", Class: BodyMoon, Parent: "neptune", Radius: 210,
		El: Elements{a: 117646, e: 0.0005, i: 0.1, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "triton", Name: "Triton", Class: BodyMoon, Parent: "neptune", Radius: 1353.4,
		El: Elements{a: 354759, e: 0, i: 156.8, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "nereid", Name: "Nereid", Class: BodyMoon, Parent: "neptune", Radius: 178.5,
		El: Elements{a: 5513400, e: 0.7507, i: 7.1, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "halimede", Name: "Halimede", Class: BodyMoon, Parent: "neptune", Radius: 31,
		El: Elements{a: 16611000, e: 0.264, i: 134.1, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "sao", Name: "Sao", Class: BodyMoon, Parent: "neptune", Radius: 22,
		El: Elements{a: 22228000, e: 0.293, i: 49.9, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "laomedeia", Name: "Laomedeia", Class: BodyMoon, Parent: "neptune", Radius: 21,
		El: Elements{a: 23567000, e: 0.424, i: 34.7, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "psamathe", Name: "Psamathe", Class: BodyMoon, Parent: "neptune", Radius: 20,
		El: Elements{a: 46695000, e: 0.461, i: 137.7, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
	{ID: "neso", Name: "Neso", Class: BodyMoon, Parent: "neptune", Radius: 30,
		El: Elements{a: 49245000, e: 0.424, i: 136.5, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{locked: true}},
}

var plutoMoons = []Body{
	{ID: "charon", Name: "Charon", Class: BodyMoon, Parent: "pluto", Radius: 606,
		El: Elements{a: 19571, e: 0.0002, i: 0, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{period: 6.387 * daySec, tilt: 0}},
	{ID: "styx", Name: "Styx", Class: BodyMoon, Parent: "pluto", Radius: 6,
		El: Elements{a: 42656, e: 0, i: 0.9, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{period: 3.24 * daySec, tilt: 0}},
	{ID: "nix", Name: "Nix", Class: BodyMoon, Parent: "pluto", Radius: 19,
		El: Elements{a: 48694, e: 0, i: 0.1, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{period: 25.9 * daySec, tilt: 0}},
	{ID: "kerberos", Name: "Kerberos", Class: BodyMoon, Parent: "pluto", Radius: 9,
		El: Elements{a: 57783, e: 0, i: 0.4, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{period: 32.2 * daySec, tilt: 0}},
	{ID: "hydra", Name: "Hydra", Class: BodyMoon, Parent: "pluto", Radius: 24,
		El: Elements{a: 64738, e: 0, i: 0.3, Ω: 0, ω: 0, m0: 0, epoch: 2458849.5},
		Spin: RotationState{period: 38.2 * daySec, tilt: 0}},
}

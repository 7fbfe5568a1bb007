// Package domain models a round-the-world itinerary and the deterministic
// engine that turns a scroll position into a place on a 3D globe.
//
// # Itinerary Data
//
// Stops are ordered itinerary entries with 1-based, strictly increasing IDs.
// Each stop references a city key in the city table and records the transport
// mode of the leg that arrives at it. The first stop uses "start".
//
//	{"id": 2, "city": "인천", "country": "KR", "transport": "bus", "startDate": "2016-07-02"}
//
// Cities are immutable reference data keyed by the (Korean) city name used in
// the itinerary:
//
//	"인천": {"ko": "인천", "en": "Incheon", "lat": 37.4563, "lng": 126.7052, "country": "KR"}
//
// # Globe Coordinates
//
// Latitude/longitude are projected to a sphere with the y axis through the
// poles and the x axis negated so longitude 0 faces the default viewer:
//
//	phi   = (90 - lat) deg
//	theta = (lng + 180) deg
//	(x, y, z) = (-r sin(phi) cos(theta), r cos(phi), r sin(phi) sin(theta))
//
// The globe surface has radius 2. Overlays sit marginally above it so they do
// not z-fight the texture: borders at 2.002, the scene path at 2.003, city
// markers at 2.004, the UI path and country labels at 2.02.
//
// # Path Sampling
//
// A leg between stops i and i+1 is sampled at 80 segments for flights and 30
// for every surface mode, always inclusive of both ends (81 or 31 samples).
// The density encodes pacing, not distance: flights glide, buses hop. Flight
// samples are lifted by sin(t*pi)*0.15 above the sphere so the arc peaks at
// the leg midpoint. Legs whose city cannot be found are skipped.
//
// # Progress
//
// Progress is a single scalar in [0,1] over the concatenated samples of every
// leg. It is owned by the caller (scroll or swipe input) and never mutated by
// the resolver. Index = floor(progress * len), clamped to the last sample.
//
// A sample with leg fraction t < 0.15 still counts as being at the departure
// stop; from 0.15 on the traveler is shown as arriving at the destination.
//
// # Zoom Curve
//
// Camera closeness per stop is authorial data, transcribed in [zoomTable]. It
// is not a formula and must not be smoothed.
package domain

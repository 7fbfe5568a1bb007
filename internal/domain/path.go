package domain

import "math"

const (
	// FlightSegments and SurfaceSegments set how many intervals a leg is split
	// into. Each leg yields segments+1 samples.
	FlightSegments  = 80
	SurfaceSegments = 30

	// ArcHeight is the peak lift of a flight arc above the sphere.
	ArcHeight = 0.15
)

// Radii used when projecting the journey onto the globe.
const (
	GlobeRadius        = 2.0
	BorderRadius       = 2.002
	ScenePathRadius    = 2.003
	MarkerRadius       = 2.004
	UIPathRadius       = 2.02
	CountryLabelRadius = 2.02
)

// PathSample is one discretized point along the itinerary.
type PathSample struct {
	Point      Vec3      `json:"point"`
	Transport  Transport `json:"transport"`
	FromStopID int       `json:"fromStopId"`
	ToStopID   int       `json:"toStopId"`
	// T is the fraction through the leg, 0 at departure and 1 at arrival.
	T float64 `json:"t"`
}

// Path is the flat, itinerary-ordered sample sequence of every resolvable leg.
// A Path is never mutated after GeneratePath returns it.
type Path struct {
	samples []PathSample
}

// Len returns the number of samples.
func (p Path) Len() int { return len(p.samples) }

// At returns the sample at index i. Callers must keep i within [0, Len).
func (p Path) At(i int) PathSample { return p.samples[i] }

// Samples returns a copy of the samples.
func (p Path) Samples() []PathSample {
	out := make([]PathSample, len(p.samples))
	copy(out, p.samples)
	return out
}

// Index converts a progress value into a sample index, clamped to the valid
// range. An empty path returns -1.
func (p Path) Index(progress float64) int {
	n := len(p.samples)
	if n == 0 {
		return -1
	}
	idx := int(math.Floor(clamp01(progress) * float64(n)))
	if idx > n-1 {
		idx = n - 1
	}
	return idx
}

// Progress converts a sample index back into a progress value.
func (p Path) Progress(index int) float64 {
	if len(p.samples) == 0 {
		return 0
	}
	return float64(index) / float64(len(p.samples))
}

// SegmentsFor returns the segment count used for a leg arriving by transport.
func SegmentsFor(transport Transport) int {
	if transport == TransportFlight {
		return FlightSegments
	}
	return SurfaceSegments
}

// GeneratePath samples every leg between consecutive stops. Legs that reference
// a city missing from the table are skipped without error.
func GeneratePath(stops []Stop, cities CityTable, radius float64) Path {
	var samples []PathSample

	for i := 0; i < len(stops)-1; i++ {
		from, okFrom := cities.Lookup(stops[i].City)
		to, okTo := cities.Lookup(stops[i+1].City)
		if !okFrom || !okTo {
			continue
		}

		start := LatLngToVector3(from.Lat, from.Lng, radius)
		end := LatLngToVector3(to.Lat, to.Lng, radius)
		transport := stops[i+1].Transport
		segments := SegmentsFor(transport)

		for j := 0; j <= segments; j++ {
			t := float64(j) / float64(segments)
			point := start.Lerp(end, t)

			if transport == TransportFlight {
				arc := math.Sin(t*math.Pi) * ArcHeight
				point = point.Normalize().Scale(radius + arc)
			} else {
				point = point.Normalize().Scale(radius)
			}

			samples = append(samples, PathSample{
				Point:      point,
				Transport:  transport,
				FromStopID: stops[i].ID,
				ToStopID:   stops[i+1].ID,
				T:          t,
			})
		}
	}

	return Path{samples: samples}
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

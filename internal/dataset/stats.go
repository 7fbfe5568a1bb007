package dataset

import "github.com/couchcryptid/journey-globe-service/internal/domain"

// SkippedLeg is a leg dropped from the path because a city is unknown.
type SkippedLeg struct {
	FromStopID int    `json:"fromStopId"`
	ToStopID   int    `json:"toStopId"`
	City       string `json:"city"`
}

// PathStats summarises the path a journey produces.
type PathStats struct {
	Legs        int                      `json:"legs"`
	Samples     int                      `json:"samples"`
	ByTransport map[domain.Transport]int `json:"byTransport"`
	Skipped     []SkippedLeg             `json:"skipped"`
	NoZoom      []int                    `json:"noZoom"`
}

// Analyze walks the legs the same way path generation does and counts what
// it would emit.
func Analyze(j *domain.Journey) PathStats {
	st := PathStats{ByTransport: make(map[domain.Transport]int)}
	for i := 0; i < len(j.Stops)-1; i++ {
		from, to := j.Stops[i], j.Stops[i+1]
		if _, ok := j.Cities.Lookup(from.City); !ok {
			st.Skipped = append(st.Skipped, SkippedLeg{FromStopID: from.ID, ToStopID: to.ID, City: from.City})
			continue
		}
		if _, ok := j.Cities.Lookup(to.City); !ok {
			st.Skipped = append(st.Skipped, SkippedLeg{FromStopID: from.ID, ToStopID: to.ID, City: to.City})
			continue
		}
		n := domain.SegmentsFor(to.Transport) + 1
		st.Legs++
		st.Samples += n
		st.ByTransport[to.Transport] += n
	}
	for _, s := range j.Stops {
		if domain.ZoomForStop(s.ID) == 0 {
			st.NoZoom = append(st.NoZoom, s.ID)
		}
	}
	return st
}

package domain

// SwipeThreshold is the minimum vertical travel, in pixels, for a touch to
// count as a swipe.
const SwipeThreshold = 40

// Thresholds used when searching the path for a landing sample.
const (
	midFlightLow  = 0.2
	midFlightHigh = 0.8
	legStartMax   = 0.05
	legEndMin     = 0.95
	midpointLow   = 0.45
	midpointHigh  = 0.55
)

// Direction is the intent of a swipe.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionForward
	DirectionBackward
)

func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	default:
		return "none"
	}
}

// SwipeDirection classifies a touch by its vertical travel, start Y minus end
// Y. Swiping up moves forward.
func SwipeDirection(deltaY float64) Direction {
	switch {
	case deltaY > SwipeThreshold:
		return DirectionForward
	case deltaY < -SwipeThreshold:
		return DirectionBackward
	default:
		return DirectionNone
	}
}

// IsMidFlight reports whether a sample is in the middle of a flight leg.
func IsMidFlight(s PathSample) bool {
	return s.Transport == TransportFlight && s.T > midFlightLow && s.T < midFlightHigh
}

// ResolveSwipe picks the path index a discrete swipe should land on.
// currentIndex is the sample the viewer is on and currentStop the itinerary
// index of the stop shown as current. When no landing sample is found the
// current index is returned unchanged.
func ResolveSwipe(dir Direction, currentIndex, currentStop int, path Path, stops []Stop) int {
	if path.Len() == 0 || len(stops) == 0 || currentIndex < 0 {
		return currentIndex
	}
	if currentIndex > path.Len()-1 {
		currentIndex = path.Len() - 1
	}

	switch dir {
	case DirectionForward:
		return resolveForward(currentIndex, currentStop, path, stops)
	case DirectionBackward:
		return resolveBackward(currentIndex, currentStop, path, stops)
	default:
		return currentIndex
	}
}

func resolveForward(currentIndex, currentStop int, path Path, stops []Stop) int {
	target := currentIndex
	cur := path.At(currentIndex)

	if IsMidFlight(cur) {
		// Land on the start of the next leg, or on the arrival end of this
		// one when it is the last leg.
		for i := currentIndex; i < path.Len(); i++ {
			pt := path.At(i)
			if pt.FromStopID == cur.ToStopID && pt.T < legStartMax {
				return i
			}
			if pt.ToStopID == cur.ToStopID && pt.T > legEndMin {
				target = i
			}
		}
		return target
	}

	nextIdx := min(currentStop+1, len(stops)-1)
	next := stops[nextIdx]

	if next.Transport == TransportFlight {
		for i := currentIndex; i < path.Len(); i++ {
			pt := path.At(i)
			if pt.ToStopID == next.ID && pt.T >= midpointLow && pt.T <= midpointHigh {
				return i
			}
		}
		return target
	}

	if nextIdx == len(stops)-1 {
		for i := path.Len() - 1; i >= 0; i-- {
			if path.At(i).ToStopID == next.ID {
				return i
			}
		}
		return target
	}

	return legStart(path, next.ID, target)
}

func resolveBackward(currentIndex, currentStop int, path Path, stops []Stop) int {
	target := currentIndex
	cur := path.At(currentIndex)

	if IsMidFlight(cur) {
		return legStart(path, cur.FromStopID, target)
	}

	if currentStop < 0 || currentStop > len(stops)-1 {
		return target
	}
	here := stops[currentStop]

	if here.Transport == TransportFlight && currentStop > 0 {
		for i := currentIndex; i >= 0; i-- {
			pt := path.At(i)
			if pt.ToStopID == here.ID && pt.T >= midpointLow && pt.T <= midpointHigh {
				return i
			}
		}
		return target
	}

	prev := stops[max(currentStop-1, 0)]
	return legStart(path, prev.ID, target)
}

// legStart returns the first sample departing stopID, or fallback.
func legStart(path Path, stopID, fallback int) int {
	for i := 0; i < path.Len(); i++ {
		pt := path.At(i)
		if pt.FromStopID == stopID && pt.T < legStartMax {
			return i
		}
	}
	return fallback
}

// TargetScroll converts a path index into the absolute scroll offset the host
// should animate to.
func TargetScroll(index, pathLen int, documentHeight, viewportHeight float64) float64 {
	maxScroll := documentHeight - viewportHeight
	if maxScroll <= 0 || pathLen <= 0 {
		return 0
	}
	return float64(index) / float64(pathLen) * maxScroll
}

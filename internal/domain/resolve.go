package domain

// SegmentThreshold is the leg fraction below which the traveler is still shown
// at the departure stop.
const SegmentThreshold = 0.15

// DefaultPosition is reported when the path has no samples.
var DefaultPosition = Vec3{X: 0, Y: 2, Z: 0}

// State is the resolved view of a progress value.
type State struct {
	Position      Vec3       `json:"position"`
	CurrentStopID int        `json:"currentStopId"`
	FromStopID    int        `json:"fromStopId"`
	ToStopID      int        `json:"toStopId"`
	Index         int        `json:"index"`
	Sample        PathSample `json:"sample"`
}

// Resolve maps progress onto the path. It reads nothing but its arguments, so
// equal inputs always produce equal results.
func Resolve(progress float64, path Path) State {
	idx := path.Index(progress)
	if idx < 0 {
		return State{
			Position:      DefaultPosition,
			CurrentStopID: 1,
			FromStopID:    1,
			ToStopID:      2,
			Sample: PathSample{
				Point:      DefaultPosition,
				Transport:  TransportBus,
				FromStopID: 1,
				ToStopID:   2,
			},
		}
	}

	pt := path.At(idx)
	current := pt.ToStopID
	if pt.T < SegmentThreshold {
		current = pt.FromStopID
	}

	return State{
		Position:      pt.Point,
		CurrentStopID: current,
		FromStopID:    pt.FromStopID,
		ToStopID:      pt.ToStopID,
		Index:         idx,
		Sample:        pt,
	}
}

// IsDeparting reports whether the from stop should be drawn as a separate
// "just left" marker.
func (s State) IsDeparting() bool {
	return s.FromStopID != s.CurrentStopID
}

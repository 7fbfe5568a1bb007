package render

import "github.com/couchcryptid/journey-globe-service/internal/domain"

const (
	// FallbackColor paints a transport with no palette entry.
	FallbackColor = "#4ECDC4"
	// FutureColor paints the part of the path not yet travelled.
	FutureColor = "#666666"
)

var transportColors = map[domain.Transport]string{
	domain.TransportFlight: "#FF4757",
	domain.TransportBus:    "#00D9FF",
	domain.TransportTrain:  "#C56CF0",
	domain.TransportBoat:   "#FFD93D",
	domain.TransportTrek:   "#6BCB77",
	domain.TransportStart:  "#FF6B9D",
}

// TransportColor returns the line colour for a transport mode.
func TransportColor(t domain.Transport) string {
	if c, ok := transportColors[t]; ok {
		return c
	}
	return FallbackColor
}

// Legend lists every travel mode except the start marker.
func Legend(j *domain.Journey, lang string) []LegendItem {
	out := make([]LegendItem, 0, len(domain.Transports))
	for _, t := range domain.Transports {
		if t == domain.TransportStart {
			continue
		}
		out = append(out, LegendItem{
			Transport: t,
			Color:     TransportColor(t),
			Label:     j.TransportLabel(t, lang),
		})
	}
	return out
}

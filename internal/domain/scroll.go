package domain

const (
	establishingStart = 0.05
	establishingSpan  = 0.2
)

// ScrollProgress maps a scroll offset onto [0, 1]. A document that cannot
// scroll reports 0.
func ScrollProgress(scrollY, documentHeight, viewportHeight float64) float64 {
	scrollable := documentHeight - viewportHeight
	if scrollable <= 0 {
		return 0
	}
	return clamp01(scrollY / scrollable)
}

// EstablishingZoom ramps from 0 to 1 between 5% and 25% of progress.
func EstablishingZoom(progress float64) float64 {
	p := clamp01(progress)
	if p < establishingStart {
		return 0
	}
	return min((p-establishingStart)/establishingSpan, 1)
}

// DocumentHeight is the scrollable height the host reserves: one viewport per
// stop.
func DocumentHeight(stopCount int, viewportHeight float64) float64 {
	if stopCount < 0 {
		return 0
	}
	return float64(stopCount) * viewportHeight
}

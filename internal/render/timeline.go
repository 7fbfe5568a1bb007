package render

import (
	"strings"

	"github.com/couchcryptid/journey-globe-service/internal/domain"
)

// TimelineRadius is how many stops are listed on each side of the current one.
const TimelineRadius = 3

// FormatDate renders "2016-09-15" as "'16.09.15". Anything else is returned
// as is, and an empty string stays empty.
func FormatDate(s string) string {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || len(parts[0]) < 2 {
		return s
	}
	return "'" + parts[0][len(parts[0])-2:] + "." + parts[1] + "." + parts[2]
}

// Timeline returns the window of stops centred on current.
func Timeline(j *domain.Journey, current int, lang string) []TimelineItem {
	if len(j.Stops) == 0 {
		return nil
	}
	lo := max(0, current-TimelineRadius)
	hi := min(len(j.Stops)-1, current+TimelineRadius)

	out := make([]TimelineItem, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		s := j.Stops[i]
		name := s.City
		if city, ok := j.Cities.Lookup(s.City); ok {
			name = city.Name(lang)
		}
		date := FormatDate(s.StartDate)
		if date == "" {
			date = FormatDate(s.EndDate)
		}
		out = append(out, TimelineItem{
			StopID:  s.ID,
			Name:    name,
			Date:    date,
			Visited: i < current,
			Current: i == current,
		})
	}
	return out
}

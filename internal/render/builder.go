package render

import (
	"math"
	"strings"

	"github.com/couchcryptid/journey-globe-service/internal/camera"
	"github.com/couchcryptid/journey-globe-service/internal/domain"
)

// Facing thresholds, as the dot product of the item direction with the
// traveler direction.
const (
	markerVisibleDot  = -0.3
	pastLabelDot      = 0.8
	countryVisibleDot = -0.2
)

// Hint thresholds on overall progress.
const (
	scrollHintBelow = 0.02
	swipeHintBelow  = 0.05
	aboutBelow      = 0.03
)

// Input is the per-frame state a Builder draws.
type Input struct {
	Language string
	Progress float64
	Zoom     float64
	State    domain.State
	Camera   camera.View
	Gallery  string
}

// Builder assembles frames for one journey. It is safe for concurrent use
// because it only reads its inputs.
type Builder struct {
	journey *domain.Journey
	path    domain.Path
	visited []string
}

// NewBuilder binds a journey and its scene path.
func NewBuilder(j *domain.Journey, scenePath domain.Path) *Builder {
	return &Builder{
		journey: j,
		path:    scenePath,
		visited: j.VisitedCountries(),
	}
}

// Build produces the frame for in.
func (b *Builder) Build(in Input) Frame {
	current := domain.StopIndex(b.journey.Stops, in.State.CurrentStopID)
	markerScale := 1 / math.Max(domain.ZoomScale(in.State.CurrentStopID), 0.5)

	return Frame{
		Language: in.Language,
		Progress: in.Progress,
		Zoom:     in.Zoom,
		Camera:   in.Camera,
		Traveler: Traveler{
			Position:  in.State.Position,
			Transport: in.State.Sample.Transport,
			InFlight:  domain.IsMidFlight(in.State.Sample),
			Scale:     markerScale,
		},
		CurrentStop: b.stopInfo(current, in.Language),
		Country:     b.countryTitle(current, in.Language),
		Paths:       b.polylines(in.Progress),
		Markers:     b.markers(in.State, current, markerScale, in.Language),
		Countries:   b.countryLabels(in.State.Position, current, in.Language),
		Timeline:    Timeline(b.journey, current, in.Language),
		Legend:      Legend(b.journey, in.Language),
		Hints: Hints{
			Scroll: in.Progress < scrollHintBelow,
			Swipe:  in.Progress < swipeHintBelow,
			About:  current == 0 && in.Progress < aboutBelow,
		},
		Gallery: in.Gallery,
	}
}

func (b *Builder) stopInfo(current int, lang string) StopInfo {
	stops := b.journey.Stops
	if len(stops) == 0 {
		return StopInfo{}
	}
	s := stops[current]
	name := s.City
	if city, ok := b.journey.Cities.Lookup(s.City); ok {
		name = city.Name(lang)
	}
	return StopInfo{
		ID:        s.ID,
		Index:     current,
		Total:     len(stops),
		City:      s.City,
		Name:      name,
		HasPhotos: b.journey.Photos.HasPhotos(s.City),
	}
}

func (b *Builder) countryTitle(current int, lang string) *CountryTitle {
	code := b.journey.CountryOf(current)
	if code == "" {
		return nil
	}
	name := code
	if n, ok := b.journey.CountryNames[code]; ok {
		name = n.In(lang)
	}
	return &CountryTitle{Code: code, Name: name}
}

// polylines splits the travelled part of the path into runs of one colour,
// each run starting where the previous one ended, and adds the dimmed rest.
func (b *Builder) polylines(progress float64) []Polyline {
	n := b.path.Len()
	if n == 0 {
		return nil
	}
	idx := int(math.Floor(float64(n) * progress))
	idx = max(0, min(idx, n))

	var runs []Polyline
	for i := 0; i < max(idx, 1); i++ {
		s := b.path.At(i)
		color := TransportColor(s.Transport)
		if len(runs) == 0 || runs[len(runs)-1].Color != color {
			if len(runs) > 0 {
				last := &runs[len(runs)-1]
				last.Points = append(last.Points, s.Point)
			}
			runs = append(runs, Polyline{Color: color})
		}
		last := &runs[len(runs)-1]
		last.Points = append(last.Points, s.Point)
	}

	out := make([]Polyline, 0, len(runs)+1)
	for _, r := range runs {
		if len(r.Points) >= 2 {
			out = append(out, r)
		}
	}

	if n-idx >= 2 {
		future := Polyline{Color: FutureColor, Future: true, Points: make([]domain.Vec3, 0, n-idx)}
		for i := idx; i < n; i++ {
			future.Points = append(future.Points, b.path.At(i).Point)
		}
		out = append(out, future)
	}
	return out
}

func (b *Builder) markers(state domain.State, current int, scale float64, lang string) []Marker {
	stops := b.journey.Stops
	if len(stops) == 0 {
		return nil
	}
	currentCity := stops[current].City
	facing := state.Position.Normalize()

	var out []Marker
	for i := 0; i <= current; i++ {
		s := stops[i]
		isCurrent := i == current
		if !isCurrent && s.City == currentCity {
			continue
		}
		city, ok := b.journey.Cities.Lookup(s.City)
		if !ok {
			continue
		}
		pos := domain.LatLngToVector3(city.Lat, city.Lng, domain.MarkerRadius)
		dot := pos.Normalize().Dot(facing)
		if dot <= markerVisibleDot {
			continue
		}

		m := Marker{
			StopID:   s.ID,
			City:     s.City,
			Name:     city.Name(lang),
			Position: pos,
			Scale:    scale,
		}
		switch {
		case isCurrent:
			m.Kind = MarkerCurrent
			m.ShowLabel = true
			m.Clickable = b.journey.Photos.HasPhotos(s.City)
		case s.ID == state.FromStopID && state.IsDeparting():
			m.Kind = MarkerFrom
			m.ShowLabel = true
		default:
			m.Kind = MarkerPast
			m.ShowLabel = dot > pastLabelDot
		}
		out = append(out, m)
	}
	return out
}

func (b *Builder) countryLabels(traveler domain.Vec3, current int, lang string) []CountryLabel {
	code := b.journey.CountryOf(current)
	if code == "" {
		return nil
	}

	show := map[string]bool{code: true}
	for i, c := range b.visited {
		if c != code {
			continue
		}
		if i > 0 {
			show[b.visited[i-1]] = true
		}
		if i < len(b.visited)-1 {
			show[b.visited[i+1]] = true
		}
		break
	}

	facing := traveler.Normalize()
	var out []CountryLabel
	for _, c := range b.journey.Countries {
		if !show[c.Code] {
			continue
		}
		pos := domain.LatLngToVector3(c.Coordinates.Lat, c.Coordinates.Lng, domain.CountryLabelRadius)
		if pos.Normalize().Dot(facing) <= countryVisibleDot {
			continue
		}
		name := c.Name.In(lang)
		if lang != "ko" {
			name = strings.ToUpper(name)
		}
		out = append(out, CountryLabel{
			Code:     c.Code,
			Name:     name,
			Native:   c.Name.Native,
			Position: pos,
			Current:  c.Code == code,
		})
	}
	return out
}

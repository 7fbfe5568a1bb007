package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/journey-globe-service/internal/domain"
)

func newTestBuilder() (*Builder, *domain.Journey) {
	j := testJourney()
	return NewBuilder(j, domain.GeneratePath(j.Stops, j.Cities, domain.ScenePathRadius)), j
}

func markerSummary(ms []Marker) ([]int, []MarkerKind, []bool) {
	ids := make([]int, len(ms))
	kinds := make([]MarkerKind, len(ms))
	labels := make([]bool, len(ms))
	for i, m := range ms {
		ids[i] = m.StopID
		kinds[i] = m.Kind
		labels[i] = m.ShowLabel
	}
	return ids, kinds, labels
}

func TestBuildMarkers(t *testing.T) {
	b, j := newTestBuilder()

	t.Run("current, departed and past stops", func(t *testing.T) {
		state := domain.State{Position: cityPoint(j, "Bangkok"), CurrentStopID: 5, FromStopID: 4, ToStopID: 5}
		f := b.Build(Input{Language: "en", State: state})

		ids, kinds, labels := markerSummary(f.Markers)
		// stop 3 is Bangkok too and collapses into the current marker
		assert.Equal(t, []int{1, 2, 4, 5}, ids)
		assert.Equal(t, []MarkerKind{MarkerPast, MarkerPast, MarkerFrom, MarkerCurrent}, kinds)
		assert.Equal(t, []bool{true, false, true, true}, labels)

		cur := f.Markers[3]
		assert.True(t, cur.Clickable)
		assert.Equal(t, "Bangkok", cur.Name)
		assert.InDelta(t, domain.MarkerRadius, cur.Position.Len(), 1e-9)
		assert.Equal(t, 1.0, cur.Scale)
	})

	t.Run("markers behind the globe are hidden", func(t *testing.T) {
		state := domain.State{Position: cityPoint(j, "Bangkok").Scale(-1), CurrentStopID: 5, FromStopID: 4, ToStopID: 5}
		f := b.Build(Input{Language: "en", State: state})

		ids, _, _ := markerSummary(f.Markers)
		assert.Equal(t, []int{2}, ids)
	})

	t.Run("scale shrinks with closeness", func(t *testing.T) {
		state := domain.State{Position: cityPoint(j, "Gwangju"), CurrentStopID: 1, FromStopID: 1, ToStopID: 2}
		f := b.Build(Input{Language: "ko", State: state})

		require.Len(t, f.Markers, 1)
		assert.Equal(t, MarkerCurrent, f.Markers[0].Kind)
		assert.Equal(t, "광주", f.Markers[0].Name)
		assert.False(t, f.Markers[0].Clickable)
		assert.InDelta(t, 1/1.75, f.Markers[0].Scale, 1e-12)
		assert.InDelta(t, 1/1.75, f.Traveler.Scale, 1e-12)
	})
}

func TestBuildCountryLabels(t *testing.T) {
	b, j := newTestBuilder()

	t.Run("neighbours in visit order", func(t *testing.T) {
		state := domain.State{Position: cityPoint(j, "Bangkok"), CurrentStopID: 5, FromStopID: 4, ToStopID: 5}
		f := b.Build(Input{Language: "en", State: state})

		var codes []string
		for _, c := range f.Countries {
			codes = append(codes, c.Code)
			if c.Code == "TH" {
				assert.True(t, c.Current)
				assert.Equal(t, "THAILAND", c.Name)
				assert.InDelta(t, domain.CountryLabelRadius, c.Position.Len(), 1e-9)
			}
		}
		assert.Equal(t, []string{"PT", "TH", "LA"}, codes)
		require.NotNil(t, f.Country)
		assert.Equal(t, "Thailand", f.Country.Name)
	})

	t.Run("last country has one neighbour", func(t *testing.T) {
		state := domain.State{Position: cityPoint(j, "Vientiane"), CurrentStopID: 6, FromStopID: 5, ToStopID: 6}
		f := b.Build(Input{Language: "ko", State: state})

		var codes []string
		for _, c := range f.Countries {
			codes = append(codes, c.Code)
		}
		assert.Equal(t, []string{"TH", "LA"}, codes)
		assert.Equal(t, "LA", f.Country.Name, "no localized name falls back to the code")
	})
}

func TestBuildHints(t *testing.T) {
	b, j := newTestBuilder()
	start := domain.State{Position: cityPoint(j, "Gwangju"), CurrentStopID: 1, FromStopID: 1, ToStopID: 2}

	f := b.Build(Input{Progress: 0.01, State: start})
	assert.Equal(t, Hints{Scroll: true, Swipe: true, About: true}, f.Hints)

	f = b.Build(Input{Progress: 0.04, State: start})
	assert.Equal(t, Hints{Swipe: true}, f.Hints)

	later := domain.State{Position: cityPoint(j, "Lisbon"), CurrentStopID: 2, FromStopID: 1, ToStopID: 2}
	f = b.Build(Input{Progress: 0.01, State: later})
	assert.Equal(t, Hints{Scroll: true, Swipe: true}, f.Hints)
}

func TestBuildStopInfo(t *testing.T) {
	b, j := newTestBuilder()
	state := domain.State{Position: cityPoint(j, "Bangkok"), CurrentStopID: 3, FromStopID: 2, ToStopID: 3}

	f := b.Build(Input{Language: "ko", State: state, Gallery: "Bangkok"})
	assert.Equal(t, StopInfo{ID: 3, Index: 2, Total: 6, City: "Bangkok", Name: "방콕", HasPhotos: true}, f.CurrentStop)
	assert.Equal(t, "Bangkok", f.Gallery)
	assert.Len(t, f.Timeline, 6)
	assert.Len(t, f.Legend, 5)
}

func TestPolylines(t *testing.T) {
	j := testJourney()
	j.Stops = j.Stops[1:4] // Lisbon, Bangkok by flight, Chiang Mai by bus
	path := domain.GeneratePath(j.Stops, j.Cities, domain.ScenePathRadius)
	require.Equal(t, 112, path.Len())
	b := NewBuilder(j, path)

	t.Run("start shows only the future path", func(t *testing.T) {
		lines := b.polylines(0)
		require.Len(t, lines, 1)
		assert.True(t, lines[0].Future)
		assert.Equal(t, FutureColor, lines[0].Color)
		assert.Len(t, lines[0].Points, 112)
	})

	t.Run("halfway", func(t *testing.T) {
		lines := b.polylines(0.5)
		require.Len(t, lines, 2)
		assert.Equal(t, TransportColor(domain.TransportFlight), lines[0].Color)
		assert.Len(t, lines[0].Points, 56)
		assert.Len(t, lines[1].Points, 56)
		assert.Equal(t, path.At(56).Point, lines[1].Points[0])
	})

	t.Run("end joins runs at colour changes", func(t *testing.T) {
		lines := b.polylines(1)
		require.Len(t, lines, 2)
		assert.Len(t, lines[0].Points, 82)
		assert.Equal(t, path.At(81).Point, lines[0].Points[81])
		assert.Equal(t, TransportColor(domain.TransportBus), lines[1].Color)
		assert.Len(t, lines[1].Points, 31)
	})

	t.Run("empty path", func(t *testing.T) {
		assert.Nil(t, NewBuilder(j, domain.Path{}).polylines(0.4))
	})
}

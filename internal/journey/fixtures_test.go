package journey

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/couchcryptid/journey-globe-service/internal/domain"
)

// testJourney is a start, a flight and a bus leg: 81 + 31 samples.
func testJourney() *domain.Journey {
	return &domain.Journey{
		Stops: []domain.Stop{
			{ID: 1, City: "Gwangju", Transport: domain.TransportStart},
			{ID: 2, City: "Bangkok", Transport: domain.TransportFlight},
			{ID: 3, City: "Chiang Mai", Transport: domain.TransportBus},
		},
		Cities: domain.CityTable{
			"Gwangju":    {Ko: "광주", En: "Gwangju", Lat: 35.1595, Lng: 126.8526, Country: "KR"},
			"Bangkok":    {Ko: "방콕", En: "Bangkok", Lat: 13.7563, Lng: 100.5018, Country: "TH"},
			"Chiang Mai": {Ko: "치앙마이", En: "Chiang Mai", Lat: 18.7883, Lng: 98.9853, Country: "TH"},
		},
		Photos: domain.PhotoIndex{
			"Bangkok": {CityCode: "BKK", Photos: []domain.Photo{{ID: "bkk-1", Date: "2016-10-03"}}},
		},
	}
}

var testViewport = Viewport{DocumentHeight: 2000, ViewportHeight: 1000}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type memPrefs struct {
	mu    sync.Mutex
	langs map[string]string
	err   error
}

func newMemPrefs() *memPrefs { return &memPrefs{langs: make(map[string]string)} }

func (p *memPrefs) Language(_ context.Context, viewerID string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.langs[viewerID], p.err
}

func (p *memPrefs) SetLanguage(_ context.Context, viewerID, lang string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.langs[viewerID] = lang
	return nil
}

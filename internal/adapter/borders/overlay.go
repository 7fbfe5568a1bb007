package borders

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/paulmach/orb/geojson"

	"github.com/couchcryptid/journey-globe-service/internal/observability"
)

// Source supplies the country collection.
type Source interface {
	Countries(ctx context.Context) (*geojson.FeatureCollection, error)
}

// Overlay serves projected border rings per country code. The collection is
// fetched once on first use; a failed fetch is retried on the next call.
type Overlay struct {
	source  Source
	cache   *lruCache
	metrics *observability.Metrics

	mu        sync.Mutex
	countries *geojson.FeatureCollection
}

// NewOverlay wraps a source with an LRU cache of projected rings.
func NewOverlay(source Source, cacheSize int, metrics *observability.Metrics) *Overlay {
	return &Overlay{
		source:  source,
		cache:   newLRUCache(cacheSize),
		metrics: metrics,
	}
}

// Rings returns the border rings for a country code. An empty code has no
// overlay.
func (o *Overlay) Rings(ctx context.Context, code string) ([]Ring, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, nil
	}
	if rings, ok := o.cache.get(code); ok {
		o.metrics.BorderCache.WithLabelValues("hit").Inc()
		return rings, nil
	}
	o.metrics.BorderCache.WithLabelValues("miss").Inc()

	fc, err := o.collection(ctx)
	if err != nil {
		return nil, fmt.Errorf("load borders: %w", err)
	}
	rings := CountryRings(fc, code)
	o.cache.put(code, rings)
	return rings, nil
}

func (o *Overlay) collection(ctx context.Context) (*geojson.FeatureCollection, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.countries != nil {
		return o.countries, nil
	}
	fc, err := o.source.Countries(ctx)
	if err != nil {
		return nil, err
	}
	o.countries = fc
	return fc, nil
}

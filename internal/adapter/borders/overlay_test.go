package borders

import (
	"context"
	"errors"
	"testing"

	"github.com/paulmach/orb/geojson"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/journey-globe-service/internal/observability"
)

type countingSource struct {
	calls int
	errs  []error
}

func (s *countingSource) Countries(_ context.Context) (*geojson.FeatureCollection, error) {
	s.calls++
	if len(s.errs) > 0 {
		err := s.errs[0]
		s.errs = s.errs[1:]
		return nil, err
	}
	return testCollection(), nil
}

func TestOverlay_CachesRings(t *testing.T) {
	src := &countingSource{}
	metrics := observability.NewMetricsForTesting()
	o := NewOverlay(src, 8, metrics)
	ctx := context.Background()

	first, err := o.Rings(ctx, "kr")
	require.NoError(t, err)
	assert.Len(t, first, 2)

	second, err := o.Rings(ctx, "KR")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// another country reuses the downloaded collection
	fr, err := o.Rings(ctx, "FR")
	require.NoError(t, err)
	assert.Len(t, fr, 2)

	assert.Equal(t, 1, src.calls)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.BorderCache.WithLabelValues("hit")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(metrics.BorderCache.WithLabelValues("miss")), 0)
}

func TestOverlay_EmptyCode(t *testing.T) {
	src := &countingSource{}
	o := NewOverlay(src, 8, observability.NewMetricsForTesting())

	rings, err := o.Rings(context.Background(), " ")
	require.NoError(t, err)
	assert.Nil(t, rings)
	assert.Zero(t, src.calls)
}

func TestOverlay_RetriesAfterFailure(t *testing.T) {
	src := &countingSource{errs: []error{errors.New("offline")}}
	o := NewOverlay(src, 8, observability.NewMetricsForTesting())
	ctx := context.Background()

	_, err := o.Rings(ctx, "KR")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "offline")

	rings, err := o.Rings(ctx, "KR")
	require.NoError(t, err)
	assert.Len(t, rings, 2)
	assert.Equal(t, 2, src.calls)
}

func TestOverlay_UnknownCountryIsEmpty(t *testing.T) {
	o := NewOverlay(&countingSource{}, 8, observability.NewMetricsForTesting())
	rings, err := o.Rings(context.Background(), "LA")
	require.NoError(t, err)
	assert.Empty(t, rings)
}

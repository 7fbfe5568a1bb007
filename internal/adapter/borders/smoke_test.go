//go:build borders

package borders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/journey-globe-service/internal/config"
	"github.com/couchcryptid/journey-globe-service/internal/observability"
)

// These tests download the real Natural Earth collection.
// Run with: go test -tags=borders ./internal/adapter/borders/ -v -count=1

func smokeClient() *Client {
	return NewClient(ClientConfig{
		PrimaryURL:  config.DefaultBordersPrimaryURL,
		FallbackURL: config.DefaultBordersFallbackURL,
		Timeout:     30 * time.Second,
	}, discardLogger(), observability.NewMetricsForTesting())
}

func TestSmoke_Countries(t *testing.T) {
	fc, err := smokeClient().Countries(context.Background())
	require.NoError(t, err)
	assert.Greater(t, len(fc.Features), 150)
}

func TestSmoke_AliasedCountries(t *testing.T) {
	o := NewOverlay(smokeClient(), 8, observability.NewMetricsForTesting())

	for _, code := range []string{"KR", "FR", "NO", "IN"} {
		rings, err := o.Rings(context.Background(), code)
		require.NoError(t, err, code)
		assert.NotEmpty(t, rings, code)
	}
}

// Package borders fetches Natural Earth country outlines and turns them into
// smoothed rings on the globe.
package borders

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/paulmach/orb/geojson"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/couchcryptid/journey-globe-service/internal/observability"
)

// breakerFailures is how many consecutive failures open a source's breaker.
const breakerFailures = 3

// ClientConfig names the border sources.
type ClientConfig struct {
	PrimaryURL  string
	FallbackURL string
	Timeout     time.Duration
	// BreakerTimeout is how long an open breaker rejects calls before probing.
	BreakerTimeout time.Duration
}

type source struct {
	name    string
	url     string
	breaker *gobreaker.CircuitBreaker[*geojson.FeatureCollection]
}

// Client downloads the admin-0 country collection, trying the primary URL
// first and the fallback second. Each source sits behind its own breaker.
type Client struct {
	httpClient *http.Client
	sources    []source
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewClient creates a border client. An empty fallback URL disables the
// fallback.
func NewClient(cfg ClientConfig, logger *slog.Logger, metrics *observability.Metrics) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
		metrics:    metrics,
	}
	c.sources = append(c.sources, c.newSource("primary", cfg.PrimaryURL, cfg.BreakerTimeout))
	if cfg.FallbackURL != "" {
		c.sources = append(c.sources, c.newSource("fallback", cfg.FallbackURL, cfg.BreakerTimeout))
	}
	return c
}

func (c *Client) newSource(name, url string, timeout time.Duration) source {
	settings := gobreaker.Settings{
		Name:    "borders-" + name,
		Timeout: timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn("border source breaker changed state", "breaker", name, "from", from.String(), "to", to.String())
		},
	}
	return source{
		name:    name,
		url:     url,
		breaker: gobreaker.NewCircuitBreaker[*geojson.FeatureCollection](settings),
	}
}

// Countries returns the country collection from the first source that
// answers.
func (c *Client) Countries(ctx context.Context) (*geojson.FeatureCollection, error) {
	var errs []error
	for _, src := range c.sources {
		fc, err := src.breaker.Execute(func() (*geojson.FeatureCollection, error) {
			return c.fetch(ctx, src.url)
		})
		if err == nil {
			c.metrics.BorderRequests.WithLabelValues(src.name, "success").Inc()
			return fc, nil
		}
		c.metrics.BorderRequests.WithLabelValues(src.name, "error").Inc()
		c.logger.Warn("border source failed", "source", src.name, "error", err)
		errs = append(errs, fmt.Errorf("%s: %w", src.name, err))

		if ctx.Err() != nil {
			break
		}
	}
	return nil, errors.Join(errs...)
}

func (c *Client) fetch(ctx context.Context, url string) (*geojson.FeatureCollection, error) {
	start := time.Now()
	defer func() { c.metrics.BorderFetchDuration.Observe(time.Since(start).Seconds()) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("border request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("border source error: status %d: %s", resp.StatusCode, body)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(body)
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return fc, nil
}

package journey

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/journey-globe-service/internal/observability"
	"github.com/couchcryptid/journey-globe-service/internal/render"
)

// Loop draws every session on a fixed cadence. Only frames that changed since
// the last draw reach the surface.
type Loop struct {
	registry *Registry
	surface  render.Surface
	clock    clockwork.Clock
	interval time.Duration
	logger   *slog.Logger
	metrics  *observability.Metrics
	ready    atomic.Bool
}

// NewLoop creates a render loop ticking every interval.
func NewLoop(r *Registry, surface render.Surface, clock clockwork.Clock, interval time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Loop {
	return &Loop{
		registry: r,
		surface:  surface,
		clock:    clock,
		interval: interval,
		logger:   logger,
		metrics:  metrics,
	}
}

// CheckReadiness returns nil once the loop has completed a tick.
func (l *Loop) CheckReadiness(_ context.Context) error {
	if !l.ready.Load() {
		return errors.New("render loop has not ticked yet")
	}
	return nil
}

// Run ticks until the context is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Info("render loop started", "interval", l.interval)
	l.metrics.LoopRunning.Set(1)
	defer l.metrics.LoopRunning.Set(0)

	ticker := l.clock.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("render loop stopping", "reason", ctx.Err())
			return nil
		case <-ticker.Chan():
			l.Tick(ctx)
		}
	}
}

// Tick evicts idle sessions, then steps and draws every remaining one.
func (l *Loop) Tick(ctx context.Context) {
	l.registry.Evict()

	for _, s := range l.registry.Sessions() {
		f, key, changed := s.renderChanged()
		if !changed {
			continue
		}
		if err := l.surface.Draw(ctx, s.ID(), f); err != nil {
			l.metrics.FrameDrawErrors.Inc()
			l.logger.Warn("draw frame failed", "session", s.ID(), "error", err)
			continue
		}
		s.markDrawn(key)
		l.metrics.FramesDrawn.Inc()
	}
	l.ready.Store(true)
}

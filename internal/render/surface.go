package render

import (
	"context"
	"errors"
	"log/slog"
)

// Surface receives frames for drawing. Implementations must not retain the
// frame's slices after Draw returns.
type Surface interface {
	Draw(ctx context.Context, sessionID string, f Frame) error
}

// SurfaceFunc adapts a function to Surface.
type SurfaceFunc func(ctx context.Context, sessionID string, f Frame) error

func (fn SurfaceFunc) Draw(ctx context.Context, sessionID string, f Frame) error {
	return fn(ctx, sessionID, f)
}

// LogSurface writes a one-line summary of each frame at debug level.
type LogSurface struct {
	logger *slog.Logger
}

// NewLogSurface creates a LogSurface.
func NewLogSurface(logger *slog.Logger) *LogSurface {
	return &LogSurface{logger: logger}
}

func (s *LogSurface) Draw(ctx context.Context, sessionID string, f Frame) error {
	s.logger.DebugContext(ctx, "frame",
		"session", sessionID,
		"progress", f.Progress,
		"stop", f.CurrentStop.ID,
		"camera", f.Camera.Mode,
		"markers", len(f.Markers),
		"paths", len(f.Paths),
	)
	return nil
}

// Multi fans a frame out to several surfaces. Every surface is drawn even if
// an earlier one fails; the errors are joined.
func Multi(surfaces ...Surface) Surface {
	return SurfaceFunc(func(ctx context.Context, sessionID string, f Frame) error {
		var errs []error
		for _, s := range surfaces {
			if err := s.Draw(ctx, sessionID, f); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})
}

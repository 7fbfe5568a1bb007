package render

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMulti(t *testing.T) {
	var calls []string
	ok := SurfaceFunc(func(_ context.Context, id string, _ Frame) error {
		calls = append(calls, "ok:"+id)
		return nil
	})
	bad := SurfaceFunc(func(_ context.Context, id string, _ Frame) error {
		calls = append(calls, "bad:"+id)
		return errors.New("broken pipe")
	})
	logs := NewLogSurface(slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := Multi(bad, ok, logs).Draw(context.Background(), "s1", Frame{})

	assert.ErrorContains(t, err, "broken pipe")
	assert.Equal(t, []string{"bad:s1", "ok:s1"}, calls)
	assert.NoError(t, Multi(ok).Draw(context.Background(), "s2", Frame{}))
}

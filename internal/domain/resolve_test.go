package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	path := GeneratePath(threeStops(), testCities, ScenePathRadius)

	t.Run("boundaries", func(t *testing.T) {
		assert.Equal(t, 1, Resolve(0, path).CurrentStopID)
		assert.Equal(t, 3, Resolve(1, path).CurrentStopID)
		assert.Equal(t, 3, Resolve(1.7, path).CurrentStopID)
		assert.Equal(t, 1, Resolve(-1, path).CurrentStopID)
	})

	t.Run("current stop flips at the segment threshold", func(t *testing.T) {
		before := Resolve(progressAt(11, path.Len()), path)
		assert.Equal(t, 11, before.Index)
		assert.Less(t, before.Sample.T, SegmentThreshold)
		assert.Equal(t, 1, before.CurrentStopID)
		assert.Equal(t, 1, before.FromStopID)
		assert.False(t, before.IsDeparting())

		after := Resolve(progressAt(12, path.Len()), path)
		assert.Equal(t, 12, after.Index)
		assert.Equal(t, 2, after.CurrentStopID)
		assert.Equal(t, 1, after.FromStopID)
		assert.True(t, after.IsDeparting())
	})

	t.Run("position comes from the sample", func(t *testing.T) {
		s := Resolve(progressAt(40, path.Len()), path)
		assert.Equal(t, path.At(40).Point, s.Position)
		assert.Equal(t, 2, s.ToStopID)
	})

	t.Run("idempotent", func(t *testing.T) {
		for _, p := range []float64{0, 0.1, 0.33, 0.5, 0.77, 1} {
			assert.Equal(t, Resolve(p, path), Resolve(p, path))
		}
	})

	t.Run("empty path", func(t *testing.T) {
		s := Resolve(0.4, Path{})
		assert.Equal(t, Vec3{X: 0, Y: 2, Z: 0}, s.Position)
		assert.Equal(t, 1, s.CurrentStopID)
		assert.Equal(t, 1, s.FromStopID)
		assert.Equal(t, 2, s.ToStopID)
		assert.Equal(t, 0, s.Index)
	})
}

func TestStopIndex(t *testing.T) {
	stops := threeStops()
	assert.Equal(t, 0, StopIndex(stops, 1))
	assert.Equal(t, 2, StopIndex(stops, 3))
	assert.Equal(t, 0, StopIndex(stops, 42))
}

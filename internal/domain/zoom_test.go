package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoomForStop(t *testing.T) {
	tests := []struct {
		id   int
		want float64
	}{
		{1, 1.5},
		{2, 0.8},
		{4, 0},
		{13, 2.0},
		{30, 1.0},
		{35, 0},
		{42, 2.2},
		{59, 1.95},
		{75, 1.5},
		{101, 1.5},
		{134, 1.0},
		{135, 1.0},
		{0, 0},
		{-3, 0},
		{9999, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ZoomForStop(tt.id), "stop %d", tt.id)
	}
}

func TestZoomTableRangesAreDisjoint(t *testing.T) {
	for i, a := range zoomTable {
		assert.LessOrEqual(t, a.Lo, a.Hi, "rule %d", i)
		for j := i + 1; j < len(zoomTable); j++ {
			b := zoomTable[j]
			overlap := a.Lo <= b.Hi && b.Lo <= a.Hi
			assert.False(t, overlap, "rules %d and %d overlap", i, j)
		}
	}
}

func TestZoomScale(t *testing.T) {
	assert.Equal(t, 1.0, ZoomScale(9999))
	assert.Equal(t, 2.0, ZoomScale(13))
	assert.Equal(t, 1.75, ZoomScale(1))
}

// zoomGolden is the closeness for every stop id from 0 to 136, one entry per
// id. 136 is past the last stop and falls back to 0.
var zoomGolden = [...]float64{
	0, 1.5, 0.8, 0, 0, 0, 0, 1.5, 2, 2,               // 0-9
	0.5, 1.5, 2, 2, 2, 1.8, 1.5, 1.7, 1.8, 1.9,       // 10-19
	2, 2, 2, 2, 2, 2, 2, 2, 1.9, 1.8,                 // 20-29
	1, 1, 1.5, 1.5, 0, 0, 0, 1.5, 1.5, 1.5,           // 30-39
	2.2, 2.2, 2.2, 2.2, 2.2, 2.2, 1.9, 1.9, 1.5, 1.3, // 40-49
	2.2, 2.2, 2, 1.3, 1.7, 1.5, 2.2, 1.8, 1.8, 1.95,  // 50-59
	2.1, 2.1, 2.1, 2.1, 2.1, 2.1, 2.1, 2.1, 2.1, 1.9, // 60-69
	1.5, 1.5, 1.5, 1.5, 1.5, 1.5, 1.5, 1.5, 1.5, 1.5, // 70-79
	1.5, 1.5, 1.5, 1.1, 2.1, 2.2, 2.2, 2.1, 2, 2,     // 80-89
	2, 2, 1.7, 1.7, 1.7, 1.9, 2, 2, 2, 2,             // 90-99
	2, 1.5, 1.5, 1.6, 1.6, 1.3, 1.5, 1.5, 2, 2,       // 100-109
	2, 2, 2, 2, 2, 2, 2, 2, 2, 1.5,                   // 110-119
	1.7, 1.7, 1.8, 1.8, 1.8, 1.8, 1.8, 1.8, 1.8, 1.8, // 120-129
	1.5, 1.5, 1.5, 1.7, 1, 1, 0,                      // 130-136
}

func TestZoomForStopGolden(t *testing.T) {
	require.Len(t, zoomGolden, 137)
	for id, want := range zoomGolden {
		assert.Equal(t, want, ZoomForStop(id), "stop %d", id)
	}
}

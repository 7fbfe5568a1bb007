package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrollProgress(t *testing.T) {
	tests := []struct {
		name    string
		scrollY float64
		doc     float64
		view    float64
		want    float64
	}{
		{"top", 0, 5000, 1000, 0},
		{"middle", 2000, 5000, 1000, 0.5},
		{"bottom", 4000, 5000, 1000, 1},
		{"overscroll", 4600, 5000, 1000, 1},
		{"rubber band above top", -120, 5000, 1000, 0},
		{"not scrollable", 10, 800, 800, 0},
		{"viewport taller than document", 10, 600, 800, 0},
		{"NaN offset", math.NaN(), 5000, 1000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScrollProgress(tt.scrollY, tt.doc, tt.view)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEstablishingZoom(t *testing.T) {
	assert.Equal(t, 0.0, EstablishingZoom(0))
	assert.Equal(t, 0.0, EstablishingZoom(0.049))
	assert.InDelta(t, 0.5, EstablishingZoom(0.15), 1e-12)
	assert.InDelta(t, 1.0, EstablishingZoom(0.25), 1e-12)
	assert.Equal(t, 1.0, EstablishingZoom(0.9))
	assert.Equal(t, 1.0, EstablishingZoom(4))
}

func TestDocumentHeight(t *testing.T) {
	assert.Equal(t, 3000.0, DocumentHeight(3, 1000))
	assert.Equal(t, 0.0, DocumentHeight(0, 1000))
	assert.Equal(t, 0.0, DocumentHeight(-2, 1000))
}

// Package journey owns viewer sessions: it turns scroll, touch and gesture
// input into progress and draws frames on a fixed cadence.
package journey

import (
	"github.com/couchcryptid/journey-globe-service/internal/domain"
	"github.com/couchcryptid/journey-globe-service/internal/render"
)

// Engine holds the data every session of one itinerary shares. Paths are
// generated once here and never again.
type Engine struct {
	journey   *domain.Journey
	scenePath domain.Path
	uiPath    domain.Path
	builder   *render.Builder
}

// NewEngine generates the scene and UI paths for j.
func NewEngine(j *domain.Journey) *Engine {
	scene := domain.GeneratePath(j.Stops, j.Cities, domain.ScenePathRadius)
	return &Engine{
		journey:   j,
		scenePath: scene,
		uiPath:    domain.GeneratePath(j.Stops, j.Cities, domain.UIPathRadius),
		builder:   render.NewBuilder(j, scene),
	}
}

// Journey returns the itinerary data.
func (e *Engine) Journey() *domain.Journey { return e.journey }

// ScenePath is the path drawn on the globe.
func (e *Engine) ScenePath() domain.Path { return e.scenePath }

// UIPath is the path swipe navigation is resolved against.
func (e *Engine) UIPath() domain.Path { return e.uiPath }

// Package camera moves the globe camera between automatic follow of the
// traveler and free user control.
package camera

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/journey-globe-service/internal/domain"
)

const (
	// BaseDistance is the follow distance from the origin at zero closeness.
	BaseDistance = 5.5
	// ZoomStep is how much one unit of closeness pulls the camera in.
	ZoomStep = 1.5
	// Smoothing is the fraction of the remaining distance covered per frame.
	Smoothing = 0.15
	// IdleTimeout is how long after the last manual gesture auto-follow resumes.
	IdleTimeout = 3 * time.Second
	// AutoRotateMaxZoom is the establishing zoom below which the idle globe spins.
	AutoRotateMaxZoom = 0.2
)

// InitialPosition is where the camera sits before its first update.
var InitialPosition = domain.Vec3{X: -2.5, Y: 3, Z: -3.5}

// Mode is the camera state.
type Mode int

const (
	ModeAutoFollow Mode = iota
	ModeInteracting
)

func (m Mode) String() string {
	if m == ModeInteracting {
		return "interacting"
	}
	return "auto-follow"
}

// View is the camera placement for one frame.
type View struct {
	Position   domain.Vec3 `json:"position"`
	LookAt     domain.Vec3 `json:"lookAt"`
	Distance   float64     `json:"distance"`
	Mode       string      `json:"mode"`
	AutoRotate bool        `json:"autoRotate"`
}

// Controller is not safe for concurrent use; the owning session serialises
// access.
type Controller struct {
	clock       clockwork.Clock
	position    domain.Vec3
	interacting bool
	idleAt      time.Time
	placed      bool
}

// New returns a controller at InitialPosition in auto-follow mode.
func New(clock clockwork.Clock) *Controller {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Controller{clock: clock, position: InitialPosition}
}

// TargetDistance is the follow distance for the larger of the two closeness
// inputs.
func TargetDistance(manualZoom, stopZoom float64) float64 {
	return BaseDistance - max(manualZoom, stopZoom)*ZoomStep
}

// Interact suspends auto-follow and restarts the idle deadline.
func (c *Controller) Interact() {
	c.interacting = true
	c.idleAt = c.clock.Now().Add(IdleTimeout)
}

// Place records a camera position chosen by the user while interacting.
func (c *Controller) Place(pos domain.Vec3) {
	c.position = pos
	c.placed = true
}

// Release hands control back to auto-follow at once. Scrolling does this.
func (c *Controller) Release() {
	c.interacting = false
	c.idleAt = time.Time{}
}

// Mode reports the current mode, expiring a lapsed interaction.
func (c *Controller) Mode() Mode {
	if c.interacting && !c.clock.Now().Before(c.idleAt) {
		c.interacting = false
	}
	if c.interacting {
		return ModeInteracting
	}
	return ModeAutoFollow
}

// Position returns the last computed camera position.
func (c *Controller) Position() domain.Vec3 { return c.position }

// Update advances the camera one frame toward the traveler at target.
func (c *Controller) Update(target domain.Vec3, currentStopID int, manualZoom float64) View {
	mode := c.Mode()
	dist := TargetDistance(manualZoom, domain.ZoomForStop(currentStopID))

	if mode == ModeAutoFollow && target.Len() > 0 {
		desired := target.Normalize().Scale(dist)
		if !c.placed {
			c.position = desired
			c.placed = true
		} else {
			c.position = c.position.Lerp(desired, Smoothing)
		}
	}

	return View{
		Position:   c.position,
		LookAt:     domain.Vec3{},
		Distance:   dist,
		Mode:       mode.String(),
		AutoRotate: mode == ModeAutoFollow && manualZoom < AutoRotateMaxZoom,
	}
}

package camera

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"

	"github.com/couchcryptid/journey-globe-service/internal/domain"
)

func TestTargetDistance(t *testing.T) {
	assert.Equal(t, 5.5, TargetDistance(0, 0))
	assert.Equal(t, 4.0, TargetDistance(1, 0))
	assert.Equal(t, 2.5, TargetDistance(0.5, 2))
	assert.Equal(t, 2.5, TargetDistance(2, 0.5))
}

func TestControllerFirstUpdateSnaps(t *testing.T) {
	c := New(clockwork.NewFakeClock())
	assert.Equal(t, InitialPosition, c.Position())

	target := domain.Vec3{X: 0, Y: 0, Z: 2}
	v := c.Update(target, 9999, 0)

	assert.InDelta(t, 5.5, v.Position.Z, 1e-9)
	assert.InDelta(t, 0.0, v.Position.X, 1e-9)
	assert.Equal(t, domain.Vec3{}, v.LookAt)
	assert.Equal(t, "auto-follow", v.Mode)
	assert.True(t, v.AutoRotate)
}

func TestControllerSmoothing(t *testing.T) {
	c := New(clockwork.NewFakeClock())
	c.Update(domain.Vec3{Z: 2}, 9999, 0)

	// jump the traveler to the opposite axis and take one step
	v := c.Update(domain.Vec3{X: 2}, 9999, 0)
	assert.InDelta(t, 5.5*Smoothing, v.Position.X, 1e-9)
	assert.InDelta(t, 5.5*(1-Smoothing), v.Position.Z, 1e-9)

	// keeps converging without overshooting
	prev := v.Position.X
	for range 60 {
		v = c.Update(domain.Vec3{X: 2}, 9999, 0)
		assert.GreaterOrEqual(t, v.Position.X, prev)
		prev = v.Position.X
	}
	assert.InDelta(t, 5.5, v.Position.X, 1e-3)
}

func TestControllerZoomPullsCameraIn(t *testing.T) {
	c := New(clockwork.NewFakeClock())
	// stop 13 has closeness 2.0
	v := c.Update(domain.Vec3{Y: 2}, 13, 0)
	assert.InDelta(t, 2.5, v.Position.Len(), 1e-9)
	assert.Equal(t, 2.5, v.Distance)
}

func TestControllerIdleTimeout(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := New(clock)
	c.Update(domain.Vec3{Z: 2}, 9999, 0)

	c.Interact()
	c.Place(domain.Vec3{X: 1, Y: 1, Z: 1})
	v := c.Update(domain.Vec3{X: 2}, 9999, 0)
	assert.Equal(t, "interacting", v.Mode)
	assert.False(t, v.AutoRotate)
	assert.Equal(t, domain.Vec3{X: 1, Y: 1, Z: 1}, v.Position)

	clock.Advance(2 * time.Second)
	c.Interact()

	clock.Advance(2999 * time.Millisecond)
	assert.Equal(t, ModeInteracting, c.Mode())

	clock.Advance(time.Millisecond)
	assert.Equal(t, ModeAutoFollow, c.Mode())

	v = c.Update(domain.Vec3{X: 2}, 9999, 0)
	assert.Equal(t, "auto-follow", v.Mode)
	assert.NotEqual(t, domain.Vec3{X: 1, Y: 1, Z: 1}, v.Position)
}

func TestControllerRelease(t *testing.T) {
	c := New(clockwork.NewFakeClock())
	c.Interact()
	assert.Equal(t, ModeInteracting, c.Mode())

	c.Release()
	assert.Equal(t, ModeAutoFollow, c.Mode())
}

func TestControllerAutoRotate(t *testing.T) {
	c := New(clockwork.NewFakeClock())
	assert.True(t, c.Update(domain.Vec3{Z: 2}, 9999, 0.1).AutoRotate)
	assert.False(t, c.Update(domain.Vec3{Z: 2}, 9999, 0.2).AutoRotate)
}

func TestControllerIgnoresZeroTarget(t *testing.T) {
	c := New(clockwork.NewFakeClock())
	v := c.Update(domain.Vec3{}, 1, 0)
	assert.Equal(t, InitialPosition, v.Position)
}

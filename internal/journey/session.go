package journey

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/journey-globe-service/internal/camera"
	"github.com/couchcryptid/journey-globe-service/internal/domain"
	"github.com/couchcryptid/journey-globe-service/internal/i18n"
	"github.com/couchcryptid/journey-globe-service/internal/observability"
	"github.com/couchcryptid/journey-globe-service/internal/render"
)

var (
	// ErrSessionNotFound is returned for unknown or evicted session IDs.
	ErrSessionNotFound = errors.New("session not found")
	// ErrNoPhotos is returned when opening the gallery for a city without photos.
	ErrNoPhotos = errors.New("city has no photos")
	// ErrUnsupportedLanguage is returned for language codes outside i18n.Supported.
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

// Viewport is the host's scroll geometry in pixels.
type Viewport struct {
	DocumentHeight float64 `json:"documentHeight"`
	ViewportHeight float64 `json:"viewportHeight"`
}

// ScrollRequest asks the host to scroll to TargetY.
type ScrollRequest struct {
	TargetY     float64 `json:"targetY"`
	Progress    float64 `json:"progress"`
	TargetIndex int     `json:"targetIndex"`
	Direction   string  `json:"direction"`
	Smooth      bool    `json:"smooth"`
}

// frameKey captures what makes one frame differ from another.
type frameKey struct {
	progress   float64
	camera     domain.Vec3
	mode       string
	autoRotate bool
	language   string
	gallery    string
}

// Session is one viewer's state. It is the only writer of progress, zoom,
// interaction and gallery state; every method takes the session lock.
type Session struct {
	mu sync.Mutex

	id       string
	viewerID string
	engine   *Engine
	clock    clockwork.Clock
	logger   *slog.Logger
	metrics  *observability.Metrics
	camera   *camera.Controller
	throttle time.Duration

	progress     float64
	zoom         float64
	pending      *float64
	lastScrollAt time.Time
	viewport     Viewport
	language     string
	gallery      string

	touchStartY float64
	dragging    bool

	lastActive time.Time
	last       *render.Frame
	lastKey    frameKey
	drawn      bool
}

func newSession(id, viewerID, lang string, e *Engine, clock clockwork.Clock, throttle time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Session {
	return &Session{
		id:         id,
		viewerID:   viewerID,
		engine:     e,
		clock:      clock,
		logger:     logger.With("session", id),
		metrics:    metrics,
		camera:     camera.New(clock),
		throttle:   throttle,
		language:   lang,
		lastActive: clock.Now(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// ViewerID returns the identifier preferences are stored under.
func (s *Session) ViewerID() string { return s.viewerID }

func (s *Session) touch() { s.lastActive = s.clock.Now() }

// Scroll records a scroll offset. At most one offset is accepted per
// throttle interval, and an accepted offset replaces any that has not been
// applied yet. The offset takes effect on the next frame. Scrolling hands the
// camera back to auto-follow. Ignored while the gallery is open.
func (s *Session) Scroll(scrollY float64, vp Viewport) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.gallery != "" {
		s.metrics.ScrollEvents.WithLabelValues("ignored").Inc()
		return false
	}
	now := s.clock.Now()
	if !s.lastScrollAt.IsZero() && now.Sub(s.lastScrollAt) < s.throttle {
		s.metrics.ScrollEvents.WithLabelValues("throttled").Inc()
		return false
	}
	s.lastScrollAt = now
	s.viewport = vp

	p := domain.ScrollProgress(scrollY, vp.DocumentHeight, vp.ViewportHeight)
	s.pending = &p
	s.metrics.ScrollEvents.WithLabelValues("accepted").Inc()
	return true
}

// TouchStart begins a swipe. Only single-finger touches count.
func (s *Session) TouchStart(y float64, touches int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.gallery != "" {
		return
	}
	if touches == 1 {
		s.touchStartY = y
		s.dragging = true
		return
	}
	s.dragging = false
}

// TouchEnd finishes a swipe. It returns a scroll request when the swipe
// resolves to a different path position. vp may carry only the viewport
// height; the document height is then one viewport per stop. With no viewport
// from this call or an earlier scroll there is no offset to target, and the
// swipe is dropped.
func (s *Session) TouchEnd(y float64, vp Viewport) (ScrollRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.gallery != "" || !s.dragging {
		return ScrollRequest{}, false
	}
	s.dragging = false
	if vp.DocumentHeight <= 0 && vp.ViewportHeight > 0 {
		vp.DocumentHeight = domain.DocumentHeight(len(s.engine.Journey().Stops), vp.ViewportHeight)
	}
	if vp.DocumentHeight > 0 {
		s.viewport = vp
	}

	dir := domain.SwipeDirection(s.touchStartY - y)
	if dir == domain.DirectionNone {
		s.metrics.Swipes.WithLabelValues(dir.String(), "ignored").Inc()
		return ScrollRequest{}, false
	}

	path := s.engine.UIPath()
	if path.Len() == 0 {
		s.metrics.Swipes.WithLabelValues(dir.String(), "unchanged").Inc()
		return ScrollRequest{}, false
	}
	stops := s.engine.Journey().Stops
	current := path.Index(s.progress)
	state := domain.Resolve(s.progress, path)
	stopIdx := domain.StopIndex(stops, state.CurrentStopID)

	target := domain.ResolveSwipe(dir, current, stopIdx, path, stops)
	if target == current {
		s.metrics.Swipes.WithLabelValues(dir.String(), "unchanged").Inc()
		return ScrollRequest{}, false
	}
	if s.viewport.DocumentHeight <= 0 {
		s.metrics.Swipes.WithLabelValues(dir.String(), "no_viewport").Inc()
		s.logger.Debug("swipe dropped without a viewport", "direction", dir.String(), "to_index", target)
		return ScrollRequest{}, false
	}

	s.metrics.Swipes.WithLabelValues(dir.String(), "moved").Inc()
	s.logger.Debug("swipe resolved", "direction", dir.String(), "from_index", current, "to_index", target)
	return ScrollRequest{
		TargetY:     domain.TargetScroll(target, path.Len(), s.viewport.DocumentHeight, s.viewport.ViewportHeight),
		Progress:    path.Progress(target),
		TargetIndex: target,
		Direction:   dir.String(),
		Smooth:      true,
	}, true
}

// Interact reports a manual drag, rotate or zoom. pos is the camera position
// the user left the camera at, when the host knows it.
func (s *Session) Interact(pos *domain.Vec3) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	s.camera.Interact()
	if pos != nil {
		s.camera.Place(*pos)
	}
}

// OpenGallery opens the photo gallery for city.
func (s *Session) OpenGallery(city string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if !s.engine.Journey().Photos.HasPhotos(city) {
		return ErrNoPhotos
	}
	s.gallery = city
	s.dragging = false
	return nil
}

// CloseGallery closes the gallery if it is open.
func (s *Session) CloseGallery() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.gallery = ""
}

// Gallery returns the city whose gallery is open, or "".
func (s *Session) Gallery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gallery
}

// SetLanguage switches the display language.
func (s *Session) SetLanguage(lang string) error {
	if !i18n.IsSupported(lang) {
		return ErrUnsupportedLanguage
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.language = lang
	return nil
}

// Language returns the display language.
func (s *Session) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

// Progress returns the applied progress.
func (s *Session) Progress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress
}

// frame applies any pending scroll, resolves the journey state, advances the
// camera one step and builds the frame.
func (s *Session) frame() render.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, _ := s.step()
	return f
}

// Snapshot returns the most recent frame without advancing the camera. A
// session that has never rendered renders once.
func (s *Session) Snapshot() render.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if s.last != nil {
		return *s.last
	}
	f, _ := s.step()
	return f
}

// renderChanged steps the session and reports whether the frame differs from
// the last one drawn. The key is only recorded by markDrawn, so a frame that
// failed to draw counts as changed on the next step.
func (s *Session) renderChanged() (render.Frame, frameKey, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, key := s.step()
	return f, key, !s.drawn || key != s.lastKey
}

// markDrawn records key as the last frame the surface accepted.
func (s *Session) markDrawn(key frameKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastKey = key
	s.drawn = true
}

func (s *Session) step() (render.Frame, frameKey) {
	start := s.clock.Now()

	if s.pending != nil {
		s.progress = *s.pending
		s.zoom = domain.EstablishingZoom(s.progress)
		s.pending = nil
		s.camera.Release()
	}

	state := domain.Resolve(s.progress, s.engine.ScenePath())
	view := s.camera.Update(state.Position, state.CurrentStopID, s.zoom)

	f := s.engine.builder.Build(render.Input{
		Language: s.language,
		Progress: s.progress,
		Zoom:     s.zoom,
		State:    state,
		Camera:   view,
		Gallery:  s.gallery,
	})
	s.last = &f
	s.metrics.FrameBuildDuration.Observe(s.clock.Since(start).Seconds())

	return f, frameKey{
		progress:   s.progress,
		camera:     view.Position,
		mode:       view.Mode,
		autoRotate: view.AutoRotate,
		language:   s.language,
		gallery:    s.gallery,
	}
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

package journey

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/journey-globe-service/internal/i18n"
	"github.com/couchcryptid/journey-globe-service/internal/observability"
)

// Preferences persists a viewer's language between sessions.
type Preferences interface {
	Language(ctx context.Context, viewerID string) (string, error)
	SetLanguage(ctx context.Context, viewerID, lang string) error
}

// RegistryConfig tunes session lifetime and input throttling.
type RegistryConfig struct {
	TTL            time.Duration
	ScrollThrottle time.Duration
}

// Registry tracks live sessions by ID.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	engine  *Engine
	prefs   Preferences
	cfg     RegistryConfig
	clock   clockwork.Clock
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewRegistry creates an empty registry. prefs may be nil.
func NewRegistry(e *Engine, prefs Preferences, cfg RegistryConfig, clock clockwork.Clock, logger *slog.Logger, metrics *observability.Metrics) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		engine:   e,
		prefs:    prefs,
		cfg:      cfg,
		clock:    clock,
		logger:   logger,
		metrics:  metrics,
	}
}

// Create starts a session. The language is taken from lang when supported,
// then from the viewer's stored preference, then the default. An empty
// viewerID is replaced by the session ID.
func (r *Registry) Create(ctx context.Context, viewerID, lang string) *Session {
	id := uuid.NewString()
	if viewerID == "" {
		viewerID = id
	}
	lang = r.language(ctx, viewerID, lang)

	s := newSession(id, viewerID, lang, r.engine, r.clock, r.cfg.ScrollThrottle, r.logger, r.metrics)

	r.mu.Lock()
	r.sessions[id] = s
	n := len(r.sessions)
	r.mu.Unlock()

	r.metrics.SessionsCreated.Inc()
	r.metrics.SessionsActive.Set(float64(n))
	r.logger.Info("session created", "session", id, "language", lang)
	return s
}

func (r *Registry) language(ctx context.Context, viewerID, requested string) string {
	if lang, ok := i18n.Match(requested); ok {
		return lang
	}
	if r.prefs != nil {
		lang, err := r.prefs.Language(ctx, viewerID)
		if err != nil {
			r.logger.Warn("load language preference failed", "viewer", viewerID, "error", err)
		} else if i18n.IsSupported(lang) {
			return lang
		}
	}
	return i18n.Default
}

// Get returns the session with the given ID.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete ends a session. Unknown IDs are ignored.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	_, ok := r.sessions[id]
	delete(r.sessions, id)
	n := len(r.sessions)
	r.mu.Unlock()

	if ok {
		r.metrics.SessionsActive.Set(float64(n))
		r.logger.Info("session closed", "session", id)
	}
}

// SetLanguage switches a session's language and stores it as the viewer's
// preference. A failed store is logged and does not fail the switch.
func (r *Registry) SetLanguage(ctx context.Context, s *Session, lang string) error {
	if err := s.SetLanguage(lang); err != nil {
		return err
	}
	if r.prefs != nil {
		if err := r.prefs.SetLanguage(ctx, s.ViewerID(), lang); err != nil {
			r.logger.Warn("store language preference failed", "viewer", s.ViewerID(), "error", err)
		}
	}
	return nil
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sessions returns the live sessions ordered by ID.
func (r *Registry) Sessions() []*Session {
	r.mu.RLock()
	out := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// Evict removes sessions idle for longer than the TTL and returns how many
// were removed. A zero TTL disables eviction.
func (r *Registry) Evict() int {
	if r.cfg.TTL <= 0 {
		return 0
	}
	cutoff := r.clock.Now().Add(-r.cfg.TTL)

	r.mu.Lock()
	var evicted []string
	for id, s := range r.sessions {
		if s.idleSince().Before(cutoff) {
			delete(r.sessions, id)
			evicted = append(evicted, id)
		}
	}
	n := len(r.sessions)
	r.mu.Unlock()

	if len(evicted) > 0 {
		r.metrics.SessionsEvicted.Add(float64(len(evicted)))
		r.metrics.SessionsActive.Set(float64(n))
		r.logger.Info("sessions evicted", "count", len(evicted))
	}
	return len(evicted)
}

package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/couchcryptid/journey-globe-service/internal/adapter/borders"
	"github.com/couchcryptid/journey-globe-service/internal/dataset"
	"github.com/couchcryptid/journey-globe-service/internal/domain"
	"github.com/couchcryptid/journey-globe-service/internal/i18n"
	"github.com/couchcryptid/journey-globe-service/internal/journey"
)

// BorderOverlay supplies country outlines. A nil overlay disables them.
type BorderOverlay interface {
	Rings(ctx context.Context, code string) ([]borders.Ring, error)
}

// API serves the session and reference endpoints under /api.
type API struct {
	registry *journey.Registry
	engine   *journey.Engine
	borders  BorderOverlay
	stats    dataset.PathStats
	logger   *slog.Logger
}

// NewAPI creates the API handlers. overlay may be nil.
func NewAPI(registry *journey.Registry, engine *journey.Engine, overlay BorderOverlay, logger *slog.Logger) *API {
	return &API{
		registry: registry,
		engine:   engine,
		borders:  overlay,
		stats:    dataset.Analyze(engine.Journey()),
		logger:   logger,
	}
}

func (a *API) routes(r chi.Router) {
	r.Get("/path", a.handlePath)
	r.Get("/photos/{city}", a.handlePhotos)
	r.Get("/borders/{country}", a.handleBorders)
	r.Get("/i18n/{lang}", a.handleStrings)

	r.Post("/sessions", a.handleCreateSession)
	r.Route("/sessions/{id}", func(r chi.Router) {
		r.Delete("/", a.handleDeleteSession)
		r.Get("/frame", a.withSession(a.handleFrame))
		r.Post("/scroll", a.withSession(a.handleScroll))
		r.Post("/touch/start", a.withSession(a.handleTouchStart))
		r.Post("/touch/end", a.withSession(a.handleTouchEnd))
		r.Post("/interact", a.withSession(a.handleInteract))
		r.Post("/gallery", a.withSession(a.handleOpenGallery))
		r.Delete("/gallery", a.withSession(a.handleCloseGallery))
		r.Get("/language", a.withSession(a.handleGetLanguage))
		r.Put("/language", a.withSession(a.handleSetLanguage))
	})
}

type sessionHandler func(w http.ResponseWriter, r *http.Request, s *journey.Session)

func (a *API) withSession(h sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := a.registry.Get(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		h(w, r, s)
	}
}

// decodeBody reads an optional JSON body into v. An empty body leaves v as
// it is.
func decodeBody(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

type createSessionRequest struct {
	ViewerID string `json:"viewerId"`
	Language string `json:"language"`
}

type sessionResponse struct {
	ID       string `json:"id"`
	ViewerID string `json:"viewerId"`
	Language string `json:"language"`
}

func (a *API) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Language == "" {
		req.Language = r.Header.Get("Accept-Language")
	}

	s := a.registry.Create(r.Context(), req.ViewerID, req.Language)
	writeJSON(w, http.StatusCreated, sessionResponse{ID: s.ID(), ViewerID: s.ViewerID(), Language: s.Language()})
}

func (a *API) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	a.registry.Delete(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleFrame(w http.ResponseWriter, _ *http.Request, s *journey.Session) {
	writeJSON(w, http.StatusOK, s.Snapshot())
}

type scrollRequest struct {
	ScrollY        float64 `json:"scrollY"`
	DocumentHeight float64 `json:"documentHeight"`
	ViewportHeight float64 `json:"viewportHeight"`
}

func (a *API) handleScroll(w http.ResponseWriter, r *http.Request, s *journey.Session) {
	var req scrollRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	accepted := s.Scroll(req.ScrollY, journey.Viewport{DocumentHeight: req.DocumentHeight, ViewportHeight: req.ViewportHeight})
	writeJSON(w, http.StatusOK, map[string]bool{"accepted": accepted})
}

type touchRequest struct {
	Y              float64 `json:"y"`
	Touches        int     `json:"touches"`
	DocumentHeight float64 `json:"documentHeight"`
	ViewportHeight float64 `json:"viewportHeight"`
}

func (a *API) handleTouchStart(w http.ResponseWriter, r *http.Request, s *journey.Session) {
	req := touchRequest{Touches: 1}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.TouchStart(req.Y, req.Touches)
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleTouchEnd(w http.ResponseWriter, r *http.Request, s *journey.Session) {
	var req touchRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	out := struct {
		Scroll *journey.ScrollRequest `json:"scroll"`
	}{}
	if sr, ok := s.TouchEnd(req.Y, journey.Viewport{DocumentHeight: req.DocumentHeight, ViewportHeight: req.ViewportHeight}); ok {
		out.Scroll = &sr
	}
	writeJSON(w, http.StatusOK, out)
}

type interactRequest struct {
	Position *domain.Vec3 `json:"position"`
}

func (a *API) handleInteract(w http.ResponseWriter, r *http.Request, s *journey.Session) {
	var req interactRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.Interact(req.Position)
	w.WriteHeader(http.StatusNoContent)
}

type galleryResponse struct {
	City     string         `json:"city"`
	CityCode string         `json:"cityCode"`
	Photos   []domain.Photo `json:"photos"`
}

func (a *API) gallery(city string) galleryResponse {
	photos := a.engine.Journey().Photos
	return galleryResponse{
		City:     city,
		CityCode: photos[city].CityCode,
		Photos:   photos.Sorted(city),
	}
}

func (a *API) handleOpenGallery(w http.ResponseWriter, r *http.Request, s *journey.Session) {
	var req struct {
		City string `json:"city"`
	}
	if err := decodeBody(r, &req); err != nil || req.City == "" {
		writeError(w, http.StatusBadRequest, "city is required")
		return
	}
	if err := s.OpenGallery(req.City); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, a.gallery(req.City))
}

func (a *API) handleCloseGallery(w http.ResponseWriter, _ *http.Request, s *journey.Session) {
	s.CloseGallery()
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleGetLanguage(w http.ResponseWriter, _ *http.Request, s *journey.Session) {
	writeJSON(w, http.StatusOK, map[string]string{"language": s.Language()})
}

func (a *API) handleSetLanguage(w http.ResponseWriter, r *http.Request, s *journey.Session) {
	var req struct {
		Language string `json:"language"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.registry.SetLanguage(r.Context(), s, req.Language); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"language": s.Language()})
}

type pathResponse struct {
	Radius float64 `json:"radius"`
	Stops  int     `json:"stops"`
	dataset.PathStats
}

func (a *API) handlePath(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, pathResponse{
		Radius:    domain.ScenePathRadius,
		Stops:     len(a.engine.Journey().Stops),
		PathStats: a.stats,
	})
}

func (a *API) handlePhotos(w http.ResponseWriter, r *http.Request) {
	city := chi.URLParam(r, "city")
	if !a.engine.Journey().Photos.HasPhotos(city) {
		writeError(w, http.StatusNotFound, journey.ErrNoPhotos.Error())
		return
	}
	writeJSON(w, http.StatusOK, a.gallery(city))
}

type bordersResponse struct {
	Country string         `json:"country"`
	Enabled bool           `json:"enabled"`
	Rings   []borders.Ring `json:"rings"`
}

func (a *API) handleBorders(w http.ResponseWriter, r *http.Request) {
	resp := bordersResponse{Country: chi.URLParam(r, "country"), Rings: []borders.Ring{}}
	if a.borders == nil {
		writeJSON(w, http.StatusOK, resp)
		return
	}
	resp.Enabled = true

	rings, err := a.borders.Rings(r.Context(), resp.Country)
	if err != nil {
		a.logger.Warn("border overlay unavailable", "country", resp.Country, "error", err)
	} else if len(rings) > 0 {
		resp.Rings = rings
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) handleStrings(w http.ResponseWriter, r *http.Request) {
	lang := chi.URLParam(r, "lang")
	if !i18n.IsSupported(lang) {
		writeError(w, http.StatusNotFound, journey.ErrUnsupportedLanguage.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"language":  lang,
		"languages": i18n.Supported,
		"strings":   i18n.Bundle(lang),
	})
}

// Package server exposes moodart over HTTP.
//
// Every client gets a session, identified by the moodart_session cookie,
// which holds its gallery of pieces and stories. Sessions live in memory and
// expire after a period of inactivity.
//
// # Routes
//
//	GET    /health
//	GET    /api/moods | /api/styles | /api/ideas | /api/stats
//	POST   /api/art                       generate a piece
//	GET    /api/gallery                   pieces, stories and selection
//	PUT    /api/gallery/current           select a piece ({"id": null} clears)
//	GET    /api/gallery/{id}              piece metadata
//	DELETE /api/gallery/{id}
//	GET    /api/gallery/{id}/image        PNG download
//	GET    /api/gallery/{id}/thumbnail    scaled PNG (?w=128)
//	POST   /api/mood | /api/style         change the selection
//	POST   /api/stories                   write a story
//	GET    /api/stories
//	DELETE /api/stories/{id}
//	GET    /api/stories/{id}/export       plain-text download
//
// Errors are JSON objects {"code": ..., "error": ...}.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/moodart/pkg/observability"
	"github.com/matzehuels/moodart/pkg/pipeline"
	"github.com/matzehuels/moodart/pkg/session"
)

const (
	// SessionCookie names the cookie carrying the session id.
	SessionCookie = "moodart_session"

	// shutdownTimeout bounds graceful shutdown.
	shutdownTimeout = 10 * time.Second

	// cleanupInterval is how often expired sessions are purged.
	cleanupInterval = 10 * time.Minute
)

// Server serves the HTTP API.
type Server struct {
	runner     *pipeline.Runner
	sessions   session.Store
	stats      *observability.Stats
	logger     *log.Logger
	sessionTTL time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithSessionTTL sets how long idle sessions survive.
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Server) {
		if ttl > 0 {
			s.sessionTTL = ttl
		}
	}
}

// WithSessionStore replaces the in-memory session store.
func WithSessionStore(st session.Store) Option {
	return func(s *Server) { s.sessions = st }
}

// WithStats sets the counters reported by /api/stats. The caller registers
// them as observability hooks; the server only reads them.
func WithStats(st *observability.Stats) Option {
	return func(s *Server) { s.stats = st }
}

// WithLogger sets the access and error logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// New creates a server around runner.
func New(runner *pipeline.Runner, opts ...Option) *Server {
	s := &Server{
		runner:     runner,
		sessions:   session.NewMemoryStore(),
		stats:      observability.NewStats(),
		logger:     log.New(io.Discard),
		sessionTTL: session.DefaultTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the router with all middleware and routes wired up.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(s.recoverer)
	r.Use(s.accessLog)

	r.Get("/health", s.health)

	r.Route("/api", func(r chi.Router) {
		// Static catalogues, no session needed.
		r.Get("/moods", s.listMoods)
		r.Get("/styles", s.listStyles)
		r.Get("/ideas", s.listIdeas)
		r.Get("/stats", s.getStats)

		r.Group(func(r chi.Router) {
			r.Use(s.loadSession)

			r.Post("/art", s.createArt)
			r.Post("/mood", s.selectMood)
			r.Post("/style", s.selectStyle)

			r.Route("/gallery", func(r chi.Router) {
				r.Get("/", s.getGallery)
				r.Put("/current", s.setCurrent)
				r.Get("/{id}", s.getPiece)
				r.Delete("/{id}", s.deletePiece)
				r.Get("/{id}/image", s.pieceImage)
				r.Get("/{id}/thumbnail", s.pieceThumbnail)
			})

			r.Route("/stories", func(r chi.Router) {
				r.Post("/", s.createStory)
				r.Get("/", s.listStories)
				r.Delete("/{id}", s.deleteStory)
				r.Get("/{id}/export", s.exportStory)
			})
		})
	})

	return r
}

// ListenAndServe serves on addr until ctx ends, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go session.RunCleanup(ctx, s.sessions, cleanupInterval)

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen %s: %w", addr, err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

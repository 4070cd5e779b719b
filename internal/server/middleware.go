package server

import (
	"context"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"

	moodarterrors "github.com/matzehuels/moodart/pkg/errors"
	"github.com/matzehuels/moodart/pkg/observability"
	"github.com/matzehuels/moodart/pkg/session"
)

type contextKey string

// sessionKey is the context key for the request's session.
const sessionKey contextKey = "session"

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

// WriteHeader captures the status code before writing it.
func (rw *responseWriter) WriteHeader(code int) {
	if !rw.written {
		rw.statusCode = code
		rw.written = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

// Write ensures a default 200 status if WriteHeader was never called.
func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.statusCode = http.StatusOK
		rw.written = true
	}
	return rw.ResponseWriter.Write(b)
}

// accessLog records method, route, status and duration for every request
// and reports it to the HTTP hooks.
func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		elapsed := time.Since(start)
		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		observability.HTTP().OnRequest(r.Context(), r.Method, route, wrapped.statusCode, elapsed)

		s.logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.statusCode,
			"duration", elapsed,
		)
	})
}

// recoverer turns handler panics into a 500 response.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				s.logger.Error("panic recovered",
					"error", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)
				writeError(w, moodarterrors.New(moodarterrors.ErrCodeInternal, "internal error"))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// loadSession attaches the caller's session to the request, creating one
// when the cookie is missing, unknown or expired. Every request slides the
// expiry forward.
func (s *Server) loadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var sess *session.Session
		if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
			found, err := s.sessions.Get(ctx, c.Value)
			if err != nil {
				s.logger.Warn("session lookup failed", "error", err)
			}
			sess = found
		}

		var expires time.Time
		if sess == nil {
			created, err := session.New(s.sessionTTL)
			if err != nil {
				writeError(w, moodarterrors.Wrap(moodarterrors.ErrCodeInternal, err, "create session"))
				return
			}
			sess = created
			expires = sess.Expiry()
			s.logger.Debug("session created", "expires", expires)
		} else {
			expires = sess.Refresh(s.sessionTTL)
		}

		if err := s.sessions.Set(ctx, sess); err != nil {
			writeError(w, moodarterrors.Wrap(moodarterrors.ErrCodeInternal, err, "store session"))
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    sess.ID,
			Path:     "/",
			Expires:  expires,
			HttpOnly: true,
			Secure:   r.TLS != nil,
			SameSite: http.SameSiteLaxMode,
		})

		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, sessionKey, sess)))
	})
}

// sessionFromCtx returns the request's session. loadSession guarantees one
// on every session route.
func sessionFromCtx(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(sessionKey).(*session.Session)
	return sess
}

// Package session keeps one gallery per browser for the HTTP API.
//
// A [Session] is created the first time a client calls the API without a
// valid session cookie and expires after a period of inactivity. Sessions
// hold no credentials; they only scope a [gallery.Store] so that two
// browsers never see each other's pieces.
//
// The [Store] interface abstracts the backend. [MemoryStore] is the only
// implementation: galleries live for the lifetime of the process.
//
//	store := session.NewMemoryStore()
//	sess, err := session.New(session.DefaultTTL)
//	if err != nil {
//	    return err
//	}
//	store.Set(ctx, sess)
//
//	sess, err = store.Get(ctx, id)
//	if sess == nil {
//	    // unknown or expired
//	}
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"sync"
	"time"

	"github.com/matzehuels/moodart/pkg/gallery"
)

// ErrNotFound is returned when a session does not exist.
var ErrNotFound = errors.New("session not found")

// DefaultTTL is how long an idle session survives.
const DefaultTTL = 24 * time.Hour

// Session is one client's workspace. Requests sharing a cookie share the
// session, so the expiry is guarded.
type Session struct {
	ID        string         `json:"id"`
	Gallery   *gallery.Store `json:"-"`
	CreatedAt time.Time      `json:"created_at"`

	mu        sync.Mutex
	expiresAt time.Time
}

// Expiry returns when the session lapses.
func (s *Session) Expiry() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expiresAt
}

// IsExpired reports whether the session has passed its expiry.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.Expiry())
}

// Refresh pushes the expiry ttl into the future and returns the new expiry.
func (s *Session) Refresh(ttl time.Duration) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expiresAt = time.Now().Add(ttl)
	return s.expiresAt
}

// Store is the interface for session storage backends.
type Store interface {
	// Get retrieves a session by ID.
	// Returns nil, nil if the session doesn't exist or has expired.
	Get(ctx context.Context, sessionID string) (*Session, error)

	// Set stores a session.
	Set(ctx context.Context, session *Session) error

	// Delete removes a session.
	Delete(ctx context.Context, sessionID string) error

	// Cleanup removes expired sessions.
	Cleanup(ctx context.Context) error
}

// GenerateID creates a cryptographically secure random session ID.
func GenerateID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// New creates a session with an empty gallery.
func New(ttl time.Duration) (*Session, error) {
	id, err := GenerateID()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return &Session{
		ID:        id,
		Gallery:   gallery.NewStore(),
		CreatedAt: now,
		expiresAt: now.Add(ttl),
	}, nil
}

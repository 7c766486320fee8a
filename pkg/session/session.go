// Package session provides cookie-backed server-side sessions.
//
// Only the opaque session id travels in the cookie; the data lives in a
// pluggable Store (memory, Redis or MongoDB — see SESSION_DRIVER). The
// middleware loads or creates the session per request and the handler saves
// it after mutating:
//
//	r.Use(session.Middleware(store, session.DefaultOptions()))
//
//	sess := session.FromCtx(r)
//	sess.SetIdentity(shopkeeper.ID)
//	sess.Save(w)
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"
)

// Options configures session behaviour.
type Options struct {
	CookieName string
	TTL        time.Duration
	HTTPOnly   bool
	Secure     bool
	SameSite   http.SameSite
	Path       string
}

// DefaultOptions returns month-long sessions.
func DefaultOptions() Options {
	return Options{
		CookieName: "retailedge_session",
		TTL:        30 * 24 * time.Hour,
		HTTPOnly:   true,
		Secure:     false, // set true behind TLS
		SameSite:   http.SameSiteLaxMode,
		Path:       "/",
	}
}

// Store persists session payloads keyed by session id.
type Store interface {
	// Load returns the session payload, or an empty map when absent/expired.
	Load(ctx context.Context, id string) (map[string]interface{}, error)

	// Save persists the payload with the given lifetime.
	Save(ctx context.Context, id string, data map[string]interface{}, ttl time.Duration) error

	// Destroy removes the session server-side (logout).
	Destroy(ctx context.Context, id string) error
}

// identityKey is the payload key holding the authenticated shopkeeper id.
const identityKey = "shopkeeper_id"

type ctxKey struct{}

// Session is an in-request session handle.
type Session struct {
	id      string
	prevID  string
	data    map[string]interface{}
	store   Store
	opts    Options
	changed bool
	dead    bool
}

// newID generates a cryptographically random 32-byte hex session id.
func newID() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Set stores a value under key.
func (s *Session) Set(key string, value interface{}) {
	s.data[key] = value
	s.changed = true
}

// Get retrieves a value.
func (s *Session) Get(key string) (interface{}, bool) {
	v, ok := s.data[key]
	return v, ok
}

// Delete removes a key.
func (s *Session) Delete(key string) {
	delete(s.data, key)
	s.changed = true
}

// SetIdentity marks the session as authenticated for the given shopkeeper.
// The id is rotated to prevent session fixation.
func (s *Session) SetIdentity(shopkeeperID uint) {
	if s.prevID == "" {
		s.prevID = s.id
	}
	s.id = newID()
	s.data[identityKey] = shopkeeperID
	s.changed = true
}

// Identity returns the authenticated shopkeeper id, if any. Stores that
// round-trip through JSON hand back float64, so both shapes are accepted.
func (s *Session) Identity() (uint, bool) {
	switch v := s.data[identityKey].(type) {
	case uint:
		return v, true
	case int:
		return uint(v), true
	case int64:
		return uint(v), true
	case float64:
		return uint(v), true
	}
	return 0, false
}

// Authenticated reports whether an identity is attached.
func (s *Session) Authenticated() bool {
	_, ok := s.Identity()
	return ok
}

// Invalidate destroys the session (logout). Save must still be called to
// clear the cookie.
func (s *Session) Invalidate() {
	s.data = map[string]interface{}{}
	s.dead = true
	s.changed = true
}

// Save persists the session and writes the cookie. A no-op when nothing
// changed.
func (s *Session) Save(w http.ResponseWriter) error {
	if !s.changed {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if s.dead {
		if err := s.store.Destroy(ctx, s.id); err != nil {
			return err
		}
		http.SetCookie(w, &http.Cookie{
			Name:     s.opts.CookieName,
			Value:    "",
			Path:     s.opts.Path,
			MaxAge:   -1,
			HttpOnly: s.opts.HTTPOnly,
		})
		s.changed = false
		return nil
	}

	if err := s.store.Save(ctx, s.id, s.data, s.opts.TTL); err != nil {
		return err
	}

	// Drop the pre-rotation record so the old id cannot be replayed.
	if s.prevID != "" && s.prevID != s.id {
		_ = s.store.Destroy(ctx, s.prevID)
		s.prevID = ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.opts.CookieName,
		Value:    s.id,
		Path:     s.opts.Path,
		MaxAge:   int(s.opts.TTL.Seconds()),
		HttpOnly: s.opts.HTTPOnly,
		Secure:   s.opts.Secure,
		SameSite: s.opts.SameSite,
	})

	s.changed = false
	return nil
}

// Middleware loads (or creates) the session for every request and injects it
// into the request context. Handlers call session.FromCtx(r) to access it.
func Middleware(store Store, opts Options) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := &Session{store: store, opts: opts, data: map[string]interface{}{}}

			if cookie, err := r.Cookie(opts.CookieName); err == nil && cookie.Value != "" {
				sess.id = cookie.Value
				if data, err := store.Load(r.Context(), sess.id); err == nil {
					sess.data = data
				}
			} else {
				sess.id = newID()
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromCtx retrieves the session from the request context. Returns a detached
// memory-backed session if the middleware did not run (tests, health checks).
func FromCtx(r *http.Request) *Session {
	if s, ok := r.Context().Value(ctxKey{}).(*Session); ok {
		return s
	}
	return &Session{
		id:    newID(),
		data:  map[string]interface{}{},
		store: NewMemoryStore(),
		opts:  DefaultOptions(),
	}
}

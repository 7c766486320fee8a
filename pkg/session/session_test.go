package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/session"
)

func testOptions() session.Options {
	opts := session.DefaultOptions()
	opts.TTL = time.Hour
	return opts
}

// roundTrip runs a request through the middleware and returns the
// response plus whatever the handler saw.
func roundTrip(t *testing.T, store session.Store, cookie *http.Cookie, handler func(w http.ResponseWriter, r *http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	session.Middleware(store, testOptions())(http.HandlerFunc(handler)).ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == testOptions().CookieName {
			return c
		}
	}
	t.Fatal("no session cookie on response")
	return nil
}

func TestIdentityRoundTrip(t *testing.T) {
	store := session.NewMemoryStore()

	rec := roundTrip(t, store, nil, func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromCtx(r)
		sess.SetIdentity(42)
		if err := sess.Save(w); err != nil {
			t.Fatalf("save: %v", err)
		}
	})
	cookie := sessionCookie(t, rec)

	roundTrip(t, store, cookie, func(w http.ResponseWriter, r *http.Request) {
		id, ok := session.FromCtx(r).Identity()
		if !ok || id != 42 {
			t.Errorf("identity = %d, %v", id, ok)
		}
		if !session.FromCtx(r).Authenticated() {
			t.Error("expected authenticated session")
		}
	})
}

func TestSetIdentityRotatesID(t *testing.T) {
	store := session.NewMemoryStore()

	var anonID string
	rec := roundTrip(t, store, nil, func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromCtx(r)
		sess.Set("seen", true)
		anonID = sess.ID()
		sess.Save(w)
	})
	cookie := sessionCookie(t, rec)

	rec = roundTrip(t, store, cookie, func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromCtx(r)
		sess.SetIdentity(7)
		if sess.ID() == anonID {
			t.Error("login must rotate the session id")
		}
		sess.Save(w)
	})

	// The pre-login id must be gone from the store.
	data, err := store.Load(nil, anonID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("anonymous session still alive: %v", data)
	}

	cookie = sessionCookie(t, rec)
	roundTrip(t, store, cookie, func(w http.ResponseWriter, r *http.Request) {
		if id, ok := session.FromCtx(r).Identity(); !ok || id != 7 {
			t.Errorf("identity after rotation = %d, %v", id, ok)
		}
	})
}

func TestInvalidateDestroysSession(t *testing.T) {
	store := session.NewMemoryStore()

	rec := roundTrip(t, store, nil, func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromCtx(r)
		sess.SetIdentity(42)
		sess.Save(w)
	})
	cookie := sessionCookie(t, rec)

	rec = roundTrip(t, store, cookie, func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromCtx(r)
		sess.Invalidate()
		sess.Save(w)
	})
	cleared := sessionCookie(t, rec)
	if cleared.MaxAge >= 0 {
		t.Errorf("logout cookie MaxAge = %d, want negative", cleared.MaxAge)
	}

	roundTrip(t, store, cookie, func(w http.ResponseWriter, r *http.Request) {
		if session.FromCtx(r).Authenticated() {
			t.Error("session survives Invalidate")
		}
	})
}

func TestIdentitySurvivesJSONNumbers(t *testing.T) {
	// Redis and Mongo stores round-trip through JSON/BSON, which turns
	// uint into float64. Identity must cope.
	store := session.NewMemoryStore()
	store.Save(nil, "sid", map[string]interface{}{"shopkeeper_id": float64(42)}, time.Hour)

	roundTrip(t, store, &http.Cookie{Name: testOptions().CookieName, Value: "sid"}, func(w http.ResponseWriter, r *http.Request) {
		id, ok := session.FromCtx(r).Identity()
		if !ok || id != 42 {
			t.Errorf("identity = %d, %v", id, ok)
		}
	})
}

func TestMemoryStoreGC(t *testing.T) {
	store := session.NewMemoryStore()
	store.Save(nil, "old", map[string]interface{}{"k": "v"}, -time.Minute)
	store.Save(nil, "live", map[string]interface{}{"k": "v"}, time.Hour)

	if n := store.GC(); n != 1 {
		t.Errorf("GC removed %d, want 1", n)
	}
	data, _ := store.Load(nil, "live")
	if len(data) == 0 {
		t.Error("GC removed a live session")
	}
}

func TestFromCtxWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	sess := session.FromCtx(req)
	if sess == nil {
		t.Fatal("expected a detached session")
	}
	if sess.Authenticated() {
		t.Error("detached session must not be authenticated")
	}
}

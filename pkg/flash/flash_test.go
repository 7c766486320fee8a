package flash_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/flash"
)

func flashCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == flash.CookieName {
			return c
		}
	}
	return nil
}

func TestMessageSurvivesRedirect(t *testing.T) {
	// The handler that redirects sets the message.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	flash.Success(rec, req, "Welcome back, Saurav Mehta!")

	cookie := flashCookie(t, rec)
	if cookie == nil {
		t.Fatal("no flash cookie on redirect response")
	}

	// The next page load pops it.
	rec2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/main", nil)
	req2.AddCookie(cookie)

	msgs := flash.Pop(rec2, req2)
	if len(msgs) != 1 {
		t.Fatalf("popped %d messages, want 1", len(msgs))
	}
	if msgs[0].Kind != flash.KindSuccess || msgs[0].Text != "Welcome back, Saurav Mehta!" {
		t.Errorf("message = %+v", msgs[0])
	}

	// Popping clears the cookie so the message shows exactly once.
	cleared := flashCookie(t, rec2)
	if cleared == nil || cleared.MaxAge >= 0 {
		t.Error("pop must expire the flash cookie")
	}
}

func TestFlashThenRenderSameRequest(t *testing.T) {
	// Some handlers flash and render in one response without a redirect.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/main/show/1", nil)

	flash.Success(rec, req, "Item updated successfully!")
	msgs := flash.Pop(rec, req)

	if len(msgs) != 1 || msgs[0].Text != "Item updated successfully!" {
		t.Errorf("messages = %+v", msgs)
	}
}

func TestMultipleMessagesAccumulate(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)

	flash.Error(rec, req, "first")
	flash.Success(rec, req, "second")

	msgs := flash.Pop(rec, req)
	if len(msgs) != 2 {
		t.Fatalf("popped %d messages, want 2", len(msgs))
	}
	if msgs[0].Kind != flash.KindError || msgs[1].Kind != flash.KindSuccess {
		t.Errorf("kinds = %v, %v", msgs[0].Kind, msgs[1].Kind)
	}
}

func TestTamperedCookieIgnored(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: flash.CookieName, Value: "garbage"})

	if msgs := flash.Pop(rec, req); len(msgs) != 0 {
		t.Errorf("tampered cookie produced messages: %+v", msgs)
	}
}

func TestNoCookieNoMessages(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if msgs := flash.Pop(rec, req); len(msgs) != 0 {
		t.Errorf("expected none, got %+v", msgs)
	}
}

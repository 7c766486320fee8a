// Package flash carries one-shot success/error messages across a redirect.
//
// Messages ride in a short-lived encrypted cookie instead of a mutable field
// on the server-side session: the handler sets an explicit payload on the
// response, and the next page render pops it. Popping clears the cookie, so
// a message is shown exactly once.
//
//	flash.Success(w, r, "Item added successfully!")
//	http.Redirect(w, r, "/main", http.StatusFound)
//
//	// on the next render:
//	msgs := flash.Pop(w, r)
package flash

import (
	"net/http"

	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/crypt"
)

// CookieName is the cookie carrying pending flash messages.
const CookieName = "retailedge_flash"

// Kind classifies a message for rendering.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Message is a single one-shot notice surfaced on the next rendered page.
type Message struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

// Success queues a success message on the response.
func Success(w http.ResponseWriter, r *http.Request, text string) {
	push(w, r, Message{Kind: KindSuccess, Text: text})
}

// Error queues an error message on the response.
func Error(w http.ResponseWriter, r *http.Request, text string) {
	push(w, r, Message{Kind: KindError, Text: text})
}

// Pop returns all pending messages and clears the cookie. Messages set on
// the current response (pre-redirect) are included so a handler that renders
// directly still surfaces what it just flashed.
func Pop(w http.ResponseWriter, r *http.Request) []Message {
	msgs := peek(w, r)
	if len(msgs) == 0 {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return msgs
}

func push(w http.ResponseWriter, r *http.Request, msg Message) {
	msgs := append(peek(w, r), msg)

	encoded, err := crypt.EncryptJSON(msgs)
	if err != nil {
		return // a lost notice is better than a failed response
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   300, // messages older than 5 minutes are stale anyway
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// peek reads pending messages from the response (set earlier in this
// request) or, failing that, from the request cookie.
func peek(w http.ResponseWriter, r *http.Request) []Message {
	var raw string
	for _, c := range pendingCookies(w) {
		if c.Name == CookieName && c.Value != "" {
			raw = c.Value
		}
	}
	if raw == "" {
		if c, err := r.Cookie(CookieName); err == nil {
			raw = c.Value
		}
	}
	if raw == "" {
		return nil
	}

	var msgs []Message
	if err := crypt.DecryptJSON(raw, &msgs); err != nil {
		return nil // tampered or stale cookie
	}
	return msgs
}

func pendingCookies(w http.ResponseWriter) []*http.Cookie {
	header := http.Header{}
	header["Cookie"] = w.Header()["Set-Cookie"]
	req := http.Request{Header: header}
	return req.Cookies()
}

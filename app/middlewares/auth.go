// Package middlewares holds the application's route guards.
package middlewares

import (
	"net/http"

	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/session"
)

// RequireLogin redirects unauthenticated requests to the login page.
func RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromCtx(r)
		if !sess.Authenticated() {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RedirectIfAuthenticated sends logged-in shopkeepers away from the
// login and signup pages.
func RedirectIfAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromCtx(r)
		if sess.Authenticated() {
			http.Redirect(w, r, "/main", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

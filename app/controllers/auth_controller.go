package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Saurav-S-Mehta-07/RetailEdge/app/services"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/bind"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/flash"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/logger"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/session"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/view"
)

// AuthController serves the login/signup pages and the session
// lifecycle.
type AuthController struct {
	auth          *services.AuthService
	authenticator services.Authenticator
	views         *view.Renderer
}

func NewAuthController(auth *services.AuthService, authenticator services.Authenticator, views *view.Renderer) *AuthController {
	return &AuthController{auth: auth, authenticator: authenticator, views: views}
}

// RenderLogin serves GET /.
func (c *AuthController) RenderLogin(w http.ResponseWriter, r *http.Request) {
	render(c.views, w, r, "login.html", nil)
}

// RenderSignup serves GET /signup.
func (c *AuthController) RenderSignup(w http.ResponseWriter, r *http.Request) {
	render(c.views, w, r, "signup.html", nil)
}

// Signup serves POST /signup: create the account and log it straight in.
func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var in services.SignupInput
	if _, err := bind.Form(r, &in); err != nil {
		flash.Error(w, r, "Invalid signup form.")
		http.Redirect(w, r, "/signup", http.StatusFound)
		return
	}

	sk, err := c.auth.Signup(r.Context(), in)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			flash.Error(w, r, "Email already exists. Please log in.")
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		flash.Error(w, r, err.Error())
		http.Redirect(w, r, "/signup", http.StatusFound)
		return
	}

	sess := session.FromCtx(r)
	sess.SetIdentity(sk.ID)
	if err := sess.Save(w); err != nil {
		logger.WithCtx(r.Context()).Error("auth: session save failed", "error", err)
	}

	flash.Success(w, r, fmt.Sprintf("Welcome, %s!", sk.Name))
	http.Redirect(w, r, "/main", http.StatusFound)
}

// Login serves POST /login.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flash.Error(w, r, "Invalid login form.")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")

	sk, err := c.authenticator.Verify(r.Context(), email, password)
	if err != nil {
		flash.Error(w, r, "Invalid email or password.")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	sess := session.FromCtx(r)
	sess.SetIdentity(sk.ID)
	if err := sess.Save(w); err != nil {
		logger.WithCtx(r.Context()).Error("auth: session save failed", "error", err)
	}

	flash.Success(w, r, fmt.Sprintf("Welcome back, %s!", sk.Name))
	http.Redirect(w, r, "/main", http.StatusFound)
}

// Logout serves GET /logout: destroy the server-side session and clear
// the cookie.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.FromCtx(r)
	sess.Invalidate()
	if err := sess.Save(w); err != nil {
		logger.WithCtx(r.Context()).Error("auth: session destroy failed", "error", err)
	}

	flash.Success(w, r, "Logged out successfully!")
	http.Redirect(w, r, "/", http.StatusFound)
}

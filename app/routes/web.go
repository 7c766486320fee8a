// Package routes wires the HTTP surface to the controllers.
package routes

import (
	"github.com/Saurav-S-Mehta-07/RetailEdge/app/controllers"
	"github.com/Saurav-S-Mehta-07/RetailEdge/app/middlewares"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/router"
)

// WebControllers bundles everything the HTML surface needs.
type WebControllers struct {
	Auth      *controllers.AuthController
	Listing   *controllers.ListingController
	Category  *controllers.CategoryController
	Order     *controllers.OrderController
	Dashboard *controllers.DashboardController
}

// RegisterWeb mounts the server-rendered routes.
func RegisterWeb(r *router.Router, c WebControllers) {
	// Public pages, pushed away once authenticated.
	guest := r.Group("", middlewares.RedirectIfAuthenticated)
	guest.Get("/", "auth.login_page", c.Auth.RenderLogin)
	guest.Get("/signup", "auth.signup_page", c.Auth.RenderSignup)

	r.Post("/signup", "auth.signup", c.Auth.Signup)
	r.Post("/login", "auth.login", c.Auth.Login)
	r.Get("/logout", "auth.logout", c.Auth.Logout)

	// Everything below requires a session.
	app := r.Group("", middlewares.RequireLogin)

	app.Get("/main", "dashboard.index", c.Dashboard.Index)
	app.Get("/main/dashboard", "dashboard.analytics", c.Dashboard.Analytics)
	app.Get("/main/dashboard/live", "dashboard.live", c.Dashboard.Live)

	app.Get("/main/categories", "category.index", c.Category.Index)
	app.Delete("/main/categories/{id}", "category.delete", c.Category.Delete)

	app.Get("/addlist", "listing.add_page", c.Listing.RenderAdd)
	app.Post("/main", "listing.create", c.Listing.Create)
	app.Get("/main/show/{id}", "listing.show", c.Listing.Show)
	app.Post("/main/show/{id}", "listing.update", c.Listing.Update)
	app.Get("/main/edit/{id}", "listing.edit_page", c.Listing.RenderEdit)
	app.Delete("/main/{id}", "listing.delete", c.Listing.Delete)

	app.Get("/main/order", "order.index", c.Order.Index)
	app.Delete("/main/order/{id}", "order.delete", c.Order.Delete)
	app.Get("/buyItem/{id}", "order.buy_page", c.Order.RenderBuy)
	app.Post("/buyItem/{id}", "order.buy", c.Order.Buy)
}

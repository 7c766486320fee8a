package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/Saurav-S-Mehta-07/RetailEdge/app/models"
	"github.com/Saurav-S-Mehta-07/RetailEdge/app/services"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/flash"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/logger"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/session"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/view"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/ws"
)

// DashboardController serves the main listing page and the analytics
// view.
type DashboardController struct {
	auth     *services.AuthService
	listings *services.ListingService
	metrics  services.MetricsSource
	views    *view.Renderer
	hub      *ws.Hub
}

func NewDashboardController(auth *services.AuthService, listings *services.ListingService, metrics services.MetricsSource, views *view.Renderer, hub *ws.Hub) *DashboardController {
	return &DashboardController{auth: auth, listings: listings, metrics: metrics, views: views, hub: hub}
}

// indexPage is the payload for the main listing view.
type indexPage struct {
	Shopkeeper models.Shopkeeper
	Listings   []models.Listing
	Categories []string
}

// Index serves GET /main: the shopkeeper's full listing set with the
// distinct category chips.
func (c *DashboardController) Index(w http.ResponseWriter, r *http.Request) {
	shopkeeperID, _ := session.FromCtx(r).Identity()

	sk, err := c.auth.Find(shopkeeperID)
	if err != nil {
		flash.Error(w, r, "Account not found. Please log in again.")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	cat, err := c.listings.Catalogue(shopkeeperID, "all")
	if err != nil {
		logger.WithCtx(r.Context()).Error("dashboard: load failed", "error", err)
		cat = services.Catalogue{}
	}

	render(c.views, w, r, "index.html", indexPage{
		Shopkeeper: sk,
		Listings:   cat.Listings,
		Categories: cat.Categories,
	})
}

// Analytics serves GET /main/dashboard: the synthetic figures.
func (c *DashboardController) Analytics(w http.ResponseWriter, r *http.Request) {
	shopkeeperID, _ := session.FromCtx(r).Identity()

	data, err := c.metrics.Metrics(shopkeeperID)
	if err != nil {
		logger.WithCtx(r.Context()).Error("dashboard: metrics failed", "error", err)
		flash.Error(w, r, "Could not load the dashboard. Please try again.")
		http.Redirect(w, r, "/main", http.StatusFound)
		return
	}

	render(c.views, w, r, "dashboard.html", data)
}

// Live serves GET /main/dashboard/live: upgrade to a WebSocket fed by
// the metrics ticker.
func (c *DashboardController) Live(w http.ResponseWriter, r *http.Request) {
	ws.Upgrade(w, r, c.hub)
}

// BroadcastMetrics pushes a fresh metrics payload to every connected
// dashboard. Wired to a scheduler task at boot.
func (c *DashboardController) BroadcastMetrics() {
	if c.hub.ClientCount() == 0 {
		return
	}
	data, err := c.metrics.Metrics(0)
	if err != nil {
		logger.Error("dashboard: metrics refresh failed", "error", err)
		return
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return
	}
	c.hub.Broadcast <- payload
}

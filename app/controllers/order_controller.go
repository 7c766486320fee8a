package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Saurav-S-Mehta-07/RetailEdge/app/services"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/flash"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/logger"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/session"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/view"
)

// OrderController serves the purchase flow and the order list.
type OrderController struct {
	orders   *services.OrderService
	listings *services.ListingService
	views    *view.Renderer
}

func NewOrderController(orders *services.OrderService, listings *services.ListingService, views *view.Renderer) *OrderController {
	return &OrderController{orders: orders, listings: listings, views: views}
}

// Index serves GET /main/order.
func (c *OrderController) Index(w http.ResponseWriter, r *http.Request) {
	shopkeeperID, _ := session.FromCtx(r).Identity()
	orders, err := c.orders.OwnedBy(shopkeeperID)
	if err != nil {
		logger.WithCtx(r.Context()).Error("order: load failed", "error", err)
		flash.Error(w, r, "Could not load your orders. Please try again.")
		http.Redirect(w, r, "/main", http.StatusFound)
		return
	}
	render(c.views, w, r, "myorder.html", orders)
}

// RenderBuy serves GET /buyItem/{id}: the purchase form for one listing.
func (c *OrderController) RenderBuy(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(r)
	if !ok {
		flash.Error(w, r, "Item not found")
		http.Redirect(w, r, "/main", http.StatusFound)
		return
	}

	item, err := c.listings.Get(id)
	if err != nil {
		flash.Error(w, r, "Item not found")
		http.Redirect(w, r, "/main", http.StatusFound)
		return
	}

	render(c.views, w, r, "buyItem.html", item)
}

// Buy serves POST /buyItem/{id}: snapshot the purchase.
func (c *OrderController) Buy(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(r)
	if !ok {
		flash.Error(w, r, "Item not found")
		http.Redirect(w, r, "/main", http.StatusFound)
		return
	}

	if err := r.ParseForm(); err != nil {
		flash.Error(w, r, "Invalid purchase form.")
		http.Redirect(w, r, fmt.Sprintf("/buyItem/%d", id), http.StatusFound)
		return
	}
	qty, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil {
		qty = 0
	}

	shopkeeperID, _ := session.FromCtx(r).Identity()
	if _, err := c.orders.Purchase(shopkeeperID, id, qty); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidQuantity):
			flash.Error(w, r, "Quantity must be at least 1.")
			http.Redirect(w, r, fmt.Sprintf("/buyItem/%d", id), http.StatusFound)
		case errors.Is(err, services.ErrNotFound):
			flash.Error(w, r, "Item not found")
			http.Redirect(w, r, "/main", http.StatusFound)
		default:
			logger.WithCtx(r.Context()).Error("order: purchase failed", "error", err)
			flash.Error(w, r, "Could not complete the purchase. Please try again.")
			http.Redirect(w, r, fmt.Sprintf("/buyItem/%d", id), http.StatusFound)
		}
		return
	}

	flash.Success(w, r, "Item purchased successfully!")
	http.Redirect(w, r, fmt.Sprintf("/main/show/%d", id), http.StatusFound)
}

// Delete serves DELETE /main/order/{id}.
func (c *OrderController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(r)
	if !ok {
		c.views.RenderStatus(w, http.StatusNotFound, "404.html", nil)
		return
	}

	shopkeeperID, _ := session.FromCtx(r).Identity()
	if err := c.orders.Delete(id, shopkeeperID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.views.RenderStatus(w, http.StatusNotFound, "404.html", nil)
			return
		}
		logger.WithCtx(r.Context()).Error("order: delete failed", "error", err)
		flash.Error(w, r, "Could not delete the order. Please try again.")
		http.Redirect(w, r, "/main/order", http.StatusFound)
		return
	}

	flash.Success(w, r, "Order deleted successfully!")
	http.Redirect(w, r, "/main/order", http.StatusFound)
}

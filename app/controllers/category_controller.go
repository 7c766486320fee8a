package controllers

import (
	"errors"
	"net/http"

	"github.com/Saurav-S-Mehta-07/RetailEdge/app/services"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/flash"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/logger"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/session"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/view"
)

// CategoryController serves the category-filtered listing view.
type CategoryController struct {
	listings *services.ListingService
	views    *view.Renderer
}

func NewCategoryController(listings *services.ListingService, views *view.Renderer) *CategoryController {
	return &CategoryController{listings: listings, views: views}
}

// Index serves GET /main/categories?q=<category>. "all" or no q renders
// the full set.
func (c *CategoryController) Index(w http.ResponseWriter, r *http.Request) {
	shopkeeperID, _ := session.FromCtx(r).Identity()

	cat, err := c.listings.Catalogue(shopkeeperID, r.URL.Query().Get("q"))
	if err != nil {
		logger.WithCtx(r.Context()).Error("category: load failed", "error", err)
		flash.Error(w, r, "Could not load your items. Please try again.")
		http.Redirect(w, r, "/main", http.StatusFound)
		return
	}

	render(c.views, w, r, "category.html", cat)
}

// Delete serves DELETE /main/categories/{id}: remove an item from the
// category view and return to it.
func (c *CategoryController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(r)
	if !ok {
		c.views.RenderStatus(w, http.StatusNotFound, "404.html", nil)
		return
	}

	shopkeeperID, _ := session.FromCtx(r).Identity()
	if err := c.listings.Delete(id, shopkeeperID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.views.RenderStatus(w, http.StatusNotFound, "404.html", nil)
			return
		}
		logger.WithCtx(r.Context()).Error("category: delete failed", "error", err)
		flash.Error(w, r, "Could not delete the item. Please try again.")
		http.Redirect(w, r, "/main/categories", http.StatusFound)
		return
	}

	flash.Success(w, r, "Item deleted successfully!")
	http.Redirect(w, r, "/main/categories", http.StatusFound)
}

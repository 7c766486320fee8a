package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/Saurav-S-Mehta-07/RetailEdge/app/models"
	"github.com/Saurav-S-Mehta-07/RetailEdge/app/services"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/bind"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/flash"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/logger"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/session"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/storage"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/validate"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/view"
)

// ListingController serves the item CRUD pages.
type ListingController struct {
	listings *services.ListingService
	views    *view.Renderer
}

func NewListingController(listings *services.ListingService, views *view.Renderer) *ListingController {
	return &ListingController{listings: listings, views: views}
}

// showPage is the payload for the show/edit item views.
type showPage struct {
	Details  models.Listing
	Listings []models.Listing
}

// RenderAdd serves GET /addlist.
func (c *ListingController) RenderAdd(w http.ResponseWriter, r *http.Request) {
	id, _ := session.FromCtx(r).Identity()
	items, err := c.listings.OwnedBy(id)
	if err != nil {
		logger.WithCtx(r.Context()).Error("listing: load items failed", "error", err)
		items = nil
	}
	render(c.views, w, r, "addlist.html", items)
}

// Create serves POST /main: validate, store the uploaded image and
// persist the listing.
func (c *ListingController) Create(w http.ResponseWriter, r *http.Request) {
	shopkeeperID, _ := session.FromCtx(r).Identity()

	var in services.ListingInput
	if _, err := bind.Form(r, &in); err != nil {
		flash.Error(w, r, "Name, costPrice, and sellingPrice are required!")
		http.Redirect(w, r, "/addlist", http.StatusFound)
		return
	}
	// Validate before touching the disk so a rejected form does not
	// leave an orphaned image behind.
	if errs := validate.Struct(&in); validate.HasErrors(errs) {
		flash.Error(w, r, "Name, costPrice, and sellingPrice are required!")
		http.Redirect(w, r, "/addlist", http.StatusFound)
		return
	}
	in.Image = c.storeImage(r)

	_, errs, err := c.listings.Create(shopkeeperID, in)
	if err != nil {
		logger.WithCtx(r.Context()).Error("listing: create failed", "error", err)
		flash.Error(w, r, "Could not save the item. Please try again.")
		http.Redirect(w, r, "/addlist", http.StatusFound)
		return
	}
	if len(errs) > 0 {
		flash.Error(w, r, "Name, costPrice, and sellingPrice are required!")
		http.Redirect(w, r, "/addlist", http.StatusFound)
		return
	}

	flash.Success(w, r, "Item added successfully!")
	http.Redirect(w, r, "/main", http.StatusFound)
}

// Show serves GET /main/show/{id}.
func (c *ListingController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(r)
	if !ok {
		flash.Error(w, r, "Invalid item link or missing ID.")
		http.Redirect(w, r, "/main", http.StatusFound)
		return
	}

	details, err := c.listings.Get(id)
	if err != nil {
		flash.Error(w, r, "Item not found!")
		http.Redirect(w, r, "/main", http.StatusFound)
		return
	}

	shopkeeperID, _ := session.FromCtx(r).Identity()
	items, _ := c.listings.OwnedBy(shopkeeperID)
	render(c.views, w, r, "show.html", showPage{Details: details, Listings: items})
}

// RenderEdit serves GET /main/edit/{id}.
func (c *ListingController) RenderEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(r)
	if !ok {
		c.views.RenderStatus(w, http.StatusNotFound, "404.html", nil)
		return
	}

	details, err := c.listings.Get(id)
	if err != nil {
		c.views.RenderStatus(w, http.StatusNotFound, "404.html", nil)
		return
	}

	render(c.views, w, r, "editlist.html", details)
}

// Update serves POST /main/show/{id}: overwrite the listing with the
// submitted fields and re-render the show page.
func (c *ListingController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(r)
	if !ok {
		c.views.RenderStatus(w, http.StatusNotFound, "404.html", nil)
		return
	}

	var in services.ListingInput
	if _, err := bind.Form(r, &in); err != nil {
		flash.Error(w, r, "Invalid item form.")
		http.Redirect(w, r, fmt.Sprintf("/main/edit/%d", id), http.StatusFound)
		return
	}
	in.Image = c.storeImage(r)

	details, err := c.listings.Update(id, in)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.views.RenderStatus(w, http.StatusNotFound, "404.html", nil)
			return
		}
		logger.WithCtx(r.Context()).Error("listing: update failed", "error", err)
		flash.Error(w, r, "Could not update the item. Please try again.")
		http.Redirect(w, r, fmt.Sprintf("/main/edit/%d", id), http.StatusFound)
		return
	}

	shopkeeperID, _ := session.FromCtx(r).Identity()
	items, _ := c.listings.OwnedBy(shopkeeperID)

	flash.Success(w, r, "Item updated successfully!")
	render(c.views, w, r, "show.html", showPage{Details: details, Listings: items})
}

// Delete serves DELETE /main/{id}. HTML forms post with _method=DELETE,
// rewritten by the method-override middleware.
func (c *ListingController) Delete(w http.ResponseWriter, r *http.Request) {
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
		logger.WithCtx(r.Context()).Error("listing: delete failed", "error", err)
		flash.Error(w, r, "Could not delete the item. Please try again.")
		http.Redirect(w, r, "/main", http.StatusFound)
		return
	}

	flash.Success(w, r, "Item deleted successfully!")
	http.Redirect(w, r, "/main", http.StatusFound)
}

// storeImage saves an uploaded image part to the configured disk and
// returns its public URL. Returns "" when no file was attached.
func (c *ListingController) storeImage(r *http.Request) string {
	file, header, err := r.FormFile("image")
	if err != nil {
		return ""
	}
	defer file.Close()

	path := fmt.Sprintf("listings/%d%s", time.Now().UnixNano(), filepath.Ext(header.Filename))
	if err := storage.PutStream(path, file); err != nil {
		logger.WithCtx(r.Context()).Error("listing: image upload failed", "error", err)
		return ""
	}
	return storage.URL(path)
}

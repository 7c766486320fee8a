// Package controllers holds the HTTP request handlers grouped by
// resource: auth, listing, category, order and dashboard.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/flash"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/view"
)

// viewData is the common template payload: page-specific locals plus
// any pending flash messages.
type viewData struct {
	Flash []flash.Message
	Data  interface{}
}

func render(v *view.Renderer, w http.ResponseWriter, r *http.Request, name string, data interface{}) {
	v.Render(w, name, viewData{Flash: flash.Pop(w, r), Data: data})
}

// paramID parses the {id} route parameter. Returns (0, false) for a
// missing or non-numeric value.
func paramID(r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

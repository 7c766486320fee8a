// Package view renders HTML templates embedded in the binary.
package view

import (
	"html/template"
	"io/fs"
	"net/http"

	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/logger"
)

// Renderer holds a parsed template set.
type Renderer struct {
	tmpl *template.Template
}

// New parses every *.html template under the given fs.FS.
func New(fsys fs.FS, funcs template.FuncMap) (*Renderer, error) {
	t := template.New("").Funcs(funcs)
	t, err := t.ParseFS(fsys, "*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: t}, nil
}

// Render writes the named template to w with the given data.
// Render failures are logged and reported as a 500.
func (r *Renderer) Render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		logger.Error("view: render failed", "template", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// RenderStatus renders with an explicit HTTP status code.
func (r *Renderer) RenderStatus(w http.ResponseWriter, status int, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		logger.Error("view: render failed", "template", name, "error", err)
	}
}

// Package views embeds the HTML templates into the binary.
package views

import (
	"embed"

	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/view"
)

//go:embed *.html
var files embed.FS

// NewRenderer parses the embedded templates.
func NewRenderer() (*view.Renderer, error) {
	return view.New(files, nil)
}

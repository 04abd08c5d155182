// Package views holds the HTML templates, embedded so the binary runs from any directory.
package views

import "embed"

//go:embed *.html layouts/*.html partials/*.html
var FS embed.FS

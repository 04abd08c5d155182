// Package static holds the stylesheet, embedded like the views.
package static

import "embed"

//go:embed *.css
var FS embed.FS

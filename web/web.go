// Package web embeds the browser clients so the API binary can serve
// them directly. They are plain HTML/JS and talk to /api with fetch.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

// Static returns the client file tree rooted at the static directory.
func Static() (fs.FS, error) {
	return fs.Sub(staticFS, "static")
}

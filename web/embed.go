// Package web holds the HTML templates and static assets, embedded into the
// binary.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

// Layout is the layout every page is rendered into.
const Layout = "layouts/main"

//go:embed views
var viewsFS embed.FS

//go:embed static
var staticFS embed.FS

// Views returns the template tree rooted at views/.
func Views() fs.FS {
	return mustSub(viewsFS, "views")
}

// Static returns the asset tree rooted at static/.
func Static() fs.FS {
	return mustSub(staticFS, "static")
}

// NewViewEngine returns a Fiber view engine over the embedded templates.
func NewViewEngine() *html.Engine {
	return html.NewFileSystem(http.FS(Views()), ".html")
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

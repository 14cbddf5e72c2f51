package metaengine

import (
	"time"

	"github.com/a-h/templ"

	"github.com/eringen/metaengine/headsync"
	"github.com/eringen/metaengine/views"
)

const shutdownTimeout = 10 * time.Second

// Page is a public storefront page: a route, the SEO intent it declares, and
// the body component rendered inside the layout.
type Page struct {
	Path   string
	Intent headsync.Intent
	Body   func(site views.Site) templ.Component
	Hidden bool // excluded from sitemap.xml
}

// ShareImage describes an uploaded social share image.
type ShareImage struct {
	Filename string
	Path     string // public path, e.g. "/public/uploads/og/logo-1700000000.jpg"
	Width    int
	Height   int
	Size     int64
}

package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Layout wraps body in the page shell. The head only carries the static
// parts; SEO tags are synchronised into it after rendering.
func Layout(site Site, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &htmlWriter{w: out}
		w.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		w.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		w.raw(`<title>`)
		w.text(site.Meta.SiteName)
		w.raw(`</title><link rel="icon"`)
		w.attr("href", site.Meta.FaviconPath)
		w.raw(`><link rel="stylesheet" href="/public/styles.css">`)
		w.raw(`<script type="application/ld+json">`, OrganizationJsonLD(site), `</script>`)
		w.raw(`</head><body><header class="site-header"><a href="/">`)
		w.text(site.Meta.SiteName)
		w.raw(`</a></header><main>`)
		if w.err != nil {
			return w.err
		}
		if err := body.Render(ctx, out); err != nil {
			return err
		}
		w.raw(`</main><footer class="site-footer">`)
		w.text("© " + site.Meta.SiteName)
		w.raw(`</footer></body></html>`)
		return w.err
	})
}

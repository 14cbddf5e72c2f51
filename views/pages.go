package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// Home renders the storefront landing page.
func Home(site Site) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &htmlWriter{w: out}
		w.raw(`<section class="hero"><h1>Buy Cart Batteries Direct</h1><p>`)
		w.text("Golf Cart, LSV, NEV & MSV batteries from " + site.Meta.SiteName + ". Call 1-844-888-7732.")
		w.raw(`</p></section><section class="categories">`)
		for _, c := range Categories {
			w.raw(`<article class="category"`)
			w.attr("id", c.Slug)
			w.raw(`><h2>`)
			w.text(c.Name)
			w.raw(`</h2><p>`)
			w.text(c.Description)
			w.raw(`</p><span class="count">`)
			w.text(strconv.Itoa(c.Count) + " configurations")
			w.raw(`</span></article>`)
		}
		w.raw(`</section>`)
		return w.err
	})
}

func NotFound() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &htmlWriter{w: out}
		w.raw(`<section class="error"><h1>404 Page Not Found</h1><p>The page you are looking for does not exist.</p><a href="/">Back to the shop</a></section>`)
		return w.err
	})
}

func ServerError() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &htmlWriter{w: out}
		w.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>Server Error</title></head>`)
		w.raw(`<body><h1>Something went wrong</h1><p>Please try again later.</p></body></html>`)
		return w.err
	})
}

package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/metaengine/metaconfig"
)

func AdminLogin(showError bool, csrfToken string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &htmlWriter{w: out}
		w.raw(`<section class="admin-login"><h1>Admin</h1>`)
		if showError {
			w.raw(`<p class="error">Invalid password.</p>`)
		}
		w.raw(`<form method="post" action="/admin/login/">`)
		w.raw(`<input type="hidden" name="_csrf"`)
		w.attr("value", csrfToken)
		w.raw(`><label>Password <input type="password" name="password" required></label>`)
		w.raw(`<button type="submit">Log in</button></form></section>`)
		return w.err
	})
}

type formField struct {
	name        string
	label       string
	placeholder string
	help        string
	value       func(metaconfig.Config) string
}

type formGroup struct {
	title  string
	fields []formField
}

var metaFormGroups = []formGroup{
	{"Site Information", []formField{
		{"siteName", "Site Name", "Cart Battery Nation", "Your website name as it appears in search results and social shares.",
			func(c metaconfig.Config) string { return c.SiteName }},
		{"defaultImage", "Default Share Image", "/cbn-logo.png or https://...", "Fallback image for social sharing (1200x630px recommended). Use absolute URL or path.",
			func(c metaconfig.Config) string { return c.DefaultImage }},
		{"faviconPath", "Favicon Path", "/favicon.ico", "Path to your favicon file.",
			func(c metaconfig.Config) string { return c.FaviconPath }},
	}},
	{"Social Media", []formField{
		{"facebookPageUrl", "Facebook Page URL", "https://facebook.com/cartbatterynation", "Used in the article:publisher tag.",
			func(c metaconfig.Config) string { return c.FacebookPageURL }},
		{"twitterHandle", "Twitter Handle", "@CartBatteryNation", "Your Twitter username including the @ symbol.",
			func(c metaconfig.Config) string { return c.TwitterHandle }},
		{"socialProfileUrl", `Social Profile URL (rel="me")`, "https://twitter.com/cartbatterynation", "Primary social profile URL for identity verification.",
			func(c metaconfig.Config) string { return c.SocialProfileURL }},
	}},
	{"Search Engine Verification", []formField{
		{"googleVerification", "Google Site Verification", "abc123def456...", "From Google Search Console.",
			func(c metaconfig.Config) string { return c.GoogleVerification }},
		{"bingVerification", "Bing Site Verification", "xyz789ghi012...", "From Bing Webmaster Tools.",
			func(c metaconfig.Config) string { return c.BingVerification }},
		{"pinterestVerification", "Pinterest Domain Verification", "mno678pqr901...", "From Pinterest Business.",
			func(c metaconfig.Config) string { return c.PinterestVerification }},
		{"yandexVerification", "Yandex Verification", "vwx456yza789...", "From Yandex Webmaster.",
			func(c metaconfig.Config) string { return c.YandexVerification }},
	}},
}

// MetaSettings renders the SEO & meta tag settings form.
func MetaSettings(form MetaForm) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &htmlWriter{w: out}
		w.raw(`<section class="meta-settings"><h1>SEO &amp; Meta Tag Settings</h1>`)
		if form.Message != "" {
			w.raw(`<p class="notice">`)
			w.text(form.Message)
			w.raw(`</p>`)
		}
		w.raw(`<form method="post" action="/admin/meta/">`)
		w.raw(`<input type="hidden" name="_csrf"`)
		w.attr("value", form.CSRFToken)
		w.raw(`>`)
		for _, g := range metaFormGroups {
			w.raw(`<fieldset><legend>`)
			w.text(g.title)
			w.raw(`</legend>`)
			for _, f := range g.fields {
				w.raw(`<label`)
				w.attr("for", f.name)
				w.raw(`>`)
				w.text(f.label)
				w.raw(`</label><input type="text"`)
				w.attr("id", f.name)
				w.attr("name", f.name)
				w.attr("value", f.value(form.Config))
				w.attr("placeholder", f.placeholder)
				w.raw(`><small>`)
				w.text(f.help)
				w.raw(`</small>`)
				if msg, ok := form.Errors[f.name]; ok {
					w.raw(`<p class="field-error"`)
					w.attr("data-field", f.name)
					w.raw(`>`)
					w.text(msg)
					w.raw(`</p>`)
				}
			}
			w.raw(`</fieldset>`)
		}
		w.raw(`<button type="submit">Save Settings</button></form>`)

		w.raw(`<form method="post" action="/admin/meta/reset/"><input type="hidden" name="_csrf"`)
		w.attr("value", form.CSRFToken)
		w.raw(`><button type="submit">Reset to Defaults</button></form>`)

		w.raw(`<form method="post" action="/admin/meta/image/" enctype="multipart/form-data"><input type="hidden" name="_csrf"`)
		w.attr("value", form.CSRFToken)
		w.raw(`><label>Upload share image <input type="file" name="image" accept="image/*"></label>`)
		w.raw(`<button type="submit">Upload</button></form>`)

		w.raw(`<p><a href="/admin/meta/preview/">Preview generated meta tags</a></p></section>`)
		return w.err
	})
}

// MetaPreview shows generated head markup for copying.
func MetaPreview(markup string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &htmlWriter{w: out}
		w.raw(`<section class="meta-preview"><h1>Preview Generated Meta Tags</h1><pre><code>`)
		w.text(markup)
		w.raw(`</code></pre><p><a href="/admin/meta/">Back to settings</a></p></section>`)
		return w.err
	})
}

package views

import (
	"encoding/json"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/a-h/templ"
)

// buildURL joins path segments onto a base URL, ensuring a trailing slash.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// OrganizationJsonLD produces a Schema.org Organization JSON-LD block.
func OrganizationJsonLD(site Site) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     site.Meta.SiteName,
		"url":      buildURL(site.URL),
	}
	if logo := site.Meta.DefaultImage; logo != "" {
		if strings.HasPrefix(logo, "/") {
			logo = strings.TrimRight(site.URL, "/") + logo
		}
		data["logo"] = logo
	}
	var sameAs []string
	for _, u := range []string{site.Meta.FacebookPageURL, site.Meta.SocialProfileURL} {
		if u != "" {
			sameAs = append(sameAs, u)
		}
	}
	if len(sameAs) > 0 {
		data["sameAs"] = sameAs
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// htmlWriter writes markup and remembers the first error.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (w *htmlWriter) raw(parts ...string) {
	for _, s := range parts {
		if w.err != nil {
			return
		}
		_, w.err = io.WriteString(w.w, s)
	}
}

func (w *htmlWriter) text(s string) {
	w.raw(templ.EscapeString(s))
}

// attr writes ` key="value"` with value escaped.
func (w *htmlWriter) attr(key, value string) {
	w.raw(" ", key, `="`, templ.EscapeString(value), `"`)
}

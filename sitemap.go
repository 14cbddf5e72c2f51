package metaengine

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// renderSitemap lists every visible page. A page's canonical URL wins over
// its route so the sitemap agrees with the head tags.
func (a *App) renderSitemap(c echo.Context, pages []Page) error {
	base := a.Config.URL
	urls := make([]sitemapURL, 0, len(pages))
	for _, p := range pages {
		if p.Hidden {
			continue
		}
		loc := p.Intent.Canonical
		if loc == "" {
			loc = Origin(base) + p.Path
		}
		urls = append(urls, sitemapURL{
			Loc:     loc,
			LastMod: p.Intent.ModifiedTime,
		})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}

package metaengine

import (
	"github.com/labstack/echo/v4"

	"github.com/eringen/metaengine/headsync"
	"github.com/eringen/metaengine/metaconfig"
)

// HandlePage registers p as a GET route rendered through RenderPage and lists
// it in the sitemap unless it is hidden.
func (a *App) HandlePage(p Page) {
	a.pages = append(a.pages, p)
	a.Echo.GET(p.Path, func(c echo.Context) error {
		return a.RenderPage(c, p.Intent, p.Body(a.site()))
	})
}

// Pages returns the registered pages.
func (a *App) Pages() []Page {
	return a.pages
}

func (a *App) homePage() Page {
	return Page{
		Path: "/",
		Intent: headsync.Intent{
			Title:       "Buy Cart Batteries Direct | Golf Cart, LSV, NEV & MSV Batteries",
			Description: "Shop Cart Batteries Direct from Cart Battery Nation! Order premium Golf Cart Batteries, LSV, NEV & MSV solutions. 96+ battery configurations. Buy now & save! Call 1-844-888-7732.",
			Image:       "/hero-background.jpg",
			ImageWidth:  1200,
			ImageHeight: 630,
			Canonical:   BuildURL(a.Config.URL),
		},
		Body: a.Views.Home,
	}
}

func notFoundIntent() headsync.Intent {
	return headsync.Intent{
		Title:       "404 Page Not Found | Cart Battery Nation",
		Description: "Page not found. Shop our complete catalog of Cart Batteries - Golf Cart, LSV, NEV & MSV solutions. Buy direct and save! Call 1-844-888-7732.",
		Image:       "/og/logo.png",
		ImageWidth:  512,
		ImageHeight: 512,
	}
}

func metaSettingsIntent() headsync.Intent {
	return headsync.Intent{
		Title:       "SEO & Meta Tag Settings - Cart Battery Nation",
		Description: "Configure SEO meta tags, social media sharing, and search engine verification for Cart Battery Nation.",
		PageType:    headsync.Website,
	}
}

func adminLoginIntent() headsync.Intent {
	return headsync.Intent{
		Title:       "Admin Login - Cart Battery Nation",
		Description: "Sign in to manage Cart Battery Nation site settings.",
	}
}

// Example product page shown in the settings preview.
const (
	previewOrigin = "https://cartbatterynation.com"
	previewURL    = previewOrigin + "/products/golf-cart"
)

// PreviewIntent is the example product page shown in the settings preview.
// Its copy names the configured site.
func PreviewIntent(cfg metaconfig.Config) headsync.Intent {
	return headsync.Intent{
		Title:       "Premium Golf Cart Batteries - " + cfg.SiteName,
		Description: "Shop premium golf cart batteries direct from " + cfg.SiteName + ".",
		ImageWidth:  1200,
		ImageHeight: 630,
		ImageType:   "image/jpeg",
		Canonical:   previewURL,
	}
}

// PreviewTags derives the tags for intent. The preview always names the
// publisher when one is configured, placed right after og:site_name, even
// for website pages.
func PreviewTags(intent headsync.Intent, cfg metaconfig.Config, loc headsync.Location) headsync.TagSet {
	set := headsync.Derive(intent, cfg, loc)
	if cfg.FacebookPageURL == "" {
		return set
	}
	if _, ok := set.Meta("article:publisher"); ok {
		return set
	}
	publisher := headsync.Tag{Element: "meta", Attr: "property", Key: "article:publisher", Value: cfg.FacebookPageURL}
	tags := make([]headsync.Tag, 0, len(set.Tags)+1)
	for _, t := range set.Tags {
		tags = append(tags, t)
		if t.Attr == "property" && t.Key == "og:site_name" {
			tags = append(tags, publisher)
		}
	}
	set.Tags = tags
	return set
}

package headsync

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/eringen/metaengine/metaconfig"
)

// TwitterCard is the card type written on every page.
const TwitterCard = "summary_large_image"

// Derive computes the tag set for intent under cfg. It is a pure function of
// its inputs.
func Derive(intent Intent, cfg metaconfig.Config, loc Location) TagSet {
	set := TagSet{Title: intent.Title}
	add := func(t Tag) { set.Tags = append(set.Tags, t) }

	add(metaName("description", intent.Description))

	if intent.Canonical != "" {
		add(link("canonical", intent.Canonical))
	}

	pageType := intent.pageType()
	ogURL := intent.Canonical
	if ogURL == "" {
		ogURL = loc.Href
	}
	add(metaProperty("og:title", intent.Title))
	add(metaProperty("og:description", intent.Description))
	add(metaProperty("og:type", string(pageType)))
	add(metaProperty("og:url", ogURL))
	add(metaProperty("og:site_name", cfg.SiteName))

	image := ResolveImage(intent, cfg, loc.Origin)
	if image != "" {
		add(metaProperty("og:image", image))
		if intent.ImageWidth > 0 {
			add(metaProperty("og:image:width", strconv.Itoa(intent.ImageWidth)))
		}
		if intent.ImageHeight > 0 {
			add(metaProperty("og:image:height", strconv.Itoa(intent.ImageHeight)))
		}
		if intent.ImageType != "" {
			add(metaProperty("og:image:type", intent.ImageType))
		}
	}

	if pageType == Article {
		if cfg.FacebookPageURL != "" {
			add(metaProperty("article:publisher", cfg.FacebookPageURL))
		}
		if intent.ModifiedTime != "" {
			add(metaProperty("article:modified_time", intent.ModifiedTime))
		}
	}

	add(metaName("twitter:card", TwitterCard))
	add(metaName("twitter:title", intent.Title))
	add(metaName("twitter:description", intent.Description))
	if cfg.TwitterHandle != "" {
		add(metaName("twitter:site", cfg.TwitterHandle))
	}
	if image != "" {
		add(metaName("twitter:image", image))
	}

	for _, v := range []struct{ name, token string }{
		{"msvalidate.01", cfg.BingVerification},
		{"google-site-verification", cfg.GoogleVerification},
		{"p:domain_verify", cfg.PinterestVerification},
		{"yandex-verification", cfg.YandexVerification},
	} {
		if v.token != "" {
			add(metaName(v.name, v.token))
		}
	}

	if cfg.SocialProfileURL != "" {
		add(link("me", cfg.SocialProfileURL))
	}
	return set
}

// ResolveImage picks the share image (intent override, then the config
// default) and makes it absolute against origin. It returns "" when neither
// is set.
func ResolveImage(intent Intent, cfg metaconfig.Config, origin string) string {
	image := intent.Image
	if image == "" {
		image = cfg.DefaultImage
	}
	if image == "" {
		return ""
	}
	return AbsoluteURL(origin, image)
}

// AbsoluteURL returns ref unchanged when it is already an absolute http(s)
// URL, and joins it onto origin otherwise.
func AbsoluteURL(origin, ref string) string {
	if u, err := url.Parse(ref); err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		return ref
	}
	if !strings.HasPrefix(ref, "/") {
		ref = "/" + ref
	}
	return strings.TrimRight(origin, "/") + ref
}

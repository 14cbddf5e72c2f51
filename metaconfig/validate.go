package metaconfig

import (
	"net/url"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// FieldErrors maps a config field (by its JSON name) to a message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e[k]
	}
	return "invalid meta config: " + strings.Join(parts, "; ")
}

var strict = bluemonday.StrictPolicy()

// Sanitize trims every field and strips any markup from it. Text without
// markup is kept as typed, entities included. When the policy did strip
// something, its entity-escaped output is unescaped once: values end up in
// attributes that the HTML renderer escapes itself.
func Sanitize(c Config) Config {
	clean := func(s string) string {
		s = strings.TrimSpace(s)
		out := strict.Sanitize(s)
		if out == html.EscapeString(html.UnescapeString(s)) {
			return s
		}
		return strings.TrimSpace(html.UnescapeString(out))
	}
	return Config{
		SiteName:              clean(c.SiteName),
		DefaultImage:          clean(c.DefaultImage),
		FaviconPath:           clean(c.FaviconPath),
		FacebookPageURL:       clean(c.FacebookPageURL),
		TwitterHandle:         clean(c.TwitterHandle),
		SocialProfileURL:      clean(c.SocialProfileURL),
		GoogleVerification:    clean(c.GoogleVerification),
		BingVerification:      clean(c.BingVerification),
		PinterestVerification: clean(c.PinterestVerification),
		YandexVerification:    clean(c.YandexVerification),
	}
}

// Validate applies the settings form rules. It returns nil or FieldErrors.
// Handles and verification tokens are free form.
func Validate(c Config) error {
	errs := FieldErrors{}
	if c.SiteName == "" {
		errs["siteName"] = "Site name is required"
	}
	if !isURL(c.DefaultImage) && !strings.HasPrefix(c.DefaultImage, "/") {
		errs["defaultImage"] = "Must be a URL or path starting with /"
	}
	if c.FaviconPath == "" {
		errs["faviconPath"] = "Favicon path is required"
	}
	if c.FacebookPageURL != "" && !isURL(c.FacebookPageURL) {
		errs["facebookPageUrl"] = "Must be a valid URL"
	}
	if c.SocialProfileURL != "" && !isURL(c.SocialProfileURL) {
		errs["socialProfileUrl"] = "Must be a valid URL"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func isURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

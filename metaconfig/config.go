// Package metaconfig holds the site-wide SEO defaults used when building
// document heads, and persists them through a pluggable Backend.
package metaconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// StorageKey is the fixed key the config record is persisted under.
const StorageKey = "meta-config-storage"

// Config is the site-wide metadata record. Empty strings mean "not set".
type Config struct {
	// Site information
	SiteName     string `json:"siteName"`
	DefaultImage string `json:"defaultImage"`
	FaviconPath  string `json:"faviconPath"`

	// Social media
	FacebookPageURL  string `json:"facebookPageUrl"`
	TwitterHandle    string `json:"twitterHandle"`
	SocialProfileURL string `json:"socialProfileUrl"`

	// Search engine verification
	GoogleVerification    string `json:"googleVerification"`
	BingVerification      string `json:"bingVerification"`
	PinterestVerification string `json:"pinterestVerification"`
	YandexVerification    string `json:"yandexVerification"`
}

// Defaults returns the hardcoded default record.
func Defaults() Config {
	return Config{
		SiteName:      "Cart Battery Nation",
		DefaultImage:  "/cbn-logo.png",
		FaviconPath:   "/favicon.ico",
		TwitterHandle: "@CartBatteryNation",
	}
}

// Partial is a shallow update. Nil fields are left untouched by Store.Update.
type Partial struct {
	SiteName     *string `json:"siteName,omitempty"`
	DefaultImage *string `json:"defaultImage,omitempty"`
	FaviconPath  *string `json:"faviconPath,omitempty"`

	FacebookPageURL  *string `json:"facebookPageUrl,omitempty"`
	TwitterHandle    *string `json:"twitterHandle,omitempty"`
	SocialProfileURL *string `json:"socialProfileUrl,omitempty"`

	GoogleVerification    *string `json:"googleVerification,omitempty"`
	BingVerification      *string `json:"bingVerification,omitempty"`
	PinterestVerification *string `json:"pinterestVerification,omitempty"`
	YandexVerification    *string `json:"yandexVerification,omitempty"`
}

// Full returns a Partial that supplies every field of c.
func Full(c Config) Partial {
	return Partial{
		SiteName:              &c.SiteName,
		DefaultImage:          &c.DefaultImage,
		FaviconPath:           &c.FaviconPath,
		FacebookPageURL:       &c.FacebookPageURL,
		TwitterHandle:         &c.TwitterHandle,
		SocialProfileURL:      &c.SocialProfileURL,
		GoogleVerification:    &c.GoogleVerification,
		BingVerification:      &c.BingVerification,
		PinterestVerification: &c.PinterestVerification,
		YandexVerification:    &c.YandexVerification,
	}
}

// Apply merges p onto c and returns the result. c is not modified.
func (p Partial) Apply(c Config) Config {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&c.SiteName, p.SiteName)
	set(&c.DefaultImage, p.DefaultImage)
	set(&c.FaviconPath, p.FaviconPath)
	set(&c.FacebookPageURL, p.FacebookPageURL)
	set(&c.TwitterHandle, p.TwitterHandle)
	set(&c.SocialProfileURL, p.SocialProfileURL)
	set(&c.GoogleVerification, p.GoogleVerification)
	set(&c.BingVerification, p.BingVerification)
	set(&c.PinterestVerification, p.PinterestVerification)
	set(&c.YandexVerification, p.YandexVerification)
	return c
}

// String is a convenience for building a Partial inline.
func String(s string) *string {
	return &s
}

// PartialFromMap builds a Partial from field values keyed by their JSON
// names. Unknown field names are rejected.
func PartialFromMap(values map[string]string) (Partial, error) {
	var p Partial
	data, err := json.Marshal(values)
	if err != nil {
		return p, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return p, fmt.Errorf("metaconfig: %w", err)
	}
	return p, nil
}

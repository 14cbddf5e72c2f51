package metaconfig

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"defaults are valid", func(c *Config) {}, ""},
		{"absolute default image", func(c *Config) { c.DefaultImage = "https://cdn.example.com/share.jpg" }, ""},
		{"empty site name", func(c *Config) { c.SiteName = "" }, "siteName"},
		{"relative default image", func(c *Config) { c.DefaultImage = "logo.png" }, "defaultImage"},
		{"empty favicon", func(c *Config) { c.FaviconPath = "" }, "faviconPath"},
		{"bad facebook url", func(c *Config) { c.FacebookPageURL = "facebook.com/page" }, "facebookPageUrl"},
		{"bad social url", func(c *Config) { c.SocialProfileURL = "not a url" }, "socialProfileUrl"},
		{"free form handle", func(c *Config) { c.TwitterHandle = "no-at-sign" }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Defaults()
			tt.mutate(&c)
			err := Validate(c)
			if tt.field == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			var fe FieldErrors
			if !errors.As(err, &fe) {
				t.Fatalf("Validate() = %v, want FieldErrors", err)
			}
			if _, ok := fe[tt.field]; !ok || len(fe) != 1 {
				t.Errorf("FieldErrors = %v, want only %q", fe, tt.field)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	c := Sanitize(Config{
		SiteName:        "  <b>Cart</b> Battery Nation ",
		FacebookPageURL: "https://facebook.com/cbn?a=1&b=2",
		TwitterHandle:   "@CBN<script>alert(1)</script>",
	})
	if c.SiteName != "Cart Battery Nation" {
		t.Errorf("SiteName = %q, want %q", c.SiteName, "Cart Battery Nation")
	}
	if c.FacebookPageURL != "https://facebook.com/cbn?a=1&b=2" {
		t.Errorf("FacebookPageURL = %q, want query preserved", c.FacebookPageURL)
	}
	if c.TwitterHandle != "@CBN" {
		t.Errorf("TwitterHandle = %q, want %q", c.TwitterHandle, "@CBN")
	}
}

func TestSanitizeKeepsTypedEntities(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Tom &amp; Jerry", "Tom &amp; Jerry"},
		{"&lt;b&gt;Bold&lt;/b&gt;", "&lt;b&gt;Bold&lt;/b&gt;"},
		{"Tom & Jerry", "Tom & Jerry"},
		{`Carts "R" Us`, `Carts "R" Us`},
		{"<i>Tom</i> & Jerry", "Tom & Jerry"},
		{"<i>Tom</i> &amp; Jerry", "Tom & Jerry"},
	}
	for _, tt := range tests {
		if got := Sanitize(Config{SiteName: tt.in}).SiteName; got != tt.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

package metaengine

import "testing"

func TestCachePolicy(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/", "public, max-age=60"},
		{"/products/golf-cart", "public, max-age=60"},
		{"/public/styles.css", "public, max-age=31536000, immutable"},
		{"/public/uploads/og/share.jpg", "public, max-age=86400"},
		{"/sitemap.xml", "public, max-age=3600"},
		{"/robots.txt", "public, max-age=3600"},
		{"/admin/meta/", "no-store"},
		{"/api/meta/config", "no-store"},
	}
	for _, tt := range tests {
		if got := cachePolicy(tt.path); got != tt.want {
			t.Errorf("cachePolicy(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

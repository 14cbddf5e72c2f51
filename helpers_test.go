package metaengine

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"Golf Cart Hero.PNG", "golf-cart-hero-png"},
		{"  --Logo--  ", "logo"},
		{"ÜBER 12V", "ber-12v"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.input); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		want     string
	}{
		{"https://example.com", nil, "https://example.com/"},
		{"https://example.com", []string{"admin", "meta"}, "https://example.com/admin/meta/"},
		{"http://localhost:3000/shop", []string{"lsv"}, "http://localhost:3000/shop/lsv/"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segments...); got != tt.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segments, got, tt.want)
		}
	}
}

func TestOrigin(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"https://example.com/some/path?q=1", "https://example.com"},
		{"http://localhost:3000", "http://localhost:3000"},
		{"example.com/", "example.com"},
	}
	for _, tt := range tests {
		if got := Origin(tt.input); got != tt.want {
			t.Errorf("Origin(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

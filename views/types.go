package views

import "github.com/eringen/metaengine/metaconfig"

// Site is what the layout needs to know about the site.
type Site struct {
	Meta metaconfig.Config
	URL  string // public origin, e.g. "https://cartbatterynation.com"
}

// MetaForm carries the settings form state into MetaSettings.
type MetaForm struct {
	Config    metaconfig.Config
	Errors    map[string]string // keyed by JSON field name
	Message   string
	CSRFToken string
}

// Category is a product category teaser on the home page.
type Category struct {
	Name        string
	Slug        string
	Description string
	Count       int
}

// Categories lists the storefront categories.
var Categories = []Category{
	{"Golf Cart Batteries", "golf-cart", "Buy premium Golf Cart Batteries for reliable performance. Shop 6V, 8V & 12V configurations.", 24},
	{"LSV Batteries", "lsv", "Shop Low Speed Vehicle (LSV) Batteries for neighborhood transportation.", 24},
	{"NEV Batteries", "nev", "Purchase Neighborhood Electric Vehicle (NEV) Batteries meeting DOT regulations.", 24},
	{"MSV Batteries", "msv", "Buy Medium Speed Vehicle (MSV) Batteries for enhanced performance.", 24},
}

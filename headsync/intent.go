// Package headsync derives the SEO tag set for a page and reconciles it into a
// document head using a find-or-create policy, so repeated runs never
// duplicate tags.
package headsync

// PageType is the og:type of a page.
type PageType string

const (
	Website PageType = "website"
	Article PageType = "article"
)

// Intent is the metadata a single page wants reflected in search and social
// previews. Zero values mean "not supplied".
type Intent struct {
	Title        string
	Description  string
	Image        string
	ImageWidth   int
	ImageHeight  int
	ImageType    string
	PageType     PageType
	ModifiedTime string
	Canonical    string
}

func (i Intent) pageType() PageType {
	if i.PageType == "" {
		return Website
	}
	return i.PageType
}

// Location is the address the page is being served at.
type Location struct {
	Origin string // scheme://host[:port]
	Href   string // full URL of the current page
}

// Package inspect reads the SEO head tags back out of a served page.
package inspect

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/PuerkitoBio/goquery"

	"github.com/eringen/metaengine/headsync"
)

// Fetch downloads url and returns the head tags found on the page.
func Fetch(ctx context.Context, client *http.Client, url string) (headsync.TagSet, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return headsync.TagSet{}, fmt.Errorf("create request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return headsync.TagSet{}, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return headsync.TagSet{}, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}
	return Parse(resp.Body)
}

// Parse reads the title, named and property meta tags, and canonical/me links.
func Parse(r io.Reader) (headsync.TagSet, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return headsync.TagSet{}, fmt.Errorf("parse html: %w", err)
	}
	var set headsync.TagSet
	set.Title = doc.Find("head title").First().Text()
	doc.Find("head meta, head link").Each(func(_ int, s *goquery.Selection) {
		switch goquery.NodeName(s) {
		case "meta":
			content := s.AttrOr("content", "")
			if p, ok := s.Attr("property"); ok {
				set.Tags = append(set.Tags, headsync.Tag{Element: "meta", Attr: "property", Key: p, Value: content})
			} else if n, ok := s.Attr("name"); ok {
				set.Tags = append(set.Tags, headsync.Tag{Element: "meta", Attr: "name", Key: n, Value: content})
			}
		case "link":
			rel := s.AttrOr("rel", "")
			if rel == "canonical" || rel == "me" {
				set.Tags = append(set.Tags, headsync.Tag{Element: "link", Attr: "rel", Key: rel, Value: s.AttrOr("href", "")})
			}
		}
	})
	return set, nil
}

// Missing returns the tags of want that are absent from got or carry a
// different value.
func Missing(want, got headsync.TagSet) []headsync.Tag {
	var out []headsync.Tag
	for _, w := range want.Tags {
		v, ok := got.Get(w.Element, w.Attr, w.Key)
		if !ok || v != w.Value {
			out = append(out, w)
		}
	}
	return out
}

// Duplicates returns tags that occur more than once in set.
func Duplicates(set headsync.TagSet) []headsync.Tag {
	seen := make(map[headsync.Tag]int)
	var out []headsync.Tag
	for _, t := range set.Tags {
		id := headsync.Tag{Element: t.Element, Attr: t.Attr, Key: t.Key}
		seen[id]++
		if seen[id] == 2 {
			out = append(out, id)
		}
	}
	return out
}

package headsync

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Markup renders set as head markup, one element per line, in write order.
func Markup(set TagSet) string {
	var b strings.Builder
	title := &html.Node{Type: html.ElementNode, Data: "title", DataAtom: atom.Title}
	title.AppendChild(&html.Node{Type: html.TextNode, Data: set.Title})
	_ = html.Render(&b, title)
	for _, t := range set.Tags {
		b.WriteByte('\n')
		_ = html.Render(&b, &html.Node{
			Type:     html.ElementNode,
			Data:     t.Element,
			DataAtom: atom.Lookup([]byte(t.Element)),
			Attr: []html.Attribute{
				{Key: t.Attr, Val: t.Key},
				{Key: t.ValueAttr(), Val: t.Value},
			},
		})
	}
	return b.String()
}

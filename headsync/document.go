package headsync

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a parsed HTML page whose head can be synchronised.
type Document struct {
	root *html.Node
}

// ParseDocument parses a full HTML page.
func ParseDocument(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Document{root: root}, nil
}

// NewDocument wraps an already parsed tree.
func NewDocument(root *html.Node) *Document {
	return &Document{root: root}
}

// Head returns the document head, or nil when there is none.
func (d *Document) Head() Head {
	if d == nil || d.root == nil {
		return nil
	}
	n := findElement(d.root, atom.Head)
	if n == nil {
		return nil
	}
	return &htmlHead{node: n}
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String renders the document, returning "" on error.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// TagSet reads the synchronisable tags currently in the head.
func (d *Document) TagSet() TagSet {
	var set TagSet
	h, ok := d.Head().(*htmlHead)
	if !ok {
		return set
	}
	if t := findElement(h.node, atom.Title); t != nil {
		set.Title = textContent(t)
	}
	for c := h.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Meta:
			for _, key := range []string{"property", "name"} {
				if v, ok := attr(c, key); ok {
					content, _ := attr(c, "content")
					set.Tags = append(set.Tags, Tag{Element: "meta", Attr: key, Key: v, Value: content})
					break
				}
			}
		case atom.Link:
			if rel, ok := attr(c, "rel"); ok {
				href, _ := attr(c, "href")
				set.Tags = append(set.Tags, Tag{Element: "link", Attr: "rel", Key: rel, Value: href})
			}
		}
	}
	return set
}

type htmlHead struct {
	node *html.Node
}

// SetTitle keeps exactly one title element holding title.
func (h *htmlHead) SetTitle(title string) {
	var titles []*html.Node
	walk(h.node, func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Title {
			titles = append(titles, n)
		}
	})
	var t *html.Node
	if len(titles) == 0 {
		t = &html.Node{Type: html.ElementNode, Data: "title", DataAtom: atom.Title}
		h.node.AppendChild(t)
	} else {
		t = titles[0]
		for _, extra := range titles[1:] {
			extra.Parent.RemoveChild(extra)
		}
	}
	for c := t.FirstChild; c != nil; c = t.FirstChild {
		t.RemoveChild(c)
	}
	t.AppendChild(&html.Node{Type: html.TextNode, Data: title})
}

func (h *htmlHead) Find(t Tag) Element {
	var found *html.Node
	walk(h.node, func(n *html.Node) {
		if found != nil || n.Type != html.ElementNode || n.Data != t.Element {
			return
		}
		if v, ok := attr(n, t.Attr); ok && v == t.Key {
			found = n
		}
	})
	if found == nil {
		return nil
	}
	return htmlElement{node: found}
}

func (h *htmlHead) Append(t Tag) {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     t.Element,
		DataAtom: atom.Lookup([]byte(t.Element)),
		Attr: []html.Attribute{
			{Key: t.Attr, Val: t.Key},
			{Key: t.ValueAttr(), Val: t.Value},
		},
	}
	h.node.AppendChild(n)
}

type htmlElement struct {
	node *html.Node
}

func (e htmlElement) SetAttr(key, value string) {
	for i := range e.node.Attr {
		if e.node.Attr[i].Namespace == "" && e.node.Attr[i].Key == key {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: key, Val: value})
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func walk(n *html.Node, fn func(*html.Node)) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		fn(c)
		walk(c, fn)
	}
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	})
	return b.String()
}

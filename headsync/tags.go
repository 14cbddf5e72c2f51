package headsync

// Tag is one head element identified by (Element, Attr, Key). Value is the
// content attribute for meta tags and href for link tags.
type Tag struct {
	Element string // "meta" or "link"
	Attr    string // "name", "property" or "rel"
	Key     string
	Value   string
}

// ValueAttr is the attribute Value is written to.
func (t Tag) ValueAttr() string {
	if t.Element == "link" {
		return "href"
	}
	return "content"
}

// SameAs reports whether t and o address the same head element.
func (t Tag) SameAs(o Tag) bool {
	return t.Element == o.Element && t.Attr == o.Attr && t.Key == o.Key
}

func metaName(key, value string) Tag {
	return Tag{Element: "meta", Attr: "name", Key: key, Value: value}
}

func metaProperty(key, value string) Tag {
	return Tag{Element: "meta", Attr: "property", Key: key, Value: value}
}

func link(rel, href string) Tag {
	return Tag{Element: "link", Attr: "rel", Key: rel, Value: href}
}

// TagSet is the full head state: a title plus tags in write order.
type TagSet struct {
	Title string
	Tags  []Tag
}

// Get returns the value of the tag addressed by (element, attr, key).
func (s TagSet) Get(element, attr, key string) (string, bool) {
	want := Tag{Element: element, Attr: attr, Key: key}
	for _, t := range s.Tags {
		if t.SameAs(want) {
			return t.Value, true
		}
	}
	return "", false
}

// Meta looks up a meta tag by name or property.
func (s TagSet) Meta(key string) (string, bool) {
	if v, ok := s.Get("meta", "property", key); ok {
		return v, true
	}
	return s.Get("meta", "name", key)
}

// Link looks up a link tag by rel.
func (s TagSet) Link(rel string) (string, bool) {
	return s.Get("link", "rel", rel)
}

// Reconcile merges desired into current with find-or-create semantics: tags
// already present get the desired value, missing tags are appended in desired
// order, and tags desired does not mention are kept untouched. Neither input
// is modified.
func Reconcile(current, desired TagSet) TagSet {
	out := TagSet{Title: desired.Title, Tags: make([]Tag, len(current.Tags), len(current.Tags)+len(desired.Tags))}
	copy(out.Tags, current.Tags)
	for _, d := range desired.Tags {
		found := false
		for i := range out.Tags {
			if out.Tags[i].SameAs(d) {
				out.Tags[i].Value = d.Value
				found = true
				break
			}
		}
		if !found {
			out.Tags = append(out.Tags, d)
		}
	}
	return out
}

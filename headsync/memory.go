package headsync

// MemoryHead is an in-memory Head. Its state is exposed as a TagSet.
type MemoryHead struct {
	set TagSet
}

// NewMemoryHead returns a MemoryHead starting from initial.
func NewMemoryHead(initial TagSet) *MemoryHead {
	h := &MemoryHead{}
	h.set.Title = initial.Title
	h.set.Tags = append(h.set.Tags, initial.Tags...)
	return h
}

func (h *MemoryHead) SetTitle(title string) { h.set.Title = title }

func (h *MemoryHead) Find(t Tag) Element {
	for i := range h.set.Tags {
		if h.set.Tags[i].SameAs(t) {
			return memoryElement{tag: &h.set.Tags[i]}
		}
	}
	return nil
}

func (h *MemoryHead) Append(t Tag) { h.set.Tags = append(h.set.Tags, t) }

// TagSet returns a copy of the current state.
func (h *MemoryHead) TagSet() TagSet {
	out := TagSet{Title: h.set.Title}
	out.Tags = append(out.Tags, h.set.Tags...)
	return out
}

type memoryElement struct {
	tag *Tag
}

func (e memoryElement) SetAttr(key, value string) {
	if key == e.tag.ValueAttr() {
		e.tag.Value = value
	}
}

package headsync

import "github.com/eringen/metaengine/metaconfig"

// Element is an existing head node whose attributes can be overwritten.
type Element interface {
	SetAttr(key, value string)
}

// Head is the tag collection a TagSet is applied to.
type Head interface {
	SetTitle(title string)
	// Find returns the element addressed by t, or nil.
	Find(t Tag) Element
	// Append creates a new element for t.
	Append(t Tag)
}

// Apply writes set into head: one title, and find-or-create for every tag.
// A nil head is a no-op.
func Apply(head Head, set TagSet) {
	if head == nil {
		return
	}
	head.SetTitle(set.Title)
	for _, t := range set.Tags {
		if el := head.Find(t); el != nil {
			el.SetAttr(t.ValueAttr(), t.Value)
			continue
		}
		head.Append(t)
	}
}

// Sync derives the tag set for intent under cfg and applies it to head. It is
// meant to be called after every render with the latest config.
func Sync(head Head, intent Intent, cfg metaconfig.Config, loc Location) {
	if head == nil {
		return
	}
	Apply(head, Derive(intent, cfg, loc))
}

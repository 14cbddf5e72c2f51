package headsync

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/metaengine/metaconfig"
)

func TestReconcileFindOrCreate(t *testing.T) {
	current := TagSet{
		Title: "Old",
		Tags: []Tag{
			metaName("description", "old description"),
			metaName("viewport", "width=device-width"),
		},
	}
	desired := TagSet{
		Title: "New",
		Tags: []Tag{
			metaName("description", "new description"),
			metaProperty("og:title", "New"),
		},
	}
	got := Reconcile(current, desired)
	want := TagSet{
		Title: "New",
		Tags: []Tag{
			metaName("description", "new description"),
			metaName("viewport", "width=device-width"),
			metaProperty("og:title", "New"),
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Reconcile() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "old description", current.Tags[0].Value, "current must not be modified")
}

func TestReconcileIsIdempotent(t *testing.T) {
	desired := Derive(Intent{Title: "T", Description: "D"}, metaconfig.Defaults(), testLoc)
	once := Reconcile(TagSet{}, desired)
	twice := Reconcile(once, desired)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("second Reconcile changed state:\n%s", diff)
	}
}

func TestApplyMatchesReconcile(t *testing.T) {
	initial := TagSet{Title: "Old", Tags: []Tag{metaName("description", "x"), link("icon", "/favicon.ico")}}
	desired := Derive(Intent{Title: "T", Description: "D", Canonical: "https://example.com/t"}, metaconfig.Defaults(), testLoc)

	head := NewMemoryHead(initial)
	Apply(head, desired)
	if diff := cmp.Diff(Reconcile(initial, desired), head.TagSet()); diff != "" {
		t.Errorf("Apply() and Reconcile() disagree (-reconcile +apply):\n%s", diff)
	}
}

func TestSyncTwiceHasNoDuplicates(t *testing.T) {
	cfg := metaconfig.Defaults()
	cfg.GoogleVerification = "g"
	cfg.SocialProfileURL = "https://example.org/me"
	intent := Intent{Title: "T", Description: "D", Canonical: "https://example.com/c"}

	head := NewMemoryHead(TagSet{})
	Sync(head, intent, cfg, testLoc)
	once := head.TagSet()
	Sync(head, intent, cfg, testLoc)
	if diff := cmp.Diff(once, head.TagSet()); diff != "" {
		t.Errorf("second Sync changed state:\n%s", diff)
	}
	seen := map[Tag]bool{}
	for _, tag := range head.TagSet().Tags {
		id := Tag{Element: tag.Element, Attr: tag.Attr, Key: tag.Key}
		require.False(t, seen[id], "duplicate tag %+v", id)
		seen[id] = true
	}
}

func TestSyncReflectsLatestConfig(t *testing.T) {
	head := NewMemoryHead(TagSet{})
	cfg := metaconfig.Defaults()
	intent := Intent{Title: "T"}

	Sync(head, intent, cfg, testLoc)
	cfg.SiteName = "Renamed"
	cfg.TwitterHandle = "@Renamed"
	Sync(head, intent, cfg, testLoc)

	state := head.TagSet()
	name, _ := state.Meta("og:site_name")
	site, _ := state.Meta("twitter:site")
	assert.Equal(t, "Renamed", name)
	assert.Equal(t, "@Renamed", site)
}

func TestSyncNilHeadIsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		Sync(nil, Intent{Title: "T"}, metaconfig.Defaults(), testLoc)
		var doc *Document
		Sync(doc.Head(), Intent{Title: "T"}, metaconfig.Defaults(), testLoc)
	})
}

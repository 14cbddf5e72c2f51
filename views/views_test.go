package views

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"

	"github.com/eringen/metaengine/metaconfig"
)

func render(t *testing.T, c templ.Component) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func TestMetaSettingsShowsValuesAndErrors(t *testing.T) {
	cfg := metaconfig.Defaults()
	cfg.SiteName = `Carts "R" <Us>`
	doc := render(t, MetaSettings(MetaForm{
		Config:    cfg,
		Errors:    map[string]string{"facebookPageUrl": "Must be a valid URL"},
		Message:   "Settings saved.",
		CSRFToken: "tok",
	}))

	if got, _ := doc.Find(`input[name="siteName"]`).Attr("value"); got != cfg.SiteName {
		t.Errorf("siteName value = %q, want %q", got, cfg.SiteName)
	}
	if n := doc.Find(`input[type="text"]`).Length(); n != 10 {
		t.Errorf("got %d text inputs, want 10", n)
	}
	errs := doc.Find("p.field-error")
	if errs.Length() != 1 {
		t.Fatalf("got %d field errors, want 1", errs.Length())
	}
	if f, _ := errs.Attr("data-field"); f != "facebookPageUrl" {
		t.Errorf("error field = %q", f)
	}
	if errs.Text() != "Must be a valid URL" {
		t.Errorf("error text = %q", errs.Text())
	}
	if doc.Find("p.notice").Text() != "Settings saved." {
		t.Errorf("notice = %q", doc.Find("p.notice").Text())
	}
	doc.Find(`input[name="_csrf"]`).Each(func(_ int, s *goquery.Selection) {
		if v, _ := s.Attr("value"); v != "tok" {
			t.Errorf("csrf value = %q", v)
		}
	})
}

func TestLayoutEscapesSiteName(t *testing.T) {
	site := Site{Meta: metaconfig.Defaults(), URL: "https://example.com"}
	site.Meta.SiteName = "<script>x</script>"
	doc := render(t, Layout(site, templ.Raw("<p id=body>hi</p>")))

	if doc.Find("head title").Text() != "<script>x</script>" {
		t.Errorf("title = %q", doc.Find("head title").Text())
	}
	if doc.Find("header script").Length() != 0 {
		t.Error("site name was not escaped")
	}
	if doc.Find("main #body").Text() != "hi" {
		t.Error("body not rendered inside main")
	}
	if href, _ := doc.Find(`link[rel="icon"]`).Attr("href"); href != "/favicon.ico" {
		t.Errorf("favicon href = %q", href)
	}
}

func TestOrganizationJsonLD(t *testing.T) {
	site := Site{Meta: metaconfig.Defaults(), URL: "https://example.com"}
	site.Meta.FacebookPageURL = "https://facebook.com/cbn"

	var got map[string]any
	if err := json.Unmarshal([]byte(OrganizationJsonLD(site)), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["logo"] != "https://example.com/cbn-logo.png" {
		t.Errorf("logo = %v", got["logo"])
	}
	if got["url"] != "https://example.com" {
		t.Errorf("url = %v", got["url"])
	}
	sameAs, _ := got["sameAs"].([]any)
	if len(sameAs) != 1 || sameAs[0] != "https://facebook.com/cbn" {
		t.Errorf("sameAs = %v", got["sameAs"])
	}
}

func TestMetaPreviewEscapesMarkup(t *testing.T) {
	doc := render(t, MetaPreview(`<meta name="description" content="x"/>`))
	if got := doc.Find("pre code").Text(); got != `<meta name="description" content="x"/>` {
		t.Errorf("code text = %q", got)
	}
	if doc.Find("pre code meta").Length() != 0 {
		t.Error("markup rendered as elements")
	}
}

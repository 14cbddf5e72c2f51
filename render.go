package metaengine

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/metaengine/headsync"
	"github.com/eringen/metaengine/views"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// RenderPage renders body inside the layout with status 200 and synchronises
// the head with intent and the current meta config.
func (a *App) RenderPage(c echo.Context, intent headsync.Intent, body templ.Component) error {
	return a.RenderPageStatus(c, http.StatusOK, intent, body)
}

// RenderPageStatus is RenderPage with an explicit status code. The config is
// read from the store on every call. If the rendered page cannot be parsed it
// is written unsynchronised.
func (a *App) RenderPageStatus(c echo.Context, code int, intent headsync.Intent, body templ.Component) error {
	site := a.site()
	var buf bytes.Buffer
	if err := a.Views.Layout(site, body).Render(c.Request().Context(), &buf); err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	doc, err := headsync.ParseDocument(bytes.NewReader(buf.Bytes()))
	if err != nil {
		a.Logger.Warn("head sync skipped", zap.String("path", c.Request().URL.Path), zap.Error(err))
		c.Response().WriteHeader(code)
		_, err = c.Response().Write(buf.Bytes())
		return err
	}
	headsync.Sync(doc.Head(), intent, site.Meta, a.Location(c))
	c.Response().WriteHeader(code)
	return doc.Render(c.Response())
}

func (a *App) site() views.Site {
	return views.Site{Meta: a.Meta.Config(), URL: Origin(a.Config.URL)}
}

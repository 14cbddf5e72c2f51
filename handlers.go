package metaengine

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) handleFavicon(c echo.Context) error {
	name := a.Meta.Config().FaviconPath
	if name == "" || strings.HasPrefix(name, "http") {
		name = "/favicon.ico"
	}
	return c.File(filepath.Join(a.Config.StaticDir, filepath.Base(name)))
}

func (a *App) handleRobots(c echo.Context) error {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /admin/\n")
	b.WriteString("Disallow: /api/\n")
	b.WriteString("\nSitemap: " + Origin(a.Config.URL) + "/sitemap.xml\n")
	return c.String(http.StatusOK, b.String())
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c, a.pages)
}

func (a *App) renderNotFound(c echo.Context) error {
	return a.RenderPageStatus(c, http.StatusNotFound, notFoundIntent(), a.Views.NotFound())
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		if rerr := a.renderNotFound(c); rerr != nil {
			a.Logger.Error("render not found page", zap.Error(rerr))
		}
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Logger.Error("server error", zap.Error(err), zap.String("path", c.Request().URL.Path))
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

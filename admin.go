package metaengine

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/metaengine/headsync"
	"github.com/eringen/metaengine/metaconfig"
	"github.com/eringen/metaengine/views"
)

var settingsMessages = map[string]string{
	"saved": "Settings Saved. Your meta tag configuration has been updated successfully.",
	"reset": "Settings Reset. Configuration has been reset to default values.",
	"image": "Share image uploaded and set as the default image.",
}

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return a.RenderPage(c, adminLoginIntent(), a.Views.AdminLogin(false, CsrfToken(c)))
	}
	return c.Redirect(http.StatusSeeOther, "/admin/meta/")
}

func (a *App) handleAdminLogin(c echo.Context) error {
	ip := c.RealIP()
	if !a.loginLimiter.Check(ip) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/meta/")
	}
	a.loginLimiter.Record(ip)
	return a.RenderPageStatus(c, http.StatusUnauthorized, adminLoginIntent(), a.Views.AdminLogin(true, CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) handleMetaSettings(c echo.Context) error {
	return a.renderMetaSettings(c, http.StatusOK, views.MetaForm{
		Config:  a.Meta.Config(),
		Message: settingsMessages[c.QueryParam("msg")],
	})
}

// handleMetaSave replaces the whole config with the submitted form after
// sanitising and validating it.
func (a *App) handleMetaSave(c echo.Context) error {
	submitted := metaconfig.Sanitize(metaFormValues(c))
	if err := metaconfig.Validate(submitted); err != nil {
		var fe metaconfig.FieldErrors
		if !errors.As(err, &fe) {
			return err
		}
		return a.renderMetaSettings(c, http.StatusUnprocessableEntity, views.MetaForm{
			Config: submitted,
			Errors: fe,
		})
	}
	if _, err := a.Meta.Update(metaconfig.Full(submitted)); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/meta/?msg=saved")
}

func (a *App) handleMetaReset(c echo.Context) error {
	if _, err := a.Meta.Reset(); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/meta/?msg=reset")
}

// handleMetaPreview shows the tags an example product page would get under
// the current config.
func (a *App) handleMetaPreview(c echo.Context) error {
	cfg := a.Meta.Config()
	set := PreviewTags(PreviewIntent(cfg), cfg, headsync.Location{Origin: previewOrigin, Href: previewURL})
	markup := headsync.Markup(set)
	if c.QueryParam("format") == "text" {
		return c.String(http.StatusOK, markup)
	}
	return a.RenderPage(c, metaSettingsIntent(), a.Views.MetaPreview(markup))
}

func (a *App) handleMetaConfigJSON(c echo.Context) error {
	if !IsAdmin(c) {
		return echo.NewHTTPError(http.StatusUnauthorized, "login required")
	}
	return c.JSON(http.StatusOK, a.Meta.Config())
}

func (a *App) renderMetaSettings(c echo.Context, code int, form views.MetaForm) error {
	form.CSRFToken = CsrfToken(c)
	return a.RenderPageStatus(c, code, metaSettingsIntent(), a.Views.MetaSettings(form))
}

func metaFormValues(c echo.Context) metaconfig.Config {
	return metaconfig.Config{
		SiteName:              c.FormValue("siteName"),
		DefaultImage:          c.FormValue("defaultImage"),
		FaviconPath:           c.FormValue("faviconPath"),
		FacebookPageURL:       c.FormValue("facebookPageUrl"),
		TwitterHandle:         c.FormValue("twitterHandle"),
		SocialProfileURL:      c.FormValue("socialProfileUrl"),
		GoogleVerification:    c.FormValue("googleVerification"),
		BingVerification:      c.FormValue("bingVerification"),
		PinterestVerification: c.FormValue("pinterestVerification"),
		YandexVerification:    c.FormValue("yandexVerification"),
	}
}

package metaengine

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	adminSessionName = "metaengine_admin"
	adminSessionTTL  = 12 * time.Hour
	csrfCookieName   = "_csrf"
	csrfFormField    = "_csrf"
)

// contentSecurityPolicy allows remote share images and nothing else off-site.
var contentSecurityPolicy = strings.Join([]string{
	"default-src 'self'",
	"script-src 'self'",
	"style-src 'self' 'unsafe-inline'",
	"img-src 'self' https: data:",
	"form-action 'self'",
	"frame-ancestors 'none'",
}, "; ")

func (a *App) setupMiddleware() {
	e := a.Echo

	e.IPExtractor = echo.ExtractIPFromXFFHeader(
		echo.TrustLoopback(true),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(true),
	)
	e.HTTPErrorHandler = a.httpErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogValuesFunc: a.logRequest,
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("12M"))

	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, "/public/")
		},
	}))

	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: contentSecurityPolicy,
		HSTSMaxAge:            31536000,
	}))

	e.Use(session.Middleware(a.newSessionStore()))
	e.Use(middleware.CSRFWithConfig(middleware.CSRFConfig{
		TokenLookup:    "header:X-CSRF-Token,form:" + csrfFormField,
		CookieName:     csrfCookieName,
		CookiePath:     "/",
		CookieSameSite: http.SameSiteLaxMode,
		CookieSecure:   a.Config.CookieSecure,
		CookieHTTPOnly: true,
		ErrorHandler: func(err error, c echo.Context) error {
			a.Logger.Warn("csrf rejected", zap.String("path", c.Request().URL.Path), zap.Error(err))
			return c.String(http.StatusForbidden, "Forbidden")
		},
	}))

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set("Cache-Control", cachePolicy(c.Request().URL.Path))
			return next(c)
		}
	})
}

// logRequest writes one line per request. Server errors log at error level,
// client errors at warn.
func (a *App) logRequest(c echo.Context, v middleware.RequestLoggerValues) error {
	level := zapcore.InfoLevel
	switch {
	case v.Status >= 500:
		level = zapcore.ErrorLevel
	case v.Status >= 400:
		level = zapcore.WarnLevel
	}
	if ce := a.Logger.Check(level, "request"); ce != nil {
		ce.Write(
			zap.String("id", v.RequestID),
			zap.String("method", v.Method),
			zap.String("uri", v.URI),
			zap.Int("status", v.Status),
			zap.String("ip", v.RemoteIP),
			zap.Duration("latency", v.Latency),
		)
	}
	return nil
}

// cachePolicy returns the Cache-Control value for a request path. Rendered
// pages carry head tags from the live meta config and expire quickly.
func cachePolicy(path string) string {
	switch {
	case strings.HasPrefix(path, "/public/uploads/"):
		return "public, max-age=86400"
	case strings.HasPrefix(path, "/public/"):
		return "public, max-age=31536000, immutable"
	case path == "/sitemap.xml", path == "/robots.txt":
		return "public, max-age=3600"
	case strings.HasPrefix(path, "/admin"), strings.HasPrefix(path, "/api/"):
		return "no-store"
	default:
		return "public, max-age=60"
	}
}

func (a *App) newSessionStore() *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(a.Config.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(adminSessionTTL / time.Second),
		SameSite: http.SameSiteLaxMode,
		Secure:   a.Config.CookieSecure,
	}
	return store
}

// IsAdmin reports whether the request carries a live admin session.
func IsAdmin(c echo.Context) bool {
	sess, err := session.Get(adminSessionName, c)
	if err != nil {
		return false
	}
	since, ok := sess.Values["since"].(int64)
	return ok && time.Since(time.Unix(since, 0)) < adminSessionTTL
}

func setAdminSession(c echo.Context) error {
	sess, err := session.Get(adminSessionName, c)
	if err != nil {
		return err
	}
	sess.Values["since"] = time.Now().Unix()
	return sess.Save(c.Request(), c.Response())
}

func clearAdminSession(c echo.Context) error {
	sess, err := session.Get(adminSessionName, c)
	if err != nil {
		return err
	}
	delete(sess.Values, "since")
	sess.Options.MaxAge = -1
	return sess.Save(c.Request(), c.Response())
}

// requireAdmin sends anonymous visitors to the login page.
func requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !IsAdmin(c) {
			return c.Redirect(http.StatusSeeOther, "/admin/")
		}
		return next(c)
	}
}

// CsrfToken returns the token the CSRF middleware issued for this request.
func CsrfToken(c echo.Context) string {
	token, _ := c.Get(middleware.DefaultCSRFConfig.ContextKey).(string)
	return token
}

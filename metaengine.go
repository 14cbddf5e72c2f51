// Package metaengine serves a storefront whose document heads are kept in
// sync with a persisted site-wide SEO config. Every page declares its SEO
// intent once; after rendering, the page head is reconciled against that
// intent and the current config.
package metaengine

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/metaengine/headsync"
	"github.com/eringen/metaengine/metaconfig"
	"github.com/eringen/metaengine/views"
)

// ViewFuncs holds the templ components the App renders. Defaults come from
// the views package; replace any of them with WithViews.
type ViewFuncs struct {
	Layout       func(site views.Site, body templ.Component) templ.Component
	Home         func(site views.Site) templ.Component
	NotFound     func() templ.Component
	ServerError  func() templ.Component
	AdminLogin   func(showError bool, csrfToken string) templ.Component
	MetaSettings func(form views.MetaForm) templ.Component
	MetaPreview  func(markup string) templ.Component
}

// DefaultViews returns the built-in components.
func DefaultViews() ViewFuncs {
	return ViewFuncs{
		Layout:       views.Layout,
		Home:         views.Home,
		NotFound:     views.NotFound,
		ServerError:  views.ServerError,
		AdminLogin:   views.AdminLogin,
		MetaSettings: views.MetaSettings,
		MetaPreview:  views.MetaPreview,
	}
}

// App wires together the meta config store, handlers, middleware and views.
type App struct {
	Config Config
	Echo   *echo.Echo
	Meta   *metaconfig.Store
	Views  ViewFuncs
	Logger *zap.Logger

	pages         []Page
	loginLimiter  *RateLimiter
	uploadLimiter *RateLimiter
	customRoutes  []func(*App)
	closeMeta     func() error
	initialized   bool
}

// New creates an App with the given configuration.
func New(cfg Config, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Views:  DefaultViews(),
		Logger: zap.NewNop(),
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Init opens the meta store (unless one was supplied), and sets up
// middleware and routes. Start calls it; tests can call it directly and
// drive a.Echo with httptest.
func (a *App) Init() error {
	if a.initialized {
		return nil
	}
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("metaengine: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("metaengine: SessionSecret is required")
	}

	if a.Meta == nil {
		store, closeFn, err := OpenMetaStore(a.Config, a.Logger)
		if err != nil {
			return fmt.Errorf("metaengine: init meta store: %w", err)
		}
		a.Meta = store
		a.closeMeta = closeFn
	}

	a.loginLimiter = NewRateLimiter(a.Config.LoginAttempts, a.Config.LoginWindow)
	a.uploadLimiter = NewRateLimiter(20, a.Config.LoginWindow)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.initialized = true
	return nil
}

// Start initializes the App and serves until ctx is cancelled.
func (a *App) Start(ctx context.Context) error {
	if err := a.Init(); err != nil {
		return err
	}
	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("listening", zap.String("addr", a.Config.Addr), zap.String("url", a.Config.URL))
		errCh <- a.Echo.Start(a.Config.Addr)
	}()
	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return a.Echo.Shutdown(shutdownCtx)
	}
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.Config.StaticDir)
	e.GET("/favicon.ico", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)

	a.HandlePage(a.homePage())

	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)

	meta := e.Group("/admin/meta", requireAdmin)
	meta.GET("/", a.handleMetaSettings)
	meta.POST("/", a.handleMetaSave)
	meta.POST("/reset/", a.handleMetaReset)
	meta.GET("/preview/", a.handleMetaPreview)
	meta.POST("/image/", a.handleShareImageUpload)

	e.GET("/api/meta/config", a.handleMetaConfigJSON)
}

// Close releases the meta store backend and stops background work.
func (a *App) Close() error {
	if a.loginLimiter != nil {
		a.loginLimiter.Stop()
	}
	if a.uploadLimiter != nil {
		a.uploadLimiter.Stop()
	}
	if a.closeMeta != nil {
		return a.closeMeta()
	}
	return nil
}

// Location returns where the current request is served, based on Config.URL.
func (a *App) Location(c echo.Context) headsync.Location {
	origin := Origin(a.Config.URL)
	return headsync.Location{
		Origin: origin,
		Href:   origin + c.Request().URL.RequestURI(),
	}
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

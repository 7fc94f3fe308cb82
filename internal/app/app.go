// Package app wires the application together and owns its lifecycle.
package app

import (
	"context"

	"github.com/healthnews/curator/internal/config"
	"github.com/healthnews/curator/internal/enrich"
	"github.com/healthnews/curator/internal/feed"
	"github.com/healthnews/curator/internal/httpapi"
	"github.com/healthnews/curator/internal/logging"
	"github.com/healthnews/curator/internal/pipeline"
	"github.com/healthnews/curator/internal/ratelimit"
	"github.com/healthnews/curator/internal/state"
	"github.com/healthnews/curator/internal/store"
)

// App holds all application dependencies
type App struct {
	Config       *config.Config
	Logger       *logging.Logger
	State        *state.Store
	ArticleStore *store.Store
	FeedAdapter  *feed.Adapter
	Enricher     *enrich.Client
	Processor    *pipeline.Processor
	HTTPServer   *httpapi.Server
}

// New creates and initializes a new App instance
func New(ctx context.Context, cfg *config.Config) *App {
	app := &App{Config: cfg}

	app.Logger = initLogger(cfg.Logging.Level)

	limiter := ratelimit.New(cfg.Feed.RateLimitDur)
	app.FeedAdapter = feed.New(feed.Config{
		Relays:       cfg.Feed.Relays,
		MaxItems:     cfg.Feed.MaxItems,
		FetchTimeout: cfg.Feed.FetchTimeout,
	}, limiter, app.Logger)

	app.Enricher = enrich.New(cfg.Enrichment, app.Logger)
	app.ArticleStore = store.New()
	app.State = state.NewStore()
	app.Processor = pipeline.New(app.State, app.Enricher, cfg.Pipeline, app.Logger)
	app.HTTPServer = httpapi.New(ctx, app.State, app.ArticleStore, app.FeedAdapter, app.Enricher, app.Processor, app.Logger)

	return app
}

// Run starts the HTTP server and blocks until it stops.
func (a *App) Run() error {
	a.Logger.Info("Starting HTTP server", logging.WithField("addr", a.Config.Server.HTTPAddr))
	return a.HTTPServer.Start(a.Config.Server.HTTPAddr)
}

// Shutdown gracefully shuts down the application
func (a *App) Shutdown(ctx context.Context) error {
	if a.HTTPServer != nil {
		if err := a.HTTPServer.Shutdown(ctx); err != nil {
			a.Logger.Error("HTTP server shutdown error", logging.WithField("error", err.Error()))
			return err
		}
	}
	return nil
}

func initLogger(level string) *logging.Logger {
	parsed := logging.LevelInfo
	switch level {
	case "debug":
		parsed = logging.LevelDebug
	case "warn":
		parsed = logging.LevelWarn
	case "error":
		parsed = logging.LevelError
	}
	return logging.New(parsed)
}

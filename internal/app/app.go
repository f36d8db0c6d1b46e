package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/news-cms/config"
	"github.com/daniilsolovey/news-cms/internal/cache"
	"github.com/daniilsolovey/news-cms/internal/db"
	"github.com/daniilsolovey/news-cms/internal/feed"
	"github.com/daniilsolovey/news-cms/internal/metrics"
	"github.com/daniilsolovey/news-cms/internal/newsportal"
	"github.com/daniilsolovey/news-cms/internal/rest"
	"github.com/daniilsolovey/news-cms/internal/rpc"
	"github.com/daniilsolovey/news-cms/internal/search"
	"github.com/daniilsolovey/news-cms/internal/sitemap"
)

const (
	rpcPath = "/v1/rpc/"

	slowQuery = 200 * time.Millisecond
)

type App struct {
	DB      *db.Repository
	Logger  *slog.Logger
	Echo    *echo.Echo
	Config  config.Config
	Manager *newsportal.Manager
	Indexer *search.Indexer

	redis *cache.Redis
}

func New(cfg config.Config, dbConnect *pg.DB, logger *slog.Logger) (*App, error) {
	cfg = cfg.WithDefaults()

	if cfg.App.LogQueries {
		dbConnect.AddQueryHook(db.NewQueryHook(logger, slowQuery))
	}
	database := db.New(dbConnect)

	a := &App{
		DB:     database,
		Logger: logger,
		Config: cfg,
	}

	collector := metrics.New()
	settings := newsportal.Settings{
		Languages:       cfg.App.Languages,
		DefaultLanguage: cfg.App.DefaultLanguage,
		AdminURL:        cfg.Admin.URL,
		URLs:            newsportal.NewURLBuilder(cfg.App.Prefix),
		Logger:          logger,
		Metrics:         collector,
	}
	if cfg.Redis.Addr != "" {
		a.redis = cache.NewRedis(cfg.Redis.Addr, cfg.Redis.TTL)
		settings.Cache = a.redis
	}
	a.Manager = newsportal.NewNewsManager(database, settings)

	var backend search.Backend = search.Nop{}
	if cfg.Search.Enabled {
		m := search.NewMeilisearch(cfg.Search.Host, cfg.Search.APIKey, cfg.Search.Index)
		if err := m.EnsureIndex(context.Background()); err != nil {
			return nil, fmt.Errorf("ensure search index: %w", err)
		}
		backend = m
	}
	a.Indexer = search.NewIndexer(a.Manager, backend, logger)

	handler, err := rest.NewNewsHandler(rest.Deps{
		Manager:  a.Manager,
		Feeds:    feed.New(a.Manager, cfg.App.SiteName, cfg.App.SiteURL, cfg.App.FeedSize),
		Sitemap:  sitemap.New(a.Manager, cfg.App.SiteURL),
		Indexer:  a.Indexer,
		Metrics:  collector,
		Auth:     newAuthenticator(cfg.Admin.Users),
		DB:       database,
		PageSize: cfg.App.PageSize,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create news handler: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	if cfg.Sentry.DSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	}
	handler.RegisterRoutes(e)

	rpcServer := rpc.New(logger, a.Manager, a.Indexer, collector)
	e.Any(rpcPath, echo.WrapHandler(rpcServer))

	a.Echo = e
	return a, nil
}

func newAuthenticator(users []config.AdminUser) *newsportal.Authenticator {
	tokens := make(map[string]newsportal.Staff, len(users))
	for _, u := range users {
		if u.Token == "" {
			continue
		}
		tokens[u.Token] = newsportal.Staff{Name: u.Name, Permissions: u.Permissions}
	}
	return newsportal.NewAuthenticator(tokens)
}

// Reindex rebuilds the search documents of every language.
func (a *App) Reindex(ctx context.Context) error {
	n, err := a.Indexer.ReindexAll(ctx)
	if err != nil {
		return err
	}

	a.Logger.InfoContext(ctx, "search index rebuilt", "documents", n)
	return nil
}

func (a *App) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, a.Config.App.Port)
	a.Logger.InfoContext(ctx, "starting server", "addr", addr)

	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}

	if a.redis != nil {
		if cerr := a.redis.Close(); cerr != nil {
			a.Logger.Error("failed to close redis client", "error", cerr)
		}
	}

	return err
}

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/dotse/slug"
	"github.com/getsentry/sentry-go"
	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/news-cms/config"
	_ "github.com/daniilsolovey/news-cms/docs"
	"github.com/daniilsolovey/news-cms/docs/patches"
	"github.com/daniilsolovey/news-cms/internal/app"
	"github.com/daniilsolovey/news-cms/internal/db"
)

var (
	flConfig  = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug   = flag.Bool("debug", false, "enable debug mode")
	flMigrate = flag.Bool("migrate", false, "apply database migrations before start")
	flReindex = flag.Bool("reindex", false, "rebuild the search index and exit")
	cfg       config.Config
	lg        *slog.Logger

	exit = os.Exit
)

const sentryFlushTimeout = 2 * time.Second

// @title News CMS API
// @version 1.0
// @description Multilingual news with categories, tags, archives, feeds and an editor RPC API
// @host localhost:3000
// @BasePath /

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	_, err := toml.DecodeFile(*flConfig, &cfg)
	if err != nil {
		exitOnError(err)
	}
	cfg = cfg.WithDefaults()

	if cfg.Sentry.DSN != "" {
		err = sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
		})
		exitOnError(err)
		defer sentry.Flush(sentryFlushTimeout)
	}

	ctx := context.Background()

	if *flMigrate {
		connConfig, err := db.ConnConfig(&cfg.Database)
		exitOnError(err)
		exitOnError(db.Migrate(ctx, connConfig, patches.FS))
		lg.Info("migrations applied")
	}

	dbc := pg.Connect(&cfg.Database)
	if err := dbc.Ping(ctx); err != nil {
		dbc.Close()
		exitOnError(err)
	}
	defer dbc.Close()

	service, err := app.New(cfg, dbc, lg)
	exitOnError(err)

	if *flReindex {
		exitOnError(service.Reindex(ctx))
		return
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func newLogger(debug bool) *slog.Logger {
	if debug {
		return slog.New(slug.NewHandler(slug.HandlerOptions{
			HandlerOptions: slog.HandlerOptions{Level: slog.LevelDebug},
		}, os.Stdout))
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// exitOnError reports err to Sentry before exiting, os.Exit skips deferred flushes.
func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		sentry.CaptureException(err)
		sentry.Flush(sentryFlushTimeout)
		exit(1)
	}
}

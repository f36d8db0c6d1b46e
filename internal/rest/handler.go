package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/news-cms/internal/feed"
	"github.com/daniilsolovey/news-cms/internal/metrics"
	"github.com/daniilsolovey/news-cms/internal/newsportal"
	"github.com/daniilsolovey/news-cms/internal/search"
	"github.com/daniilsolovey/news-cms/internal/sitemap"
)

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the services the HTTP surface is built on.
type Deps struct {
	Manager  *newsportal.Manager
	Feeds    *feed.Service
	Sitemap  *sitemap.Builder
	Indexer  *search.Indexer
	Metrics  *metrics.Collector
	Auth     *newsportal.Authenticator
	DB       Pinger
	PageSize int
}

type NewsHandler struct {
	manager  *newsportal.Manager
	feeds    *feed.Service
	sitemap  *sitemap.Builder
	indexer  *search.Indexer
	metrics  *metrics.Collector
	auth     *newsportal.Authenticator
	db       Pinger
	pageSize int
	renderer *Renderer
	log      *slog.Logger
}

func NewNewsHandler(deps Deps, log *slog.Logger) (*NewsHandler, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	if deps.PageSize < 1 {
		deps.PageSize = 10
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.New()
	}
	if deps.Auth == nil {
		deps.Auth = newsportal.NewAuthenticator(nil)
	}

	return &NewsHandler{
		manager:  deps.Manager,
		feeds:    deps.Feeds,
		sitemap:  deps.Sitemap,
		indexer:  deps.Indexer,
		metrics:  deps.Metrics,
		auth:     deps.Auth,
		db:       deps.DB,
		pageSize: deps.PageSize,
		renderer: renderer,
		log:      log,
	}, nil
}

func (h *NewsHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	if statusCode >= http.StatusInternalServerError {
		h.capture(c, err)
	}
	return c.JSON(statusCode, map[string]string{"error": message})
}

// handleManagerError maps manager errors to JSON responses.
func (h *NewsHandler) handleManagerError(c echo.Context, err error) error {
	var verr newsportal.ValidationErrors
	switch {
	case errors.Is(err, newsportal.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, newsportal.ErrPermissionDenied):
		return c.JSON(http.StatusForbidden, map[string]string{"error": "permission denied"})
	case errors.As(err, &verr):
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "validation failed", "fields": verr})
	}

	return h.handleError(c, err, http.StatusInternalServerError, "internal error")
}

// renderError renders the HTML error page; a nil err with 404 is an ordinary miss.
func (h *NewsHandler) renderError(c echo.Context, statusCode int, err error) error {
	if err != nil {
		h.log.Error("renderError", "error", err, "statusCode", statusCode, "path", c.Request().URL.Path)
		h.capture(c, err)
	}

	language := c.Param("lang")
	if !h.manager.IsLanguage(language) {
		language = h.manager.DefaultLanguage()
	}

	return c.Render(statusCode, "error.html", errorPage{
		layout:  layout{Language: language},
		Status:  statusCode,
		Message: http.StatusText(statusCode),
	})
}

// viewError renders manager errors of HTML views.
func (h *NewsHandler) viewError(c echo.Context, err error) error {
	if errors.Is(err, newsportal.ErrNotFound) {
		return h.renderError(c, http.StatusNotFound, nil)
	}
	return h.renderError(c, http.StatusInternalServerError, err)
}

func (h *NewsHandler) capture(c echo.Context, err error) {
	if err == nil {
		return
	}
	if hub := sentryecho.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
	}
}

// preview reports whether the request may see news outside of their publication window.
func preview(c echo.Context) bool {
	return newsportal.StaffFromContext(c.Request().Context()) != nil
}

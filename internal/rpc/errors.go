package rpc

import (
	"context"
	"errors"
	"log/slog"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/news-cms/internal/metrics"
	"github.com/daniilsolovey/news-cms/internal/newsportal"
	"github.com/daniilsolovey/news-cms/internal/search"
)

var (
	ErrNotFound         = zenrpc.NewStringError(404, "not found")
	ErrPermissionDenied = zenrpc.NewStringError(403, "permission denied")
)

// newError maps manager errors to JSON-RPC errors, everything else is returned as is.
func newError(err error) error {
	var verr newsportal.ValidationErrors
	switch {
	case err == nil:
		return nil
	case errors.Is(err, newsportal.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, newsportal.ErrPermissionDenied):
		return ErrPermissionDenied
	case errors.As(err, &verr):
		return &zenrpc.Error{Code: 400, Message: "validation failed", Data: verr}
	}

	return err
}

func requirePermission(ctx context.Context, permission string) error {
	return newError(newsportal.RequirePermission(ctx, permission))
}

// indexSync pushes news changes to the search index. Failures are logged, the edit itself has succeeded.
type indexSync struct {
	indexer *search.Indexer
	metrics *metrics.Collector
	logger  *slog.Logger
}

func newIndexSync(indexer *search.Indexer, collector *metrics.Collector, logger *slog.Logger) *indexSync {
	return &indexSync{indexer: indexer, metrics: collector, logger: logger}
}

func (s *indexSync) saved(ctx context.Context, newsID int) {
	err := s.indexer.IndexNews(ctx, newsID)
	s.done(ctx, "index", newsID, err)
}

func (s *indexSync) deleted(ctx context.Context, newsID int) {
	err := s.indexer.RemoveNews(ctx, newsID)
	s.done(ctx, "remove", newsID, err)
}

func (s *indexSync) done(ctx context.Context, operation string, newsID int, err error) {
	if s.metrics != nil {
		s.metrics.IndexOperation(operation, err)
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "search index sync failed", "operation", operation, "newsId", newsID, "error", err)
	}
}

// requireStaff allows any authenticated editor.
func requireStaff(ctx context.Context) error {
	if newsportal.StaffFromContext(ctx) == nil {
		return ErrPermissionDenied
	}
	return nil
}

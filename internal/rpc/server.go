package rpc

import (
	"log/slog"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/news-cms/internal/metrics"
	"github.com/daniilsolovey/news-cms/internal/newsportal"
	"github.com/daniilsolovey/news-cms/internal/search"
)

const (
	NSNews       = "news"
	NSCategories = "categories"
	NSTags       = "tags"
	NSImages     = "images"
	NSPlugins    = "plugins"
	NSSearch     = "search"
)

func New(logger *slog.Logger, manager *newsportal.Manager, indexer *search.Indexer, collector *metrics.Collector) *zenrpc.Server {
	sync := newIndexSync(indexer, collector, logger)

	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register(NSNews, NewNewsService(manager, sync))
	rpcServer.Register(NSCategories, NewCategoryService(manager))
	rpcServer.Register(NSTags, NewTagService(manager))
	rpcServer.Register(NSImages, NewImageService(manager))
	rpcServer.Register(NSPlugins, NewPluginService(manager))
	rpcServer.Register(NSSearch, NewSearchService(manager, indexer))
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "news-cms", nil))

	return rpcServer
}

package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/news-cms/internal/newsportal"
)

//go:generate zenrpc

// NewsService provides editor methods for news.
type NewsService struct {
	zenrpc.Service
	manager *newsportal.Manager
	sync    *indexSync
}

func NewNewsService(manager *newsportal.Manager, sync *indexSync) *NewsService {
	return &NewsService{manager: manager, sync: sync}
}

// List retrieves news including unpublished items, with optional filtering and pagination.
// Sorted by publicationStart DESC.
//
//zenrpc:filter news filter
//zenrpc:return list of news summaries
//zenrpc:403 permission denied
//zenrpc:500 internal server error
func (s NewsService) List(ctx context.Context, filter NewsFilter) (NewsSummaries, error) {
	if err := requireStaff(ctx); err != nil {
		return nil, err
	}

	list, err := s.manager.NewsByFilter(ctx, filter.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	return NewNewsSummaries(list), nil
}

// Count returns the count of news matching the filter, pagination is ignored.
//
//zenrpc:filter news filter
//zenrpc:return count of news items
//zenrpc:403 permission denied
//zenrpc:500 internal server error
func (s NewsService) Count(ctx context.Context, filter NewsFilter) (int, error) {
	if err := requireStaff(ctx); err != nil {
		return 0, err
	}

	count, err := s.manager.NewsCount(ctx, filter.ToModel())
	return count, newError(err)
}

// Get retrieves a news item with every translation and the content blocks of every language.
//
//zenrpc:newsId news numeric ID
//zenrpc:return news with translations and content
//zenrpc:400 newsId must be positive
//zenrpc:403 permission denied
//zenrpc:404 news not found
//zenrpc:500 internal server error
func (s NewsService) Get(ctx context.Context, newsID int) (*News, error) {
	if err := requireStaff(ctx); err != nil {
		return nil, err
	}
	if newsID <= 0 {
		return nil, zenrpc.NewStringError(400, "newsId must be positive")
	}

	return s.byID(ctx, newsID)
}

func (s NewsService) byID(ctx context.Context, newsID int) (*News, error) {
	n, err := s.manager.NewsByID(ctx, newsID, "", true)
	if err != nil {
		return nil, newError(err)
	}

	blocks, err := s.manager.ContentBlocks(ctx, newsID, "")
	if err != nil {
		return nil, newError(err)
	}

	news := NewNews(*n, blocks)
	return &news, nil
}

// Add creates a news item with its translations and content blocks.
//
//zenrpc:news news to create, newsId must be empty
//zenrpc:return created news
//zenrpc:400 validation failed
//zenrpc:403 permission denied
//zenrpc:500 internal server error
func (s NewsService) Add(ctx context.Context, news NewsInput) (*News, error) {
	if err := requirePermission(ctx, newsportal.PermAddNews); err != nil {
		return nil, err
	}
	if news.NewsID != 0 {
		return nil, zenrpc.NewStringError(400, "newsId must be empty")
	}

	return s.save(ctx, news)
}

// Update replaces the translations, content blocks and settings of a news item.
//
//zenrpc:news news to update
//zenrpc:return updated news
//zenrpc:400 validation failed
//zenrpc:403 permission denied
//zenrpc:404 news not found
//zenrpc:500 internal server error
func (s NewsService) Update(ctx context.Context, news NewsInput) (*News, error) {
	if err := requirePermission(ctx, newsportal.PermChangeNews); err != nil {
		return nil, err
	}
	if news.NewsID <= 0 {
		return nil, zenrpc.NewStringError(400, "newsId must be positive")
	}

	return s.save(ctx, news)
}

func (s NewsService) save(ctx context.Context, in NewsInput) (*News, error) {
	saved, err := s.manager.SaveNews(ctx, in.ToModel())
	if err != nil {
		return nil, newError(err)
	}
	s.sync.saved(ctx, saved.ID)

	return s.byID(ctx, saved.ID)
}

// Delete removes a news item with its translations and content blocks.
//
//zenrpc:newsId news numeric ID
//zenrpc:return true when deleted
//zenrpc:403 permission denied
//zenrpc:404 news not found
//zenrpc:500 internal server error
func (s NewsService) Delete(ctx context.Context, newsID int) (bool, error) {
	if err := requirePermission(ctx, newsportal.PermDeleteNews); err != nil {
		return false, err
	}

	if err := s.manager.DeleteNews(ctx, newsID); err != nil {
		return false, newError(err)
	}
	s.sync.deleted(ctx, newsID)

	return true, nil
}

// Tagged lists every news item carrying the tag regardless of its publication state.
//
//zenrpc:tagId tag numeric ID
//zenrpc:return list of news summaries
//zenrpc:403 permission denied
//zenrpc:500 internal server error
func (s NewsService) Tagged(ctx context.Context, tagID int) (NewsSummaries, error) {
	if err := requireStaff(ctx); err != nil {
		return nil, err
	}

	list, err := s.manager.TaggedNews(ctx, tagID)
	if err != nil {
		return nil, newError(err)
	}

	return NewNewsSummaries(list), nil
}

package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/news-cms/internal/newsportal"
	"github.com/daniilsolovey/news-cms/internal/search"
)

// SearchService queries and rebuilds the full text index.
type SearchService struct {
	zenrpc.Service
	manager *newsportal.Manager
	indexer *search.Indexer
}

func NewSearchService(manager *newsportal.Manager, indexer *search.Indexer) *SearchService {
	return &SearchService{manager: manager, indexer: indexer}
}

// Query searches published news in lang.
//
//zenrpc:q query text
//zenrpc:lang language of the documents
//zenrpc:limit=20 maximum number of results
//zenrpc:return matching documents
//zenrpc:400 q is required
//zenrpc:403 permission denied
//zenrpc:500 internal server error
func (s SearchService) Query(ctx context.Context, q, lang string, limit *int) (SearchResults, error) {
	if err := requireStaff(ctx); err != nil {
		return nil, err
	}
	if q == "" {
		return nil, zenrpc.NewStringError(400, "q is required")
	}

	n := 20
	if limit != nil && *limit > 0 {
		n = *limit
	}

	docs, err := s.indexer.Search(ctx, q, lang, n)
	if err != nil {
		return nil, newError(err)
	}

	return NewSearchResults(docs), nil
}

// Reindex rebuilds the documents of lang, or of every language when lang is empty.
//
//zenrpc:lang language to rebuild
//zenrpc:return number of indexed documents
//zenrpc:400 unknown language
//zenrpc:403 permission denied
//zenrpc:500 internal server error
func (s SearchService) Reindex(ctx context.Context, lang string) (int, error) {
	if err := requirePermission(ctx, newsportal.PermChangeNews); err != nil {
		return 0, err
	}

	if lang == "" {
		n, err := s.indexer.ReindexAll(ctx)
		return n, newError(err)
	}

	if !s.manager.IsLanguage(lang) {
		return 0, zenrpc.NewStringError(400, "unknown language")
	}

	n, err := s.indexer.ReindexLanguage(ctx, lang)
	return n, newError(err)
}

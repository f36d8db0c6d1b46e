package search

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/daniilsolovey/news-cms/internal/db"
	"github.com/daniilsolovey/news-cms/internal/newsportal"
)

// Document is one news item in one language.
type Document struct {
	ID       string `json:"id"`
	NewsID   int    `json:"newsId"`
	Language string `json:"language"`
	Title    string `json:"title"`
	Text     string `json:"text"`
	URL      string `json:"url"`
	// Date is the publication start as unix seconds.
	Date int64 `json:"date"`
}

func DocumentID(newsID int, language string) string {
	return "news-" + strconv.Itoa(newsID) + "-" + language
}

type Backend interface {
	Upsert(ctx context.Context, docs []Document) error
	Delete(ctx context.Context, ids []string) error
	// DeleteLanguage drops every document of language.
	DeleteLanguage(ctx context.Context, language string) error
	Search(ctx context.Context, query, language string, limit int) ([]Document, error)
}

// Indexer keeps the backend in sync with published news.
type Indexer struct {
	manager *newsportal.Manager
	backend Backend
	logger  *slog.Logger
	strip   *bluemonday.Policy
}

func NewIndexer(manager *newsportal.Manager, backend Backend, logger *slog.Logger) *Indexer {
	return &Indexer{
		manager: manager,
		backend: backend,
		logger:  logger,
		strip:   bluemonday.StrictPolicy(),
	}
}

// StripTags removes markup, decodes entities and collapses whitespace.
func (i *Indexer) StripTags(s string) string {
	return strings.Join(strings.Fields(html.UnescapeString(i.strip.Sanitize(s))), " ")
}

// Document builds the search document of a translated news item.
func (i *Indexer) Document(ctx context.Context, news newsportal.News) (Document, error) {
	blocks, err := i.manager.ContentBlocks(ctx, news.ID, news.Language)
	if err != nil {
		return Document{}, err
	}

	parts := []string{i.StripTags(news.LeadIn)}
	for _, block := range blocks {
		text, err := i.renderBlock(ctx, block)
		if err != nil {
			return Document{}, err
		}
		if text = i.StripTags(text); text != "" {
			parts = append(parts, text)
		}
	}

	return Document{
		ID:       DocumentID(news.ID, news.Language),
		NewsID:   news.ID,
		Language: news.Language,
		Title:    news.Title,
		Text:     strings.Join(parts, " "),
		URL:      news.URL,
		Date:     news.PublicationStart.Unix(),
	}, nil
}

func (i *Indexer) renderBlock(ctx context.Context, block newsportal.ContentBlock) (string, error) {
	switch block.PluginType {
	case db.PluginTypeText:
		return block.Body, nil
	case db.PluginTypeLatestNews:
		if block.Plugin == nil {
			return "", nil
		}
		news, err := i.manager.LatestNews(ctx, *block.Plugin)
		if err != nil {
			return "", err
		}
		titles := make([]string, len(news))
		for j := range news {
			titles[j] = news[j].Title
		}
		return strings.Join(titles, " "), nil
	}
	return "", nil
}

// ReindexLanguage replaces the documents of language with one per published news item.
func (i *Indexer) ReindexLanguage(ctx context.Context, language string) (int, error) {
	news, err := i.manager.NewsByFilter(ctx, newsportal.NewsFilter{Language: language})
	if err != nil {
		return 0, fmt.Errorf("load news: %w", err)
	}

	docs := make([]Document, 0, len(news))
	for _, n := range news {
		doc, err := i.Document(ctx, n)
		if err != nil {
			return 0, fmt.Errorf("build document for news %d: %w", n.ID, err)
		}
		docs = append(docs, doc)
	}

	if err := i.backend.DeleteLanguage(ctx, language); err != nil {
		return 0, fmt.Errorf("delete stale documents: %w", err)
	}
	if err := i.backend.Upsert(ctx, docs); err != nil {
		return 0, fmt.Errorf("upsert documents: %w", err)
	}

	i.logger.InfoContext(ctx, "search index rebuilt", "language", language, "documents", len(docs))
	return len(docs), nil
}

func (i *Indexer) ReindexAll(ctx context.Context) (int, error) {
	total := 0
	for _, language := range i.manager.Languages() {
		n, err := i.ReindexLanguage(ctx, language)
		if err != nil {
			return total, fmt.Errorf("reindex %s: %w", language, err)
		}
		total += n
	}
	return total, nil
}

// IndexNews upserts the published translations of a news item and removes every other language.
func (i *Indexer) IndexNews(ctx context.Context, newsID int) error {
	var (
		docs    []Document
		removed []string
	)

	for _, language := range i.manager.Languages() {
		news, err := i.manager.NewsByID(ctx, newsID, language, false)
		if errors.Is(err, newsportal.ErrNotFound) {
			removed = append(removed, DocumentID(newsID, language))
			continue
		} else if err != nil {
			return fmt.Errorf("load news %d: %w", newsID, err)
		}

		doc, err := i.Document(ctx, *news)
		if err != nil {
			return fmt.Errorf("build document for news %d: %w", newsID, err)
		}
		docs = append(docs, doc)
	}

	if len(docs) > 0 {
		if err := i.backend.Upsert(ctx, docs); err != nil {
			return fmt.Errorf("upsert documents: %w", err)
		}
	}

	if len(removed) > 0 {
		if err := i.backend.Delete(ctx, removed); err != nil {
			return fmt.Errorf("delete documents: %w", err)
		}
	}

	return nil
}

// RemoveNews deletes the documents of every language.
func (i *Indexer) RemoveNews(ctx context.Context, newsID int) error {
	ids := make([]string, 0, len(i.manager.Languages()))
	for _, language := range i.manager.Languages() {
		ids = append(ids, DocumentID(newsID, language))
	}

	if err := i.backend.Delete(ctx, ids); err != nil {
		return fmt.Errorf("delete documents: %w", err)
	}

	return nil
}

func (i *Indexer) Search(ctx context.Context, query, language string, limit int) ([]Document, error) {
	if limit < 1 {
		limit = 20
	}
	return i.backend.Search(ctx, query, language, limit)
}

// Nop is used when search is disabled.
type Nop struct{}

func (Nop) Upsert(context.Context, []Document) error     { return nil }
func (Nop) Delete(context.Context, []string) error       { return nil }
func (Nop) DeleteLanguage(context.Context, string) error { return nil }
func (Nop) Search(context.Context, string, string, int) ([]Document, error) {
	return []Document{}, nil
}

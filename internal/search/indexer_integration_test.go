//go:build integration

package search

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"testing"

	"github.com/go-pg/pg/v10"

	"github.com/daniilsolovey/news-cms/internal/db"
	"github.com/daniilsolovey/news-cms/internal/newsportal"
)

var testDB *pg.DB

func TestMain(m *testing.M) {
	database, err := db.SetupTestDB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up test database: %v\n", err)
		os.Exit(1)
	}
	testDB = database

	code := m.Run()
	_ = testDB.Close()
	os.Exit(code)
}

type memoryBackend struct {
	docs map[string]Document
}

func (b *memoryBackend) Upsert(_ context.Context, docs []Document) error {
	for _, d := range docs {
		b.docs[d.ID] = d
	}
	return nil
}

func (b *memoryBackend) Delete(_ context.Context, ids []string) error {
	for _, id := range ids {
		delete(b.docs, id)
	}
	return nil
}

func (b *memoryBackend) DeleteLanguage(_ context.Context, language string) error {
	for id, d := range b.docs {
		if d.Language == language {
			delete(b.docs, id)
		}
	}
	return nil
}

func (b *memoryBackend) Search(_ context.Context, query, language string, limit int) ([]Document, error) {
	var r []Document
	for _, d := range b.docs {
		if d.Language == language && strings.Contains(strings.ToLower(d.Title+" "+d.Text), strings.ToLower(query)) {
			r = append(r, d)
		}
	}
	return r, nil
}

func (b *memoryBackend) ids() []string {
	r := make([]string, 0, len(b.docs))
	for id := range b.docs {
		r = append(r, id)
	}
	sort.Strings(r)
	return r
}

func withIndexer(t *testing.T) (context.Context, *Indexer, *memoryBackend) {
	t.Helper()

	tx, err := testDB.Begin()
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}
	t.Cleanup(func() { _ = tx.Rollback() })

	manager := newsportal.NewNewsManager(db.New(tx), newsportal.Settings{
		Languages:       []string{"en", "de"},
		DefaultLanguage: "en",
	})
	backend := &memoryBackend{docs: map[string]Document{}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return context.Background(), NewIndexer(manager, backend, logger), backend
}

func TestIndexer_ReindexAll_Integration(t *testing.T) {
	ctx, indexer, backend := withIndexer(t)

	total, err := indexer.ReindexAll(ctx)
	if err != nil {
		t.Fatalf("ReindexAll: %v", err)
	}
	if total != 9 {
		t.Fatalf("expected 7 english and 2 german documents, got %d", total)
	}

	doc := backend.docs["news-1-en"]
	if doc.Title != "AI Breakthrough in Machine Learning" {
		t.Fatalf("unexpected title %q", doc.Title)
	}
	if doc.Text != "AI Breakthrough in Machine Learning lead-in. Body of AI Breakthrough in Machine Learning" {
		t.Fatalf("unexpected text %q", doc.Text)
	}
	if doc.URL != "/en/news/2024/1/14/ai-breakthrough-in-machine-learning/" {
		t.Fatalf("unexpected url %q", doc.URL)
	}

	found, err := indexer.Search(ctx, "quanten", "de", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(found) != 1 || found[0].NewsID != 2 {
		t.Fatalf("unexpected search result %+v", found)
	}
}

func TestIndexer_IndexNews_Integration(t *testing.T) {
	ctx, indexer, backend := withIndexer(t)

	backend.docs["news-9-en"] = Document{ID: "news-9-en"}
	backend.docs["news-3-de"] = Document{ID: "news-3-de"}

	if err := indexer.IndexNews(ctx, 9); err != nil {
		t.Fatalf("IndexNews expired: %v", err)
	}
	if err := indexer.IndexNews(ctx, 3); err != nil {
		t.Fatalf("IndexNews: %v", err)
	}

	if got := fmt.Sprint(backend.ids()); got != "[news-3-en]" {
		t.Fatalf("expected only news-3-en, got %s", got)
	}

	if err := indexer.RemoveNews(ctx, 3); err != nil {
		t.Fatalf("RemoveNews: %v", err)
	}
	if len(backend.docs) != 0 {
		t.Fatalf("expected empty index, got %v", backend.ids())
	}
}

func TestIndexer_ReindexAll_DropsStale_Integration(t *testing.T) {
	ctx, indexer, backend := withIndexer(t)

	// news 9 has expired and news 42 no longer exists
	backend.docs["news-9-en"] = Document{ID: "news-9-en", NewsID: 9, Language: "en", Title: "Expired"}
	backend.docs["news-42-de"] = Document{ID: "news-42-de", NewsID: 42, Language: "de", Title: "Gone"}

	total, err := indexer.ReindexAll(ctx)
	if err != nil {
		t.Fatalf("ReindexAll: %v", err)
	}
	if total != 9 || len(backend.docs) != 9 {
		t.Fatalf("expected 9 documents, got %d indexed and %v stored", total, backend.ids())
	}
	for _, id := range []string{"news-9-en", "news-42-de"} {
		if _, ok := backend.docs[id]; ok {
			t.Fatalf("stale document %s survived reindex", id)
		}
	}
}

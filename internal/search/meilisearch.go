package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/meilisearch/meilisearch-go"
)

const (
	taskTimeout  = 15 * time.Second
	taskInterval = 50 * time.Millisecond
)

// Meilisearch stores documents in a single index filtered by language.
type Meilisearch struct {
	client meilisearch.ServiceManager
	index  meilisearch.IndexManager
}

func NewMeilisearch(host, apiKey, indexName string) *Meilisearch {
	client := meilisearch.New(host, meilisearch.WithAPIKey(apiKey))

	return &Meilisearch{
		client: client,
		index:  client.Index(indexName),
	}
}

// EnsureIndex makes language filterable. The index itself is created by the first write.
func (m *Meilisearch) EnsureIndex(ctx context.Context) error {
	task, err := m.index.UpdateFilterableAttributesWithContext(ctx, &[]interface{}{"language"})
	if err != nil {
		return fmt.Errorf("set filterable attributes: %w", err)
	}

	return m.wait(ctx, task, "settings")
}

func (m *Meilisearch) Upsert(ctx context.Context, docs []Document) error {
	if len(docs) == 0 {
		return nil
	}

	task, err := m.index.AddDocumentsWithContext(ctx, docs, nil)
	if err != nil {
		return fmt.Errorf("add documents: %w", err)
	}

	return m.wait(ctx, task, "indexing")
}

func (m *Meilisearch) Delete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	task, err := m.index.DeleteDocumentsWithContext(ctx, ids, nil)
	if err != nil {
		return fmt.Errorf("delete documents: %w", err)
	}

	return m.wait(ctx, task, "delete")
}

func (m *Meilisearch) DeleteLanguage(ctx context.Context, language string) error {
	task, err := m.index.DeleteDocumentsByFilterWithContext(ctx, languageFilter(language), nil)
	if err != nil {
		return fmt.Errorf("delete %s documents: %w", language, err)
	}

	return m.wait(ctx, task, "delete")
}

func (m *Meilisearch) Search(ctx context.Context, query, language string, limit int) ([]Document, error) {
	request := &meilisearch.SearchRequest{
		Query: query,
		Limit: int64(limit),
	}
	if language != "" {
		request.Filter = languageFilter(language)
	}

	result, err := m.index.SearchWithContext(ctx, query, request)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	return decodeHits(result.Hits)
}

func (m *Meilisearch) wait(ctx context.Context, info *meilisearch.TaskInfo, kind string) error {
	ctx, cancel := context.WithTimeout(ctx, taskTimeout)
	defer cancel()

	task, err := m.index.WaitForTaskWithContext(ctx, info.TaskUID, taskInterval)
	if err != nil {
		return fmt.Errorf("wait for %s task: %w", kind, err)
	}
	if task.Status == meilisearch.TaskStatusFailed {
		return fmt.Errorf("%s task %d failed: %s", kind, task.UID, task.Error.Message)
	}

	return nil
}

func languageFilter(language string) string {
	return "language = " + strconv.Quote(language)
}

// decodeHits round-trips hits through JSON so any hit representation maps onto Document.
func decodeHits(hits any) ([]Document, error) {
	data, err := json.Marshal(hits)
	if err != nil {
		return nil, fmt.Errorf("encode hits: %w", err)
	}

	docs := []Document{}
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("decode hits: %w", err)
	}

	return docs, nil
}

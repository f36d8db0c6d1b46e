package search

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentID(t *testing.T) {
	assert.Equal(t, "news-12-de", DocumentID(12, "de"))
}

func TestIndexer_StripTags(t *testing.T) {
	i := NewIndexer(nil, Nop{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Equal(t, "Hello world !", i.StripTags("<p>Hello <b>world</b></p>\n\n<p>!</p>"))
	assert.Equal(t, "", i.StripTags("<script>alert(1)</script>"))
	assert.Equal(t, "a & b", i.StripTags("a &amp; b"))
}

func TestDecodeHits(t *testing.T) {
	hits := []interface{}{
		map[string]interface{}{"id": "news-1-en", "newsId": float64(1), "language": "en", "title": "AI", "_formatted": map[string]interface{}{}},
	}

	docs, err := decodeHits(hits)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, Document{ID: "news-1-en", NewsID: 1, Language: "en", Title: "AI"}, docs[0])

	docs, err = decodeHits(nil)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestNop(t *testing.T) {
	ctx := context.Background()
	var backend Backend = Nop{}

	require.NoError(t, backend.Upsert(ctx, []Document{{ID: "x"}}))
	require.NoError(t, backend.Delete(ctx, []string{"x"}))

	docs, err := backend.Search(ctx, "x", "en", 10)
	require.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestMeilisearch_Search(t *testing.T) {
	var request map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/indexes/news/search", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		_ = json.NewDecoder(r.Body).Decode(&request)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"hits": [{"id": "news-2-de", "newsId": 2, "language": "de", "title": "Quantencomputer", "url": "/de/news/2024/1/13/quantencomputer/", "date": 1705147200}],
			"query": "quanten",
			"processingTimeMs": 1,
			"limit": 5,
			"offset": 0,
			"estimatedTotalHits": 1
		}`))
	}))
	defer server.Close()

	backend := NewMeilisearch(server.URL, "secret", "news")

	docs, err := backend.Search(context.Background(), "quanten", "de", 5)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, 2, docs[0].NewsID)
	assert.Equal(t, "/de/news/2024/1/13/quantencomputer/", docs[0].URL)

	assert.Equal(t, "quanten", request["q"])
	assert.Equal(t, `language = "de"`, request["filter"])
	assert.EqualValues(t, 5, request["limit"])
}

func TestMeilisearch_SearchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Index news not found.","code":"index_not_found","type":"invalid_request","link":""}`))
	}))
	defer server.Close()

	_, err := NewMeilisearch(server.URL, "", "news").Search(context.Background(), "x", "", 5)
	assert.Error(t, err)
}

func newTaskServer(t *testing.T, taskStatus string, requests *[]string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if strings.HasPrefix(r.URL.Path, "/tasks/") {
			_, _ = w.Write([]byte(`{"uid": 7, "status": "` + taskStatus + `", "error": {"message": "boom"}}`))
			return
		}

		body, _ := io.ReadAll(r.Body)
		*requests = append(*requests, r.Method+" "+r.URL.Path+" "+string(body))

		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"taskUid": 7, "indexUid": "news", "status": "enqueued", "type": "documentAdditionOrUpdate"}`))
	}))
	t.Cleanup(server.Close)

	return server
}

func TestMeilisearch_Writes(t *testing.T) {
	var requests []string
	server := newTaskServer(t, "succeeded", &requests)
	backend := NewMeilisearch(server.URL, "", "news")
	ctx := context.Background()

	require.NoError(t, backend.EnsureIndex(ctx))
	require.NoError(t, backend.Upsert(ctx, []Document{{ID: "news-1-en", NewsID: 1, Language: "en"}}))
	require.NoError(t, backend.Upsert(ctx, nil))
	require.NoError(t, backend.Delete(ctx, []string{"news-1-en", "news-1-de"}))
	require.NoError(t, backend.Delete(ctx, nil))
	require.NoError(t, backend.DeleteLanguage(ctx, "de"))

	require.Len(t, requests, 4)
	assert.Equal(t, `PUT /indexes/news/settings/filterable-attributes ["language"]`, requests[0])
	assert.True(t, strings.HasPrefix(requests[1], `POST /indexes/news/documents [{"id":"news-1-en","newsId":1,"language":"en"`), requests[1])
	assert.Equal(t, `POST /indexes/news/documents/delete-batch ["news-1-en","news-1-de"]`, requests[2])
	assert.Equal(t, `POST /indexes/news/documents/delete {"filter":"language = \"de\""}`, requests[3])
}

func TestMeilisearch_FailedTask(t *testing.T) {
	var requests []string
	server := newTaskServer(t, "failed", &requests)

	err := NewMeilisearch(server.URL, "", "news").Upsert(context.Background(), []Document{{ID: "news-1-en"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

package rpc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/news-cms/internal/metrics"
	"github.com/daniilsolovey/news-cms/internal/newsportal"
	"github.com/daniilsolovey/news-cms/internal/search"
)

func newTestServer() http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := newsportal.NewNewsManager(nil, newsportal.Settings{
		Languages:       []string{"en", "de"},
		DefaultLanguage: "en",
	})

	return New(logger, manager, search.NewIndexer(manager, search.Nop{}, logger), metrics.New())
}

func call(t *testing.T, h http.Handler, staff *newsportal.Staff, body string) string {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/v1/rpc/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if staff != nil {
		req = req.WithContext(newsportal.NewStaffContext(req.Context(), staff))
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	return rec.Body.String()
}

func TestServer_Permissions(t *testing.T) {
	h := newTestServer()
	viewer := &newsportal.Staff{Name: "viewer"}

	tests := []struct {
		name  string
		staff *newsportal.Staff
		body  string
	}{
		{"anonymous list", nil, `{"jsonrpc":"2.0","id":1,"method":"news.list","params":{"filter":{}}}`},
		{"anonymous add", nil, `{"jsonrpc":"2.0","id":1,"method":"news.add","params":{"news":{}}}`},
		{"add without permission", viewer, `{"jsonrpc":"2.0","id":1,"method":"news.add","params":{"news":{}}}`},
		{"delete without permission", viewer, `{"jsonrpc":"2.0","id":1,"method":"news.delete","params":{"newsId":1}}`},
		{"category save", viewer, `{"jsonrpc":"2.0","id":1,"method":"categories.save","params":{"category":{}}}`},
		{"tag delete", viewer, `{"jsonrpc":"2.0","id":1,"method":"tags.delete","params":[3]}`},
		{"plugin copy", viewer, `{"jsonrpc":"2.0","id":1,"method":"plugins.copy","params":{"pluginId":1,"lang":"de"}}`},
		{"reindex", viewer, `{"jsonrpc":"2.0","id":1,"method":"search.reindex","params":{"lang":""}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, call(t, h, tt.staff, tt.body), `"code":403`)
		})
	}
}

func TestServer_Errors(t *testing.T) {
	h := newTestServer()
	editor := &newsportal.Staff{Name: "editor", Permissions: []string{
		newsportal.PermAddNews, newsportal.PermChangeNews,
	}}

	t.Run("MethodNotFound", func(t *testing.T) {
		assert.Contains(t, call(t, h, editor, `{"jsonrpc":"2.0","id":1,"method":"news.publish","params":{}}`), `"code":-32601`)
	})

	t.Run("InvalidParams", func(t *testing.T) {
		assert.Contains(t, call(t, h, editor, `{"jsonrpc":"2.0","id":1,"method":"news.get","params":{"newsId":"x"}}`), `"code":-32602`)
	})

	t.Run("GetNonPositive", func(t *testing.T) {
		assert.Contains(t, call(t, h, editor, `{"jsonrpc":"2.0","id":1,"method":"news.get","params":{"newsId":0}}`), `"code":400`)
	})

	t.Run("AddWithID", func(t *testing.T) {
		assert.Contains(t, call(t, h, editor, `{"jsonrpc":"2.0","id":1,"method":"news.add","params":{"news":{"newsId":4}}}`), `"code":400`)
	})

	t.Run("UpdateWithoutID", func(t *testing.T) {
		assert.Contains(t, call(t, h, editor, `{"jsonrpc":"2.0","id":1,"method":"news.update","params":{"news":{}}}`), `"code":400`)
	})

	t.Run("ReindexUnknownLanguage", func(t *testing.T) {
		assert.Contains(t, call(t, h, editor, `{"jsonrpc":"2.0","id":1,"method":"search.reindex","params":{"lang":"fr"}}`), `"code":400`)
	})

	t.Run("SearchWithoutQuery", func(t *testing.T) {
		assert.Contains(t, call(t, h, editor, `{"jsonrpc":"2.0","id":1,"method":"search.query","params":{"q":"","lang":"en"}}`), `"code":400`)
	})

	t.Run("Search", func(t *testing.T) {
		body := call(t, h, editor, `{"jsonrpc":"2.0","id":1,"method":"search.query","params":{"q":"quantum","lang":"en"}}`)
		assert.Contains(t, body, `"result":[]`)
	})
}

func TestNewError(t *testing.T) {
	assert.Nil(t, newError(nil))
	assert.Equal(t, ErrNotFound, newError(fmt.Errorf("load: %w", newsportal.ErrNotFound)))
	assert.Equal(t, ErrPermissionDenied, newError(newsportal.ErrPermissionDenied))

	err := newError(newsportal.ValidationErrors{"translations.en.title": "this field is required"})
	var rpcErr *zenrpc.Error
	require.True(t, errors.As(err, &rpcErr))
	assert.Equal(t, 400, rpcErr.Code)
	assert.Equal(t, newsportal.ValidationErrors{"translations.en.title": "this field is required"}, rpcErr.Data)

	other := errors.New("boom")
	assert.Equal(t, other, newError(other))
}

func TestRequireStaff(t *testing.T) {
	assert.Equal(t, ErrPermissionDenied, requireStaff(context.Background()))

	ctx := newsportal.NewStaffContext(context.Background(), &newsportal.Staff{Name: "viewer"})
	assert.NoError(t, requireStaff(ctx))
}

func TestNewsFilter_ToModel(t *testing.T) {
	tagID := 2
	page, pageSize := 3, 500

	got := NewsFilter{Language: "de", TagID: &tagID, Year: 2024, Page: &page, PageSize: &pageSize}.ToModel()
	assert.Equal(t, newsportal.NewsFilter{
		Language: "de",
		TagID:    &tagID,
		Year:     2024,
		Preview:  true,
		Page:     3,
		PageSize: 100,
	}, got)

	got = NewsFilter{}.ToModel()
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 10, got.PageSize)
	assert.True(t, got.Preview)
}

func TestNewsInput_ToModel(t *testing.T) {
	start := time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC)
	pluginID := 7

	got := NewsInput{
		NewsID:           5,
		PublicationStart: &start,
		TagNames:         `go, "a, b"`,
		Translations:     []Translation{{Language: "en", Title: "Title", LeadIn: "<p>Lead</p>"}},
		Blocks: []ContentBlock{
			{Language: "en", PluginType: "text", Body: "<p>Body</p>"},
			{Language: "en", PluginType: "latest_news", PluginID: &pluginID},
		},
	}.ToModel()

	assert.Equal(t, 5, got.ID)
	assert.Equal(t, &start, got.PublicationStart)
	assert.Equal(t, `go, "a, b"`, got.TagNames)
	assert.Equal(t, []newsportal.TranslationInput{{LanguageCode: "en", Title: "Title", LeadIn: "<p>Lead</p>"}}, got.Translations)
	require.Len(t, got.Blocks, 2)
	assert.Equal(t, "latest_news", got.Blocks[1].PluginType)
	assert.Equal(t, &pluginID, got.Blocks[1].PluginID)
}

package sitemap

import (
	"bytes"
	"encoding/xml"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/news-cms/internal/db"
	"github.com/daniilsolovey/news-cms/internal/newsportal"
)

func TestNewsURLs(t *testing.T) {
	urls := newsportal.NewURLBuilder("news")
	news := []newsportal.News{{News: db.News{
		ID:               3,
		PublicationStart: time.Date(2024, 1, 12, 12, 0, 0, 0, time.UTC),
		Translations:     []db.NewsTranslation{{LanguageCode: "en", Slug: "world-cup-finals"}},
	}}}

	got := NewsURLs("https://example.com", urls, "en", news)

	require.Len(t, got, 1)
	assert.Equal(t, URL{
		Loc:        "https://example.com/en/news/2024/1/12/world-cup-finals/",
		LastMod:    "2024-01-12T12:00:00Z",
		ChangeFreq: "yearly",
		Priority:   0.5,
	}, got[0])
}

func TestCategoryURLs(t *testing.T) {
	got := CategoryURLs("https://example.com", []newsportal.Category{{URL: "/de/news/sport/"}})

	require.Len(t, got, 1)
	assert.Equal(t, URL{Loc: "https://example.com/de/news/sport/", ChangeFreq: "never", Priority: 0.5}, got[0])
}

func TestWrite(t *testing.T) {
	set := &URLSet{Xmlns: xmlns, URLs: []URL{
		{Loc: "https://example.com/en/news/sports/", ChangeFreq: "never", Priority: 0.5},
	}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, set))

	out := buf.String()
	assert.Contains(t, out, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, out, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, out, `<priority>0.5</priority>`)
	assert.NotContains(t, out, `<lastmod>`)

	var decoded URLSet
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.URLs, 1)
	assert.Equal(t, "https://example.com/en/news/sports/", decoded.URLs[0].Loc)
}

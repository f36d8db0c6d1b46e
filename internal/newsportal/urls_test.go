package newsportal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/daniilsolovey/news-cms/internal/db"
)

func TestURLBuilder(t *testing.T) {
	u := NewURLBuilder("/news/")
	date := time.Date(2024, 1, 5, 23, 0, 0, 0, time.UTC)

	assert.Equal(t, "news", u.Prefix())
	assert.Equal(t, "/en/news/", u.Archive("en"))
	assert.Equal(t, "/en/news/feed/", u.LatestFeed("en"))
	assert.Equal(t, "/en/news/tagged/hot/", u.Tagged("en", "hot"))
	assert.Equal(t, "/en/news/tagged/hot/feed/", u.TaggedFeed("en", "hot"))
	assert.Equal(t, "/de/news/2024/", u.Year("de", 2024))
	assert.Equal(t, "/de/news/2024/1/", u.Month("de", 2024, 1))
	assert.Equal(t, "/en/news/2024/1/5/hello/", u.Detail("en", date, "hello"))
	assert.Equal(t, "/en/news/sports/", u.Category("en", "sports"))
	assert.Equal(t, "/en/news/sports/feed/", u.CategoryFeed("en", "sports"))
	assert.Equal(t, "/en/news/sports/2024/1/5/hello/", u.CategoryDetail("en", "sports", date, "hello"))
	assert.Equal(t, "/en/news/plugins/latest/3/", u.LatestPlugin("en", 3))
}

func TestURLBuilder_EmptyPrefix(t *testing.T) {
	u := NewURLBuilder("")

	assert.Equal(t, "/en/", u.Archive("en"))
	assert.Equal(t, "/en/2024/", u.Year("en", 2024))
}

func TestURLBuilder_NewsURL(t *testing.T) {
	u := NewURLBuilder("news")
	external := "https://example.com/story"
	date := time.Date(2024, 3, 9, 8, 0, 0, 0, time.UTC)

	news := News{News: db.News{
		ID:               12,
		PublicationStart: date,
		Translations: []db.NewsTranslation{
			{LanguageCode: "en", Slug: "story"},
			{LanguageCode: "de", Slug: ""},
		},
	}}

	assert.Equal(t, "/en/news/2024/3/9/story/", u.NewsURL(news, "en"))
	assert.Equal(t, "/de/news/2024/3/9/12/", u.NewsURL(news, "de"), "missing slug falls back to the id")

	news.ExternalURL = &external
	assert.Equal(t, external, u.NewsURL(news, "en"))
	assert.Equal(t, "/en/news/2024/3/9/story/", u.NewsDetail(news, "en"))
}

func TestReservedCategorySlug(t *testing.T) {
	for _, slug := range []string{"feed", "Feed", "tagged", "plugins", "2024", "0001"} {
		assert.True(t, ReservedCategorySlug(slug), slug)
	}
	for _, slug := range []string{"sports", "feed-2", "2024-2", "202", "12345", "tagged-news"} {
		assert.False(t, ReservedCategorySlug(slug), slug)
	}
}

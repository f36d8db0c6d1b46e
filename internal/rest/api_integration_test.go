//go:build integration

package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/news-cms/internal/db"
	"github.com/daniilsolovey/news-cms/internal/feed"
	"github.com/daniilsolovey/news-cms/internal/newsportal"
	"github.com/daniilsolovey/news-cms/internal/search"
	"github.com/daniilsolovey/news-cms/internal/sitemap"
)

var testDB *pg.DB

func TestMain(m *testing.M) {
	database, err := db.SetupTestDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to set up test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	testDB = database

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

var staffHeader = http.Header{echo.HeaderAuthorization: {"Bearer secret"}}

func newServer(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := newsportal.NewNewsManager(db.New(testDB), newsportal.Settings{
		Languages:       []string{"en", "de"},
		DefaultLanguage: "en",
		AdminURL:        "/admin/",
		URLs:            newsportal.NewURLBuilder("news"),
	})

	h, err := NewNewsHandler(Deps{
		Manager: manager,
		Feeds:   feed.New(manager, "Example", "https://example.com", 10),
		Sitemap: sitemap.New(manager, "https://example.com"),
		Indexer: search.NewIndexer(manager, search.Nop{}, logger),
		Auth: newsportal.NewAuthenticator(map[string]newsportal.Staff{
			"secret": {Name: "editor", Permissions: []string{
				newsportal.PermAddNews, newsportal.PermChangeNews, newsportal.PermDeleteNews,
			}},
		}),
		DB: testDB,
	}, logger)
	require.NoError(t, err)

	e := echo.New()
	h.RegisterRoutes(e)

	return e
}

func newsIDs(t *testing.T, body []byte) []int {
	t.Helper()

	var list []NewsSummary
	require.NoError(t, json.Unmarshal(body, &list))

	ids := make([]int, len(list))
	for i, n := range list {
		ids[i] = n.NewsID
	}
	return ids
}

func TestPages(t *testing.T) {
	e := newServer(t)

	t.Run("Latest", func(t *testing.T) {
		rec := serve(e, "/en/news/", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.Contains(t, body, "AI Breakthrough in Machine Learning")
		assert.Contains(t, body, "Chip Shortage Report")
		assert.NotContains(t, body, "Future Announcement")
		assert.NotContains(t, body, "Expired Story")
	})

	t.Run("LatestPreview", func(t *testing.T) {
		rec := serve(e, "/en/news/", staffHeader)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Future Announcement")
	})

	t.Run("German", func(t *testing.T) {
		rec := serve(e, "/de/news/", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.Contains(t, body, "KI Durchbruch")
		assert.NotContains(t, body, "World Cup Finals")
	})

	t.Run("Archive", func(t *testing.T) {
		rec := serve(e, "/en/news/2024/", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Quantum Computers")
		assert.NotContains(t, rec.Body.String(), "Olympic Games")

		rec = serve(e, "/en/news/2023/12/", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Olympic Games")
		assert.Contains(t, rec.Body.String(), "International Summit")
		assert.NotContains(t, rec.Body.String(), "Election Results")
	})

	t.Run("PageOutOfRange", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, serve(e, "/en/news/?page=2", nil).Code)
	})

	t.Run("Tagged", func(t *testing.T) {
		rec := serve(e, "/en/news/tagged/hot/", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "World Cup Finals")
		assert.NotContains(t, rec.Body.String(), "Quantum Computers")

		rec = serve(e, "/en/news/tagged/missing/", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "World Cup Finals")
	})

	t.Run("Category", func(t *testing.T) {
		rec := serve(e, "/en/news/technology/", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Chip Shortage Report")
		assert.NotContains(t, rec.Body.String(), "World Cup Finals")

		assert.Equal(t, http.StatusNotFound, serve(e, "/en/news/missing/", nil).Code)
	})

	t.Run("Detail", func(t *testing.T) {
		rec := serve(e, "/en/news/2024/1/14/ai-breakthrough-in-machine-learning/", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.Contains(t, body, "Body of <b>AI Breakthrough in Machine Learning</b>")
		assert.Contains(t, body, `hreflang="de"`)
	})

	t.Run("DetailByID", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, serve(e, "/en/news/2024/1/14/1/", nil).Code)
	})

	t.Run("DetailMisses", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, serve(e, "/en/news/2024/1/15/ai-breakthrough-in-machine-learning/", nil).Code)
		assert.Equal(t, http.StatusNotFound, serve(e, "/de/news/2024/1/12/world-cup-finals/", nil).Code)
	})

	t.Run("CategoryDetail", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, serve(e, "/en/news/technology/2024/1/14/ai-breakthrough-in-machine-learning/", nil).Code)
		assert.Equal(t, http.StatusNotFound, serve(e, "/en/news/sports/2024/1/14/ai-breakthrough-in-machine-learning/", nil).Code)
	})

	t.Run("Plugin", func(t *testing.T) {
		rec := serve(e, "/en/news/plugins/latest/1/", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "AI Breakthrough in Machine Learning")
		assert.Contains(t, rec.Body.String(), "World Cup Finals")
		assert.NotContains(t, rec.Body.String(), "<html")
	})
}

func TestFeeds(t *testing.T) {
	e := newServer(t)
	parser := gofeed.NewParser()

	tests := []struct {
		target string
		items  int
	}{
		{"/en/news/feed/", 7},
		{"/en/news/tagged/hot/feed/", 2},
		{"/en/news/tagged/missing/feed/", 0},
		{"/en/news/technology/feed/", 3},
		{"/de/news/sport/feed/", 0},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := serve(e, tt.target, nil)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.True(t, strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), "application/rss+xml"))

			f, err := parser.ParseString(rec.Body.String())
			require.NoError(t, err)
			assert.Len(t, f.Items, tt.items)
		})
	}

	assert.Equal(t, http.StatusNotFound, serve(e, "/en/news/missing/feed/", nil).Code)
}

func TestAPI(t *testing.T) {
	e := newServer(t)

	t.Run("News", func(t *testing.T) {
		rec := serve(e, "/api/v1/news?lang=en", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, newsIDs(t, rec.Body.Bytes()))
	})

	t.Run("Pagination", func(t *testing.T) {
		rec := serve(e, "/api/v1/news?lang=en&limit=3&page=2", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []int{4, 5, 6}, newsIDs(t, rec.Body.Bytes()))
	})

	t.Run("ByTag", func(t *testing.T) {
		rec := serve(e, "/api/v1/news?lang=en&tag_id=2", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []int{1, 3}, newsIDs(t, rec.Body.Bytes()))

		rec = serve(e, "/api/v1/news?lang=en&tag_id=2", staffHeader)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []int{1, 3, 9}, newsIDs(t, rec.Body.Bytes()))
	})

	t.Run("Count", func(t *testing.T) {
		rec := serve(e, "/api/v1/news/count?lang=en", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "7", strings.TrimSpace(rec.Body.String()))

		rec = serve(e, "/api/v1/news/count?lang=en&category_id=1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "3", strings.TrimSpace(rec.Body.String()))
	})

	t.Run("NewsByID", func(t *testing.T) {
		rec := serve(e, "/api/v1/news/1?lang=de", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var n News
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &n))
		assert.Equal(t, "KI Durchbruch", n.Title)
		assert.Len(t, n.Alternates, 2)
	})

	t.Run("Unpublished", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, serve(e, "/api/v1/news/8?lang=en", nil).Code)
		assert.Equal(t, http.StatusOK, serve(e, "/api/v1/news/8?lang=en", staffHeader).Code)
	})

	t.Run("Tags", func(t *testing.T) {
		rec := serve(e, "/api/v1/tags?lang=en", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var tags []TagCount
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tags))
		require.Len(t, tags, 4)

		got := make([]string, len(tags))
		for i, tc := range tags {
			got[i] = fmt.Sprintf("%s:%d", tc.Name, tc.Count)
		}
		assert.Equal(t, []string{"Important:4", "Analytics:2", "Hot:2", "Interview:1"}, got)
	})

	t.Run("TagsOfNews", func(t *testing.T) {
		rec := serve(e, "/api/v1/tags?lang=en&ids=3&ids=4", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var tags []TagCount
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tags))
		require.Len(t, tags, 2)
		assert.Equal(t, "Important", tags[0].Name)
		assert.Equal(t, 2, tags[0].Count)
	})

	t.Run("Categories", func(t *testing.T) {
		rec := serve(e, "/api/v1/categories?lang=en", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var categories []CategoryCount
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
		require.Len(t, categories, 3)
		assert.Equal(t, "Technology", categories[0].Name)
		assert.Equal(t, 3, categories[0].Count)
	})

	t.Run("Months", func(t *testing.T) {
		rec := serve(e, "/api/v1/months?lang=en", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var months []MonthCount
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &months))
		require.NotEmpty(t, months)
		assert.Equal(t, 2024, months[0].Year)
		assert.Equal(t, 1, months[0].Month)
		assert.Equal(t, 3, months[0].Count)
	})

	t.Run("MenuByAcceptLanguage", func(t *testing.T) {
		rec := serve(e, "/api/v1/menu", http.Header{"Accept-Language": {"de-DE,de;q=0.9"}})
		require.Equal(t, http.StatusOK, rec.Code)

		var nodes []newsportal.MenuNode
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &nodes))
		require.Len(t, nodes, 2)
		assert.Equal(t, "Technologie", nodes[0].Title)
		assert.Equal(t, "Sport", nodes[1].Title)
	})

	t.Run("Toolbar", func(t *testing.T) {
		rec := serve(e, "/api/v1/toolbar?news_id=1", staffHeader)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "/admin/news/1/")
	})

	t.Run("LatestNewsPlugin", func(t *testing.T) {
		rec := serve(e, "/api/v1/plugins/latest/1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []int{1, 3}, newsIDs(t, rec.Body.Bytes()))

		assert.Equal(t, http.StatusNotFound, serve(e, "/api/v1/plugins/latest/99", nil).Code)
	})
}

func TestSitemap(t *testing.T) {
	e := newServer(t)

	rec := serve(e, "/sitemap.xml", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<urlset")
	assert.Contains(t, rec.Body.String(), "https://example.com/de/news/2024/1/14/ki-durchbruch/")
}

func TestHealth(t *testing.T) {
	e := newServer(t)

	rec := serve(e, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestExternalNews(t *testing.T) {
	ctx := context.Background()
	repo := db.New(testDB)

	externalURL := "https://partner.example.com/story"
	categoryID := 1
	news := db.News{
		CategoryID:       &categoryID,
		PublicationStart: db.BaseTime.Add(-5 * 24 * time.Hour),
		ExternalURL:      &externalURL,
	}
	translations := []db.NewsTranslation{{LanguageCode: "en", Title: "Partner Story", Slug: "partner-story", LeadIn: "<p>Elsewhere.</p>"}}
	require.NoError(t, repo.SaveNews(ctx, &news, translations, nil))
	t.Cleanup(func() { _, _ = repo.DeleteNews(ctx, news.ID) })

	e := newServer(t)

	t.Run("DetailRedirects", func(t *testing.T) {
		rec := serve(e, "/en/news/2024/1/9/partner-story/", nil)
		require.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, externalURL, rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("ListLinksOut", func(t *testing.T) {
		rec := serve(e, "/en/news/", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `href="`+externalURL+`"`)
		assert.NotContains(t, rec.Body.String(), "/en/news/2024/1/9/partner-story/")
	})
}

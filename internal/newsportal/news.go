package newsportal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/daniilsolovey/news-cms/internal/db"
	"github.com/daniilsolovey/news-cms/internal/metrics"
)

type Settings struct {
	Languages       []string
	DefaultLanguage string
	// AdminURL is the base of editor links in the toolbar.
	AdminURL string
	URLs     *URLBuilder
	Cache    Cache
	Logger   *slog.Logger
	// Metrics is optional.
	Metrics *metrics.Collector
}

type Manager struct {
	db       *db.Repository
	settings Settings
	urls     *URLBuilder
	cache    Cache
	logger   *slog.Logger
	metrics  *metrics.Collector
	now      func() time.Time
}

func NewNewsManager(repo *db.Repository, settings Settings) *Manager {
	if settings.URLs == nil {
		settings.URLs = NewURLBuilder("news")
	}
	if settings.Cache == nil {
		settings.Cache = NopCache{}
	}
	if settings.Logger == nil {
		settings.Logger = slog.Default()
	}
	if settings.DefaultLanguage == "" && len(settings.Languages) > 0 {
		settings.DefaultLanguage = settings.Languages[0]
	}

	return &Manager{
		db:       repo,
		settings: settings,
		urls:     settings.URLs,
		cache:    settings.Cache,
		logger:   settings.Logger,
		metrics:  settings.Metrics,
		now:      time.Now,
	}
}

func (m *Manager) URLs() *URLBuilder {
	return m.urls
}

func (m *Manager) Languages() []string {
	return m.settings.Languages
}

func (m *Manager) DefaultLanguage() string {
	return m.settings.DefaultLanguage
}

// IsLanguage reports whether language is one of the configured languages.
func (m *Manager) IsLanguage(language string) bool {
	for _, l := range m.settings.Languages {
		if l == language {
			return true
		}
	}
	return false
}

func (m *Manager) search(filter NewsFilter) db.NewsSearch {
	return db.NewsSearch{
		Language:   filter.Language,
		CategoryID: filter.CategoryID,
		TagID:      filter.TagID,
		Year:       filter.Year,
		Month:      filter.Month,
		Published:  !filter.Preview,
		Now:        m.now(),
	}
}

// NewsByFilter retrieves news translated into filter.Language sorted by publicationStart DESC.
// Without Preview only news inside their publication window are returned.
func (m *Manager) NewsByFilter(ctx context.Context, filter NewsFilter) ([]News, error) {
	limit, offset := 0, 0
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		limit, offset = filter.PageSize, (page-1)*filter.PageSize
	}

	dbNews, err := m.db.News(ctx, m.search(filter), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("db get news: %w", err)
	}

	newsList := NewNewsList(dbNews)
	if err := m.fill(ctx, newsList, filter.Language); err != nil {
		return nil, fmt.Errorf("failed to attach relations to news: %w", err)
	}

	return newsList, nil
}

func (m *Manager) NewsCount(ctx context.Context, filter NewsFilter) (int, error) {
	count, err := m.db.NewsCount(ctx, m.search(filter))
	if err != nil {
		return 0, fmt.Errorf("db get news count: %w", err)
	}

	return count, nil
}

// NewsByID returns ErrNotFound when the news is missing, not translated into language
// or, without preview, outside its publication window.
func (m *Manager) NewsByID(ctx context.Context, newsID int, language string, preview bool) (*News, error) {
	dbNews, err := m.db.NewsByID(ctx, newsID, m.search(NewsFilter{Language: language, Preview: preview}))
	if err != nil {
		return nil, fmt.Errorf("db get news by id: %w", err)
	} else if dbNews == nil {
		return nil, ErrNotFound
	}

	newsList := NewNewsList([]db.News{*dbNews})
	if err := m.fill(ctx, newsList, language); err != nil {
		return nil, fmt.Errorf("failed to attach relations to news: %w", err)
	}

	return &newsList[0], nil
}

// NewsByDateSlug resolves a detail URL. The slug is looked up in language, a numeric slug
// also matches the id. The publication date must match and, when categorySlug is set,
// the news must belong to that category.
func (m *Manager) NewsByDateSlug(ctx context.Context, language string, year, month, day int, slug, categorySlug string, preview bool) (*News, error) {
	newsID, err := m.db.NewsIDBySlug(ctx, language, slug)
	if err != nil {
		return nil, fmt.Errorf("db get news by slug: %w", err)
	}

	if newsID == 0 {
		if newsID, err = strconv.Atoi(slug); err != nil || newsID <= 0 {
			return nil, ErrNotFound
		}
	}

	news, err := m.NewsByID(ctx, newsID, language, preview)
	if err != nil {
		return nil, err
	}

	y, mo, d := news.PublicationStart.UTC().Date()
	if y != year || int(mo) != month || d != day {
		return nil, ErrNotFound
	}

	if categorySlug != "" && (news.Category == nil || news.Category.Slug != categorySlug) {
		return nil, ErrNotFound
	}

	return news, nil
}

// Alternates lists the news item in every other configured language it is translated into.
func (m *Manager) Alternates(news News) []Alternate {
	var r []Alternate
	for _, language := range m.settings.Languages {
		for _, tr := range news.Translations {
			if tr.LanguageCode != language {
				continue
			}
			r = append(r, Alternate{
				Language: language,
				Title:    tr.Title,
				URL:      m.urls.NewsDetail(news, language),
			})
		}
	}
	return r
}

// Tags counts tag usage over newsIDs, or over every visible news item in language when empty.
func (m *Manager) Tags(ctx context.Context, language string, newsIDs []int, preview bool) ([]TagCount, error) {
	s := m.search(NewsFilter{Language: language, Preview: preview})
	if len(newsIDs) > 0 {
		s.Language, s.IDs = "", newsIDs
	}

	facets, err := m.db.NewsFacets(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("db get news facets: %w", err)
	}

	tagSets := make([][]int, len(facets))
	for i := range facets {
		tagSets[i] = facets[i].TagIDs
	}
	counts := CountTagUsage(tagSets)

	ids := make([]int, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}

	list, err := m.db.TagsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("db get tags by ids: %w", err)
	}

	tags := NewTags(list)
	m.translateTags(tags, language)

	r := make([]TagCount, len(tags))
	for i := range tags {
		r[i] = TagCount{Tag: tags[i], Count: counts[tags[i].ID]}
	}
	SortTagCounts(r)

	return r, nil
}

// Months returns the number of news per month, newest first.
func (m *Manager) Months(ctx context.Context, language string, preview bool) ([]MonthCount, error) {
	facets, err := m.db.NewsFacets(ctx, m.search(NewsFilter{Language: language, Preview: preview}))
	if err != nil {
		return nil, fmt.Errorf("db get news facets: %w", err)
	}

	dates := make([]time.Time, len(facets))
	for i := range facets {
		dates[i] = facets[i].PublicationStart
	}

	return CountMonths(dates), nil
}

// CategoriesWithUsageCount counts news per category over newsIDs, or over every visible news item when empty.
func (m *Manager) CategoriesWithUsageCount(ctx context.Context, language string, newsIDs []int, preview bool) ([]CategoryCount, error) {
	s := m.search(NewsFilter{Language: language, Preview: preview})
	if len(newsIDs) > 0 {
		s.Language, s.IDs = "", newsIDs
	}

	facets, err := m.db.NewsFacets(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("db get news facets: %w", err)
	}

	categoryIDs := make([]*int, len(facets))
	for i := range facets {
		categoryIDs[i] = facets[i].CategoryID
	}
	counts := CountCategoryUsage(categoryIDs)

	ids := make([]int, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}

	list, err := m.db.CategoriesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("db get categories by ids: %w", err)
	}

	categories := NewCategories(list)
	m.translateCategories(categories, language)

	r := make([]CategoryCount, len(categories))
	for i := range categories {
		r[i] = CategoryCount{Category: categories[i], Count: counts[categories[i].ID]}
	}
	SortCategoryCounts(r)

	return r, nil
}

// Categories returns categories translated into language ordered by ordering.
func (m *Manager) Categories(ctx context.Context, language string) ([]Category, error) {
	list, err := m.db.Categories(ctx, language)
	if err != nil {
		return nil, err
	}

	categories := NewCategories(list)
	m.translateCategories(categories, language)

	return categories, nil
}

func (m *Manager) CategoryBySlug(ctx context.Context, language, slug string) (*Category, error) {
	dbCategory, err := m.db.CategoryBySlug(ctx, language, slug)
	if err != nil {
		return nil, err
	} else if dbCategory == nil {
		return nil, ErrNotFound
	}

	categories := Categories{NewCategory(dbCategory)}
	m.translateCategories(categories, language)

	return &categories[0], nil
}

func (m *Manager) TagBySlug(ctx context.Context, language, slug string) (*Tag, error) {
	dbTag, err := m.db.TagBySlug(ctx, language, slug)
	if err != nil {
		return nil, err
	} else if dbTag == nil {
		return nil, ErrNotFound
	}

	tags := Tags{NewTag(dbTag)}
	m.translateTags(tags, language)

	return &tags[0], nil
}

// LatestNews returns the published news selected by the plugin configuration.
func (m *Manager) LatestNews(ctx context.Context, plugin LatestNewsPlugin) ([]News, error) {
	s := m.search(NewsFilter{Language: plugin.LanguageCode})
	s.AnyTagIDs = plugin.TagIDs

	limit := plugin.LatestEntries
	if limit < 1 {
		limit = 1
	}

	dbNews, err := m.db.News(ctx, s, limit, 0)
	if err != nil {
		return nil, fmt.Errorf("db get latest news: %w", err)
	}

	newsList := NewNewsList(dbNews)
	if err := m.fill(ctx, newsList, plugin.LanguageCode); err != nil {
		return nil, fmt.Errorf("failed to attach relations to news: %w", err)
	}

	return newsList, nil
}

// ContentBlocks returns the content of the news item in language with plugin blocks resolved.
func (m *Manager) ContentBlocks(ctx context.Context, newsID int, language string) ([]ContentBlock, error) {
	list, err := m.db.ContentBlocks(ctx, newsID, language)
	if err != nil {
		return nil, fmt.Errorf("db get content blocks: %w", err)
	}

	blocks := NewContentBlocks(list)
	for i := range blocks {
		if blocks[i].PluginType != db.PluginTypeLatestNews || blocks[i].PluginID == nil {
			continue
		}

		plugin, err := m.Plugin(ctx, *blocks[i].PluginID)
		if errors.Is(err, ErrNotFound) {
			continue
		} else if err != nil {
			return nil, err
		}
		blocks[i].Plugin = plugin
	}

	return blocks, nil
}

// fill translates the news and attaches category, tags and URL.
func (m *Manager) fill(ctx context.Context, newsList NewsList, language string) error {
	if len(newsList) == 0 {
		return nil
	}

	newsList.Translate(language, m.settings.DefaultLanguage)

	tagList, err := m.db.TagsByIDs(ctx, newsList.UniqueTagIDs())
	if err != nil {
		return err
	}
	tags := NewTags(tagList)
	m.translateTags(tags, language)
	newsList.SetTags(tags)

	categoryList, err := m.db.CategoriesByIDs(ctx, newsList.UniqueCategoryIDs())
	if err != nil {
		return err
	}
	categories := NewCategories(categoryList)
	m.translateCategories(categories, language)
	newsList.SetCategories(categories)

	for i := range newsList {
		urlLanguage := language
		if urlLanguage == "" {
			urlLanguage = newsList[i].Language
		}
		newsList[i].URL = m.urls.NewsURL(newsList[i], urlLanguage)
	}

	return nil
}

func (m *Manager) translateTags(tags Tags, language string) {
	tags.Translate(language, m.settings.DefaultLanguage)
	for i := range tags {
		tags[i].URL = m.urls.Tagged(m.urlLanguage(language, tags[i].Language), tags[i].Slug)
	}
}

func (m *Manager) translateCategories(categories Categories, language string) {
	categories.Translate(language, m.settings.DefaultLanguage)
	for i := range categories {
		categories[i].URL = m.urls.Category(m.urlLanguage(language, categories[i].Language), categories[i].Slug)
	}
}

func (m *Manager) urlLanguage(requested, translated string) string {
	if requested != "" {
		return requested
	}
	if translated != "" {
		return translated
	}
	return m.settings.DefaultLanguage
}

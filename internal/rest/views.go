package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/feeds"
	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/news-cms/internal/feed"
	"github.com/daniilsolovey/news-cms/internal/newsportal"
)

type layout struct {
	Language   string
	Title      string
	FeedURL    string
	Menu       []newsportal.MenuNode
	Toolbar    *newsportal.ToolbarMenu
	Alternates []newsportal.Alternate
}

type monthLink struct {
	Year  int
	Month int
	Count int
	URL   string
}

type pagination struct {
	Page    int
	Pages   int
	PrevURL string
	NextURL string
}

type listPage struct {
	layout

	View  string
	Year  int
	Month int
	// ArchiveDate is the first day of the archived year or month.
	ArchiveDate *time.Time
	Tag         *newsportal.Tag
	Category    *newsportal.Category

	News       []newsportal.News
	Months     []monthLink
	Tags       []newsportal.TagCount
	Pagination pagination
}

type blockView struct {
	newsportal.ContentBlock

	News []newsportal.News
}

type detailPage struct {
	layout

	News   newsportal.News
	Blocks []blockView
}

type pluginPage struct {
	Plugin newsportal.LatestNewsPlugin
	News   []newsportal.News
}

type errorPage struct {
	layout

	Status  int
	Message string
}

// archive serves the latest news and the year and month archives.
func (h *NewsHandler) archive(c echo.Context, r resolved) error {
	filter := newsportal.NewsFilter{Language: r.Language, Preview: preview(c)}
	page := listPage{
		layout: layout{Title: "News", FeedURL: h.manager.URLs().LatestFeed(r.Language)},
		View:   r.Name,
	}

	if y := r.Params["year"]; y != "" {
		year, err := strconv.Atoi(y)
		if err != nil || year < 1 {
			return h.renderError(c, http.StatusNotFound, nil)
		}
		date := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		filter.Year, page.Year = year, year
		page.Title = strconv.Itoa(year)

		if m := r.Params["month"]; m != "" {
			month, err := strconv.Atoi(m)
			if err != nil || month < 1 || month > 12 {
				return h.renderError(c, http.StatusNotFound, nil)
			}
			date = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
			filter.Month, page.Month = month, month
			page.Title = date.Month().String() + " " + strconv.Itoa(year)
		}
		page.ArchiveDate = &date
	}

	return h.renderList(c, r, filter, page, false)
}

// tagged lists the news of a tag; an unknown tag renders an empty list.
func (h *NewsHandler) tagged(c echo.Context, r resolved) error {
	slug := r.Params["tag"]
	filter := newsportal.NewsFilter{Language: r.Language, Preview: preview(c)}
	page := listPage{
		layout: layout{Title: slug, FeedURL: h.manager.URLs().TaggedFeed(r.Language, slug)},
		View:   r.Name,
	}

	tag, err := h.manager.TagBySlug(c.Request().Context(), r.Language, slug)
	if errors.Is(err, newsportal.ErrNotFound) {
		return h.renderList(c, r, filter, page, true)
	} else if err != nil {
		return h.viewError(c, err)
	}

	filter.TagID = &tag.ID
	page.Tag, page.Title = tag, tag.Name

	return h.renderList(c, r, filter, page, false)
}

func (h *NewsHandler) category(c echo.Context, r resolved) error {
	category, err := h.manager.CategoryBySlug(c.Request().Context(), r.Language, r.Params["category"])
	if err != nil {
		return h.viewError(c, err)
	}

	filter := newsportal.NewsFilter{Language: r.Language, CategoryID: &category.ID, Preview: preview(c)}
	page := listPage{
		layout:   layout{Title: category.Name, FeedURL: h.manager.URLs().CategoryFeed(r.Language, category.Slug)},
		View:     r.Name,
		Category: category,
	}

	return h.renderList(c, r, filter, page, false)
}

func (h *NewsHandler) renderList(c echo.Context, r resolved, filter newsportal.NewsFilter, page listPage, empty bool) error {
	ctx := c.Request().Context()

	pageNumber, ok := pageParam(c)
	if !ok {
		return h.renderError(c, http.StatusNotFound, nil)
	}

	if !empty {
		count, err := h.manager.NewsCount(ctx, filter)
		if err != nil {
			return h.viewError(c, err)
		}

		pages := (count + h.pageSize - 1) / h.pageSize
		if pageNumber > 1 && pageNumber > pages {
			return h.renderError(c, http.StatusNotFound, nil)
		}

		filter.Page, filter.PageSize = pageNumber, h.pageSize
		if page.News, err = h.manager.NewsByFilter(ctx, filter); err != nil {
			return h.viewError(c, err)
		}

		page.Pagination = newPagination(c.Request().URL.Path, pageNumber, pages)
	}

	if len(page.News) > 0 {
		tags, err := h.manager.Tags(ctx, r.Language, newsportal.NewsList(page.News).IDs(), filter.Preview)
		if err != nil {
			return h.viewError(c, err)
		}
		page.Tags = tags
	}

	months, err := h.manager.Months(ctx, r.Language, filter.Preview)
	if err != nil {
		return h.viewError(c, err)
	}
	for _, m := range months {
		year, month := m.Date.Year(), int(m.Date.Month())
		page.Months = append(page.Months, monthLink{
			Year:  year,
			Month: month,
			Count: m.Count,
			URL:   h.manager.URLs().Month(r.Language, year, month),
		})
	}

	if err := h.fillLayout(c, &page.layout, r.Language, nil); err != nil {
		return h.viewError(c, err)
	}

	return c.Render(http.StatusOK, "archive.html", page)
}

// detail serves a news item; items with an external URL redirect there.
func (h *NewsHandler) detail(c echo.Context, r resolved) error {
	ctx := c.Request().Context()

	year, _ := strconv.Atoi(r.Params["year"])
	month, _ := strconv.Atoi(r.Params["month"])
	day, _ := strconv.Atoi(r.Params["day"])

	news, err := h.manager.NewsByDateSlug(ctx, r.Language, year, month, day, r.Params["slug"], r.Params["category"], preview(c))
	if err != nil {
		return h.viewError(c, err)
	}

	if news.ExternalURL != nil && *news.ExternalURL != "" {
		return c.Redirect(http.StatusFound, *news.ExternalURL)
	}

	blocks, err := h.manager.ContentBlocks(ctx, news.ID, r.Language)
	if err != nil {
		return h.viewError(c, err)
	}

	page := detailPage{
		layout: layout{
			Title:      news.Title,
			FeedURL:    h.manager.URLs().LatestFeed(r.Language),
			Alternates: h.manager.Alternates(*news),
		},
		News:   *news,
		Blocks: make([]blockView, 0, len(blocks)),
	}

	for _, b := range blocks {
		view := blockView{ContentBlock: b}
		if b.Plugin != nil {
			if view.News, err = h.manager.LatestNews(ctx, *b.Plugin); err != nil {
				return h.viewError(c, err)
			}
		}
		page.Blocks = append(page.Blocks, view)
	}

	if err := h.fillLayout(c, &page.layout, r.Language, news); err != nil {
		return h.viewError(c, err)
	}

	return c.Render(http.StatusOK, "detail.html", page)
}

func (h *NewsHandler) latestFeed(c echo.Context, r resolved) error {
	f, err := h.feeds.Latest(c.Request().Context(), r.Language)
	if err != nil {
		return h.viewError(c, err)
	}

	return h.writeFeed(c, "latest", f, r.Language)
}

func (h *NewsHandler) taggedFeed(c echo.Context, r resolved) error {
	f, err := h.feeds.Tagged(c.Request().Context(), r.Language, r.Params["tag"])
	if err != nil {
		return h.viewError(c, err)
	}

	return h.writeFeed(c, "tag", f, r.Language)
}

func (h *NewsHandler) categoryFeed(c echo.Context, r resolved) error {
	f, err := h.feeds.Category(c.Request().Context(), r.Language, r.Params["category"])
	if err != nil {
		return h.viewError(c, err)
	}

	return h.writeFeed(c, "category", f, r.Language)
}

func (h *NewsHandler) writeFeed(c echo.Context, name string, f *feeds.Feed, language string) error {
	h.metrics.FeedCounter.WithLabelValues(name).Inc()

	c.Response().Header().Set(echo.HeaderContentType, contentTypeRSS)
	c.Response().WriteHeader(http.StatusOK)

	return feed.WriteRSS(c.Response(), f, language)
}

// latestPlugin renders the latest news plugin as an HTML fragment.
func (h *NewsHandler) latestPlugin(c echo.Context, r resolved) error {
	ctx := c.Request().Context()

	id, err := strconv.Atoi(r.Params["id"])
	if err != nil {
		return h.renderError(c, http.StatusNotFound, nil)
	}

	plugin, err := h.manager.Plugin(ctx, id)
	if err != nil {
		return h.viewError(c, err)
	}

	news, err := h.manager.LatestNews(ctx, *plugin)
	if err != nil {
		return h.viewError(c, err)
	}

	return c.Render(http.StatusOK, "plugin.html", pluginPage{Plugin: *plugin, News: news})
}

// fillLayout sets language, menu and the toolbar of the current staff.
func (h *NewsHandler) fillLayout(c echo.Context, l *layout, language string, current *newsportal.News) error {
	menu, err := h.menu(c.Request().Context(), language)
	if err != nil {
		return err
	}

	l.Language = language
	l.Menu = menu
	l.Toolbar = h.manager.Toolbar(newsportal.StaffFromContext(c.Request().Context()), current)

	return nil
}

func (h *NewsHandler) menu(ctx context.Context, language string) ([]newsportal.MenuNode, error) {
	h.metrics.MenuRequests.WithLabelValues(language).Inc()
	return h.manager.Menu(ctx, language)
}

// pageParam parses the page query parameter, a missing value is page 1.
func pageParam(c echo.Context) (int, bool) {
	raw := c.QueryParam("page")
	if raw == "" {
		return 1, true
	}

	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, false
	}

	return page, true
}

func newPagination(path string, page, pages int) pagination {
	p := pagination{Page: page, Pages: pages}
	if page > 1 {
		p.PrevURL = path + "?page=" + strconv.Itoa(page-1)
	}
	if page < pages {
		p.NextURL = path + "?page=" + strconv.Itoa(page+1)
	}
	return p
}

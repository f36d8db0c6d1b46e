package rest

import (
	"net/http"
	"strconv"

	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/news-cms/internal/newsportal"
)

func (h *NewsHandler) newsFilter(c echo.Context) (newsportal.NewsFilter, error) {
	q := NewsQuery{Pager: urlstruct.Pager{DefaultLimit: h.pageSize, MaxLimit: 100}}
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &q); err != nil {
		return newsportal.NewsFilter{}, err
	}

	filter := newsportal.NewsFilter{
		Language: h.requestLanguage(c),
		Year:     q.Year,
		Month:    q.Month,
		Preview:  preview(c),
		Page:     q.GetPage(),
		PageSize: q.GetLimit(),
	}
	if filter.PageSize < 1 {
		filter.PageSize = h.pageSize
	}
	if q.TagID > 0 {
		filter.TagID = &q.TagID
	}
	if q.CategoryID > 0 {
		filter.CategoryID = &q.CategoryID
	}

	return filter, nil
}

// News handles GET /api/v1/news
// @Summary Get news
// @Description Retrieves news translated into the request language with optional filtering by tag, category, year and month, with pagination. Sorted by publicationStart DESC. Staff also sees unpublished news.
// @Tags news
// @Produce json
// @Param lang query string false "Language code"
// @Param tag_id query int false "Filter by tag ID"
// @Param category_id query int false "Filter by category ID"
// @Param year query int false "Filter by publication year"
// @Param month query int false "Filter by publication month"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: configured page size)"
// @Success 200 {array} rest.NewsSummary
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/news [get]
func (h *NewsHandler) News(c echo.Context) error {
	filter, err := h.newsFilter(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	list, err := h.manager.NewsByFilter(c.Request().Context(), filter)
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusOK, NewNewsSummaries(list))
}

// NewsCount handles GET /api/v1/news/count
// @Summary Get news count
// @Description Returns the count of news matching the filters of GET /api/v1/news
// @Tags news
// @Produce json
// @Param lang query string false "Language code"
// @Param tag_id query int false "Filter by tag ID"
// @Param category_id query int false "Filter by category ID"
// @Param year query int false "Filter by publication year"
// @Param month query int false "Filter by publication month"
// @Success 200 {integer} int
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/news/count [get]
func (h *NewsHandler) NewsCount(c echo.Context) error {
	filter, err := h.newsFilter(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	count, err := h.manager.NewsCount(c.Request().Context(), filter)
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusOK, count)
}

// NewsByID handles GET /api/v1/news/:id
// @Summary Get news by ID
// @Description Retrieves a single news item with content blocks, category, tags and alternate languages
// @Tags news
// @Produce json
// @Param id path int true "News ID"
// @Param lang query string false "Language code"
// @Success 200 {object} rest.News
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/news/{id} [get]
func (h *NewsHandler) NewsByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	ctx := c.Request().Context()
	language := h.requestLanguage(c)

	n, err := h.manager.NewsByID(ctx, id, language, preview(c))
	if err != nil {
		return h.handleManagerError(c, err)
	}

	blocks, err := h.manager.ContentBlocks(ctx, n.ID, language)
	if err != nil {
		return h.handleManagerError(c, err)
	}

	news := News{
		NewsSummary: NewNewsSummary(*n),
		Blocks:      make([]ContentBlock, 0, len(blocks)),
		Alternates:  NewAlternates(h.manager.Alternates(*n)),
	}

	for _, b := range blocks {
		block := ContentBlock{Position: b.Position, PluginType: b.PluginType, Body: b.Body}
		if b.Plugin != nil {
			latest, err := h.manager.LatestNews(ctx, *b.Plugin)
			if err != nil {
				return h.handleManagerError(c, err)
			}
			block.News = NewNewsSummaries(latest)
		}
		news.Blocks = append(news.Blocks, block)
	}

	return c.JSON(http.StatusOK, news)
}

// Categories handles GET /api/v1/categories
// @Summary Get categories
// @Description Retrieves categories translated into the request language ordered by ordering, with the number of visible news
// @Tags categories
// @Produce json
// @Param lang query string false "Language code"
// @Success 200 {array} rest.CategoryCount
// @Failure 500 {object} map[string]string
// @Router /api/v1/categories [get]
func (h *NewsHandler) Categories(c echo.Context) error {
	ctx := c.Request().Context()
	language := h.requestLanguage(c)

	categories, err := h.manager.Categories(ctx, language)
	if err != nil {
		return h.handleManagerError(c, err)
	}

	usage, err := h.manager.CategoriesWithUsageCount(ctx, language, nil, preview(c))
	if err != nil {
		return h.handleManagerError(c, err)
	}

	counts := make(map[int]int, len(usage))
	for _, u := range usage {
		counts[u.Category.ID] = u.Count
	}

	result := make(CategoryCounts, len(categories))
	for i := range categories {
		result[i] = NewCategoryCount(newsportal.CategoryCount{Category: categories[i], Count: counts[categories[i].ID]})
	}

	return c.JSON(http.StatusOK, result)
}

// Tags handles GET /api/v1/tags
// @Summary Get tag cloud
// @Description Counts tag usage over the given news ids, or over every visible news item in the request language. Sorted by count DESC then name.
// @Tags tags
// @Produce json
// @Param lang query string false "Language code"
// @Param ids query []int false "News IDs" collectionFormat(multi)
// @Success 200 {array} rest.TagCount
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/tags [get]
func (h *NewsHandler) Tags(c echo.Context) error {
	var q TagsQuery
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &q); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	tags, err := h.manager.Tags(c.Request().Context(), h.requestLanguage(c), q.IDs, preview(c))
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusOK, NewTagCounts(tags))
}

// Months handles GET /api/v1/months
// @Summary Get archive months
// @Description Returns the number of visible news per month in the request language, newest first
// @Tags news
// @Produce json
// @Param lang query string false "Language code"
// @Success 200 {array} rest.MonthCount
// @Failure 500 {object} map[string]string
// @Router /api/v1/months [get]
func (h *NewsHandler) Months(c echo.Context) error {
	language := h.requestLanguage(c)

	months, err := h.manager.Months(c.Request().Context(), language, preview(c))
	if err != nil {
		return h.handleManagerError(c, err)
	}

	result := make([]MonthCount, len(months))
	for i := range months {
		result[i] = NewMonthCount(h.manager.URLs(), language, months[i])
	}

	return c.JSON(http.StatusOK, result)
}

// Menu handles GET /api/v1/menu
// @Summary Get navigation menu
// @Description Returns one node per category translated into the request language
// @Tags categories
// @Produce json
// @Param lang query string false "Language code"
// @Success 200 {array} newsportal.MenuNode
// @Failure 500 {object} map[string]string
// @Router /api/v1/menu [get]
func (h *NewsHandler) Menu(c echo.Context) error {
	nodes, err := h.menu(c.Request().Context(), h.requestLanguage(c))
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusOK, nodes)
}

// Toolbar handles GET /api/v1/toolbar
// @Summary Get editor toolbar
// @Description Returns the editor menu of the authenticated staff, optionally for the news being viewed. No content for anonymous requests.
// @Tags news
// @Produce json
// @Param news_id query int false "News being viewed"
// @Success 200 {object} newsportal.ToolbarMenu
// @Success 204
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/toolbar [get]
func (h *NewsHandler) Toolbar(c echo.Context) error {
	ctx := c.Request().Context()
	staff := newsportal.StaffFromContext(ctx)

	var current *newsportal.News
	if raw := c.QueryParam("news_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return h.handleError(c, err, http.StatusBadRequest, "invalid news_id")
		}

		if staff != nil {
			if current, err = h.manager.NewsByID(ctx, id, "", true); err != nil {
				return h.handleManagerError(c, err)
			}
		}
	}

	menu := h.manager.Toolbar(staff, current)
	if menu == nil {
		return c.NoContent(http.StatusNoContent)
	}

	return c.JSON(http.StatusOK, menu)
}

// Search handles GET /api/v1/search
// @Summary Search news
// @Description Full text search over published news in the request language
// @Tags search
// @Produce json
// @Param q query string true "Query"
// @Param lang query string false "Language code"
// @Param limit query int false "Maximum number of results (default: 20)"
// @Success 200 {array} rest.SearchResult
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/search [get]
func (h *NewsHandler) Search(c echo.Context) error {
	q := SearchQuery{Pager: urlstruct.Pager{DefaultLimit: 20, MaxLimit: 100}}
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &q); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}
	if q.Q == "" {
		return h.handleError(c, nil, http.StatusBadRequest, "q is required")
	}

	docs, err := h.indexer.Search(c.Request().Context(), q.Q, h.requestLanguage(c), q.GetLimit())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "search failed")
	}

	return c.JSON(http.StatusOK, NewSearchResults(docs))
}

// LatestNewsPlugin handles GET /api/v1/plugins/latest/:id
// @Summary Get latest news of a plugin
// @Description Returns the published news selected by a latest news plugin
// @Tags plugins
// @Produce json
// @Param id path int true "Plugin ID"
// @Success 200 {array} rest.NewsSummary
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/plugins/latest/{id} [get]
func (h *NewsHandler) LatestNewsPlugin(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	ctx := c.Request().Context()
	plugin, err := h.manager.Plugin(ctx, id)
	if err != nil {
		return h.handleManagerError(c, err)
	}

	list, err := h.manager.LatestNews(ctx, *plugin)
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusOK, NewNewsSummaries(list))
}

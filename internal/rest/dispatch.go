package rest

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"
)

// Route names below /<language>/<prefix>/.
const (
	RouteLatestNews         = "latest-news"
	RouteLatestNewsFeed     = "latest-news-feed"
	RouteTaggedNews         = "tagged-news"
	RouteTaggedNewsFeed     = "tagged-news-feed"
	RouteArchiveYear        = "archive-year"
	RouteArchiveMonth       = "archive-month"
	RouteNewsDetail         = "news-detail"
	RouteCategory           = "news-category"
	RouteCategoryFeed       = "news-category-feed"
	RouteCategoryNewsDetail = "news-category-detail"
	RouteLatestNewsPlugin   = "latest-news-plugin"
)

type viewFunc func(h *NewsHandler, c echo.Context, r resolved) error

type pattern struct {
	name string
	re   *regexp.Regexp
	view viewFunc
}

// patterns are matched in order against the path relative to the prefix.
var patterns = []pattern{
	{RouteLatestNews, regexp.MustCompile(`^$`), (*NewsHandler).archive},
	{RouteLatestNewsFeed, regexp.MustCompile(`^feed/$`), (*NewsHandler).latestFeed},
	{RouteTaggedNews, regexp.MustCompile(`^tagged/(?P<tag>[-\w]+)/$`), (*NewsHandler).tagged},
	{RouteTaggedNewsFeed, regexp.MustCompile(`^tagged/(?P<tag>[-\w]+)/feed/$`), (*NewsHandler).taggedFeed},
	{RouteArchiveYear, regexp.MustCompile(`^(?P<year>\d{4})/$`), (*NewsHandler).archive},
	{RouteArchiveMonth, regexp.MustCompile(`^(?P<year>\d{4})/(?P<month>\d{1,2})/$`), (*NewsHandler).archive},
	{RouteNewsDetail, regexp.MustCompile(`^(?P<year>\d{4})/(?P<month>\d{1,2})/(?P<day>\d{1,2})/(?P<slug>[-\w]*)/$`), (*NewsHandler).detail},
	{RouteCategory, regexp.MustCompile(`^(?P<category>[-\w]+)/$`), (*NewsHandler).category},
	{RouteCategoryFeed, regexp.MustCompile(`^(?P<category>[-\w]+)/feed/$`), (*NewsHandler).categoryFeed},
	{RouteCategoryNewsDetail, regexp.MustCompile(`^(?P<category>[-\w]+)/(?P<year>\d{4})/(?P<month>\d{1,2})/(?P<day>\d{1,2})/(?P<slug>[-\w]*)/$`), (*NewsHandler).detail},
	{RouteLatestNewsPlugin, regexp.MustCompile(`^plugins/latest/(?P<id>\d+)/$`), (*NewsHandler).latestPlugin},
}

type resolved struct {
	Name     string
	Language string
	Params   map[string]string
	view     viewFunc
}

// resolve matches path, relative to /<language>/<prefix>/, against the route table.
func resolve(path string) (resolved, bool) {
	for _, p := range patterns {
		m := p.re.FindStringSubmatch(path)
		if m == nil {
			continue
		}

		params := make(map[string]string)
		for i, name := range p.re.SubexpNames() {
			if name != "" {
				params[name] = m[i]
			}
		}

		return resolved{Name: p.name, Params: params, view: p.view}, true
	}

	return resolved{}, false
}

// Dispatch serves every public news page. Paths missing the trailing slash are redirected
// when the slashed path resolves.
func (h *NewsHandler) Dispatch(c echo.Context) error {
	language := c.Param("lang")
	if !h.manager.IsLanguage(language) {
		return h.renderError(c, http.StatusNotFound, nil)
	}

	rest := strings.TrimPrefix(c.Param("*"), "/")
	r, ok := resolve(rest)
	if !ok {
		if _, slashed := resolve(rest + "/"); !strings.HasSuffix(rest, "/") && slashed {
			return h.appendSlash(c)
		}
		return h.renderError(c, http.StatusNotFound, nil)
	}
	r.Language = language

	return r.view(h, c, r)
}

// appendSlash redirects to the same path with a trailing slash, keeping the query.
func (h *NewsHandler) appendSlash(c echo.Context) error {
	u := *c.Request().URL
	u.Path += "/"
	u.RawPath = ""

	return c.Redirect(http.StatusMovedPermanently, u.RequestURI())
}

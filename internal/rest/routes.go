package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/swaggo/swag"

	"github.com/daniilsolovey/news-cms/internal/sitemap"
)

const (
	// API paths
	apiV1Prefix = "/api/v1"

	healthPath  = "/health"
	metricsPath = "/metrics"
	sitemapPath = "/sitemap.xml"
	swaggerPath = "/swagger/doc.json"

	contentTypeRSS = "application/rss+xml; charset=utf-8"
)

// RegisterRoutes installs the middleware chain, the JSON API and the language prefixed news pages.
func (h *NewsHandler) RegisterRoutes(e *echo.Echo) {
	e.Renderer = h.renderer

	e.Use(middleware.Recover())
	e.Use(h.requestLogger())
	e.Use(h.metrics.Middleware())
	e.Use(h.Authenticate())

	h.registerAPIRoutes(e.Group(apiV1Prefix))

	e.GET(healthPath, h.Health)
	e.GET(metricsPath, echo.WrapHandler(h.metrics.Handler()))
	e.GET(sitemapPath, h.Sitemap)
	e.GET(swaggerPath, h.SwaggerDoc)

	h.registerNewsRoutes(e)
}

func (h *NewsHandler) registerAPIRoutes(g *echo.Group) {
	g.GET("/news", h.News)
	g.GET("/news/count", h.NewsCount)
	g.GET("/news/:id", h.NewsByID)
	g.GET("/categories", h.Categories)
	g.GET("/tags", h.Tags)
	g.GET("/months", h.Months)
	g.GET("/menu", h.Menu)
	g.GET("/toolbar", h.Toolbar)
	g.GET("/search", h.Search)
	g.GET("/plugins/latest/:id", h.LatestNewsPlugin)
}

// registerNewsRoutes mounts the public pages below /:lang/<prefix>/.
func (h *NewsHandler) registerNewsRoutes(e *echo.Echo) {
	base := "/:lang"
	if prefix := h.manager.URLs().Prefix(); prefix != "" {
		base += "/" + prefix
		e.GET(base, func(c echo.Context) error {
			if !h.manager.IsLanguage(c.Param("lang")) {
				return h.renderError(c, http.StatusNotFound, nil)
			}
			return h.appendSlash(c)
		})
	}

	e.GET(base+"/*", h.Dispatch)
}

// Health handles GET /health
// @Summary Health check
// @Description Reports whether the database is reachable
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *NewsHandler) Health(c echo.Context) error {
	if h.db != nil {
		if err := h.db.Ping(c.Request().Context()); err != nil {
			return h.handleError(c, err, http.StatusServiceUnavailable, "database unavailable")
		}
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Sitemap handles GET /sitemap.xml
// @Summary Sitemap
// @Description Lists every published news translation and every category translation
// @Tags system
// @Produce xml
// @Success 200 {string} string
// @Failure 500 {object} map[string]string
// @Router /sitemap.xml [get]
func (h *NewsHandler) Sitemap(c echo.Context) error {
	set, err := h.sitemap.Build(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)

	return sitemap.Write(c.Response(), set)
}

// SwaggerDoc serves the registered OpenAPI document.
func (h *NewsHandler) SwaggerDoc(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err, http.StatusNotFound, "api documentation is not registered")
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, []byte(doc))
}

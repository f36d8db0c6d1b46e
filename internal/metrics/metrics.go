package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	registry *prometheus.Registry

	RequestCounter  *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	FeedCounter     *prometheus.CounterVec
	IndexOperations *prometheus.CounterVec
	MenuRequests    *prometheus.CounterVec
	CacheOperations *prometheus.CounterVec
}

func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),

		RequestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "news_http_requests_total", Help: "Total HTTP requests"},
			[]string{"method", "route", "status"}),

		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Name: "news_http_request_duration_seconds", Help: "HTTP request latency", Buckets: prometheus.DefBuckets},
			[]string{"method", "route"}),

		FeedCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "news_feed_renders_total", Help: "Total RSS feeds rendered"},
			[]string{"feed"}),

		IndexOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "news_search_index_operations_total", Help: "Total search index operations"},
			[]string{"operation", "result"}),

		MenuRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "news_menu_requests_total", Help: "Total menu requests"},
			[]string{"language"}),

		CacheOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "news_cache_operations_total", Help: "Total menu cache operations"},
			[]string{"operation", "result"}),
	}

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.RequestCounter,
		c.RequestDuration,
		c.FeedCounter,
		c.IndexOperations,
		c.MenuRequests,
		c.CacheOperations,
	)

	return c
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Middleware records count and latency per registered route.
func (c *Collector) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)

			status := ctx.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			route := ctx.Path()
			if route == "" {
				route = "unmatched"
			}

			c.RequestCounter.WithLabelValues(ctx.Request().Method, route, strconv.Itoa(status)).Inc()
			c.RequestDuration.WithLabelValues(ctx.Request().Method, route).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// IndexOperation counts a search index call by outcome.
func (c *Collector) IndexOperation(operation string, err error) {
	c.IndexOperations.WithLabelValues(operation, result(err)).Inc()
}

func (c *Collector) CacheOperation(operation string, err error) {
	c.CacheOperations.WithLabelValues(operation, result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

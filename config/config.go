package config

import (
	"time"

	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database pg.Options
	App      App
	Admin    Admin
	Search   Search
	Redis    Redis
	Sentry   Sentry
}

type App struct {
	Host string
	Port int

	// SiteName is used in feed titles, SiteURL prefixes absolute links in feeds and sitemaps.
	SiteName string
	SiteURL  string
	// Prefix is the path segment the news app is mounted on below the language segment.
	Prefix          string
	Languages       []string
	DefaultLanguage string
	PageSize        int
	FeedSize        int
	LogQueries      bool
}

type Admin struct {
	// URL is the base of the editor UI, toolbar links point below it.
	URL   string
	Users []AdminUser
}

type AdminUser struct {
	Name        string
	Token       string
	Permissions []string
}

type Search struct {
	Enabled bool
	Host    string
	APIKey  string
	Index   string
}

type Redis struct {
	Addr string
	TTL  time.Duration
}

type Sentry struct {
	DSN         string
	Environment string
}

// WithDefaults fills zero values with the defaults the service relies on.
func (c Config) WithDefaults() Config {
	if c.App.Port == 0 {
		c.App.Port = 3000
	}
	if c.App.SiteName == "" {
		c.App.SiteName = "News"
	}
	if c.App.Prefix == "" {
		c.App.Prefix = "news"
	}
	if len(c.App.Languages) == 0 {
		c.App.Languages = []string{"en"}
	}
	if c.App.DefaultLanguage == "" {
		c.App.DefaultLanguage = c.App.Languages[0]
	}
	if c.App.PageSize < 1 {
		c.App.PageSize = 10
	}
	if c.App.FeedSize < 1 {
		c.App.FeedSize = 10
	}
	if c.Admin.URL == "" {
		c.Admin.URL = "/admin/"
	}
	if c.Search.Index == "" {
		c.Search.Index = "news"
	}
	if c.Redis.TTL == 0 {
		c.Redis.TTL = time.Hour
	}
	return c
}

package newsportal

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var reservedCategorySlugs = map[string]struct{}{
	"feed":    {},
	"tagged":  {},
	"plugins": {},
}

// ReservedCategorySlug reports whether a category slug collides with a fixed route segment or a year.
func ReservedCategorySlug(slug string) bool {
	if _, ok := reservedCategorySlugs[strings.ToLower(slug)]; ok {
		return true
	}
	if len(slug) != 4 {
		return false
	}
	for _, r := range slug {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// URLBuilder reverses the public news routes. Every path is mounted below /<language>/<prefix>/.
type URLBuilder struct {
	prefix string
}

func NewURLBuilder(prefix string) *URLBuilder {
	return &URLBuilder{prefix: strings.Trim(prefix, "/")}
}

func (u *URLBuilder) Prefix() string {
	return u.prefix
}

func (u *URLBuilder) path(language string, parts ...string) string {
	var b strings.Builder
	b.WriteString("/")
	b.WriteString(language)
	b.WriteString("/")
	if u.prefix != "" {
		b.WriteString(u.prefix)
		b.WriteString("/")
	}
	for _, p := range parts {
		b.WriteString(p)
		b.WriteString("/")
	}
	return b.String()
}

func (u *URLBuilder) Archive(language string) string {
	return u.path(language)
}

func (u *URLBuilder) LatestFeed(language string) string {
	return u.path(language, "feed")
}

func (u *URLBuilder) Tagged(language, tag string) string {
	return u.path(language, "tagged", tag)
}

func (u *URLBuilder) TaggedFeed(language, tag string) string {
	return u.path(language, "tagged", tag, "feed")
}

func (u *URLBuilder) Year(language string, year int) string {
	return u.path(language, fmt.Sprintf("%04d", year))
}

func (u *URLBuilder) Month(language string, year, month int) string {
	return u.path(language, fmt.Sprintf("%04d", year), strconv.Itoa(month))
}

// Detail uses the UTC publication date without zero padding.
func (u *URLBuilder) Detail(language string, date time.Time, slug string) string {
	y, m, d := date.UTC().Date()
	return u.path(language, fmt.Sprintf("%04d", y), strconv.Itoa(int(m)), strconv.Itoa(d), slug)
}

func (u *URLBuilder) Category(language, category string) string {
	return u.path(language, category)
}

func (u *URLBuilder) CategoryFeed(language, category string) string {
	return u.path(language, category, "feed")
}

func (u *URLBuilder) CategoryDetail(language, category string, date time.Time, slug string) string {
	y, m, d := date.UTC().Date()
	return u.path(language, category, fmt.Sprintf("%04d", y), strconv.Itoa(int(m)), strconv.Itoa(d), slug)
}

func (u *URLBuilder) LatestPlugin(language string, pluginID int) string {
	return u.path(language, "plugins", "latest", strconv.Itoa(pluginID))
}

// NewsDetail links the news in language, the slug falls back to the id when the translation has none.
func (u *URLBuilder) NewsDetail(n News, language string) string {
	slug := ""
	for _, tr := range n.Translations {
		if tr.LanguageCode == language {
			slug = tr.Slug
			break
		}
	}
	if slug == "" {
		slug = strconv.Itoa(n.ID)
	}
	return u.Detail(language, n.PublicationStart, slug)
}

// NewsURL is the link used in lists and feeds.
func (u *URLBuilder) NewsURL(n News, language string) string {
	if n.ExternalURL != nil && *n.ExternalURL != "" {
		return *n.ExternalURL
	}
	return u.NewsDetail(n, language)
}

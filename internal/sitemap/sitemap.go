package sitemap

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/daniilsolovey/news-cms/internal/newsportal"
)

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

type URL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float64 `xml:"priority"`
}

// Builder lists published news and categories of every configured language.
type Builder struct {
	manager *newsportal.Manager
	siteURL string
}

func New(manager *newsportal.Manager, siteURL string) *Builder {
	return &Builder{
		manager: manager,
		siteURL: strings.TrimSuffix(siteURL, "/"),
	}
}

func (b *Builder) Build(ctx context.Context) (*URLSet, error) {
	set := &URLSet{Xmlns: xmlns}

	for _, language := range b.manager.Languages() {
		news, err := b.manager.NewsByFilter(ctx, newsportal.NewsFilter{Language: language})
		if err != nil {
			return nil, fmt.Errorf("news in %s: %w", language, err)
		}
		set.URLs = append(set.URLs, NewsURLs(b.siteURL, b.manager.URLs(), language, news)...)
	}

	for _, language := range b.manager.Languages() {
		categories, err := b.manager.Categories(ctx, language)
		if err != nil {
			return nil, fmt.Errorf("categories in %s: %w", language, err)
		}
		set.URLs = append(set.URLs, CategoryURLs(b.siteURL, categories)...)
	}

	return set, nil
}

// NewsURLs links the detail page of every news item in language.
func NewsURLs(siteURL string, urls *newsportal.URLBuilder, language string, news []newsportal.News) []URL {
	r := make([]URL, len(news))
	for i, n := range news {
		r[i] = URL{
			Loc:        siteURL + urls.NewsDetail(n, language),
			LastMod:    n.PublicationStart.UTC().Format(time.RFC3339),
			ChangeFreq: "yearly",
			Priority:   0.5,
		}
	}
	return r
}

func CategoryURLs(siteURL string, categories []newsportal.Category) []URL {
	r := make([]URL, len(categories))
	for i, c := range categories {
		r[i] = URL{
			Loc:        siteURL + c.URL,
			ChangeFreq: "never",
			Priority:   0.5,
		}
	}
	return r
}

func Write(w io.Writer, set *URLSet) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("encode sitemap: %w", err)
	}

	return enc.Flush()
}

package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gorilla/feeds"

	"github.com/daniilsolovey/news-cms/internal/newsportal"
)

// Service builds RSS feeds of published news.
type Service struct {
	manager  *newsportal.Manager
	siteName string
	siteURL  string
	size     int
}

func New(manager *newsportal.Manager, siteName, siteURL string, size int) *Service {
	if size < 1 {
		size = 10
	}

	return &Service{
		manager:  manager,
		siteName: siteName,
		siteURL:  strings.TrimSuffix(siteURL, "/"),
		size:     size,
	}
}

// Latest is the feed of the newest news in language.
func (s *Service) Latest(ctx context.Context, language string) (*feeds.Feed, error) {
	news, err := s.manager.NewsByFilter(ctx, newsportal.NewsFilter{Language: language, Page: 1, PageSize: s.size})
	if err != nil {
		return nil, fmt.Errorf("latest news: %w", err)
	}

	return s.build(language, s.manager.URLs().Archive(language), "", news), nil
}

// Tagged returns an empty feed for unknown tags.
func (s *Service) Tagged(ctx context.Context, language, tagSlug string) (*feeds.Feed, error) {
	tag, err := s.manager.TagBySlug(ctx, language, tagSlug)
	if errors.Is(err, newsportal.ErrNotFound) {
		return s.build(language, s.manager.URLs().Tagged(language, tagSlug), "", nil), nil
	} else if err != nil {
		return nil, fmt.Errorf("tag by slug: %w", err)
	}

	news, err := s.manager.NewsByFilter(ctx, newsportal.NewsFilter{Language: language, TagID: &tag.ID, Page: 1, PageSize: s.size})
	if err != nil {
		return nil, fmt.Errorf("tagged news: %w", err)
	}

	return s.build(language, tag.URL, tag.Name, news), nil
}

// Category returns newsportal.ErrNotFound for unknown categories.
func (s *Service) Category(ctx context.Context, language, categorySlug string) (*feeds.Feed, error) {
	category, err := s.manager.CategoryBySlug(ctx, language, categorySlug)
	if err != nil {
		return nil, err
	}

	news, err := s.manager.NewsByFilter(ctx, newsportal.NewsFilter{Language: language, CategoryID: &category.ID, Page: 1, PageSize: s.size})
	if err != nil {
		return nil, fmt.Errorf("category news: %w", err)
	}

	return s.build(language, category.URL, category.Name, news), nil
}

func (s *Service) build(language, link, subject string, news []newsportal.News) *feeds.Feed {
	feed := &feeds.Feed{
		Title:       "News on " + s.siteName,
		Link:        &feeds.Link{Href: s.absolute(link)},
		Description: "News on " + s.siteName,
		Created:     time.Now(),
	}
	if subject != "" {
		feed.Description = subject + ": news on " + s.siteName
	}
	if len(news) > 0 {
		feed.Created = news[0].PublicationStart
	}

	for _, n := range news {
		feed.Items = append(feed.Items, &feeds.Item{
			Title:       n.Title,
			Link:        &feeds.Link{Href: s.absolute(n.URL)},
			Description: n.LeadIn,
			Id:          s.absolute(s.manager.URLs().NewsDetail(n, language)),
			Created:     n.PublicationStart,
		})
	}

	return feed
}

func (s *Service) absolute(link string) string {
	if strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
		return link
	}
	return s.siteURL + link
}

// WriteRSS writes the feed as RSS 2.0 with the channel language set.
func WriteRSS(w io.Writer, feed *feeds.Feed, language string) error {
	rss := (&feeds.Rss{Feed: feed}).RssFeed()
	rss.Language = language

	return feeds.WriteXML(rss, w)
}

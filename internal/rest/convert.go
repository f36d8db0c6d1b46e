package rest

import (
	"time"

	"github.com/daniilsolovey/news-cms/internal/newsportal"
	"github.com/daniilsolovey/news-cms/internal/search"
)

func NewImage(i newsportal.Image) Image {
	return Image{
		ImageID: i.ID,
		URL:     i.URL,
		Alt:     i.Alt,
	}
}

func NewCategory(c newsportal.Category) Category {
	return Category{
		CategoryID: c.ID,
		Ordering:   c.Ordering,
		Name:       c.Name,
		Slug:       c.Slug,
		URL:        c.URL,
	}
}

func NewCategoryCount(c newsportal.CategoryCount) CategoryCount {
	return CategoryCount{
		Category: NewCategory(c.Category),
		Count:    c.Count,
	}
}

func NewTag(t newsportal.Tag) Tag {
	return Tag{
		TagID: t.ID,
		Name:  t.Name,
		Slug:  t.Slug,
		URL:   t.URL,
	}
}

func NewTagCount(t newsportal.TagCount) TagCount {
	return TagCount{
		Tag:   NewTag(t.Tag),
		Count: t.Count,
	}
}

func NewMonthCount(urls *newsportal.URLBuilder, language string, m newsportal.MonthCount) MonthCount {
	return MonthCount{
		Year:  m.Date.Year(),
		Month: int(m.Date.Month()),
		Count: m.Count,
		URL:   urls.Month(language, m.Date.Year(), int(m.Date.Month())),
	}
}

func NewNewsSummary(n newsportal.News) NewsSummary {
	summary := NewsSummary{
		NewsID:           n.ID,
		Language:         n.Language,
		Title:            n.Title,
		Slug:             n.Slug,
		LeadIn:           n.LeadIn,
		URL:              n.URL,
		PublicationStart: n.PublicationStart,
		PublicationEnd:   n.PublicationEnd,
		ExternalURL:      n.ExternalURL,
		Tags:             NewTags(n.Tags),
	}

	if n.KeyVisual != nil {
		image := NewImage(newsportal.NewImage(n.KeyVisual))
		summary.KeyVisual = &image
	}

	if n.Category != nil {
		category := NewCategory(*n.Category)
		summary.Category = &category
	}

	return summary
}

func NewAlternate(a newsportal.Alternate) Alternate {
	return Alternate{
		Language: a.Language,
		Title:    a.Title,
		URL:      a.URL,
	}
}

func NewSearchResult(d search.Document) SearchResult {
	return SearchResult{
		NewsID:   d.NewsID,
		Language: d.Language,
		Title:    d.Title,
		URL:      d.URL,
		Date:     time.Unix(d.Date, 0).UTC(),
	}
}

package rpc

import (
	"time"

	"github.com/daniilsolovey/news-cms/internal/db"
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
	category := Category{
		CategoryID:   c.ID,
		Ordering:     c.Ordering,
		Language:     c.Language,
		Name:         c.Name,
		Slug:         c.Slug,
		URL:          c.URL,
		Translations: make([]Name, len(c.Translations)),
	}
	for i, t := range c.Translations {
		category.Translations[i] = Name{Language: t.LanguageCode, Name: t.Name, Slug: t.Slug}
	}

	return category
}

func NewTag(t newsportal.Tag) Tag {
	tag := Tag{
		TagID:        t.ID,
		Language:     t.Language,
		Name:         t.Name,
		Slug:         t.Slug,
		URL:          t.URL,
		Translations: make([]Name, len(t.Translations)),
	}
	for i, tr := range t.Translations {
		tag.Translations[i] = Name{Language: tr.LanguageCode, Name: tr.Name, Slug: tr.Slug}
	}

	return tag
}

func NewNewsSummary(n newsportal.News) NewsSummary {
	summary := NewsSummary{
		NewsID:           n.ID,
		Language:         n.Language,
		Title:            n.Title,
		Slug:             n.Slug,
		URL:              n.URL,
		PublicationStart: n.PublicationStart,
		PublicationEnd:   n.PublicationEnd,
		Published:        n.IsPublished(time.Now()),
		Tags:             NewTags(n.Tags),
	}

	if n.Category != nil {
		category := NewCategory(*n.Category)
		summary.Category = &category
	}

	return summary
}

// NewNews converts a news item with the blocks of every language.
func NewNews(n newsportal.News, blocks []newsportal.ContentBlock) News {
	news := News{
		NewsSummary:  NewNewsSummary(n),
		LeadIn:       n.LeadIn,
		ExternalURL:  n.ExternalURL,
		TagIDs:       n.TagIDs,
		CreatedAt:    n.CreatedAt,
		UpdatedAt:    n.UpdatedAt,
		Translations: NewTranslations(n.Translations),
		Blocks:       NewContentBlocks(blocks),
	}

	if n.KeyVisual != nil {
		image := NewImage(newsportal.NewImage(n.KeyVisual))
		news.KeyVisual = &image
	}

	return news
}

func NewTranslation(t db.NewsTranslation) Translation {
	return Translation{
		Language: t.LanguageCode,
		Title:    t.Title,
		Slug:     t.Slug,
		LeadIn:   t.LeadIn,
	}
}

func NewContentBlock(b newsportal.ContentBlock) ContentBlock {
	return ContentBlock{
		Language:   b.LanguageCode,
		Position:   b.Position,
		PluginType: b.PluginType,
		Body:       b.Body,
		PluginID:   b.PluginID,
	}
}

func NewPlugin(p newsportal.LatestNewsPlugin) Plugin {
	return Plugin{
		PluginID:      p.ID,
		Language:      p.LanguageCode,
		LatestEntries: p.LatestEntries,
		TagIDs:        p.TagIDs,
		Tags:          NewTags(p.Tags),
	}
}

func NewSearchResult(d search.Document) SearchResult {
	return SearchResult{
		NewsID:   d.NewsID,
		Language: d.Language,
		Title:    d.Title,
		Text:     d.Text,
		URL:      d.URL,
		Date:     time.Unix(d.Date, 0).UTC(),
	}
}

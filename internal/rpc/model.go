package rpc

import (
	"time"

	"github.com/daniilsolovey/news-cms/internal/newsportal"
)

type NewsFilter struct {
	//lang language of titles and urls
	Language string `json:"lang"`
	//tagId optional tag filter
	TagID *int `json:"tagId,omitempty"`
	//categoryId optional category filter
	CategoryID *int `json:"categoryId,omitempty"`
	//year optional publication year
	Year int `json:"year,omitempty"`
	//month optional publication month, requires year
	Month int `json:"month,omitempty"`
	//page=1 page number (1-based)
	Page *int `json:"page,omitempty"`
	//pageSize=10 items per page
	PageSize *int `json:"pageSize,omitempty"`
}

// ToModel lists every news item regardless of its publication window.
func (f NewsFilter) ToModel() newsportal.NewsFilter {
	filter := newsportal.NewsFilter{
		Language:   f.Language,
		TagID:      f.TagID,
		CategoryID: f.CategoryID,
		Year:       f.Year,
		Month:      f.Month,
		Preview:    true,
		Page:       1,
		PageSize:   10,
	}
	if f.Page != nil && *f.Page > 0 {
		filter.Page = *f.Page
	}
	if f.PageSize != nil && *f.PageSize > 0 {
		filter.PageSize = min(*f.PageSize, 100)
	}

	return filter
}

type Image struct {
	ImageID int    `json:"imageId"`
	URL     string `json:"url"`
	Alt     string `json:"alt"`
}

type ImageInput struct {
	ImageID int    `json:"imageId,omitempty"`
	URL     string `json:"url"`
	Alt     string `json:"alt"`
}

func (in ImageInput) ToModel() newsportal.ImageInput {
	return newsportal.ImageInput{ID: in.ImageID, URL: in.URL, Alt: in.Alt}
}

// Name is a translation of a category or tag. An empty slug is derived from the name.
type Name struct {
	Language string `json:"language"`
	Name     string `json:"name"`
	Slug     string `json:"slug,omitempty"`
}

type Category struct {
	CategoryID   int    `json:"categoryId"`
	Ordering     int    `json:"ordering"`
	Language     string `json:"language"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	URL          string `json:"url"`
	Translations []Name `json:"translations"`
}

type CategoryInput struct {
	CategoryID   int    `json:"categoryId,omitempty"`
	Ordering     int    `json:"ordering"`
	Translations []Name `json:"translations"`
}

func (in CategoryInput) ToModel() newsportal.CategoryInput {
	return newsportal.CategoryInput{
		ID:           in.CategoryID,
		Ordering:     in.Ordering,
		Translations: names(in.Translations),
	}
}

type CategoryOrdering struct {
	CategoryID int `json:"categoryId"`
	Ordering   int `json:"ordering"`
}

type Tag struct {
	TagID        int    `json:"tagId"`
	Language     string `json:"language"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	URL          string `json:"url"`
	Translations []Name `json:"translations"`
}

type TagInput struct {
	TagID        int    `json:"tagId,omitempty"`
	Translations []Name `json:"translations"`
}

func (in TagInput) ToModel() newsportal.TagInput {
	return newsportal.TagInput{ID: in.TagID, Translations: names(in.Translations)}
}

func names(in []Name) []newsportal.NameInput {
	r := make([]newsportal.NameInput, len(in))
	for i, n := range in {
		r[i] = newsportal.NameInput{LanguageCode: n.Language, Name: n.Name, Slug: n.Slug}
	}
	return r
}

type Translation struct {
	Language string `json:"language"`
	Title    string `json:"title"`
	Slug     string `json:"slug,omitempty"`
	LeadIn   string `json:"leadIn"`
}

type ContentBlock struct {
	Language string `json:"language"`
	Position int    `json:"position"`
	// PluginType is text or latest_news.
	PluginType string `json:"pluginType"`
	Body       string `json:"body,omitempty"`
	PluginID   *int   `json:"pluginId,omitempty"`
}

type NewsSummary struct {
	NewsID           int        `json:"newsId"`
	Language         string     `json:"language"`
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	URL              string     `json:"url"`
	PublicationStart time.Time  `json:"publicationStart"`
	PublicationEnd   *time.Time `json:"publicationEnd,omitempty"`
	Published        bool       `json:"published"`
	Category         *Category  `json:"category,omitempty"`
	Tags             []Tag      `json:"tags"`
}

type News struct {
	NewsSummary

	LeadIn       string         `json:"leadIn"`
	ExternalURL  *string        `json:"externalUrl,omitempty"`
	KeyVisual    *Image         `json:"keyVisual,omitempty"`
	TagIDs       []int          `json:"tagIds"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    *time.Time     `json:"updatedAt,omitempty"`
	Translations []Translation  `json:"translations"`
	Blocks       []ContentBlock `json:"blocks"`
}

type NewsInput struct {
	NewsID      int  `json:"newsId,omitempty"`
	CategoryID  *int `json:"categoryId,omitempty"`
	KeyVisualID *int `json:"keyVisualId,omitempty"`
	// PublicationStart defaults to now for new news and is kept on updates when empty.
	PublicationStart *time.Time `json:"publicationStart,omitempty"`
	PublicationEnd   *time.Time `json:"publicationEnd,omitempty"`
	ExternalURL      string     `json:"externalUrl,omitempty"`
	TagIDs           []int      `json:"tagIds,omitempty"`
	// TagNames is a comma separated list of tag names, quoted names may contain commas.
	TagNames     string         `json:"tagNames,omitempty"`
	Translations []Translation  `json:"translations"`
	Blocks       []ContentBlock `json:"blocks"`
}

func (in NewsInput) ToModel() newsportal.NewsInput {
	news := newsportal.NewsInput{
		ID:               in.NewsID,
		CategoryID:       in.CategoryID,
		KeyVisualID:      in.KeyVisualID,
		PublicationStart: in.PublicationStart,
		PublicationEnd:   in.PublicationEnd,
		ExternalURL:      in.ExternalURL,
		TagIDs:           in.TagIDs,
		TagNames:         in.TagNames,
		Translations:     make([]newsportal.TranslationInput, len(in.Translations)),
		Blocks:           make([]newsportal.ContentBlockInput, len(in.Blocks)),
	}

	for i, t := range in.Translations {
		news.Translations[i] = newsportal.TranslationInput{
			LanguageCode: t.Language,
			Title:        t.Title,
			Slug:         t.Slug,
			LeadIn:       t.LeadIn,
		}
	}

	for i, b := range in.Blocks {
		news.Blocks[i] = newsportal.ContentBlockInput{
			LanguageCode: b.Language,
			PluginType:   b.PluginType,
			Body:         b.Body,
			PluginID:     b.PluginID,
		}
	}

	return news
}

type Plugin struct {
	PluginID      int    `json:"pluginId"`
	Language      string `json:"language"`
	LatestEntries int    `json:"latestEntries"`
	TagIDs        []int  `json:"tagIds"`
	Tags          []Tag  `json:"tags"`
}

type PluginInput struct {
	PluginID      int    `json:"pluginId,omitempty"`
	Language      string `json:"language"`
	LatestEntries int    `json:"latestEntries"`
	TagIDs        []int  `json:"tagIds"`
}

func (in PluginInput) ToModel() newsportal.PluginInput {
	return newsportal.PluginInput{
		ID:            in.PluginID,
		LanguageCode:  in.Language,
		LatestEntries: in.LatestEntries,
		TagIDs:        in.TagIDs,
	}
}

type SearchResult struct {
	NewsID   int       `json:"newsId"`
	Language string    `json:"language"`
	Title    string    `json:"title"`
	Text     string    `json:"text"`
	URL      string    `json:"url"`
	Date     time.Time `json:"date"`
}

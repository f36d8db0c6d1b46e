package rest

import (
	"time"

	"github.com/go-pg/urlstruct"
)

// NewsQuery is decoded from the query string of the news list endpoints.
type NewsQuery struct {
	urlstruct.Pager

	Lang       string `urlstruct:"lang"`
	TagID      int    `urlstruct:"tag_id"`
	CategoryID int    `urlstruct:"category_id"`
	Year       int    `urlstruct:"year"`
	Month      int    `urlstruct:"month"`
}

type TagsQuery struct {
	Lang string `urlstruct:"lang"`
	IDs  []int  `urlstruct:"ids"`
}

type SearchQuery struct {
	urlstruct.Pager

	Q    string `urlstruct:"q"`
	Lang string `urlstruct:"lang"`
}

type Image struct {
	ImageID int    `json:"imageId"`
	URL     string `json:"url"`
	Alt     string `json:"alt"`
}

type Category struct {
	CategoryID int    `json:"categoryId"`
	Ordering   int    `json:"ordering"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	URL        string `json:"url"`
}

type CategoryCount struct {
	Category
	Count int `json:"count"`
}

type Tag struct {
	TagID int    `json:"tagId"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	URL   string `json:"url"`
}

type TagCount struct {
	Tag
	Count int `json:"count"`
}

type MonthCount struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Count int    `json:"count"`
	URL   string `json:"url"`
}

type NewsSummary struct {
	NewsID           int        `json:"newsId"`
	Language         string     `json:"language"`
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	LeadIn           string     `json:"leadIn"`
	URL              string     `json:"url"`
	PublicationStart time.Time  `json:"publicationStart"`
	PublicationEnd   *time.Time `json:"publicationEnd,omitempty"`
	ExternalURL      *string    `json:"externalUrl,omitempty"`
	KeyVisual        *Image     `json:"keyVisual,omitempty"`
	Category         *Category  `json:"category,omitempty"`
	Tags             []Tag      `json:"tags"`
}

type News struct {
	NewsSummary

	Blocks     []ContentBlock `json:"blocks"`
	Alternates []Alternate    `json:"alternates"`
}

type ContentBlock struct {
	Position   int    `json:"position"`
	PluginType string `json:"pluginType"`
	Body       string `json:"body,omitempty"`
	// News is filled for latest_news blocks.
	News []NewsSummary `json:"news,omitempty"`
}

type Alternate struct {
	Language string `json:"language"`
	Title    string `json:"title"`
	URL      string `json:"url"`
}

type SearchResult struct {
	NewsID   int       `json:"newsId"`
	Language string    `json:"language"`
	Title    string    `json:"title"`
	URL      string    `json:"url"`
	Date     time.Time `json:"date"`
}

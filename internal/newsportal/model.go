package newsportal

import (
	"time"

	"github.com/daniilsolovey/news-cms/internal/db"
)

type Image struct {
	db.Image
}

type Category struct {
	db.Category

	// Language, Name and Slug come from the translation chosen for the request.
	Language string
	Name     string
	Slug     string
	URL      string
}

type Tag struct {
	db.Tag

	Language string
	Name     string
	Slug     string
	URL      string
}

type News struct {
	db.News

	Language string
	Title    string
	Slug     string
	LeadIn   string
	// URL points to the detail page or to the external URL when one is set.
	URL string

	Category *Category
	Tags     []Tag
}

// IsPublished reports whether the publication window contains now.
func (n News) IsPublished(now time.Time) bool {
	if n.PublicationStart.After(now) {
		return false
	}
	return n.PublicationEnd == nil || !n.PublicationEnd.Before(now)
}

type ContentBlock struct {
	db.ContentBlock

	// Plugin is set for latest_news blocks.
	Plugin *LatestNewsPlugin
}

type LatestNewsPlugin struct {
	db.LatestNewsPlugin

	Tags []Tag
}

type NewsFilter struct {
	Language   string
	CategoryID *int
	TagID      *int
	Year       int
	Month      int
	// Preview includes news outside of the publication window.
	Preview  bool
	Page     int
	PageSize int
}

type MonthCount struct {
	Date  time.Time
	Count int
}

type TagCount struct {
	Tag   Tag
	Count int
}

type CategoryCount struct {
	Category Category
	Count    int
}

// Alternate is the same news item in another language.
type Alternate struct {
	Language string
	Title    string
	URL      string
}

type MenuNode struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

type ToolbarItem struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type ToolbarMenu struct {
	Title string        `json:"title"`
	Items []ToolbarItem `json:"items"`
}

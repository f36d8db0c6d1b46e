package db

import (
	"time"
)

const (
	PluginTypeText       = "text"
	PluginTypeLatestNews = "latest_news"
)

type Image struct {
	tableName struct{} `pg:"images,alias:t,discard_unknown_columns"`

	ID  int    `pg:"imageId,pk"`
	URL string `pg:"url,use_zero"`
	Alt string `pg:"alt,use_zero"`
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID       int `pg:"categoryId,pk"`
	Ordering int `pg:"ordering,use_zero"`

	Translations []CategoryTranslation `pg:"rel:has-many,join_fk:categoryId"`
}

type CategoryTranslation struct {
	tableName struct{} `pg:"categoryTranslations,alias:t,discard_unknown_columns"`

	CategoryID   int    `pg:"categoryId,pk"`
	LanguageCode string `pg:"languageCode,pk"`
	Name         string `pg:"name,use_zero"`
	Slug         string `pg:"slug,use_zero"`
}

type Tag struct {
	tableName struct{} `pg:"tags,alias:t,discard_unknown_columns"`

	ID int `pg:"tagId,pk"`

	Translations []TagTranslation `pg:"rel:has-many,join_fk:tagId"`
}

type TagTranslation struct {
	tableName struct{} `pg:"tagTranslations,alias:t,discard_unknown_columns"`

	TagID        int    `pg:"tagId,pk"`
	LanguageCode string `pg:"languageCode,pk"`
	Name         string `pg:"name,use_zero"`
	Slug         string `pg:"slug,use_zero"`
}

type News struct {
	tableName struct{} `pg:"news,alias:t,discard_unknown_columns"`

	ID               int        `pg:"newsId,pk"`
	CategoryID       *int       `pg:"categoryId"`
	KeyVisualID      *int       `pg:"keyVisualId"`
	PublicationStart time.Time  `pg:"publicationStart,use_zero"`
	PublicationEnd   *time.Time `pg:"publicationEnd"`
	ExternalURL      *string    `pg:"externalUrl"`
	TagIDs           []int      `pg:"tagIds,array,use_zero"`
	CreatedAt        time.Time  `pg:"createdAt,use_zero"`
	UpdatedAt        *time.Time `pg:"updatedAt"`

	KeyVisual    *Image            `pg:"fk:keyVisualId,rel:has-one"`
	Translations []NewsTranslation `pg:"rel:has-many,join_fk:newsId"`
}

type NewsTranslation struct {
	tableName struct{} `pg:"newsTranslations,alias:t,discard_unknown_columns"`

	NewsID       int    `pg:"newsId,pk"`
	LanguageCode string `pg:"languageCode,pk"`
	Title        string `pg:"title,use_zero"`
	Slug         string `pg:"slug,use_zero"`
	LeadIn       string `pg:"leadIn,use_zero"`
}

type ContentBlock struct {
	tableName struct{} `pg:"contentBlocks,alias:t,discard_unknown_columns"`

	ID           int    `pg:"blockId,pk"`
	NewsID       int    `pg:"newsId,use_zero"`
	LanguageCode string `pg:"languageCode,use_zero"`
	Position     int    `pg:"position,use_zero"`
	PluginType   string `pg:"pluginType,use_zero"`
	Body         string `pg:"body,use_zero"`
	PluginID     *int   `pg:"pluginId"`
}

type LatestNewsPlugin struct {
	tableName struct{} `pg:"latestNewsPlugins,alias:t,discard_unknown_columns"`

	ID            int    `pg:"pluginId,pk"`
	LanguageCode  string `pg:"languageCode,use_zero"`
	LatestEntries int    `pg:"latestEntries,use_zero"`
	TagIDs        []int  `pg:"tagIds,array,use_zero"`
}

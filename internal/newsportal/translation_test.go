package newsportal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daniilsolovey/news-cms/internal/db"
)

func TestNews_Translate(t *testing.T) {
	news := News{News: db.News{
		ID: 7,
		Translations: []db.NewsTranslation{
			{LanguageCode: "fr", Title: "Bonjour", Slug: "bonjour"},
			{LanguageCode: "en", Title: "Hello", Slug: "hello"},
			{LanguageCode: "de", Title: "Hallo", Slug: "hallo"},
		},
	}}

	tests := []struct {
		name      string
		language  string
		fallback  string
		wantTitle string
		wantLang  string
	}{
		{"RequestedLanguage", "de", "en", "Hallo", "de"},
		{"FallbackLanguage", "it", "en", "Hello", "en"},
		{"FirstAvailable", "it", "es", "Bonjour", "fr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := news
			n.Translate(tt.language, tt.fallback)
			assert.Equal(t, tt.wantTitle, n.Title)
			assert.Equal(t, tt.wantLang, n.Language)
		})
	}

	t.Run("NoTranslationsFallsBackToID", func(t *testing.T) {
		n := News{News: db.News{ID: 7}}
		n.Translate("en", "en")
		assert.Equal(t, "7", n.Title)
		assert.Empty(t, n.Slug)
	})
}

func TestCategory_Translate(t *testing.T) {
	c := Category{Category: db.Category{ID: 3, Translations: []db.CategoryTranslation{
		{LanguageCode: "en", Name: "Sports", Slug: "sports"},
		{LanguageCode: "de", Name: "Sport", Slug: "sport"},
	}}}

	c.Translate("de", "en")
	assert.Equal(t, "Sport", c.Name)
	assert.Equal(t, "sport", c.Slug)

	empty := Category{Category: db.Category{ID: 3}}
	empty.Translate("de", "en")
	assert.Equal(t, "3", empty.Name)
}

func TestTag_Translate(t *testing.T) {
	tag := Tag{Tag: db.Tag{ID: 1, Translations: []db.TagTranslation{{LanguageCode: "en", Name: "Hot", Slug: "hot"}}}}

	tag.Translate("de", "en")
	assert.Equal(t, "Hot", tag.Name)
	assert.Equal(t, "en", tag.Language)
}

func TestNews_HasTranslation(t *testing.T) {
	news := News{News: db.News{Translations: []db.NewsTranslation{{LanguageCode: "en"}}}}

	assert.True(t, news.HasTranslation("en"))
	assert.False(t, news.HasTranslation("de"))
}

package newsportal

import (
	"strconv"

	"github.com/daniilsolovey/news-cms/internal/db"
)

// pickTranslation returns the translation in language, else in fallback, else the first one.
func pickTranslation[T any](list []T, code func(T) string, language, fallback string) (T, bool) {
	var zero T
	if len(list) == 0 {
		return zero, false
	}

	for _, lang := range []string{language, fallback} {
		if lang == "" {
			continue
		}
		for _, tr := range list {
			if code(tr) == lang {
				return tr, true
			}
		}
	}

	return list[0], true
}

func (n *News) Translate(language, fallback string) {
	tr, ok := pickTranslation(n.Translations, func(t db.NewsTranslation) string { return t.LanguageCode }, language, fallback)
	if !ok {
		n.Language, n.Title, n.Slug, n.LeadIn = "", strconv.Itoa(n.ID), "", ""
		return
	}
	n.Language, n.Title, n.Slug, n.LeadIn = tr.LanguageCode, tr.Title, tr.Slug, tr.LeadIn
}

func (c *Category) Translate(language, fallback string) {
	tr, ok := pickTranslation(c.Translations, func(t db.CategoryTranslation) string { return t.LanguageCode }, language, fallback)
	if !ok {
		c.Language, c.Name, c.Slug = "", strconv.Itoa(c.ID), ""
		return
	}
	c.Language, c.Name, c.Slug = tr.LanguageCode, tr.Name, tr.Slug
}

func (t *Tag) Translate(language, fallback string) {
	tr, ok := pickTranslation(t.Translations, func(t db.TagTranslation) string { return t.LanguageCode }, language, fallback)
	if !ok {
		t.Language, t.Name, t.Slug = "", strconv.Itoa(t.ID), ""
		return
	}
	t.Language, t.Name, t.Slug = tr.LanguageCode, tr.Name, tr.Slug
}

// HasTranslation reports whether the news item is translated into language.
func (n News) HasTranslation(language string) bool {
	for _, tr := range n.Translations {
		if tr.LanguageCode == language {
			return true
		}
	}
	return false
}

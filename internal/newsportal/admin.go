package newsportal

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/go-pg/pg/v10"
	slugify "github.com/gosimple/slug"
	"github.com/microcosm-cc/bluemonday"

	"github.com/daniilsolovey/news-cms/internal/db"
)

const maxFieldLength = 255

var (
	slugRe    = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
	htmlInput = bluemonday.UGCPolicy()
)

type TranslationInput struct {
	LanguageCode string
	Title        string
	Slug         string
	LeadIn       string
}

type ContentBlockInput struct {
	LanguageCode string
	PluginType   string
	Body         string
	PluginID     *int
}

type NewsInput struct {
	ID               int
	CategoryID       *int
	KeyVisualID      *int
	PublicationStart *time.Time
	PublicationEnd   *time.Time
	ExternalURL      string
	TagIDs           []int
	// TagNames are get-or-created in the default language, see ParseTagNames.
	TagNames     string
	Translations []TranslationInput
	Blocks       []ContentBlockInput
}

// NameInput is a translation of a category or tag.
type NameInput struct {
	LanguageCode string
	Name         string
	Slug         string
}

type CategoryInput struct {
	ID           int
	Ordering     int
	Translations []NameInput
}

type TagInput struct {
	ID           int
	Translations []NameInput
}

type ImageInput struct {
	ID  int
	URL string
	Alt string
}

type PluginInput struct {
	ID            int
	LanguageCode  string
	LatestEntries int
	TagIDs        []int
}

// SaveNews validates the input and creates or updates the news item with its translations and content.
func (m *Manager) SaveNews(ctx context.Context, in NewsInput) (*News, error) {
	news := db.News{
		ID:             in.ID,
		CategoryID:     in.CategoryID,
		KeyVisualID:    in.KeyVisualID,
		PublicationEnd: in.PublicationEnd,
		TagIDs:         uniqueInts(in.TagIDs),
	}

	if in.ID != 0 {
		existing, err := m.db.NewsByID(ctx, in.ID, db.NewsSearch{})
		if err != nil {
			return nil, fmt.Errorf("db get news by id: %w", err)
		} else if existing == nil {
			return nil, ErrNotFound
		}
		news.PublicationStart = existing.PublicationStart
		news.CreatedAt = existing.CreatedAt
	} else {
		news.PublicationStart = m.now()
	}

	if in.PublicationStart != nil {
		news.PublicationStart = *in.PublicationStart
	}

	verr := ValidationErrors{}

	if news.PublicationEnd != nil && news.PublicationEnd.Before(news.PublicationStart) {
		verr.add("publicationEnd", "publication end must not be before publication start")
	}

	if in.ExternalURL != "" {
		if !isAbsoluteHTTPURL(in.ExternalURL) {
			verr.add("externalUrl", "enter a valid absolute http(s) URL")
		} else {
			u := in.ExternalURL
			news.ExternalURL = &u
		}
	}

	if err := m.validateReferences(ctx, news, verr); err != nil {
		return nil, err
	}

	translations, err := m.newsTranslations(ctx, in.ID, in.Translations, verr)
	if err != nil {
		return nil, err
	}

	blocks, err := m.contentBlocks(ctx, in.Blocks, verr)
	if err != nil {
		return nil, err
	}

	if err := verr.err(); err != nil {
		return nil, err
	}

	err = m.db.RunInTransaction(ctx, func(tx *db.Repository) error {
		tagIDs, err := m.getOrCreateTags(ctx, tx, ParseTagNames(in.TagNames))
		if err != nil {
			return err
		}
		news.TagIDs = uniqueInts(append(news.TagIDs, tagIDs...))

		return tx.SaveNews(ctx, &news, translations, blocks)
	})
	if errors.Is(err, pg.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("db save news: %w", err)
	}

	return m.NewsByID(ctx, news.ID, "", true)
}

func (m *Manager) DeleteNews(ctx context.Context, newsID int) error {
	deleted, err := m.db.DeleteNews(ctx, newsID)
	if err != nil {
		return fmt.Errorf("db delete news: %w", err)
	} else if !deleted {
		return ErrNotFound
	}

	return nil
}

// TaggedNews lists every news item carrying the tag regardless of publication state.
func (m *Manager) TaggedNews(ctx context.Context, tagID int) ([]News, error) {
	return m.NewsByFilter(ctx, NewsFilter{TagID: &tagID, Preview: true})
}

func (m *Manager) validateReferences(ctx context.Context, news db.News, verr ValidationErrors) error {
	if news.CategoryID != nil {
		category, err := m.db.CategoryByID(ctx, *news.CategoryID)
		if err != nil {
			return fmt.Errorf("db get category: %w", err)
		} else if category == nil {
			verr.add("categoryId", "category does not exist")
		}
	}

	if news.KeyVisualID != nil {
		image, err := m.db.ImageByID(ctx, *news.KeyVisualID)
		if err != nil {
			return fmt.Errorf("db get image: %w", err)
		} else if image == nil {
			verr.add("keyVisualId", "image does not exist")
		}
	}

	return m.validateTagIDs(ctx, "tagIds", news.TagIDs, verr)
}

func (m *Manager) validateTagIDs(ctx context.Context, field string, ids []int, verr ValidationErrors) error {
	if len(ids) == 0 {
		return nil
	}

	tags, err := m.db.TagsByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("db get tags: %w", err)
	}
	if len(tags) != len(uniqueInts(ids)) {
		verr.add(field, "unknown tag")
	}

	return nil
}

func (m *Manager) newsTranslations(ctx context.Context, newsID int, in []TranslationInput, verr ValidationErrors) ([]db.NewsTranslation, error) {
	if len(in) == 0 {
		verr.add("translations", "at least one translation is required")
		return nil, nil
	}

	seenLanguages := make(map[string]struct{}, len(in))
	usedSlugs := make(map[string]struct{}, len(in))
	r := make([]db.NewsTranslation, 0, len(in))

	for i, tr := range in {
		field := "translations[" + strconv.Itoa(i) + "]"

		if !m.IsLanguage(tr.LanguageCode) {
			verr.add(field+".languageCode", "unknown language")
		} else if _, ok := seenLanguages[tr.LanguageCode]; ok {
			verr.add(field+".languageCode", "duplicate language")
		}
		seenLanguages[tr.LanguageCode] = struct{}{}

		if tr.Title == "" {
			verr.add(field+".title", "this field is required")
		} else if utf8.RuneCountInString(tr.Title) > maxFieldLength {
			verr.add(field+".title", "ensure this value has at most 255 characters")
		}

		leadIn := htmlInput.Sanitize(tr.LeadIn)
		if leadIn == "" {
			verr.add(field+".leadIn", "this field is required")
		}

		slug := tr.Slug
		switch {
		case slug == "" && tr.Title != "":
			var err error
			slug, err = m.uniqueSlug(ctx, slugify.Make(tr.Title), usedSlugs, func(ctx context.Context, s string) (bool, error) {
				return m.db.NewsSlugTaken(ctx, s, newsID)
			})
			if err != nil {
				return nil, err
			}
		case slug != "":
			if !validSlug(slug) {
				verr.add(field+".slug", "enter a valid slug consisting of letters, numbers, underscores or hyphens")
				break
			}
			taken, err := m.db.NewsSlugTaken(ctx, slug, newsID)
			if err != nil {
				return nil, err
			}
			if _, ok := usedSlugs[slug]; ok || taken {
				verr.add(field+".slug", "slug is already in use")
			}
		}
		usedSlugs[slug] = struct{}{}

		r = append(r, db.NewsTranslation{
			LanguageCode: tr.LanguageCode,
			Title:        tr.Title,
			Slug:         slug,
			LeadIn:       leadIn,
		})
	}

	return r, nil
}

func (m *Manager) contentBlocks(ctx context.Context, in []ContentBlockInput, verr ValidationErrors) ([]db.ContentBlock, error) {
	r := make([]db.ContentBlock, 0, len(in))
	positions := make(map[string]int)

	for i, b := range in {
		field := "blocks[" + strconv.Itoa(i) + "]"

		if !m.IsLanguage(b.LanguageCode) {
			verr.add(field+".languageCode", "unknown language")
		}

		block := db.ContentBlock{
			LanguageCode: b.LanguageCode,
			Position:     positions[b.LanguageCode],
			PluginType:   b.PluginType,
		}
		positions[b.LanguageCode]++

		switch b.PluginType {
		case db.PluginTypeText:
			block.Body = htmlInput.Sanitize(b.Body)
		case db.PluginTypeLatestNews:
			if b.PluginID == nil {
				verr.add(field+".pluginId", "this field is required")
				break
			}
			plugin, err := m.db.PluginByID(ctx, *b.PluginID)
			if err != nil {
				return nil, fmt.Errorf("db get plugin: %w", err)
			} else if plugin == nil {
				verr.add(field+".pluginId", "plugin does not exist")
			}
			block.PluginID = b.PluginID
		default:
			verr.add(field+".pluginType", "unknown plugin type")
		}

		r = append(r, block)
	}

	return r, nil
}

// getOrCreateTags resolves names case-insensitively in the default language and creates missing tags in tx.
func (m *Manager) getOrCreateTags(ctx context.Context, tx *db.Repository, names []string) ([]int, error) {
	language := m.settings.DefaultLanguage
	ids := make([]int, 0, len(names))

	for _, name := range names {
		tag, err := tx.TagByName(ctx, language, name)
		if err != nil {
			return nil, fmt.Errorf("db get tag by name: %w", err)
		}
		if tag != nil {
			ids = append(ids, tag.ID)
			continue
		}

		slug, err := m.uniqueSlug(ctx, slugify.Make(name), nil, func(ctx context.Context, s string) (bool, error) {
			return tx.TagSlugTaken(ctx, language, s, 0)
		})
		if err != nil {
			return nil, err
		}

		newTag := db.Tag{}
		translations := []db.TagTranslation{{LanguageCode: language, Name: truncate(name, maxFieldLength), Slug: slug}}
		if err := tx.SaveTag(ctx, &newTag, translations); err != nil {
			return nil, fmt.Errorf("db create tag %q: %w", name, err)
		}
		ids = append(ids, newTag.ID)
	}

	return ids, nil
}

func (m *Manager) SaveCategory(ctx context.Context, in CategoryInput) (*Category, error) {
	if in.ID != 0 {
		existing, err := m.db.CategoryByID(ctx, in.ID)
		if err != nil {
			return nil, fmt.Errorf("db get category: %w", err)
		} else if existing == nil {
			return nil, ErrNotFound
		}
	}

	verr := ValidationErrors{}
	translations, err := m.nameTranslations(ctx, in.Translations, verr, ReservedCategorySlug, func(ctx context.Context, language, slug string) (bool, error) {
		return m.db.CategorySlugTaken(ctx, language, slug, in.ID)
	})
	if err != nil {
		return nil, err
	}
	if err := verr.err(); err != nil {
		return nil, err
	}

	category := db.Category{ID: in.ID, Ordering: in.Ordering}
	categoryTranslations := make([]db.CategoryTranslation, len(translations))
	for i, tr := range translations {
		categoryTranslations[i] = db.CategoryTranslation{LanguageCode: tr.LanguageCode, Name: tr.Name, Slug: tr.Slug}
	}

	if err := m.db.SaveCategory(ctx, &category, categoryTranslations); errors.Is(err, pg.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("db save category: %w", err)
	}

	m.resetMenu(ctx)

	categories := Categories{NewCategory(&category)}
	m.translateCategories(categories, "")

	return &categories[0], nil
}

func (m *Manager) DeleteCategory(ctx context.Context, categoryID int) error {
	deleted, err := m.db.DeleteCategory(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("db delete category: %w", err)
	} else if !deleted {
		return ErrNotFound
	}

	m.resetMenu(ctx)

	return nil
}

// SetCategoryOrdering maps category ids to their new ordering values.
func (m *Manager) SetCategoryOrdering(ctx context.Context, ordering map[int]int) error {
	if err := m.db.SetCategoryOrdering(ctx, ordering); err != nil {
		return fmt.Errorf("db set category ordering: %w", err)
	}

	m.resetMenu(ctx)

	return nil
}

func (m *Manager) SaveTag(ctx context.Context, in TagInput) (*Tag, error) {
	verr := ValidationErrors{}
	translations, err := m.nameTranslations(ctx, in.Translations, verr, nil, func(ctx context.Context, language, slug string) (bool, error) {
		return m.db.TagSlugTaken(ctx, language, slug, in.ID)
	})
	if err != nil {
		return nil, err
	}
	if err := verr.err(); err != nil {
		return nil, err
	}

	tag := db.Tag{ID: in.ID}
	tagTranslations := make([]db.TagTranslation, len(translations))
	for i, tr := range translations {
		tagTranslations[i] = db.TagTranslation{LanguageCode: tr.LanguageCode, Name: tr.Name, Slug: tr.Slug}
	}

	if err := m.db.SaveTag(ctx, &tag, tagTranslations); errors.Is(err, pg.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("db save tag: %w", err)
	}

	tags := Tags{NewTag(&tag)}
	m.translateTags(tags, "")

	return &tags[0], nil
}

func (m *Manager) DeleteTag(ctx context.Context, tagID int) error {
	deleted, err := m.db.DeleteTag(ctx, tagID)
	if err != nil {
		return fmt.Errorf("db delete tag: %w", err)
	} else if !deleted {
		return ErrNotFound
	}

	return nil
}

// AllTags returns every tag with its translations, names resolved in language.
func (m *Manager) AllTags(ctx context.Context, language string) ([]Tag, error) {
	list, err := m.db.Tags(ctx, "")
	if err != nil {
		return nil, err
	}

	tags := NewTags(list)
	m.translateTags(tags, language)

	return tags, nil
}

// nameTranslations validates names and slugs. Slugs matching reserved, when set, are rejected or skipped on derivation.
func (m *Manager) nameTranslations(ctx context.Context, in []NameInput, verr ValidationErrors, reserved func(string) bool, taken func(context.Context, string, string) (bool, error)) ([]NameInput, error) {
	if reserved == nil {
		reserved = func(string) bool { return false }
	}

	if len(in) == 0 {
		verr.add("translations", "at least one translation is required")
		return nil, nil
	}

	seenLanguages := make(map[string]struct{}, len(in))
	r := make([]NameInput, 0, len(in))

	for i, tr := range in {
		field := "translations[" + strconv.Itoa(i) + "]"

		if !m.IsLanguage(tr.LanguageCode) {
			verr.add(field+".languageCode", "unknown language")
		} else if _, ok := seenLanguages[tr.LanguageCode]; ok {
			verr.add(field+".languageCode", "duplicate language")
		}
		seenLanguages[tr.LanguageCode] = struct{}{}

		if tr.Name == "" {
			verr.add(field+".name", "this field is required")
		} else if utf8.RuneCountInString(tr.Name) > maxFieldLength {
			verr.add(field+".name", "ensure this value has at most 255 characters")
		}

		language := tr.LanguageCode
		slug := tr.Slug
		switch {
		case slug == "" && tr.Name != "":
			var err error
			slug, err = m.uniqueSlug(ctx, slugify.Make(tr.Name), nil, func(ctx context.Context, s string) (bool, error) {
				if reserved(s) {
					return true, nil
				}
				return taken(ctx, language, s)
			})
			if err != nil {
				return nil, err
			}
		case slug != "":
			if !validSlug(slug) {
				verr.add(field+".slug", "enter a valid slug consisting of letters, numbers, underscores or hyphens")
				break
			}
			if reserved(slug) {
				verr.add(field+".slug", "this slug is reserved")
				break
			}
			isTaken, err := taken(ctx, language, slug)
			if err != nil {
				return nil, err
			}
			if isTaken {
				verr.add(field+".slug", "slug is already in use")
			}
		}

		r = append(r, NameInput{LanguageCode: tr.LanguageCode, Name: tr.Name, Slug: slug})
	}

	return r, nil
}

// uniqueSlug appends -2, -3, ... to base until neither used nor taken reports a conflict.
func (m *Manager) uniqueSlug(ctx context.Context, base string, used map[string]struct{}, taken func(context.Context, string) (bool, error)) (string, error) {
	if base == "" {
		base = "news"
	}
	base = truncate(base, maxFieldLength)

	for i := 1; ; i++ {
		candidate := base
		if i > 1 {
			suffix := "-" + strconv.Itoa(i)
			candidate = truncate(base, maxFieldLength-len(suffix)) + suffix
		}

		if _, ok := used[candidate]; ok {
			continue
		}

		isTaken, err := taken(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check slug %q: %w", candidate, err)
		}
		if !isTaken {
			return candidate, nil
		}
	}
}

func validSlug(s string) bool {
	return len(s) <= maxFieldLength && slugRe.MatchString(s)
}

func isAbsoluteHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func uniqueInts(in []int) []int {
	seen := make(map[int]struct{}, len(in))
	r := make([]int, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		r = append(r, v)
	}
	return r
}

package newsportal

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"

	"github.com/daniilsolovey/news-cms/internal/db"
)

func (m *Manager) Images(ctx context.Context) ([]Image, error) {
	list, err := m.db.Images(ctx)
	if err != nil {
		return nil, err
	}

	return NewImages(list), nil
}

func (m *Manager) SaveImage(ctx context.Context, in ImageInput) (*Image, error) {
	verr := ValidationErrors{}
	if in.URL == "" {
		verr.add("url", "this field is required")
	}
	if len(in.Alt) > maxFieldLength {
		verr.add("alt", "ensure this value has at most 255 characters")
	}
	if err := verr.err(); err != nil {
		return nil, err
	}

	image := db.Image{ID: in.ID, URL: in.URL, Alt: in.Alt}
	if err := m.db.SaveImage(ctx, &image); errors.Is(err, pg.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("db save image: %w", err)
	}

	r := NewImage(&image)
	return &r, nil
}

// Plugin returns the plugin with its tags translated into the plugin language.
func (m *Manager) Plugin(ctx context.Context, pluginID int) (*LatestNewsPlugin, error) {
	dbPlugin, err := m.db.PluginByID(ctx, pluginID)
	if err != nil {
		return nil, fmt.Errorf("db get plugin: %w", err)
	} else if dbPlugin == nil {
		return nil, ErrNotFound
	}

	plugin := NewLatestNewsPlugin(dbPlugin)

	tagList, err := m.db.TagsByIDs(ctx, plugin.TagIDs)
	if err != nil {
		return nil, fmt.Errorf("db get plugin tags: %w", err)
	}
	tags := NewTags(tagList)
	m.translateTags(tags, plugin.LanguageCode)
	plugin.Tags = tags

	return &plugin, nil
}

func (m *Manager) SavePlugin(ctx context.Context, in PluginInput) (*LatestNewsPlugin, error) {
	verr := ValidationErrors{}
	if !m.IsLanguage(in.LanguageCode) {
		verr.add("languageCode", "unknown language")
	}
	if in.LatestEntries < 1 {
		verr.add("latestEntries", "ensure this value is greater than or equal to 1")
	}

	tagIDs := uniqueInts(in.TagIDs)
	if err := m.validateTagIDs(ctx, "tagIds", tagIDs, verr); err != nil {
		return nil, err
	}
	if err := verr.err(); err != nil {
		return nil, err
	}

	plugin := db.LatestNewsPlugin{
		ID:            in.ID,
		LanguageCode:  in.LanguageCode,
		LatestEntries: in.LatestEntries,
		TagIDs:        tagIDs,
	}
	if err := m.db.SavePlugin(ctx, &plugin); errors.Is(err, pg.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("db save plugin: %w", err)
	}

	return m.Plugin(ctx, plugin.ID)
}

// CopyPlugin creates a new plugin with the settings and tags of pluginID in language.
// An empty language keeps the source language.
func (m *Manager) CopyPlugin(ctx context.Context, pluginID int, language string) (*LatestNewsPlugin, error) {
	source, err := m.db.PluginByID(ctx, pluginID)
	if err != nil {
		return nil, fmt.Errorf("db get plugin: %w", err)
	} else if source == nil {
		return nil, ErrNotFound
	}

	if language == "" {
		language = source.LanguageCode
	}

	return m.SavePlugin(ctx, PluginInput{
		LanguageCode:  language,
		LatestEntries: source.LatestEntries,
		TagIDs:        append([]int(nil), source.TagIDs...),
	})
}

func (m *Manager) DeletePlugin(ctx context.Context, pluginID int) error {
	deleted, err := m.db.DeletePlugin(ctx, pluginID)
	if err != nil {
		return fmt.Errorf("db delete plugin: %w", err)
	} else if !deleted {
		return ErrNotFound
	}

	return nil
}

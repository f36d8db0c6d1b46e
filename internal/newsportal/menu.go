package newsportal

import (
	"context"
	"encoding/json"
	"fmt"
)

// Cache stores serialized values by key. Get reports a miss with ok=false.
type Cache interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}

type NopCache struct{}

func (NopCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (NopCache) Set(context.Context, string, []byte) error         { return nil }
func (NopCache) Delete(context.Context, ...string) error           { return nil }

func menuCacheKey(language string) string {
	return "news:menu:" + language
}

// Menu returns one navigation node per category translated into language.
// Cache failures fall through to the database.
func (m *Manager) Menu(ctx context.Context, language string) ([]MenuNode, error) {
	if m.metrics != nil {
		m.metrics.MenuRequests.WithLabelValues(language).Inc()
	}

	key := menuCacheKey(language)
	data, ok, err := m.cache.Get(ctx, key)
	m.cacheDone(ctx, "get", err)
	if err == nil && ok {
		var nodes []MenuNode
		if err := json.Unmarshal(data, &nodes); err == nil {
			return nodes, nil
		}
	}

	categories, err := m.Categories(ctx, language)
	if err != nil {
		return nil, fmt.Errorf("menu categories: %w", err)
	}

	nodes := make([]MenuNode, len(categories))
	for i, c := range categories {
		nodes[i] = MenuNode{
			ID:    c.Slug,
			Title: c.Name,
			URL:   m.urls.Category(language, c.Slug),
		}
	}

	if data, err := json.Marshal(nodes); err == nil {
		m.cacheDone(ctx, "set", m.cache.Set(ctx, key, data))
	}

	return nodes, nil
}

// ClearMenu drops the cached menu of every configured language.
func (m *Manager) ClearMenu(ctx context.Context) error {
	keys := make([]string, len(m.settings.Languages))
	for i, language := range m.settings.Languages {
		keys[i] = menuCacheKey(language)
	}
	if len(keys) == 0 {
		return nil
	}

	return m.cache.Delete(ctx, keys...)
}

// resetMenu clears the menu after a committed category write. A stale menu expires with the cache TTL,
// so failures are logged and the write still succeeds.
func (m *Manager) resetMenu(ctx context.Context) {
	m.cacheDone(ctx, "clear", m.ClearMenu(ctx))
}

func (m *Manager) cacheDone(ctx context.Context, operation string, err error) {
	if m.metrics != nil {
		m.metrics.CacheOperation(operation, err)
	}
	if err != nil {
		m.logger.ErrorContext(ctx, "menu cache failed", "operation", operation, "error", err)
	}
}

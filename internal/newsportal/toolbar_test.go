package newsportal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/news-cms/internal/db"
)

func TestManager_Toolbar(t *testing.T) {
	m := NewNewsManager(nil, Settings{Languages: []string{"en"}, AdminURL: "/admin/"})
	current := &News{News: db.News{ID: 5}}

	t.Run("AnonymousHasNoToolbar", func(t *testing.T) {
		assert.Nil(t, m.Toolbar(nil, current))
	})

	t.Run("WithoutPermissionsHasNoToolbar", func(t *testing.T) {
		assert.Nil(t, m.Toolbar(&Staff{Name: "viewer"}, current))
	})

	t.Run("AddOnly", func(t *testing.T) {
		menu := m.Toolbar(&Staff{Permissions: []string{PermAddNews}}, current)
		require.NotNil(t, menu)
		assert.Equal(t, "News", menu.Title)
		assert.Equal(t, []ToolbarItem{{Title: "Add News", URL: "/admin/news/add/"}}, menu.Items)
	})

	t.Run("EditNeedsCurrentNews", func(t *testing.T) {
		staff := &Staff{Permissions: []string{PermChangeNews}}
		assert.Nil(t, m.Toolbar(staff, nil))

		menu := m.Toolbar(staff, current)
		require.NotNil(t, menu)
		assert.Equal(t, []ToolbarItem{{Title: "Edit News", URL: "/admin/news/5/"}}, menu.Items)
	})

	t.Run("BothPermissions", func(t *testing.T) {
		menu := m.Toolbar(&Staff{Permissions: []string{PermAddNews, PermChangeNews}}, current)
		require.NotNil(t, menu)
		assert.Len(t, menu.Items, 2)
	})
}

func TestAuthenticator(t *testing.T) {
	auth := NewAuthenticator(map[string]Staff{
		"secret": {Name: "editor", Permissions: []string{PermAddNews}},
	})

	staff := auth.Authenticate("secret")
	require.NotNil(t, staff)
	assert.Equal(t, "editor", staff.Name)

	assert.Nil(t, auth.Authenticate("wrong"))
	assert.Nil(t, auth.Authenticate(""))
}

func TestRequirePermission(t *testing.T) {
	ctx := context.Background()
	assert.ErrorIs(t, RequirePermission(ctx, PermAddNews), ErrPermissionDenied)

	ctx = NewStaffContext(ctx, &Staff{Permissions: []string{PermAddNews}})
	assert.NoError(t, RequirePermission(ctx, PermAddNews))
	assert.ErrorIs(t, RequirePermission(ctx, PermDeleteNews), ErrPermissionDenied)
}

func TestValidationErrors(t *testing.T) {
	verr := ValidationErrors{}
	assert.NoError(t, verr.err())

	verr.add("title", "this field is required")
	verr.add("title", "ignored")
	verr.add("leadIn", "this field is required")

	assert.EqualError(t, verr.err(), "validation failed: leadIn: this field is required; title: this field is required")
}

func TestNews_IsPublished(t *testing.T) {
	now := db.BaseTime
	end := now.Add(-1)

	assert.True(t, News{News: db.News{PublicationStart: now}}.IsPublished(now))
	assert.False(t, News{News: db.News{PublicationStart: now.Add(1)}}.IsPublished(now))
	assert.False(t, News{News: db.News{PublicationStart: now.Add(-10), PublicationEnd: &end}}.IsPublished(now))
}

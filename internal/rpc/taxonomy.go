package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/news-cms/internal/newsportal"
)

// CategoryService provides editor methods for categories.
type CategoryService struct {
	zenrpc.Service
	manager *newsportal.Manager
}

func NewCategoryService(manager *newsportal.Manager) *CategoryService {
	return &CategoryService{manager: manager}
}

// List retrieves every category ordered by ordering with names in lang.
//
//zenrpc:lang language of names and urls
//zenrpc:return list of categories
//zenrpc:403 permission denied
//zenrpc:500 internal server error
func (s CategoryService) List(ctx context.Context, lang string) (Categories, error) {
	if err := requireStaff(ctx); err != nil {
		return nil, err
	}

	categories, err := s.manager.Categories(ctx, lang)
	if err != nil {
		return nil, newError(err)
	}

	return NewCategories(categories), nil
}

// Save creates a category when categoryId is empty and updates it otherwise.
// Empty slugs are derived from the name and made unique per language.
//
//zenrpc:category category with translations
//zenrpc:return saved category
//zenrpc:400 validation failed
//zenrpc:403 permission denied
//zenrpc:404 category not found
//zenrpc:500 internal server error
func (s CategoryService) Save(ctx context.Context, category CategoryInput) (*Category, error) {
	if err := requirePermission(ctx, newsportal.PermChangeCategory); err != nil {
		return nil, err
	}

	saved, err := s.manager.SaveCategory(ctx, category.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	r := NewCategory(*saved)
	return &r, nil
}

// Delete removes a category, its news are left uncategorized.
//
//zenrpc:categoryId category numeric ID
//zenrpc:return true when deleted
//zenrpc:403 permission denied
//zenrpc:404 category not found
//zenrpc:500 internal server error
func (s CategoryService) Delete(ctx context.Context, categoryID int) (bool, error) {
	if err := requirePermission(ctx, newsportal.PermChangeCategory); err != nil {
		return false, err
	}

	if err := s.manager.DeleteCategory(ctx, categoryID); err != nil {
		return false, newError(err)
	}

	return true, nil
}

// SetOrdering moves categories in the menu.
//
//zenrpc:ordering new ordering per category
//zenrpc:return true when saved
//zenrpc:403 permission denied
//zenrpc:500 internal server error
func (s CategoryService) SetOrdering(ctx context.Context, ordering []CategoryOrdering) (bool, error) {
	if err := requirePermission(ctx, newsportal.PermChangeCategory); err != nil {
		return false, err
	}

	m := make(map[int]int, len(ordering))
	for _, o := range ordering {
		m[o.CategoryID] = o.Ordering
	}

	if err := s.manager.SetCategoryOrdering(ctx, m); err != nil {
		return false, newError(err)
	}

	return true, nil
}

// TagService provides editor methods for tags.
type TagService struct {
	zenrpc.Service
	manager *newsportal.Manager
}

func NewTagService(manager *newsportal.Manager) *TagService {
	return &TagService{manager: manager}
}

// List retrieves every tag with names in lang, sorted by name.
//
//zenrpc:lang language of names and urls
//zenrpc:return list of tags
//zenrpc:403 permission denied
//zenrpc:500 internal server error
func (s TagService) List(ctx context.Context, lang string) (Tags, error) {
	if err := requireStaff(ctx); err != nil {
		return nil, err
	}

	tags, err := s.manager.AllTags(ctx, lang)
	if err != nil {
		return nil, newError(err)
	}

	return NewTags(tags), nil
}

// Save creates a tag when tagId is empty and updates it otherwise.
//
//zenrpc:tag tag with translations
//zenrpc:return saved tag
//zenrpc:400 validation failed
//zenrpc:403 permission denied
//zenrpc:404 tag not found
//zenrpc:500 internal server error
func (s TagService) Save(ctx context.Context, tag TagInput) (*Tag, error) {
	if err := requirePermission(ctx, newsportal.PermChangeTag); err != nil {
		return nil, err
	}

	saved, err := s.manager.SaveTag(ctx, tag.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	r := NewTag(*saved)
	return &r, nil
}

// Delete removes a tag from every news item and plugin.
//
//zenrpc:tagId tag numeric ID
//zenrpc:return true when deleted
//zenrpc:403 permission denied
//zenrpc:404 tag not found
//zenrpc:500 internal server error
func (s TagService) Delete(ctx context.Context, tagID int) (bool, error) {
	if err := requirePermission(ctx, newsportal.PermChangeTag); err != nil {
		return false, err
	}

	if err := s.manager.DeleteTag(ctx, tagID); err != nil {
		return false, newError(err)
	}

	return true, nil
}

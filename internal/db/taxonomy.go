package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

// Categories returns categories ordered by ordering; a non-empty language keeps translated ones only.
func (r *Repository) Categories(ctx context.Context, language string) ([]Category, error) {
	var categories []Category
	query := r.db.ModelContext(ctx, &categories).
		Relation("Translations")

	if language != "" {
		query = query.Where(`EXISTS (SELECT 1 FROM "categoryTranslations" AS "ct" WHERE "ct"."categoryId" = "t"."categoryId" AND "ct"."languageCode" = ?)`, language)
	}

	err := query.
		OrderExpr(`"t"."ordering" ASC`).
		OrderExpr(`"t"."categoryId" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

func (r *Repository) CategoriesByIDs(ctx context.Context, ids []int) ([]Category, error) {
	if len(ids) == 0 {
		return []Category{}, nil
	}

	categories := []Category{}
	err := r.db.ModelContext(ctx, &categories).
		Relation("Translations").
		Where(`"t"."categoryId" IN (?)`, pg.In(ids)).
		OrderExpr(`"t"."ordering" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query categories by ids: %w", err)
	}

	return categories, nil
}

func (r *Repository) CategoryByID(ctx context.Context, id int) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Relation("Translations").
		Where(`"t"."categoryId" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}

func (r *Repository) CategoryBySlug(ctx context.Context, language, slug string) (*Category, error) {
	tr := &CategoryTranslation{}
	err := r.db.ModelContext(ctx, tr).
		Where(`"t"."languageCode" = ?`, language).
		Where(`"t"."slug" = ?`, slug).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by slug: %w", err)
	}

	return r.CategoryByID(ctx, tr.CategoryID)
}

func (r *Repository) CategorySlugTaken(ctx context.Context, language, slug string, excludeID int) (bool, error) {
	exists, err := r.db.ModelContext(ctx, (*CategoryTranslation)(nil)).
		Where(`"t"."languageCode" = ?`, language).
		Where(`"t"."slug" = ?`, slug).
		Where(`"t"."categoryId" <> ?`, excludeID).
		Exists()
	if err != nil {
		return false, fmt.Errorf("failed to check category slug: %w", err)
	}

	return exists, nil
}

// SaveCategory inserts or updates the category and replaces its translations.
func (r *Repository) SaveCategory(ctx context.Context, category *Category, translations []CategoryTranslation) error {
	return r.RunInTransaction(ctx, func(tx *Repository) error {
		if category.ID == 0 {
			if _, err := tx.db.ModelContext(ctx, category).Insert(); err != nil {
				return fmt.Errorf("insert category: %w", err)
			}
		} else {
			res, err := tx.db.ModelContext(ctx, category).WherePK().Update()
			if err != nil {
				return fmt.Errorf("update category: %w", err)
			}
			if res.RowsAffected() == 0 {
				return pg.ErrNoRows
			}
		}

		if _, err := tx.db.ModelContext(ctx, (*CategoryTranslation)(nil)).
			Where(`"categoryId" = ?`, category.ID).
			Delete(); err != nil {
			return fmt.Errorf("delete category translations: %w", err)
		}

		for i := range translations {
			translations[i].CategoryID = category.ID
		}
		if len(translations) > 0 {
			if _, err := tx.db.ModelContext(ctx, &translations).Insert(); err != nil {
				return fmt.Errorf("insert category translations: %w", err)
			}
		}
		category.Translations = translations

		return nil
	})
}

func (r *Repository) DeleteCategory(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Category)(nil)).
		Where(`"categoryId" = ?`, id).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete category: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// SetCategoryOrdering updates the ordering column of several categories at once.
func (r *Repository) SetCategoryOrdering(ctx context.Context, ordering map[int]int) error {
	return r.RunInTransaction(ctx, func(tx *Repository) error {
		for id, value := range ordering {
			_, err := tx.db.ModelContext(ctx, (*Category)(nil)).
				Set(`"ordering" = ?`, value).
				Where(`"categoryId" = ?`, id).
				Update()
			if err != nil {
				return fmt.Errorf("update ordering of category %d: %w", id, err)
			}
		}
		return nil
	})
}

// Tags returns tags ordered by id; a non-empty language keeps translated ones only.
func (r *Repository) Tags(ctx context.Context, language string) ([]Tag, error) {
	var tags []Tag
	query := r.db.ModelContext(ctx, &tags).
		Relation("Translations")

	if language != "" {
		query = query.Where(`EXISTS (SELECT 1 FROM "tagTranslations" AS "tt" WHERE "tt"."tagId" = "t"."tagId" AND "tt"."languageCode" = ?)`, language)
	}

	if err := query.OrderExpr(`"t"."tagId" ASC`).Select(); err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}

	return tags, nil
}

func (r *Repository) TagsByIDs(ctx context.Context, ids []int) ([]Tag, error) {
	if len(ids) == 0 {
		return []Tag{}, nil
	}

	tags := []Tag{}
	err := r.db.ModelContext(ctx, &tags).
		Relation("Translations").
		Where(`"t"."tagId" IN (?)`, pg.In(ids)).
		OrderExpr(`"t"."tagId" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query tags by ids: %w", err)
	}

	return tags, nil
}

func (r *Repository) TagByID(ctx context.Context, id int) (*Tag, error) {
	tag := &Tag{}
	err := r.db.ModelContext(ctx, tag).
		Relation("Translations").
		Where(`"t"."tagId" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get tag by id: %w", err)
	}

	return tag, nil
}

func (r *Repository) TagBySlug(ctx context.Context, language, slug string) (*Tag, error) {
	return r.tagByTranslation(ctx, func(q *orm.Query) *orm.Query {
		return q.Where(`"t"."languageCode" = ?`, language).Where(`"t"."slug" = ?`, slug)
	})
}

// TagByName matches the name case-insensitively, like tag widgets do.
func (r *Repository) TagByName(ctx context.Context, language, name string) (*Tag, error) {
	return r.tagByTranslation(ctx, func(q *orm.Query) *orm.Query {
		return q.Where(`"t"."languageCode" = ?`, language).Where(`LOWER("t"."name") = LOWER(?)`, name)
	})
}

func (r *Repository) tagByTranslation(ctx context.Context, where func(*orm.Query) *orm.Query) (*Tag, error) {
	tr := &TagTranslation{}
	err := where(r.db.ModelContext(ctx, tr)).Limit(1).Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get tag translation: %w", err)
	}

	return r.TagByID(ctx, tr.TagID)
}

func (r *Repository) TagSlugTaken(ctx context.Context, language, slug string, excludeID int) (bool, error) {
	exists, err := r.db.ModelContext(ctx, (*TagTranslation)(nil)).
		Where(`"t"."languageCode" = ?`, language).
		Where(`"t"."slug" = ?`, slug).
		Where(`"t"."tagId" <> ?`, excludeID).
		Exists()
	if err != nil {
		return false, fmt.Errorf("failed to check tag slug: %w", err)
	}

	return exists, nil
}

// SaveTag inserts the tag when it has no id yet and replaces its translations.
func (r *Repository) SaveTag(ctx context.Context, tag *Tag, translations []TagTranslation) error {
	return r.RunInTransaction(ctx, func(tx *Repository) error {
		if tag.ID == 0 {
			if _, err := tx.db.ModelContext(ctx, tag).Insert(); err != nil {
				return fmt.Errorf("insert tag: %w", err)
			}
		} else {
			exists, err := tx.db.ModelContext(ctx, (*Tag)(nil)).Where(`"tagId" = ?`, tag.ID).Exists()
			if err != nil {
				return fmt.Errorf("check tag: %w", err)
			}
			if !exists {
				return pg.ErrNoRows
			}
		}

		if _, err := tx.db.ModelContext(ctx, (*TagTranslation)(nil)).
			Where(`"tagId" = ?`, tag.ID).
			Delete(); err != nil {
			return fmt.Errorf("delete tag translations: %w", err)
		}

		for i := range translations {
			translations[i].TagID = tag.ID
		}
		if len(translations) > 0 {
			if _, err := tx.db.ModelContext(ctx, &translations).Insert(); err != nil {
				return fmt.Errorf("insert tag translations: %w", err)
			}
		}
		tag.Translations = translations

		return nil
	})
}

// DeleteTag removes the tag and drops it from every news item and plugin that references it.
func (r *Repository) DeleteTag(ctx context.Context, id int) (bool, error) {
	var deleted bool
	err := r.RunInTransaction(ctx, func(tx *Repository) error {
		if _, err := tx.db.ExecContext(ctx,
			`UPDATE "news" SET "tagIds" = array_remove("tagIds", ?) WHERE ? = ANY("tagIds")`, id, id); err != nil {
			return fmt.Errorf("untag news: %w", err)
		}

		if _, err := tx.db.ExecContext(ctx,
			`UPDATE "latestNewsPlugins" SET "tagIds" = array_remove("tagIds", ?) WHERE ? = ANY("tagIds")`, id, id); err != nil {
			return fmt.Errorf("untag plugins: %w", err)
		}

		res, err := tx.db.ModelContext(ctx, (*Tag)(nil)).Where(`"tagId" = ?`, id).Delete()
		if err != nil {
			return fmt.Errorf("delete tag: %w", err)
		}
		deleted = res.RowsAffected() > 0

		return nil
	})

	return deleted, err
}

package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// RunInTransaction calls fn with a repository bound to a single transaction.
// A repository that already runs in a transaction joins it, so the caller keeps control of commit.
func (r *Repository) RunInTransaction(ctx context.Context, fn func(*Repository) error) error {
	if _, ok := r.db.(*pg.Tx); ok {
		return fn(r)
	}

	return r.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		return fn(New(tx))
	})
}

// NewsSearch describes which news rows a query selects.
type NewsSearch struct {
	// Language restricts the result to news translated into that language.
	Language   string
	CategoryID *int
	TagID      *int
	// AnyTagIDs keeps news tagged with at least one of the ids.
	AnyTagIDs []int
	IDs       []int
	// Year and Month match the UTC publication date.
	Year  int
	Month int
	// Published applies the publication window at Now.
	Published bool
	Now       time.Time
}

func (s NewsSearch) apply(q *orm.Query) *orm.Query {
	if s.Language != "" {
		q = q.Where(`EXISTS (SELECT 1 FROM "newsTranslations" AS "nt" WHERE "nt"."newsId" = "t"."newsId" AND "nt"."languageCode" = ?)`, s.Language)
	}

	if s.Published {
		now := s.Now
		if now.IsZero() {
			now = time.Now()
		}
		q = q.Where(`"t"."publicationStart" <= ?`, now).
			WhereGroup(func(q *orm.Query) (*orm.Query, error) {
				return q.Where(`"t"."publicationEnd" IS NULL`).
					WhereOr(`"t"."publicationEnd" >= ?`, now), nil
			})
	}

	if s.CategoryID != nil {
		q = q.Where(`"t"."categoryId" = ?`, *s.CategoryID)
	}

	if s.TagID != nil {
		q = q.Where(`? = ANY("t"."tagIds")`, *s.TagID)
	}

	if len(s.AnyTagIDs) > 0 {
		q = q.Where(`"t"."tagIds" && ?`, pg.Array(s.AnyTagIDs))
	}

	if len(s.IDs) > 0 {
		q = q.Where(`"t"."newsId" IN (?)`, pg.In(s.IDs))
	}

	if s.Year > 0 {
		q = q.Where(`EXTRACT(YEAR FROM "t"."publicationStart" AT TIME ZONE 'UTC') = ?`, s.Year)
	}

	if s.Month > 0 {
		q = q.Where(`EXTRACT(MONTH FROM "t"."publicationStart" AT TIME ZONE 'UTC') = ?`, s.Month)
	}

	return q
}

// News retrieves news matching the search ordered by publicationStart DESC.
// Key visual and all translations are loaded. A limit below 1 disables paging.
func (r *Repository) News(ctx context.Context, s NewsSearch, limit, offset int) ([]News, error) {
	var news []News
	query := s.apply(r.db.ModelContext(ctx, &news).
		Relation("KeyVisual").
		Relation("Translations"))

	query = query.OrderExpr(`"t"."publicationStart" DESC`).OrderExpr(`"t"."newsId" DESC`)
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	if err := query.Select(); err != nil {
		return nil, fmt.Errorf("failed to query news: %w", err)
	}

	return news, nil
}

func (r *Repository) NewsCount(ctx context.Context, s NewsSearch) (int, error) {
	count, err := s.apply(r.db.ModelContext(ctx, (*News)(nil))).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get news count: %w", err)
	}

	return count, nil
}

// NewsFacets returns the id, category and tags of every matching news item, without translations.
func (r *Repository) NewsFacets(ctx context.Context, s NewsSearch) ([]News, error) {
	var news []News
	err := s.apply(r.db.ModelContext(ctx, &news).
		Column("t.newsId", "t.categoryId", "t.tagIds", "t.publicationStart")).
		OrderExpr(`"t"."publicationStart" DESC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query news facets: %w", err)
	}

	return news, nil
}

// NewsByID returns nil when the news does not exist or is outside the search.
func (r *Repository) NewsByID(ctx context.Context, newsID int, s NewsSearch) (*News, error) {
	news := &News{}
	err := s.apply(r.db.ModelContext(ctx, news).
		Relation("KeyVisual").
		Relation("Translations")).
		Where(`"t"."newsId" = ?`, newsID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get news by id: %w", err)
	}

	return news, nil
}

// NewsIDBySlug returns 0 when no translation in the language carries the slug.
func (r *Repository) NewsIDBySlug(ctx context.Context, language, slug string) (int, error) {
	tr := &NewsTranslation{}
	err := r.db.ModelContext(ctx, tr).
		Where(`"t"."languageCode" = ?`, language).
		Where(`"t"."slug" = ?`, slug).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return 0, nil
	} else if err != nil {
		return 0, fmt.Errorf("failed to get news by slug: %w", err)
	}

	return tr.NewsID, nil
}

// NewsSlugTaken reports whether any news translation other than excludeNewsID's uses the slug.
func (r *Repository) NewsSlugTaken(ctx context.Context, slug string, excludeNewsID int) (bool, error) {
	exists, err := r.db.ModelContext(ctx, (*NewsTranslation)(nil)).
		Where(`"t"."slug" = ?`, slug).
		Where(`"t"."newsId" <> ?`, excludeNewsID).
		Exists()
	if err != nil {
		return false, fmt.Errorf("failed to check news slug: %w", err)
	}

	return exists, nil
}

// SaveNews inserts or updates the news row and replaces its translations and content blocks.
func (r *Repository) SaveNews(ctx context.Context, news *News, translations []NewsTranslation, blocks []ContentBlock) error {
	if news.TagIDs == nil {
		news.TagIDs = []int{}
	}

	return r.RunInTransaction(ctx, func(tx *Repository) error {
		now := time.Now()
		if news.ID == 0 {
			news.CreatedAt = now
			if _, err := tx.db.ModelContext(ctx, news).Insert(); err != nil {
				return fmt.Errorf("insert news: %w", err)
			}
		} else {
			news.UpdatedAt = &now
			res, err := tx.db.ModelContext(ctx, news).
				ExcludeColumn("createdAt").
				WherePK().
				Update()
			if err != nil {
				return fmt.Errorf("update news: %w", err)
			}
			if res.RowsAffected() == 0 {
				return pg.ErrNoRows
			}
		}

		if _, err := tx.db.ModelContext(ctx, (*NewsTranslation)(nil)).
			Where(`"newsId" = ?`, news.ID).
			Delete(); err != nil {
			return fmt.Errorf("delete news translations: %w", err)
		}

		for i := range translations {
			translations[i].NewsID = news.ID
		}
		if len(translations) > 0 {
			if _, err := tx.db.ModelContext(ctx, &translations).Insert(); err != nil {
				return fmt.Errorf("insert news translations: %w", err)
			}
		}
		news.Translations = translations

		if _, err := tx.db.ModelContext(ctx, (*ContentBlock)(nil)).
			Where(`"newsId" = ?`, news.ID).
			Delete(); err != nil {
			return fmt.Errorf("delete content blocks: %w", err)
		}

		for i := range blocks {
			blocks[i].ID = 0
			blocks[i].NewsID = news.ID
		}
		if len(blocks) > 0 {
			if _, err := tx.db.ModelContext(ctx, &blocks).Insert(); err != nil {
				return fmt.Errorf("insert content blocks: %w", err)
			}
		}

		return nil
	})
}

func (r *Repository) DeleteNews(ctx context.Context, newsID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*News)(nil)).
		Where(`"newsId" = ?`, newsID).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete news: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// ContentBlocks returns the placeholder content of a news item; an empty language returns every language.
func (r *Repository) ContentBlocks(ctx context.Context, newsID int, language string) ([]ContentBlock, error) {
	var blocks []ContentBlock
	query := r.db.ModelContext(ctx, &blocks).
		Where(`"t"."newsId" = ?`, newsID)

	if language != "" {
		query = query.Where(`"t"."languageCode" = ?`, language)
	}

	err := query.
		OrderExpr(`"t"."languageCode" ASC`).
		OrderExpr(`"t"."position" ASC`).
		OrderExpr(`"t"."blockId" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query content blocks: %w", err)
	}

	return blocks, nil
}

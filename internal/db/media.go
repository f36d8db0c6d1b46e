package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

func (r *Repository) Images(ctx context.Context) ([]Image, error) {
	var images []Image
	err := r.db.ModelContext(ctx, &images).
		OrderExpr(`"t"."imageId" DESC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query images: %w", err)
	}

	return images, nil
}

func (r *Repository) ImageByID(ctx context.Context, id int) (*Image, error) {
	image := &Image{}
	err := r.db.ModelContext(ctx, image).
		Where(`"t"."imageId" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get image by id: %w", err)
	}

	return image, nil
}

func (r *Repository) SaveImage(ctx context.Context, image *Image) error {
	if image.ID == 0 {
		if _, err := r.db.ModelContext(ctx, image).Insert(); err != nil {
			return fmt.Errorf("failed to insert image: %w", err)
		}
		return nil
	}

	res, err := r.db.ModelContext(ctx, image).WherePK().Update()
	if err != nil {
		return fmt.Errorf("failed to update image: %w", err)
	}
	if res.RowsAffected() == 0 {
		return pg.ErrNoRows
	}

	return nil
}

func (r *Repository) PluginByID(ctx context.Context, id int) (*LatestNewsPlugin, error) {
	plugin := &LatestNewsPlugin{}
	err := r.db.ModelContext(ctx, plugin).
		Where(`"t"."pluginId" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get plugin by id: %w", err)
	}

	return plugin, nil
}

func (r *Repository) SavePlugin(ctx context.Context, plugin *LatestNewsPlugin) error {
	if plugin.TagIDs == nil {
		plugin.TagIDs = []int{}
	}

	if plugin.ID == 0 {
		if _, err := r.db.ModelContext(ctx, plugin).Insert(); err != nil {
			return fmt.Errorf("failed to insert plugin: %w", err)
		}
		return nil
	}

	res, err := r.db.ModelContext(ctx, plugin).WherePK().Update()
	if err != nil {
		return fmt.Errorf("failed to update plugin: %w", err)
	}
	if res.RowsAffected() == 0 {
		return pg.ErrNoRows
	}

	return nil
}

func (r *Repository) DeletePlugin(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*LatestNewsPlugin)(nil)).
		Where(`"pluginId" = ?`, id).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete plugin: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/news-cms/internal/newsportal"
)

// ImageService manages the images used as key visuals.
type ImageService struct {
	zenrpc.Service
	manager *newsportal.Manager
}

func NewImageService(manager *newsportal.Manager) *ImageService {
	return &ImageService{manager: manager}
}

// List retrieves every image.
//
//zenrpc:return list of images
//zenrpc:403 permission denied
//zenrpc:500 internal server error
func (s ImageService) List(ctx context.Context) (Images, error) {
	if err := requireStaff(ctx); err != nil {
		return nil, err
	}

	images, err := s.manager.Images(ctx)
	if err != nil {
		return nil, newError(err)
	}

	return NewImages(images), nil
}

// Save creates an image when imageId is empty and updates it otherwise.
//
//zenrpc:image image url and alternative text
//zenrpc:return saved image
//zenrpc:400 validation failed
//zenrpc:403 permission denied
//zenrpc:404 image not found
//zenrpc:500 internal server error
func (s ImageService) Save(ctx context.Context, image ImageInput) (*Image, error) {
	if err := requirePermission(ctx, newsportal.PermChangeNews); err != nil {
		return nil, err
	}

	saved, err := s.manager.SaveImage(ctx, image.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	r := NewImage(*saved)
	return &r, nil
}

// PluginService manages latest news plugins.
type PluginService struct {
	zenrpc.Service
	manager *newsportal.Manager
}

func NewPluginService(manager *newsportal.Manager) *PluginService {
	return &PluginService{manager: manager}
}

// Get retrieves a plugin with its tags.
//
//zenrpc:pluginId plugin numeric ID
//zenrpc:return plugin
//zenrpc:403 permission denied
//zenrpc:404 plugin not found
//zenrpc:500 internal server error
func (s PluginService) Get(ctx context.Context, pluginID int) (*Plugin, error) {
	if err := requireStaff(ctx); err != nil {
		return nil, err
	}

	plugin, err := s.manager.Plugin(ctx, pluginID)
	if err != nil {
		return nil, newError(err)
	}

	r := NewPlugin(*plugin)
	return &r, nil
}

// Save creates a plugin when pluginId is empty and updates it otherwise.
//
//zenrpc:plugin plugin settings
//zenrpc:return saved plugin
//zenrpc:400 validation failed
//zenrpc:403 permission denied
//zenrpc:404 plugin not found
//zenrpc:500 internal server error
func (s PluginService) Save(ctx context.Context, plugin PluginInput) (*Plugin, error) {
	if err := requirePermission(ctx, newsportal.PermChangePlugin); err != nil {
		return nil, err
	}

	saved, err := s.manager.SavePlugin(ctx, plugin.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	r := NewPlugin(*saved)
	return &r, nil
}

// Copy creates a new plugin with the settings and tags of pluginId.
//
//zenrpc:pluginId source plugin numeric ID
//zenrpc:lang language of the copy, empty keeps the source language
//zenrpc:return created plugin
//zenrpc:400 validation failed
//zenrpc:403 permission denied
//zenrpc:404 plugin not found
//zenrpc:500 internal server error
func (s PluginService) Copy(ctx context.Context, pluginID int, lang string) (*Plugin, error) {
	if err := requirePermission(ctx, newsportal.PermChangePlugin); err != nil {
		return nil, err
	}

	copied, err := s.manager.CopyPlugin(ctx, pluginID, lang)
	if err != nil {
		return nil, newError(err)
	}

	r := NewPlugin(*copied)
	return &r, nil
}

// Delete removes a plugin, content blocks using it render nothing.
//
//zenrpc:pluginId plugin numeric ID
//zenrpc:return true when deleted
//zenrpc:403 permission denied
//zenrpc:404 plugin not found
//zenrpc:500 internal server error
func (s PluginService) Delete(ctx context.Context, pluginID int) (bool, error) {
	if err := requirePermission(ctx, newsportal.PermChangePlugin); err != nil {
		return false, err
	}

	if err := s.manager.DeletePlugin(ctx, pluginID); err != nil {
		return false, newError(err)
	}

	return true, nil
}

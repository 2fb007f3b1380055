// Package tmdb reads the backend's TMDB proxy. Watch-provider lookups are
// secondary data and bounded by a short timeout; callers fall back to an
// empty result instead of retrying.
package tmdb

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/reelmates/reelmates-client/internal/api"
	"github.com/reelmates/reelmates-client/internal/config"
	"github.com/reelmates/reelmates-client/internal/models"
)

const metadataTimeout = 8 * time.Second

type Client interface {
	Details(ctx context.Context, mediaType models.MediaType, tmdbID int) (*models.Media, error)
	WatchProviders(ctx context.Context, mediaType models.MediaType, tmdbID int, region string) (*models.WatchProviders, error)
	PosterURL(size, path string) string
}

type client struct {
	api       *api.Client
	imageBase string
}

func NewClient(apiClient *api.Client, cfg *config.Config) Client {
	return &client{api: apiClient, imageBase: cfg.API.TMDBImageBase}
}

func (c *client) Details(ctx context.Context, mediaType models.MediaType, tmdbID int) (*models.Media, error) {
	var media models.Media
	path := fmt.Sprintf("/tmdb/%s/%d", mediaType, tmdbID)
	if err := c.api.Get(ctx, path, &media); err != nil {
		return nil, err
	}
	return &media, nil
}

func (c *client) WatchProviders(ctx context.Context, mediaType models.MediaType, tmdbID int, region string) (*models.WatchProviders, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, metadataTimeout)
	defer cancel()

	var providers models.WatchProviders
	path := fmt.Sprintf("/tmdb/%s/%d/watch-providers?region=%s", mediaType, tmdbID, url.QueryEscape(region))
	if err := c.api.Get(timeoutCtx, path, &providers); err != nil {
		return nil, err
	}
	return &providers, nil
}

func (c *client) PosterURL(size, path string) string {
	return PosterURL(c.imageBase, size, path)
}

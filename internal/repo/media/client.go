// Package media reads the backend's media cache, a server-side cache of
// TMDB titles keyed by media type and TMDB id.
package media

import (
	"context"
	"fmt"

	"github.com/reelmates/reelmates-client/internal/api"
	"github.com/reelmates/reelmates-client/internal/models"
)

type Client interface {
	Lookup(ctx context.Context, mediaType models.MediaType, tmdbID int) (*models.Media, error)
	Trending(ctx context.Context, mediaType models.MediaType) ([]models.Media, error)
	Reviews(ctx context.Context, mediaType models.MediaType, tmdbID int) ([]models.Review, error)
}

type client struct {
	api *api.Client
}

func NewClient(apiClient *api.Client) Client {
	return &client{api: apiClient}
}

func (c *client) Lookup(ctx context.Context, mediaType models.MediaType, tmdbID int) (*models.Media, error) {
	var media models.Media
	path := fmt.Sprintf("/media/%s/%d", mediaType, tmdbID)
	if err := c.api.Get(ctx, path, &media); err != nil {
		return nil, err
	}
	return &media, nil
}

// Reviews returns the reviews attached to one title. The backend mixes
// friend-activity and plain title reviews in the same array; the Review
// decoder splits them by shape.
func (c *client) Reviews(ctx context.Context, mediaType models.MediaType, tmdbID int) ([]models.Review, error) {
	var reviews []models.Review
	path := fmt.Sprintf("/media/%s/%d/reviews", mediaType, tmdbID)
	if err := c.api.Get(ctx, path, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *client) Trending(ctx context.Context, mediaType models.MediaType) ([]models.Media, error) {
	var titles []models.Media
	path := fmt.Sprintf("/media/%s/trending", mediaType)
	if err := c.api.Get(ctx, path, &titles); err != nil {
		return nil, err
	}
	return titles, nil
}

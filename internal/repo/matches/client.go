// Package matches talks to the taste-match resource.
package matches

import (
	"context"
	"fmt"
	"net/url"

	"github.com/reelmates/reelmates-client/internal/api"
	"github.com/reelmates/reelmates-client/internal/models"
)

type Client interface {
	List(ctx context.Context, uid string) ([]models.Match, error)
	Like(ctx context.Context, targetUID string) (*models.Match, error)
	Pass(ctx context.Context, targetUID string) error
	Remove(ctx context.Context, matchID string) error
}

type client struct {
	api *api.Client
}

func NewClient(apiClient *api.Client) Client {
	return &client{api: apiClient}
}

func (c *client) List(ctx context.Context, uid string) ([]models.Match, error) {
	var list []models.Match
	if err := c.api.Get(ctx, fmt.Sprintf("/matches?user_id=%s", url.QueryEscape(uid)), &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Like records interest in another user. The backend returns a match only
// when the interest is mutual; otherwise the result is nil.
func (c *client) Like(ctx context.Context, targetUID string) (*models.Match, error) {
	var match models.Match
	body := map[string]string{"target_uid": targetUID}
	if err := c.api.Post(ctx, "/matches/like", body, &match); err != nil {
		return nil, err
	}
	if match.ID == "" {
		return nil, nil
	}
	return &match, nil
}

func (c *client) Pass(ctx context.Context, targetUID string) error {
	body := map[string]string{"target_uid": targetUID}
	return c.api.Post(ctx, "/matches/pass", body, nil)
}

func (c *client) Remove(ctx context.Context, matchID string) error {
	return c.api.Delete(ctx, fmt.Sprintf("/matches/%s", url.PathEscape(matchID)))
}

// Package notifications talks to the per-user notification feed resource.
package notifications

import (
	"context"
	"fmt"
	"net/url"

	"github.com/reelmates/reelmates-client/internal/api"
	"github.com/reelmates/reelmates-client/internal/models"
)

type Client interface {
	List(ctx context.Context, uid string, limit int) ([]models.Notification, error)
	MarkRead(ctx context.Context, uid, notificationID string) error
	MarkAllRead(ctx context.Context, uid string) error
}

type client struct {
	api *api.Client
}

func NewClient(apiClient *api.Client) Client {
	return &client{api: apiClient}
}

func (c *client) List(ctx context.Context, uid string, limit int) ([]models.Notification, error) {
	var list []models.Notification
	path := fmt.Sprintf("/users/%s/notifications?limit=%d", url.PathEscape(uid), limit)
	if err := c.api.Get(ctx, path, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *client) MarkRead(ctx context.Context, uid, notificationID string) error {
	path := fmt.Sprintf("/users/%s/notifications/%s/read", url.PathEscape(uid), url.PathEscape(notificationID))
	return c.api.Put(ctx, path, nil, nil)
}

func (c *client) MarkAllRead(ctx context.Context, uid string) error {
	return c.api.Put(ctx, fmt.Sprintf("/users/%s/notifications/read", url.PathEscape(uid)), nil, nil)
}

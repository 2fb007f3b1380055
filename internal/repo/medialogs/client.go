// Package medialogs manages a user's watch diary entries.
package medialogs

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/reelmates/reelmates-client/internal/api"
	"github.com/reelmates/reelmates-client/internal/models"
	"github.com/reelmates/reelmates-client/pkg/util"
)

type CreateParams struct {
	TmdbID    int              `json:"tmdb_id" validate:"required"`
	MediaType models.MediaType `json:"media_type" validate:"required,oneof=movie tv"`
	Rating    float64          `json:"rating" validate:"gte=0,lte=5"`
	Review    string           `json:"review" validate:"max=5000"`
	WatchedAt time.Time        `json:"watched_at"`
}

type UpdateParams struct {
	Rating    *float64   `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	Review    *string    `json:"review,omitempty" validate:"omitempty,max=5000"`
	WatchedAt *time.Time `json:"watched_at,omitempty"`
}

type Client interface {
	List(ctx context.Context, uid string, page int) ([]models.MediaLog, error)
	Create(ctx context.Context, params CreateParams) (*models.MediaLog, error)
	Update(ctx context.Context, logID string, params UpdateParams) (*models.MediaLog, error)
	Delete(ctx context.Context, logID string) error
}

type client struct {
	api *api.Client
}

func NewClient(apiClient *api.Client) Client {
	return &client{api: apiClient}
}

// mediaLogDTO is the wire shape; dates arrive as RFC 3339 strings.
type mediaLogDTO struct {
	ID         string           `json:"id"`
	UserID     string           `json:"user_id"`
	TmdbID     int              `json:"tmdb_id"`
	MediaType  models.MediaType `json:"media_type"`
	Title      string           `json:"title"`
	PosterPath string           `json:"poster_path"`
	Rating     float64          `json:"rating"`
	Review     string           `json:"review"`
	WatchedAt  string           `json:"watched_at"`
	CreatedAt  string           `json:"created_at"`
}

func (c *client) List(ctx context.Context, uid string, page int) ([]models.MediaLog, error) {
	var dtos []mediaLogDTO
	path := fmt.Sprintf("/media-logs?user_id=%s&page=%d", url.QueryEscape(uid), page)
	if err := c.api.Get(ctx, path, &dtos); err != nil {
		return nil, err
	}
	return util.ConvertListE(dtos, toMediaLog)
}

func (c *client) Create(ctx context.Context, params CreateParams) (*models.MediaLog, error) {
	var dto mediaLogDTO
	if err := c.api.Post(ctx, "/media-logs", params, &dto); err != nil {
		return nil, err
	}
	log, err := toMediaLog(dto)
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (c *client) Update(ctx context.Context, logID string, params UpdateParams) (*models.MediaLog, error) {
	var dto mediaLogDTO
	if err := c.api.Put(ctx, fmt.Sprintf("/media-logs/%s", url.PathEscape(logID)), params, &dto); err != nil {
		return nil, err
	}
	log, err := toMediaLog(dto)
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (c *client) Delete(ctx context.Context, logID string) error {
	return c.api.Delete(ctx, fmt.Sprintf("/media-logs/%s", url.PathEscape(logID)))
}

func toMediaLog(dto mediaLogDTO) (models.MediaLog, error) {
	watchedAt, err := parseTime(dto.WatchedAt)
	if err != nil {
		return models.MediaLog{}, fmt.Errorf("parse watched_at: %w", err)
	}
	createdAt, err := parseTime(dto.CreatedAt)
	if err != nil {
		return models.MediaLog{}, fmt.Errorf("parse created_at: %w", err)
	}
	return models.MediaLog{
		ID:         dto.ID,
		UserID:     dto.UserID,
		TmdbID:     dto.TmdbID,
		MediaType:  dto.MediaType,
		Title:      dto.Title,
		PosterPath: dto.PosterPath,
		Rating:     dto.Rating,
		Review:     dto.Review,
		WatchedAt:  watchedAt,
		CreatedAt:  createdAt,
	}, nil
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, s)
}

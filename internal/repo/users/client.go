// Package users talks to the backend's user resource.
package users

import (
	"context"
	"fmt"
	"net/url"

	"github.com/reelmates/reelmates-client/internal/api"
	"github.com/reelmates/reelmates-client/internal/models"
)

type SignInParams struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type SignUpParams struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	DisplayName string `json:"display_name" validate:"required,max=50"`
}

type UpdateProfileParams struct {
	DisplayName    *string  `json:"display_name,omitempty" validate:"omitempty,max=50"`
	Bio            *string  `json:"bio,omitempty" validate:"omitempty,max=500"`
	PhotoURL       *string  `json:"photo_url,omitempty"`
	FavoriteGenres []string `json:"favorite_genres,omitempty"`
}

// Session is the sign-in/sign-up response: the bearer token plus the full
// profile.
type Session struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type Client interface {
	SignIn(ctx context.Context, params SignInParams) (*Session, error)
	SignUp(ctx context.Context, params SignUpParams) (*Session, error)
	Profile(ctx context.Context, uid string) (*models.User, error)
	UpdateProfile(ctx context.Context, uid string, params UpdateProfileParams) (*models.User, error)
	DeleteAccount(ctx context.Context, uid string) error
}

type client struct {
	api *api.Client
}

func NewClient(apiClient *api.Client) Client {
	return &client{api: apiClient}
}

func (c *client) SignIn(ctx context.Context, params SignInParams) (*Session, error) {
	var session Session
	if err := c.api.Post(ctx, "/auth/sign-in", params, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *client) SignUp(ctx context.Context, params SignUpParams) (*Session, error) {
	var session Session
	if err := c.api.Post(ctx, "/auth/sign-up", params, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *client) Profile(ctx context.Context, uid string) (*models.User, error) {
	var user models.User
	if err := c.api.Get(ctx, fmt.Sprintf("/users/%s", url.PathEscape(uid)), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *client) UpdateProfile(ctx context.Context, uid string, params UpdateProfileParams) (*models.User, error) {
	var user models.User
	if err := c.api.Put(ctx, fmt.Sprintf("/users/%s", url.PathEscape(uid)), params, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *client) DeleteAccount(ctx context.Context, uid string) error {
	return c.api.Delete(ctx, fmt.Sprintf("/users/%s", url.PathEscape(uid)))
}

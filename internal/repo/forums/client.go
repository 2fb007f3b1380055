// Package forums talks to the discussion-board resource. Reaction writes
// return the updated post so callers can apply confirmed state without a
// second fetch.
package forums

import (
	"context"
	"fmt"
	"net/url"

	"github.com/reelmates/reelmates-client/internal/api"
	"github.com/reelmates/reelmates-client/internal/models"
)

type CreatePostParams struct {
	Title string `json:"title" validate:"required,max=200"`
	Body  string `json:"body" validate:"required,max=5000"`
}

type CreateCommentParams struct {
	Body string `json:"body" validate:"required,max=2000"`
}

type Client interface {
	ListForums(ctx context.Context) ([]models.Forum, error)
	ListPosts(ctx context.Context, forumID string, page, limit int) ([]models.ForumPost, error)
	CreatePost(ctx context.Context, forumID string, params CreatePostParams) (*models.ForumPost, error)
	ListComments(ctx context.Context, forumID, postID string) ([]models.ForumComment, error)
	CreateComment(ctx context.Context, forumID, postID string, params CreateCommentParams) (*models.ForumComment, error)
	// ToggleReaction sets or clears the caller's emoji on a post and
	// returns the post as the server now sees it.
	ToggleReaction(ctx context.Context, forumID, postID, emoji string) (*models.ForumPost, error)
}

type client struct {
	api *api.Client
}

func NewClient(apiClient *api.Client) Client {
	return &client{api: apiClient}
}

func (c *client) ListForums(ctx context.Context) ([]models.Forum, error) {
	var forums []models.Forum
	if err := c.api.Get(ctx, "/forums", &forums); err != nil {
		return nil, err
	}
	return forums, nil
}

func (c *client) ListPosts(ctx context.Context, forumID string, page, limit int) ([]models.ForumPost, error) {
	var posts []models.ForumPost
	path := fmt.Sprintf("/forums/%s/posts?page=%d&limit=%d", url.PathEscape(forumID), page, limit)
	if err := c.api.Get(ctx, path, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *client) CreatePost(ctx context.Context, forumID string, params CreatePostParams) (*models.ForumPost, error) {
	var post models.ForumPost
	if err := c.api.Post(ctx, fmt.Sprintf("/forums/%s/posts", url.PathEscape(forumID)), params, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *client) ListComments(ctx context.Context, forumID, postID string) ([]models.ForumComment, error) {
	var comments []models.ForumComment
	path := fmt.Sprintf("/forums/%s/posts/%s/comments", url.PathEscape(forumID), url.PathEscape(postID))
	if err := c.api.Get(ctx, path, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *client) CreateComment(ctx context.Context, forumID, postID string, params CreateCommentParams) (*models.ForumComment, error) {
	var comment models.ForumComment
	path := fmt.Sprintf("/forums/%s/posts/%s/comments", url.PathEscape(forumID), url.PathEscape(postID))
	if err := c.api.Post(ctx, path, params, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *client) ToggleReaction(ctx context.Context, forumID, postID, emoji string) (*models.ForumPost, error) {
	var post models.ForumPost
	body := map[string]string{"emoji": emoji}
	path := fmt.Sprintf("/forums/%s/posts/%s/reactions", url.PathEscape(forumID), url.PathEscape(postID))
	if err := c.api.Post(ctx, path, body, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

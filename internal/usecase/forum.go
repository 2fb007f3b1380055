package usecase

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/reelmates/reelmates-client/internal/models"
	"github.com/reelmates/reelmates-client/internal/repo/forums"
	"github.com/reelmates/reelmates-client/pkg/validator"
)

const forumPageSize = 20

// ForumScreen pages through one forum's posts. All mutations follow the
// confirmed-apply policy: local state changes only after the REST call
// succeeds, using the payload the server returned.
type ForumScreen struct {
	forumID  string
	forums   forums.Client
	validate *validator.Validator
	log      *zap.SugaredLogger

	mu      sync.Mutex
	posts   []models.ForumPost
	page    int
	hasMore bool
	loading bool
	errMsg  string
}

func NewForumScreen(forumID string, forumsClient forums.Client, validate *validator.Validator, log *zap.Logger) *ForumScreen {
	return &ForumScreen{
		forumID:  forumID,
		forums:   forumsClient,
		validate: validate,
		log:      log.Named("forum").Sugar(),
		hasMore:  true,
	}
}

// LoadMore fetches the next page and appends it.
func (s *ForumScreen) LoadMore(ctx context.Context) error {
	s.mu.Lock()
	if s.loading || !s.hasMore {
		s.mu.Unlock()
		return nil
	}
	s.loading = true
	next := s.page + 1
	s.mu.Unlock()

	posts, err := s.forums.ListPosts(ctx, s.forumID, next, forumPageSize)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.errMsg = err.Error()
		return err
	}
	s.posts = append(s.posts, posts...)
	s.page = next
	s.hasMore = len(posts) == forumPageSize
	s.errMsg = ""
	return nil
}

// CreatePost validates the form, submits it, and prepends the confirmed
// post. An invalid form never reaches the network.
func (s *ForumScreen) CreatePost(ctx context.Context, params forums.CreatePostParams) (*models.ForumPost, error) {
	if err := s.validate.Validate(params); err != nil {
		return nil, err
	}

	post, err := s.forums.CreatePost(ctx, s.forumID, params)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.posts = append([]models.ForumPost{*post}, s.posts...)
	s.mu.Unlock()
	return post, nil
}

// ToggleReaction submits the reaction and replaces the post with the
// server's view of it.
func (s *ForumScreen) ToggleReaction(ctx context.Context, postID, emoji string) error {
	updated, err := s.forums.ToggleReaction(ctx, s.forumID, postID, emoji)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == updated.ID {
			s.posts[i] = *updated
			break
		}
	}
	return nil
}

// Comment validates and submits a comment, bumping the post's local count
// once the server confirms.
func (s *ForumScreen) Comment(ctx context.Context, postID string, params forums.CreateCommentParams) (*models.ForumComment, error) {
	if err := s.validate.Validate(params); err != nil {
		return nil, err
	}

	comment, err := s.forums.CreateComment(ctx, s.forumID, postID, params)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == postID {
			s.posts[i].CommentCount++
			break
		}
	}
	return comment, nil
}

func (s *ForumScreen) Posts() []models.ForumPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ForumPost, len(s.posts))
	copy(out, s.posts)
	return out
}

func (s *ForumScreen) HasMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasMore
}

func (s *ForumScreen) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *ForumScreen) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

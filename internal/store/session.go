package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/reelmates/reelmates-client/internal/models"
)

const (
	keyToken    = "auth_token"
	keyIdentity = "user_identity"
)

// SessionStore exposes the two entries the client persists: the bearer
// token and the cached identity blob.
type SessionStore struct {
	store Store
}

func NewSessionStore(store Store) *SessionStore {
	return &SessionStore{store: store}
}

func (s *SessionStore) SaveToken(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("save token: %w", models.ErrInvalidArgument)
	}
	return s.store.Set(ctx, keyToken, token)
}

// Token returns the stored token, or empty string when none is stored.
func (s *SessionStore) Token(ctx context.Context) (string, error) {
	token, err := s.store.Get(ctx, keyToken)
	if errors.Is(err, models.ErrNotFound) {
		return "", nil
	}
	return token, err
}

func (s *SessionStore) RemoveToken(ctx context.Context) error {
	return s.store.Delete(ctx, keyToken)
}

func (s *SessionStore) SaveIdentity(ctx context.Context, identity models.UserIdentity) error {
	blob, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("marshal identity: %w", err)
	}
	return s.store.Set(ctx, keyIdentity, string(blob))
}

// Identity returns the cached identity, or nil when none is stored.
func (s *SessionStore) Identity(ctx context.Context) (*models.UserIdentity, error) {
	blob, err := s.store.Get(ctx, keyIdentity)
	if errors.Is(err, models.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var identity models.UserIdentity
	if err := json.Unmarshal([]byte(blob), &identity); err != nil {
		return nil, fmt.Errorf("unmarshal identity: %w", err)
	}
	return &identity, nil
}

// Clear removes the token and the cached identity.
func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, keyToken); err != nil {
		return err
	}
	return s.store.Delete(ctx, keyIdentity)
}

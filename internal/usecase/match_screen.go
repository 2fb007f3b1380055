package usecase

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/reelmates/reelmates-client/internal/models"
	"github.com/reelmates/reelmates-client/internal/repo/matches"
)

// MatchScreen lists the viewer's taste matches.
type MatchScreen struct {
	uid     string
	matches matches.Client
	log     *zap.SugaredLogger

	mu      sync.Mutex
	list    []models.Match
	loading bool
	errMsg  string
}

func NewMatchScreen(uid string, matchesClient matches.Client, log *zap.Logger) *MatchScreen {
	return &MatchScreen{
		uid:     uid,
		matches: matchesClient,
		log:     log.Named("matches").Sugar(),
	}
}

func (s *MatchScreen) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	list, err := s.matches.List(ctx, s.uid)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.errMsg = err.Error()
		return err
	}
	s.list = list
	s.errMsg = ""
	return nil
}

// Like records interest; a mutual like comes back as a match and is
// appended once confirmed.
func (s *MatchScreen) Like(ctx context.Context, targetUID string) (*models.Match, error) {
	match, err := s.matches.Like(ctx, targetUID)
	if err != nil {
		return nil, err
	}
	if match != nil {
		s.mu.Lock()
		s.list = append(s.list, *match)
		s.mu.Unlock()
	}
	return match, nil
}

func (s *MatchScreen) Pass(ctx context.Context, targetUID string) error {
	return s.matches.Pass(ctx, targetUID)
}

// Unmatch removes the match server-side, then drops it locally.
func (s *MatchScreen) Unmatch(ctx context.Context, matchID string) error {
	if err := s.matches.Remove(ctx, matchID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.list {
		if s.list[i].ID == matchID {
			s.list = append(s.list[:i], s.list[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MatchScreen) Matches() []models.Match {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Match, len(s.list))
	copy(out, s.list)
	return out
}

func (s *MatchScreen) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *MatchScreen) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

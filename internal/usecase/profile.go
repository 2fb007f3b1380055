package usecase

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/reelmates/reelmates-client/internal/models"
	"github.com/reelmates/reelmates-client/internal/repo/medialogs"
	"github.com/reelmates/reelmates-client/internal/repo/users"
	"github.com/reelmates/reelmates-client/pkg/debounce"
)

// refreshDebounce guards RefreshUserData so rapid successive triggers
// collapse into one fetch.
const refreshDebounce = 500 * time.Millisecond

// ProfileScreen holds the viewer's profile and watch diary.
type ProfileScreen struct {
	uid      string
	users    users.Client
	logs     medialogs.Client
	log      *zap.SugaredLogger
	debounce *debounce.Debouncer

	mu      sync.Mutex
	user    *models.User
	entries []models.MediaLog
	loading bool
	errMsg  string
}

func NewProfileScreen(uid string, usersClient users.Client, logsClient medialogs.Client, log *zap.Logger) *ProfileScreen {
	return &ProfileScreen{
		uid:      uid,
		users:    usersClient,
		logs:     logsClient,
		log:      log.Named("profile").Sugar(),
		debounce: debounce.New(refreshDebounce),
	}
}

// Load fetches the profile and the first diary page.
func (s *ProfileScreen) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	user, err := s.users.Profile(ctx, s.uid)
	if err != nil {
		s.setError(err)
		return err
	}

	entries, err := s.logs.List(ctx, s.uid, 1)
	if err != nil {
		s.setError(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.entries = entries
	s.loading = false
	s.errMsg = ""
	return nil
}

// RefreshUserData re-fetches the profile, debounced: triggering it three
// times inside the window produces one fetch.
func (s *ProfileScreen) RefreshUserData() {
	s.debounce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		user, err := s.users.Profile(ctx, s.uid)
		if err != nil {
			s.log.Warnw("profile refresh failed", "uid", s.uid, "error", err)
			s.setError(err)
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		s.user = user
		s.errMsg = ""
	})
}

// Stop cancels a pending debounced refresh.
func (s *ProfileScreen) Stop() {
	s.debounce.Stop()
}

func (s *ProfileScreen) setError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.errMsg = err.Error()
}

func (s *ProfileScreen) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *ProfileScreen) Entries() []models.MediaLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.MediaLog, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *ProfileScreen) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *ProfileScreen) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

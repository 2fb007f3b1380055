package usecase

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/reelmates/reelmates-client/internal/models"
	"github.com/reelmates/reelmates-client/internal/repo/media"
	"github.com/reelmates/reelmates-client/internal/repo/medialogs"
	"github.com/reelmates/reelmates-client/internal/repo/tmdb"
	"github.com/reelmates/reelmates-client/pkg/validator"
)

// MediaDetailScreen shows one title: cached details, watch providers as
// best-effort secondary data, and the viewer's diary entry for it.
type MediaDetailScreen struct {
	mediaType models.MediaType
	tmdbID    int

	media    media.Client
	tmdb     tmdb.Client
	logs     medialogs.Client
	validate *validator.Validator
	log      *zap.SugaredLogger

	mu        sync.Mutex
	detail    *models.Media
	providers *models.WatchProviders
	reviews   []models.Review
	entry     *models.MediaLog
	loading   bool
	errMsg    string
}

func NewMediaDetailScreen(
	mediaType models.MediaType,
	tmdbID int,
	mediaClient media.Client,
	tmdbClient tmdb.Client,
	logsClient medialogs.Client,
	validate *validator.Validator,
	log *zap.Logger,
) *MediaDetailScreen {
	return &MediaDetailScreen{
		mediaType: mediaType,
		tmdbID:    tmdbID,
		media:     mediaClient,
		tmdb:      tmdbClient,
		logs:      logsClient,
		validate:  validate,
		log:       log.Named("media_detail").Sugar(),
	}
}

// Load fetches the title. Watch providers are optional: a failed or timed
// out lookup is logged and the screen renders without them.
func (s *MediaDetailScreen) Load(ctx context.Context, region string) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	detail, err := s.media.Lookup(ctx, s.mediaType, s.tmdbID)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.errMsg = err.Error()
		s.mu.Unlock()
		return err
	}
	s.detail = detail
	s.errMsg = ""
	s.mu.Unlock()

	providers, err := s.tmdb.WatchProviders(ctx, s.mediaType, s.tmdbID, region)
	if err != nil {
		s.log.Debugw("watch providers unavailable", "tmdb_id", s.tmdbID, "error", err)
		return nil
	}
	s.mu.Lock()
	s.providers = providers
	s.mu.Unlock()
	return nil
}

// LogWatch validates and creates a diary entry for this title.
func (s *MediaDetailScreen) LogWatch(ctx context.Context, params medialogs.CreateParams) (*models.MediaLog, error) {
	params.TmdbID = s.tmdbID
	params.MediaType = s.mediaType
	if err := s.validate.Validate(params); err != nil {
		return nil, err
	}

	entry, err := s.logs.Create(ctx, params)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.entry = entry
	s.mu.Unlock()
	return entry, nil
}

// LoadReviews fetches the title's reviews, both shapes mixed.
func (s *MediaDetailScreen) LoadReviews(ctx context.Context) error {
	reviews, err := s.media.Reviews(ctx, s.mediaType, s.tmdbID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.reviews = reviews
	s.mu.Unlock()
	return nil
}

// UpdateLog validates and edits the viewer's diary entry.
func (s *MediaDetailScreen) UpdateLog(ctx context.Context, logID string, params medialogs.UpdateParams) (*models.MediaLog, error) {
	if err := s.validate.Validate(params); err != nil {
		return nil, err
	}

	entry, err := s.logs.Update(ctx, logID, params)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.entry = entry
	s.mu.Unlock()
	return entry, nil
}

// DeleteLog removes the viewer's diary entry.
func (s *MediaDetailScreen) DeleteLog(ctx context.Context, logID string) error {
	if err := s.logs.Delete(ctx, logID); err != nil {
		return err
	}

	s.mu.Lock()
	s.entry = nil
	s.mu.Unlock()
	return nil
}

// PosterURL builds the CDN URL for the loaded title's poster.
func (s *MediaDetailScreen) PosterURL(size string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.detail == nil {
		return ""
	}
	return s.tmdb.PosterURL(size, s.detail.PosterPath)
}

func (s *MediaDetailScreen) Detail() *models.Media {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.detail
}

func (s *MediaDetailScreen) Providers() *models.WatchProviders {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.providers
}

func (s *MediaDetailScreen) Reviews() []models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reviews
}

func (s *MediaDetailScreen) Entry() *models.MediaLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entry
}

func (s *MediaDetailScreen) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *MediaDetailScreen) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

package usecase

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/reelmates/reelmates-client/internal/models"
	"github.com/reelmates/reelmates-client/internal/repo/medialogs"
	"github.com/reelmates/reelmates-client/internal/repo/users"
)

type fakeUsers struct {
	profileCalls atomic.Int32
	user         models.User
}

func (f *fakeUsers) SignIn(ctx context.Context, params users.SignInParams) (*users.Session, error) {
	return &users.Session{Token: "tok", User: f.user}, nil
}

func (f *fakeUsers) SignUp(ctx context.Context, params users.SignUpParams) (*users.Session, error) {
	return &users.Session{Token: "tok", User: f.user}, nil
}

func (f *fakeUsers) Profile(ctx context.Context, uid string) (*models.User, error) {
	f.profileCalls.Add(1)
	u := f.user
	return &u, nil
}

func (f *fakeUsers) UpdateProfile(ctx context.Context, uid string, params users.UpdateProfileParams) (*models.User, error) {
	u := f.user
	return &u, nil
}

func (f *fakeUsers) DeleteAccount(ctx context.Context, uid string) error { return nil }

type stubMediaLogs struct {
	entries []models.MediaLog
}

func (f *stubMediaLogs) List(ctx context.Context, uid string, page int) ([]models.MediaLog, error) {
	return f.entries, nil
}

func (f *stubMediaLogs) Create(ctx context.Context, params medialogs.CreateParams) (*models.MediaLog, error) {
	return &models.MediaLog{ID: "new"}, nil
}

func (f *stubMediaLogs) Update(ctx context.Context, logID string, params medialogs.UpdateParams) (*models.MediaLog, error) {
	return &models.MediaLog{ID: logID}, nil
}

func (f *stubMediaLogs) Delete(ctx context.Context, logID string) error { return nil }

func TestProfileLoad(t *testing.T) {
	usersClient := &fakeUsers{user: models.User{UID: "me", DisplayName: "Me"}}
	logsClient := &stubMediaLogs{entries: []models.MediaLog{{ID: "l1"}}}
	screen := NewProfileScreen("me", usersClient, logsClient, zap.NewNop())

	require.NoError(t, screen.Load(context.Background()))

	assert.False(t, screen.Loading())
	require.NotNil(t, screen.User())
	assert.Equal(t, "Me", screen.User().DisplayName)
	assert.Len(t, screen.Entries(), 1)
}

func TestRefreshUserDataDebounced(t *testing.T) {
	usersClient := &fakeUsers{user: models.User{UID: "me"}}
	screen := NewProfileScreen("me", usersClient, &stubMediaLogs{}, zap.NewNop())
	defer screen.Stop()

	// three triggers inside the debounce window collapse to one fetch
	screen.RefreshUserData()
	screen.RefreshUserData()
	screen.RefreshUserData()

	assert.Eventually(t, func() bool {
		return usersClient.profileCalls.Load() == 1
	}, 2*time.Second, 20*time.Millisecond)

	// and it stays at one
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), usersClient.profileCalls.Load())
}

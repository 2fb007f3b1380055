package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelmates/reelmates-client/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	session := NewSessionStore(NewMemory())

	require.NoError(t, session.SaveToken(ctx, "abc"))

	token, err := session.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	require.NoError(t, session.RemoveToken(ctx))

	token, err = session.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", token)
}

func TestSaveTokenRejectsEmpty(t *testing.T) {
	ctx := context.Background()
	session := NewSessionStore(NewMemory())

	require.NoError(t, session.SaveToken(ctx, "abc"))

	err := session.SaveToken(ctx, "")
	require.ErrorIs(t, err, models.ErrInvalidArgument)

	// stored state untouched
	token, err := session.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
}

func TestIdentityRoundTrip(t *testing.T) {
	ctx := context.Background()
	session := NewSessionStore(NewMemory())

	identity, err := session.Identity(ctx)
	require.NoError(t, err)
	assert.Nil(t, identity)

	want := models.UserIdentity{UID: "u1", Email: "a@b.com", DisplayName: "A"}
	require.NoError(t, session.SaveIdentity(ctx, want))

	identity, err = session.Identity(ctx)
	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, want, *identity)
}

func TestClearRemovesBothEntries(t *testing.T) {
	ctx := context.Background()
	session := NewSessionStore(NewMemory())

	require.NoError(t, session.SaveToken(ctx, "abc"))
	require.NoError(t, session.SaveIdentity(ctx, models.UserIdentity{UID: "u1"}))
	require.NoError(t, session.Clear(ctx))

	token, err := session.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", token)

	identity, err := session.Identity(ctx)
	require.NoError(t, err)
	assert.Nil(t, identity)
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "k", "v1"))
	require.NoError(t, s.Set(ctx, "k", "v2")) // upsert
	require.NoError(t, s.(*sqliteStore).Close())

	s, err = OpenSQLite(path)
	require.NoError(t, err)
	value, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", value)

	_, err = s.Get(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

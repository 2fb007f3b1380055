package chats

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/reelmates/reelmates-client/internal/api"
	"github.com/reelmates/reelmates-client/internal/config"
	"github.com/reelmates/reelmates-client/internal/events"
	"github.com/reelmates/reelmates-client/internal/store"
)

func newTestClient(t *testing.T, baseURL string) Client {
	t.Helper()
	cfg := &config.Config{}
	cfg.API.BaseURL = baseURL
	cfg.API.Timeout = 5 * time.Second
	session := store.NewSessionStore(store.NewMemory())
	return NewClient(api.NewClient(cfg, session, events.NewBus(), zap.NewNop()))
}

func TestPathsEscapeIdentifiers(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()
	client := newTestClient(t, srv.URL)

	// a hostile id must stay a single path segment
	require.NoError(t, client.Delete(context.Background(), "a/../b c"))
	assert.Equal(t, "/chats/a%2F..%2Fb%20c", gotPath)

	_, err := client.RecentMessages(context.Background(), "c 1", 30)
	require.NoError(t, err)
	assert.Equal(t, "/chats/c%201/messages", gotPath)
	assert.Equal(t, "limit=30", gotQuery)

	_, err = client.ListSummaries(context.Background(), "user&admin=1")
	require.NoError(t, err)
	assert.Equal(t, "member=user%26admin%3D1", gotQuery)
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/reelmates/reelmates-client/internal/models"
	"github.com/reelmates/reelmates-client/internal/realtime"
)

type fakeChats struct {
	mu          sync.Mutex
	recent      []models.Message
	recentErr   error
	recentCalls int

	summaries    []models.ChatSummary
	summariesErr error
	summaryCalls int

	sent    []string
	deleted []string
}

func (f *fakeChats) RecentMessages(ctx context.Context, chatID string, limit int) ([]models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recentCalls++
	if f.recentErr != nil {
		return nil, f.recentErr
	}
	return f.recent, nil
}

func (f *fakeChats) ListSummaries(ctx context.Context, uid string) ([]models.ChatSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.summaryCalls++
	if f.summariesErr != nil {
		return nil, f.summariesErr
	}
	return f.summaries, nil
}

func (f *fakeChats) CreateOrGet(ctx context.Context, memberUID string) (*models.Chat, error) {
	return &models.Chat{ID: "chat-" + memberUID, Members: []string{"me", memberUID}}, nil
}

func (f *fakeChats) Delete(ctx context.Context, chatID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, chatID)
	return nil
}

func (f *fakeChats) MarkRead(ctx context.Context, chatID string) error { return nil }

func (f *fakeChats) SendMessage(ctx context.Context, chatID, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, text)
	return nil
}

func (f *fakeChats) DeleteMessage(ctx context.Context, chatID, messageID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, messageID)
	return nil
}

func (f *fakeChats) AddReaction(ctx context.Context, chatID, messageID, emoji string) error {
	return nil
}

func (f *fakeChats) RemoveReaction(ctx context.Context, chatID, messageID string) error {
	return nil
}

// fakeMessageListener records the callbacks so tests can drive snapshot
// batches by hand, and whether the fetch had resolved before attach.
type fakeMessageListener struct {
	mu                 sync.Mutex
	attached           bool
	fetchCallsAtAttach int
	ctx                context.Context
	apply              func([]realtime.MessageChange)
	onErr              func(error)
	chats              *fakeChats
}

func (f *fakeMessageListener) ListenMessages(ctx context.Context, chatID string, limit int, apply func([]realtime.MessageChange), onErr func(error)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attached = true
	f.ctx = ctx
	f.apply = apply
	f.onErr = onErr
	if f.chats != nil {
		f.chats.mu.Lock()
		f.fetchCallsAtAttach = f.chats.recentCalls
		f.chats.mu.Unlock()
	}
}

func messagesNewestFirst(n int) []models.Message {
	msgs := make([]models.Message, n)
	for i := range msgs {
		msgs[i] = models.Message{
			ID:        fmt.Sprintf("m%d", n-i),
			SenderID:  "u1",
			Text:      "orig",
			Type:      models.MessageTypeText,
			CreatedAt: time.Unix(int64(n-i), 0),
		}
	}
	return msgs
}

func newChatScreenForTest(chats *fakeChats) (*ChatScreen, *fakeMessageListener) {
	listener := &fakeMessageListener{chats: chats}
	screen := NewChatScreen("c1", chats, listener, zap.NewNop())
	return screen, listener
}

func TestChatScreenOpenFetchesThenListens(t *testing.T) {
	chats := &fakeChats{recent: messagesNewestFirst(30)}
	screen, listener := newChatScreenForTest(chats)

	require.NoError(t, screen.Open(context.Background()))
	defer screen.Close()

	assert.False(t, screen.Loading())
	assert.Empty(t, screen.Err())
	assert.Len(t, screen.Messages(), 30)

	listener.mu.Lock()
	defer listener.mu.Unlock()
	assert.True(t, listener.attached)
	assert.Equal(t, 1, listener.fetchCallsAtAttach, "listener must attach only after the initial fetch resolved")
}

func TestChatScreenMergesListenerEvents(t *testing.T) {
	chats := &fakeChats{recent: messagesNewestFirst(30)}
	screen, listener := newChatScreenForTest(chats)
	require.NoError(t, screen.Open(context.Background()))
	defer screen.Close()

	listener.apply([]realtime.MessageChange{
		{Kind: realtime.Added, Message: models.Message{ID: "m31", Text: "new"}},
		{Kind: realtime.Modified, Message: models.Message{ID: "m5", Text: "edited"}},
		{Kind: realtime.Removed, Message: models.Message{ID: "m10"}},
	})

	messages := screen.Messages()
	require.Len(t, messages, 30)
	assert.Equal(t, "m31", messages[0].ID)

	var sawM5, sawM10 bool
	for _, m := range messages {
		if m.ID == "m5" {
			sawM5 = true
			assert.Equal(t, "edited", m.Text)
		}
		if m.ID == "m10" {
			sawM10 = true
		}
	}
	assert.True(t, sawM5)
	assert.False(t, sawM10)
}

func TestChatScreenDuplicateAddedIgnored(t *testing.T) {
	chats := &fakeChats{recent: messagesNewestFirst(3)}
	screen, listener := newChatScreenForTest(chats)
	require.NoError(t, screen.Open(context.Background()))
	defer screen.Close()

	listener.apply([]realtime.MessageChange{
		{Kind: realtime.Added, Message: models.Message{ID: "m2", Text: "dup"}},
	})

	messages := screen.Messages()
	require.Len(t, messages, 3)
	for _, m := range messages {
		if m.ID == "m2" {
			assert.Equal(t, "orig", m.Text)
		}
	}
}

func TestChatScreenFetchFailureStillAttachesListener(t *testing.T) {
	chats := &fakeChats{recentErr: errors.New("network unreachable")}
	screen, listener := newChatScreenForTest(chats)

	require.NoError(t, screen.Open(context.Background()))
	defer screen.Close()

	assert.Equal(t, "network unreachable", screen.Err())
	assert.Empty(t, screen.Messages())

	listener.mu.Lock()
	attached := listener.attached
	listener.mu.Unlock()
	assert.True(t, attached, "listener attaches even when the initial fetch fails")
}

func TestChatScreenRefreshClearsError(t *testing.T) {
	chats := &fakeChats{recentErr: errors.New("boom")}
	screen, _ := newChatScreenForTest(chats)
	require.NoError(t, screen.Open(context.Background()))
	defer screen.Close()
	require.NotEmpty(t, screen.Err())

	chats.mu.Lock()
	chats.recentErr = nil
	chats.recent = messagesNewestFirst(2)
	chats.mu.Unlock()

	require.NoError(t, screen.Refresh(context.Background()))
	assert.Empty(t, screen.Err())
	assert.Len(t, screen.Messages(), 2)
}

func TestChatScreenSendDoesNotMutateLocalState(t *testing.T) {
	chats := &fakeChats{recent: messagesNewestFirst(2)}
	screen, _ := newChatScreenForTest(chats)
	require.NoError(t, screen.Open(context.Background()))
	defer screen.Close()

	require.NoError(t, screen.Send(context.Background(), "hello"))

	// the message is on the wire but not in local state until the
	// listener echoes it back
	assert.Len(t, screen.Messages(), 2)
	chats.mu.Lock()
	assert.Equal(t, []string{"hello"}, chats.sent)
	chats.mu.Unlock()
}

func TestChatScreenListenerErrorRecorded(t *testing.T) {
	chats := &fakeChats{recent: messagesNewestFirst(1)}
	screen, listener := newChatScreenForTest(chats)
	require.NoError(t, screen.Open(context.Background()))
	defer screen.Close()

	listener.onErr(errors.New("listener failed"))
	assert.Equal(t, "listener failed", screen.Err())

	// state is preserved, not torn down
	assert.Len(t, screen.Messages(), 1)
}

func TestChatScreenCloseStopsMutation(t *testing.T) {
	chats := &fakeChats{recent: messagesNewestFirst(2)}
	screen, listener := newChatScreenForTest(chats)
	require.NoError(t, screen.Open(context.Background()))

	screen.Close()

	select {
	case <-listener.ctx.Done():
	default:
		t.Fatal("listener context must be cancelled on close")
	}

	listener.apply([]realtime.MessageChange{
		{Kind: realtime.Added, Message: models.Message{ID: "late"}},
	})
	listener.onErr(errors.New("late error"))

	assert.Len(t, screen.Messages(), 2)
	assert.Empty(t, screen.Err())
}

func TestChatScreenCloseFreezesStateUnderConcurrentBatches(t *testing.T) {
	chats := &fakeChats{}
	screen, listener := newChatScreenForTest(chats)
	require.NoError(t, screen.Open(context.Background()))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 4000; i++ {
			listener.apply([]realtime.MessageChange{
				{Kind: realtime.Added, Message: models.Message{ID: fmt.Sprintf("g%d", i)}},
			})
		}
	}()

	time.Sleep(time.Millisecond)
	screen.Close()
	atClose := len(screen.Messages())
	<-done

	assert.Equal(t, atClose, len(screen.Messages()), "batches past Close must not land")
}

func TestChatScreenOpenTwiceFails(t *testing.T) {
	chats := &fakeChats{recent: messagesNewestFirst(1)}
	screen, _ := newChatScreenForTest(chats)
	require.NoError(t, screen.Open(context.Background()))
	defer screen.Close()

	assert.Error(t, screen.Open(context.Background()))
}

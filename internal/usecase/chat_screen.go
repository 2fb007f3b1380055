package usecase

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/reelmates/reelmates-client/internal/models"
	"github.com/reelmates/reelmates-client/internal/realtime"
	"github.com/reelmates/reelmates-client/internal/repo/chats"
)

// messageWindow bounds both the initial REST page and the listener query.
// There is no backfill for older messages; the window is the screen.
const messageWindow = 30

type screenState int

const (
	stateUninitialized screenState = iota
	stateInitialLoad
	stateListening
	stateTornDown
)

// ChatScreen owns the view state of one open chat. Open fetches the newest
// messages over REST and only then attaches the snapshot listener, so
// listener adds cannot race the baseline. Mutations go through REST only;
// the listener echo is the single writer of local state.
type ChatScreen struct {
	chatID   string
	chats    chats.Client
	listener MessageListener
	log      *zap.SugaredLogger

	window *realtime.Window[models.Message]

	mu      sync.Mutex
	state   screenState
	loading bool
	errMsg  string
	cancel  context.CancelFunc
}

func NewChatScreen(chatID string, chatsClient chats.Client, listener MessageListener, log *zap.Logger) *ChatScreen {
	return &ChatScreen{
		chatID:   chatID,
		chats:    chatsClient,
		listener: listener,
		log:      log.Named("chat_screen").Sugar(),
		window:   realtime.NewWindow[models.Message](),
	}
}

// Open runs the initial load and attaches the listener. The listener is
// attached after the fetch resolves, success or failure.
func (s *ChatScreen) Open(ctx context.Context) error {
	s.mu.Lock()
	if s.state != stateUninitialized {
		s.mu.Unlock()
		return fmt.Errorf("chat screen for %s already opened", s.chatID)
	}
	s.state = stateInitialLoad
	s.loading = true
	s.mu.Unlock()

	messages, err := s.chats.RecentMessages(ctx, s.chatID, messageWindow)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.errMsg = err.Error()
		s.log.Warnw("initial message fetch failed", "chat_id", s.chatID, "error", err)
	} else {
		s.window.Reset(messages)
	}
	s.state = stateListening

	listenCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	s.listener.ListenMessages(listenCtx, s.chatID, messageWindow, s.applyBatch, s.onListenError)
	return nil
}

// applyBatch holds the screen lock across the whole batch so a concurrent
// Close cannot interleave: once Close returns, no further change lands.
func (s *ChatScreen) applyBatch(batch []realtime.MessageChange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != stateListening {
		return
	}
	for _, change := range batch {
		s.window.Apply(change.Kind, change.Message)
	}
}

func (s *ChatScreen) onListenError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == stateTornDown {
		return
	}
	s.errMsg = err.Error()
}

// Refresh re-issues the REST fetch and clears the error on success. It does
// not touch the listener.
func (s *ChatScreen) Refresh(ctx context.Context) error {
	messages, err := s.chats.RecentMessages(ctx, s.chatID, messageWindow)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == stateTornDown {
		return nil
	}
	if err != nil {
		s.errMsg = err.Error()
		return err
	}
	s.window.Reset(messages)
	s.errMsg = ""
	return nil
}

// Send posts the message; it appears locally only via the listener echo.
func (s *ChatScreen) Send(ctx context.Context, text string) error {
	return s.chats.SendMessage(ctx, s.chatID, text)
}

func (s *ChatScreen) DeleteMessage(ctx context.Context, messageID string) error {
	return s.chats.DeleteMessage(ctx, s.chatID, messageID)
}

func (s *ChatScreen) React(ctx context.Context, messageID, emoji string) error {
	return s.chats.AddReaction(ctx, s.chatID, messageID, emoji)
}

func (s *ChatScreen) Unreact(ctx context.Context, messageID string) error {
	return s.chats.RemoveReaction(ctx, s.chatID, messageID)
}

// Close releases the listener. No state mutation happens afterwards.
func (s *ChatScreen) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == stateTornDown {
		return
	}
	s.state = stateTornDown
	if s.cancel != nil {
		s.cancel()
	}
}

// Messages returns the current window, newest first.
func (s *ChatScreen) Messages() []models.Message {
	return s.window.Items()
}

func (s *ChatScreen) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *ChatScreen) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

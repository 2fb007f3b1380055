package usecase

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/reelmates/reelmates-client/internal/models"
	"github.com/reelmates/reelmates-client/internal/realtime"
	"github.com/reelmates/reelmates-client/internal/repo/chats"
	"github.com/reelmates/reelmates-client/pkg/util"
)

const chatListWindow = 50

// ChatList mirrors the viewer's chat summaries: one REST fetch, then a
// listener on chats whose members contain the viewer, ordered by last
// message time. Same merge rules as the message window, keyed by chat id.
type ChatList struct {
	uid      string
	chats    chats.Client
	listener ChatListener
	log      *zap.SugaredLogger

	window *realtime.Window[models.ChatSummary]

	mu      sync.Mutex
	state   screenState
	loading bool
	errMsg  string
	cancel  context.CancelFunc
}

func NewChatList(uid string, chatsClient chats.Client, listener ChatListener, log *zap.Logger) *ChatList {
	return &ChatList{
		uid:      uid,
		chats:    chatsClient,
		listener: listener,
		log:      log.Named("chat_list").Sugar(),
		window:   realtime.NewWindow[models.ChatSummary](),
	}
}

func (l *ChatList) Open(ctx context.Context) error {
	l.mu.Lock()
	if l.state != stateUninitialized {
		l.mu.Unlock()
		return fmt.Errorf("chat list for %s already opened", l.uid)
	}
	l.state = stateInitialLoad
	l.loading = true
	l.mu.Unlock()

	summaries, err := l.chats.ListSummaries(ctx, l.uid)

	l.mu.Lock()
	l.loading = false
	if err != nil {
		l.errMsg = err.Error()
		l.log.Warnw("initial summary fetch failed", "uid", l.uid, "error", err)
	} else {
		l.window.Reset(summaries)
	}
	l.state = stateListening

	listenCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.mu.Unlock()

	l.listener.ListenChats(listenCtx, l.uid, chatListWindow, l.applyBatch, l.onListenError)
	return nil
}

// applyBatch holds the lock across the batch so Close cannot interleave.
func (l *ChatList) applyBatch(batch []realtime.ChatChange) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state != stateListening {
		return
	}
	for _, change := range batch {
		l.window.Apply(change.Kind, change.Chat)
	}
}

func (l *ChatList) onListenError(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == stateTornDown {
		return
	}
	l.errMsg = err.Error()
}

func (l *ChatList) Refresh(ctx context.Context) error {
	summaries, err := l.chats.ListSummaries(ctx, l.uid)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == stateTornDown {
		return nil
	}
	if err != nil {
		l.errMsg = err.Error()
		return err
	}
	l.window.Reset(summaries)
	l.errMsg = ""
	return nil
}

// StartChat returns the chat shared with the member, creating it if none
// exists yet.
func (l *ChatList) StartChat(ctx context.Context, memberUID string) (*models.Chat, error) {
	return l.chats.CreateOrGet(ctx, memberUID)
}

// DeleteChat removes the chat server-side; the listener delivers the
// removal back into the window.
func (l *ChatList) DeleteChat(ctx context.Context, chatID string) error {
	return l.chats.Delete(ctx, chatID)
}

func (l *ChatList) MarkRead(ctx context.Context, chatID string) error {
	return l.chats.MarkRead(ctx, chatID)
}

func (l *ChatList) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == stateTornDown {
		return
	}
	l.state = stateTornDown
	if l.cancel != nil {
		l.cancel()
	}
}

func (l *ChatList) Chats() []models.ChatSummary {
	return l.window.Items()
}

// Counterparts maps each row to the member shown on it, in window order.
func (l *ChatList) Counterparts() []string {
	return util.ConvertList(l.window.Items(), func(c models.ChatSummary) string {
		return c.OtherMember(l.uid)
	})
}

// UnreadCount is the viewer's unread count for one chat, zero when the
// document carries none.
func (l *ChatList) UnreadCount(chatID string) int {
	for _, summary := range l.window.Items() {
		if summary.ID == chatID {
			return summary.UnreadFor(l.uid)
		}
	}
	return 0
}

func (l *ChatList) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

func (l *ChatList) Err() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errMsg
}

package usecase

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/reelmates/reelmates-client/internal/models"
	"github.com/reelmates/reelmates-client/internal/realtime"
	"github.com/reelmates/reelmates-client/internal/repo/notifications"
)

const notificationWindow = 50

// NotificationFeed mirrors the viewer's notification feed the same way the
// chat list does: a REST baseline, then a snapshot listener keyed by
// notification id. Read receipts go through REST and come back via the
// listener.
type NotificationFeed struct {
	uid      string
	notifs   notifications.Client
	listener NotificationListener
	log      *zap.SugaredLogger

	window *realtime.Window[models.Notification]

	mu      sync.Mutex
	state   screenState
	loading bool
	errMsg  string
	cancel  context.CancelFunc
}

func NewNotificationFeed(uid string, notifsClient notifications.Client, listener NotificationListener, log *zap.Logger) *NotificationFeed {
	return &NotificationFeed{
		uid:      uid,
		notifs:   notifsClient,
		listener: listener,
		log:      log.Named("notification_feed").Sugar(),
		window:   realtime.NewWindow[models.Notification](),
	}
}

func (f *NotificationFeed) Open(ctx context.Context) error {
	f.mu.Lock()
	if f.state != stateUninitialized {
		f.mu.Unlock()
		return fmt.Errorf("notification feed for %s already opened", f.uid)
	}
	f.state = stateInitialLoad
	f.loading = true
	f.mu.Unlock()

	list, err := f.notifs.List(ctx, f.uid, notificationWindow)

	f.mu.Lock()
	f.loading = false
	if err != nil {
		f.errMsg = err.Error()
		f.log.Warnw("initial notification fetch failed", "uid", f.uid, "error", err)
	} else {
		f.window.Reset(list)
	}
	f.state = stateListening

	listenCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.mu.Unlock()

	f.listener.ListenNotifications(listenCtx, f.uid, notificationWindow, f.applyBatch, f.onListenError)
	return nil
}

// applyBatch holds the lock across the batch so Close cannot interleave.
func (f *NotificationFeed) applyBatch(batch []realtime.NotificationChange) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != stateListening {
		return
	}
	for _, change := range batch {
		f.window.Apply(change.Kind, change.Notification)
	}
}

func (f *NotificationFeed) onListenError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == stateTornDown {
		return
	}
	f.errMsg = err.Error()
}

func (f *NotificationFeed) MarkRead(ctx context.Context, notificationID string) error {
	return f.notifs.MarkRead(ctx, f.uid, notificationID)
}

func (f *NotificationFeed) MarkAllRead(ctx context.Context) error {
	return f.notifs.MarkAllRead(ctx, f.uid)
}

func (f *NotificationFeed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == stateTornDown {
		return
	}
	f.state = stateTornDown
	if f.cancel != nil {
		f.cancel()
	}
}

func (f *NotificationFeed) Notifications() []models.Notification {
	return f.window.Items()
}

// UnreadCount counts feed entries the viewer has not read yet.
func (f *NotificationFeed) UnreadCount() int {
	count := 0
	for _, notif := range f.window.Items() {
		if !notif.Read {
			count++
		}
	}
	return count
}

func (f *NotificationFeed) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

func (f *NotificationFeed) Err() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

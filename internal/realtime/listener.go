package realtime

import (
	"context"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/reelmates/reelmates-client/internal/models"
)

const (
	chatsCollection         = "chats"
	messagesCollection      = "messages"
	usersCollection         = "users"
	notificationsCollection = "notifications"
)

type MessageChange struct {
	Kind    Kind
	Message models.Message
}

type ChatChange struct {
	Kind Kind
	Chat models.ChatSummary
}

type NotificationChange struct {
	Kind         Kind
	Notification models.Notification
}

// Source attaches snapshot listeners to the Firestore collections this
// client mirrors. Each Listen* call runs its iterator on its own goroutine
// until ctx is cancelled; a listener error is reported once via onErr and
// stops delivery without retrying.
type Source struct {
	fs  *firestore.Client
	log *zap.SugaredLogger
}

func NewSource(fs *firestore.Client, log *zap.Logger) *Source {
	return &Source{fs: fs, log: log.Named("realtime").Sugar()}
}

// ListenMessages streams change batches for the newest limit messages of a
// chat, ordered newest first.
func (s *Source) ListenMessages(ctx context.Context, chatID string, limit int, apply func([]MessageChange), onErr func(error)) {
	query := s.fs.Collection(chatsCollection).
		Doc(chatID).
		Collection(messagesCollection).
		OrderBy("createdAt", firestore.Desc).
		Limit(limit)

	go s.consume(ctx, query, onErr, func(changes []firestore.DocumentChange) {
		batch := make([]MessageChange, 0, len(changes))
		for _, change := range changes {
			var msg models.Message
			if err := change.Doc.DataTo(&msg); err != nil {
				s.log.Warnw("skipping undecodable message", "doc", change.Doc.Ref.ID, "error", err)
				continue
			}
			msg.ID = change.Doc.Ref.ID
			msg.ChatID = chatID
			batch = append(batch, MessageChange{Kind: kindOf(change.Kind), Message: msg})
		}
		if len(batch) > 0 {
			apply(batch)
		}
	})
}

// ListenChats streams change batches for the viewer's chats, ordered by
// last-message time descending.
func (s *Source) ListenChats(ctx context.Context, uid string, limit int, apply func([]ChatChange), onErr func(error)) {
	query := s.fs.Collection(chatsCollection).
		Where("members", "array-contains", uid).
		OrderBy("lastMessageAt", firestore.Desc).
		Limit(limit)

	go s.consume(ctx, query, onErr, func(changes []firestore.DocumentChange) {
		batch := make([]ChatChange, 0, len(changes))
		for _, change := range changes {
			var chat models.ChatSummary
			if err := change.Doc.DataTo(&chat); err != nil {
				s.log.Warnw("skipping undecodable chat", "doc", change.Doc.Ref.ID, "error", err)
				continue
			}
			chat.ID = change.Doc.Ref.ID
			batch = append(batch, ChatChange{Kind: kindOf(change.Kind), Chat: chat})
		}
		if len(batch) > 0 {
			apply(batch)
		}
	})
}

// ListenNotifications streams change batches for the viewer's notification
// feed, newest first.
func (s *Source) ListenNotifications(ctx context.Context, uid string, limit int, apply func([]NotificationChange), onErr func(error)) {
	query := s.fs.Collection(usersCollection).
		Doc(uid).
		Collection(notificationsCollection).
		OrderBy("createdAt", firestore.Desc).
		Limit(limit)

	go s.consume(ctx, query, onErr, func(changes []firestore.DocumentChange) {
		batch := make([]NotificationChange, 0, len(changes))
		for _, change := range changes {
			var notif models.Notification
			if err := change.Doc.DataTo(&notif); err != nil {
				s.log.Warnw("skipping undecodable notification", "doc", change.Doc.Ref.ID, "error", err)
				continue
			}
			notif.ID = change.Doc.Ref.ID
			batch = append(batch, NotificationChange{Kind: kindOf(change.Kind), Notification: notif})
		}
		if len(batch) > 0 {
			apply(batch)
		}
	})
}

func (s *Source) consume(ctx context.Context, query firestore.Query, onErr func(error), handle func([]firestore.DocumentChange)) {
	it := query.Snapshots(ctx)
	defer it.Stop()

	for {
		snap, err := it.Next()
		if err != nil {
			if ctx.Err() != nil || status.Code(err) == codes.Canceled {
				return
			}
			s.log.Errorw("snapshot listener failed", "error", err)
			onErr(err)
			return
		}
		handle(snap.Changes)
	}
}

func kindOf(k firestore.DocumentChangeKind) Kind {
	switch k {
	case firestore.DocumentAdded:
		return Added
	case firestore.DocumentModified:
		return Modified
	case firestore.DocumentRemoved:
		return Removed
	}
	return 0
}

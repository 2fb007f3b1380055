package usecase

import (
	"context"

	"github.com/reelmates/reelmates-client/internal/realtime"
)

// MessageListener and ChatListener are the slices of realtime.Source the
// screens consume; tests substitute hand-rolled fakes.
type MessageListener interface {
	ListenMessages(ctx context.Context, chatID string, limit int, apply func([]realtime.MessageChange), onErr func(error))
}

type ChatListener interface {
	ListenChats(ctx context.Context, uid string, limit int, apply func([]realtime.ChatChange), onErr func(error))
}

type NotificationListener interface {
	ListenNotifications(ctx context.Context, uid string, limit int, apply func([]realtime.NotificationChange), onErr func(error))
}

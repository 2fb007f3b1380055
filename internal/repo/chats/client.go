// Package chats covers the chat and message REST operations. The realtime
// side of chat lives in internal/realtime; this client is the write path
// and the one-time message window fetch.
package chats

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/reelmates/reelmates-client/internal/api"
	"github.com/reelmates/reelmates-client/internal/models"
)

type Client interface {
	ListSummaries(ctx context.Context, uid string) ([]models.ChatSummary, error)
	// CreateOrGet is idempotent: requesting a chat with a member you
	// already share one with returns the existing chat.
	CreateOrGet(ctx context.Context, memberUID string) (*models.Chat, error)
	Delete(ctx context.Context, chatID string) error
	MarkRead(ctx context.Context, chatID string) error

	RecentMessages(ctx context.Context, chatID string, limit int) ([]models.Message, error)
	SendMessage(ctx context.Context, chatID, text string) error
	DeleteMessage(ctx context.Context, chatID, messageID string) error
	AddReaction(ctx context.Context, chatID, messageID, emoji string) error
	RemoveReaction(ctx context.Context, chatID, messageID string) error
}

type client struct {
	api *api.Client
}

func NewClient(apiClient *api.Client) Client {
	return &client{api: apiClient}
}

func (c *client) ListSummaries(ctx context.Context, uid string) ([]models.ChatSummary, error) {
	var summaries []models.ChatSummary
	if err := c.api.Get(ctx, fmt.Sprintf("/chats?member=%s", url.QueryEscape(uid)), &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (c *client) CreateOrGet(ctx context.Context, memberUID string) (*models.Chat, error) {
	var chat models.Chat
	body := map[string]string{"member_uid": memberUID}
	if err := c.api.Post(ctx, "/chats", body, &chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

func (c *client) Delete(ctx context.Context, chatID string) error {
	return c.api.Delete(ctx, fmt.Sprintf("/chats/%s", url.PathEscape(chatID)))
}

func (c *client) MarkRead(ctx context.Context, chatID string) error {
	return c.api.Post(ctx, fmt.Sprintf("/chats/%s/read", url.PathEscape(chatID)), nil, nil)
}

// RecentMessages returns the newest limit messages, newest first.
func (c *client) RecentMessages(ctx context.Context, chatID string, limit int) ([]models.Message, error) {
	var messages []models.Message
	path := fmt.Sprintf("/chats/%s/messages?limit=%d", url.PathEscape(chatID), limit)
	if err := c.api.Get(ctx, path, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

type sendMessageBody struct {
	Text        string             `json:"text"`
	Type        models.MessageType `json:"type"`
	ClientGenID string             `json:"client_gen_id"`
}

// SendMessage posts the message and returns once the server accepts it. The
// message reaches local state through the snapshot listener echo, never
// through an optimistic insert.
func (c *client) SendMessage(ctx context.Context, chatID, text string) error {
	body := sendMessageBody{
		Text:        text,
		Type:        models.MessageTypeText,
		ClientGenID: uuid.NewString(),
	}
	return c.api.Post(ctx, fmt.Sprintf("/chats/%s/messages", url.PathEscape(chatID)), body, nil)
}

func (c *client) DeleteMessage(ctx context.Context, chatID, messageID string) error {
	return c.api.Delete(ctx, fmt.Sprintf("/chats/%s/messages/%s", url.PathEscape(chatID), url.PathEscape(messageID)))
}

func (c *client) AddReaction(ctx context.Context, chatID, messageID, emoji string) error {
	body := map[string]string{"emoji": emoji}
	path := fmt.Sprintf("/chats/%s/messages/%s/reactions", url.PathEscape(chatID), url.PathEscape(messageID))
	return c.api.Post(ctx, path, body, nil)
}

func (c *client) RemoveReaction(ctx context.Context, chatID, messageID string) error {
	path := fmt.Sprintf("/chats/%s/messages/%s/reactions", url.PathEscape(chatID), url.PathEscape(messageID))
	return c.api.Delete(ctx, path)
}

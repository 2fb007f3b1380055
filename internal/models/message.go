package models

import "time"

// MessageType tags the message payload. Only text is rendered today; the
// other tags are carried through untouched.
type MessageType string

const (
	MessageTypeText  MessageType = "text"
	MessageTypeImage MessageType = "image"
	MessageTypeVideo MessageType = "video"
	MessageTypeAudio MessageType = "audio"
	MessageTypeFile  MessageType = "file"
)

// Message is a single chat message. Reactions maps a reacting user's UID to
// one emoji; a user holds at most one entry, adding a new reaction
// overwrites the previous one server-side.
type Message struct {
	ID          string            `json:"id" firestore:"-"`
	ChatID      string            `json:"chat_id" firestore:"-"`
	SenderID    string            `json:"sender_id" firestore:"senderId"`
	Text        string            `json:"text" firestore:"text"`
	Type        MessageType       `json:"type" firestore:"type"`
	Reactions   map[string]string `json:"reactions" firestore:"reactions"`
	ClientGenID string            `json:"client_gen_id,omitempty" firestore:"clientGenId"`
	CreatedAt   time.Time         `json:"created_at" firestore:"createdAt"`
}

func (m Message) Key() string { return m.ID }

// GroupReactions folds the per-user reaction map into per-emoji counts for
// rendering, e.g. {u1:🔥 u2:🔥 u3:😂} -> {🔥:2 😂:1}.
func (m Message) GroupReactions() map[string]int {
	if len(m.Reactions) == 0 {
		return nil
	}
	grouped := make(map[string]int, len(m.Reactions))
	for _, emoji := range m.Reactions {
		grouped[emoji]++
	}
	return grouped
}

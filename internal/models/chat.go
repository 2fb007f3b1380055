package models

import (
	"time"

	"github.com/reelmates/reelmates-client/pkg/util"
)

// Chat is a two-member conversation. The backend creates it on the first
// message between two users; re-requesting an existing pair returns the
// same chat.
type Chat struct {
	ID          string    `json:"id" firestore:"-"`
	Members     []string  `json:"members" firestore:"members"`
	LastMessage string    `json:"last_message" firestore:"lastMessage"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}

// ChatSummary is the list-screen projection of a chat. UnreadCounts maps a
// member UID to that member's unread count as denormalized on the chat
// document.
type ChatSummary struct {
	ID            string         `json:"id" firestore:"-"`
	Members       []string       `json:"members" firestore:"members"`
	LastMessage   string         `json:"last_message" firestore:"lastMessage"`
	LastMessageAt time.Time      `json:"last_message_at" firestore:"lastMessageAt"`
	UnreadCounts  map[string]int `json:"unread_count" firestore:"unreadCount"`
}

func (c ChatSummary) Key() string { return c.ID }

// UnreadFor returns the viewer's unread count, zero when the document
// carries no entry for them.
func (c ChatSummary) UnreadFor(uid string) int {
	return c.UnreadCounts[uid]
}

// OtherMember returns the member that is not the viewer, empty when the
// viewer is not a member at all. Chats always have exactly two members.
func (c ChatSummary) OtherMember(uid string) string {
	if !util.SliceIncludes(c.Members, uid) {
		return ""
	}
	for _, m := range c.Members {
		if m != uid {
			return m
		}
	}
	return ""
}

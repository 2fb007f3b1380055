package models

import "time"

type NotificationKind string

const (
	NotificationKindMatch   NotificationKind = "match"
	NotificationKindMessage NotificationKind = "message"
	NotificationKindForum   NotificationKind = "forum"
)

// Notification is a per-user feed entry mirrored from the realtime store.
type Notification struct {
	ID        string           `json:"id" firestore:"-"`
	UserID    string           `json:"user_id" firestore:"userId"`
	Kind      NotificationKind `json:"kind" firestore:"kind"`
	Title     string           `json:"title" firestore:"title"`
	Body      string           `json:"body" firestore:"body"`
	Read      bool             `json:"read" firestore:"read"`
	CreatedAt time.Time        `json:"created_at" firestore:"createdAt"`
}

func (n Notification) Key() string { return n.ID }

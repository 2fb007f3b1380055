package models

import "time"

type Forum struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PostCount   int       `json:"post_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// ForumPost reuses the chat reaction shape: user UID -> single emoji.
type ForumPost struct {
	ID           string            `json:"id"`
	ForumID      string            `json:"forum_id"`
	AuthorID     string            `json:"author_id"`
	Title        string            `json:"title"`
	Body         string            `json:"body"`
	Reactions    map[string]string `json:"reactions"`
	CommentCount int               `json:"comment_count"`
	CreatedAt    time.Time         `json:"created_at"`
}

type ForumComment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	AuthorID  string    `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

package models

import "time"

// Match pairs the viewer with another user whose watch taste overlaps
// theirs. Score is the backend-computed overlap in [0,1].
type Match struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	MatchedUserID string    `json:"matched_user_id"`
	Score         float64   `json:"score"`
	SharedTitles  []string  `json:"shared_titles"`
	User          *User     `json:"user,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

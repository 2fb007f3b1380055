package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type ReviewKind int

const (
	ReviewKindFriendActivity ReviewKind = iota + 1
	ReviewKindUser
)

// FriendActivityReview is a review surfaced on the activity feed. It names
// the title it is about via TmdbID because the feed mixes titles.
type FriendActivityReview struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	TmdbID    int       `json:"tmdbId"`
	MediaType MediaType `json:"media_type"`
	Title     string    `json:"title"`
	Rating    float64   `json:"rating"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// UserReview is a review listed under a title's own detail screen; the
// title is implied by context, so the payload carries no tmdbId.
type UserReview struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Rating    float64   `json:"rating"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// Review is the sum of the two review shapes the backend serves. The wire
// format is discriminated by the presence of a tmdbId field.
type Review struct {
	FriendActivity *FriendActivityReview
	User           *UserReview
}

func (r Review) Kind() ReviewKind {
	if r.FriendActivity != nil {
		return ReviewKindFriendActivity
	}
	return ReviewKindUser
}

func (r Review) AuthorID() string {
	if r.FriendActivity != nil {
		return r.FriendActivity.AuthorID
	}
	if r.User != nil {
		return r.User.AuthorID
	}
	return ""
}

func (r Review) Rating() float64 {
	if r.FriendActivity != nil {
		return r.FriendActivity.Rating
	}
	if r.User != nil {
		return r.User.Rating
	}
	return 0
}

func (r Review) Body() string {
	if r.FriendActivity != nil {
		return r.FriendActivity.Body
	}
	if r.User != nil {
		return r.User.Body
	}
	return ""
}

func (r *Review) UnmarshalJSON(data []byte) error {
	var disc struct {
		TmdbID *int `json:"tmdbId"`
	}
	if err := json.Unmarshal(data, &disc); err != nil {
		return fmt.Errorf("sniff review shape: %w", err)
	}
	if disc.TmdbID != nil {
		var fa FriendActivityReview
		if err := json.Unmarshal(data, &fa); err != nil {
			return fmt.Errorf("decode friend activity review: %w", err)
		}
		*r = Review{FriendActivity: &fa}
		return nil
	}
	var ur UserReview
	if err := json.Unmarshal(data, &ur); err != nil {
		return fmt.Errorf("decode user review: %w", err)
	}
	*r = Review{User: &ur}
	return nil
}

func (r Review) MarshalJSON() ([]byte, error) {
	if r.FriendActivity != nil {
		return json.Marshal(r.FriendActivity)
	}
	if r.User != nil {
		return json.Marshal(r.User)
	}
	return []byte("null"), nil
}

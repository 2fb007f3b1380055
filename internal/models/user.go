package models

import "time"

// UserIdentity is the cached identity blob persisted alongside the auth
// token. It is a projection of User small enough to keep in the session
// store.
type UserIdentity struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	PhotoURL    string `json:"photo_url"`
}

type User struct {
	UID            string    `json:"uid"`
	Email          string    `json:"email"`
	DisplayName    string    `json:"display_name"`
	PhotoURL       string    `json:"photo_url"`
	Bio            string    `json:"bio"`
	FavoriteGenres []string  `json:"favorite_genres"`
	EmailVerified  bool      `json:"email_verified"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (u User) Identity() UserIdentity {
	return UserIdentity{
		UID:         u.UID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
	}
}

package models

import "time"

type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeTV    MediaType = "tv"
)

// Media is a movie or TV entry as served by the backend's media cache,
// shaped after the TMDB payload it proxies.
type Media struct {
	TmdbID       int       `json:"tmdb_id"`
	MediaType    MediaType `json:"media_type"`
	Title        string    `json:"title"`
	Overview     string    `json:"overview"`
	PosterPath   string    `json:"poster_path"`
	BackdropPath string    `json:"backdrop_path"`
	ReleaseDate  string    `json:"release_date"`
	VoteAverage  float64   `json:"vote_average"`
	Genres       []string  `json:"genres"`
}

// MediaLog is a user's diary entry for a watched title.
type MediaLog struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	TmdbID     int       `json:"tmdb_id"`
	MediaType  MediaType `json:"media_type"`
	Title      string    `json:"title"`
	PosterPath string    `json:"poster_path"`
	Rating     float64   `json:"rating"`
	Review     string    `json:"review"`
	WatchedAt  time.Time `json:"watched_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// WatchProviders lists where a title can be streamed or rented in the
// viewer's region. Secondary data: lookups that fail are dropped, never
// surfaced as screen errors.
type WatchProviders struct {
	TmdbID   int      `json:"tmdb_id"`
	Region   string   `json:"region"`
	Stream   []string `json:"stream"`
	Rent     []string `json:"rent"`
	Purchase []string `json:"purchase"`
}

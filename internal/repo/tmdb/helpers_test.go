package tmdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosterURL(t *testing.T) {
	base := "https://image.tmdb.org/t/p/"

	assert.Equal(t,
		"https://image.tmdb.org/t/p/w500/abc123.jpg",
		PosterURL(base, "w500", "/abc123.jpg"))

	// missing separators are normalized
	assert.Equal(t,
		"https://image.tmdb.org/t/p/w185/abc123.jpg",
		PosterURL("https://image.tmdb.org/t/p", "w185", "abc123.jpg"))

	// no path, no URL
	assert.Equal(t, "", PosterURL(base, "w500", ""))
}

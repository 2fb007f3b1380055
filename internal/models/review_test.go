package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewUnmarshalFriendActivity(t *testing.T) {
	payload := `{"id":"r1","author_id":"u1","tmdbId":550,"media_type":"movie","title":"Fight Club","rating":4.5,"body":"great"}`

	var review Review
	require.NoError(t, json.Unmarshal([]byte(payload), &review))

	assert.Equal(t, ReviewKindFriendActivity, review.Kind())
	require.NotNil(t, review.FriendActivity)
	assert.Nil(t, review.User)
	assert.Equal(t, 550, review.FriendActivity.TmdbID)
	assert.Equal(t, "u1", review.AuthorID())
	assert.Equal(t, 4.5, review.Rating())
	assert.Equal(t, "great", review.Body())
}

func TestReviewUnmarshalUserReview(t *testing.T) {
	payload := `{"id":"r2","author_id":"u2","rating":3,"body":"fine"}`

	var review Review
	require.NoError(t, json.Unmarshal([]byte(payload), &review))

	assert.Equal(t, ReviewKindUser, review.Kind())
	require.NotNil(t, review.User)
	assert.Nil(t, review.FriendActivity)
	assert.Equal(t, "u2", review.AuthorID())
	assert.Equal(t, 3.0, review.Rating())
}

func TestReviewUnmarshalList(t *testing.T) {
	payload := `[{"id":"r1","tmdbId":1},{"id":"r2"}]`

	var reviews []Review
	require.NoError(t, json.Unmarshal([]byte(payload), &reviews))
	require.Len(t, reviews, 2)
	assert.Equal(t, ReviewKindFriendActivity, reviews[0].Kind())
	assert.Equal(t, ReviewKindUser, reviews[1].Kind())
}

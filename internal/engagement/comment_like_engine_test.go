package engagement_test

import (
	"testing"

	"github.com/havenpress/backend/internal/apperrors"
	"github.com/havenpress/backend/internal/engagement"
	"github.com/havenpress/backend/internal/mocks"
	"github.com/havenpress/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentLikeFixture(t *testing.T) (*engagement.CommentLikeEngine, *mocks.MockCommentLikeRepository) {
	t.Helper()
	comments := mocks.NewMockCommentRepository()
	require.NoError(t, comments.CreateComment(&models.Comment{ArticleSlug: "go-rocks", UserID: 1, Body: "nice"}))
	likes := mocks.NewMockCommentLikeRepository()
	return engagement.NewCommentLikeEngine(likes, comments), likes
}

func TestToggleLikesThenUnlikes(t *testing.T) {
	engine, likes := newCommentLikeFixture(t)

	outcome, err := engine.Toggle(1, 7)
	require.NoError(t, err)
	assert.True(t, outcome.Liked)
	assert.Equal(t, int64(1), outcome.LikeCount)

	outcome, err = engine.Toggle(1, 7)
	require.NoError(t, err)
	assert.False(t, outcome.Liked)
	assert.Equal(t, int64(0), outcome.LikeCount)
	assert.Empty(t, likes.Likes, "double toggle leaves no rows")
}

func TestToggleCountsAllUsers(t *testing.T) {
	engine, _ := newCommentLikeFixture(t)

	_, err := engine.Toggle(1, 7)
	require.NoError(t, err)
	outcome, err := engine.Toggle(1, 8)
	require.NoError(t, err)
	assert.True(t, outcome.Liked)
	assert.Equal(t, int64(2), outcome.LikeCount)
}

func TestToggleUnknownComment(t *testing.T) {
	engine, _ := newCommentLikeFixture(t)

	_, err := engine.Toggle(42, 7)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

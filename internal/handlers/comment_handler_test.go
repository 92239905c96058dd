package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/havenpress/backend/internal/apperrors"
	"github.com/havenpress/backend/internal/engagement"
	"github.com/havenpress/backend/internal/handlers"
	"github.com/havenpress/backend/internal/mocks"
	"github.com/havenpress/backend/internal/models"
	"github.com/havenpress/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentFixture(t *testing.T, likeRepo repositories.CommentLikeRepository) (*handlers.CommentHandler, *mocks.MockCommentRepository) {
	t.Helper()
	users := mocks.NewMockUserRepository()
	require.NoError(t, users.CreateUser(&models.User{Username: "ana", Email: "ana@example.com"}))
	articles := mocks.NewMockArticleRepository(users)
	require.NoError(t, articles.CreateArticle(&models.Article{Slug: "go-rocks", Title: "Go rocks", UserID: 1}))
	comments := mocks.NewMockCommentRepository()
	require.NoError(t, comments.CreateComment(&models.Comment{ArticleSlug: "go-rocks", UserID: 1, Body: "nice"}))

	engine := engagement.NewCommentLikeEngine(likeRepo, comments)
	return handlers.NewCommentHandler(comments, articles, likeRepo, engine), comments
}

func getComments(t *testing.T, h *handlers.CommentHandler, slug string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/articles/"+slug+"/comments", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("slug")
	c.SetParamValues(slug)
	return rec, h.GetCommentsByArticle(c)
}

func TestGetCommentsByArticleIncludesLikeCounts(t *testing.T) {
	likes := mocks.NewMockCommentLikeRepository()
	h, _ := newCommentFixture(t, likes)
	require.NoError(t, likes.CreateCommentLike(&models.CommentLike{CommentID: 1, UserID: 7}))
	require.NoError(t, likes.CreateCommentLike(&models.CommentLike{CommentID: 1, UserID: 8}))

	rec, err := getComments(t, h, "go-rocks")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Comments []models.CommentView `json:"comments"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Comments, 1)
	assert.Equal(t, int64(2), body.Comments[0].LikeCount)
}

// failingCommentLikes fails every like count read, standing in for an
// unreachable store.
type failingCommentLikes struct {
	*mocks.MockCommentLikeRepository
}

func (f *failingCommentLikes) GetLikesCount(commentID uint) (int64, error) {
	return 0, apperrors.New(apperrors.KindStorage, "storage failure")
}

func TestGetCommentsByArticleSurfacesLikeCountFailure(t *testing.T) {
	h, _ := newCommentFixture(t, &failingCommentLikes{mocks.NewMockCommentLikeRepository()})

	_, err := getComments(t, h, "go-rocks")
	require.Error(t, err, "a storage fault must not render as a zero like count")
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, he.Code)
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/havenpress/backend/internal/engagement"
	"github.com/havenpress/backend/internal/middleware"
	"github.com/havenpress/backend/internal/models"
	"github.com/havenpress/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository     repositories.CommentRepository
	articleRepository     repositories.ArticleRepository
	commentLikeRepository repositories.CommentLikeRepository
	commentLikes          *engagement.CommentLikeEngine
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(
	commentRepo repositories.CommentRepository,
	articleRepo repositories.ArticleRepository,
	commentLikeRepo repositories.CommentLikeRepository,
	commentLikes *engagement.CommentLikeEngine,
) *CommentHandler {
	return &CommentHandler{
		commentRepository:     commentRepo,
		articleRepository:     articleRepo,
		commentLikeRepository: commentLikeRepo,
		commentLikes:          commentLikes,
	}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/articles/:slug/comments", h.CreateComment)
	g.GET("/articles/:slug/comments", h.GetCommentsByArticle)
	g.PUT("/comments/:id", h.UpdateComment)
	g.DELETE("/comments/:id", h.DeleteComment)
	g.POST("/comments/:id/like", h.ToggleCommentLike)
}

// CreateComment creates a new comment on an article
func (h *CommentHandler) CreateComment(c echo.Context) error {
	userID := middleware.UserID(c)
	slug := c.Param("slug")

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	// Verify article exists
	if _, err := h.articleRepository.GetArticleBySlug(slug); err != nil {
		return httpError(err)
	}

	comment := &models.Comment{
		ArticleSlug: slug,
		UserID:      userID,
		Body:        req.Comment,
	}
	if err := h.commentRepository.CreateComment(comment); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "New article comment created successfully",
		"comment": comment,
	})
}

// GetCommentsByArticle retrieves an article's comments with their authors
// and like counts
func (h *CommentHandler) GetCommentsByArticle(c echo.Context) error {
	slug := c.Param("slug")

	if _, err := h.articleRepository.GetArticleBySlug(slug); err != nil {
		return httpError(err)
	}

	comments, err := h.commentRepository.GetCommentsByArticleSlug(slug)
	if err != nil {
		return httpError(err)
	}

	views := make([]models.CommentView, 0, len(comments))
	for _, comment := range comments {
		view := models.CommentView{Comment: comment}
		if comment.Author != nil {
			view.AuthorProfile = comment.Author.Profile()
		}
		count, err := h.commentLikeRepository.GetLikesCount(comment.ID)
		if err != nil {
			return httpError(err)
		}
		view.LikeCount = count
		views = append(views, view)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"message":  "Comments returned successfully",
		"comments": views,
	})
}

// UpdateComment edits an existing comment's body
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	commentID, err := parseCommentID(c)
	if err != nil {
		return err
	}

	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.commentRepository.GetCommentByID(commentID)
	if err != nil {
		return httpError(err)
	}
	comment.Body = req.Comment
	if err := h.commentRepository.UpdateComment(comment); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Comment updated successfully",
		"comment": comment,
	})
}

// DeleteComment deletes a comment by ID
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	commentID, err := parseCommentID(c)
	if err != nil {
		return err
	}
	if err := h.commentRepository.DeleteComment(commentID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Comment deleted successfully",
	})
}

// ToggleCommentLike likes the comment when the current user has not liked
// it and unlikes it when they have
func (h *CommentHandler) ToggleCommentLike(c echo.Context) error {
	userID := middleware.UserID(c)
	commentID, err := parseCommentID(c)
	if err != nil {
		return err
	}

	outcome, err := h.commentLikes.Toggle(commentID, userID)
	if err != nil {
		return httpError(err)
	}

	message := "Comment liked successfully"
	if !outcome.Liked {
		message = "Comment unliked successfully"
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"message":    message,
		"liked":      outcome.Liked,
		"like_count": outcome.LikeCount,
	})
}

func parseCommentID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}
	return uint(id), nil
}

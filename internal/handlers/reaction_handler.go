package handlers

import (
	"net/http"
	"strconv"

	"github.com/havenpress/backend/internal/engagement"
	"github.com/havenpress/backend/internal/middleware"
	"github.com/havenpress/backend/internal/models"
	"github.com/labstack/echo/v4"
)

// ReactionHandler handles HTTP requests for article likes, dislikes and
// ratings
type ReactionHandler struct {
	reactions *engagement.ReactionEngine
	ratings   *engagement.RatingStore
}

// NewReactionHandler creates a new ReactionHandler
func NewReactionHandler(reactions *engagement.ReactionEngine, ratings *engagement.RatingStore) *ReactionHandler {
	return &ReactionHandler{reactions: reactions, ratings: ratings}
}

// RegisterReactionRoutes registers reaction-related routes
func (h *ReactionHandler) RegisterReactionRoutes(g *echo.Group) {
	g.POST("/articles/:slug/like", h.LikeArticle)
	g.POST("/articles/:slug/dislike", h.DislikeArticle)
	g.POST("/articles/:article_id/rating", h.RateArticle)
}

// LikeArticle toggles the current user's like on an article
func (h *ReactionHandler) LikeArticle(c echo.Context) error {
	return h.applyReaction(c, true)
}

// DislikeArticle toggles the current user's dislike on an article
func (h *ReactionHandler) DislikeArticle(c echo.Context) error {
	return h.applyReaction(c, false)
}

func (h *ReactionHandler) applyReaction(c echo.Context, likes bool) error {
	userID := middleware.UserID(c)
	slug := c.Param("slug")

	outcome, err := h.reactions.Apply(userID, slug, likes)
	if err != nil {
		return httpError(err)
	}

	status := http.StatusCreated
	message := reactionMessage(outcome.Action, likes)
	if outcome.Action == engagement.ReactionRemoved {
		status = http.StatusOK
	}
	return c.JSON(status, echo.Map{
		"success":  true,
		"message":  message,
		"article":  outcome.Article,
		"likes":    outcome.LikeCount,
		"dislikes": outcome.DislikeCount,
	})
}

func reactionMessage(action engagement.ReactionAction, likes bool) string {
	switch {
	case action == engagement.ReactionCreated && likes:
		return "You have liked this article"
	case action == engagement.ReactionCreated:
		return "Article disliked successfully"
	case likes:
		return "You have unliked this article"
	default:
		return "You have removed the dislike on this article"
	}
}

// RateArticle records the current user's rating of an article, overwriting
// any earlier rating
func (h *ReactionHandler) RateArticle(c echo.Context) error {
	userID := middleware.UserID(c)
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid article ID")
	}

	var req models.RateArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	outcome, err := h.ratings.Rate(userID, uint(articleID), req.Rating)
	if err != nil {
		return httpError(err)
	}

	message := "Article has been rated"
	if !outcome.Created {
		message = "Article rating has been updated"
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": message,
		"rating":  outcome.Rating,
	})
}

package handlers

import (
	"net/http"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/havenpress/backend/internal/middleware"
	"github.com/havenpress/backend/internal/models"
	"github.com/havenpress/backend/internal/repositories"
	"github.com/havenpress/backend/internal/search"
	"github.com/havenpress/backend/pkg/pagination"
	"github.com/labstack/echo/v4"
)

// ArticleHandler handles HTTP requests for article CRUD and search
type ArticleHandler struct {
	articleRepository repositories.ArticleRepository
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(articleRepo repositories.ArticleRepository) *ArticleHandler {
	return &ArticleHandler{articleRepository: articleRepo}
}

// RegisterArticleRoutes registers article-related routes
func (h *ArticleHandler) RegisterArticleRoutes(g *echo.Group) {
	g.POST("/articles", h.CreateArticle)
	g.GET("/articles", h.SearchArticles)
	g.GET("/articles/:slug", h.GetArticleBySlug)
	g.PUT("/articles/:slug", h.UpdateArticle)
	g.DELETE("/articles/:slug", h.DeleteArticle)
}

// CreateArticle publishes a new article for the current user
func (h *ArticleHandler) CreateArticle(c echo.Context) error {
	userID := middleware.UserID(c)

	var req models.CreateArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	categoryID := req.CategoryID
	if categoryID == 0 {
		categoryID = 1
	}
	article := &models.Article{
		Slug:        makeSlug(req.Title),
		Title:       req.Title,
		Description: req.Description,
		Body:        req.Body,
		Images:      req.Images,
		TagList:     splitTagList(req.TagList),
		CategoryID:  categoryID,
		UserID:      userID,
	}
	if err := h.articleRepository.CreateArticle(article); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "New article created successfully",
		"article": article,
	})
}

// GetArticleBySlug returns one article with its author joined
func (h *ArticleHandler) GetArticleBySlug(c echo.Context) error {
	article, err := h.articleRepository.GetArticleBySlug(c.Param("slug"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "article": article})
}

// UpdateArticle updates an article's editable fields by slug
func (h *ArticleHandler) UpdateArticle(c echo.Context) error {
	var req models.UpdateArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	article, err := h.articleRepository.GetArticleBySlug(c.Param("slug"))
	if err != nil {
		return httpError(err)
	}
	if req.Title != "" {
		article.Title = req.Title
	}
	if req.Description != "" {
		article.Description = req.Description
	}
	if req.Body != "" {
		article.Body = req.Body
	}
	if req.Images != nil {
		article.Images = req.Images
	}
	if err := h.articleRepository.UpdateArticle(article); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Article updated successfully",
		"article": article,
	})
}

// DeleteArticle deletes an article by slug
func (h *ArticleHandler) DeleteArticle(c echo.Context) error {
	if err := h.articleRepository.DeleteArticleBySlug(c.Param("slug")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Article deleted successfully",
	})
}

// SearchArticles resolves the optional filters against articles and
// returns a page of results with pagination metadata merged at the top
// level of the response.
func (h *ArticleHandler) SearchArticles(c echo.Context) error {
	criteria, err := search.BuildCriteria(search.Filters{
		Author:     c.QueryParam("author"),
		Term:       c.QueryParam("term"),
		StartDate:  c.QueryParam("startDate"),
		EndDate:    c.QueryParam("endDate"),
		Tags:       c.QueryParam("tags"),
		CategoryID: c.QueryParam("categoryId"),
	})
	if err != nil {
		return httpError(err)
	}

	limit, offset := pagination.ParseQuery(c.QueryParam("limit"), c.QueryParam("offset"))
	articles, total, err := h.articleRepository.SearchArticles(criteria, limit, offset)
	if err != nil {
		return httpError(err)
	}
	meta := pagination.Paginate(int(total), limit, offset)

	return c.JSON(http.StatusOK, echo.Map{
		"success":     true,
		"results":     articles,
		"count":       meta.Count,
		"limit":       meta.Limit,
		"offset":      meta.Offset,
		"totalPages":  meta.TotalPages,
		"currentPage": meta.CurrentPage,
	})
}

// makeSlug derives a URL slug from the title plus a short random suffix.
// The slug is assigned once and never changes afterwards.
func makeSlug(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = "article"
	}
	return slug + "-" + uuid.NewString()[:8]
}

func splitTagList(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/havenpress/backend/internal/handlers"
	"github.com/havenpress/backend/internal/mocks"
	"github.com/havenpress/backend/internal/models"
	"github.com/havenpress/backend/internal/validators"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSearchFixture(t *testing.T) *handlers.ArticleHandler {
	t.Helper()
	users := mocks.NewMockUserRepository()
	require.NoError(t, users.CreateUser(&models.User{Username: "joanna", Email: "joanna@example.com"}))
	require.NoError(t, users.CreateUser(&models.User{Username: "bob", Email: "bob@example.com"}))

	articles := mocks.NewMockArticleRepository(users)
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, a := range []models.Article{
		{Slug: "go-basics", Title: "Intro to go", Description: "start here", UserID: 1, CategoryID: 1, TagList: []string{"go"}},
		{Slug: "go-advanced", Title: "Advanced patterns", Description: "more go material", UserID: 1, CategoryID: 2, TagList: []string{"go", "patterns"}},
		{Slug: "cooking", Title: "Cooking at home", Description: "recipes", UserID: 2, CategoryID: 3, TagList: []string{"food"}},
	} {
		article := a
		article.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, articles.CreateArticle(&article))
	}
	return handlers.NewArticleHandler(articles)
}

func performSearch(t *testing.T, h *handlers.ArticleHandler, query string) (int, map[string]json.RawMessage) {
	t.Helper()
	e := echo.New()
	e.Validator = validators.NewValidator()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/articles?"+query, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.SearchArticles(c)
	if err != nil {
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		return he.Code, nil
	}

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func decodeResults(t *testing.T, body map[string]json.RawMessage) []models.Article {
	t.Helper()
	var results []models.Article
	require.NoError(t, json.Unmarshal(body["results"], &results))
	return results
}

func decodeInt(t *testing.T, body map[string]json.RawMessage, key string) int {
	t.Helper()
	var n int
	require.NoError(t, json.Unmarshal(body[key], &n))
	return n
}

func TestSearchArticlesNoFiltersReturnsEverything(t *testing.T) {
	h := newSearchFixture(t)
	code, body := performSearch(t, h, "")
	require.Equal(t, http.StatusOK, code)

	assert.Len(t, decodeResults(t, body), 3)
	assert.Equal(t, 3, decodeInt(t, body, "count"))
	assert.Equal(t, 1, decodeInt(t, body, "totalPages"))
	assert.Equal(t, 1, decodeInt(t, body, "currentPage"))
}

func TestSearchArticlesTermMatchesTitleOrDescription(t *testing.T) {
	h := newSearchFixture(t)
	code, body := performSearch(t, h, "term=go")
	require.Equal(t, http.StatusOK, code)

	results := decodeResults(t, body)
	require.Len(t, results, 2)
	slugs := []string{results[0].Slug, results[1].Slug}
	assert.Contains(t, slugs, "go-basics", "matched via title")
	assert.Contains(t, slugs, "go-advanced", "matched via description")
}

func TestSearchArticlesTermIsCaseSensitive(t *testing.T) {
	// Collation is a storage concern; the substring match itself must not
	// fold case.
	h := newSearchFixture(t)
	code, body := performSearch(t, h, "term=Go")
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, decodeResults(t, body))
}

func TestSearchArticlesAuthorFilterJoinsUsers(t *testing.T) {
	h := newSearchFixture(t)
	code, body := performSearch(t, h, "author=jo")
	require.Equal(t, http.StatusOK, code)

	results := decodeResults(t, body)
	require.Len(t, results, 2)
	for _, a := range results {
		require.NotNil(t, a.Author)
		assert.Equal(t, "joanna", a.Author.Username)
	}
}

func TestSearchArticlesPaginationMetadata(t *testing.T) {
	h := newSearchFixture(t)
	code, body := performSearch(t, h, "limit=2&offset=2")
	require.Equal(t, http.StatusOK, code)

	assert.Len(t, decodeResults(t, body), 1)
	assert.Equal(t, 3, decodeInt(t, body, "count"))
	assert.Equal(t, 2, decodeInt(t, body, "totalPages"))
	assert.Equal(t, 2, decodeInt(t, body, "currentPage"))
}

func TestSearchArticlesMalformedDateRange(t *testing.T) {
	h := newSearchFixture(t)
	code, _ := performSearch(t, h, "startDate=bogus&endDate=2020-02-01")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestSearchArticlesLoneDateIsIgnored(t *testing.T) {
	h := newSearchFixture(t)
	code, body := performSearch(t, h, "startDate=2050-01-01")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decodeResults(t, body), 3, "incomplete range must drop the clause, not filter")
}

func TestSearchArticlesNonNumericLimitFallsBack(t *testing.T) {
	h := newSearchFixture(t)
	code, body := performSearch(t, h, "limit=abc&offset=abc")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 10, decodeInt(t, body, "limit"))
	assert.Equal(t, 0, decodeInt(t, body, "offset"))
}

func TestSearchArticlesTagContainment(t *testing.T) {
	h := newSearchFixture(t)
	code, body := performSearch(t, h, "tags=go,patterns")
	require.Equal(t, http.StatusOK, code)

	results := decodeResults(t, body)
	require.Len(t, results, 1)
	assert.Equal(t, "go-advanced", results[0].Slug)
}

func TestGetArticleBySlugNotFound(t *testing.T) {
	h := newSearchFixture(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/articles/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("slug")
	c.SetParamValues("missing")

	err := h.GetArticleBySlug(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
	assert.True(t, strings.Contains(he.Message.(string), "not found"))
}

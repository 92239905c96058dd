package search_test

import (
	"testing"
	"time"

	"github.com/havenpress/backend/internal/apperrors"
	"github.com/havenpress/backend/internal/models"
	"github.com/havenpress/backend/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCriteriaEmptyFiltersMatchesEverything(t *testing.T) {
	criteria, err := search.BuildCriteria(search.Filters{})
	require.NoError(t, err)
	assert.True(t, criteria.Empty())

	article := &models.Article{Title: "anything", CreatedAt: time.Now()}
	assert.True(t, criteria.Matches(article, "whoever"))
}

func TestBuildCriteriaDropsLoneStartDate(t *testing.T) {
	criteria, err := search.BuildCriteria(search.Filters{StartDate: "2020-01-01"})
	require.NoError(t, err)
	assert.Nil(t, criteria.Start)
	assert.Nil(t, criteria.End)
	assert.True(t, criteria.Empty(), "lone startDate must not contribute a clause")
}

func TestBuildCriteriaDropsLoneEndDate(t *testing.T) {
	criteria, err := search.BuildCriteria(search.Filters{EndDate: "2020-01-01"})
	require.NoError(t, err)
	assert.True(t, criteria.Empty())
}

func TestBuildCriteriaRejectsMalformedDates(t *testing.T) {
	_, err := search.BuildCriteria(search.Filters{StartDate: "notadate", EndDate: "2020-01-01"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	_, err = search.BuildCriteria(search.Filters{StartDate: "2020-01-01", EndDate: "2019-01-01"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestBuildCriteriaDropsNonNumericCategory(t *testing.T) {
	criteria, err := search.BuildCriteria(search.Filters{CategoryID: "fiction"})
	require.NoError(t, err)
	assert.Nil(t, criteria.CategoryID)
}

func TestBuildCriteriaSplitsTags(t *testing.T) {
	criteria, err := search.BuildCriteria(search.Filters{Tags: "go, backend,  ,databases"})
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "backend", "databases"}, criteria.Tags)
}

func TestTermMatchesTitleOrDescription(t *testing.T) {
	criteria, err := search.BuildCriteria(search.Filters{Term: "foo"})
	require.NoError(t, err)

	titleOnly := &models.Article{Title: "all about foo", Description: "nothing here"}
	descOnly := &models.Article{Title: "unrelated", Description: "foo appears here"}
	neither := &models.Article{Title: "unrelated", Description: "nothing here"}

	assert.True(t, criteria.Matches(titleOnly, "a"))
	assert.True(t, criteria.Matches(descOnly, "a"))
	assert.False(t, criteria.Matches(neither, "a"))
}

func TestAuthorMatchesUsernameSubstring(t *testing.T) {
	criteria, err := search.BuildCriteria(search.Filters{Author: "ann"})
	require.NoError(t, err)

	article := &models.Article{Title: "t"}
	assert.True(t, criteria.Matches(article, "joanna"))
	assert.False(t, criteria.Matches(article, "bob"))
}

func TestTagsRequireContainmentOfAll(t *testing.T) {
	criteria, err := search.BuildCriteria(search.Filters{Tags: "go,backend"})
	require.NoError(t, err)

	both := &models.Article{TagList: []string{"go", "backend", "extra"}}
	one := &models.Article{TagList: []string{"go"}}

	assert.True(t, criteria.Matches(both, "a"))
	assert.False(t, criteria.Matches(one, "a"), "intersection is not enough, all tags must be present")
}

func TestDateRangeIsInclusive(t *testing.T) {
	criteria, err := search.BuildCriteria(search.Filters{
		StartDate: "2020-01-01",
		EndDate:   "2020-02-01",
	})
	require.NoError(t, err)

	onStart := &models.Article{CreatedAt: mustParse(t, "2020-01-01")}
	onEnd := &models.Article{CreatedAt: mustParse(t, "2020-02-01")}
	before := &models.Article{CreatedAt: mustParse(t, "2019-12-31")}
	after := &models.Article{CreatedAt: mustParse(t, "2020-02-02")}

	assert.True(t, criteria.Matches(onStart, "a"))
	assert.True(t, criteria.Matches(onEnd, "a"))
	assert.False(t, criteria.Matches(before, "a"))
	assert.False(t, criteria.Matches(after, "a"))
}

func TestClausesCombineWithAnd(t *testing.T) {
	criteria, err := search.BuildCriteria(search.Filters{Term: "go", CategoryID: "2"})
	require.NoError(t, err)

	match := &models.Article{Title: "go tips", CategoryID: 2}
	wrongCategory := &models.Article{Title: "go tips", CategoryID: 3}

	assert.True(t, criteria.Matches(match, "a"))
	assert.False(t, criteria.Matches(wrongCategory, "a"))
}

func mustParse(t *testing.T, raw string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", raw)
	require.NoError(t, err)
	return parsed
}

package mocks_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/havenpress/backend/internal/mocks"
	"github.com/havenpress/backend/internal/models"
	"github.com/havenpress/backend/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindOrCreateUserConcurrentCallsCreateOnce(t *testing.T) {
	const callers = 16
	users := mocks.NewMockUserRepository()

	var wg sync.WaitGroup
	created := make([]bool, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u := &models.User{Username: "admin", Email: "admin@example.com"}
			var err error
			created[i], err = users.FindOrCreateUser(u)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	creates := 0
	for _, c := range created {
		if c {
			creates++
		}
	}
	assert.Equal(t, 1, creates, "exactly one caller creates the row")
	assert.Len(t, users.Users, 1)
}

func TestFindOrCreateUserReturnsExistingRow(t *testing.T) {
	users := mocks.NewMockUserRepository()
	require.NoError(t, users.CreateUser(&models.User{Username: "admin", Email: "admin@example.com", Name: "Admin"}))

	u := &models.User{Username: "admin", Email: "other@example.com"}
	created, err := users.FindOrCreateUser(u)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, uint(1), u.ID)
	assert.Equal(t, "Admin", u.Name)
}

func TestSearchArticlesDuringConcurrentUserWrites(t *testing.T) {
	users := mocks.NewMockUserRepository()
	require.NoError(t, users.CreateUser(&models.User{Username: "ana", Email: "ana@example.com"}))
	articles := mocks.NewMockArticleRepository(users)
	require.NoError(t, articles.CreateArticle(&models.Article{Slug: "go-rocks", Title: "Go rocks", UserID: 1}))

	criteria, err := search.BuildCriteria(search.Filters{Author: "ana"})
	require.NoError(t, err)

	// Run under -race: searches must not observe the user map mid-write.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := users.CreateUser(&models.User{
				Username: fmt.Sprintf("writer-%d", i),
				Email:    fmt.Sprintf("writer-%d@example.com", i),
			})
			assert.NoError(t, err)
		}(i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			results, total, err := articles.SearchArticles(criteria, 10, 0)
			assert.NoError(t, err)
			assert.Equal(t, int64(1), total)
			assert.Len(t, results, 1)
		}()
	}
	wg.Wait()
}

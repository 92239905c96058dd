// Package mocks provides in-memory repository implementations for tests.
// They enforce the same composite unique constraints and return the same
// tagged errors as the PostgreSQL implementations, so the engines behave
// identically over either.
package mocks

import (
	"sort"
	"sync"

	"github.com/havenpress/backend/internal/apperrors"
	"github.com/havenpress/backend/internal/models"
	"github.com/havenpress/backend/internal/search"
)

// MockUserRepository is an in-memory UserRepository.
type MockUserRepository struct {
	mu     sync.Mutex
	nextID uint
	Users  map[uint]*models.User
}

// NewMockUserRepository creates an empty in-memory user store.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{nextID: 1, Users: make(map[uint]*models.User)}
}

func (m *MockUserRepository) CreateUser(user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.Users {
		if u.Email == user.Email || u.Username == user.Username {
			return apperrors.New(apperrors.KindConflict, "user already exists")
		}
	}
	user.ID = m.nextID
	m.nextID++
	m.Users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetUserByID(id uint) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.Users[id]; ok {
		return u, nil
	}
	return nil, apperrors.New(apperrors.KindNotFound, "user not found")
}

func (m *MockUserRepository) GetUserByEmail(email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.New(apperrors.KindNotFound, "user not found")
}

func (m *MockUserRepository) FindOrCreateUser(user *models.User) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.Users {
		if u.Username == user.Username || u.Email == user.Email {
			*user = *u
			return false, nil
		}
	}
	user.ID = m.nextID
	m.nextID++
	m.Users[user.ID] = user
	return true, nil
}

// snapshotUsers copies the user map under the lock so other repositories
// can resolve authors without racing concurrent writes.
func (m *MockUserRepository) snapshotUsers() map[uint]*models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	users := make(map[uint]*models.User, len(m.Users))
	for id, u := range m.Users {
		users[id] = u
	}
	return users
}

// MockArticleRepository is an in-memory ArticleRepository. Search resolves
// author usernames through the linked user store.
type MockArticleRepository struct {
	mu       sync.Mutex
	nextID   uint
	Articles map[string]*models.Article // by slug
	users    *MockUserRepository
}

// NewMockArticleRepository creates an empty in-memory article store backed
// by users for author joins.
func NewMockArticleRepository(users *MockUserRepository) *MockArticleRepository {
	return &MockArticleRepository{
		nextID:   1,
		Articles: make(map[string]*models.Article),
		users:    users,
	}
}

func (m *MockArticleRepository) CreateArticle(article *models.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Articles[article.Slug]; ok {
		return apperrors.New(apperrors.KindConflict, "article already exists")
	}
	article.ID = m.nextID
	m.nextID++
	m.Articles[article.Slug] = article
	return nil
}

func (m *MockArticleRepository) GetArticleBySlug(slug string) (*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.Articles[slug]; ok {
		return a, nil
	}
	return nil, apperrors.New(apperrors.KindNotFound, "article not found")
}

func (m *MockArticleRepository) GetArticleByID(id uint) (*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.Articles {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, apperrors.New(apperrors.KindNotFound, "article not found")
}

func (m *MockArticleRepository) UpdateArticle(article *models.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Articles[article.Slug]; !ok {
		return apperrors.New(apperrors.KindNotFound, "article not found")
	}
	m.Articles[article.Slug] = article
	return nil
}

func (m *MockArticleRepository) DeleteArticleBySlug(slug string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Articles[slug]; !ok {
		return apperrors.New(apperrors.KindNotFound, "article not found")
	}
	delete(m.Articles, slug)
	return nil
}

func (m *MockArticleRepository) SearchArticles(criteria search.Criteria, limit, offset int) ([]models.Article, int64, error) {
	authors := m.users.snapshotUsers()
	m.mu.Lock()
	defer m.mu.Unlock()

	var matched []models.Article
	for _, a := range m.Articles {
		username := ""
		if author, ok := authors[a.UserID]; ok {
			username = author.Username
			copied := *a
			profile := *author
			copied.Author = &profile
			if criteria.Matches(a, username) {
				matched = append(matched, copied)
			}
			continue
		}
		if criteria.Matches(a, username) {
			matched = append(matched, *a)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, total, nil
}

// MockReactionRepository is an in-memory ReactionRepository with the
// (user, article) unique constraint enforced atomically.
type MockReactionRepository struct {
	mu        sync.Mutex
	nextID    uint
	Reactions map[reactionKey]*models.Reaction
}

type reactionKey struct {
	userID      uint
	articleSlug string
}

// NewMockReactionRepository creates an empty in-memory reaction store.
func NewMockReactionRepository() *MockReactionRepository {
	return &MockReactionRepository{nextID: 1, Reactions: make(map[reactionKey]*models.Reaction)}
}

func (m *MockReactionRepository) CreateReaction(reaction *models.Reaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := reactionKey{reaction.UserID, reaction.ArticleSlug}
	if _, ok := m.Reactions[key]; ok {
		return apperrors.New(apperrors.KindConflict, "reaction already exists")
	}
	reaction.ID = m.nextID
	m.nextID++
	m.Reactions[key] = reaction
	return nil
}

func (m *MockReactionRepository) DeleteReaction(userID uint, articleSlug string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := reactionKey{userID, articleSlug}
	if _, ok := m.Reactions[key]; !ok {
		return apperrors.New(apperrors.KindNotFound, "reaction not found")
	}
	delete(m.Reactions, key)
	return nil
}

func (m *MockReactionRepository) HasReaction(userID uint, articleSlug string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.Reactions[reactionKey{userID, articleSlug}]
	return ok, nil
}

func (m *MockReactionRepository) CountReactions(articleSlug string, likes bool) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, r := range m.Reactions {
		if r.ArticleSlug == articleSlug && r.Likes == likes {
			count++
		}
	}
	return count, nil
}

// MockRatingRepository is an in-memory RatingRepository with the
// (user, article) unique constraint enforced atomically.
type MockRatingRepository struct {
	mu      sync.Mutex
	nextID  uint
	Ratings map[ratingKey]*models.Rating
}

type ratingKey struct {
	userID    uint
	articleID uint
}

// NewMockRatingRepository creates an empty in-memory rating store.
func NewMockRatingRepository() *MockRatingRepository {
	return &MockRatingRepository{nextID: 1, Ratings: make(map[ratingKey]*models.Rating)}
}

func (m *MockRatingRepository) GetRating(userID, articleID uint) (*models.Rating, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.Ratings[ratingKey{userID, articleID}]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, nil
}

func (m *MockRatingRepository) CreateRating(rating *models.Rating) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := ratingKey{rating.UserID, rating.ArticleID}
	if _, ok := m.Ratings[key]; ok {
		return apperrors.New(apperrors.KindConflict, "rating already exists")
	}
	rating.ID = m.nextID
	m.nextID++
	copied := *rating
	m.Ratings[key] = &copied
	return nil
}

func (m *MockRatingRepository) UpdateRating(rating *models.Rating) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := ratingKey{rating.UserID, rating.ArticleID}
	if _, ok := m.Ratings[key]; !ok {
		return apperrors.New(apperrors.KindNotFound, "rating not found")
	}
	copied := *rating
	m.Ratings[key] = &copied
	return nil
}

// MockCommentRepository is an in-memory CommentRepository.
type MockCommentRepository struct {
	mu       sync.Mutex
	nextID   uint
	Comments map[uint]*models.Comment
}

// NewMockCommentRepository creates an empty in-memory comment store.
func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{nextID: 1, Comments: make(map[uint]*models.Comment)}
}

func (m *MockCommentRepository) CreateComment(comment *models.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	comment.ID = m.nextID
	m.nextID++
	m.Comments[comment.ID] = comment
	return nil
}

func (m *MockCommentRepository) GetCommentByID(id uint) (*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.Comments[id]; ok {
		return c, nil
	}
	return nil, apperrors.New(apperrors.KindNotFound, "comment not found")
}

func (m *MockCommentRepository) GetCommentsByArticleSlug(articleSlug string) ([]models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var comments []models.Comment
	for _, c := range m.Comments {
		if c.ArticleSlug == articleSlug {
			comments = append(comments, *c)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	return comments, nil
}

func (m *MockCommentRepository) UpdateComment(comment *models.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Comments[comment.ID]; !ok {
		return apperrors.New(apperrors.KindNotFound, "comment not found")
	}
	m.Comments[comment.ID] = comment
	return nil
}

func (m *MockCommentRepository) DeleteComment(id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Comments[id]; !ok {
		return apperrors.New(apperrors.KindNotFound, "comment not found")
	}
	delete(m.Comments, id)
	return nil
}

// MockCommentLikeRepository is an in-memory CommentLikeRepository with the
// (comment, user) unique constraint enforced atomically.
type MockCommentLikeRepository struct {
	mu     sync.Mutex
	nextID uint
	Likes  map[commentLikeKey]*models.CommentLike
}

type commentLikeKey struct {
	commentID uint
	userID    uint
}

// NewMockCommentLikeRepository creates an empty in-memory comment-like store.
func NewMockCommentLikeRepository() *MockCommentLikeRepository {
	return &MockCommentLikeRepository{nextID: 1, Likes: make(map[commentLikeKey]*models.CommentLike)}
}

func (m *MockCommentLikeRepository) CreateCommentLike(like *models.CommentLike) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := commentLikeKey{like.CommentID, like.UserID}
	if _, ok := m.Likes[key]; ok {
		return apperrors.New(apperrors.KindConflict, "comment like already exists")
	}
	like.ID = m.nextID
	m.nextID++
	m.Likes[key] = like
	return nil
}

func (m *MockCommentLikeRepository) DeleteCommentLike(commentID, userID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := commentLikeKey{commentID, userID}
	if _, ok := m.Likes[key]; !ok {
		return apperrors.New(apperrors.KindNotFound, "comment like not found")
	}
	delete(m.Likes, key)
	return nil
}

func (m *MockCommentLikeRepository) HasUserLikedComment(commentID, userID uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.Likes[commentLikeKey{commentID, userID}]
	return ok, nil
}

func (m *MockCommentLikeRepository) GetLikesCount(commentID uint) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for key := range m.Likes {
		if key.commentID == commentID {
			count++
		}
	}
	return count, nil
}

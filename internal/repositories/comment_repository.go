package repositories

import (
	"github.com/havenpress/backend/internal/apperrors"
	"github.com/havenpress/backend/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	GetCommentByID(id uint) (*models.Comment, error)
	GetCommentsByArticleSlug(articleSlug string) ([]models.Comment, error)
	UpdateComment(comment *models.Comment) error
	DeleteComment(id uint) error
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// CreateComment creates a new comment in PostgreSQL
func (r *PostgresCommentRepository) CreateComment(comment *models.Comment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return translateError(err, "comment")
	}
	return nil
}

// GetCommentByID retrieves a comment by ID from PostgreSQL
func (r *PostgresCommentRepository) GetCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, translateError(err, "comment")
	}
	return &comment, nil
}

// GetCommentsByArticleSlug retrieves an article's comments with their
// authors joined, oldest first
func (r *PostgresCommentRepository) GetCommentsByArticleSlug(articleSlug string) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("Author", selectAuthorFields).
		Where("article_slug = ?", articleSlug).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, translateError(err, "comment")
	}
	return comments, nil
}

// UpdateComment updates an existing comment in PostgreSQL
func (r *PostgresCommentRepository) UpdateComment(comment *models.Comment) error {
	if err := r.db.Save(comment).Error; err != nil {
		return translateError(err, "comment")
	}
	return nil
}

// DeleteComment deletes a comment by ID from PostgreSQL
func (r *PostgresCommentRepository) DeleteComment(id uint) error {
	res := r.db.Delete(&models.Comment{}, id)
	if res.Error != nil {
		return translateError(res.Error, "comment")
	}
	if res.RowsAffected == 0 {
		return apperrors.New(apperrors.KindNotFound, "comment not found")
	}
	return nil
}

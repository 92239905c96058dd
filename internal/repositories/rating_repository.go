package repositories

import (
	"errors"

	"github.com/havenpress/backend/internal/models"
	"gorm.io/gorm"
)

// RatingRepository defines the interface for article rating rows, keyed by
// (user_id, article_id) with a unique constraint.
type RatingRepository interface {
	// GetRating returns the stored rating, or nil when the user has not
	// rated the article.
	GetRating(userID, articleID uint) (*models.Rating, error)
	CreateRating(rating *models.Rating) error
	UpdateRating(rating *models.Rating) error
}

// PostgresRatingRepository implements RatingRepository for PostgreSQL
type PostgresRatingRepository struct {
	db *gorm.DB
}

// NewPostgresRatingRepository creates a new PostgresRatingRepository
func NewPostgresRatingRepository(db *gorm.DB) *PostgresRatingRepository {
	return &PostgresRatingRepository{db: db}
}

// GetRating retrieves a rating by (user, article), nil when absent
func (r *PostgresRatingRepository) GetRating(userID, articleID uint) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.Where("user_id = ? AND article_id = ?", userID, articleID).
		First(&rating).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translateError(err, "rating")
	}
	return &rating, nil
}

// CreateRating creates a new rating row in PostgreSQL
func (r *PostgresRatingRepository) CreateRating(rating *models.Rating) error {
	if err := r.db.Create(rating).Error; err != nil {
		return translateError(err, "rating")
	}
	return nil
}

// UpdateRating overwrites an existing rating row in place
func (r *PostgresRatingRepository) UpdateRating(rating *models.Rating) error {
	if err := r.db.Save(rating).Error; err != nil {
		return translateError(err, "rating")
	}
	return nil
}

package repositories

import (
	"github.com/havenpress/backend/internal/apperrors"
	"github.com/havenpress/backend/internal/models"
	"gorm.io/gorm"
)

// ReactionRepository defines the interface for article like/dislike rows.
// The (user_id, article_slug) pair carries a unique constraint; CreateReaction
// surfaces a violation as a conflict-tagged error so the engine can resolve
// the race.
type ReactionRepository interface {
	CreateReaction(reaction *models.Reaction) error
	DeleteReaction(userID uint, articleSlug string) error
	HasReaction(userID uint, articleSlug string) (bool, error)
	CountReactions(articleSlug string, likes bool) (int64, error)
}

// PostgresReactionRepository implements ReactionRepository for PostgreSQL
type PostgresReactionRepository struct {
	db *gorm.DB
}

// NewPostgresReactionRepository creates a new PostgresReactionRepository
func NewPostgresReactionRepository(db *gorm.DB) *PostgresReactionRepository {
	return &PostgresReactionRepository{db: db}
}

// CreateReaction creates a new reaction row in PostgreSQL
func (r *PostgresReactionRepository) CreateReaction(reaction *models.Reaction) error {
	if err := r.db.Create(reaction).Error; err != nil {
		return translateError(err, "reaction")
	}
	return nil
}

// DeleteReaction removes the reaction row for (user, article), whatever
// polarity it stored
func (r *PostgresReactionRepository) DeleteReaction(userID uint, articleSlug string) error {
	res := r.db.Where("user_id = ? AND article_slug = ?", userID, articleSlug).
		Delete(&models.Reaction{})
	if res.Error != nil {
		return translateError(res.Error, "reaction")
	}
	if res.RowsAffected == 0 {
		return apperrors.New(apperrors.KindNotFound, "reaction not found")
	}
	return nil
}

// HasReaction checks whether a reaction row exists for (user, article)
func (r *PostgresReactionRepository) HasReaction(userID uint, articleSlug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Reaction{}).
		Where("user_id = ? AND article_slug = ?", userID, articleSlug).
		Count(&count).Error
	if err != nil {
		return false, translateError(err, "reaction")
	}
	return count > 0, nil
}

// CountReactions counts an article's likes (likes=true) or dislikes
// (likes=false)
func (r *PostgresReactionRepository) CountReactions(articleSlug string, likes bool) (int64, error) {
	var count int64
	err := r.db.Model(&models.Reaction{}).
		Where("article_slug = ? AND likes = ?", articleSlug, likes).
		Count(&count).Error
	if err != nil {
		return 0, translateError(err, "reaction")
	}
	return count, nil
}

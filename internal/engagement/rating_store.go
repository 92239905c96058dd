package engagement

import (
	"fmt"

	"github.com/havenpress/backend/internal/apperrors"
	"github.com/havenpress/backend/internal/models"
	"github.com/havenpress/backend/internal/repositories"
)

// RatingBounds fixes the accepted rating range. The platform historically
// accepted any numeric value; the bounds make the valid range an explicit,
// configured contract.
type RatingBounds struct {
	Min int
	Max int
}

// DefaultRatingBounds is the 1..5 star scale.
var DefaultRatingBounds = RatingBounds{Min: 1, Max: 5}

// RatingOutcome reports whether the rating row was created or overwritten.
type RatingOutcome struct {
	Created bool           `json:"created"`
	Rating  *models.Rating `json:"rating"`
}

// RatingStore upserts per-(user, article) ratings: create when absent,
// overwrite in place when present.
type RatingStore struct {
	ratings  repositories.RatingRepository
	articles repositories.ArticleRepository
	bounds   RatingBounds
}

// NewRatingStore creates a RatingStore with the given bounds.
func NewRatingStore(ratings repositories.RatingRepository, articles repositories.ArticleRepository, bounds RatingBounds) *RatingStore {
	if bounds.Max <= bounds.Min {
		bounds = DefaultRatingBounds
	}
	return &RatingStore{ratings: ratings, articles: articles, bounds: bounds}
}

// Rate records value as the caller's rating of the article. A later rating
// overwrites the earlier one; at most one row ever exists per pair.
func (s *RatingStore) Rate(userID, articleID uint, value int) (*RatingOutcome, error) {
	if value < s.bounds.Min || value > s.bounds.Max {
		return nil, apperrors.New(apperrors.KindValidation,
			fmt.Sprintf("rating must be between %d and %d", s.bounds.Min, s.bounds.Max))
	}
	if _, err := s.articles.GetArticleByID(articleID); err != nil {
		return nil, err
	}

	existing, err := s.ratings.GetRating(userID, articleID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Rating = value
		if err := s.ratings.UpdateRating(existing); err != nil {
			return nil, err
		}
		return &RatingOutcome{Created: false, Rating: existing}, nil
	}

	rating := &models.Rating{UserID: userID, ArticleID: articleID, Rating: value}
	err = s.ratings.CreateRating(rating)
	if apperrors.IsConflict(err) {
		// A concurrent request created the row first; overwrite it, which
		// is what a sequential second rating would have done.
		return s.overwrite(userID, articleID, value)
	}
	if err != nil {
		return nil, err
	}
	return &RatingOutcome{Created: true, Rating: rating}, nil
}

func (s *RatingStore) overwrite(userID, articleID uint, value int) (*RatingOutcome, error) {
	existing, err := s.ratings.GetRating(userID, articleID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.New(apperrors.KindStorage, "rating vanished during upsert")
	}
	existing.Rating = value
	if err := s.ratings.UpdateRating(existing); err != nil {
		return nil, err
	}
	return &RatingOutcome{Created: false, Rating: existing}, nil
}

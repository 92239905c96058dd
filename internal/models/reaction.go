package models

import "time"

// Reaction records a user's like or dislike of one article. At most one
// row exists per (user, article): a user's relationship to an article is
// absent, liked or disliked, never both. Rows are created on the first
// like/dislike and deleted when toggled off; polarity is never updated in
// place.
type Reaction struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_article_reaction"`
	ArticleSlug string    `json:"article_slug" gorm:"size:255;index;uniqueIndex:idx_user_article_reaction"`
	Likes       bool      `json:"likes"`
	CreatedAt   time.Time `json:"created_at"`
}

// Rating records a user's numeric rating of one article. Unlike Reaction,
// a later rating overwrites the stored value in place.
type Rating struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_article_rating"`
	ArticleID uint      `json:"article_id" gorm:"index;uniqueIndex:idx_user_article_rating"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

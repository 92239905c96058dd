package models

import "time"

// Comment represents a comment on an article
type Comment struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ArticleSlug string    `json:"article_slug" gorm:"size:255;index"`
	UserID      uint      `json:"user_id" gorm:"index"`
	Author      *User     `json:"author,omitempty" gorm:"foreignKey:UserID"`
	Body        string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CommentView is a comment enriched with its author profile and like count.
type CommentView struct {
	Comment
	AuthorProfile AuthorProfile `json:"author_profile"`
	LikeCount     int64         `json:"like_count"`
}

// CreateCommentRequest defines the request body for commenting on an article
type CreateCommentRequest struct {
	Comment string `json:"comment" validate:"required,min=1,max=500"`
}

// UpdateCommentRequest defines the request body for editing a comment
type UpdateCommentRequest struct {
	Comment string `json:"comment" validate:"required,min=1,max=500"`
}

package models

import (
	"time"

	"github.com/lib/pq"
)

// Article represents a published piece. The slug is assigned once at
// creation and is the identity engagement rows key on.
type Article struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Slug        string         `json:"slug" gorm:"uniqueIndex;size:255"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Body        string         `json:"body"`
	Images      pq.StringArray `json:"images" gorm:"type:text[]"`
	TagList     pq.StringArray `json:"taglist" gorm:"type:text[]"`
	CategoryID  uint           `json:"category_id" gorm:"index;default:1"`
	UserID      uint           `json:"user_id" gorm:"index"`
	Author      *User          `json:"author,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Category groups articles for the category search filter.
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;size:100"`
}

// CreateArticleRequest defines the request body for publishing an article
type CreateArticleRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=255"`
	Description string   `json:"description" validate:"required,min=1"`
	Body        string   `json:"body" validate:"required,min=1"`
	Images      []string `json:"images,omitempty" validate:"omitempty,dive,url"`
	TagList     string   `json:"taglist,omitempty"` // comma-separated
	CategoryID  uint     `json:"category_id,omitempty"`
}

// UpdateArticleRequest defines the request body for updating an article
type UpdateArticleRequest struct {
	Title       string   `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description string   `json:"description,omitempty" validate:"omitempty,min=1"`
	Body        string   `json:"body,omitempty" validate:"omitempty,min=1"`
	Images      []string `json:"images,omitempty" validate:"omitempty,dive,url"`
}

// RateArticleRequest defines the request body for rating an article.
// Range bounds are enforced by the rating store's configured bounds.
type RateArticleRequest struct {
	Rating int `json:"rating" validate:"required"`
}

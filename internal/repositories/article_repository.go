package repositories

import (
	"github.com/havenpress/backend/internal/apperrors"
	"github.com/havenpress/backend/internal/models"
	"github.com/havenpress/backend/internal/search"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	CreateArticle(article *models.Article) error
	GetArticleBySlug(slug string) (*models.Article, error)
	GetArticleByID(id uint) (*models.Article, error)
	UpdateArticle(article *models.Article) error
	DeleteArticleBySlug(slug string) error
	// SearchArticles resolves a criteria to a page of articles with their
	// authors joined, plus the total count of matches before paging.
	SearchArticles(criteria search.Criteria, limit, offset int) ([]models.Article, int64, error)
}

// PostgresArticleRepository implements ArticleRepository for PostgreSQL
type PostgresArticleRepository struct {
	db *gorm.DB
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository
func NewPostgresArticleRepository(db *gorm.DB) *PostgresArticleRepository {
	return &PostgresArticleRepository{db: db}
}

// CreateArticle creates a new article in PostgreSQL
func (r *PostgresArticleRepository) CreateArticle(article *models.Article) error {
	if err := r.db.Create(article).Error; err != nil {
		return translateError(err, "article")
	}
	return nil
}

// GetArticleBySlug retrieves an article by slug with its author joined
func (r *PostgresArticleRepository) GetArticleBySlug(slug string) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author", selectAuthorFields).
		Where("slug = ?", slug).First(&article).Error
	if err != nil {
		return nil, translateError(err, "article")
	}
	return &article, nil
}

// GetArticleByID retrieves an article by its numeric id
func (r *PostgresArticleRepository) GetArticleByID(id uint) (*models.Article, error) {
	var article models.Article
	if err := r.db.First(&article, id).Error; err != nil {
		return nil, translateError(err, "article")
	}
	return &article, nil
}

// UpdateArticle updates an existing article in PostgreSQL
func (r *PostgresArticleRepository) UpdateArticle(article *models.Article) error {
	if err := r.db.Save(article).Error; err != nil {
		return translateError(err, "article")
	}
	return nil
}

// DeleteArticleBySlug deletes an article by slug from PostgreSQL
func (r *PostgresArticleRepository) DeleteArticleBySlug(slug string) error {
	res := r.db.Where("slug = ?", slug).Delete(&models.Article{})
	if res.Error != nil {
		return translateError(res.Error, "article")
	}
	if res.RowsAffected == 0 {
		return apperrors.New(apperrors.KindNotFound, "article not found")
	}
	return nil
}

// SearchArticles translates the criteria into a filtered, paged query.
// Author filtering needs the users join; all other clauses hit articles
// columns directly.
func (r *PostgresArticleRepository) SearchArticles(criteria search.Criteria, limit, offset int) ([]models.Article, int64, error) {
	base := r.db.Model(&models.Article{})
	if criteria.Author != "" {
		base = base.Joins("JOIN users ON users.id = articles.user_id").
			Where("users.username LIKE ?", "%"+criteria.Author+"%")
	}
	if criteria.Term != "" {
		pattern := "%" + criteria.Term + "%"
		base = base.Where("articles.title LIKE ? OR articles.description LIKE ?", pattern, pattern)
	}
	if criteria.Start != nil && criteria.End != nil {
		base = base.Where("articles.created_at BETWEEN ? AND ?", *criteria.Start, *criteria.End)
	}
	if len(criteria.Tags) > 0 {
		base = base.Where("articles.tag_list @> ?", pq.Array(criteria.Tags))
	}
	if criteria.CategoryID != nil {
		base = base.Where("articles.category_id = ?", *criteria.CategoryID)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, translateError(err, "article")
	}

	var articles []models.Article
	err := base.Session(&gorm.Session{}).
		Preload("Author", selectAuthorFields).
		Order("articles.created_at DESC").
		Limit(limit).Offset(offset).
		Find(&articles).Error
	if err != nil {
		return nil, 0, translateError(err, "article")
	}
	return articles, total, nil
}

// selectAuthorFields trims joined authors to their public profile columns.
func selectAuthorFields(db *gorm.DB) *gorm.DB {
	return db.Select("id", "username", "email", "name", "bio")
}

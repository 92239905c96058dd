package repositories

import (
	"errors"

	"github.com/havenpress/backend/internal/apperrors"
	"github.com/havenpress/backend/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	// FindOrCreateUser looks a user up by username or email and creates it
	// with the given fields when absent. Returns whether a row was created.
	FindOrCreateUser(user *models.User) (bool, error)
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// CreateUser creates a new user in PostgreSQL
func (r *PostgresUserRepository) CreateUser(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return translateError(err, "user")
	}
	return nil
}

// GetUserByID retrieves a user by ID from PostgreSQL
func (r *PostgresUserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, translateError(err, "user")
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email from PostgreSQL
func (r *PostgresUserRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translateError(err, "user")
	}
	return &user, nil
}

// FindOrCreateUser is the idempotent upsert backing super-admin seeding
// and resolved social-login identities.
func (r *PostgresUserRepository) FindOrCreateUser(user *models.User) (bool, error) {
	res := r.db.Where("username = ? OR email = ?", user.Username, user.Email).
		FirstOrCreate(user)
	if res.Error != nil {
		return false, translateError(res.Error, "user")
	}
	return res.RowsAffected > 0, nil
}

// translateError maps GORM errors onto the tagged error taxonomy so
// callers never branch on driver error text.
func translateError(err error, entity string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.Wrap(apperrors.KindNotFound, entity+" not found", err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.Wrap(apperrors.KindConflict, entity+" already exists", err)
	default:
		return apperrors.Wrap(apperrors.KindStorage, "storage failure", err)
	}
}

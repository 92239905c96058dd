package seed

import (
	"github.com/havenpress/backend/internal/models"
	"github.com/havenpress/backend/internal/repositories"
	"github.com/havenpress/backend/pkg/config"
	"github.com/rs/zerolog"
)

// SuperAdmin ensures the bootstrap super-admin account exists. The upsert
// is keyed on username/email, so running it on every start is safe.
func SuperAdmin(users repositories.UserRepository, cfg config.SuperAdminConfig, log zerolog.Logger) error {
	if cfg.Email == "" || cfg.Username == "" {
		log.Debug().Msg("super-admin seed credentials not configured, skipping")
		return nil
	}

	admin := &models.User{
		Email:    cfg.Email,
		Username: cfg.Username,
		Name:     cfg.Name,
		Password: cfg.Password,
		Role:     cfg.Role,
		Verified: true,
	}
	created, err := users.FindOrCreateUser(admin)
	if err != nil {
		return err
	}
	if created {
		log.Info().Str("username", admin.Username).Msg("super-admin account created")
	}
	return nil
}

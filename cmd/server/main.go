package main

import (
	"github.com/havenpress/backend/internal/repositories"
	"github.com/havenpress/backend/internal/router"
	"github.com/havenpress/backend/internal/seed"
	"github.com/havenpress/backend/internal/validators"
	"github.com/havenpress/backend/pkg/config"
	"github.com/havenpress/backend/pkg/logger"
	"github.com/labstack/echo/v4"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	log.Info().Str("env", cfg.Env).Msg("starting publishing backend")

	db, err := config.InitDB(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer config.CloseDB(db, log)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validators.NewValidator()

	router.SetupMiddleware(e)
	if err := router.SetupRoutes(e, db, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("failed to set up routes")
	}

	userRepo := repositories.NewPostgresUserRepository(db)
	if err := seed.SuperAdmin(userRepo, cfg.SuperAdmin, log); err != nil {
		log.Fatal().Err(err).Msg("failed to seed super-admin account")
	}

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

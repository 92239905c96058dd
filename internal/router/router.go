package router

import (
	"github.com/havenpress/backend/internal/engagement"
	"github.com/havenpress/backend/internal/handlers"
	"github.com/havenpress/backend/internal/middleware"
	"github.com/havenpress/backend/internal/models"
	"github.com/havenpress/backend/internal/repositories"
	"github.com/havenpress/backend/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config, log zerolog.Logger) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Article{},
		&models.Reaction{},
		&models.Rating{},
		&models.Comment{},
		&models.CommentLike{},
	)
	if err != nil {
		return err
	}
	log.Info().Msg("auto-migrations completed for all models")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// Repositories
	articleRepo := repositories.NewPostgresArticleRepository(db)
	reactionRepo := repositories.NewPostgresReactionRepository(db)
	ratingRepo := repositories.NewPostgresRatingRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	commentLikeRepo := repositories.NewPostgresCommentLikeRepository(db)

	// Engagement engines
	reactionEngine := engagement.NewReactionEngine(reactionRepo, articleRepo)
	ratingStore := engagement.NewRatingStore(ratingRepo, articleRepo, engagement.RatingBounds{
		Min: cfg.Rating.Min,
		Max: cfg.Rating.Max,
	})
	commentLikeEngine := engagement.NewCommentLikeEngine(commentLikeRepo, commentRepo)

	// All API routes require a resolved identity from the upstream gateway
	api := e.Group("/api/v1")
	api.Use(middleware.ResolvedIdentity())

	articleHandler := handlers.NewArticleHandler(articleRepo)
	articleHandler.RegisterArticleRoutes(api)
	log.Info().Msg("article routes configured")

	reactionHandler := handlers.NewReactionHandler(reactionEngine, ratingStore)
	reactionHandler.RegisterReactionRoutes(api)
	log.Info().Msg("reaction routes configured")

	commentHandler := handlers.NewCommentHandler(commentRepo, articleRepo, commentLikeRepo, commentLikeEngine)
	commentHandler.RegisterCommentRoutes(api)
	log.Info().Msg("comment routes configured")

	return nil
}

// @title Campus Job Board API
// @version 1.0
// @description Student and company accounts, job postings, skill matching and applications.
// @BasePath /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer <JWT>

package api

import (
	"context"
	"fmt"
	"time"

	"github.com/SundayYogurt/jobboard_service/config"
	"github.com/SundayYogurt/jobboard_service/infra/database"
	"github.com/SundayYogurt/jobboard_service/infra/queue"
	"github.com/SundayYogurt/jobboard_service/internal/api/rest/handlers"
	"github.com/SundayYogurt/jobboard_service/internal/helper"
	"github.com/SundayYogurt/jobboard_service/internal/repository"
	"github.com/SundayYogurt/jobboard_service/internal/repository/memory"
	"github.com/SundayYogurt/jobboard_service/internal/services"
	"github.com/SundayYogurt/jobboard_service/pkg/cloudinary"
	pkgredis "github.com/SundayYogurt/jobboard_service/pkg/redis"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 10 * time.Second

type AppDeps struct {
	Services     services.Services
	Auth         helper.Auth
	Limiter      repository.RateLimiter
	AllowOrigins string
}

// NewApp builds the fiber app with every route mounted. It opens no
// connections, so tests can drive it with in-memory services.
func NewApp(d AppDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "jobboard",
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: true,
		BodyLimit:             6 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(RequestLogger())

	origins := d.AllowOrigins
	if origins == "" {
		origins = "http://localhost:5173"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	RegisterSwagger(app)

	app.Get("/healthcheck", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true, "message": "OK", "data": nil})
	})

	v := helper.NewValidator()
	handlers.NewAuthHandler(d.Services.Auth, d.Auth, v, d.Limiter).SetupRoutes(app)
	handlers.NewUploadHandler(d.Services).SetupRoutes(app)
	handlers.NewStudentHandler(d.Services, v, d.Limiter).SetupRoutes(app)
	handlers.NewCompanyHandler(d.Services, v).SetupRoutes(app)
	handlers.NewCatalogHandler(d.Services, v).SetupRoutes(app)

	app.Use(NotFound)
	return app
}

// StartServer wires storage, redis, kafka and cloudinary from cfg and serves
// HTTP until ctx is cancelled.
func StartServer(ctx context.Context, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	expiry, err := helper.ParseExpiry(cfg.JWTExpiry)
	if err != nil {
		return fmt.Errorf("JWT_EXPIRY: %w", err)
	}
	authHelper := helper.SetupAuth(cfg.JWTSecret, expiry)
	authHelper.CookieDomain = cfg.CookieDomain
	authHelper.CookieSecure = cfg.CookieSecure

	// ---------- Redis ----------
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = pkgredis.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer rdb.Close()
		log.Info().Msg("redis connected")
	}

	// ---------- Repositories ----------
	var repos repository.Repositories
	switch cfg.StoreDriver {
	case "memory":
		log.Warn().Msg("using in-memory store, data is lost on restart")
		repos = memory.NewStore().Repositories()
		if rdb != nil {
			repos.Tokens = repository.NewTokenRepository(rdb)
			repos.Limiter = repository.NewRateLimiter(rdb)
		}
	default:
		db, err := database.Open(cfg)
		if err != nil {
			return err
		}
		defer database.Close(db)
		if err := database.Migrate(db); err != nil {
			return err
		}
		repos = repository.NewGormRepositories(db, rdb)
	}

	// ---------- Infra ----------
	deps := services.Deps{Repos: repos, Auth: authHelper}
	if cfg.KafkaBroker != "" {
		producer := queue.NewProducer(queue.KafkaConfig{
			Broker:   cfg.KafkaBroker,
			Topic:    cfg.KafkaTopic,
			Username: cfg.KafkaUsername,
			Password: cfg.KafkaPassword,
		})
		defer producer.Close()
		deps.Producer = producer
		log.Info().Str("broker", cfg.KafkaBroker).Str("topic", cfg.KafkaTopic).Msg("kafka producer ready")
	}
	if cfg.CloudinaryUrl != "" {
		cld, err := cloudinary.New(cfg.CloudinaryUrl)
		if err != nil {
			return fmt.Errorf("cloudinary init error: %w", err)
		}
		deps.Uploader = cloudinary.NewCloudinaryUploader(cld)
	}

	app := NewApp(AppDeps{
		Services:     services.NewServices(deps),
		Auth:         authHelper,
		Limiter:      repos.Limiter,
		AllowOrigins: cfg.BaseURL,
	})

	// ---------- Listen ----------
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.ServerPort).Msg("listening")
		errCh <- app.Listen(cfg.ServerPort)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info().Msg("shutting down")
		return app.ShutdownWithTimeout(shutdownTimeout)
	}
}

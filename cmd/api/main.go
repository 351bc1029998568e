package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/HemInfotech/hem_api/internal/cache"
	"github.com/HemInfotech/hem_api/internal/config"
	"github.com/HemInfotech/hem_api/internal/database"
	"github.com/HemInfotech/hem_api/internal/document"
	"github.com/HemInfotech/hem_api/internal/handler"
	"github.com/HemInfotech/hem_api/internal/middleware"
	"github.com/HemInfotech/hem_api/internal/repository"
	"github.com/HemInfotech/hem_api/internal/service"
	"github.com/HemInfotech/hem_api/internal/utils"
)

// main is the application entrypoint for the quotation API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting hem api")

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := runMigrations(db.DB, cfg.MigrationsPath); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	healthChecks := map[string]handler.HealthCheck{"database": db.PingContext}

	// 3b. Optional Redis document cache
	var docCache service.DocumentCache
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			log.Error().Err(err).Msg("redis connection failed")
			fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		docCache = cache.NewDocumentCache(redisClient, cfg.Redis.TTL)
		healthChecks["redis"] = redisClient.Ping
		log.Info().Dur("ttl", cfg.Redis.TTL).Msg("redis connected successfully")
	} else {
		log.Warn().Msg("REDIS_HOST not set - document cache disabled")
	}

	// 3c. Optional S3 archive
	var archiver service.DocumentArchiver
	if cfg.S3.Enabled() {
		s3Svc, err := service.NewS3Service(context.Background(), &cfg.S3)
		if err != nil {
			log.Error().Err(err).Msg("s3 setup failed")
			fmt.Fprintf(os.Stderr, "s3 setup failed: %v\n", err)
			os.Exit(1)
		}
		archiver = s3Svc
		log.Info().Str("bucket", cfg.S3.Bucket).Msg("document archive enabled")
	}

	// 4. Initialize repositories
	clientRepo := repository.NewClientRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	componentRepo := repository.NewComponentRepository(db)
	quotationRepo := repository.NewQuotationRepository(db)

	// 5. Initialize services
	tokens := utils.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiry)
	authSvc, err := service.NewAdminAuthService(cfg.Auth.AdminEmail, cfg.Auth.AdminPassword, tokens)
	if err != nil {
		log.Error().Err(err).Msg("auth setup failed")
		fmt.Fprintf(os.Stderr, "auth setup failed: %v\n", err)
		os.Exit(1)
	}
	catalogSvc := service.NewCatalogService(clientRepo, packageRepo, componentRepo)
	quotationSvc := service.NewQuotationService(quotationRepo, clientRepo, packageRepo, catalogSvc)
	renderer := document.NewRenderer(cfg.Company, cfg.Document.Locale)
	documentSvc := service.NewDocumentService(quotationSvc, renderer, docCache, archiver, cfg.Document.Enabled)

	// 6. Initialize handlers
	handlers := &Handlers{
		Health:    handler.NewHealthHandler(healthChecks),
		Auth:      handler.NewAuthHandler(authSvc),
		Quotation: handler.NewQuotationHandler(quotationSvc, documentSvc),
		Catalog:   handler.NewCatalogHandler(catalogSvc),
	}

	// 7. Initialize middleware
	jwtMw := middleware.NewJWTMiddleware(tokens)
	loginLimiter := middleware.NewLoginRateLimiter(5, time.Minute)

	// 8. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, jwtMw, loginLimiter)

	// 9. Start HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 10. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 11. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health    *handler.HealthHandler
	Auth      *handler.AuthHandler
	Quotation *handler.QuotationHandler
	Catalog   *handler.CatalogHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, jwtMiddleware *middleware.JWTMiddleware, loginLimiter *middleware.LoginRateLimiter) {
	api := router.Group("/api")

	api.GET("/health", handlers.Health.GetHealth)
	api.POST("/auth/login", loginLimiter.Handle(), handlers.Auth.Login)

	quotations := api.Group("/quotations")
	quotations.Use(jwtMiddleware.Handle())
	{
		quotations.GET("", handlers.Quotation.List)
		quotations.POST("", handlers.Quotation.Create)

		// Dropdowns for the quotation form
		quotations.GET("/dropdown/clients", handlers.Catalog.Clients)
		quotations.GET("/dropdown/packages", handlers.Catalog.Packages)
		quotations.GET("/dropdown/package-products/:packageId", handlers.Catalog.PackageProducts)

		quotations.GET("/:id", handlers.Quotation.Get)
		quotations.PUT("/:id", handlers.Quotation.Update)
		quotations.DELETE("/:id", handlers.Quotation.Delete)
		quotations.GET("/:id/pdf", handlers.Quotation.PDF)
	}
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB, source string) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

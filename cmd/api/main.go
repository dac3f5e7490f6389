package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/luigibreda/Monety-Backend/internal/config"
	"github.com/luigibreda/Monety-Backend/internal/database"
	"github.com/luigibreda/Monety-Backend/internal/database/migration"
	handlers "github.com/luigibreda/Monety-Backend/internal/http/handler"
	"github.com/luigibreda/Monety-Backend/internal/http/middleware"
	"github.com/luigibreda/Monety-Backend/internal/otel"
	"github.com/luigibreda/Monety-Backend/internal/repository/postgres"
	"github.com/luigibreda/Monety-Backend/internal/service"
	"github.com/luigibreda/Monety-Backend/internal/storage"
	"github.com/luigibreda/Monety-Backend/internal/token"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := time.Local

	// Tracing is optional; a failed init logs and continues without it.
	shutdownTracing, err := otel.Init(context.Background(), loc)
	if err != nil {
		log.Printf("tracing disabled: %v", err)
	} else {
		defer shutdownTracing(context.Background())
	}

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(context.Background(), db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Initialize reusable S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	// Repositories, token issuer and services
	userRepo := postgres.NewUserPostgres(db)
	arquivoRepo := postgres.NewArquivoPostgres(db)

	tokens := token.NewIssuer(
		cfg.Auth.AccessSecret,
		cfg.Auth.RefreshSecret,
		cfg.Auth.AccessTTL,
		cfg.Auth.RefreshTTL,
	)

	sessionSvc := service.NewSessionService(userRepo, tokens)
	userSvc := service.NewUserService(userRepo, sessionSvc)
	arquivoSvc := service.NewArquivoService(arquivoRepo, objStore, sessionSvc, cfg.Cache.ListTTL, cfg.Cache.DownloadTTL)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register prometheus metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, tokens, sessionSvc, userSvc, arquivoSvc)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

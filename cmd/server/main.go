package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/klauspost/compress/gzhttp"
	"golang.org/x/sync/errgroup"

	"github.com/shenikar/city_incidents/internal/config"
	v1 "github.com/shenikar/city_incidents/internal/handler/http/v1"
	"github.com/shenikar/city_incidents/internal/notify"
	"github.com/shenikar/city_incidents/internal/repository"
	"github.com/shenikar/city_incidents/internal/service"
	"github.com/shenikar/city_incidents/pkg/logger"
	"github.com/shenikar/city_incidents/pkg/postgres"
	redisclient "github.com/shenikar/city_incidents/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/city_incidents/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	shutdownTimeout = 5 * time.Second
	assetRoute      = "/assets/incidents.json"
)

// @title City Incidents API
// @version 1.0
// @description Read-only API for browsing, filtering and mapping city incidents.
// @host localhost:8080
// @BasePath /api/v1
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatalf("Server stopped with error: %v", err)
	}
	log.Info("Server gracefully stopped")
}

func run(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	g, ctx := errgroup.WithContext(ctx)

	// Инициализация репозитория
	var incidentRepo service.IncidentRepository
	switch cfg.IncidentsSource {
	case config.SourcePostgres:
		if err := runMigrations(cfg, log); err != nil {
			return err
		}

		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		defer dbpool.Close()
		log.Info("Successfully connected to PostgreSQL")

		incidentRepo = repository.NewPostgresIncidentRepository(dbpool)
	default:
		fileRepo, err := repository.NewFileIncidentRepository(ctx, cfg.IncidentsFile)
		if err != nil {
			return fmt.Errorf("failed to load incidents: %w", err)
		}
		log.WithField("path", fileRepo.Path()).Info("Incidents loaded")

		if cfg.WatchIncidentsFile {
			watcher, err := repository.NewFileWatcher(fileRepo, log, cfg.ReloadDebounce)
			if err != nil {
				return fmt.Errorf("failed to create file watcher: %w", err)
			}
			if err := watcher.Start(ctx); err != nil {
				return err
			}
			defer watcher.Stop()
		}

		incidentRepo = fileRepo
	}

	// Инициализация издателя уведомлений
	var publisher notify.Publisher = notify.NewLogPublisher(log)
	if cfg.RedisAddr != "" {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			return err
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		publisher = notify.NewRedisPublisher(redisClient, cfg.NotifyDedupWindow)

		// Воркер доставки уведомлений на вебхук
		worker := notify.NewWorker(redisClient, log, cfg)
		g.Go(func() error {
			return worker.Run(ctx)
		})
	} else {
		log.Warn("REDIS_ADDR is empty, notifications are written to the log only")
	}

	// Инициализация сервисов
	incidentService := service.NewIncidentService(incidentRepo, log, cfg, publisher)

	// Инициализация хэндлеров
	handler := v1.NewHandler(incidentService, log, cfg)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           newRouter(cfg, handler, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Запуск сервера
	g.Go(func() error {
		log.Infof("HTTP server started on port %s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting HTTP server: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-ctx.Done()
		log.Info("Received shutdown signal, shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// newRouter собирает gin-роутер API со сжатием ответов
func newRouter(cfg *config.Config, handler *v1.Handler, log *logrus.Logger) http.Handler {
	router := gin.New()
	router.Use(v1.RequestIDMiddleware(), v1.LoggerMiddleware(log), gin.Recovery())
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Исходный файл отдается без изменений
	if cfg.IncidentsSource == config.SourceFile {
		router.StaticFile(assetRoute, cfg.IncidentsFile)
	}

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return gzhttp.GzipHandler(router)
}

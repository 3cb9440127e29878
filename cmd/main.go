package main

import (
	"context"
	"log"
	"time"

	"github.com/HariharanVicky/user-management-service/config"
	"github.com/HariharanVicky/user-management-service/db"
	"github.com/HariharanVicky/user-management-service/internal/analytics"
	analyticshandler "github.com/HariharanVicky/user-management-service/internal/analytics/handler"
	authhandler "github.com/HariharanVicky/user-management-service/internal/auth/handler"
	authservice "github.com/HariharanVicky/user-management-service/internal/auth/service"
	"github.com/HariharanVicky/user-management-service/internal/auth/strategy"
	"github.com/HariharanVicky/user-management-service/internal/events"
	patternhandler "github.com/HariharanVicky/user-management-service/internal/patterns/handler"
	todohandler "github.com/HariharanVicky/user-management-service/internal/todo/handler"
	todosqlite "github.com/HariharanVicky/user-management-service/internal/todo/repository/sqlite"
	todoservice "github.com/HariharanVicky/user-management-service/internal/todo/service"
	userhandler "github.com/HariharanVicky/user-management-service/internal/user/handler"
	userpostgres "github.com/HariharanVicky/user-management-service/internal/user/repository/postgres"
	userservice "github.com/HariharanVicky/user-management-service/internal/user/service"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("failed to set up postgres pool: %v", err)
	}
	defer pool.Close()

	todoDB, err := db.NewSQLite(cfg.SQLitePath)
	if err != nil {
		log.Fatalf("failed to open todo database: %v", err)
	}
	defer todoDB.Close()

	userRepo := userpostgres.NewPostgresUserRepository(pool)
	todoRepo := todosqlite.NewSQLiteTodoRepository(todoDB)
	if err := todoRepo.Migrate(ctx); err != nil {
		log.Fatalf("failed to migrate todo database: %v", err)
	}

	eventManager := events.NewManager(
		events.NewEmailListener(),
		events.NewAuditListener(),
	)

	tokenService := authservice.NewTokenService(cfg.JWTSecret, cfg.TokenExpiryHours)
	userService := userservice.NewUserService(userRepo, eventManager)
	authService := authservice.NewAuthService(userRepo, tokenService, eventManager)
	todoService := todoservice.NewTodoService(todoRepo)

	var cache *analytics.Cache
	if cfg.RedisAddr != "" {
		cache = analytics.NewCache(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	}
	analyticsService := analytics.NewService(userRepo, cache,
		time.Duration(cfg.AnalyticsCacheTTLMin)*time.Minute)

	strategies := strategy.NewRegistry(
		strategy.NewEmailPassword(userRepo),
		strategy.NewAPIKey(userRepo, cfg.APIKey, cfg.ServiceAccountEmail),
	)
	factory := db.NewFactory(cfg.DBURL, cfg.SQLitePath)

	app := fiber.New()
	userhandler.RegisterRoutes(app, userhandler.NewUserHandler(userService))
	authhandler.RegisterRoutes(app, authhandler.NewAuthHandler(userService, authService))
	todohandler.RegisterRoutes(app, todohandler.NewTodoHandler(todoService))
	analyticshandler.RegisterRoutes(app, analyticshandler.NewAnalyticsHandler(analyticsService))
	patternhandler.RegisterRoutes(app, patternhandler.NewPatternHandler(strategies, eventManager, userRepo, factory))

	if cache != nil {
		scheduler := cron.New()
		if _, err := scheduler.AddFunc(cfg.AnalyticsRefreshSpec, func() {
			if err := analyticsService.Refresh(context.Background()); err != nil {
				log.Printf("analytics cache refresh failed: %v", err)
			}
		}); err != nil {
			log.Fatalf("invalid analytics refresh spec %q: %v", cfg.AnalyticsRefreshSpec, err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	log.Fatal(app.Listen(":" + cfg.Port))
}

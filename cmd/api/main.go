package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/campuslink/community-service/internal/api/http"
	"github.com/campuslink/community-service/internal/api/http/handlers"
	"github.com/campuslink/community-service/internal/auth"
	"github.com/campuslink/community-service/internal/config"
	"github.com/campuslink/community-service/internal/events"
	"github.com/campuslink/community-service/internal/guard"
	"github.com/campuslink/community-service/internal/observability"
	"github.com/campuslink/community-service/internal/persistence"
	"github.com/campuslink/community-service/internal/repository"
	"github.com/campuslink/community-service/internal/service"
	"github.com/campuslink/community-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	postRepo := repository.NewPostRepository(pool)
	commentRepo := repository.NewCommentRepository(pool)
	reactionRepo := repository.NewReactionRepository(pool)
	notificationRepo := repository.NewNotificationRepository(pool)
	reportRepo := repository.NewReportRepository(pool)
	configRepo := repository.NewConfigRepository(pool)
	statsRepo := repository.NewStatsRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, userRepo)
	postService := service.NewPostService(service.PostDependencies{
		PostRepo:     postRepo,
		CategoryRepo: categoryRepo,
		ReactionRepo: reactionRepo,
		Dispatcher:   dispatcher,
	})
	commentService := service.NewCommentService(commentRepo, postRepo, dispatcher)
	categoryService := service.NewCategoryService(categoryRepo)
	reportService := service.NewReportService(reportRepo, postRepo, commentRepo, dispatcher)
	notificationService := service.NewNotificationService(notificationRepo, dispatcher, logger, cfg.Notification)
	adminService := service.NewAdminService(userRepo, configRepo, statsRepo, dispatcher)

	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: cfg.App.Env == "production",
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService, redis, cfg.Auth.CookieTTLDays),
		Posts:          handlers.NewPostsHandler(postService),
		Comments:       handlers.NewCommentsHandler(commentService, postService),
		Categories:     handlers.NewCategoriesHandler(categoryService),
		Notifications:  handlers.NewNotificationsHandler(notificationService),
		Reports:        handlers.NewReportsHandler(reportService),
		Admin:          handlers.NewAdminHandler(adminService, postService),
		Pages:          handlers.NewPagesHandler(),
		AuthMiddleware: authMiddleware,
		PageGuard:      guard.New(),
		LoginLimiter:   httptransport.NewLoginRateLimiter(cfg.RateLimit.LoginPerMinute, cfg.RateLimit.LoginBurst),
		Metrics:        metrics,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}

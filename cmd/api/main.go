package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/helpdesk-pro/helpdesk-service/internal/api/http"
	"github.com/helpdesk-pro/helpdesk-service/internal/api/http/handlers"
	"github.com/helpdesk-pro/helpdesk-service/internal/auth"
	"github.com/helpdesk-pro/helpdesk-service/internal/cache"
	"github.com/helpdesk-pro/helpdesk-service/internal/config"
	"github.com/helpdesk-pro/helpdesk-service/internal/events"
	"github.com/helpdesk-pro/helpdesk-service/internal/observability"
	"github.com/helpdesk-pro/helpdesk-service/internal/persistence"
	"github.com/helpdesk-pro/helpdesk-service/internal/repository"
	"github.com/helpdesk-pro/helpdesk-service/internal/service"
	"github.com/helpdesk-pro/helpdesk-service/internal/worker"
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
	ticketRepo := repository.NewTicketRepository(pool)
	commentRepo := repository.NewCommentRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	articleRepo := repository.NewArticleRepository(pool)

	views := cache.NewViewCache(cache.NewRedisStore(redis.Client))
	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, userRepo)
	assigner := service.NewAssignmentService(userRepo, cfg.Tickets.Assignment)
	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo: ticketRepo,
		Assigner:   assigner,
		Views:      views,
		Dispatcher: dispatcher,
		Defaults:   cfg.Tickets,
	})
	commentService := service.NewCommentService(commentRepo, ticketRepo, views, dispatcher)
	statsService := service.NewStatsService(ticketService)

	notificationService := service.NewNotificationService(dispatcher, ticketRepo, userRepo, logger)
	notificationService.RegisterHandlers()

	if cfg.Refresh.Enabled {
		refreshWorker := worker.NewRefreshWorker(views, ticketRepo, categoryRepo, cfg.Refresh.Interval(), logger)
		go refreshWorker.Run(ctx)
	}

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:          handlers.NewUsersHandler(authService),
		Tickets:        handlers.NewTicketsHandler(ticketService, commentService),
		Dashboard:      handlers.NewDashboardHandler(statsService),
		Catalog:        handlers.NewCatalogHandler(categoryRepo, articleRepo, views),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	cancel()
	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}

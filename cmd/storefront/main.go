package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/hieptb/storefront/internal/auth"
	"github.com/hieptb/storefront/internal/config"
	"github.com/hieptb/storefront/internal/handler"
	authMiddleware "github.com/hieptb/storefront/internal/handler/middleware"
	"github.com/hieptb/storefront/internal/infrastructure"
	"github.com/hieptb/storefront/internal/infrastructure/logging"
	"github.com/hieptb/storefront/internal/infrastructure/postgres"
	"github.com/hieptb/storefront/internal/infrastructure/redis"
	"github.com/hieptb/storefront/internal/infrastructure/s3"
	"github.com/hieptb/storefront/internal/usecase"
)

const (
	readTimeout  = 30 * time.Second
	writeTimeout = 30 * time.Second
	idleTimeout  = 120 * time.Second
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       slog.LevelInfo,
		ReplaceAttr: logging.MaskSensitiveAttrs,
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		slog.Error("application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pool, err := postgres.NewPostgresConnection(postgres.PostgresConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Database: cfg.Database.DBName,
		PoolSize: cfg.Database.PoolSize,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		return err
	}
	defer pool.Close()
	slog.Info("PostgreSQL connection established")

	redisConn, err := redis.NewRedisConnection(redis.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer func() { _ = redisConn.Close() }()
	redisClient := redis.NewRedisClient(redisConn)
	slog.Info("Redis connection established")

	s3Conn, err := s3.NewS3Connection(s3.S3Config{
		Endpoint:        cfg.S3.Endpoint,
		AccessKeyID:     cfg.S3.AccessKeyID,
		SecretAccessKey: cfg.S3.SecretAccessKey,
		Region:          cfg.S3.Region,
	})
	if err != nil {
		return err
	}
	s3Client := s3.NewS3Client(s3Conn, cfg.S3.BucketName, cfg.S3.PublicBaseURL)
	slog.Info("S3 connection established")

	tokenService, err := auth.New(cfg.Auth.AccessSecret, cfg.Auth.RefreshSecret)
	if err != nil {
		return err
	}

	planner := postgres.NewCatalogQueryPlanner(cfg.Catalog.PageSize)
	productRepo := postgres.NewProductRepository(pool, planner)
	userRepo := postgres.NewUserRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	reviewRepo := postgres.NewReviewRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)

	cacheKeys := redis.NewCacheKeyGenerator()
	cacheTTL := redis.NewCacheConfigWithTTLs(cfg.Catalog.CacheTTL, cfg.Catalog.QueryCacheTTL)
	invalidator := infrastructure.NewCatalogInvalidator(redisClient, cacheKeys)

	catalogUC := usecase.NewCatalogUseCase(productRepo, s3Client, redisClient, cacheKeys, cacheTTL, invalidator)
	userUC := usecase.NewUserUseCase(userRepo, tokenService)
	orderUC := usecase.NewOrderUseCase(orderRepo, productRepo, redisClient, cacheKeys, cacheTTL, invalidator)
	reviewUC := usecase.NewReviewUseCase(reviewRepo, productRepo, redisClient, cacheKeys, cacheTTL, invalidator)
	statsUC := usecase.NewStatsUseCase(statsRepo, redisClient, cacheKeys, cacheTTL)

	readinessUC := usecase.NewReadinessUseCase(
		postgres.NewPostgresHealthChecker(pool),
		redis.NewRedisHealthChecker(redisClient),
		s3.NewS3HealthChecker(s3Client),
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = authMiddleware.CustomHTTPErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				slog.LogAttrs(c.Request().Context(), slog.LevelError, "REQUEST", attrs...)
			} else {
				slog.LogAttrs(c.Request().Context(), slog.LevelInfo, "REQUEST", attrs...)
			}
			return nil
		},
	}))

	e.GET("/healthz", handler.HealthHandler)
	e.GET("/readyz", handler.NewReadyzHandler(readinessUC).Handle)

	registerRoutes(e, tokenService, handlerSet{
		users:    handler.NewUserHandler(userUC),
		products: handler.NewProductHandler(catalogUC),
		orders:   handler.NewOrderHandler(orderUC),
		reviews:  handler.NewReviewHandler(reviewUC),
		stats:    handler.NewStatsHandler(statsUC),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("starting server", "port", cfg.Server.Port)
		if err := e.StartServer(server); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		slog.Info("received shutdown signal")
	case err := <-errChan:
		if err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	slog.Info("shutting down server")
	if err := e.Shutdown(ctx); err != nil {
		return err
	}

	slog.Info("server stopped gracefully")
	return nil
}

type handlerSet struct {
	users    *handler.UserHandler
	products *handler.ProductHandler
	orders   *handler.OrderHandler
	reviews  *handler.ReviewHandler
	stats    *handler.StatsHandler
}

// registerRoutes はAPIのルーティングと認可ポリシーを一箇所にまとめます。
func registerRoutes(e *echo.Echo, verifier authMiddleware.TokenVerifier, h handlerSet) {
	requireAuth := authMiddleware.RequireAuthenticated(verifier)
	requireAdmin := authMiddleware.RequireAdmin(verifier)
	requireSelfOrAdmin := authMiddleware.RequireSelfOrAdmin(verifier)

	api := e.Group("/api/v1")

	userGroup := api.Group("/user")
	userGroup.POST("/new", h.users.Register)
	userGroup.POST("/login", h.users.Login)
	userGroup.POST("/refresh", h.users.Refresh)
	userGroup.GET("/all", h.users.List, requireAdmin)
	userGroup.GET("/:id", h.users.Get, requireSelfOrAdmin)
	userGroup.PUT("/:id", h.users.Update, requireAdmin)
	userGroup.DELETE("/:id", h.users.Delete, requireAdmin)

	productGroup := api.Group("/product")
	productGroup.POST("/new", h.products.Create, requireAdmin)
	productGroup.GET("/latest", h.products.Latest)
	productGroup.GET("/categories", h.products.Categories)
	productGroup.GET("/all-products", h.products.Search)
	productGroup.GET("/:id", h.products.Get)
	productGroup.PUT("/:id", h.products.Update, requireAdmin)
	productGroup.DELETE("/:id", h.products.Delete, requireAdmin)

	orderGroup := api.Group("/order")
	orderGroup.POST("/new", h.orders.Create, requireAuth)
	orderGroup.GET("/my", h.orders.My, requireAuth)
	orderGroup.GET("/all", h.orders.All, requireAdmin)
	orderGroup.GET("/:id", h.orders.Get, requireAuth)
	orderGroup.PUT("/:id", h.orders.Process, requireAdmin)
	orderGroup.DELETE("/:id", h.orders.Delete, requireAdmin)

	reviewGroup := api.Group("/review")
	reviewGroup.GET("/product/:id", h.reviews.ListByProduct)
	reviewGroup.POST("/product/:id", h.reviews.Add, requireAuth)
	reviewGroup.DELETE("/:id", h.reviews.Delete, requireAuth)

	dashboardGroup := api.Group("/dashboard", requireAdmin)
	dashboardGroup.GET("/stats", h.stats.Overview)
	dashboardGroup.GET("/pie", h.stats.Pie)
	dashboardGroup.GET("/bar", h.stats.Bar)
	dashboardGroup.GET("/line", h.stats.Line)
}

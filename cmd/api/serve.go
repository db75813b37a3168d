// AngelaMos | 2026
// serve.go

package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/isiolocityfc/backend/internal/admin"
	"github.com/isiolocityfc/backend/internal/auth"
	"github.com/isiolocityfc/backend/internal/content"
	"github.com/isiolocityfc/backend/internal/core"
	"github.com/isiolocityfc/backend/internal/foundation"
	"github.com/isiolocityfc/backend/internal/graph"
	"github.com/isiolocityfc/backend/internal/health"
	"github.com/isiolocityfc/backend/internal/match"
	"github.com/isiolocityfc/backend/internal/middleware"
	"github.com/isiolocityfc/backend/internal/player"
	"github.com/isiolocityfc/backend/internal/server"
	"github.com/isiolocityfc/backend/internal/shop"
	"github.com/isiolocityfc/backend/internal/sponsor"
	"github.com/isiolocityfc/backend/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the GraphQL API server",
		RunE:  runServe,
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(
		cmd.Context(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, logger, db, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	production := cfg.IsProduction()

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	telemetry, err := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
	if err != nil {
		logger.Warn("failed to initialize telemetry", "error", err)
	} else if telemetry.Enabled() {
		logger.Info("OpenTelemetry tracer initialized",
			"endpoint", cfg.Otel.Endpoint,
		)
	}

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			_ = db.Close()
			return err
		}
	}

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		_ = db.Close()
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	jwtManager := auth.NewJWTManager(cfg.JWT)
	if cfg.JWT.UsesDefaultSecret() {
		logger.Warn("JWT secret is the built-in default; set JWT_SECRET before deploying")
	}

	userSvc := user.NewService(user.NewRepository(db.DB))
	userHandler := user.NewHandler(userSvc)

	authSvc := auth.NewService(auth.NewRepository(db.DB), jwtManager, userSvc, logger)

	metrics := middleware.NewMetrics()

	root := graph.NewResolver(graph.Services{
		Auth:       authSvc,
		Users:      userSvc,
		Content:    content.NewService(content.NewRepository(db.DB)),
		Players:    player.NewService(player.NewRepository(db.DB), logger),
		Matches:    match.NewService(match.NewRepository(db.DB)),
		Foundation: foundation.NewService(foundation.NewRepository(db.DB)),
		Shop:       shop.NewService(shop.NewRepository(db.DB), logger),
		Sponsors:   sponsor.NewService(sponsor.NewRepository(db.DB)),
	}, logger, production)

	schema, err := graph.NewSchema(root, graph.Options{
		MaxDepth:      cfg.GraphQL.MaxDepth,
		Introspection: cfg.GraphQL.Introspection,
	})
	if err != nil {
		_ = redis.Close()
		_ = db.Close()
		return err
	}
	graphHandler := graph.NewHandler(schema, metrics)

	healthHandler := health.NewHandler(db, redis, health.Info{
		Name:        cfg.App.Name,
		Version:     cfg.App.Version,
		GraphQLPath: cfg.GraphQL.Path,
	})

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		Repo:       admin.NewRepository(db.DB),
		DBStats:    db.Stats,
		RedisStats: redis.PoolStats,
		DBPing:     db.Ping,
		RedisPing:  redis.Ping,
		Logger:     logger,
	})

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	limiter := middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
		Limit: middleware.PerWindow(
			cfg.RateLimit.Requests,
			cfg.RateLimit.Burst,
			cfg.RateLimit.Window,
		),
		KeyFunc:    middleware.KeyByCaller,
		FailOpen:   true,
		BypassFunc: middleware.BypassAdmins,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer(logger))
	router.Use(middleware.Logger(logger))
	router.Use(metrics.Middleware)
	router.Use(middleware.SecurityHeaders(production))
	router.Use(middleware.CORS(middleware.CORSOptions{
		Origins:          cfg.Origins(),
		Methods:          cfg.CORS.AllowedMethods,
		Headers:          cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))
	router.Use(middleware.IdentityContext(jwtManager, logger, production))
	router.Use(limiter.Handler)

	healthHandler.RegisterRoutes(router)
	router.Handle(cfg.GraphQL.Path, graphHandler)
	router.Handle("/metrics", metrics.Handler())

	authenticator := middleware.Authenticator(jwtManager)
	adminOnly := middleware.RequireAdmin

	router.Route("/v1", func(r chi.Router) {
		userHandler.RegisterAdminRoutes(r, authenticator, adminOnly)
		adminHandler.RegisterRoutes(r, authenticator, adminOnly)
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	logger.Info("graphql endpoint ready",
		"address", cfg.Server.Address(),
		"path", cfg.GraphQL.Path,
		"introspection", cfg.GraphQL.Introspection,
	)

	select {
	case err := <-errChan:
		limiter.Close()
		_ = redis.Close()
		_ = db.Close()
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	limiter.Close()

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

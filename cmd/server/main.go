package main

import (
    "context"
    "time"

    "github.com/joho/godotenv"
    "github.com/labstack/echo/v4"
    echomw "github.com/labstack/echo/v4/middleware"
    "go.uber.org/zap"

    "github.com/stebi123/dobroz/internal/config"
    "github.com/stebi123/dobroz/internal/database"
    "github.com/stebi123/dobroz/internal/handler"
    "github.com/stebi123/dobroz/internal/middleware"
    "github.com/stebi123/dobroz/internal/queue"
    "github.com/stebi123/dobroz/internal/repository"
    "github.com/stebi123/dobroz/internal/router"
    "github.com/stebi123/dobroz/internal/service"
)

func main() {
    // .env is optional; real deployments set the environment directly.
    _ = godotenv.Load()

    cfg := config.Load()
    logger := config.NewLogger(cfg.Env)
    defer func() { _ = logger.Sync() }()

    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
    if err != nil {
        logger.Fatal("database connect failed", zap.Error(err))
    }
    defer db.Close()

    migCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
    if err := database.Migrate(migCtx, db, cfg.MigrationsDir); err != nil {
        cancel()
        logger.Fatal("migrations failed", zap.Error(err))
    }
    cancel()

    // Redis is optional: without it the response cache and rate limiter
    // become pass-throughs.
    rdb := config.NewRedisClient()
    if rdb == nil {
        logger.Warn("redis unavailable, cache and rate limiting disabled")
    }

    // Repositories.
    userRepo := repository.NewUserRepo(db)
    tokenRepo := repository.NewTokenRepo(db)
    clientRepo := repository.NewClientRepo(db)
    availabilityRepo := repository.NewAvailabilityRepo(db)
    slotRepo := repository.NewSlotRepo(db)
    paymentRepo := repository.NewPaymentRepo(db)

    // Services.
    clientSvc := service.NewClientService(db, clientRepo, availabilityRepo, slotRepo, paymentRepo, logger)
    paymentSvc := service.NewPaymentService(paymentRepo, logger)

    // Handlers.
    authH := handler.NewAuthHandler(cfg, userRepo, tokenRepo)
    clientH := handler.NewAdminClientHandler(clientSvc, clientRepo)
    paymentH := handler.NewAdminPaymentHandler(paymentSvc)
    publicH := &handler.PublicHandler{Repo: clientRepo, Clients: clientSvc}

    e := echo.New()
    e.HideBanner = true
    e.Use(echomw.Recover())
    e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
    e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

    router.RegisterRoutes(e)
    router.RegisterAuth(e, authH, cfg.JWTSecret)
    router.RegisterAdmin(e, clientH, paymentH, cfg.JWTSecret)
    router.RegisterPublic(e, publicH)

    // Client lifecycle events land in logs/clients.log via RabbitMQ. The
    // consumer reconnects forever on its own.
    go func() {
        if err := queue.StartClientEventConsumer(); err != nil {
            logger.Warn("client event consumer stopped", zap.Error(err))
        }
    }()

    addr := ":" + cfg.Port
    logger.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
    if err := e.Start(addr); err != nil {
        logger.Fatal("server stopped", zap.Error(err))
    }
}

package main

import (
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	httpadp "expman-backend/internal/adapter/http"
	appmw "expman-backend/internal/adapter/middleware"
	"expman-backend/internal/adapter/repository/gormrepo"
	"expman-backend/internal/config"
	domain "expman-backend/internal/domain/record"
	"expman-backend/internal/infrastructure/cache"
	"expman-backend/internal/infrastructure/db"
	"expman-backend/internal/usecase/auth"
	"expman-backend/internal/usecase/record"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	gdb, err := db.Open(cfg.DBDriver, cfg.DSN())
	if err != nil {
		logger.Fatal("db open failed", zap.Error(err))
	}
	if err := db.Migrate(gdb); err != nil {
		logger.Fatal("db migrate failed", zap.Error(err))
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			logger.Fatal("redis open failed", zap.Error(err))
		}
	}

	authUC := auth.NewUsecase(gormrepo.NewUserRepository(gdb), []byte(cfg.JWTSecret), cfg.AccessTTL, cfg.RefreshTTL, logger)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger(), echomw.Recover())

	h := httpadp.NewHandler()
	e.GET("/health", h.Health)

	authH := httpadp.NewAuthHandler(authUC)
	tokens := e.Group("/api")
	tokens.POST("/token/", authH.Token)
	tokens.POST("/token/refresh/", authH.Refresh)

	api := e.Group("/api")
	api.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(cfg.JWTSecret),
		NewClaimsFunc: func(echo.Context) jwt.Claims { return new(auth.Claims) },
	}))
	api.Use(appmw.RequireAccessToken())
	if rdb != nil {
		api.Use(appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, logger))
	}

	httpadp.NewResource(record.NewEmployeeUsecase(gormrepo.NewRepo[domain.Employee](gdb), logger)).Register(api, "employees")
	httpadp.NewResource(record.NewTransactionUsecase(gormrepo.NewRepo[domain.Transaction](gdb), logger)).Register(api, "transactions")
	httpadp.NewResource(record.NewProjectUsecase(gormrepo.NewRepo[domain.Project](gdb), logger)).Register(api, "projects")
	httpadp.NewResource(record.NewCustomerUsecase(gormrepo.NewRepo[domain.Customer](gdb), logger)).Register(api, "customers")
	httpadp.NewResource(record.NewAssetUsecase(gormrepo.NewRepo[domain.Asset](gdb), logger)).Register(api, "assets")

	addr := ":" + cfg.AppPort
	logger.Info("listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

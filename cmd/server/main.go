package main // Entry point package

import (
	"errors"
	"net/http"

	"github.com/joho/godotenv"    // .env autoload for local development
	"github.com/labstack/echo/v4" // Echo web framework
	"go.uber.org/zap"

	"github.com/iliyamo/visit-counter/internal/config"  // environment config loader
	"github.com/iliyamo/visit-counter/internal/handler" // HTTP handlers
	"github.com/iliyamo/visit-counter/internal/logger"  // structured logging
	"github.com/iliyamo/visit-counter/internal/router"  // route registration
	"github.com/iliyamo/visit-counter/internal/store"   // counter backend connector
)

func main() {
	_ = godotenv.Load() // a missing .env is fine; env vars win either way

	cfg := config.Load()
	logger.Init(cfg.Env, cfg.LogLevel)
	defer logger.Sync()
	log := logger.Named("server")

	// The store is constructed even when Redis is down: reachability is
	// re-evaluated on every request, so startup never blocks on the backend.
	st := store.New(config.NewRedisClient(config.LoadRedis()), logger.Named("store"))
	defer st.Close()

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e, handler.NewCounterHandler(cfg, st, logger.Named("handler")))

	addr := ":" + cfg.Port
	log.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))

	if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server stopped", zap.Error(err))
	}
}

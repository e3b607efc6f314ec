// cmd/api/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"candidate-tracker/internal/common/config"
	"candidate-tracker/internal/common/database"
	"candidate-tracker/internal/common/logger"
	"candidate-tracker/internal/handlers"
	"candidate-tracker/internal/service"
	"candidate-tracker/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	pg, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		zapLog.Fatal("postgres open failed", zap.Error(err))
	}
	defer pg.Close()

	// One connectivity check at startup. A failure is logged but not fatal:
	// the server stays up and surfaces store errors per request.
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := pg.Ping(pingCtx); err != nil {
		zapLog.Warn("postgres not reachable at startup", zap.Error(err))
	} else {
		zapLog.Info("postgres connected")
	}
	cancel()

	var cache *database.RedisClient
	if cfg.Database.Redis.Address != "" {
		cache, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			zapLog.Warn("redis init failed, dashboard cache disabled", zap.Error(err))
			cache = nil
		} else {
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			if err := cache.Ping(pingCtx); err != nil {
				zapLog.Warn("redis not reachable, dashboard cache disabled", zap.Error(err))
				cache = nil
			}
			cancel()
		}
	}
	if cache != nil {
		defer cache.Close()
	}

	db := pg.GetDB()
	candidateStore := store.NewCandidateStore(db)
	historyStore := store.NewHistoryStore(db)
	notificationStore := store.NewNotificationStore(db)
	positionStore := store.NewPositionStore(db)
	dashboardStore := store.NewDashboardStore(db)

	candidateService := service.NewCandidateService(candidateStore, historyStore, log)
	notificationService := service.NewNotificationService(notificationStore, log)
	dashboardService := service.NewDashboardService(dashboardStore, cache, log)
	positionService := service.NewPositionService(positionStore)

	router := handlers.NewRouter(handlers.Dependencies{
		Candidates:    handlers.NewCandidateHandler(candidateService),
		Notifications: handlers.NewNotificationHandler(notificationService),
		Dashboard:     handlers.NewDashboardHandler(dashboardService),
		Positions:     handlers.NewPositionHandler(positionService),
		Logger:        log,
	})

	server := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeout) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zapLog.Info("API started", zap.String("port", cfg.HTTP.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	zapLog.Info("shutting down")
	ctx, cancelShutdown := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownTimeout)*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(ctx); err != nil {
		zapLog.Error("shutdown failed", zap.Error(err))
	}
}

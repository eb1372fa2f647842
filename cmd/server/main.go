package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"atelier/internal/auth"
	"atelier/internal/catalog"
	"atelier/internal/checkout"
	"atelier/internal/config"
	"atelier/internal/draft"
	"atelier/internal/infrastructure/logger"
	"atelier/internal/infrastructure/mysql"
	"atelier/internal/infrastructure/redis"
	"atelier/internal/notification"
	"atelier/internal/order"
	"atelier/internal/payment"
	"atelier/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	redisClient, err := redis.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("connecting to redis", zap.Error(err))
	}
	defer redisClient.Close()
	zapLogger.Info("redis connected")

	draftStore := draft.NewRedisStore(redisClient, cfg.Redis.DraftTTL)
	dispatcher := notification.NewDispatcher(cfg.Notification, zapLogger)
	gateway := payment.NewSquareClient(cfg.Payment)

	authSvc, authCtrl := auth.NewModule(db, cfg.Auth, zapLogger)
	catalogCtrl := catalog.NewModule(db, zapLogger)
	orderSvc, orderCtrl := order.NewModule(db, cfg.Checkout, dispatcher, zapLogger)
	draftCtrl := draft.NewModule(draftStore, cfg.Checkout, zapLogger)
	_, checkoutCtrl := checkout.NewModule(draftStore, gateway, orderSvc, dispatcher, cfg.Checkout, cfg.Payment, zapLogger)

	router := server.NewRouter(authSvc, authCtrl, catalogCtrl, orderCtrl, draftCtrl, checkoutCtrl, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	// Let in-flight notification sends finish before exiting.
	dispatcher.Wait()

	zapLogger.Info("server stopped gracefully")
}

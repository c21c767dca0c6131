package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/prabeshj/chatlytics/internal/config"
	"github.com/prabeshj/chatlytics/internal/logger"
	"github.com/prabeshj/chatlytics/internal/scheduler"
	"github.com/prabeshj/chatlytics/pkg/api"
	"github.com/prabeshj/chatlytics/pkg/storage"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Logger.Level, cfg.Logger.JSON)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	zlog.Info("starting chatlytics server")

	db, err := storage.NewDB(cfg.Storage.Path, zlog)
	if err != nil {
		zlog.Fatal("failed to open storage", zap.Error(err))
	}
	defer storage.CloseDB(db, zlog)
	store := storage.NewStore(db, zlog)

	// Retention cleanup: uploads are only kept long enough to serve stats
	// requests against them.
	sched, err := scheduler.New(zlog)
	if err != nil {
		zlog.Fatal("failed to start scheduler", zap.Error(err))
	}
	retention := time.Duration(cfg.Storage.RetentionHours) * time.Hour
	err = sched.AddJob("upload_cleanup", cfg.Storage.CleanupCron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if _, err := store.DeleteUploadsBefore(ctx, time.Now().UTC().Add(-retention)); err != nil {
			zlog.Error("upload cleanup failed", zap.Error(err))
		}
	})
	if err != nil {
		zlog.Fatal("failed to schedule cleanup", zap.Error(err))
	}

	server := api.NewServer(cfg, zlog, store)
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      server.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		zlog.Info("server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		zlog.Error("forced shutdown", zap.Error(err))
	}
	if err := sched.Stop(); err != nil {
		zlog.Error("scheduler shutdown failed", zap.Error(err))
	}
	zlog.Info("server exited")
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/judyrop/restaurant-pos/config"
	"github.com/judyrop/restaurant-pos/database"
	"github.com/judyrop/restaurant-pos/handlers"
	"github.com/judyrop/restaurant-pos/logger"
	"github.com/judyrop/restaurant-pos/middleware"
	"github.com/judyrop/restaurant-pos/scheduler"
	"github.com/judyrop/restaurant-pos/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.New("restaurant-pos", cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(cfg.DB, log)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	if err := database.Migrate(db); err != nil {
		return err
	}
	if cfg.SeedData {
		if err := database.Seed(ctx, db); err != nil {
			return err
		}
		log.Info("seed data applied")
	}

	if cfg.TableResetCron != "" {
		c, err := scheduler.Start(cfg.TableResetCron, store.New(db), log)
		if err != nil {
			return err
		}
		defer c.Stop()
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           SetupRouter(db, cfg, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// SetupRouter builds the HTTP router over db.
func SetupRouter(db *gorm.DB, cfg *config.Config, log *slog.Logger) *gin.Engine {
	s := store.New(db)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log), middleware.CORS(cfg.CORSOrigins))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		if err := s.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handlers.New(s, log, cfg.TaxRate).Register(r)
	return r
}

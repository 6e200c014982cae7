package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eval-workbench/internal/adapters/primary/http/handlers"
	"eval-workbench/internal/adapters/primary/http/middleware"
	"eval-workbench/internal/adapters/secondary/gitmirror"
	"eval-workbench/internal/adapters/secondary/objectstore"
	"eval-workbench/internal/adapters/secondary/postgres"
	"eval-workbench/internal/config"
	"eval-workbench/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Create database pool
	poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		log.Fatalf("parse db config: %v", err)
	}
	poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.Database.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Fatalf("create db pool: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatalf("ping db: %v", err)
	}
	log.Info("database connection established")

	// Secondary Adapters (Output Ports)
	stage, err := objectstore.New(&cfg.ObjectStore)
	if err != nil {
		log.Fatalf("create stage store: %v", err)
	}

	mirror, err := gitmirror.New(context.Background(), &cfg.Repository)
	if err != nil {
		log.Fatalf("bind repository mirror: %v", err)
	}

	savedRepo := postgres.NewEvaluationRepository(pool, services.TableSavedEvaluations)
	autoRepo := postgres.NewEvaluationRepository(pool, services.TableAutoEvaluations)
	metricRepo := postgres.NewCustomMetricRepository(pool)
	bindingRepo := postgres.NewAppBindingRepository(pool)

	// Core Services (Application Layer)
	catalogSvc := services.NewEvaluationCatalogService(savedRepo, autoRepo)
	lifecycleSvc := services.NewMetricLifecycleService(stage, metricRepo)
	bindingSvc := services.NewAppBindingService(bindingRepo)
	syncSvc := services.NewSyncService(mirror, stage)

	// Primary Adapter (HTTP Handlers)
	h := handlers.New(catalogSvc, lifecycleSvc, bindingSvc, syncSvc, stage, services.DefaultSyncGroups(), cfg.App.Name)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())

	api := router.Group("/api/v1/eval-workbench")
	h.RegisterRoutes(api)

	// Health check pings both independently failable stores.
	router.GET("/healthz", func(c *gin.Context) {
		if err := pool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		if err := stage.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}

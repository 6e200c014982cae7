package main

import (
	"context"
	"time"

	"eval-workbench/internal/adapters/secondary/gitmirror"
	"eval-workbench/internal/adapters/secondary/objectstore"
	"eval-workbench/internal/adapters/secondary/postgres"
	"eval-workbench/internal/config"
	"eval-workbench/internal/core/domain"
	"eval-workbench/internal/core/services"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// The provisioner is a one-shot, sequential batch. Every statement it
// issues is idempotent or intentionally replacing, so re-running the whole
// binary is the recovery path after any failure.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	// Create database pool
	poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		log.Fatalf("parse db config: %v", err)
	}
	poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.Database.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		log.Fatalf("create db pool: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("ping db: %v", err)
	}
	log.Info("database connection established")

	stage, err := objectstore.New(&cfg.ObjectStore)
	if err != nil {
		log.Fatalf("create stage store: %v", err)
	}

	mirror, err := gitmirror.New(ctx, &cfg.Repository)
	if err != nil {
		log.Fatalf("bind repository mirror: %v", err)
	}
	log.WithFields(log.Fields{
		"remote": cfg.Repository.RemoteURL,
		"branch": cfg.Repository.Branch,
	}).Info("repository mirror bound")

	desc := domain.ResourceDescriptor{
		Origin: cfg.Descriptor.Origin,
		Name:   cfg.Descriptor.Name,
		Version: domain.DescriptorVersion{
			Major: cfg.Descriptor.MajorVersion,
			Minor: cfg.Descriptor.MinorVersion,
		},
	}

	schemaMgr := postgres.NewSchemaManager(pool, cfg.Database.Schema)
	bindingSvc := services.NewAppBindingService(postgres.NewAppBindingRepository(pool))
	syncSvc := services.NewSyncService(mirror, stage)

	appDecl := domain.AppBinding{
		Name:           cfg.App.Name,
		Title:          cfg.App.Title,
		StageRoot:      cfg.ObjectStore.Bucket,
		EntryFile:      cfg.App.EntryFile,
		QueryWarehouse: cfg.App.QueryWarehouse,
	}

	provisioner := services.NewProvisionService(
		schemaMgr, stage, mirror, syncSvc, bindingSvc,
		desc, services.DefaultSyncGroups(), appDecl,
	)

	if err := provisioner.Run(ctx); err != nil {
		log.Fatalf("provisioning run failed: %v", err)
	}
	log.Info("provisioning run completed")
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

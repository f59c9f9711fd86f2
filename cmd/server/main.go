package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"resto-backend/internal/config"
	"resto-backend/internal/db"
	"resto-backend/internal/handler"
	"resto-backend/internal/server"
	"resto-backend/internal/service"
	"resto-backend/internal/store"
	"resto-backend/internal/store/memory"
	"resto-backend/internal/store/postgres"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var recordStore store.Store
	switch cfg.StoreDriver {
	case config.StorePostgres:
		pg, err := db.New(ctx, cfg)
		if err != nil {
			logger.Error("failed to connect database", "err", err)
			os.Exit(1)
		}
		defer pg.Close()
		pgStore := postgres.New(pg)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			logger.Error("failed to apply schema", "err", err)
			os.Exit(1)
		}
		recordStore = pgStore
	default:
		memStore := memory.New()
		if cfg.SeedDemoData {
			if err := memStore.SeedDefaults(ctx); err != nil {
				logger.Error("failed to seed demo data", "err", err)
				os.Exit(1)
			}
			logger.Info("seeded demo data", "login", "admin@resto.local")
		}
		recordStore = memStore
	}

	// services
	authSvc := service.AuthService{Config: cfg, Staff: recordStore, Logger: logger}

	// handlers
	healthHandler := handler.HealthHandler{Store: recordStore}
	authHandler := handler.AuthHandler{Service: &authSvc}
	menuHandler := handler.MenuHandler{Store: recordStore, Currency: cfg.DefaultCurrency}
	categoryHandler := handler.CategoryHandler{Store: recordStore}
	paymentHandler := handler.PaymentHandler{Store: recordStore}
	reportHandler := handler.ReportHandler{Store: recordStore}
	dashboardHandler := handler.DashboardHandler{Store: recordStore}
	staffHandler := handler.StaffHandler{Store: recordStore}
	tableHandler := handler.TableHandler{Store: recordStore}

	router := server.NewRouter(cfg, logger,
		healthHandler, authHandler, menuHandler, categoryHandler,
		paymentHandler, reportHandler, dashboardHandler, staffHandler, tableHandler)

	if err := server.Start(ctx, cfg, router, logger); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"
	"github.com/subosito/gotenv"
	"go.uber.org/zap"

	"github.com/orderdesk/po-backoffice/internal/application/service"
	"github.com/orderdesk/po-backoffice/internal/config"
	httpserver "github.com/orderdesk/po-backoffice/internal/interfaces/http"
	"github.com/orderdesk/po-backoffice/internal/notification"
	"github.com/orderdesk/po-backoffice/internal/store/memory"
	"github.com/orderdesk/po-backoffice/pkg/logger"
)

func main() {
	_ = gotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting purchase order back office",
		zap.String("version", "1.0.0"),
		zap.Int("port", cfg.Server.Port))

	store := memory.NewStore()
	if cfg.Purchasing.SeedDemoData {
		if err := memory.Seed(store, log); err != nil {
			log.Fatal("Failed to seed demo data", zap.Error(err))
		}
	}

	notifier := notification.NewLogNotifier(log)

	orderService := service.NewOrderService(store, notifier, service.Defaults{
		NumberPrefix:  cfg.Purchasing.NumberPrefix,
		DueDays:       cfg.Purchasing.DefaultDueDays,
		TaxPercentage: decimal.NewFromFloat(cfg.Purchasing.DefaultTaxPercentage),
	}, log)

	server := httpserver.NewServer(httpserver.ServerConfig{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		EditorKeys:   cfg.Auth.EditorKeys,
	}, orderService, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}

	log.Info("Shutdown complete")
}

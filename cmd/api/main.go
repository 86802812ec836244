package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"meckano-helper/config"
	_ "meckano-helper/docs" // Swagger docs
	"meckano-helper/internal/classifier"
	"meckano-helper/internal/httpserver"
	reportHTTP "meckano-helper/internal/report/delivery/http"
	"meckano-helper/internal/report/repository/browser"
	"meckano-helper/internal/report/usecase"
	"meckano-helper/pkg/log"
)

// @title       Meckano Helper API
// @description Fills and submits the Meckano attendance report through an attached Chrome session.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Meckano Helper...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "DevTools URL: %s", cfg.Browser.DevToolsURL)

	// 3. Browser-backed page repository
	pageRepo := browser.NewClient(logger, cfg.Browser)
	defer pageRepo.Close()

	if err := pageRepo.Ping(ctx); err != nil {
		// The attached Chrome may come up after us; fills will fail until
		// it does, so this is a warning rather than a fatal.
		logger.Warnf(ctx, "Browser not reachable yet: %v", err)
	} else {
		logger.Info(ctx, "Browser connection established")
	}

	// 4. Report domain
	rules := classifier.New(cfg.Skip, logger)
	reportUC := usecase.New(logger, pageRepo, rules, clockwork.NewRealClock(), cfg.Page)
	reportHandler := reportHTTP.New(logger, reportUC)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:        logger,
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   cfg.Environment.Name,
		AppConfig:     cfg,
		ReportHandler: reportHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

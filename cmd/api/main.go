package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/pageza/digital-parsley/backend/config"
	"github.com/pageza/digital-parsley/backend/internal/logger"
	"github.com/pageza/digital-parsley/backend/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Setup(cfg.LogLevel, config.IsProduction())

	// Channel to listen for an interrupt or terminate signal from the OS
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Close()

	srv := server.New(cfg, app.Router)
	if err := srv.Start(ctx); err != nil {
		logrus.Errorf("Server error: %v", err)
		return
	}
	logrus.Info("Server stopped")
}

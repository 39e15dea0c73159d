package main

import (
	"github.com/sirupsen/logrus"

	"github.com/pageza/digital-parsley/backend/config"
	"github.com/pageza/digital-parsley/backend/internal/database"
	"github.com/pageza/digital-parsley/backend/internal/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Setup(cfg.LogLevel, false)

	db, err := database.New(cfg)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db, cfg.MigrationsDir); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	n, err := database.SeedDemoData(db)
	if err != nil {
		logrus.Fatalf("Failed to seed database: %v", err)
	}
	logrus.WithField("recipes", n).Info("Seeding complete")
}

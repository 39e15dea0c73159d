package database

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pageza/digital-parsley/backend/internal/model"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RunMigrations creates the chef and recipe tables and then executes the
// SQL files in migrationsDir that have not been applied yet. SQL files are
// Postgres-only; SQLite databases stop after auto-migration.
func RunMigrations(db *gorm.DB, migrationsDir string) error {
	if err := db.AutoMigrate(&model.Chef{}, &model.Recipe{}); err != nil {
		return fmt.Errorf("failed to auto-migrate models: %w", err)
	}

	if db.Dialector.Name() != "postgres" {
		logrus.Info("Using GORM auto-migration only for SQLite")
		return nil
	}

	// Get all migration files
	entries, err := os.ReadDir(migrationsDir)
	if errors.Is(err, fs.ErrNotExist) {
		logrus.WithField("dir", migrationsDir).Warn("No migrations directory, skipping SQL migrations")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") && !strings.HasSuffix(entry.Name(), "_rollback.sql") {
			files = append(files, entry.Name())
		}
	}
	// Sort files by name to ensure correct order
	sort.Strings(files)

	// Create migrations table if it doesn't exist
	if err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL UNIQUE,
			applied_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`).Error; err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	for _, name := range files {
		// Check if migration has already been applied
		var count int64
		if err := db.Table("migrations").Where("name = ?", name).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}
		if count > 0 {
			logrus.WithField("migration", name).Debug("Skipping migration (already applied)")
			continue
		}

		content, err := os.ReadFile(filepath.Join(migrationsDir, name))
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", name, err)
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec(string(content)).Error; err != nil {
				return fmt.Errorf("failed to execute migration %s: %w", name, err)
			}
			if err := tx.Exec("INSERT INTO migrations (name) VALUES (?)", name).Error; err != nil {
				return fmt.Errorf("failed to record migration %s: %w", name, err)
			}
			return nil
		})
		if err != nil {
			return err
		}

		logrus.WithField("migration", name).Info("Applied migration")
	}

	return nil
}

// RollbackLast reverts the most recently applied migration using its
// <name>_rollback.sql companion file.
func RollbackLast(db *gorm.DB, migrationsDir string) (string, error) {
	var last struct{ Name string }
	err := db.Table("migrations").Select("name").Order("applied_at DESC, id DESC").Limit(1).Scan(&last).Error
	if err != nil {
		return "", fmt.Errorf("failed to get last migration: %w", err)
	}
	if last.Name == "" {
		return "", errors.New("no migrations to rollback")
	}

	rollbackFile := strings.TrimSuffix(last.Name, ".sql") + "_rollback.sql"
	content, err := os.ReadFile(filepath.Join(migrationsDir, rollbackFile))
	if err != nil {
		return "", fmt.Errorf("failed to read rollback file %s: %w", rollbackFile, err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(string(content)).Error; err != nil {
			return fmt.Errorf("failed to execute rollback %s: %w", rollbackFile, err)
		}
		return tx.Exec("DELETE FROM migrations WHERE name = ?", last.Name).Error
	})
	if err != nil {
		return "", err
	}
	return last.Name, nil
}

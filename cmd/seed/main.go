// cmd/seed/main.go
package main

import (
	"github.com/sirupsen/logrus"

	"github.com/pranaara/pranaara-backend/internal/config"
	"github.com/pranaara/pranaara-backend/internal/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize database")
	}
	defer database.Close(db)

	if err := database.RunMigrations(db); err != nil {
		logrus.WithError(err).Fatal("Failed to run migrations")
	}

	if err := database.SeedCatalog(db); err != nil {
		logrus.WithError(err).Fatal("Failed to seed catalog")
	}

	if err := database.SeedAdminUser(db); err != nil {
		logrus.WithError(err).Fatal("Failed to seed admin user")
	}

	logrus.Info("Seeding completed")
}

package main

import (
	"context"

	"github.com/dipii/backoffice/internal/config"
	"github.com/dipii/backoffice/internal/database"
	"github.com/dipii/backoffice/internal/env"
	"github.com/dipii/backoffice/internal/model"
	"github.com/dipii/backoffice/internal/repository"
	"github.com/dipii/backoffice/internal/util"
)

func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()
	logger := util.NewLogger(cfg.ENV)
	defer logger.Sync()

	logger.Infof("Database configuration: host=%s port=%s db=%s", cfg.DB.DB_HOST, cfg.DB.DB_PORT, cfg.DB.DB_DATABASE)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	migrateErr := db.AutoMigrate(model.Models()...)
	if migrateErr != nil {
		logger.Panic(migrateErr)
	}
	logger.Info("Migration completed")

	repo := repository.NewRepository(db, logger, nil)
	seeded, err := seedAdmin(context.Background(), repo.User, cfg.Seed)
	if err != nil {
		logger.Panic(err)
	}
	if seeded != nil {
		logger.Infof("Seeded administrator %s (id %d)", seeded.Username, seeded.ID)
	}
}

package database

import (
	"fmt"
	"time"

	"github.com/dipii/backoffice/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func DSN(cfg config.DatabaseConfig) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.DB_HOST, cfg.DB_USERNAME, cfg.DB_PASSWORD, cfg.DB_DATABASE, cfg.DB_PORT, cfg.DB_SSLMODE)
}

func ConnectReturnGormDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	return Open(DSN(cfg), cfg)
}

// Open connects with an explicit DSN, used by the integration tests that get
// their connection string from a throwaway container.
func Open(dsn string, cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// unique and foreign key violations become gorm.ErrDuplicatedKey and gorm.ErrForeignKeyViolated
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		sqlDb.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDb.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	if cfg.MaxIdleTime != "" {
		idle, err := time.ParseDuration(cfg.MaxIdleTime)
		if err != nil {
			return nil, fmt.Errorf("invalid DB_MAX_IDLE_TIME %q: %w", cfg.MaxIdleTime, err)
		}
		sqlDb.SetConnMaxIdleTime(idle)
	}

	return db, nil
}

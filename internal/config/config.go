package config

import (
	"strings"
	"time"

	"github.com/dipii/backoffice/internal/env"
)

type Config struct {
	Port        string
	ENV         string
	DB          DatabaseConfig
	RateLimiter RateLimiterConfig
	Mail        MailConfig
	Auth        AuthConfig
	Storage     StorageConfig
	Document    DocumentConfig
	Seed        SeedConfig
}

type RateLimiterConfig struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

type AuthConfig struct {
	JWT_SECRET      string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

type DatabaseConfig struct {
	DB_HOST      string
	DB_PORT      string
	DB_DATABASE  string
	DB_USERNAME  string
	DB_PASSWORD  string
	DB_SSLMODE   string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  string
}

type MailDriver string

const (
	MailDriverSendGrid MailDriver = "sendgrid"
	MailDriverSMTP     MailDriver = "smtp"
)

type MailConfig struct {
	DRIVER     MailDriver
	SEND_GRID  SendGridConfig
	SMTP       SMTPConfig
	FROM_EMAIL string
	// Link printed in the welcome mail.
	LOGIN_URL string
}

type SMTPConfig struct {
	HOST     string
	PORT     int
	USERNAME string
	PASSWORD string
}

type SendGridConfig struct {
	API_KEY string
}

type StorageDriver string

const (
	StorageDriverLocal StorageDriver = "local"
	StorageDriverMinio StorageDriver = "minio"
)

type StorageConfig struct {
	Driver StorageDriver
	// Root directory for the local driver. Generated documents live under
	// <Root>/certificados and <Root>/etiquetas.
	Root  string
	Minio MinioConfig
}

type MinioConfig struct {
	ENDPOINT   string
	ACCESS_KEY string
	SECRET_KEY string
	BUCKET     string
	USE_SSL    bool
}

type DocumentConfig struct {
	// Optional PNG branding asset. When missing a generated mark is used.
	LogoPath string
	// Base URL used for the QR code printed on certificates. Empty disables it.
	PublicURL    string
	LabelColumns int
	LabelRows    int
}

type SeedConfig struct {
	AdminName     string
	AdminUsername string
	AdminEmail    string
	AdminPhone    string
	AdminPassword string
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.ENV, "production")
}

func GetConfig() Config {
	return Config{
		Port: env.GetString("PORT", "8080"),
		ENV:  env.GetString("ENV", "development"),
		DB: DatabaseConfig{
			DB_HOST:      env.GetString("DB_HOST", "127.0.0.1"),
			DB_PORT:      env.GetString("DB_PORT", "5432"),
			DB_USERNAME:  env.GetString("DB_USERNAME", "postgres"),
			DB_PASSWORD:  env.GetString("DB_PASSWORD", ""),
			DB_DATABASE:  env.GetString("DB_DATABASE", "dipii"),
			DB_SSLMODE:   env.GetString("DB_SSLMODE", "disable"),
			MaxOpenConns: env.GetInt("DB_MAX_OPEN_CONNS", 30),
			MaxIdleConns: env.GetInt("DB_MAX_IDLE_CONNS", 30),
			MaxIdleTime:  env.GetString("DB_MAX_IDLE_TIME", "15m"),
		},
		// By default if not specified, we allow 10 login attempts per minute per client
		RateLimiter: RateLimiterConfig{
			RequestsPerTimeFrame: env.GetInt("RATE_LIMIT_REQUESTS_PER_TIME_FRAME", 10),
			TimeFrame:            env.GetDuration("RATE_LIMIT_TIME_FRAME", time.Minute),
			Enabled:              env.GetBool("RATE_LIMIT_ENABLED", true),
		},
		Mail: MailConfig{
			DRIVER:     MailDriver(strings.ToLower(env.GetString("MAIL_DRIVER", string(MailDriverSendGrid)))),
			FROM_EMAIL: env.GetString("MAIL_FROM_MAIL", ""),
			LOGIN_URL:  env.GetString("MAIL_LOGIN_URL", ""),
			SEND_GRID: SendGridConfig{
				API_KEY: env.GetString("MAIL_SEND_GRID_API_KEY", ""),
			},
			SMTP: SMTPConfig{
				HOST:     env.GetString("MAIL_SMTP_HOST", ""),
				PORT:     env.GetInt("MAIL_SMTP_PORT", 587),
				USERNAME: env.GetString("MAIL_SMTP_USERNAME", ""),
				PASSWORD: env.GetString("MAIL_SMTP_PASSWORD", ""),
			},
		},
		Auth: AuthConfig{
			JWT_SECRET:      env.GetString("AUTH_JWT_SECRET", ""),
			AccessTokenTTL:  env.GetDuration("AUTH_ACCESS_TOKEN_TTL", 30*time.Minute),
			RefreshTokenTTL: env.GetDuration("AUTH_REFRESH_TOKEN_TTL", 7*24*time.Hour),
		},
		Storage: StorageConfig{
			Driver: StorageDriver(strings.ToLower(env.GetString("STORAGE_DRIVER", string(StorageDriverLocal)))),
			Root:   env.GetString("STORAGE_ROOT", "storage/public"),
			Minio: MinioConfig{
				ENDPOINT:   env.GetString("MINIO_ENDPOINT", "127.0.0.1:9000"),
				ACCESS_KEY: env.GetString("MINIO_ACCESS_KEY", ""),
				SECRET_KEY: env.GetString("MINIO_SECRET_KEY", ""),
				BUCKET:     env.GetString("MINIO_BUCKET", "dipii"),
				USE_SSL:    env.GetBool("MINIO_USE_SSL", false),
			},
		},
		Document: DocumentConfig{
			LogoPath:     env.GetString("DOCUMENT_LOGO_PATH", "public/imagen/Logo.png"),
			PublicURL:    strings.TrimRight(env.GetString("DOCUMENT_PUBLIC_URL", ""), "/"),
			LabelColumns: env.GetInt("DOCUMENT_LABEL_COLUMNS", 2),
			LabelRows:    env.GetInt("DOCUMENT_LABEL_ROWS", 5),
		},
		Seed: SeedConfig{
			AdminName:     env.GetString("SEED_ADMIN_NAME", "Administrador DIPII"),
			AdminUsername: env.GetString("SEED_ADMIN_USERNAME", "admin"),
			AdminEmail:    env.GetString("SEED_ADMIN_EMAIL", "admin@dipii.com"),
			AdminPhone:    env.GetString("SEED_ADMIN_PHONE", ""),
			AdminPassword: env.GetString("SEED_ADMIN_PASSWORD", ""),
		},
	}
}

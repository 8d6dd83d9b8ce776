package appcontext

import (
	"github.com/dipii/backoffice/internal/auth"
	"github.com/dipii/backoffice/internal/config"
	filestorage "github.com/dipii/backoffice/internal/file_storage"
	"github.com/dipii/backoffice/internal/mailer"
	"github.com/dipii/backoffice/internal/metrics"
	"github.com/dipii/backoffice/internal/repository"
	"github.com/dipii/backoffice/pkg/dipii"
	"go.uber.org/zap"
)

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// Repository provides access to data storage operations.
	Repository *repository.Repository

	// Mailer handles email-sending functions.
	Mailer mailer.Client

	// JWTService manages JWT operations for authentication such as generate, verify, refresh token.
	JWTService auth.JWTInterface

	// Storage keeps the generated certificate and label PDFs.
	Storage filestorage.Storage

	// Renderer lays out certificate and label documents.
	Renderer *dipii.Renderer

	Metrics *metrics.Metrics
}

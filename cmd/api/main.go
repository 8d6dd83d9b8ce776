package main

import (
	"context"

	appcontext "github.com/dipii/backoffice/internal/app_context"
	"github.com/dipii/backoffice/internal/auth"
	"github.com/dipii/backoffice/internal/config"
	"github.com/dipii/backoffice/internal/controller"
	"github.com/dipii/backoffice/internal/database"
	"github.com/dipii/backoffice/internal/env"
	filestorage "github.com/dipii/backoffice/internal/file_storage"
	"github.com/dipii/backoffice/internal/mailer"
	"github.com/dipii/backoffice/internal/metrics"
	"github.com/dipii/backoffice/internal/middleware"
	ratelimiter "github.com/dipii/backoffice/internal/rate_limiter"
	"github.com/dipii/backoffice/internal/repository"
	"github.com/dipii/backoffice/internal/route"
	"github.com/dipii/backoffice/internal/util"
	"github.com/dipii/backoffice/pkg/dipii"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	logger := util.NewLogger(cfg.ENV)
	logger.Debugf("Configuration: %+v \n", cfg)

	if cfg.Auth.JWT_SECRET == "" {
		logger.Panic("AUTH_JWT_SECRET must be set")
	}

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		logger.Panic(err)
	}
	defer sqlDb.Close()
	logger.Info("Database connected \n")

	storage, err := filestorage.NewStorage(context.Background(), cfg.Storage, logger)
	if err != nil {
		logger.Error("Error setting up document storage")
		logger.Panic(err)
	}

	renderer, err := dipii.NewRenderer(dipii.Config{
		LogoPath:     cfg.Document.LogoPath,
		PublicURL:    cfg.Document.PublicURL,
		LabelColumns: cfg.Document.LabelColumns,
		LabelRows:    cfg.Document.LabelRows,
	})
	if err != nil {
		logger.Panic(err)
	}

	// Custom validation
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := util.RegisterValidations(v); err != nil {
			logger.Panic(err)
		}
	}

	rateLimiter := ratelimiter.NewRateLimiter(cfg.RateLimiter, logger)
	mail := mailer.NewMailer(cfg.Mail, cfg.IsProduction(), logger)
	jwtService := auth.NewJwt(cfg.Auth, logger)
	repo := repository.NewRepository(db, logger, jwtService)
	app := appcontext.Application{
		Config:     &cfg,
		Repository: repo,
		Logger:     logger,
		Mailer:     mail,
		JWTService: jwtService,
		Storage:    storage,
		Renderer:   renderer,
		Metrics:    metrics.New(),
	}

	_middleware := middleware.NewMiddleware(&app, rateLimiter)

	if cfg.IsProduction() {
		logger.Info("Running in production mode")
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// docs: https://github.com/gin-contrib/cors?tab=readme-ov-file#using-defaultconfig-as-start-point
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Requested-With", "Accept", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{"Content-Disposition", middleware.RequestIDHeader}
	r.Use(cors.New(corsConfig))
	r.Use(_middleware.RequestID)
	r.Use(_middleware.Metrics)

	_controller := controller.NewController(&app)

	r.GET("/", _controller.Index.Index)
	r.GET("/healthz", _controller.Index.Health)
	r.GET("/metrics", gin.WrapH(app.Metrics.Handler()))

	rApi := r.Group("/api")

	route.V1_Auth(rApi, _controller.Auth, _middleware)
	route.V1_Me(rApi, _controller.Auth, _middleware)
	route.V1_Users(rApi, _controller.User, _middleware)
	route.V1_Suppliers(rApi, _controller.Supplier, _middleware)
	route.V1_Intakes(rApi, _controller.Intake, _middleware)
	route.V1_Certificates(rApi, _controller.Certificate, _middleware)
	route.V1_Labels(rApi, _controller.LabelBatch, _middleware)
	route.V1_Dashboard(rApi, _controller.Dashboard, _middleware)

	if err := r.Run("0.0.0.0:" + app.Config.Port); err != nil {
		logger.Panicf("Error running server: %v \n", err)
	}
}

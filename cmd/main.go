package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/meowcdd/config"
	"github.com/lshigami/meowcdd/database"
	_ "github.com/lshigami/meowcdd/docs"
	catalogctrl "github.com/lshigami/meowcdd/internal/controller/catalog"
	childctrl "github.com/lshigami/meowcdd/internal/controller/child"
	recordctrl "github.com/lshigami/meowcdd/internal/controller/record"
	"github.com/lshigami/meowcdd/internal/logger"
	"github.com/lshigami/meowcdd/internal/model"
	"github.com/lshigami/meowcdd/internal/repository"
	"github.com/lshigami/meowcdd/internal/service"
	"github.com/lshigami/meowcdd/internal/validation"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Child Development Assessment API
// @version 1.0
// @description Child test records with server-computed percentage score and result level, child profiles and the CDD test catalog.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init("info")

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewChildTestRecordRepository,
			repository.NewChildRepository,
			repository.NewCDDTestRepository,
		),

		// Services
		fx.Provide(
			service.NewInterpretationService,
			service.NewChildTestRecordService,
			service.NewChildService,
			service.NewCDDTestService,
		),

		// Controllers
		fx.Provide(
			recordctrl.NewChildTestRecordController,
			childctrl.NewChildController,
			catalogctrl.NewCDDTestController,
		),

		fx.Invoke(ConfigureLogger),
		fx.Invoke(validation.RegisterGinValidators),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

// ConfigureLogger applies the configured level once the config is loaded.
func ConfigureLogger(cfg *config.Config) {
	logger.Init(cfg.LogLevel)
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.GinMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	corsConfig := cors.Config{
		AllowOrigins:  cfg.CORS.AllowOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(corsConfig.AllowOrigins) == 0 || (len(corsConfig.AllowOrigins) == 1 && corsConfig.AllowOrigins[0] == "*") {
		// Wildcard origins cannot be combined with credentials.
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowCredentials = true
	}
	r.Use(cors.New(corsConfig))

	// http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer mounts the API and ties the HTTP server to the fx lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	recordCtrl *recordctrl.ChildTestRecordController,
	childCtrl *childctrl.ChildController,
	cddTestCtrl *catalogctrl.CDDTestController,
) {
	api := router.Group("/api/v1")
	recordCtrl.RegisterRoutes(api)
	childCtrl.RegisterRoutes(api)
	cddTestCtrl.RegisterRoutes(api)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Child assessment API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Child{},
		&model.CDDTest{},
		&model.ChildTestRecord{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

package main

import (
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/iver-wharf/wharf-core/pkg/ginutil"
	"github.com/iver-wharf/wharf-core/pkg/logger"
	"github.com/iver-wharf/wharf-core/pkg/logger/consolepretty"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/iver-wharf/azuredevops-go/docs"
	"github.com/iver-wharf/azuredevops-go/pkg/connection"
)

var log = logger.NewScoped("AZUREDEVOPS-GO")

// @title azuredevops-go API
// @description Service receiving Azure DevOps service hooks and collecting
// @description the repositories of an Azure DevOps organization.
// @license.name MIT
// @license.url https://github.com/iver-wharf/azuredevops-go/blob/master/LICENSE
// @contact.name Iver Wharf
// @contact.url https://github.com/iver-wharf/azuredevops-go/issues
// @contact.email wharf@iver.se
// @basePath /api
func main() {
	logger.AddOutput(logger.LevelDebug, consolepretty.Default)

	var (
		config Config
		err    error
	)
	if err = loadEmbeddedVersionFile(); err != nil {
		log.Error().WithError(err).Message("Failed to read embedded version.yaml.")
		os.Exit(1)
	}
	if config, err = loadConfig(); err != nil {
		log.Error().WithError(err).Message("Failed to read config.")
		os.Exit(1)
	}

	docs.SwaggerInfo.Version = AppVersion.Version

	conn, err := newConnection(config)
	if err != nil {
		log.Error().WithError(err).Message("Failed to create Azure DevOps connection.")
		os.Exit(1)
	}

	gin.DefaultWriter = ginutil.DefaultLoggerWriter
	gin.DefaultErrorWriter = ginutil.DefaultLoggerWriter

	r := gin.New()
	r.Use(
		ginutil.DefaultLoggerHandler,
		ginutil.RecoverProblem,
	)

	if config.HTTP.CORS.AllowAllOrigins {
		log.Info().Message("Allowing all origins in CORS.")
		r.Use(cors.Default())
	}

	setupRoutes(r, &config, conn)

	if err := r.Run(config.HTTP.BindAddress); err != nil {
		log.Error().
			WithError(err).
			WithString("address", config.HTTP.BindAddress).
			Message("Failed to start web server.")
		os.Exit(2)
	}
}

func setupRoutes(r *gin.Engine, config *Config, conn *connection.Connection) {
	r.GET("/", pingHandler)

	api := r.Group("/api")
	api.GET("/version", getVersionHandler)
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	newAzureDevOpsModule(config, conn).register(api)
}

func pingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, pong{Message: "pong"})
}

type pong struct {
	Message string `json:"message" example:"pong"`
}

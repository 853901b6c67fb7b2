package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meghashyamc/ecssnav/api/handlers"
	"github.com/meghashyamc/ecssnav/config"
	_ "github.com/meghashyamc/ecssnav/docs"
	"github.com/meghashyamc/ecssnav/logger"
	"github.com/meghashyamc/ecssnav/metrics"
	"github.com/meghashyamc/ecssnav/services/catalog"
	"github.com/meghashyamc/ecssnav/services/search"
	"github.com/meghashyamc/ecssnav/ui"
	"github.com/meghashyamc/ecssnav/validation"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func setupRoutes(router *gin.Engine, logger logger.Logger, searchService *search.Service, catalogService *catalog.Service, validator *validation.Validator) {
	router.GET("/health", health())
	router.GET("/metrics", metrics.Handler())
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Serve static UI files
	router.StaticFS("/ui", http.FS(ui.Files))
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/ui/")
	})

	handlers.SetupSearch(router, logger, searchService, validator)
	handlers.SetupCatalog(router, logger, catalogService)

}

func health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	}
}

func newRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(ginMode(cfg.GetGinMode()))

	router := gin.New()
	router.UseRawPath = true
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(corsMiddleware(cfg.GetAllowedOrigins()))
	router.Use(metrics.Middleware())

	return router
}

// gin panics on unknown modes.
func ginMode(mode string) string {
	switch mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		return mode
	default:
		return gin.ReleaseMode
	}
}

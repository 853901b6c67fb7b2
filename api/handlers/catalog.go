package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meghashyamc/ecssnav/logger"
	"github.com/meghashyamc/ecssnav/services/catalog"
)

func SetupCatalog(router gin.IRouter, logger logger.Logger, service *catalog.Service) {
	router.GET("/api/documents", handleListDocuments(service, logger))
	router.GET("/api/health", handleBackendHealth(service, logger))
}

// handleListDocuments godoc
// @Summary      List backend documents
// @Description  Lists the documents known to the search backend. Answers an empty list with an error marker when the backend is unavailable.
// @Tags         documents
// @Produce      json
// @Success      200  {object}  models.DocumentsResponse
// @Router       /api/documents [get]
func handleListDocuments(service *catalog.Service, logger logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := service.Documents(c.Request.Context())
		logger.Info("documents listed", "total", response.Total)
		writeResponse(c, response, http.StatusOK)
	}
}

// handleBackendHealth godoc
// @Summary      Backend health
// @Description  Reports whether the search backend is reachable.
// @Tags         health
// @Produce      json
// @Success      200  {object}  models.HealthResponse
// @Router       /api/health [get]
func handleBackendHealth(service *catalog.Service, logger logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := service.Health(c.Request.Context())
		logger.Debug("backend health checked", "status", response.Status)
		writeResponse(c, response, http.StatusOK)
	}
}

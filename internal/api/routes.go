package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Radar Workspace API
// @version 1.0
// @description Sync and session-resumption facade for research radar workspaces
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// SetupRouter configures the API routes
func SetupRouter(h *Handler) *gin.Engine {
	r := gin.Default()

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		radars := v1.Group("/radars/:id")
		{
			radars.POST("/sync", h.TriggerRadarSync)
			radars.GET("/sync", h.GetRadarSyncStatus)
			radars.GET("/workspace", h.OpenWorkspace)
			radars.GET("/documents", h.ListRadarDocuments)
		}

		v1.GET("/threads", h.ListThreads)
	}

	return r
}

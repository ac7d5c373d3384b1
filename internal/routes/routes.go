package routes

import (
	"net/http"

	"jobtrack_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all HTTP routes. requireAuth is the identity
// middleware built around the process-wide token manager; it is the only
// way an owner id reaches the job and stats operations.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, requireAuth gin.HandlerFunc) {
	api := ginRouter.Group("")
	{
		appHandlers.AuthHandler.RegisterRoutes(api, requireAuth)
		appHandlers.JobHandler.RegisterRoutes(api, requireAuth)
	}

	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

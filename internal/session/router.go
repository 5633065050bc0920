package session

import (
	"github.com/gin-gonic/gin"
)

// SetupSessionRoutes configures session-related routes
func SetupSessionRoutes(rg *gin.RouterGroup, controller *Controller) {
	sessions := rg.Group("/session")
	{
		sessions.POST("/normalize-role", controller.NormalizeRole) // POST /api/v1/session/normalize-role
	}
}

package stats

import (
	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/session"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupStatsRoutes configures admin dashboard routes. Admin only.
func SetupStatsRoutes(rg *gin.RouterGroup, controller *Controller) {
	dashboard := rg.Group("/dashboard")
	dashboard.Use(middleware.RequireToken(), middleware.RequireRoles(session.RoleAdmin, session.RoleSuperAdmin))
	{
		dashboard.GET("/stats", controller.GetDashboardStats) // GET /api/v1/dashboard/stats
	}
}

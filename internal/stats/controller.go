package stats

import (
	"net/http"

	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// GetDashboardStats handles GET /api/v1/dashboard/stats
func (c *Controller) GetDashboardStats(ctx *gin.Context) {
	stats, err := c.service.GetDashboardStats(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadGateway,
			"Failed to load dashboard stats", nil, err.Error())
		return
	}

	response.Success(ctx, "Dashboard stats loaded", stats)
}

package selection

import (
	"net/http"

	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/shared/middleware"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// ToggleRequest carries the seat the user clicked.
type ToggleRequest struct {
	SeatNumber string `json:"seat_number" binding:"required"`
}

// Toggle handles POST /api/v1/selection/:unitID/toggle
func (c *Controller) Toggle(ctx *gin.Context) {
	var req ToggleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	sessionID := middleware.GetSessionID(ctx)
	unitID := ctx.Param("unitID")

	summary, err := c.service.Toggle(ctx.Request.Context(), sessionID, unitID, req.SeatNumber)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadGateway, "Failed to toggle seat", nil, err.Error())
		return
	}

	response.Success(ctx, "Selection updated", summary)
}

// Get handles GET /api/v1/selection/:unitID
func (c *Controller) Get(ctx *gin.Context) {
	sessionID := middleware.GetSessionID(ctx)
	unitID := ctx.Param("unitID")

	summary, err := c.service.Get(ctx.Request.Context(), sessionID, unitID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadGateway, "Failed to load selection", nil, err.Error())
		return
	}

	response.Success(ctx, "Selection loaded", summary)
}

// Clear handles DELETE /api/v1/selection/:unitID
func (c *Controller) Clear(ctx *gin.Context) {
	sessionID := middleware.GetSessionID(ctx)

	if err := c.service.Clear(ctx.Request.Context(), sessionID); err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to clear selection", nil, err.Error())
		return
	}

	response.Success(ctx, "Selection cleared", nil)
}

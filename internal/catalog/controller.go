package catalog

import (
	"net/http"

	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/relay"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/shared/middleware"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/shared/utils/response"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service    Service
	relayStore relay.Store
}

func NewController(service Service, relayStore relay.Store) *Controller {
	return &Controller{
		service:    service,
		relayStore: relayStore,
	}
}

// GetUnitSeats handles GET /api/v1/catalog/units/:id/seats
//
// The load also records the unit as the session's current unit so the
// selection state can detect identity changes across page views.
func (c *Controller) GetUnitSeats(ctx *gin.Context) {
	unitID := ctx.Param("id")
	sessionID := middleware.GetSessionID(ctx)

	unit, err := c.service.GetUnitSeats(ctx.Request.Context(), unitID)
	if err != nil {
		// The view renders an empty grid on failure instead of crashing
		response.RespondJSON(ctx, "error", http.StatusBadGateway,
			"Failed to load seat catalog", EmptyGrid(unitID), err.Error())
		return
	}

	if err := c.relayStore.SaveUnitSelection(ctx.Request.Context(), sessionID, unitID); err != nil {
		logger.GetDefault().Debug("failed to record unit selection", "session_id", sessionID, "error", err)
	}

	response.Success(ctx, "Seat catalog loaded", newSeatGridResponse(unit))
}

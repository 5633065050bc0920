package checkout

import (
	"errors"
	"net/http"

	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/relay"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/shared/middleware"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	orchestrator Orchestrator
}

func NewController(orchestrator Orchestrator) *Controller {
	return &Controller{orchestrator: orchestrator}
}

// Checkout handles POST /api/v1/checkout
//
// The route is deliberately ungated: the auth check is the first step
// of the run itself, so an anonymous submit gets the login redirect in
// the response body rather than a middleware 401.
func (c *Controller) Checkout(ctx *gin.Context) {
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(ctx, "Invalid checkout request", err.Error())
		return
	}

	req.Token = middleware.GetToken(ctx)
	req.SessionID = middleware.GetSessionID(ctx)
	req.From = ctx.Request.URL.RequestURI()

	resp, runErr := c.orchestrator.Run(ctx.Request.Context(), req)
	if runErr != nil {
		response.RespondJSON(ctx, "error", statusForError(runErr), runErr.Message, nil, runErr)
		return
	}

	response.Success(ctx, "Checkout ready for payment", resp)
}

// Confirmation handles GET /api/v1/checkout/confirmation
func (c *Controller) Confirmation(ctx *gin.Context) {
	sessionID := middleware.GetSessionID(ctx)

	resp, err := c.orchestrator.Confirmation(ctx.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, relay.ErrNotFound) {
			response.RespondJSON(ctx, "error", http.StatusNotFound,
				"No recent booking found", nil, gin.H{"redirect": "/"})
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError,
			"Failed to load booking confirmation", nil, err.Error())
		return
	}

	response.Success(ctx, "Booking confirmed", resp)
}

func statusForError(err *Error) int {
	switch err.State {
	case StateAuthCheck:
		return http.StatusUnauthorized
	case StateValidating:
		return http.StatusUnprocessableEntity
	case StateReservingSeats:
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}

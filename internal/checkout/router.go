package checkout

import (
	"github.com/gin-gonic/gin"
)

// SetupCheckoutRoutes configures checkout routes. The submit route runs
// its own auth check; the confirmation page only needs the session key.
func SetupCheckoutRoutes(rg *gin.RouterGroup, controller *Controller) {
	checkout := rg.Group("/checkout")
	{
		checkout.POST("", controller.Checkout)                 // POST /api/v1/checkout
		checkout.GET("/confirmation", controller.Confirmation) // GET /api/v1/checkout/confirmation
	}
}

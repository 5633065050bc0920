package selection

import (
	"github.com/gin-gonic/gin"
)

// SetupSelectionRoutes configures seat selection routes. Selection is
// keyed by browsing session, not by account, so no token gate here.
func SetupSelectionRoutes(rg *gin.RouterGroup, controller *Controller) {
	sel := rg.Group("/selection")
	{
		sel.POST("/:unitID/toggle", controller.Toggle) // POST /api/v1/selection/:unitID/toggle
		sel.GET("/:unitID", controller.Get)            // GET /api/v1/selection/:unitID
		sel.DELETE("/:unitID", controller.Clear)       // DELETE /api/v1/selection/:unitID
	}
}

package catalog

import (
	"github.com/gin-gonic/gin"
)

// SetupCatalogRoutes configures seat catalog routes. Browsing is public;
// only checkout is gated.
func SetupCatalogRoutes(rg *gin.RouterGroup, controller *Controller) {
	units := rg.Group("/catalog")
	{
		units.GET("/units/:id/seats", controller.GetUnitSeats) // GET /api/v1/catalog/units/:id/seats
	}
}

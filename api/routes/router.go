// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/catalog"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/checkout"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/events"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/gateway"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/relay"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/selection"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/session"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/shared/config"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/stats"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/pkg/cache"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config       *config.Config
	clients      *gateway.Clients
	cacheService cache.Service
	producer     events.Producer
	log          *logger.Logger

	// Shared across route groups after setup.
	catalogService catalog.Service
	relayStore     relay.Store
	statsService   stats.Service
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, clients *gateway.Clients, cacheService cache.Service, producer events.Producer, log *logger.Logger) *Router {
	return &Router{
		config:       cfg,
		clients:      clients,
		cacheService: cacheService,
		producer:     producer,
		log:          log,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		// Catalog first: it owns the relay store other groups share
		r.setupCatalogRoutes(api)
		r.setupSelectionRoutes(api)
		r.setupCheckoutRoutes(api)
		r.setupSessionRoutes(api)
		r.setupStatsRoutes(api)
	}
}

// StatsService exposes the stats service so the server can run the
// background poller against the same cached instance.
func (r *Router) StatsService() stats.Service {
	return r.statsService
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if r.cacheService != nil {
			if err := r.cacheService.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":    "unhealthy",
					"error":     err.Error(),
					"timestamp": time.Now(),
					"service":   "bus-booking-gateway",
				})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "bus-booking-gateway",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupCatalogRoutes configures seat catalog routes
func (r *Router) setupCatalogRoutes(rg *gin.RouterGroup) {
	catalogService := catalog.NewService(r.clients.Catalog)
	relayStore := relay.NewStore(r.cacheService, r.config.Redis.RelayTTL)
	if r.cacheService != nil {
		catalogService.SetCacheService(r.cacheService)
	}

	r.catalogService = catalogService
	r.relayStore = relayStore

	catalogController := catalog.NewController(catalogService, relayStore)
	catalog.SetupCatalogRoutes(rg, catalogController)
}

// setupSelectionRoutes configures seat selection routes
func (r *Router) setupSelectionRoutes(rg *gin.RouterGroup) {
	selectionRepo := selection.NewRepository(r.cacheService, r.config.Redis.SelectionTTL)
	selectionService := selection.NewService(selectionRepo, r.catalogService)

	selectionController := selection.NewController(selectionService)
	selection.SetupSelectionRoutes(rg, selectionController)
}

// setupCheckoutRoutes configures checkout routes
func (r *Router) setupCheckoutRoutes(rg *gin.RouterGroup) {
	selectionRepo := selection.NewRepository(r.cacheService, r.config.Redis.SelectionTTL)
	selectionService := selection.NewService(selectionRepo, r.catalogService)

	orchestrator := checkout.NewOrchestrator(
		r.catalogService,
		selectionService,
		r.clients,
		r.relayStore,
		r.config.Payment,
		r.log,
	)
	if r.producer != nil {
		orchestrator.SetEventProducer(r.producer)
	}

	checkoutController := checkout.NewController(orchestrator)
	checkout.SetupCheckoutRoutes(rg, checkoutController)
}

// setupSessionRoutes configures session and role routes
func (r *Router) setupSessionRoutes(rg *gin.RouterGroup) {
	sessionController := session.NewController()
	session.SetupSessionRoutes(rg, sessionController)
}

// setupStatsRoutes configures admin dashboard routes
func (r *Router) setupStatsRoutes(rg *gin.RouterGroup) {
	statsService := stats.NewService(r.clients.Stats)
	if r.cacheService != nil {
		statsService.SetCacheService(r.cacheService)
	}
	r.statsService = statsService

	statsController := stats.NewController(statsService)
	stats.SetupStatsRoutes(rg, statsController)
}

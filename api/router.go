package api

import (
	"net/http"

	"github.com/ark-dvd/realtor-os-sub000/internal/cms"
	"github.com/ark-dvd/realtor-os-sub000/internal/config"
	"github.com/ark-dvd/realtor-os-sub000/internal/deal"
	"github.com/ark-dvd/realtor-os-sub000/internal/listing"
	"github.com/ark-dvd/realtor-os-sub000/internal/settings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InitRoutes wires the services from an explicit Config and registers every
// endpoint on the given Gin engine. main builds the Config once at startup;
// tests pass their own pointing at a mock CMS.
func InitRoutes(e *gin.Engine, cfg config.Config, logger *zap.Logger) {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}

	var (
		client         *cms.Client
		listingSource  listing.Source
		listingMutator listing.Mutator
		dealSource     deal.Source
		dealMutator    deal.Mutator
	)
	if cfg.CMS.Enabled() {
		client = cms.New(cfg.CMS)
		listingSource = listing.NewCMSSource(client)
		listingMutator = client
		dealSource = deal.NewCMSSource(client)
		dealMutator = client
	} else {
		logger.Info("cms not configured, serving bundled sample content")
	}

	listingService := listing.NewService(listingSource, listingMutator, logger)
	dealService := deal.NewService(dealSource, dealMutator, logger)
	settingsService := settings.NewService(client, logger)

	publicHandler := NewPublicHandler(listingService, settingsService, logger)
	dashboardHandler := NewDashboardHandler(dealService, logger)
	adminHandler := NewAdminHandler(listingService, dealService, settingsService, logger)

	e.GET("/properties", publicHandler.handleListProperties)
	e.GET("/properties/:slug", publicHandler.handleGetProperty)
	e.GET("/communities", publicHandler.handleListCommunities)
	e.GET("/communities/:slug", publicHandler.handleGetCommunity)
	e.GET("/settings", publicHandler.handleGetSettings)

	e.GET("/dashboard", dashboardHandler.handleDashboard)
	e.GET("/dashboard/compact", dashboardHandler.handleCompact)

	admin := e.Group("/admin")
	admin.GET("/deals", adminHandler.handleListDeals)
	admin.POST("/properties", adminHandler.handleCreateProperty)
	admin.PUT("/properties/:id", adminHandler.handleReplaceProperty)
	admin.DELETE("/properties/:id", adminHandler.handleDeleteProperty)
	admin.POST("/communities", adminHandler.handleCreateCommunity)
	admin.PUT("/communities/:id", adminHandler.handleReplaceCommunity)
	admin.DELETE("/communities/:id", adminHandler.handleDeleteCommunity)
	admin.POST("/deals", adminHandler.handleCreateDeal)
	admin.PUT("/deals/:id", adminHandler.handleReplaceDeal)
	admin.DELETE("/deals/:id", adminHandler.handleDeleteDeal)
	admin.PUT("/settings", adminHandler.handleUpdateSettings)

	e.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
}

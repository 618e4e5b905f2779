package api

import (
	"errors"
	"net/http"

	"github.com/ark-dvd/realtor-os-sub000/internal/deal"
	"github.com/ark-dvd/realtor-os-sub000/internal/listing"
	"github.com/ark-dvd/realtor-os-sub000/internal/settings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// adminHandler is the back-office CRUD passthrough. Every mutation is a
// simple create/replace/delete against the CMS followed by a re-fetch of
// the full collection; there is no optimistic concurrency, last write wins
// at the CMS layer.
type adminHandler struct {
	listings *listing.Service
	deals    *deal.Service
	settings *settings.Service
	logger   *zap.Logger
}

// NewAdminHandler creates the handler for the /admin endpoints.
func NewAdminHandler(listings *listing.Service, deals *deal.Service, settings *settings.Service, logger *zap.Logger) *adminHandler {
	return &adminHandler{
		listings: listings,
		deals:    deals,
		settings: settings,
		logger:   logger,
	}
}

// respondMutationError maps CMS write failures onto the admin UI's toast.
func respondMutationError(c *gin.Context, err error) {
	if errors.Is(err, listing.ErrReadOnly) || errors.Is(err, deal.ErrReadOnly) || errors.Is(err, settings.ErrReadOnly) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "cms not configured"})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": "cms write failed"})
}

func (h *adminHandler) handleCreateProperty(c *gin.Context) {
	var p listing.Property
	if err := c.ShouldBindJSON(&p); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	if err := h.listings.CreateProperty(c.Request.Context(), p); err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"results": h.listings.Properties(c.Request.Context())})
}

func (h *adminHandler) handleReplaceProperty(c *gin.Context) {
	var p listing.Property
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}
	p.ID = c.Param("id")

	if err := h.listings.ReplaceProperty(c.Request.Context(), p); err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": h.listings.Properties(c.Request.Context())})
}

func (h *adminHandler) handleDeleteProperty(c *gin.Context) {
	if err := h.listings.DeleteProperty(c.Request.Context(), c.Param("id")); err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": h.listings.Properties(c.Request.Context())})
}

func (h *adminHandler) handleCreateCommunity(c *gin.Context) {
	var comm listing.Community
	if err := c.ShouldBindJSON(&comm); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}
	if comm.ID == "" {
		comm.ID = uuid.NewString()
	}

	if err := h.listings.CreateCommunity(c.Request.Context(), comm); err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"results": h.listings.Communities(c.Request.Context())})
}

func (h *adminHandler) handleReplaceCommunity(c *gin.Context) {
	var comm listing.Community
	if err := c.ShouldBindJSON(&comm); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}
	comm.ID = c.Param("id")

	if err := h.listings.ReplaceCommunity(c.Request.Context(), comm); err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": h.listings.Communities(c.Request.Context())})
}

func (h *adminHandler) handleDeleteCommunity(c *gin.Context) {
	if err := h.listings.DeleteCommunity(c.Request.Context(), c.Param("id")); err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": h.listings.Communities(c.Request.Context())})
}

// handleListDeals serves the back-office deal table.
func (h *adminHandler) handleListDeals(c *gin.Context) {
	deals := h.deals.Deals(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"results": deals, "count": len(deals)})
}

func (h *adminHandler) handleCreateDeal(c *gin.Context) {
	var d deal.Deal
	if err := c.ShouldBindJSON(&d); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}
	if _, err := deal.Describe(d.TransactionStage); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transaction stage"})
		return
	}
	if d.ID == "" {
		d.ID = uuid.NewString()
	}

	if err := h.deals.Create(c.Request.Context(), d); err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"results": h.deals.Deals(c.Request.Context())})
}

func (h *adminHandler) handleReplaceDeal(c *gin.Context) {
	var d deal.Deal
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}
	if _, err := deal.Describe(d.TransactionStage); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transaction stage"})
		return
	}
	d.ID = c.Param("id")

	if err := h.deals.Replace(c.Request.Context(), d); err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": h.deals.Deals(c.Request.Context())})
}

func (h *adminHandler) handleDeleteDeal(c *gin.Context) {
	if err := h.deals.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": h.deals.Deals(c.Request.Context())})
}

func (h *adminHandler) handleUpdateSettings(c *gin.Context) {
	var in settings.SiteSettings
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	if err := h.settings.Update(c.Request.Context(), in); err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.settings.Get(c.Request.Context()))
}

package api

import (
	"errors"
	"net/http"

	"github.com/ark-dvd/realtor-os-sub000/internal/deal"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// dashboardHandler serves the client transaction-status dashboard.
type dashboardHandler struct {
	deals  *deal.Service
	logger *zap.Logger
}

// NewDashboardHandler creates the handler for the dashboard endpoints.
func NewDashboardHandler(deals *deal.Service, logger *zap.Logger) *dashboardHandler {
	return &dashboardHandler{
		deals:  deals,
		logger: logger,
	}
}

// handleDashboard handles GET /dashboard?email= and returns the client's
// deal plus the full progress tracker render.
func (h *dashboardHandler) handleDashboard(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter is required"})
		return
	}

	dashboard, err := h.deals.DashboardForClient(c.Request.Context(), email)
	if err != nil {
		h.respondDealError(c, email, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// handleCompact handles GET /dashboard/compact?email= and returns the
// single-stage summary variant.
func (h *dashboardHandler) handleCompact(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter is required"})
		return
	}

	compact, err := h.deals.CompactForClient(c.Request.Context(), email)
	if err != nil {
		h.respondDealError(c, email, err)
		return
	}
	c.JSON(http.StatusOK, compact)
}

func (h *dashboardHandler) respondDealError(c *gin.Context, email string, err error) {
	switch {
	case errors.Is(err, deal.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "no deal found for this client"})
	case errors.Is(err, deal.ErrInvalidStage):
		// Upstream data corruption; surfaced, never masked.
		h.logger.Error("dashboard render failed on corrupt stage",
			zap.String("client_email", email),
			zap.Error(err),
		)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "deal record has an invalid transaction stage"})
	default:
		h.logger.Error("dashboard lookup failed", zap.String("client_email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dashboard"})
	}
}

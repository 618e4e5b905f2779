package api

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/ark-dvd/realtor-os-sub000/internal/listing"
	"github.com/ark-dvd/realtor-os-sub000/internal/settings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// publicHandler serves the browsing pages: property grid, community
// explorer, detail pages, and site settings. These endpoints never fail on
// CMS errors; the services hand back fallback data instead.
type publicHandler struct {
	listings *listing.Service
	settings *settings.Service
	logger   *zap.Logger
}

// NewPublicHandler creates the handler for the public endpoints.
func NewPublicHandler(listings *listing.Service, settings *settings.Service, logger *zap.Logger) *publicHandler {
	return &publicHandler{
		listings: listings,
		settings: settings,
		logger:   logger,
	}
}

// queryFloat reads a float query param, keeping def when the param is
// absent or malformed. Authored junk degrades, it never errors.
func queryFloat(c *gin.Context, name string, def float64) float64 {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

func queryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func propertyFilterFromQuery(c *gin.Context) listing.PropertyFilter {
	f := listing.NewPropertyFilter()
	f.Search = c.Query("search")
	if status := c.Query("status"); status != "" {
		f.Status = status
	}
	f.PriceMin = queryFloat(c, "price_min", 0)
	f.PriceMax = queryFloat(c, "price_max", math.Inf(1))
	f.MinBeds = queryInt(c, "min_beds", 0)
	f.MinBaths = queryFloat(c, "min_baths", 0)
	if sortOrder := c.Query("sort"); sortOrder != "" {
		f.Sort = sortOrder
	}
	return f
}

func communityFilterFromQuery(c *gin.Context) listing.CommunityFilter {
	f := listing.NewCommunityFilter()
	f.Search = c.Query("search")
	f.District = c.Query("district")
	f.MaxCommuteMins = queryFloat(c, "max_commute", math.Inf(1))
	f.PriceMax = queryFloat(c, "price_max", math.Inf(1))
	return f
}

// handleListProperties handles GET /properties with the grid's filters.
func (h *publicHandler) handleListProperties(c *gin.Context) {
	f := propertyFilterFromQuery(c)
	results := listing.FilterProperties(h.listings.Properties(c.Request.Context()), f)
	c.JSON(http.StatusOK, gin.H{"results": results, "count": len(results)})
}

// handleGetProperty handles GET /properties/:slug.
func (h *publicHandler) handleGetProperty(c *gin.Context) {
	p, err := h.listings.PropertyBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, listing.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load property"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// handleListCommunities handles GET /communities with the explorer filters.
func (h *publicHandler) handleListCommunities(c *gin.Context) {
	f := communityFilterFromQuery(c)
	results := listing.FilterCommunities(h.listings.Communities(c.Request.Context()), f)
	c.JSON(http.StatusOK, gin.H{"results": results, "count": len(results)})
}

// handleGetCommunity handles GET /communities/:slug.
func (h *publicHandler) handleGetCommunity(c *gin.Context) {
	comm, err := h.listings.CommunityBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, listing.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "community not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load community"})
		return
	}
	c.JSON(http.StatusOK, comm)
}

// handleGetSettings handles GET /settings.
func (h *publicHandler) handleGetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.settings.Get(c.Request.Context()))
}

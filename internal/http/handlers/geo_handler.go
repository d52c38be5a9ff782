// README: Country and city lookup HTTP handlers.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"travelgenie/internal/modules/geo"
)

type GeoHandler struct {
	cache *geo.Cache
}

func NewGeoHandler(cache *geo.Cache) *GeoHandler {
	return &GeoHandler{cache: cache}
}

// Countries handles GET /api/countries.
func (h *GeoHandler) Countries(c *gin.Context) {
	countries, err := h.cache.Countries(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusBadGateway, "failed to load countries")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"countries": countries})
}

// Cities handles GET /api/countries/:code/cities.
func (h *GeoHandler) Cities(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))
	if code == "" {
		writeError(c, http.StatusBadRequest, "missing country code")
		return
	}
	cities, err := h.cache.Cities(c.Request.Context(), code)
	if err != nil {
		writeError(c, http.StatusBadGateway, "failed to load cities")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"cities": cities})
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/docpoint/doctor-scheduler/internal/cache"
	"github.com/docpoint/doctor-scheduler/internal/httperr"
	"github.com/docpoint/doctor-scheduler/internal/httpresp"
)

type LocationHandler struct {
	locations *cache.LocationCache
}

func NewLocationHandler(locations *cache.LocationCache) *LocationHandler {
	return &LocationHandler{locations: locations}
}

func (h *LocationHandler) Cities(c *gin.Context) {
	cities, err := h.locations.Cities(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_cities", "Could not list cities.")
		return
	}

	httpresp.List(c, cities)
}

func (h *LocationHandler) Districts(c *gin.Context) {
	districts, err := h.locations.Districts(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Internal(c, "failed_to_list_districts", "Could not list districts.")
		return
	}

	httpresp.List(c, districts)
}

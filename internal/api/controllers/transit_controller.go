package controllers

import (
	"net/http"
	"strconv"

	"greenway/internal/services"
	"greenway/pkg/utils"

	"github.com/gin-gonic/gin"
)

type TransitController struct {
	transitService services.TransitServiceInterface
}

func NewTransitController(transitService services.TransitServiceInterface) *TransitController {
	return &TransitController{
		transitService: transitService,
	}
}

// NearbyStops godoc
// @Summary Find metro stops near a coordinate
// @Tags Transit
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param radius query number false "Search radius in km" default(2)
// @Success 200 {object} utils.APIResponse
// @Router /transit/stops [get]
func (t *TransitController) NearbyStops(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid latitude")
		return
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid longitude")
		return
	}
	radius, _ := strconv.ParseFloat(c.DefaultQuery("radius", "2"), 64)

	resp, err := t.transitService.NearbyStops(c.Request.Context(), lat, lon, radius)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Nearby stops fetched successfully")
}

// BestRoute godoc
// @Summary Find a direct metro route between two stops
// @Tags Transit
// @Produce json
// @Param from query string true "Origin stop id"
// @Param to query string true "Destination stop id"
// @Success 200 {object} utils.APIResponse
// @Router /transit/route [get]
func (t *TransitController) BestRoute(c *gin.Context) {
	resp, err := t.transitService.BestRoute(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Route fetched successfully")
}

// TransportOptions godoc
// @Summary List sustainable transport options for a leg
// @Tags Transit
// @Produce json
// @Param from_lat query number true "Origin latitude"
// @Param from_lon query number true "Origin longitude"
// @Param to_lat query number true "Destination latitude"
// @Param to_lon query number true "Destination longitude"
// @Success 200 {object} utils.APIResponse
// @Router /transit/options [get]
func (t *TransitController) TransportOptions(c *gin.Context) {
	coords := make([]float64, 4)
	for i, key := range []string{"from_lat", "from_lon", "to_lat", "to_lon"} {
		v, err := strconv.ParseFloat(c.Query(key), 64)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid coordinate: "+key)
			return
		}
		coords[i] = v
	}

	resp, err := t.transitService.TransportOptions(c.Request.Context(), coords[0], coords[1], coords[2], coords[3])
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Transport options fetched successfully")
}

// CarbonFootprint godoc
// @Summary Estimate the carbon footprint of a journey
// @Tags Transit
// @Produce json
// @Param mode query string true "Transport mode (walk, bike, bus, train, car)"
// @Param distance_km query number true "Distance in km"
// @Success 200 {object} utils.APIResponse
// @Router /transit/carbon [get]
func (t *TransitController) CarbonFootprint(c *gin.Context) {
	distance, err := strconv.ParseFloat(c.Query("distance_km"), 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid distance")
		return
	}

	resp, err := t.transitService.CarbonFootprint(c.Request.Context(), c.Query("mode"), distance)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Carbon footprint estimated successfully")
}

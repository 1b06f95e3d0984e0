package controllers

import (
	"net/http"
	"strconv"

	"greenway/internal/services"
	"greenway/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AirQualityController struct {
	airQualityService services.AirQualityServiceInterface
}

func NewAirQualityController(airQualityService services.AirQualityServiceInterface) *AirQualityController {
	return &AirQualityController{
		airQualityService: airQualityService,
	}
}

// ForLocation godoc
// @Summary Get the air quality reading for a coordinate
// @Tags AirQuality
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param location query string false "Display name for the location"
// @Success 200 {object} utils.APIResponse
// @Router /air-quality [get]
func (a *AirQualityController) ForLocation(c *gin.Context) {
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

	resp, err := a.airQualityService.ForLocation(c.Request.Context(), lat, lon, c.DefaultQuery("location", "Unknown"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Air quality fetched successfully")
}

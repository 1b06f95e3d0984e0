package controllers

import (
	"net/http"
	"strconv"

	"greenway/internal/models/request_models"
	"greenway/internal/services"
	"greenway/pkg/utils"

	"github.com/gin-gonic/gin"
)

type TripController struct {
	plannerService services.PlannerServiceInterface
	tripService    services.TripServiceInterface
}

func NewTripController(plannerService services.PlannerServiceInterface, tripService services.TripServiceInterface) *TripController {
	return &TripController{
		plannerService: plannerService,
		tripService:    tripService,
	}
}

// PlanTrip godoc
// @Summary Plan a sustainable trip
// @Description Generate, persist, and return a full itinerary for a date range
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.PlanTripRequest true "Trip planning payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /trips/plan [post]
func (t *TripController) PlanTrip(c *gin.Context) {
	var req request_models.PlanTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := t.plannerService.PlanTrip(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Trip planned successfully")
}

// ListTrips godoc
// @Summary List the authenticated user's trips
// @Tags Trips
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} utils.APIResponse
// @Router /trips [get]
func (t *TripController) ListTrips(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	resp, err := t.tripService.ListTrips(c.Request.Context(), c.GetString("user_id"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Trips fetched successfully")
}

// TripDetails godoc
// @Summary Get a trip with its days and activities
// @Tags Trips
// @Produce json
// @Param id path string true "Trip id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{id} [get]
func (t *TripController) TripDetails(c *gin.Context) {
	resp, err := t.tripService.GetTripDetails(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Trip fetched successfully")
}

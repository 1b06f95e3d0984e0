package controllers

import (
	"net/http"
	"strconv"

	"greenway/internal/models/request_models"
	"greenway/internal/services"
	"greenway/pkg/utils"

	"github.com/gin-gonic/gin"
)

type StoreController struct {
	storeService services.StoreServiceInterface
}

func NewStoreController(storeService services.StoreServiceInterface) *StoreController {
	return &StoreController{
		storeService: storeService,
	}
}

// ListProducts godoc
// @Summary List rewards-store products
// @Tags Store
// @Produce json
// @Param category query string false "Category filter (plants, home, personal, accessories)"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse
// @Router /store/products [get]
func (s *StoreController) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	resp, err := s.storeService.ListProducts(c.Request.Context(), c.Query("category"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Products fetched successfully")
}

// FeaturedProducts godoc
// @Summary List featured products
// @Tags Store
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /store/products/featured [get]
func (s *StoreController) FeaturedProducts(c *gin.Context) {
	resp, err := s.storeService.ListFeaturedProducts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Featured products fetched successfully")
}

// Redeem godoc
// @Summary Redeem a product with green points
// @Tags Store
// @Accept json
// @Produce json
// @Param request body request_models.RedeemProductRequest true "Redemption payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /store/redeem [post]
func (s *StoreController) Redeem(c *gin.Context) {
	var req request_models.RedeemProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := s.storeService.RedeemProduct(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Product redeemed successfully")
}

// Redemptions godoc
// @Summary List the authenticated user's redemptions
// @Tags Store
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /store/redemptions [get]
func (s *StoreController) Redemptions(c *gin.Context) {
	resp, err := s.storeService.ListRedemptions(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Redemptions fetched successfully")
}

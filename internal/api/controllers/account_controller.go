package controllers

import (
	"net/http"

	"greenway/internal/models/request_models"
	"greenway/internal/services"
	"greenway/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate a user and return a token with the profile
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /accounts/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := a.accountService.Login(req, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Login successful")
}

// Profile godoc
// @Summary Get the authenticated profile
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /accounts/me [get]
func (a *AccountController) Profile(c *gin.Context) {
	resp, err := a.accountService.GetProfile(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Profile fetched successfully")
}

// EarnGreenPoints godoc
// @Summary Add green points to the authenticated account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.EarnGreenPointsRequest true "Green points payload"
// @Success 200 {object} utils.APIResponse
// @Router /accounts/green-score/earn [post]
func (a *AccountController) EarnGreenPoints(c *gin.Context) {
	var req request_models.EarnGreenPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := a.accountService.EarnGreenPoints(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Green points added")
}

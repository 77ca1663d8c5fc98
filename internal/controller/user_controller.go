package controller

import (
	"geometriks_backend/internal/service"
	"geometriks_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// @Summary Get the caller's profile
// @Tags user
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.UserService.GetProfile(user.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, profile)
}

// @Summary Get the caller's learning-style survey result
// @Tags user
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /survey [get]
func (c *UserController) GetSurvey(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.UserService.GetPreferences(user.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

type SurveyRequest struct {
	PrimaryStyle   string `json:"primaryStyle" binding:"required"`
	SecondaryStyle string `json:"secondaryStyle" binding:"required"`
}

// @Summary Submit the learning-style survey
// @Description Stores the ranked style preferences; the tertiary style is derived.
// @Tags user
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SurveyRequest true "ranked styles"
// @Success 200 {object} util.Response
// @Router /survey [post]
func (c *UserController) SubmitSurvey(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SurveyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.UserService.SavePreferences(user.UserID, req.PrimaryStyle, req.SecondaryStyle)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

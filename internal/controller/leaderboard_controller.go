package controller

import (
	"geometriks_backend/internal/service"
	"geometriks_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LeaderboardController struct {
	LeaderboardService *service.LeaderboardService
	UserService        *service.UserService
}

func NewLeaderboardController(leaderboardService *service.LeaderboardService, userService *service.UserService) *LeaderboardController {
	return &LeaderboardController{
		LeaderboardService: leaderboardService,
		UserService:        userService,
	}
}

// @Summary Points leaderboard
// @Description Top students by points; pass scope=school to rank within the caller's school.
// @Tags leaderboard
// @Produce json
// @Security ApiKeyAuth
// @Param scope query string false "school or global (default)"
// @Success 200 {object} util.Response
// @Router /leaderboard [get]
func (c *LeaderboardController) Get(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var schoolID *uint
	if ctx.Query("scope") == "school" {
		profile, err := c.UserService.GetProfile(user.UserID)
		if err != nil {
			respondError(ctx, err)
			return
		}
		if profile.User.SchoolID == nil {
			util.BadRequest(ctx, "no school on profile")
			return
		}
		schoolID = profile.User.SchoolID
	}

	entries, err := c.LeaderboardService.Top(ctx.Request.Context(), schoolID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

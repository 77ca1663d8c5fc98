package controller

import (
	"geometriks_backend/internal/service"
	"geometriks_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ExerciseController struct {
	ExerciseService *service.ExerciseService
}

func NewExerciseController(exerciseService *service.ExerciseService) *ExerciseController {
	return &ExerciseController{ExerciseService: exerciseService}
}

// @Summary Get the latest exercise attempt for a lesson
// @Tags exercise
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path int true "module id"
// @Param lessonId path int true "lesson id"
// @Success 200 {object} util.Response
// @Router /modules/{moduleId}/lessons/{lessonId}/exercise-result [get]
func (c *ExerciseController) GetResult(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	moduleID := util.MustParseUint(ctx.Param("moduleId"))
	lessonID := util.MustParseUint(ctx.Param("lessonId"))

	result, err := c.ExerciseService.LatestResult(user.UserID, moduleID, lessonID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

type SubmitResultRequest struct {
	Score *int `json:"score" binding:"required,min=0"`
}

// @Summary Submit an exercise score
// @Description Passes when the score reaches 60% of the lesson's question count. A failed attempt is overwritten on retry; a passed one is frozen.
// @Tags exercise
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path int true "module id"
// @Param lessonId path int true "lesson id"
// @Param body body SubmitResultRequest true "score"
// @Success 200 {object} util.Response
// @Router /modules/{moduleId}/lessons/{lessonId}/exercise-result [post]
func (c *ExerciseController) SubmitResult(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	moduleID := util.MustParseUint(ctx.Param("moduleId"))
	lessonID := util.MustParseUint(ctx.Param("lessonId"))

	result, err := c.ExerciseService.SubmitResult(user.UserID, moduleID, lessonID, *req.Score)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

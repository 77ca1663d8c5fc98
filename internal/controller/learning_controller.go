package controller

import (
	"geometriks_backend/internal/service"
	"geometriks_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LearningController struct {
	SelectorService *service.SelectorService
	ProgressService *service.ProgressService
	ContentService  *service.ContentService
}

func NewLearningController(
	selectorService *service.SelectorService,
	progressService *service.ProgressService,
	contentService *service.ContentService,
) *LearningController {
	return &LearningController{
		SelectorService: selectorService,
		ProgressService: progressService,
		ContentService:  contentService,
	}
}

// @Summary List published modules
// @Tags learning
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /modules [get]
func (c *LearningController) ListModules(ctx *gin.Context) {
	modules, err := c.ContentService.ListPublishedModules(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, modules)
}

// @Summary Get a published module
// @Tags learning
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path int true "module id"
// @Success 200 {object} util.Response
// @Router /modules/{moduleId} [get]
func (c *LearningController) GetModule(ctx *gin.Context) {
	moduleID := util.MustParseUint(ctx.Param("moduleId"))
	module, err := c.ContentService.GetPublishedModule(ctx.Request.Context(), moduleID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, module)
}

// @Summary List a module's lessons with the caller's unlock state
// @Tags learning
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path int true "module id"
// @Success 200 {object} util.Response
// @Router /modules/{moduleId}/lessons [get]
func (c *LearningController) ListLessons(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	moduleID := util.MustParseUint(ctx.Param("moduleId"))
	lessons, err := c.ProgressService.LessonsWithStatus(user.UserID, moduleID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, lessons)
}

// @Summary Get the personalized chapter sequence
// @Description Generates and persists the selection on first access; later calls replay the stored ordering.
// @Tags learning
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path int true "module id"
// @Param lessonId path int true "lesson id"
// @Success 200 {object} util.Response
// @Router /modules/{moduleId}/lessons/{lessonId}/getchapters [get]
func (c *LearningController) GetChapters(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	moduleID := util.MustParseUint(ctx.Param("moduleId"))
	chapters, err := c.SelectorService.ChaptersForModule(user.UserID, moduleID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, chapters)
}

type ChapterProgressRequest struct {
	IsCompleted *bool `json:"isCompleted" binding:"required"`
}

// @Summary Record chapter completion
// @Tags learning
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path int true "module id"
// @Param lessonId path int true "lesson id"
// @Param chapterId path int true "chapter id"
// @Param body body ChapterProgressRequest true "completion flag"
// @Success 200 {object} util.Response
// @Router /modules/{moduleId}/lessons/{lessonId}/chapters/{chapterId}/progress [post]
func (c *LearningController) CompleteChapter(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ChapterProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	moduleID := util.MustParseUint(ctx.Param("moduleId"))
	lessonID := util.MustParseUint(ctx.Param("lessonId"))
	chapterID := util.MustParseUint(ctx.Param("chapterId"))

	progress, err := c.ProgressService.CompleteChapter(user.UserID, moduleID, lessonID, chapterID, *req.IsCompleted)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

type LessonProgressRequest struct {
	IsCompleted *bool `json:"isCompleted" binding:"required"`
}

// @Summary Mark a lesson complete
// @Description Requires every selected chapter to be complete; awards points once and unlocks the next lesson.
// @Tags learning
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path int true "module id"
// @Param lessonId path int true "lesson id"
// @Param body body LessonProgressRequest true "completion flag"
// @Success 200 {object} util.Response
// @Router /modules/{moduleId}/lessons/{lessonId}/progress [post]
func (c *LearningController) CompleteLesson(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req LessonProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if !*req.IsCompleted {
		util.BadRequest(ctx, "isCompleted must be true")
		return
	}

	moduleID := util.MustParseUint(ctx.Param("moduleId"))
	lessonID := util.MustParseUint(ctx.Param("lessonId"))

	result, err := c.ProgressService.CompleteLesson(user.UserID, moduleID, lessonID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// @Summary Join a module, unlocking its first lesson
// @Tags learning
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path int true "module id"
// @Param lessonId path int true "lesson id"
// @Success 200 {object} util.Response
// @Router /modules/{moduleId}/lessons/{lessonId}/unlock [post]
func (c *LearningController) UnlockLesson(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	moduleID := util.MustParseUint(ctx.Param("moduleId"))
	result, err := c.ProgressService.UnlockFirstLesson(user.UserID, moduleID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// @Summary Evaluate and record module completion
// @Tags learning
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path int true "module id"
// @Success 200 {object} util.Response
// @Router /modules/{moduleId}/complete [post]
func (c *LearningController) CompleteModule(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	moduleID := util.MustParseUint(ctx.Param("moduleId"))
	result, err := c.ProgressService.CompleteModule(user.UserID, moduleID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

package controller

import (
	"geometriks_backend/internal/service"
	"geometriks_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ContentController is the admin authoring surface: modules, lessons,
// chapters, and the question bank.
type ContentController struct {
	ContentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

// @Summary List all modules (admin)
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "page"
// @Param limit query int false "limit"
// @Success 200 {object} util.Response
// @Router /admin/modules [get]
func (c *ContentController) ListModules(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	modules, total, err := c.ContentService.ListModules(page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: modules, Total: total, Page: page, Limit: limit})
}

// @Summary Create a module
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.ModuleInput true "module"
// @Success 201 {object} util.Response
// @Router /admin/modules [post]
func (c *ContentController) CreateModule(ctx *gin.Context) {
	var in service.ModuleInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	module, err := c.ContentService.CreateModule(in)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, module)
}

// @Summary Update a module
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path int true "module id"
// @Param body body service.ModuleInput true "module"
// @Success 200 {object} util.Response
// @Router /admin/modules/{moduleId} [put]
func (c *ContentController) UpdateModule(ctx *gin.Context) {
	var in service.ModuleInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	module, err := c.ContentService.UpdateModule(util.MustParseUint(ctx.Param("moduleId")), in)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, module)
}

// @Summary Delete a module
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path int true "module id"
// @Success 200 {object} util.Response
// @Router /admin/modules/{moduleId} [delete]
func (c *ContentController) DeleteModule(ctx *gin.Context) {
	if err := c.ContentService.DeleteModule(util.MustParseUint(ctx.Param("moduleId"))); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "module deleted"})
}

type PublishRequest struct {
	IsPublished *bool `json:"isPublished" binding:"required"`
}

// @Summary Publish or unpublish a module
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path int true "module id"
// @Param body body PublishRequest true "publish flag"
// @Success 200 {object} util.Response
// @Router /admin/modules/{moduleId}/publish [patch]
func (c *ContentController) PublishModule(ctx *gin.Context) {
	var req PublishRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ContentService.PublishModule(util.MustParseUint(ctx.Param("moduleId")), *req.IsPublished); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"isPublished": *req.IsPublished})
}

// @Summary List a module's lessons (admin)
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path int true "module id"
// @Success 200 {object} util.Response
// @Router /admin/modules/{moduleId}/lessons [get]
func (c *ContentController) ListLessons(ctx *gin.Context) {
	lessons, err := c.ContentService.ListLessons(util.MustParseUint(ctx.Param("moduleId")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, lessons)
}

// @Summary Create a lesson
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path int true "module id"
// @Param body body service.LessonInput true "lesson"
// @Success 201 {object} util.Response
// @Router /admin/modules/{moduleId}/lessons [post]
func (c *ContentController) CreateLesson(ctx *gin.Context) {
	var in service.LessonInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.ContentService.CreateLesson(util.MustParseUint(ctx.Param("moduleId")), in)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, lesson)
}

// @Summary Update a lesson
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path int true "module id"
// @Param lessonId path int true "lesson id"
// @Param body body service.LessonInput true "lesson"
// @Success 200 {object} util.Response
// @Router /admin/modules/{moduleId}/lessons/{lessonId} [put]
func (c *ContentController) UpdateLesson(ctx *gin.Context) {
	var in service.LessonInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.ContentService.UpdateLesson(
		util.MustParseUint(ctx.Param("moduleId")),
		util.MustParseUint(ctx.Param("lessonId")),
		in,
	)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, lesson)
}

// @Summary Delete a lesson
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path int true "module id"
// @Param lessonId path int true "lesson id"
// @Success 200 {object} util.Response
// @Router /admin/modules/{moduleId}/lessons/{lessonId} [delete]
func (c *ContentController) DeleteLesson(ctx *gin.Context) {
	err := c.ContentService.DeleteLesson(
		util.MustParseUint(ctx.Param("moduleId")),
		util.MustParseUint(ctx.Param("lessonId")),
	)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "lesson deleted"})
}

// @Summary List a lesson's chapters (admin)
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path int true "module id"
// @Param lessonId path int true "lesson id"
// @Success 200 {object} util.Response
// @Router /admin/modules/{moduleId}/lessons/{lessonId}/chapters [get]
func (c *ContentController) ListChapters(ctx *gin.Context) {
	chapters, err := c.ContentService.ListChapters(
		util.MustParseUint(ctx.Param("moduleId")),
		util.MustParseUint(ctx.Param("lessonId")),
	)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, chapters)
}

// @Summary Create a chapter
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path int true "module id"
// @Param lessonId path int true "lesson id"
// @Param body body service.ChapterInput true "chapter"
// @Success 201 {object} util.Response
// @Router /admin/modules/{moduleId}/lessons/{lessonId}/chapters [post]
func (c *ContentController) CreateChapter(ctx *gin.Context) {
	var in service.ChapterInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	chapter, err := c.ContentService.CreateChapter(
		util.MustParseUint(ctx.Param("moduleId")),
		util.MustParseUint(ctx.Param("lessonId")),
		in,
	)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, chapter)
}

// @Summary Update a chapter
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path int true "module id"
// @Param lessonId path int true "lesson id"
// @Param chapterId path int true "chapter id"
// @Param body body service.ChapterInput true "chapter"
// @Success 200 {object} util.Response
// @Router /admin/modules/{moduleId}/lessons/{lessonId}/chapters/{chapterId} [put]
func (c *ContentController) UpdateChapter(ctx *gin.Context) {
	var in service.ChapterInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	chapter, err := c.ContentService.UpdateChapter(
		util.MustParseUint(ctx.Param("moduleId")),
		util.MustParseUint(ctx.Param("lessonId")),
		util.MustParseUint(ctx.Param("chapterId")),
		in,
	)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, chapter)
}

// @Summary Delete a chapter
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path int true "module id"
// @Param lessonId path int true "lesson id"
// @Param chapterId path int true "chapter id"
// @Success 200 {object} util.Response
// @Router /admin/modules/{moduleId}/lessons/{lessonId}/chapters/{chapterId} [delete]
func (c *ContentController) DeleteChapter(ctx *gin.Context) {
	err := c.ContentService.DeleteChapter(
		util.MustParseUint(ctx.Param("moduleId")),
		util.MustParseUint(ctx.Param("lessonId")),
		util.MustParseUint(ctx.Param("chapterId")),
	)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "chapter deleted"})
}

// @Summary List a lesson's questions (admin)
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path int true "module id"
// @Param lessonId path int true "lesson id"
// @Success 200 {object} util.Response
// @Router /admin/modules/{moduleId}/lessons/{lessonId}/questions [get]
func (c *ContentController) ListQuestions(ctx *gin.Context) {
	questions, err := c.ContentService.ListQuestions(
		util.MustParseUint(ctx.Param("moduleId")),
		util.MustParseUint(ctx.Param("lessonId")),
	)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// @Summary Create a question
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path int true "module id"
// @Param lessonId path int true "lesson id"
// @Param body body service.QuestionInput true "question"
// @Success 201 {object} util.Response
// @Router /admin/modules/{moduleId}/lessons/{lessonId}/questions [post]
func (c *ContentController) CreateQuestion(ctx *gin.Context) {
	var in service.QuestionInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.ContentService.CreateQuestion(
		util.MustParseUint(ctx.Param("moduleId")),
		util.MustParseUint(ctx.Param("lessonId")),
		in,
	)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, question)
}

// @Summary Update a question
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path int true "module id"
// @Param lessonId path int true "lesson id"
// @Param questionId path int true "question id"
// @Param body body service.QuestionInput true "question"
// @Success 200 {object} util.Response
// @Router /admin/modules/{moduleId}/lessons/{lessonId}/questions/{questionId} [put]
func (c *ContentController) UpdateQuestion(ctx *gin.Context) {
	var in service.QuestionInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.ContentService.UpdateQuestion(
		util.MustParseUint(ctx.Param("moduleId")),
		util.MustParseUint(ctx.Param("lessonId")),
		util.MustParseUint(ctx.Param("questionId")),
		in,
	)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, question)
}

// @Summary Delete a question
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path int true "module id"
// @Param lessonId path int true "lesson id"
// @Param questionId path int true "question id"
// @Success 200 {object} util.Response
// @Router /admin/modules/{moduleId}/lessons/{lessonId}/questions/{questionId} [delete]
func (c *ContentController) DeleteQuestion(ctx *gin.Context) {
	err := c.ContentService.DeleteQuestion(
		util.MustParseUint(ctx.Param("moduleId")),
		util.MustParseUint(ctx.Param("lessonId")),
		util.MustParseUint(ctx.Param("questionId")),
	)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "question deleted"})
}

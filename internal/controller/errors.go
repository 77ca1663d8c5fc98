package controller

import (
	"errors"
	"geometriks_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondError maps service sentinel errors onto the HTTP taxonomy: missing
// or mismatched resources are 404, precondition and validation failures are
// 400, everything unexpected is logged and returned as a generic 500.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrModuleNotFound),
		errors.Is(err, util.ErrLessonNotFound),
		errors.Is(err, util.ErrChapterNotFound),
		errors.Is(err, util.ErrQuestionNotFound),
		errors.Is(err, util.ErrUserNotFound),
		errors.Is(err, util.ErrResultNotFound),
		errors.Is(err, util.ErrCertificateNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPreferencesNotFound),
		errors.Is(err, util.ErrInvalidStyle),
		errors.Is(err, util.ErrChaptersIncomplete),
		errors.Is(err, util.ErrModuleIncomplete),
		errors.Is(err, util.ErrEmailRegistered),
		errors.Is(err, util.ErrNoLessonsOrdered),
		errors.Is(err, util.ErrNoQuestions),
		errors.Is(err, util.ErrNoPublishedLesson):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrInvalidCredentials):
		util.Unauthorized(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}

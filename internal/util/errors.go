package util

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailRegistered     = errors.New("email is already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrModuleNotFound      = errors.New("module not found")
	ErrLessonNotFound      = errors.New("lesson not found")
	ErrChapterNotFound     = errors.New("chapter not found")
	ErrQuestionNotFound    = errors.New("question not found")
	ErrPreferencesNotFound = errors.New("learning style preferences not found")
	ErrInvalidStyle        = errors.New("invalid learning style")
	ErrChaptersIncomplete  = errors.New("complete all chapters before unlocking the lesson")
	ErrModuleIncomplete    = errors.New("module is not completed yet")
	ErrResultNotFound      = errors.New("exercise result not found")
	ErrCertificateNotFound = errors.New("certificate not found")
	ErrNoLessonsOrdered    = errors.New("no lessons have been started for this module")
	ErrNoQuestions         = errors.New("lesson has no questions")
	ErrNoPublishedLesson   = errors.New("module has no published lessons")
)

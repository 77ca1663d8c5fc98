package service

import (
	"context"
	"geometriks_backend/internal/model"
	"geometriks_backend/internal/repository"
	"geometriks_backend/internal/util"

	"gorm.io/gorm"
)

// ContentService is the authoring back office: admins create modules, order
// lessons inside them, tag chapters with a learning-style category, and build
// the question bank. Students see only what is published.
type ContentService struct {
	ModuleRepo   *repository.ModuleRepository
	LessonRepo   *repository.LessonRepository
	ChapterRepo  *repository.ChapterRepository
	QuestionRepo *repository.QuestionRepository
	Storage      *StorageService
	DB           *gorm.DB
}

func NewContentService(
	moduleRepo *repository.ModuleRepository,
	lessonRepo *repository.LessonRepository,
	chapterRepo *repository.ChapterRepository,
	questionRepo *repository.QuestionRepository,
	storage *StorageService,
	db *gorm.DB,
) *ContentService {
	return &ContentService{
		ModuleRepo:   moduleRepo,
		LessonRepo:   lessonRepo,
		ChapterRepo:  chapterRepo,
		QuestionRepo: questionRepo,
		Storage:      storage,
		DB:           db,
	}
}

// --- student catalog ---

func (s *ContentService) ListPublishedModules(ctx context.Context) ([]model.Module, error) {
	modules, err := s.ModuleRepo.ListPublished()
	if err != nil {
		return nil, err
	}
	for i := range modules {
		modules[i].Image = s.Storage.ResolveURL(ctx, modules[i].Image)
	}
	return modules, nil
}

func (s *ContentService) GetPublishedModule(ctx context.Context, id uint) (*model.Module, error) {
	module, err := s.ModuleRepo.FindPublishedByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrModuleNotFound
		}
		return nil, err
	}
	module.Image = s.Storage.ResolveURL(ctx, module.Image)
	return module, nil
}

// --- admin: modules ---

type ModuleInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

func (s *ContentService) CreateModule(in ModuleInput) (*model.Module, error) {
	module := &model.Module{
		Title:       in.Title,
		Description: in.Description,
		Image:       in.Image,
	}
	if err := s.ModuleRepo.Create(module); err != nil {
		return nil, err
	}
	return module, nil
}

func (s *ContentService) UpdateModule(id uint, in ModuleInput) (*model.Module, error) {
	module, err := s.ModuleRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrModuleNotFound
		}
		return nil, err
	}
	module.Title = in.Title
	module.Description = in.Description
	module.Image = in.Image
	if err := s.ModuleRepo.Save(module); err != nil {
		return nil, err
	}
	return module, nil
}

func (s *ContentService) DeleteModule(id uint) error {
	if _, err := s.ModuleRepo.FindByID(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrModuleNotFound
		}
		return err
	}
	return s.ModuleRepo.Delete(id)
}

func (s *ContentService) ListModules(page, limit int) ([]model.Module, int64, error) {
	return s.ModuleRepo.List(page, limit)
}

func (s *ContentService) PublishModule(id uint, published bool) error {
	if _, err := s.ModuleRepo.FindByID(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrModuleNotFound
		}
		return err
	}
	return s.ModuleRepo.SetPublished(id, published)
}

// --- admin: lessons ---

type LessonInput struct {
	Title       string `json:"title" binding:"required"`
	Order       int    `json:"order"`
	IsPublished bool   `json:"isPublished"`
}

func (s *ContentService) CreateLesson(moduleID uint, in LessonInput) (*model.Lesson, error) {
	if _, err := s.ModuleRepo.FindByID(moduleID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrModuleNotFound
		}
		return nil, err
	}
	lesson := &model.Lesson{
		ModuleID:    moduleID,
		Title:       in.Title,
		Order:       in.Order,
		IsPublished: in.IsPublished,
	}
	if err := s.LessonRepo.Create(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *ContentService) UpdateLesson(moduleID, lessonID uint, in LessonInput) (*model.Lesson, error) {
	lesson, err := s.LessonRepo.FindByIDAndModule(lessonID, moduleID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}
	lesson.Title = in.Title
	lesson.Order = in.Order
	lesson.IsPublished = in.IsPublished
	if err := s.LessonRepo.Save(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *ContentService) DeleteLesson(moduleID, lessonID uint) error {
	if _, err := s.LessonRepo.FindByIDAndModule(lessonID, moduleID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrLessonNotFound
		}
		return err
	}
	return s.LessonRepo.Delete(lessonID)
}

func (s *ContentService) ListLessons(moduleID uint) ([]model.Lesson, error) {
	if _, err := s.ModuleRepo.FindByID(moduleID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrModuleNotFound
		}
		return nil, err
	}
	return s.LessonRepo.ListByModule(moduleID, false)
}

// --- admin: chapters ---

type ChapterInput struct {
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content"`
	Image       string `json:"image"`
	CategoryID  uint   `json:"categoryId" binding:"required"`
	IsPublished bool   `json:"isPublished"`
}

func (s *ContentService) CreateChapter(moduleID, lessonID uint, in ChapterInput) (*model.Chapter, error) {
	if _, err := s.LessonRepo.FindByIDAndModule(lessonID, moduleID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}
	chapter := &model.Chapter{
		LessonID:    lessonID,
		CategoryID:  in.CategoryID,
		Title:       in.Title,
		Content:     in.Content,
		Image:       in.Image,
		IsPublished: in.IsPublished,
	}
	if err := s.ChapterRepo.Create(chapter); err != nil {
		return nil, err
	}
	return chapter, nil
}

func (s *ContentService) UpdateChapter(moduleID, lessonID, chapterID uint, in ChapterInput) (*model.Chapter, error) {
	if _, err := s.LessonRepo.FindByIDAndModule(lessonID, moduleID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}
	chapter, err := s.ChapterRepo.FindByIDAndLesson(chapterID, lessonID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrChapterNotFound
		}
		return nil, err
	}
	chapter.Title = in.Title
	chapter.Content = in.Content
	chapter.Image = in.Image
	chapter.CategoryID = in.CategoryID
	chapter.IsPublished = in.IsPublished
	if err := s.ChapterRepo.Save(chapter); err != nil {
		return nil, err
	}
	return chapter, nil
}

func (s *ContentService) DeleteChapter(moduleID, lessonID, chapterID uint) error {
	if _, err := s.LessonRepo.FindByIDAndModule(lessonID, moduleID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrLessonNotFound
		}
		return err
	}
	if _, err := s.ChapterRepo.FindByIDAndLesson(chapterID, lessonID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrChapterNotFound
		}
		return err
	}
	return s.ChapterRepo.Delete(chapterID)
}

func (s *ContentService) ListChapters(moduleID, lessonID uint) ([]model.Chapter, error) {
	if _, err := s.LessonRepo.FindByIDAndModule(lessonID, moduleID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}
	return s.ChapterRepo.ListByLesson(lessonID)
}

// --- admin: questions ---

type QuestionInput struct {
	Text    string `json:"text" binding:"required"`
	OptionA string `json:"optionA"`
	OptionB string `json:"optionB"`
	OptionC string `json:"optionC"`
	OptionD string `json:"optionD"`
	Answer  string `json:"answer" binding:"required"`
}

func (s *ContentService) CreateQuestion(moduleID, lessonID uint, in QuestionInput) (*model.Question, error) {
	if _, err := s.LessonRepo.FindByIDAndModule(lessonID, moduleID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}
	question := &model.Question{
		LessonID: lessonID,
		Text:     in.Text,
		OptionA:  in.OptionA,
		OptionB:  in.OptionB,
		OptionC:  in.OptionC,
		OptionD:  in.OptionD,
		Answer:   in.Answer,
	}
	if err := s.QuestionRepo.Create(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *ContentService) UpdateQuestion(moduleID, lessonID, questionID uint, in QuestionInput) (*model.Question, error) {
	if _, err := s.LessonRepo.FindByIDAndModule(lessonID, moduleID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}
	question, err := s.QuestionRepo.FindByIDAndLesson(questionID, lessonID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}
	question.Text = in.Text
	question.OptionA = in.OptionA
	question.OptionB = in.OptionB
	question.OptionC = in.OptionC
	question.OptionD = in.OptionD
	question.Answer = in.Answer
	if err := s.QuestionRepo.Save(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *ContentService) DeleteQuestion(moduleID, lessonID, questionID uint) error {
	if _, err := s.LessonRepo.FindByIDAndModule(lessonID, moduleID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrLessonNotFound
		}
		return err
	}
	if _, err := s.QuestionRepo.FindByIDAndLesson(questionID, lessonID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrQuestionNotFound
		}
		return err
	}
	return s.QuestionRepo.Delete(questionID)
}

func (s *ContentService) ListQuestions(moduleID, lessonID uint) ([]model.Question, error) {
	if _, err := s.LessonRepo.FindByIDAndModule(lessonID, moduleID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}
	return s.QuestionRepo.ListByLesson(lessonID)
}

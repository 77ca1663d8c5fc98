package service

import (
	"geometriks_backend/internal/model"
	"geometriks_backend/internal/repository"
	"geometriks_backend/internal/util"
	"geometriks_backend/pkg/monitoring"

	"gorm.io/gorm"
)

// ProgressService is the lesson/module unlock state machine. Per user a
// lesson moves locked -> unlocked -> completed and never regresses; the first
// lesson of a module is unlocked by joining, every later one only by
// completing its predecessor.
type ProgressService struct {
	ModuleRepo   *repository.ModuleRepository
	LessonRepo   *repository.LessonRepository
	ChapterRepo  *repository.ChapterRepository
	ProgressRepo *repository.ProgressRepository
	DB           *gorm.DB
}

func NewProgressService(
	moduleRepo *repository.ModuleRepository,
	lessonRepo *repository.LessonRepository,
	chapterRepo *repository.ChapterRepository,
	progressRepo *repository.ProgressRepository,
	db *gorm.DB,
) *ProgressService {
	return &ProgressService{
		ModuleRepo:   moduleRepo,
		LessonRepo:   lessonRepo,
		ChapterRepo:  chapterRepo,
		ProgressRepo: progressRepo,
		DB:           db,
	}
}

type UnlockResult struct {
	Lesson          *model.Lesson `json:"lesson"`
	AlreadyUnlocked bool          `json:"alreadyUnlocked"`
}

// UnlockFirstLesson handles the join-module action: the module's lowest-order
// published lesson becomes available. Repeat joins are no-ops.
func (s *ProgressService) UnlockFirstLesson(userID, moduleID uint) (*UnlockResult, error) {
	if _, err := s.ModuleRepo.FindPublishedByID(moduleID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrModuleNotFound
		}
		return nil, err
	}

	lesson, err := s.LessonRepo.FirstPublishedByModule(moduleID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrNoPublishedLesson
		}
		return nil, err
	}

	created, err := s.ProgressRepo.UnlockLesson(userID, lesson.ID)
	if err != nil {
		return nil, err
	}
	return &UnlockResult{Lesson: lesson, AlreadyUnlocked: !created}, nil
}

// resolveLesson runs the chained existence checks shared by the progress
// endpoints: the module must exist and the lesson must belong to it. Any miss
// short-circuits as not-found.
func (s *ProgressService) resolveLesson(moduleID, lessonID uint) (*model.Lesson, error) {
	if _, err := s.ModuleRepo.FindPublishedByID(moduleID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrModuleNotFound
		}
		return nil, err
	}
	lesson, err := s.LessonRepo.FindByIDAndModule(lessonID, moduleID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}
	return lesson, nil
}

// CompleteChapter upserts the chapter completion flag after validating the
// module -> lesson -> chapter chain.
func (s *ProgressService) CompleteChapter(userID, moduleID, lessonID, chapterID uint, isCompleted bool) (*model.ChapterProgress, error) {
	if _, err := s.resolveLesson(moduleID, lessonID); err != nil {
		return nil, err
	}
	if _, err := s.ChapterRepo.FindByIDAndLesson(chapterID, lessonID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrChapterNotFound
		}
		return nil, err
	}
	return s.ProgressRepo.UpsertChapterProgress(userID, chapterID, isCompleted)
}

type CompleteLessonResult struct {
	AlreadyCompleted bool          `json:"alreadyCompleted"`
	PointsAwarded    int           `json:"pointsAwarded"`
	NextLesson       *model.Lesson `json:"nextLesson,omitempty"`
}

// CompleteLesson marks the lesson completed once all its ordered chapters are
// done, awards the fixed point bonus exactly once, and unlocks the next
// lesson in sequence. The completion flip and the point award ride the same
// conditional update inside one transaction, so a double submit cannot
// double-award.
func (s *ProgressService) CompleteLesson(userID, moduleID, lessonID uint) (*CompleteLessonResult, error) {
	lesson, err := s.resolveLesson(moduleID, lessonID)
	if err != nil {
		return nil, err
	}

	orders, err := s.ProgressRepo.ChapterOrdersByLesson(userID, lessonID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, util.ErrChaptersIncomplete
	}

	incomplete, err := s.ProgressRepo.CountIncompleteOrderedChapters(userID, lessonID)
	if err != nil {
		return nil, err
	}
	if incomplete > 0 {
		return nil, util.ErrChaptersIncomplete
	}

	awarded := false
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.LessonProgress{}).
			Where("user_id = ? AND lesson_id = ? AND status <> ?", userID, lessonID, model.LessonCompleted).
			Update("status", model.LessonCompleted)
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			var existing int64
			if err := tx.Model(&model.LessonProgress{}).
				Where("user_id = ? AND lesson_id = ?", userID, lessonID).
				Count(&existing).Error; err != nil {
				return err
			}
			if existing > 0 {
				// already completed, nothing to award
				return nil
			}
			// No progress row yet (chapters were reached without an explicit
			// join); completing still counts.
			if err := tx.Create(&model.LessonProgress{
				UserID:   userID,
				LessonID: lessonID,
				Status:   model.LessonCompleted,
			}).Error; err != nil {
				return err
			}
		}

		awarded = true
		return tx.Model(&model.User{}).
			Where("id = ?", userID).
			Update("points", gorm.Expr("points + ?", util.LessonCompletionPoints)).Error
	})
	if err != nil {
		return nil, err
	}

	result := &CompleteLessonResult{AlreadyCompleted: !awarded}
	if !awarded {
		return result, nil
	}

	result.PointsAwarded = util.LessonCompletionPoints
	monitoring.LessonsCompleted.Inc()

	next, err := s.LessonRepo.NextAfter(moduleID, lesson.Order)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			// last lesson of the module; module completion is a separate,
			// explicit check
			return result, nil
		}
		return nil, err
	}
	if _, err := s.ProgressRepo.UnlockLesson(userID, next.ID); err != nil {
		return nil, err
	}
	result.NextLesson = next
	return result, nil
}

type ModuleCompletionResult struct {
	Completed        bool  `json:"completed"`
	AlreadyMarked    bool  `json:"alreadyMarked"`
	LessonsRemaining int64 `json:"lessonsRemaining"`
}

// CompleteModule compares the lessons selected for the user against those
// completed and records the completion marker exactly once.
func (s *ProgressService) CompleteModule(userID, moduleID uint) (*ModuleCompletionResult, error) {
	if _, err := s.ModuleRepo.FindPublishedByID(moduleID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrModuleNotFound
		}
		return nil, err
	}

	ordered, err := s.ProgressRepo.CountOrderedLessons(userID, moduleID)
	if err != nil {
		return nil, err
	}
	if ordered == 0 {
		return nil, util.ErrNoLessonsOrdered
	}

	completed, err := s.ProgressRepo.CountCompletedOrderedLessons(userID, moduleID)
	if err != nil {
		return nil, err
	}
	if completed < ordered {
		return &ModuleCompletionResult{LessonsRemaining: ordered - completed}, nil
	}

	marked, err := s.ProgressRepo.HasCompletedModule(userID, moduleID)
	if err != nil {
		return nil, err
	}
	if marked {
		return &ModuleCompletionResult{Completed: true, AlreadyMarked: true}, nil
	}

	if err := s.ProgressRepo.CreateCompletedModule(userID, moduleID); err != nil {
		return nil, err
	}
	return &ModuleCompletionResult{Completed: true}, nil
}

type LessonWithStatus struct {
	model.Lesson
	Status      model.LessonStatus `json:"status"`
	IsLocked    bool               `json:"isLocked"`
	IsCompleted bool               `json:"isCompleted"`
}

// LessonsWithStatus lists the module's published lessons annotated with the
// caller's unlock state. Lessons without a progress row are locked.
func (s *ProgressService) LessonsWithStatus(userID, moduleID uint) ([]LessonWithStatus, error) {
	if _, err := s.ModuleRepo.FindPublishedByID(moduleID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrModuleNotFound
		}
		return nil, err
	}

	lessons, err := s.LessonRepo.ListByModule(moduleID, true)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(lessons))
	for i, l := range lessons {
		ids[i] = l.ID
	}
	progressMap, err := s.ProgressRepo.LessonProgressMap(userID, ids)
	if err != nil {
		return nil, err
	}

	result := make([]LessonWithStatus, len(lessons))
	for i, l := range lessons {
		status := model.LessonLocked
		if p, ok := progressMap[l.ID]; ok {
			status = p.Status
		}
		result[i] = LessonWithStatus{
			Lesson:      l,
			Status:      status,
			IsLocked:    status == model.LessonLocked,
			IsCompleted: status == model.LessonCompleted,
		}
	}
	return result, nil
}

package service

import (
	"geometriks_backend/internal/model"
	"geometriks_backend/internal/repository"
	"geometriks_backend/internal/util"

	"gorm.io/gorm"
)

// ExerciseService records lesson exercise attempts. An attempt passes when
// its score reaches 60% of the lesson's question count. A failed attempt is
// overwritten in place on retry with the pass flag recomputed against the
// threshold; a passed attempt is frozen.
type ExerciseService struct {
	ModuleRepo   *repository.ModuleRepository
	LessonRepo   *repository.LessonRepository
	QuestionRepo *repository.QuestionRepository
	ExerciseRepo *repository.ExerciseRepository
}

func NewExerciseService(
	moduleRepo *repository.ModuleRepository,
	lessonRepo *repository.LessonRepository,
	questionRepo *repository.QuestionRepository,
	exerciseRepo *repository.ExerciseRepository,
) *ExerciseService {
	return &ExerciseService{
		ModuleRepo:   moduleRepo,
		LessonRepo:   lessonRepo,
		QuestionRepo: questionRepo,
		ExerciseRepo: exerciseRepo,
	}
}

func (s *ExerciseService) resolveLesson(moduleID, lessonID uint) (*model.Lesson, error) {
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

// LatestResult returns the user's newest attempt for the lesson.
func (s *ExerciseService) LatestResult(userID, moduleID, lessonID uint) (*model.ExerciseResult, error) {
	if _, err := s.resolveLesson(moduleID, lessonID); err != nil {
		return nil, err
	}
	result, err := s.ExerciseRepo.FindByUserAndLesson(userID, lessonID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrResultNotFound
		}
		return nil, err
	}
	return result, nil
}

// Passed reports whether a score clears the threshold for the given question
// count.
func Passed(score int, questionCount int64) bool {
	return float64(score) >= util.PassThreshold*float64(questionCount)
}

// SubmitResult records a score. The first submission creates attempt 1; a
// retry after a failure updates the same row and re-evaluates the pass flag
// against the threshold; once passed, further submissions change nothing.
func (s *ExerciseService) SubmitResult(userID, moduleID, lessonID uint, score int) (*model.ExerciseResult, error) {
	if _, err := s.resolveLesson(moduleID, lessonID); err != nil {
		return nil, err
	}

	questionCount, err := s.QuestionRepo.CountByLesson(lessonID)
	if err != nil {
		return nil, err
	}
	if questionCount == 0 {
		return nil, util.ErrNoQuestions
	}

	prior, err := s.ExerciseRepo.FindByUserAndLesson(userID, lessonID)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		result := &model.ExerciseResult{
			UserID:   userID,
			LessonID: lessonID,
			Score:    score,
			Attempt:  1,
			IsPassed: Passed(score, questionCount),
		}
		if err := s.ExerciseRepo.Create(result); err != nil {
			return nil, err
		}
		return result, nil
	}

	if prior.IsPassed {
		return prior, nil
	}

	prior.Score = score
	prior.IsPassed = Passed(score, questionCount)
	if err := s.ExerciseRepo.Save(prior); err != nil {
		return nil, err
	}
	return prior, nil
}

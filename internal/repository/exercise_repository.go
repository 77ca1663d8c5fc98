package repository

import (
	"geometriks_backend/internal/model"

	"gorm.io/gorm"
)

type ExerciseRepository struct {
	DB *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{DB: db}
}

func (r *ExerciseRepository) FindByUserAndLesson(userID, lessonID uint) (*model.ExerciseResult, error) {
	var result model.ExerciseResult
	err := r.DB.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *ExerciseRepository) Create(result *model.ExerciseResult) error {
	return r.DB.Create(result).Error
}

func (r *ExerciseRepository) Save(result *model.ExerciseResult) error {
	return r.DB.Save(result).Error
}

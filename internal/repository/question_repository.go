package repository

import (
	"geometriks_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(q *model.Question) error {
	return r.DB.Create(q).Error
}

func (r *QuestionRepository) Save(q *model.Question) error {
	return r.DB.Save(q).Error
}

func (r *QuestionRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Question{}, id).Error
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.First(&q, id).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuestionRepository) FindByIDAndLesson(id, lessonID uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.Where("id = ? AND lesson_id = ?", id, lessonID).First(&q).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuestionRepository) ListByLesson(lessonID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("lesson_id = ?", lessonID).Order("id ASC").Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) CountByLesson(lessonID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Question{}).Where("lesson_id = ?", lessonID).Count(&count).Error
	return count, err
}

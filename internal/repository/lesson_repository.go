package repository

import (
	"geometriks_backend/internal/model"

	"gorm.io/gorm"
)

type LessonRepository struct {
	DB *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: db}
}

func (r *LessonRepository) Create(l *model.Lesson) error {
	return r.DB.Create(l).Error
}

func (r *LessonRepository) Save(l *model.Lesson) error {
	return r.DB.Save(l).Error
}

func (r *LessonRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Lesson{}, id).Error
}

func (r *LessonRepository) FindByID(id uint) (*model.Lesson, error) {
	var l model.Lesson
	err := r.DB.First(&l, id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// FindByIDAndModule enforces the parent-child relationship: the lesson must
// belong to the given module or the lookup fails.
func (r *LessonRepository) FindByIDAndModule(id, moduleID uint) (*model.Lesson, error) {
	var l model.Lesson
	err := r.DB.Where("id = ? AND module_id = ?", id, moduleID).First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LessonRepository) ListByModule(moduleID uint, publishedOnly bool) ([]model.Lesson, error) {
	var lessons []model.Lesson
	q := r.DB.Where("module_id = ?", moduleID).Order("lesson_order ASC")
	if publishedOnly {
		q = q.Where("is_published = ?", true)
	}
	err := q.Find(&lessons).Error
	return lessons, err
}

// FirstPublishedByModule returns the module's entry lesson (lowest order).
func (r *LessonRepository) FirstPublishedByModule(moduleID uint) (*model.Lesson, error) {
	var l model.Lesson
	err := r.DB.Where("module_id = ? AND is_published = ?", moduleID, true).
		Order("lesson_order ASC").
		First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// NextAfter returns the lesson with the lowest order strictly greater than
// the given order within the same module, or gorm.ErrRecordNotFound when the
// given lesson was the last one.
func (r *LessonRepository) NextAfter(moduleID uint, order int) (*model.Lesson, error) {
	var l model.Lesson
	err := r.DB.Where("module_id = ? AND is_published = ? AND lesson_order > ?", moduleID, true, order).
		Order("lesson_order ASC").
		First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

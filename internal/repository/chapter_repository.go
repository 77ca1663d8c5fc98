package repository

import (
	"geometriks_backend/internal/model"

	"gorm.io/gorm"
)

type ChapterRepository struct {
	DB *gorm.DB
}

func NewChapterRepository(db *gorm.DB) *ChapterRepository {
	return &ChapterRepository{DB: db}
}

func (r *ChapterRepository) Create(ch *model.Chapter) error {
	return r.DB.Create(ch).Error
}

func (r *ChapterRepository) Save(ch *model.Chapter) error {
	return r.DB.Save(ch).Error
}

func (r *ChapterRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Chapter{}, id).Error
}

func (r *ChapterRepository) FindByID(id uint) (*model.Chapter, error) {
	var ch model.Chapter
	err := r.DB.Preload("Category").First(&ch, id).Error
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

func (r *ChapterRepository) FindByIDAndLesson(id, lessonID uint) (*model.Chapter, error) {
	var ch model.Chapter
	err := r.DB.Where("id = ? AND lesson_id = ?", id, lessonID).First(&ch).Error
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

func (r *ChapterRepository) ListByLesson(lessonID uint) ([]model.Chapter, error) {
	var chapters []model.Chapter
	err := r.DB.Preload("Category").
		Where("lesson_id = ?", lessonID).
		Order("id ASC").
		Find(&chapters).Error
	return chapters, err
}

// ListEligibleByModule returns the published chapters of the module's
// published lessons in creation order. This is the candidate pool the
// personalized selection is drawn from.
func (r *ChapterRepository) ListEligibleByModule(moduleID uint) ([]model.Chapter, error) {
	var chapters []model.Chapter
	err := r.DB.Preload("Category").
		Joins("JOIN lessons ON lessons.id = chapters.lesson_id").
		Where("lessons.module_id = ? AND lessons.is_published = ? AND chapters.is_published = ?",
			moduleID, true, true).
		Where("lessons.deleted_at IS NULL").
		Order("chapters.id ASC").
		Find(&chapters).Error
	return chapters, err
}

// FindByIDs preserves no particular order; callers reorder by their own index.
func (r *ChapterRepository) FindByIDs(ids []uint) ([]model.Chapter, error) {
	var chapters []model.Chapter
	err := r.DB.Preload("Category").Where("id IN ?", ids).Find(&chapters).Error
	return chapters, err
}

package repository

import (
	"geometriks_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// HasChapterOrdersForModule reports whether a personalized selection already
// exists for this user anywhere under the module.
func (r *ProgressRepository) HasChapterOrdersForModule(userID, moduleID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.ChapterOrder{}).
		Joins("JOIN lessons ON lessons.id = chapter_orders.lesson_id").
		Where("chapter_orders.user_id = ? AND lessons.module_id = ?", userID, moduleID).
		Count(&count).Error
	return count > 0, err
}

func (r *ProgressRepository) ChapterOrdersByModule(userID, moduleID uint) ([]model.ChapterOrder, error) {
	var orders []model.ChapterOrder
	err := r.DB.
		Joins("JOIN lessons ON lessons.id = chapter_orders.lesson_id").
		Where("chapter_orders.user_id = ? AND lessons.module_id = ?", userID, moduleID).
		Order("chapter_orders.chapter_order ASC").
		Find(&orders).Error
	return orders, err
}

func (r *ProgressRepository) ChapterOrdersByLesson(userID, lessonID uint) ([]model.ChapterOrder, error) {
	var orders []model.ChapterOrder
	err := r.DB.Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		Order("chapter_order ASC").
		Find(&orders).Error
	return orders, err
}

// CreateChapterOrders writes a whole selection in one transaction. A partial
// batch would corrupt the already-selected check on the next visit, so it is
// all-or-nothing.
func (r *ProgressRepository) CreateChapterOrders(orders []model.ChapterOrder) error {
	if len(orders) == 0 {
		return nil
	}
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&orders).Error
	})
}

// EnsureChapterProgress creates an incomplete progress row when none exists
// and leaves an existing one untouched.
func (r *ProgressRepository) EnsureChapterProgress(userID, chapterID uint) (*model.ChapterProgress, error) {
	var progress model.ChapterProgress
	err := r.DB.Where(model.ChapterProgress{UserID: userID, ChapterID: chapterID}).
		FirstOrCreate(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *ProgressRepository) UpsertChapterProgress(userID, chapterID uint, completed bool) (*model.ChapterProgress, error) {
	var progress model.ChapterProgress
	err := r.DB.Where(model.ChapterProgress{UserID: userID, ChapterID: chapterID}).
		FirstOrCreate(&progress).Error
	if err != nil {
		return nil, err
	}

	if progress.IsCompleted != completed {
		progress.IsCompleted = completed
		if err := r.DB.Save(&progress).Error; err != nil {
			return nil, err
		}
	}
	return &progress, nil
}

// ChapterProgressMap returns chapterID -> isCompleted for the given chapters.
// Chapters with no progress row are absent from the map.
func (r *ProgressRepository) ChapterProgressMap(userID uint, chapterIDs []uint) (map[uint]bool, error) {
	if len(chapterIDs) == 0 {
		return map[uint]bool{}, nil
	}
	var rows []model.ChapterProgress
	err := r.DB.Where("user_id = ? AND chapter_id IN ?", userID, chapterIDs).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	m := make(map[uint]bool, len(rows))
	for _, row := range rows {
		m[row.ChapterID] = row.IsCompleted
	}
	return m, nil
}

// CountIncompleteOrderedChapters counts the user's ordered chapters of a
// lesson that do not yet have a completed progress row.
func (r *ProgressRepository) CountIncompleteOrderedChapters(userID, lessonID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.ChapterOrder{}).
		Joins(`LEFT JOIN chapter_progresses ON chapter_progresses.chapter_id = chapter_orders.chapter_id
			AND chapter_progresses.user_id = chapter_orders.user_id
			AND chapter_progresses.deleted_at IS NULL`).
		Where("chapter_orders.user_id = ? AND chapter_orders.lesson_id = ?", userID, lessonID).
		Where("chapter_progresses.is_completed IS NULL OR chapter_progresses.is_completed = ?", false).
		Count(&count).Error
	return count, err
}

func (r *ProgressRepository) FindLessonProgress(userID, lessonID uint) (*model.LessonProgress, error) {
	var progress model.LessonProgress
	err := r.DB.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *ProgressRepository) LessonProgressMap(userID uint, lessonIDs []uint) (map[uint]model.LessonProgress, error) {
	if len(lessonIDs) == 0 {
		return map[uint]model.LessonProgress{}, nil
	}
	var rows []model.LessonProgress
	err := r.DB.Where("user_id = ? AND lesson_id IN ?", userID, lessonIDs).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	m := make(map[uint]model.LessonProgress, len(rows))
	for _, row := range rows {
		m[row.LessonID] = row
	}
	return m, nil
}

// UnlockLesson creates an unlocked progress row when none exists. An existing
// row is left alone and reported, so a repeated join is a no-op.
func (r *ProgressRepository) UnlockLesson(userID, lessonID uint) (created bool, err error) {
	var progress model.LessonProgress
	err = r.DB.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&progress).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	progress = model.LessonProgress{
		UserID:   userID,
		LessonID: lessonID,
		Status:   model.LessonUnlocked,
	}
	if err := r.DB.Create(&progress).Error; err != nil {
		return false, err
	}
	return true, nil
}

// CountOrderedLessons counts the distinct lessons a selection was generated
// for under this module.
func (r *ProgressRepository) CountOrderedLessons(userID, moduleID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.ChapterOrder{}).
		Joins("JOIN lessons ON lessons.id = chapter_orders.lesson_id").
		Where("chapter_orders.user_id = ? AND lessons.module_id = ?", userID, moduleID).
		Distinct("chapter_orders.lesson_id").
		Count(&count).Error
	return count, err
}

// CountCompletedOrderedLessons counts how many of those ordered lessons the
// user has completed.
func (r *ProgressRepository) CountCompletedOrderedLessons(userID, moduleID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.LessonProgress{}).
		Joins("JOIN lessons ON lessons.id = lesson_progresses.lesson_id").
		Where("lesson_progresses.user_id = ? AND lessons.module_id = ? AND lesson_progresses.status = ?",
			userID, moduleID, model.LessonCompleted).
		Where("lesson_progresses.lesson_id IN (?)",
			r.DB.Model(&model.ChapterOrder{}).
				Distinct("lesson_id").
				Where("user_id = ?", userID)).
		Count(&count).Error
	return count, err
}

func (r *ProgressRepository) HasCompletedModule(userID, moduleID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.CompletedModule{}).
		Where("user_id = ? AND module_id = ?", userID, moduleID).
		Count(&count).Error
	return count > 0, err
}

func (r *ProgressRepository) CreateCompletedModule(userID, moduleID uint) error {
	return r.DB.Create(&model.CompletedModule{UserID: userID, ModuleID: moduleID}).Error
}

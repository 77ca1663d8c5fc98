package model

// ChapterOrder is the personalized chapter selection for one user. Rows are
// written once per (user, lesson-set) and never regenerated; re-fetching a
// lesson's chapters must return the stored ordering unchanged.
type ChapterOrder struct {
	BaseModel
	UserID    uint `gorm:"uniqueIndex:idx_user_chapter;not null" json:"userId"`
	ChapterID uint `gorm:"uniqueIndex:idx_user_chapter;not null" json:"chapterId"`
	LessonID  uint `gorm:"index;not null" json:"lessonId"`
	Order     int  `gorm:"column:chapter_order;not null" json:"order"`
}

func (ChapterOrder) TableName() string {
	return "chapter_orders"
}

type ChapterProgress struct {
	BaseModel
	UserID      uint `gorm:"uniqueIndex:idx_user_chapter_progress;not null" json:"userId"`
	ChapterID   uint `gorm:"uniqueIndex:idx_user_chapter_progress;not null" json:"chapterId"`
	IsCompleted bool `gorm:"default:false" json:"isCompleted"`
}

func (ChapterProgress) TableName() string {
	return "chapter_progresses"
}

// LessonStatus is the per-user lesson state. A single enum rather than a pair
// of booleans, so completed-but-locked cannot exist.
type LessonStatus string

const (
	LessonLocked    LessonStatus = "locked"
	LessonUnlocked  LessonStatus = "unlocked"
	LessonCompleted LessonStatus = "completed"
)

type LessonProgress struct {
	BaseModel
	UserID   uint         `gorm:"uniqueIndex:idx_user_lesson_progress;not null" json:"userId"`
	LessonID uint         `gorm:"uniqueIndex:idx_user_lesson_progress;not null" json:"lessonId"`
	Status   LessonStatus `gorm:"size:20;default:'locked'" json:"status"`
}

func (LessonProgress) TableName() string {
	return "lesson_progresses"
}

// IsLocked and IsCompleted keep the flag-shaped JSON the client expects.
func (p *LessonProgress) IsLocked() bool    { return p.Status == LessonLocked }
func (p *LessonProgress) IsCompleted() bool { return p.Status == LessonCompleted }

type CompletedModule struct {
	BaseModel
	UserID   uint `gorm:"uniqueIndex:idx_user_module_completed;not null" json:"userId"`
	ModuleID uint `gorm:"uniqueIndex:idx_user_module_completed;not null" json:"moduleId"`
}

func (CompletedModule) TableName() string {
	return "completed_modules"
}

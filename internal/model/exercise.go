package model

// ExerciseResult holds the latest exercise attempt for a (user, lesson).
// A passed attempt is frozen; a failed attempt is overwritten in place on
// retry rather than accumulating rows.
type ExerciseResult struct {
	BaseModel
	UserID   uint `gorm:"uniqueIndex:idx_user_lesson_exercise;not null" json:"userId"`
	LessonID uint `gorm:"uniqueIndex:idx_user_lesson_exercise;not null" json:"lessonId"`
	Score    int  `gorm:"default:0" json:"score"`
	Attempt  int  `gorm:"default:1" json:"attempt"`
	IsPassed bool `gorm:"default:false" json:"isPassed"`
}

func (ExerciseResult) TableName() string {
	return "exercise_results"
}

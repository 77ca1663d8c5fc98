package model

type Module struct {
	BaseModel
	Title       string   `gorm:"size:255;not null" json:"title"`
	Description string   `gorm:"type:text" json:"description"`
	Image       string   `gorm:"size:255" json:"image"`
	IsPublished bool     `gorm:"default:false" json:"isPublished"`
	Lessons     []Lesson `gorm:"foreignKey:ModuleID" json:"lessons,omitempty"`
}

func (Module) TableName() string {
	return "modules"
}

type Lesson struct {
	BaseModel
	ModuleID    uint       `gorm:"index;not null" json:"moduleId"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Order       int        `gorm:"column:lesson_order;default:0" json:"order"`
	IsPublished bool       `gorm:"default:false" json:"isPublished"`
	Chapters    []Chapter  `gorm:"foreignKey:LessonID" json:"chapters,omitempty"`
	Questions   []Question `gorm:"foreignKey:LessonID" json:"questions,omitempty"`
}

func (Lesson) TableName() string {
	return "lessons"
}

type Chapter struct {
	BaseModel
	LessonID    uint      `gorm:"index;not null" json:"lessonId"`
	CategoryID  uint      `gorm:"index;not null" json:"categoryId"`
	Category    *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Content     string    `gorm:"type:text" json:"content"`
	Image       string    `gorm:"size:255" json:"image"`
	IsPublished bool      `gorm:"default:false" json:"isPublished"`
}

func (Chapter) TableName() string {
	return "chapters"
}

type Question struct {
	BaseModel
	LessonID uint   `gorm:"index;not null" json:"lessonId"`
	Text     string `gorm:"type:text;not null" json:"text"`
	OptionA  string `gorm:"size:255" json:"optionA"`
	OptionB  string `gorm:"size:255" json:"optionB"`
	OptionC  string `gorm:"size:255" json:"optionC"`
	OptionD  string `gorm:"size:255" json:"optionD"`
	Answer   string `gorm:"size:10;not null" json:"-"`
}

func (Question) TableName() string {
	return "questions"
}

package model

// Learning-style category labels. Chapters are tagged with exactly one,
// and the style survey ranks them primary/secondary per user.
const (
	StyleVisual    = "Visual"
	StyleReadWrite = "Read & Write"
	StyleAuditory  = "Auditory"
)

// StyleLabels is the fixed label set, in seed order.
var StyleLabels = []string{StyleVisual, StyleReadWrite, StyleAuditory}

type Category struct {
	BaseModel
	Name string `gorm:"size:50;unique;not null" json:"name"`
}

func (Category) TableName() string {
	return "categories"
}

// StylePreference is the result of the learning-style survey. The tertiary
// style is never stored; it is derived as the label that is neither primary
// nor secondary.
type StylePreference struct {
	BaseModel
	UserID         uint   `gorm:"uniqueIndex;not null" json:"userId"`
	PrimaryStyle   string `gorm:"size:50;not null" json:"primaryStyle"`
	SecondaryStyle string `gorm:"size:50;not null" json:"secondaryStyle"`
}

func (StylePreference) TableName() string {
	return "style_preferences"
}

// TertiaryStyle returns the one label of StyleLabels that is neither the
// primary nor the secondary style.
func (p *StylePreference) TertiaryStyle() string {
	for _, label := range StyleLabels {
		if label != p.PrimaryStyle && label != p.SecondaryStyle {
			return label
		}
	}
	return ""
}

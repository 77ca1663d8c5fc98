package model

type UserRole string

const (
	Student UserRole = "student"
	Admin   UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Name     string   `gorm:"size:100;not null" json:"name"`
	Email    string   `gorm:"size:100;unique;not null" json:"email"`
	Password string   `gorm:"size:100;not null" json:"-"`
	Role     UserRole `gorm:"size:20;default:'student'" json:"role"`
	SchoolID *uint    `gorm:"index" json:"schoolId"`
	School   *School  `gorm:"foreignKey:SchoolID" json:"school,omitempty"`
	Points   int      `gorm:"default:0" json:"points"`
	Avatar   string   `gorm:"size:255" json:"avatar"`
	Disabled bool     `gorm:"default:false" json:"disabled"`
}

func (User) TableName() string {
	return "users"
}

type School struct {
	BaseModel
	Name string `gorm:"size:150;not null" json:"name"`
	City string `gorm:"size:100" json:"city"`
}

func (School) TableName() string {
	return "schools"
}

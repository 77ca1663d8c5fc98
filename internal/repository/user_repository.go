package repository

import (
	"geometriks_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.Preload("School").First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Save(user *model.User) error {
	return r.DB.Save(user).Error
}

// TopByPoints returns the highest-scoring students, optionally scoped to one
// school.
func (r *UserRepository) TopByPoints(schoolID *uint, limit int) ([]model.User, error) {
	var users []model.User
	q := r.DB.Preload("School").
		Where("role = ? AND disabled = ?", model.Student, false).
		Order("points DESC, id ASC").
		Limit(limit)
	if schoolID != nil {
		q = q.Where("school_id = ?", *schoolID)
	}
	err := q.Find(&users).Error
	return users, err
}

func (r *UserRepository) ListSchools() ([]model.School, error) {
	var schools []model.School
	err := r.DB.Order("name ASC").Find(&schools).Error
	return schools, err
}

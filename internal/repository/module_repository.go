package repository

import (
	"geometriks_backend/internal/model"

	"gorm.io/gorm"
)

type ModuleRepository struct {
	DB *gorm.DB
}

func NewModuleRepository(db *gorm.DB) *ModuleRepository {
	return &ModuleRepository{DB: db}
}

func (r *ModuleRepository) Create(m *model.Module) error {
	return r.DB.Create(m).Error
}

func (r *ModuleRepository) Save(m *model.Module) error {
	return r.DB.Save(m).Error
}

func (r *ModuleRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Module{}, id).Error
}

func (r *ModuleRepository) FindByID(id uint) (*model.Module, error) {
	var m model.Module
	err := r.DB.First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *ModuleRepository) FindPublishedByID(id uint) (*model.Module, error) {
	var m model.Module
	err := r.DB.Where("is_published = ?", true).First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *ModuleRepository) ListPublished() ([]model.Module, error) {
	var modules []model.Module
	err := r.DB.Where("is_published = ?", true).Order("id ASC").Find(&modules).Error
	return modules, err
}

func (r *ModuleRepository) List(page, limit int) ([]model.Module, int64, error) {
	var modules []model.Module
	var total int64

	if err := r.DB.Model(&model.Module{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.DB.Order("id ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&modules).Error
	return modules, total, err
}

func (r *ModuleRepository) SetPublished(id uint, published bool) error {
	return r.DB.Model(&model.Module{}).Where("id = ?", id).
		Update("is_published", published).Error
}

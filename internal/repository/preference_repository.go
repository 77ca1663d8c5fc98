package repository

import (
	"geometriks_backend/internal/model"

	"gorm.io/gorm"
)

type PreferenceRepository struct {
	DB *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{DB: db}
}

func (r *PreferenceRepository) FindByUser(userID uint) (*model.StylePreference, error) {
	var pref model.StylePreference
	err := r.DB.Where("user_id = ?", userID).First(&pref).Error
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

// Upsert stores the survey result, overwriting a previous one. Retaking the
// survey does not rewrite chapter selections that already exist.
func (r *PreferenceRepository) Upsert(userID uint, primary, secondary string) (*model.StylePreference, error) {
	var pref model.StylePreference
	err := r.DB.Where("user_id = ?", userID).First(&pref).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		pref = model.StylePreference{
			UserID:         userID,
			PrimaryStyle:   primary,
			SecondaryStyle: secondary,
		}
		if err := r.DB.Create(&pref).Error; err != nil {
			return nil, err
		}
		return &pref, nil
	}

	pref.PrimaryStyle = primary
	pref.SecondaryStyle = secondary
	if err := r.DB.Save(&pref).Error; err != nil {
		return nil, err
	}
	return &pref, nil
}

package service

import (
	"geometriks_backend/internal/model"
	"geometriks_backend/internal/repository"
	"geometriks_backend/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
	PrefRepo *repository.PreferenceRepository
}

func NewUserService(userRepo *repository.UserRepository, prefRepo *repository.PreferenceRepository) *UserService {
	return &UserService{
		UserRepo: userRepo,
		PrefRepo: prefRepo,
	}
}

type Profile struct {
	User        *model.User   `json:"user"`
	Preferences *SurveyResult `json:"preferences,omitempty"`
}

type SurveyResult struct {
	PrimaryStyle   string `json:"primaryStyle"`
	SecondaryStyle string `json:"secondaryStyle"`
	TertiaryStyle  string `json:"tertiaryStyle"`
}

func (s *UserService) GetProfile(userID uint) (*Profile, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	profile := &Profile{User: user}
	pref, err := s.PrefRepo.FindByUser(userID)
	if err == nil {
		profile.Preferences = surveyResult(pref)
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	return profile, nil
}

func (s *UserService) GetPreferences(userID uint) (*SurveyResult, error) {
	pref, err := s.PrefRepo.FindByUser(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrPreferencesNotFound
		}
		return nil, err
	}
	return surveyResult(pref), nil
}

// SavePreferences stores the style survey outcome. Both styles must come from
// the fixed label set and differ; the tertiary style is always derived.
func (s *UserService) SavePreferences(userID uint, primary, secondary string) (*SurveyResult, error) {
	if primary == secondary || !validStyle(primary) || !validStyle(secondary) {
		return nil, util.ErrInvalidStyle
	}

	pref, err := s.PrefRepo.Upsert(userID, primary, secondary)
	if err != nil {
		return nil, err
	}
	return surveyResult(pref), nil
}

func validStyle(s string) bool {
	for _, label := range model.StyleLabels {
		if s == label {
			return true
		}
	}
	return false
}

func surveyResult(pref *model.StylePreference) *SurveyResult {
	return &SurveyResult{
		PrimaryStyle:   pref.PrimaryStyle,
		SecondaryStyle: pref.SecondaryStyle,
		TertiaryStyle:  pref.TertiaryStyle(),
	}
}

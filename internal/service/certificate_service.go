package service

import (
	"geometriks_backend/internal/model"
	"geometriks_backend/internal/repository"
	"geometriks_backend/internal/util"
	"geometriks_backend/pkg/monitoring"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CertificateService issues module-completion certificates with a strictly
// increasing certificate number, at most one per (user, module).
type CertificateService struct {
	CertRepo     *repository.CertificateRepository
	ModuleRepo   *repository.ModuleRepository
	UserRepo     *repository.UserRepository
	ProgressRepo *repository.ProgressRepository
	DB           *gorm.DB
}

func NewCertificateService(
	certRepo *repository.CertificateRepository,
	moduleRepo *repository.ModuleRepository,
	userRepo *repository.UserRepository,
	progressRepo *repository.ProgressRepository,
	db *gorm.DB,
) *CertificateService {
	return &CertificateService{
		CertRepo:     certRepo,
		ModuleRepo:   moduleRepo,
		UserRepo:     userRepo,
		ProgressRepo: progressRepo,
		DB:           db,
	}
}

type IssueResult struct {
	Certificate   *model.Certificate `json:"certificate"`
	AlreadyIssued bool               `json:"alreadyIssued"`
}

// Issue returns the existing certificate when one exists; otherwise it
// requires the module to be completed and assigns the next number inside a
// transaction so numbers stay strictly increasing.
func (s *CertificateService) Issue(userID, moduleID uint) (*IssueResult, error) {
	if _, err := s.ModuleRepo.FindByID(moduleID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrModuleNotFound
		}
		return nil, err
	}

	existing, err := s.CertRepo.FindByUserAndModule(userID, moduleID)
	if err == nil {
		return &IssueResult{Certificate: existing, AlreadyIssued: true}, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	completed, err := s.ProgressRepo.HasCompletedModule(userID, moduleID)
	if err != nil {
		return nil, err
	}
	if !completed {
		return nil, util.ErrModuleIncomplete
	}

	cert := &model.Certificate{
		UserID:   userID,
		ModuleID: moduleID,
		Code:     uuid.NewString(),
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var maxNumber int
		if err := tx.Model(&model.Certificate{}).
			Select("COALESCE(MAX(certificate_number), 0)").
			Scan(&maxNumber).Error; err != nil {
			return err
		}
		cert.CertificateNumber = maxNumber + 1
		return tx.Create(cert).Error
	})
	if err != nil {
		return nil, err
	}

	monitoring.CertificatesIssued.Inc()
	return &IssueResult{Certificate: cert}, nil
}

type VerifiedCertificate struct {
	Certificate *model.Certificate `json:"certificate"`
	StudentName string             `json:"studentName"`
	ModuleTitle string             `json:"moduleTitle"`
}

// Verify resolves a public certificate code to its holder and module.
func (s *CertificateService) Verify(code string) (*VerifiedCertificate, error) {
	cert, err := s.CertRepo.FindByCode(code)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrCertificateNotFound
		}
		return nil, err
	}

	user, err := s.UserRepo.FindByID(cert.UserID)
	if err != nil {
		return nil, err
	}
	module, err := s.ModuleRepo.FindByID(cert.ModuleID)
	if err != nil {
		return nil, err
	}

	return &VerifiedCertificate{
		Certificate: cert,
		StudentName: user.Name,
		ModuleTitle: module.Title,
	}, nil
}

func (s *CertificateService) ListByUser(userID uint) ([]model.Certificate, error) {
	return s.CertRepo.ListByUser(userID)
}

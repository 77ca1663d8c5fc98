package model

// Certificate records a module-completion certificate. CertificateNumber is
// assigned from a strictly increasing global sequence, at most once per
// (user, module); Code is a shareable verification token.
type Certificate struct {
	BaseModel
	UserID            uint   `gorm:"uniqueIndex:idx_user_module_certificate;not null" json:"userId"`
	ModuleID          uint   `gorm:"uniqueIndex:idx_user_module_certificate;not null" json:"moduleId"`
	CertificateNumber int    `gorm:"unique;not null" json:"certificateNumber"`
	Code              string `gorm:"size:36;uniqueIndex" json:"code"`
}

func (Certificate) TableName() string {
	return "certificates"
}

package domain

import "time"

type VerificationStatus string

const (
	VerificationPending      VerificationStatus = "PENDING"
	VerificationAutoVerified VerificationStatus = "AUTO_VERIFIED"
	VerificationManualReview VerificationStatus = "MANUAL_REVIEW"
	VerificationVerified     VerificationStatus = "VERIFIED"
	VerificationRejected     VerificationStatus = "REJECTED"
)

type Company struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Email        string  `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string  `gorm:"not null" json:"-"`
	CompanyName  string  `gorm:"type:varchar(100);not null" json:"companyName"`
	Domain       string  `gorm:"type:varchar(255);uniqueIndex;not null" json:"domain"`
	Description  *string `gorm:"type:text" json:"description,omitempty"`
	Website      *string `json:"website,omitempty"`
	Address      *string `json:"address,omitempty"`
	LinkedinURL  *string `json:"linkedinUrl,omitempty"`
	LogoURL      *string `json:"logoUrl,omitempty"`

	IsVerified         bool               `gorm:"not null;default:false" json:"isVerified"`
	VerificationStatus VerificationStatus `gorm:"type:varchar(20);not null;default:PENDING" json:"verificationStatus"`

	Jobs []Job `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

package dto

import "github.com/SundayYogurt/jobboard_service/internal/domain"

type UpdateCompanyRequest struct {
	Email              *string                    `json:"email,omitempty" validate:"omitempty,email"`
	CompanyName        *string                    `json:"companyName,omitempty" validate:"omitempty,min=2,max=100"`
	Domain             *string                    `json:"domain,omitempty" validate:"omitempty,domain"`
	Description        *string                    `json:"description,omitempty" validate:"omitempty,max=5000"`
	Website            *string                    `json:"website,omitempty" validate:"omitempty,url"`
	Address            *string                    `json:"address,omitempty" validate:"omitempty,max=500"`
	LinkedinURL        *string                    `json:"linkedinUrl,omitempty" validate:"omitempty,url"`
	IsVerified         *bool                      `json:"isVerified,omitempty"`
	VerificationStatus *domain.VerificationStatus `json:"verificationStatus,omitempty" validate:"omitempty,oneof=PENDING AUTO_VERIFIED MANUAL_REVIEW VERIFIED REJECTED"`
}

type CreateCollegeRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=200"`
	Location string `json:"location" validate:"required,min=1,max=200"`
}

package dto

import (
	"time"

	"github.com/SundayYogurt/jobboard_service/internal/domain"
)

type UpdateStatusRequest struct {
	Status domain.ApplicationStatus `json:"status" validate:"required"`
}

// Applicant is an application joined with the applicant's public profile.
type Applicant struct {
	ApplicationID uint                     `json:"applicationId"`
	Status        domain.ApplicationStatus `json:"status"`
	AppliedAt     time.Time                `json:"appliedAt"`
	Student       domain.Student           `json:"student"`
}

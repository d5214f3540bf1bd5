package dto

import "github.com/SundayYogurt/jobboard_service/internal/domain"

type CreateJobRequest struct {
	Title          string         `json:"title" validate:"required,min=1,max=50"`
	Description    string         `json:"description" validate:"required,min=1,max=1000"`
	Location       string         `json:"location" validate:"required,min=1,max=100"`
	JobType        domain.JobType `json:"jobType" validate:"required,oneof=FULL_TIME PART_TIME INTERNSHIP CONTRACT"`
	JobMode        domain.JobMode `json:"jobMode" validate:"required,oneof=REMOTE ONSITE HYBRID"`
	RequiredSkills []string       `json:"requiredSkills" validate:"dive,skill"`
}

type UpdateJobRequest struct {
	Title          *string         `json:"title,omitempty" validate:"omitempty,min=1,max=50"`
	Description    *string         `json:"description,omitempty" validate:"omitempty,min=1,max=1000"`
	Location       *string         `json:"location,omitempty" validate:"omitempty,min=1,max=100"`
	JobType        *domain.JobType `json:"jobType,omitempty" validate:"omitempty,oneof=FULL_TIME PART_TIME INTERNSHIP CONTRACT"`
	JobMode        *domain.JobMode `json:"jobMode,omitempty" validate:"omitempty,oneof=REMOTE ONSITE HYBRID"`
	RequiredSkills []string        `json:"requiredSkills,omitempty" validate:"omitempty,dive,skill"`
}

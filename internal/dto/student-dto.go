package dto

import (
	"github.com/SundayYogurt/jobboard_service/internal/domain"
)

// UpdateStudentRequest is a partial update; nil fields are left untouched.
type UpdateStudentRequest struct {
	Email         *string        `json:"email,omitempty" validate:"omitempty,email"`
	Username      *string        `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	Name          *string        `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Course        *domain.Course `json:"course,omitempty" validate:"omitempty,oneof=BCA BSc_CS BTech MCA MTech Diploma_CS Other"`
	AdmissionYear *int           `json:"admissionYear,omitempty" validate:"omitempty,gte=1950,lte=2100"`
	CurrentYear   *int           `json:"currentYear,omitempty" validate:"omitempty,gte=1,lte=10"`
	GradYear      *int           `json:"gradYear,omitempty" validate:"omitempty,gte=1950,lte=2100"`
	CollegeID     *uint          `json:"collegeId,omitempty" validate:"omitempty,gt=0"`
	GithubURL     *string        `json:"githubUrl,omitempty" validate:"omitempty,url"`
	ResumeURL     *string        `json:"resumeUrl,omitempty" validate:"omitempty,url"`
}

// SkillsRequest replaces a student's skills. Unknown names are dropped by the
// service rather than rejected here.
type SkillsRequest struct {
	Skills []string `json:"skills" validate:"required"`
}

type SkillsResponse struct {
	StudentID uint           `json:"studentId"`
	Skills    []domain.Skill `json:"skills"`
}

type MatchedJob struct {
	domain.Job
	MatchScore int `json:"matchScore"`
}

type StudentApplication struct {
	Application domain.JobApplication `json:"application"`
	Job         domain.Job            `json:"job"`
}

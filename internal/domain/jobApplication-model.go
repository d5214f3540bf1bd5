package domain

import "time"

type ApplicationStatus string

const (
	ApplicationApplied     ApplicationStatus = "APPLIED"
	ApplicationShortlisted ApplicationStatus = "SHORTLISTED"
	ApplicationRejected    ApplicationStatus = "REJECTED"
	ApplicationHired       ApplicationStatus = "HIRED"
)

// Valid reports whether s is one of the four application states. Any state
// may move to any other.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationApplied, ApplicationShortlisted, ApplicationRejected, ApplicationHired:
		return true
	}
	return false
}

type JobApplication struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	StudentID uint              `gorm:"not null;uniqueIndex:uidx_job_applications_student_job" json:"studentId"`
	JobID     uint              `gorm:"not null;index;uniqueIndex:uidx_job_applications_student_job" json:"jobId"`
	Status    ApplicationStatus `gorm:"type:varchar(20);not null;default:APPLIED" json:"status"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"createdAt"`
}
